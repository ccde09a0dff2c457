// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
)

// ClientStorages groups the client-side storage layer.
type ClientStorages struct {
	// DB is the SQLite handle; Close it on shutdown.
	DB *DB
	// KV is the raw key/value table.
	KV KVRepository
	// Local is the typed device cache used by the services.
	Local LocalStorage
}

// NewClientStorages opens the SQLite cache at cfg.DB.DSN, creating the file
// if needed, and applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVRepository(db, logger)
	return &ClientStorages{
		DB:    db,
		KV:    kv,
		Local: NewLocalStorage(kv, logger),
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
