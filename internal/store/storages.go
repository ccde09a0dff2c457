// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	DB                 *DB
	DocumentRepository DocumentRepository
}

// NewStorages connects to PostgreSQL, migrates the schema and builds the
// repositories.
func NewStorages(ctx context.Context, dsn string, ids IDGenerator, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DB:                 db,
		DocumentRepository: NewDocumentRepository(db, ids, logger),
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
