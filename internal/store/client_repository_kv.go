// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKVRepository returns a KVRepository over the client SQLite database.
func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (k *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = k.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to read local value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (k *kvRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetValueQuery(key, value, k.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = k.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to write local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (k *kvRepository) SetMany(ctx context.Context, values map[string]string) error {
	log := logger.FromContext(ctx)

	tx, err := k.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.SetMany").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// stable order keeps statements predictable
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := k.now().UTC()
	for _, key := range keys {
		query, args, err := buildSetValueQuery(key, values[key], now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "kvRepository.SetMany").
				Str("key", key).
				Msg("failed to write local value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "kvRepository.SetMany").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (k *kvRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = k.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to delete local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
