// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/models"
)

type localStorage struct {
	kv     KVRepository
	logger *logger.Logger
}

// NewLocalStorage returns a LocalStorage that keeps each dataset as a JSON
// array under its device key.
func NewLocalStorage(kv KVRepository, logger *logger.Logger) LocalStorage {
	return &localStorage{
		kv:     kv,
		logger: logger,
	}
}

func (l *localStorage) Records(ctx context.Context, dataset models.Dataset) ([]models.Record, error) {
	var records []models.Record
	if err := l.readJSON(ctx, dataset.LocalKey(), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

func (l *localStorage) SaveRecords(ctx context.Context, dataset models.Dataset, records []models.Record) error {
	value, err := encodeJSON(records)
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, dataset.LocalKey(), value)
}

func (l *localStorage) Tombstones(ctx context.Context, dataset models.Dataset) ([]string, error) {
	var ids []string
	if err := l.readJSON(ctx, dataset.TombstonesKey(), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (l *localStorage) SaveTombstones(ctx context.Context, dataset models.Dataset, remoteIDs []string) error {
	value, err := encodeJSON(remoteIDs)
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, dataset.TombstonesKey(), value)
}

func (l *localStorage) Replace(ctx context.Context, dataset models.Dataset, records []models.Record, tombstones []string) error {
	recordsValue, err := encodeJSON(records)
	if err != nil {
		return err
	}
	tombstonesValue, err := encodeJSON(tombstones)
	if err != nil {
		return err
	}

	return l.kv.SetMany(ctx, map[string]string{
		dataset.LocalKey():      recordsValue,
		dataset.TombstonesKey(): tombstonesValue,
	})
}

func (l *localStorage) PendingDeletes(ctx context.Context, dataset models.Dataset) ([]string, error) {
	var ids []string
	if err := l.readJSON(ctx, dataset.PendingDeletesKey(), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (l *localStorage) SavePendingDeletes(ctx context.Context, dataset models.Dataset, clientIDs []string) error {
	value, err := encodeJSON(clientIDs)
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, dataset.PendingDeletesKey(), value)
}

func (l *localStorage) ReplacePending(ctx context.Context, dataset models.Dataset, records []models.Record, clientIDs []string) error {
	recordsValue, err := encodeJSON(records)
	if err != nil {
		return err
	}
	pendingValue, err := encodeJSON(clientIDs)
	if err != nil {
		return err
	}

	return l.kv.SetMany(ctx, map[string]string{
		dataset.LocalKey():          recordsValue,
		dataset.PendingDeletesKey(): pendingValue,
	})
}

func (l *localStorage) LastSynced(ctx context.Context, dataset models.Dataset) (*time.Time, error) {
	value, ok, err := l.kv.Get(ctx, dataset.LastSyncedKey())
	if err != nil || !ok {
		return nil, err
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localStorage.LastSynced").
			Str("key", dataset.LastSyncedKey()).
			Msg("stored sync time is not a timestamp")
		return nil, fmt.Errorf("%w: %w", ErrCorruptedValue, err)
	}
	return &at, nil
}

func (l *localStorage) SetLastSynced(ctx context.Context, dataset models.Dataset, at time.Time) error {
	return l.kv.Set(ctx, dataset.LastSyncedKey(), at.UTC().Format(time.RFC3339Nano))
}

func (l *localStorage) LastCleanupDate(ctx context.Context) (string, error) {
	value, _, err := l.kv.Get(ctx, models.LastCleanupKey)
	return value, err
}

func (l *localStorage) SetLastCleanupDate(ctx context.Context, date string) error {
	return l.kv.Set(ctx, models.LastCleanupKey, date)
}

// readJSON decodes the value under key into dst. A missing or empty value
// leaves dst untouched.
func (l *localStorage) readJSON(ctx context.Context, key string, dst any) error {
	value, ok, err := l.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || value == "" {
		return nil
	}

	if err = json.Unmarshal([]byte(value), dst); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localStorage.readJSON").
			Str("key", key).
			Msg("failed to decode local value")
		return fmt.Errorf("%w: %s: %w", ErrCorruptedValue, key, err)
	}
	return nil
}

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode local value: %w", err)
	}
	return string(data), nil
}
