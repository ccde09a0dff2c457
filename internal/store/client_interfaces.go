// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-collections-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVRepository is the low-level device key/value table. Values are opaque
// strings; a missing key is reported with ok == false, not an error.
type KVRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all values in one transaction.
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
}

// LocalStorage is the typed view of the device cache used by the sync and
// retention services. Every write replaces the whole stored value of a key.
type LocalStorage interface {
	// Records returns the dataset's records in insertion order. A dataset
	// that was never written is empty.
	Records(ctx context.Context, dataset models.Dataset) ([]models.Record, error)
	SaveRecords(ctx context.Context, dataset models.Dataset, records []models.Record) error

	// Tombstones returns remote ids deleted locally while the remote store
	// could not be reached.
	Tombstones(ctx context.Context, dataset models.Dataset) ([]string, error)
	SaveTombstones(ctx context.Context, dataset models.Dataset, remoteIDs []string) error

	// Replace writes records and tombstones of a dataset atomically.
	Replace(ctx context.Context, dataset models.Dataset, records []models.Record, tombstones []string) error

	// PendingDeletes returns client ids of never mirrored records deleted
	// locally. They are looked up remotely by client id on the next sync.
	PendingDeletes(ctx context.Context, dataset models.Dataset) ([]string, error)
	SavePendingDeletes(ctx context.Context, dataset models.Dataset, clientIDs []string) error

	// ReplacePending writes records and pending deletes of a dataset atomically.
	ReplacePending(ctx context.Context, dataset models.Dataset, records []models.Record, clientIDs []string) error

	LastSynced(ctx context.Context, dataset models.Dataset) (*time.Time, error)
	SetLastSynced(ctx context.Context, dataset models.Dataset, at time.Time) error

	// LastCleanupDate returns the business date of the last automatic
	// cleanup, or "" if none ran yet.
	LastCleanupDate(ctx context.Context) (string, error)
	SetLastCleanupDate(ctx context.Context, date string) error
}
