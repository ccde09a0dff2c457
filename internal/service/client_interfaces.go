// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-collections-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService is the local-first write path and the full
// reconciliation between the device cache and the remote document store.
// Every call names the acting user explicitly.
type ClientSyncService interface {
	// RecordEntry stores a new record on the device. When the remote store
	// is reachable the record is mirrored first so the local copy carries
	// its remote id from the start. Network failures never fail the call;
	// the record is then left pending. ClientID, Date and Timestamp are
	// filled in when empty.
	RecordEntry(ctx context.Context, actor models.Actor, dataset models.Dataset, record models.Record) (models.RecordResult, error)

	// EditEntry applies patch to the record with clientID. The local write
	// always happens; the returned flag reports whether the remote copy was
	// updated as well.
	EditEntry(ctx context.Context, actor models.Actor, dataset models.Dataset, clientID string, patch models.RecordPatch) (bool, error)

	// DeleteEntry removes the record with clientID from the device. A
	// mirrored record that could not be deleted remotely is remembered as a
	// tombstone and deleted during the next full sync.
	DeleteEntry(ctx context.Context, actor models.Actor, dataset models.Dataset, clientID string) error

	// CanModify reports whether an actor with role may edit or delete
	// record on the business day today.
	CanModify(record models.Record, role models.Role, today string) bool

	// FullSync reconciles the dataset with the remote store. It requires
	// connectivity for its whole duration and fails with ErrOffline up front
	// when there is none. Records inside scope are replaced by the remote
	// set once all pending work has been pushed.
	FullSync(ctx context.Context, actor models.Actor, dataset models.Dataset, scope models.SyncScope) (models.SyncReport, error)

	// List returns the records the actor may see, newest first.
	List(ctx context.Context, actor models.Actor, dataset models.Dataset) ([]models.Record, error)

	// Status summarizes pending work for the actor's records.
	Status(ctx context.Context, actor models.Actor, dataset models.Dataset) (models.SyncStatus, error)

	// IsMirrored reports whether the remote store holds the current version
	// of the record with clientID.
	IsMirrored(ctx context.Context, dataset models.Dataset, clientID string) (bool, error)
}

// ClientRetentionService prunes records older than the retention window
// from both stores.
type ClientRetentionService interface {
	// CutoffDate returns the oldest business date retained on the business
	// day that now falls on. Records dated exactly on it are kept.
	CutoffDate(now time.Time) string

	// CleanupLocal drops expired records from the device cache.
	CleanupLocal(ctx context.Context, dataset models.Dataset) (models.CleanupResult, error)

	// CleanupRemote deletes expired documents from the remote store in
	// batches. Every remote error is returned.
	CleanupRemote(ctx context.Context, dataset models.Dataset) (models.CleanupResult, error)

	// AutoCleanup runs both cleanups for every dataset at most once per
	// business day. Later calls on the same day report Skipped.
	AutoCleanup(ctx context.Context) (models.CleanupReport, error)
}

// ClientSyncJob is a background worker that periodically runs FullSync for
// every dataset on behalf of one actor.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, actor models.Actor, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// ClientCleanupJob is a background worker that periodically calls
// AutoCleanup. The daily gate keeps the real work to once a day.
type ClientCleanupJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
