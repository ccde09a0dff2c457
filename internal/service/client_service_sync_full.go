// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/models"
)

// FullSync pushes local work first and reads the remote set back last:
//  1. tombstones are replayed as remote deletes;
//  2. pending deletes are looked up by client id and deleted remotely;
//  3. pending records are added and receive their remote id;
//  4. mirrored records missing remotely are written back under their id
//     unless they are older than the retention cutoff, dirty ones are
//     overwritten with the local version;
//  5. the remote set inside scope replaces the local records inside scope.
//
// Records outside scope are neither pushed nor replaced. When a remote call
// fails the ids assigned so far and the tombstones still outstanding are
// persisted before ErrSyncFailed is returned; nothing is rolled back.
func (s *clientSyncService) FullSync(ctx context.Context, actor models.Actor, dataset models.Dataset, scope models.SyncScope) (models.SyncReport, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "clientSyncService.FullSync").
		Str("dataset", string(dataset)).
		Str("scope", scope.Owner).
		Logger()

	if err := s.checkCall(ctx, actor, dataset); err != nil {
		return models.SyncReport{}, err
	}
	if !actor.IsAdmin() && scope != actor.Scope() {
		return models.SyncReport{}, fmt.Errorf("%w: %s cannot sync records of %q", ErrPermissionDenied, actor.Name, scope.Owner)
	}
	if !s.oracle.Online(ctx) {
		return models.SyncReport{}, ErrOffline
	}

	unlock := s.locks.Lock(dataset)
	defer unlock()

	records, err := s.local.Records(ctx, dataset)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	tombstones, err := s.local.Tombstones(ctx, dataset)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	pendingDeletes, err := s.local.PendingDeletes(ctx, dataset)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	report := models.SyncReport{Dataset: dataset}
	collection := dataset.RemoteCollection()

	// abort keeps what already reached the remote store
	abort := func(step string, cause error, outstanding []string) (models.SyncReport, error) {
		log.Err(cause).Str("step", step).Msg("full sync aborted")
		if err := s.local.Replace(ctx, dataset, records, outstanding); err != nil {
			log.Err(err).Msg("failed to persist partial sync progress")
			return report, fmt.Errorf("%w: %s: %w", ErrSyncFailed, step, errors.Join(cause, fmt.Errorf("%w: %w", ErrLocalStorage, err)))
		}
		return report, fmt.Errorf("%w: %s: %w", ErrSyncFailed, step, cause)
	}

	for i, remoteID := range tombstones {
		err = s.callRemote(ctx, func(ctx context.Context) error {
			return s.remote.Delete(ctx, collection, remoteID)
		})
		switch {
		case err == nil:
			report.DeletedRemote++
		case isRemoteNotFound(err):
		default:
			return abort("replay tombstones", err, tombstones[i:])
		}
	}

	for i, clientID := range pendingDeletes {
		deleted, err := s.deleteByClientID(ctx, collection, clientID)
		report.DeletedRemote += deleted
		if err != nil {
			if saveErr := s.local.SavePendingDeletes(ctx, dataset, pendingDeletes[i:]); saveErr != nil {
				log.Err(saveErr).Msg("failed to persist outstanding pending deletes")
			}
			return abort("replay pending deletes", err, []string{})
		}
	}
	if len(pendingDeletes) > 0 {
		if err = s.local.SavePendingDeletes(ctx, dataset, []string{}); err != nil {
			log.Err(err).Msg("failed to clear pending deletes")
			return report, fmt.Errorf("%w: %w", ErrLocalStorage, err)
		}
	}

	cutoff := utils.CutoffDate(s.clock.Now(), s.retentionDays)

	for i := range records {
		rec := &records[i]
		if !scope.Contains(*rec) {
			continue
		}
		if rec.RemoteID == "" {
			id, err := s.addRemote(ctx, dataset, *rec)
			if err != nil {
				return abort("upload pending", err, nil)
			}
			rec.RemoteID = id
			rec.Dirty = false
			report.Uploaded++
			continue
		}

		restored, err := s.ensureRemote(ctx, collection, *rec, cutoff)
		if err != nil {
			return abort("verify mirrored", err, nil)
		}
		switch {
		case restored:
			report.Restored++
		case rec.Dirty:
			report.Updated++
		}
		rec.Dirty = false
	}

	var remoteRecords []models.Record
	err = s.callRemote(ctx, func(ctx context.Context) error {
		docs, listErr := s.remote.List(ctx, collection, models.DocumentQuery{Owner: scope.Owner})
		if listErr != nil {
			return listErr
		}
		remoteRecords = make([]models.Record, 0, len(docs))
		for _, doc := range docs {
			r, decodeErr := doc.Record()
			if decodeErr != nil {
				return decodeErr
			}
			remoteRecords = append(remoteRecords, r)
		}
		return nil
	})
	if err != nil {
		return abort("read remote set", err, nil)
	}

	merged := make([]models.Record, 0, len(records)+len(remoteRecords))
	for _, r := range records {
		if !scope.Contains(r) {
			merged = append(merged, r)
		}
	}
	merged = append(merged, remoteRecords...)

	if err = s.local.Replace(ctx, dataset, merged, []string{}); err != nil {
		log.Err(err).Msg("failed to replace local records")
		return report, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	now := s.clock.Now()
	if err = s.local.SetLastSynced(ctx, dataset, now); err != nil {
		return report, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	report.TotalRemote = len(remoteRecords)
	report.SyncedAt = now.UTC()

	log.Info().
		Int("uploaded", report.Uploaded).
		Int("restored", report.Restored).
		Int("updated", report.Updated).
		Int("deleted_remote", report.DeletedRemote).
		Int("total_remote", report.TotalRemote).
		Msg("full sync finished")

	return report, nil
}

// ensureRemote makes sure the remote store holds the current version of a
// mirrored record. It reports whether the document had to be recreated.
// A missing record dated before cutoff was purged by retention and stays
// gone.
func (s *clientSyncService) ensureRemote(ctx context.Context, collection string, rec models.Record, cutoff string) (bool, error) {
	err := s.callRemote(ctx, func(ctx context.Context) error {
		_, getErr := s.remote.Get(ctx, collection, rec.RemoteID)
		return getErr
	})
	missing := isRemoteNotFound(err)
	if err != nil && !missing {
		return false, err
	}
	if !missing && !rec.Dirty {
		return false, nil
	}
	if missing && rec.Date < cutoff {
		return false, nil
	}

	doc, err := models.NewDocument(rec)
	if err != nil {
		return false, err
	}
	err = s.callRemote(ctx, func(ctx context.Context) error {
		return s.remote.Set(ctx, collection, doc)
	})
	return missing, err
}

// deleteByClientID removes every remote document stored under clientID and
// reports how many were deleted.
func (s *clientSyncService) deleteByClientID(ctx context.Context, collection, clientID string) (int, error) {
	var docs []models.Document
	err := s.callRemote(ctx, func(ctx context.Context) error {
		var listErr error
		docs, listErr = s.remote.List(ctx, collection, models.DocumentQuery{ClientID: clientID})
		return listErr
	})
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, doc := range docs {
		err = s.callRemote(ctx, func(ctx context.Context) error {
			return s.remote.Delete(ctx, collection, doc.ID)
		})
		switch {
		case err == nil:
			deleted++
		case isRemoteNotFound(err):
		default:
			return deleted, err
		}
	}
	return deleted, nil
}
