// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-collections-keeper/internal/adapter"
	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/internal/validators"
	"github.com/MKhiriev/go-collections-keeper/models"
)

type clientSyncService struct {
	local         store.LocalStorage
	remote        adapter.RemoteStore
	oracle        adapter.ConnectivityOracle
	validator     validators.Validator
	clock         utils.Clock
	ids           store.IDGenerator
	locks         *DatasetLocks
	timeout       time.Duration
	retentionDays int

	logger *logger.Logger
}

// NewClientSyncService wires the sync engine. timeout bounds every remote
// call; locks must be shared with the retention service. FullSync does not
// write back records older than retentionDays.
func NewClientSyncService(
	local store.LocalStorage,
	remote adapter.RemoteStore,
	oracle adapter.ConnectivityOracle,
	validator validators.Validator,
	clock utils.Clock,
	ids store.IDGenerator,
	locks *DatasetLocks,
	timeout time.Duration,
	retentionDays int,
	logger *logger.Logger,
) ClientSyncService {
	if retentionDays <= 0 {
		retentionDays = config.DefaultRetentionDays
	}

	return &clientSyncService{
		local:         local,
		remote:        remote,
		oracle:        oracle,
		validator:     validator,
		clock:         clock,
		ids:           ids,
		locks:         locks,
		timeout:       timeout,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

func (s *clientSyncService) RecordEntry(ctx context.Context, actor models.Actor, dataset models.Dataset, record models.Record) (models.RecordResult, error) {
	log := logger.FromContext(ctx)

	if err := s.checkCall(ctx, actor, dataset); err != nil {
		return models.RecordResult{}, err
	}

	now := s.clock.Now()
	today := utils.BusinessDate(now)
	if record.ClientID == "" {
		record.ClientID = s.ids.Generate()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = now.UTC()
	}
	if record.Date == "" {
		record.Date = today
	}
	record.RemoteID = ""
	record.Dirty = false

	if err := s.validator.Validate(ctx, record); err != nil {
		return models.RecordResult{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if !s.owns(actor, record) || !s.CanModify(record, actor.Role, today) {
		return models.RecordResult{}, fmt.Errorf("%w: %s cannot record %s on %s for %s",
			ErrPermissionDenied, actor.Name, record.Date, today, record.Owner())
	}

	unlock := s.locks.Lock(dataset)
	defer unlock()

	records, err := s.local.Records(ctx, dataset)
	if err != nil {
		return models.RecordResult{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	if indexOf(records, record.ClientID) >= 0 {
		return models.RecordResult{}, fmt.Errorf("%w: client id %s already recorded", ErrInvalidRecord, record.ClientID)
	}

	if s.oracle.Online(ctx) {
		remoteID, err := s.addRemote(ctx, dataset, record)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "clientSyncService.RecordEntry").
				Str("dataset", string(dataset)).
				Str("client_id", record.ClientID).
				Msg("remote write failed, keeping record pending")
		} else {
			record.RemoteID = remoteID
		}
	}

	records = append(records, record)
	if err = s.local.SaveRecords(ctx, dataset, records); err != nil {
		log.Err(err).
			Str("func", "clientSyncService.RecordEntry").
			Str("dataset", string(dataset)).
			Str("client_id", record.ClientID).
			Msg("failed to save record locally")
		return models.RecordResult{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	return models.RecordResult{Record: record, Mirrored: record.RemoteID != ""}, nil
}

func (s *clientSyncService) EditEntry(ctx context.Context, actor models.Actor, dataset models.Dataset, clientID string, patch models.RecordPatch) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.checkCall(ctx, actor, dataset); err != nil {
		return false, err
	}
	if err := s.validator.Validate(ctx, patch); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	unlock := s.locks.Lock(dataset)
	defer unlock()

	records, idx, err := s.find(ctx, dataset, clientID)
	if err != nil {
		return false, err
	}
	if err = s.authorize(actor, records[idx]); err != nil {
		return false, err
	}

	updated := patch.Apply(records[idx])
	updated.Dirty = updated.RemoteID != ""
	records[idx] = updated
	if err = s.local.SaveRecords(ctx, dataset, records); err != nil {
		log.Err(err).
			Str("func", "clientSyncService.EditEntry").
			Str("client_id", clientID).
			Msg("failed to save edited record")
		return false, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	// never mirrored: the next full sync uploads the edited version
	if updated.RemoteID == "" || !s.oracle.Online(ctx) {
		return false, nil
	}

	data, err := models.NewPatchData(updated, patch)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if err = s.callRemote(ctx, func(ctx context.Context) error {
		return s.remote.Update(ctx, dataset.RemoteCollection(), updated.RemoteID, data)
	}); err != nil {
		log.Warn().Err(err).
			Str("func", "clientSyncService.EditEntry").
			Str("client_id", clientID).
			Str("remote_id", updated.RemoteID).
			Bool("remote_missing", isRemoteNotFound(err)).
			Msg("remote update failed, keeping edit pending")
		return false, nil
	}

	updated.Dirty = false
	records[idx] = updated
	if err = s.local.SaveRecords(ctx, dataset, records); err != nil {
		// the next sync pushes the edit again
		log.Err(err).
			Str("func", "clientSyncService.EditEntry").
			Str("client_id", clientID).
			Msg("failed to clear pending flag")
		return false, nil
	}

	return true, nil
}

func (s *clientSyncService) DeleteEntry(ctx context.Context, actor models.Actor, dataset models.Dataset, clientID string) error {
	log := logger.FromContext(ctx)

	if err := s.checkCall(ctx, actor, dataset); err != nil {
		return err
	}

	unlock := s.locks.Lock(dataset)
	defer unlock()

	records, idx, err := s.find(ctx, dataset, clientID)
	if err != nil {
		return err
	}
	deleted := records[idx]
	if err = s.authorize(actor, deleted); err != nil {
		return err
	}
	records = slices.Delete(records, idx, idx+1)

	if deleted.RemoteID == "" {
		// an upload whose reply was lost may still have stored it, so the
		// next full sync looks it up by client id
		pending, err := s.local.PendingDeletes(ctx, dataset)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocalStorage, err)
		}
		if !slices.Contains(pending, deleted.ClientID) {
			pending = append(pending, deleted.ClientID)
		}
		if err = s.local.ReplacePending(ctx, dataset, records, pending); err != nil {
			log.Err(err).
				Str("func", "clientSyncService.DeleteEntry").
				Str("client_id", clientID).
				Msg("failed to delete pending record locally")
			return fmt.Errorf("%w: %w", ErrLocalStorage, err)
		}
		return nil
	}

	// removal and tombstone go out in one transaction
	tombstones, err := s.local.Tombstones(ctx, dataset)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	if !slices.Contains(tombstones, deleted.RemoteID) {
		tombstones = append(tombstones, deleted.RemoteID)
	}
	if err = s.local.Replace(ctx, dataset, records, tombstones); err != nil {
		log.Err(err).
			Str("func", "clientSyncService.DeleteEntry").
			Str("client_id", clientID).
			Msg("failed to delete record locally")
		return fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	if !s.oracle.Online(ctx) {
		return nil
	}
	err = s.callRemote(ctx, func(ctx context.Context) error {
		return s.remote.Delete(ctx, dataset.RemoteCollection(), deleted.RemoteID)
	})
	if err != nil && !isRemoteNotFound(err) {
		log.Warn().Err(err).
			Str("func", "clientSyncService.DeleteEntry").
			Str("remote_id", deleted.RemoteID).
			Msg("remote delete failed, tombstone kept")
		return nil
	}

	tombstones = slices.DeleteFunc(tombstones, func(id string) bool { return id == deleted.RemoteID })
	if err = s.local.SaveTombstones(ctx, dataset, tombstones); err != nil {
		// replaying it later is harmless
		log.Warn().Err(err).
			Str("func", "clientSyncService.DeleteEntry").
			Str("remote_id", deleted.RemoteID).
			Msg("failed to drop confirmed tombstone")
	}
	return nil
}

// CanModify allows administrators everything and everyone else only
// records dated on the current business day.
func (s *clientSyncService) CanModify(record models.Record, role models.Role, today string) bool {
	if role == models.RoleAdmin {
		return true
	}
	return record.Date == today
}

func (s *clientSyncService) List(ctx context.Context, actor models.Actor, dataset models.Dataset) ([]models.Record, error) {
	if err := s.checkCall(ctx, actor, dataset); err != nil {
		return nil, err
	}

	records, err := s.local.Records(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	scope := actor.Scope()
	visible := slices.DeleteFunc(records, func(r models.Record) bool { return !scope.Contains(r) })
	slices.SortStableFunc(visible, func(a, b models.Record) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return b.Timestamp.Compare(a.Timestamp)
	})
	return visible, nil
}

func (s *clientSyncService) Status(ctx context.Context, actor models.Actor, dataset models.Dataset) (models.SyncStatus, error) {
	if err := s.checkCall(ctx, actor, dataset); err != nil {
		return models.SyncStatus{}, err
	}

	records, err := s.local.Records(ctx, dataset)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	tombstones, err := s.local.Tombstones(ctx, dataset)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	lastSynced, err := s.local.LastSynced(ctx, dataset)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	status := models.SyncStatus{
		Dataset:      dataset,
		Tombstones:   len(tombstones),
		LastSyncedAt: lastSynced,
	}
	scope := actor.Scope()
	for _, r := range records {
		if !scope.Contains(r) {
			continue
		}
		status.Total++
		if r.Pending() {
			status.Pending++
		}
	}
	return status, nil
}

func (s *clientSyncService) IsMirrored(ctx context.Context, dataset models.Dataset, clientID string) (bool, error) {
	if err := s.validator.Validate(ctx, dataset); err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnknownDataset, err)
	}

	records, idx, err := s.find(ctx, dataset, clientID)
	if err != nil {
		return false, err
	}
	return records[idx].Mirrored(), nil
}

func (s *clientSyncService) checkCall(ctx context.Context, actor models.Actor, dataset models.Dataset) error {
	if err := s.validator.Validate(ctx, actor); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidActor, err)
	}
	if err := s.validator.Validate(ctx, dataset); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownDataset, err)
	}
	return nil
}

// owns reports whether actor may write records attributed to the record's
// owner. Administrators may record on behalf of anyone.
func (s *clientSyncService) owns(actor models.Actor, record models.Record) bool {
	return actor.IsAdmin() || record.Owner() == actor.Name
}

func (s *clientSyncService) authorize(actor models.Actor, record models.Record) error {
	today := utils.BusinessDate(s.clock.Now())
	if !s.owns(actor, record) || !s.CanModify(record, actor.Role, today) {
		return fmt.Errorf("%w: %s cannot modify record %s dated %s", ErrPermissionDenied, actor.Name, record.ClientID, record.Date)
	}
	return nil
}

func (s *clientSyncService) find(ctx context.Context, dataset models.Dataset, clientID string) ([]models.Record, int, error) {
	records, err := s.local.Records(ctx, dataset)
	if err != nil {
		return nil, -1, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	idx := indexOf(records, clientID)
	if idx < 0 {
		return nil, -1, fmt.Errorf("%w: %s", ErrNotFound, clientID)
	}
	return records, idx, nil
}

func (s *clientSyncService) addRemote(ctx context.Context, dataset models.Dataset, record models.Record) (string, error) {
	doc, err := models.NewDocument(record)
	if err != nil {
		return "", err
	}

	var id string
	err = s.callRemote(ctx, func(ctx context.Context) error {
		var addErr error
		id, addErr = s.remote.Add(ctx, dataset.RemoteCollection(), doc)
		return addErr
	})
	return id, err
}

// callRemote runs fn under the remote timeout and maps adapter errors.
func (s *clientSyncService) callRemote(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return mapAdapterError(fn(ctx))
}

func indexOf(records []models.Record, clientID string) int {
	return slices.IndexFunc(records, func(r models.Record) bool { return r.ClientID == clientID })
}
