// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-collections-keeper/internal/adapter"
	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/models"
)

type clientRetentionService struct {
	local     store.LocalStorage
	remote    adapter.RemoteStore
	oracle    adapter.ConnectivityOracle
	clock     utils.Clock
	locks     *DatasetLocks
	days      int
	batchSize int
	timeout   time.Duration

	// gate serializes AutoCleanup so two callers cannot both pass the
	// daily marker check
	gate sync.Mutex

	logger *logger.Logger
}

func NewClientRetentionService(
	local store.LocalStorage,
	remote adapter.RemoteStore,
	oracle adapter.ConnectivityOracle,
	clock utils.Clock,
	locks *DatasetLocks,
	cfg config.ClientRetention,
	timeout time.Duration,
	logger *logger.Logger,
) ClientRetentionService {
	days, batchSize := cfg.Days, cfg.BatchSize
	if days <= 0 {
		days = config.DefaultRetentionDays
	}
	if batchSize <= 0 {
		batchSize = config.DefaultBatchSize
	}

	return &clientRetentionService{
		local:     local,
		remote:    remote,
		oracle:    oracle,
		clock:     clock,
		locks:     locks,
		days:      days,
		batchSize: batchSize,
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *clientRetentionService) CutoffDate(now time.Time) string {
	return utils.CutoffDate(now, s.days)
}

func (s *clientRetentionService) CleanupLocal(ctx context.Context, dataset models.Dataset) (models.CleanupResult, error) {
	cutoff := s.CutoffDate(s.clock.Now())
	result := models.CleanupResult{Dataset: dataset, Cutoff: cutoff}

	unlock := s.locks.Lock(dataset)
	defer unlock()

	records, err := s.local.Records(ctx, dataset)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	// dates are YYYY-MM-DD, so string order is calendar order
	kept := slices.DeleteFunc(slices.Clone(records), func(r models.Record) bool { return r.Date < cutoff })
	result.Removed = len(records) - len(kept)
	result.Remaining = len(kept)
	if result.Removed == 0 {
		return result, nil
	}

	if err = s.local.SaveRecords(ctx, dataset, kept); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientRetentionService.CleanupLocal").
			Str("dataset", string(dataset)).
			Msg("failed to save pruned records")
		return result, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	return result, nil
}

func (s *clientRetentionService) CleanupRemote(ctx context.Context, dataset models.Dataset) (models.CleanupResult, error) {
	log := logger.FromContext(ctx)

	cutoff := s.CutoffDate(s.clock.Now())
	result := models.CleanupResult{Dataset: dataset, Cutoff: cutoff}
	collection := dataset.RemoteCollection()

	var expired []models.Document
	err := s.callRemote(ctx, func(ctx context.Context) error {
		var listErr error
		expired, listErr = s.remote.List(ctx, collection, models.DocumentQuery{DateBefore: cutoff})
		return listErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "clientRetentionService.CleanupRemote").
			Str("dataset", string(dataset)).
			Msg("failed to list expired documents")
		return result, fmt.Errorf("%w: %w", ErrCleanupFailed, err)
	}

	ids := make([]string, 0, len(expired))
	for _, doc := range expired {
		ids = append(ids, doc.ID)
	}

	for batch := range slices.Chunk(ids, s.batchSize) {
		var deleted int
		err = s.callRemote(ctx, func(ctx context.Context) error {
			var deleteErr error
			deleted, deleteErr = s.remote.BatchDelete(ctx, collection, batch)
			return deleteErr
		})
		if err != nil {
			log.Err(err).
				Str("func", "clientRetentionService.CleanupRemote").
				Str("dataset", string(dataset)).
				Int("removed", result.Removed).
				Msg("failed to delete expired batch")
			return result, fmt.Errorf("%w: %w", ErrCleanupFailed, err)
		}
		result.Removed += deleted
	}

	return result, nil
}

func (s *clientRetentionService) AutoCleanup(ctx context.Context) (models.CleanupReport, error) {
	log := logger.FromContext(ctx)

	s.gate.Lock()
	defer s.gate.Unlock()

	today := utils.BusinessDate(s.clock.Now())
	last, err := s.local.LastCleanupDate(ctx)
	if err != nil {
		return models.CleanupReport{}, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}
	if last == today {
		return models.CleanupReport{Skipped: true, Date: today}, nil
	}

	report := models.CleanupReport{
		Date:          today,
		Local:         make([]models.CleanupResult, len(models.Datasets)),
		RemoteSkipped: !s.oracle.Online(ctx),
	}
	if !report.RemoteSkipped {
		report.Remote = make([]models.CleanupResult, len(models.Datasets))
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, dataset := range models.Datasets {
		g.Go(func() error {
			res, err := s.CleanupLocal(gctx, dataset)
			report.Local[i] = res
			return err
		})
		if report.RemoteSkipped {
			continue
		}
		g.Go(func() error {
			res, err := s.CleanupRemote(gctx, dataset)
			report.Remote[i] = res
			return err
		})
	}
	if err = g.Wait(); err != nil {
		log.Err(err).Str("func", "clientRetentionService.AutoCleanup").Msg("daily cleanup failed")
		return report, err
	}

	if err = s.local.SetLastCleanupDate(ctx, today); err != nil {
		return report, fmt.Errorf("%w: %w", ErrLocalStorage, err)
	}

	log.Info().
		Str("func", "clientRetentionService.AutoCleanup").
		Str("date", today).
		Int("removed", report.TotalRemoved()).
		Bool("remote_skipped", report.RemoteSkipped).
		Msg("daily cleanup finished")
	return report, nil
}

func (s *clientRetentionService) callRemote(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return mapAdapterError(fn(ctx))
}
