// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/models"
)

const (
	defaultSyncInterval    = 5 * time.Minute
	defaultCleanupInterval = time.Hour
)

// ticker runs fn every interval in one background goroutine until ctx is
// cancelled or stop is called.
type ticker struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (t *ticker) start(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	t.stop()

	t.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		tk := time.NewTicker(interval)
		defer tk.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-tk.C:
				fn(jobCtx)
			}
		}
	}()
}

// stop is safe to call when nothing is running.
func (t *ticker) stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}

type clientSyncJob struct {
	syncService ClientSyncService
	ticker      ticker
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.FullSync on a
// ticker for every dataset. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService) ClientSyncJob {
	return &clientSyncJob{syncService: syncService}
}

// Start implements ClientSyncJob. Offline ticks are skipped quietly.
func (j *clientSyncJob) Start(ctx context.Context, actor models.Actor, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.ticker.start(ctx, interval, func(ctx context.Context) {
		log := logger.FromContext(ctx)
		for _, dataset := range models.Datasets {
			_, err := j.syncService.FullSync(ctx, actor, dataset, actor.Scope())
			switch {
			case errors.Is(err, ErrOffline):
				log.Debug().Str("func", "clientSyncJob.tick").Msg("offline, sync postponed")
				return
			case err != nil:
				log.Err(err).
					Str("func", "clientSyncJob.tick").
					Str("dataset", string(dataset)).
					Msg("background sync failed")
			}
		}
	})
}

// Stop implements ClientSyncJob.
func (j *clientSyncJob) Stop() {
	j.ticker.stop()
}

type clientCleanupJob struct {
	retention ClientRetentionService
	ticker    ticker
}

// NewClientCleanupJob creates a job that tries the daily cleanup on a ticker.
func NewClientCleanupJob(retention ClientRetentionService) ClientCleanupJob {
	return &clientCleanupJob{retention: retention}
}

func (j *clientCleanupJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	j.ticker.start(ctx, interval, func(ctx context.Context) {
		if _, err := j.retention.AutoCleanup(ctx); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "clientCleanupJob.tick").
				Msg("background cleanup failed")
		}
	})
}

func (j *clientCleanupJob) Stop() {
	j.ticker.stop()
}
