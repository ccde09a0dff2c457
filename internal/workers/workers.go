// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/models"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// SyncWorker runs the periodic full sync on behalf of one actor.
type SyncWorker struct {
	job      syncJob
	actor    models.Actor
	interval time.Duration
}

func NewSyncWorker(job syncJob, actor models.Actor, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, actor: actor, interval: interval}
}

func (w *SyncWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.actor, w.interval)
}

func (w *SyncWorker) Stop() {
	w.job.Stop()
}

// CleanupWorker attempts the daily cleanup once on start and then on every
// tick of the cleanup job. The daily marker keeps repeated attempts cheap.
type CleanupWorker struct {
	retention autoCleaner
	job       cleanupJob
	interval  time.Duration
}

func NewCleanupWorker(retention autoCleaner, job cleanupJob, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{retention: retention, job: job, interval: interval}
}

func (w *CleanupWorker) Run(ctx context.Context) {
	report, err := w.retention.AutoCleanup(ctx)
	log := logger.FromContext(ctx)
	switch {
	case err != nil:
		log.Err(err).Str("func", "CleanupWorker.Run").Msg("startup cleanup failed")
	case !report.Skipped:
		log.Info().
			Str("func", "CleanupWorker.Run").
			Int("removed", report.TotalRemoved()).
			Msg("startup cleanup done")
	}

	w.job.Start(ctx, w.interval)
}

func (w *CleanupWorker) Stop() {
	w.job.Stop()
}
