// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops the periodic sync and the daily cleanup in a unified way.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-collections-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines and keep
// them alive until Stop is called or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

type syncJob interface {
	Start(ctx context.Context, actor models.Actor, interval time.Duration)
	Stop()
}

type cleanupJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

type autoCleaner interface {
	AutoCleanup(ctx context.Context) (models.CleanupReport, error)
}
