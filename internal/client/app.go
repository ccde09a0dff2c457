// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-collections-keeper/internal/adapter"
	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/report"
	"github.com/MKhiriev/go-collections-keeper/internal/service"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/internal/workers"
	"github.com/MKhiriev/go-collections-keeper/models"
)

// App is one running client: the device cache, the remote store adapters
// and the services built on top of them.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	clock    utils.Clock
	closer   io.Closer
	logger   *logger.Logger
}

// Opener builds an App from parsed command line flags.
type Opener func(ctx context.Context, flags *config.Flags) (*App, error)

// Open loads the client configuration and wires an App.
func Open(ctx context.Context, flags *config.Flags) (*App, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, err := logger.NewClientLogger("collections-client", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}

	return NewApp(ctx, cfg, log)
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, cfg.App, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	oracle, err := adapter.NewConnectivityOracle(cfg.Adapter, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create connectivity oracle: %w", err)
	}

	clock := utils.SystemClock{}
	services := service.NewClientServices(storages.Local, remote, oracle, *cfg, clock, logger)

	return newApp(cfg, services, clock, storages, logger), nil
}

func newApp(cfg *config.ClientConfig, services *service.ClientServices, clock utils.Clock, closer io.Closer, logger *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		services: services,
		clock:    clock,
		closer:   closer,
		logger:   logger,
	}
}

// Close releases the device database.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Actor resolves the acting user, falling back to the configured defaults
// for empty values. The services validate the result.
func (a *App) Actor(name, role string) models.Actor {
	if name == "" {
		name = a.cfg.App.Actor
	}
	if role == "" {
		role = a.cfg.App.Role
	}
	if role == "" {
		role = string(models.RoleWorker)
	}
	return models.Actor{Name: name, Role: models.Role(role)}
}

// Today is the current business date.
func (a *App) Today() string {
	return utils.BusinessDate(a.clock.Now())
}

// Sync runs a full sync of each dataset within the actor's scope and then
// attempts the daily cleanup. An offline device stops the run early.
func (a *App) Sync(ctx context.Context, actor models.Actor, datasets []models.Dataset) ([]models.SyncReport, *models.CleanupReport, error) {
	reports := make([]models.SyncReport, 0, len(datasets))
	for _, dataset := range datasets {
		rep, err := a.services.SyncService.FullSync(ctx, actor, dataset, actor.Scope())
		if err != nil {
			return reports, nil, err
		}
		reports = append(reports, rep)
	}

	cleanup, err := a.services.RetentionService.AutoCleanup(ctx)
	if err != nil {
		// the sync itself succeeded
		a.logger.Err(err).Str("func", "*App.Sync").Msg("post-sync cleanup failed")
		return reports, nil, nil
	}

	return reports, &cleanup, nil
}

// Cleanup prunes expired records from the device and, when remote is set,
// from the remote store.
func (a *App) Cleanup(ctx context.Context, datasets []models.Dataset, remote bool) ([]models.CleanupResult, []models.CleanupResult, error) {
	var local, remoteResults []models.CleanupResult
	for _, dataset := range datasets {
		res, err := a.services.RetentionService.CleanupLocal(ctx, dataset)
		if err != nil {
			return local, remoteResults, err
		}
		local = append(local, res)
	}

	if !remote {
		return local, nil, nil
	}

	var errs []error
	for _, dataset := range datasets {
		res, err := a.services.RetentionService.CleanupRemote(ctx, dataset)
		remoteResults = append(remoteResults, res)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return local, remoteResults, errors.Join(errs...)
}

// Report aggregates the records the actor can see that match filter.
func (a *App) Report(ctx context.Context, actor models.Actor, datasets []models.Dataset, filter models.ReportFilter) (models.Aggregate, []models.Record, error) {
	var records []models.Record
	for _, dataset := range datasets {
		list, err := a.services.SyncService.List(ctx, actor, dataset)
		if err != nil {
			return models.Aggregate{}, nil, err
		}
		records = append(records, list...)
	}

	records = report.Filter(records, filter)
	return report.Aggregate(records), records, nil
}

// RunDaemon runs the background sync and cleanup workers until ctx is done.
func (a *App) RunDaemon(ctx context.Context, actor models.Actor) {
	ctx = a.logger.WithContext(ctx)

	w := workers.NewWorkers(
		workers.NewSyncWorker(a.services.SyncJob, actor, a.cfg.Workers.SyncInterval),
		workers.NewCleanupWorker(a.services.RetentionService, a.services.CleanupJob, a.cfg.Workers.CleanupInterval),
	)

	a.logger.Info().Str("actor", actor.Name).Msg("background workers started")
	w.Run(ctx)

	<-ctx.Done()

	w.Stop()
	a.logger.Info().Msg("background workers stopped")
}
