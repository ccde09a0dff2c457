// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-collections-keeper/internal/adapter"
	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/internal/validators"
)

type ClientServices struct {
	SyncService      ClientSyncService
	RetentionService ClientRetentionService
	SyncJob          ClientSyncJob
	CleanupJob       ClientCleanupJob
}

func NewClientServices(
	localStore store.LocalStorage,
	remote adapter.RemoteStore,
	oracle adapter.ConnectivityOracle,
	cfg config.ClientConfig,
	clock utils.Clock,
	logger *logger.Logger,
) *ClientServices {
	locks := NewDatasetLocks()
	timeout := cfg.Adapter.RequestTimeout

	syncSvc := NewClientSyncService(localStore, remote, oracle, validators.NewRecordValidator(),
		clock, utils.NewUUIDGenerator(), locks, timeout, cfg.Retention.Days, logger)
	retentionSvc := NewClientRetentionService(localStore, remote, oracle, clock, locks, cfg.Retention, timeout, logger)

	return &ClientServices{
		SyncService:      syncSvc,
		RetentionService: retentionSvc,
		SyncJob:          NewClientSyncJob(syncSvc),
		CleanupJob:       NewClientCleanupJob(retentionSvc),
	}
}
