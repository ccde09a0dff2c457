// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/models"
)

type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	documents := NewDocumentValidationService().Wrap(NewDocumentService(storages.DocumentRepository, logger))

	return &Services{
		DocumentService: documents,
		AppInfoService:  appInfo,
		HealthService:   NewHealthService(storages.DB, logger),
	}, nil
}
