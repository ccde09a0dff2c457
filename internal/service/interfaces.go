// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-collections-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService is the server side of the remote document store.
type DocumentService interface {
	Add(ctx context.Context, collection string, doc models.Document) (string, error)
	// Set stores doc under id, replacing any previous version.
	Set(ctx context.Context, collection, id string, doc models.Document) error
	Update(ctx context.Context, collection, id string, patch models.JSONData) (models.Document, error)
	Delete(ctx context.Context, collection, id string) error
	Get(ctx context.Context, collection, id string) (models.Document, error)
	List(ctx context.Context, collection string, query models.DocumentQuery) ([]models.Document, error)
	BatchDelete(ctx context.Context, collection string, req models.BatchDeleteRequest) (int, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the document store can serve requests.
type HealthService interface {
	Ping(ctx context.Context) error
}
