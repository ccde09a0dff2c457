// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-collections-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository persists documents of every collection in one table.
// Collection names are trusted; validation happens in the service layer.
type DocumentRepository interface {
	// Add stores doc under a new id. If a document with the same client id
	// already exists in the collection its id is returned instead, so a
	// retried upload does not create a duplicate.
	Add(ctx context.Context, collection string, doc models.Document) (string, error)
	// Set creates or fully replaces the document stored under doc.ID.
	Set(ctx context.Context, collection string, doc models.Document) error
	// Update merges patch into the stored payload.
	Update(ctx context.Context, collection, id string, patch models.JSONData) (models.Document, error)
	Delete(ctx context.Context, collection, id string) error
	Get(ctx context.Context, collection, id string) (models.Document, error)
	List(ctx context.Context, collection string, query models.DocumentQuery) ([]models.Document, error)
	// BatchDelete removes the listed ids and returns how many existed.
	BatchDelete(ctx context.Context, collection string, ids []string) (int, error)
}
