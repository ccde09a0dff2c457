// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/models"
)

type documentService struct {
	documentRepository store.DocumentRepository

	logger *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		logger:             logger,
	}
}

func (d *documentService) Add(ctx context.Context, collection string, doc models.Document) (string, error) {
	return d.documentRepository.Add(ctx, collection, doc)
}

func (d *documentService) Set(ctx context.Context, collection, id string, doc models.Document) error {
	doc.ID = id
	return d.documentRepository.Set(ctx, collection, doc)
}

func (d *documentService) Update(ctx context.Context, collection, id string, patch models.JSONData) (models.Document, error) {
	return d.documentRepository.Update(ctx, collection, id, patch)
}

func (d *documentService) Delete(ctx context.Context, collection, id string) error {
	return d.documentRepository.Delete(ctx, collection, id)
}

func (d *documentService) Get(ctx context.Context, collection, id string) (models.Document, error) {
	return d.documentRepository.Get(ctx, collection, id)
}

func (d *documentService) List(ctx context.Context, collection string, query models.DocumentQuery) ([]models.Document, error) {
	return d.documentRepository.List(ctx, collection, query)
}

func (d *documentService) BatchDelete(ctx context.Context, collection string, req models.BatchDeleteRequest) (int, error) {
	return d.documentRepository.BatchDelete(ctx, collection, req.IDs)
}
