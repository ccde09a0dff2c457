// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-collections-keeper/internal/validators"
	"github.com/MKhiriev/go-collections-keeper/models"
)

// DocumentValidationService rejects malformed input before it reaches the
// repository. Collection errors wrap ErrInvalidCollection, everything else
// wraps ErrInvalidDataProvided.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *DocumentValidationService) Add(ctx context.Context, collection string, doc models.Document) (string, error) {
	if err := v.validateDocument(ctx, collection, doc); err != nil {
		return "", err
	}
	return v.inner.Add(ctx, collection, doc)
}

func (v *DocumentValidationService) Set(ctx context.Context, collection, id string, doc models.Document) error {
	if err := v.validateID(collection, id); err != nil {
		return err
	}
	if err := v.validateDocument(ctx, collection, doc); err != nil {
		return err
	}
	return v.inner.Set(ctx, collection, id, doc)
}

func (v *DocumentValidationService) Update(ctx context.Context, collection, id string, patch models.JSONData) (models.Document, error) {
	if err := v.validateID(collection, id); err != nil {
		return models.Document{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return models.Document{}, fmt.Errorf("%w: patch must be a JSON object: %w", ErrInvalidDataProvided, err)
	}
	if len(fields) == 0 {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate)
	}

	return v.inner.Update(ctx, collection, id, patch)
}

func (v *DocumentValidationService) Delete(ctx context.Context, collection, id string) error {
	if err := v.validateID(collection, id); err != nil {
		return err
	}
	return v.inner.Delete(ctx, collection, id)
}

func (v *DocumentValidationService) Get(ctx context.Context, collection, id string) (models.Document, error) {
	if err := v.validateID(collection, id); err != nil {
		return models.Document{}, err
	}
	return v.inner.Get(ctx, collection, id)
}

func (v *DocumentValidationService) List(ctx context.Context, collection string, query models.DocumentQuery) ([]models.Document, error) {
	if err := v.validateCollection(collection); err != nil {
		return nil, err
	}
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.List(ctx, collection, query)
}

func (v *DocumentValidationService) BatchDelete(ctx context.Context, collection string, req models.BatchDeleteRequest) (int, error) {
	if err := v.validateCollection(collection); err != nil {
		return 0, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.BatchDelete(ctx, collection, req)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}

func (v *DocumentValidationService) validateCollection(collection string) error {
	if err := validators.ValidateCollection(collection); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCollection, err)
	}
	return nil
}

func (v *DocumentValidationService) validateID(collection, id string) error {
	if err := v.validateCollection(collection); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: empty document id", ErrInvalidDataProvided)
	}
	return nil
}

func (v *DocumentValidationService) validateDocument(ctx context.Context, collection string, doc models.Document) error {
	if err := v.validateCollection(collection); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !json.Valid(doc.Data) {
		return fmt.Errorf("%w: data is not valid JSON", ErrInvalidDataProvided)
	}
	return nil
}
