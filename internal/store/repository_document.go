// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/models"
)

// IDGenerator produces ids for new documents.
type IDGenerator interface {
	Generate() string
}

type documentRepository struct {
	*DB
	x      *sqlx.DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewDocumentRepository returns a DocumentRepository over the server
// PostgreSQL database.
func NewDocumentRepository(db *DB, ids IDGenerator, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		x:      sqlx.NewDb(db.DB, "pgx"),
		ids:    ids,
		logger: logger,
	}
}

func (d *documentRepository) Add(ctx context.Context, collection string, doc models.Document) (string, error) {
	log := logger.FromContext(ctx)

	doc.ID = d.ids.Generate()
	query, args, err := buildInsertDocumentQuery(collection, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var inserted int64
	err = d.withRetry(ctx, func() error {
		res, execErr := d.x.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		inserted, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Add").
			Str("collection", collection).
			Str("client_id", doc.ClientID).
			Msg("failed to insert document")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if inserted == 1 {
		return doc.ID, nil
	}

	// the client id is already stored: hand back the existing id
	if doc.ClientID == "" {
		return "", ErrConflict
	}
	query, args, err = buildFindIDByClientIDQuery(collection, doc.ClientID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var existing string
	err = d.withRetry(ctx, func() error {
		return d.x.GetContext(ctx, &existing, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrConflict
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Add").
			Str("collection", collection).
			Str("client_id", doc.ClientID).
			Msg("failed to look up existing document")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "documentRepository.Add").
		Str("client_id", doc.ClientID).
		Str("id", existing).
		Msg("document already stored, returning existing id")
	return existing, nil
}

func (d *documentRepository) Set(ctx context.Context, collection string, doc models.Document) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDocumentQuery(collection, doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = d.withRetry(ctx, func() error {
		_, execErr := d.x.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Set").
			Str("collection", collection).
			Str("id", doc.ID).
			Msg("failed to upsert document")
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client id %s: %w", ErrConflict, doc.ClientID, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (d *documentRepository) Update(ctx context.Context, collection, id string, patch models.JSONData) (models.Document, error) {
	log := logger.FromContext(ctx)

	var updated models.Document
	err := d.withRetry(ctx, func() error {
		var txErr error
		updated, txErr = d.update(ctx, collection, id, patch)
		return txErr
	})
	if errors.Is(err, ErrNotFound) {
		return models.Document{}, err
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to update document")
		return models.Document{}, err
	}

	return updated, nil
}

// update locks the row, then merges the patch into its payload.
func (d *documentRepository) update(ctx context.Context, collection, id string, patch models.JSONData) (models.Document, error) {
	tx, err := d.x.BeginTxx(ctx, nil)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectDocumentQuery(collection, id, true)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var current models.Document
	if err = tx.GetContext(ctx, &current, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrNotFound
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildMergeDocumentQuery(collection, id, patch)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var updated models.Document
	if err = tx.GetContext(ctx, &updated, query, args...); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return updated, nil
}

func (d *documentRepository) Delete(ctx context.Context, collection, id string) error {
	deleted, err := d.deleteIDs(ctx, "documentRepository.Delete", collection, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *documentRepository) BatchDelete(ctx context.Context, collection string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return d.deleteIDs(ctx, "documentRepository.BatchDelete", collection, ids...)
}

func (d *documentRepository) deleteIDs(ctx context.Context, fn, collection string, ids ...string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentsQuery(collection, ids...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = d.withRetry(ctx, func() error {
		res, execErr := d.x.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		deleted, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("collection", collection).
			Int("ids", len(ids)).
			Msg("failed to delete documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int(deleted), nil
}

func (d *documentRepository) Get(ctx context.Context, collection, id string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(collection, id, false)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc models.Document
	err = d.withRetry(ctx, func() error {
		return d.x.GetContext(ctx, &doc, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Get").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to get document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc, nil
}

func (d *documentRepository) List(ctx context.Context, collection string, query models.DocumentQuery) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListDocumentsQuery(collection, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	docs := []models.Document{}
	err = d.withRetry(ctx, func() error {
		docs = docs[:0]
		return d.x.SelectContext(ctx, &docs, sqlQuery, args...)
	})
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.List").
			Str("collection", collection).
			Str("owner", query.Owner).
			Str("client_id", query.ClientID).
			Str("date_before", query.DateBefore).
			Msg("failed to list documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return docs, nil
}
