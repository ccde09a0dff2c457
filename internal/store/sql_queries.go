// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-collections-keeper/models"
)

const (
	kvTable        = "kv_store"
	documentsTable = "documents"
)

var (
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	documentColumns = []string{"collection", "id", "client_id", "owner", "date", "data", "created_at", "updated_at"}
)

// client-side key/value queries

func buildGetValueQuery(key string) (string, []any, error) {
	return sqliteBuilder.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
}

func buildSetValueQuery(key, value string, now time.Time) (string, []any, error) {
	return sqliteBuilder.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return sqliteBuilder.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
}

// server-side document queries

func buildInsertDocumentQuery(collection string, doc models.Document) (string, []any, error) {
	return pgBuilder.Insert(documentsTable).
		Columns("collection", "id", "client_id", "owner", "date", "data").
		Values(collection, doc.ID, doc.ClientID, doc.Owner, doc.Date, doc.Data).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildFindIDByClientIDQuery(collection, clientID string) (string, []any, error) {
	return pgBuilder.Select("id").From(documentsTable).
		Where(sq.Eq{"collection": collection, "client_id": clientID}).
		ToSql()
}

func buildUpsertDocumentQuery(collection string, doc models.Document) (string, []any, error) {
	return pgBuilder.Insert(documentsTable).
		Columns("collection", "id", "client_id", "owner", "date", "data").
		Values(collection, doc.ID, doc.ClientID, doc.Owner, doc.Date, doc.Data).
		Suffix(`ON CONFLICT (collection, id) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			owner = EXCLUDED.owner,
			date = EXCLUDED.date,
			data = EXCLUDED.data,
			updated_at = NOW()`).
		ToSql()
}

func buildSelectDocumentQuery(collection, id string, forUpdate bool) (string, []any, error) {
	b := pgBuilder.Select(documentColumns...).From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	return b.ToSql()
}

func buildMergeDocumentQuery(collection, id string, patch models.JSONData) (string, []any, error) {
	return pgBuilder.Update(documentsTable).
		Set("data", sq.Expr("data || ?::jsonb", patch)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"collection": collection, "id": id}).
		Suffix("RETURNING " + strings.Join(documentColumns, ", ")).
		ToSql()
}

func buildDeleteDocumentsQuery(collection string, ids ...string) (string, []any, error) {
	where := sq.Eq{"collection": collection, "id": ids}
	if len(ids) == 1 {
		where = sq.Eq{"collection": collection, "id": ids[0]}
	}
	return pgBuilder.Delete(documentsTable).Where(where).ToSql()
}

func buildListDocumentsQuery(collection string, query models.DocumentQuery) (string, []any, error) {
	b := pgBuilder.Select(documentColumns...).From(documentsTable).
		Where(sq.Eq{"collection": collection})
	if query.Owner != "" {
		b = b.Where(sq.Eq{"owner": query.Owner})
	}
	if query.ClientID != "" {
		b = b.Where(sq.Eq{"client_id": query.ClientID})
	}
	if query.DateBefore != "" {
		b = b.Where(sq.Lt{"date": query.DateBefore})
	}
	return b.OrderBy("date", "created_at", "id").ToSql()
}
