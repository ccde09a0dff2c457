// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-collections-keeper/internal/app"
	"github.com/MKhiriev/go-collections-keeper/internal/service"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/internal/validators"
	"github.com/MKhiriev/go-collections-keeper/models"
)

const testDocumentBody = `{"client_id":"c1","owner":"ravi","date":"2026-03-31","data":{"amount":"100","mode":"offline"}}`

func trimmedBody(rr *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rr.Body.String())
}

func TestAddDocument(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.documents.EXPECT().Add(gomock.Any(), "collections", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, doc models.Document) (string, error) {
			assert.Equal(t, "c1", doc.ClientID)
			assert.Equal(t, "ravi", doc.Owner)
			assert.Equal(t, "2026-03-31", doc.Date)
			assert.JSONEq(t, `{"amount":"100","mode":"offline"}`, string(doc.Data))
			return "01JREMOTE", nil
		})

	rr := serve(h, http.MethodPost, "/api/collections/collections/documents", []byte(testDocumentBody))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/collections/collections/documents/01JREMOTE", rr.Header().Get("Location"))
	var got models.AddDocumentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "01JREMOTE", got.ID)
}

func TestAddDocument_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "unknown field", body: `{"date":"2026-03-31","data":{},"extra":1}`},
		{name: "empty", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// сервис не должен вызываться
			h, _ := newMockedHandler(t, "")

			rr := serve(h, http.MethodPost, "/api/collections/collections/documents", []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, trimmedBody(rr))
		})
	}
}

func TestSetDocument(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.documents.EXPECT().Set(gomock.Any(), "collections", "R1", gomock.Any()).Return(nil)

	rr := serve(h, http.MethodPut, "/api/collections/collections/documents/R1", []byte(testDocumentBody))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestUpdateDocument(t *testing.T) {
	h, m := newMockedHandler(t, "")
	patch := `{"amount":"250"}`
	m.documents.EXPECT().Update(gomock.Any(), "collections", "R1", models.JSONData(patch)).
		Return(models.Document{ID: "R1", Date: "2026-03-31", Data: models.JSONData(`{"amount":"250"}`)}, nil)

	rr := serve(h, http.MethodPatch, "/api/collections/collections/documents/R1", []byte(patch))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "R1", got.ID)
	assert.JSONEq(t, patch, string(got.Data))
}

func TestGetDocument(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.documents.EXPECT().Get(gomock.Any(), "onShopCollections", "R9").
		Return(models.Document{ID: "R9", ClientID: "o1", Date: "2026-03-30", Data: models.JSONData(`{}`)}, nil)

	rr := serve(h, http.MethodGet, "/api/collections/onShopCollections/documents/R9", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "o1", got.ClientID)
}

func TestListDocuments(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.documents.EXPECT().
		List(gomock.Any(), "collections", models.DocumentQuery{Owner: "ravi", ClientID: "c1", DateBefore: "2026-03-01"}).
		Return([]models.Document{{ID: "R1"}, {ID: "R2"}}, nil)

	rr := serve(h, http.MethodGet, "/api/collections/collections/documents?owner=ravi&client_id=c1&date_before=2026-03-01", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.DocumentsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Length)
	assert.Len(t, got.Documents, 2)
}

func TestListDocuments_InvalidFilter(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.documents.EXPECT().List(gomock.Any(), "collections", gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidFilter))

	rr := serve(h, http.MethodGet, "/api/collections/collections/documents?date_before=yesterday", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidFilter, trimmedBody(rr))
}

func TestBatchDeleteDocuments(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.documents.EXPECT().
		BatchDelete(gomock.Any(), "collections", models.BatchDeleteRequest{IDs: []string{"R1", "R2", "R3"}}).
		Return(2, nil)

	rr := serve(h, http.MethodPost, "/api/collections/collections/documents/batch-delete", []byte(`{"ids":["R1","R2","R3"]}`))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.BatchDeleteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Deleted)
}

func TestDocumentHandlers_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid collection",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidCollection, validators.ErrInvalidCollection),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidCollection,
		},
		{
			name:       "no fields",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgNoFieldsToUpdate,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: no rows", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgDocumentNotFound,
		},
		{
			name:       "conflict",
			err:        store.ErrConflict,
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgDocumentConflict,
		},
		{
			name:       "transient",
			err:        fmt.Errorf("%w: too many connections", store.ErrTransient),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   app.MsgStoreUnavailable,
		},
		{
			name:       "sql failure",
			err:        fmt.Errorf("%w: syntax", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, "")
			m.documents.EXPECT().Update(gomock.Any(), "collections", "R1", gomock.Any()).
				Return(models.Document{}, tt.err)

			rr := serve(h, http.MethodPatch, "/api/collections/collections/documents/R1", []byte(`{}`))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, trimmedBody(rr))
		})
	}
}

func TestDeleteDocument_NotFound(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.documents.EXPECT().Delete(gomock.Any(), "collections", "missing").
		Return(fmt.Errorf("%w: missing", store.ErrNotFound))

	rr := serve(h, http.MethodDelete, "/api/collections/collections/documents/missing", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
