// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/models"
)

const (
	documentsPath   = "/api/collections/{collection}/documents"
	documentPath    = "/api/collections/{collection}/documents/{id}"
	batchDeletePath = "/api/collections/{collection}/documents/batch-delete"

	traceIDHeader = "X-Trace-ID"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for body
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpRemoteStore{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Add implements [RemoteStore]. It POSTs the document to
// POST /api/collections/{collection}/documents and returns the assigned id.
func (h *httpRemoteStore) Add(ctx context.Context, collection string, doc models.Document) (string, error) {
	var created models.AddDocumentResponse

	req, err := h.request(ctx, collection, doc)
	if err != nil {
		return "", err
	}
	resp, err := req.SetResult(&created).Post(documentsPath)
	if err != nil {
		return "", fmt.Errorf("%w: add document: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("add document: empty id in response")
	}

	return created.ID, nil
}

// Set implements [RemoteStore] with PUT /api/collections/{collection}/documents/{id}.
func (h *httpRemoteStore) Set(ctx context.Context, collection string, doc models.Document) error {
	req, err := h.request(ctx, collection, doc)
	if err != nil {
		return err
	}
	resp, err := req.SetPathParam("id", doc.ID).Put(documentPath)
	if err != nil {
		return fmt.Errorf("%w: set document: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Update implements [RemoteStore] with PATCH /api/collections/{collection}/documents/{id}.
func (h *httpRemoteStore) Update(ctx context.Context, collection, id string, patch models.JSONData) error {
	req, err := h.request(ctx, collection, patch)
	if err != nil {
		return err
	}
	resp, err := req.SetPathParam("id", id).Patch(documentPath)
	if err != nil {
		return fmt.Errorf("%w: update document: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Delete implements [RemoteStore] with DELETE /api/collections/{collection}/documents/{id}.
func (h *httpRemoteStore) Delete(ctx context.Context, collection, id string) error {
	req, err := h.request(ctx, collection, nil)
	if err != nil {
		return err
	}
	resp, err := req.SetPathParam("id", id).Delete(documentPath)
	if err != nil {
		return fmt.Errorf("%w: delete document: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Get implements [RemoteStore] with GET /api/collections/{collection}/documents/{id}.
func (h *httpRemoteStore) Get(ctx context.Context, collection, id string) (models.Document, error) {
	var doc models.Document

	req, err := h.request(ctx, collection, nil)
	if err != nil {
		return models.Document{}, err
	}
	resp, err := req.SetPathParam("id", id).SetResult(&doc).Get(documentPath)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: get document: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// List implements [RemoteStore]. Filters travel as the owner, client_id and
// date_before query parameters of GET /api/collections/{collection}/documents.
func (h *httpRemoteStore) List(ctx context.Context, collection string, query models.DocumentQuery) ([]models.Document, error) {
	var list models.DocumentsResponse

	req, err := h.request(ctx, collection, nil)
	if err != nil {
		return nil, err
	}
	if query.Owner != "" {
		req.SetQueryParam("owner", query.Owner)
	}
	if query.ClientID != "" {
		req.SetQueryParam("client_id", query.ClientID)
	}
	if query.DateBefore != "" {
		req.SetQueryParam("date_before", query.DateBefore)
	}

	resp, err := req.SetResult(&list).Get(documentsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list documents: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if list.Documents == nil {
		list.Documents = []models.Document{}
	}

	return list.Documents, nil
}

// BatchDelete implements [RemoteStore] with
// POST /api/collections/{collection}/documents/batch-delete.
func (h *httpRemoteStore) BatchDelete(ctx context.Context, collection string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted models.BatchDeleteResponse

	req, err := h.request(ctx, collection, models.BatchDeleteRequest{IDs: ids})
	if err != nil {
		return 0, err
	}
	resp, err := req.SetResult(&deleted).Post(batchDeletePath)
	if err != nil {
		return 0, fmt.Errorf("%w: batch delete documents: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return deleted.Deleted, nil
}

// request prepares a call scoped to collection. A non-nil body is encoded
// up front so its HMAC can travel in the hash header.
func (h *httpRemoteStore) request(ctx context.Context, collection string, body any) (*resty.Request, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("collection", collection)

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	if body == nil {
		return req, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	req.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashHex(payload))
	}

	h.logger.Debug().
		Str("func", "httpRemoteStore.request").
		Str("collection", collection).
		Int("body_size", len(payload)).
		Msg("prepared remote request")

	return req, nil
}
