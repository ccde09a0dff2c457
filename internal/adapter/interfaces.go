// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the remote document store.
//
// [RemoteStore] decouples the sync services from the transport; the package
// ships an HTTP implementation over resty ([NewHTTPRemoteStore]).
// [ConnectivityOracle] answers "is the remote store reachable right now" by
// pinging the HTTP API or the gRPC health service.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-collections-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is a document store addressed by collection name and remote id.
type RemoteStore interface {
	// Add stores doc and returns the id the store assigned. Adding a
	// document whose client id is already stored returns the existing id.
	Add(ctx context.Context, collection string, doc models.Document) (string, error)

	// Set creates or replaces the document stored under doc.ID.
	Set(ctx context.Context, collection string, doc models.Document) error

	// Update merges patch into the stored payload. Returns [ErrNotFound]
	// (wrapped) if the document does not exist.
	Update(ctx context.Context, collection, id string, patch models.JSONData) error

	// Delete removes a document. Returns [ErrNotFound] (wrapped) if it does
	// not exist.
	Delete(ctx context.Context, collection, id string) error

	Get(ctx context.Context, collection, id string) (models.Document, error)

	// List returns the documents matching query.
	List(ctx context.Context, collection string, query models.DocumentQuery) ([]models.Document, error)

	// BatchDelete removes ids in one round trip and reports how many existed.
	BatchDelete(ctx context.Context, collection string, ids []string) (int, error)
}

// ConnectivityOracle reports whether the remote store can be reached.
// Implementations must answer within their own check timeout.
type ConnectivityOracle interface {
	Online(ctx context.Context) bool
}
