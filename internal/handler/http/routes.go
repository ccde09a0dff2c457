// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	documentsRoute   = "/api/collections/{collection}/documents"
	documentRoute    = "/api/collections/{collection}/documents/{id}"
	batchDeleteRoute = "/api/collections/{collection}/documents/batch-delete"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	// service routes
	router.Group(func(r chi.Router) {
		r.Get("/api/ping", h.ping)
		r.Get("/api/version/", h.getServerVersion)
	})

	// document store
	router.Group(func(r chi.Router) {
		r.Use(h.withBodyHash)

		r.Post(documentsRoute, h.addDocument)
		r.Get(documentsRoute, h.listDocuments)
		r.Post(batchDeleteRoute, h.batchDeleteDocuments)

		r.Get(documentRoute, h.getDocument)
		r.Put(documentRoute, h.setDocument)
		r.Patch(documentRoute, h.updateDocument)
		r.Delete(documentRoute, h.deleteDocument)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
