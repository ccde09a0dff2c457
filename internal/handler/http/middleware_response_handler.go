// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

// responseWriter records what withLogging reports about a request once the
// handler chain returns. WriteHeader reaches the wrapped writer at most once,
// and a Write without it counts as 200.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int

	// createdID is the id the store assigned to a new document, taken from
	// the Location header of a 201 response.
	createdID string
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	if location := w.Header().Get("Location"); statusCode == http.StatusCreated && location != "" {
		w.createdID = path.Base(location)
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// documentTarget is the route a request matched and the collection and
// document it addressed. Service routes leave collection and documentID
// empty.
type documentTarget struct {
	route      string
	collection string
	documentID string
}

// target resolves the document r addressed. The router fills its route
// context while serving, so target is only meaningful after the handler
// chain returned.
func (w *responseWriter) target(r *http.Request) documentTarget {
	t := documentTarget{documentID: w.createdID}

	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return t
	}
	t.route = rctx.RoutePattern()
	t.collection = rctx.URLParam("collection")
	if id := rctx.URLParam("id"); id != "" {
		t.documentID = id
	}
	return t
}
