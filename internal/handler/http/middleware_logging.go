// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
)

// withLogging writes one access line per request. Document routes add the
// collection and document id; server errors are logged at error level.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		}

		target := lw.target(r)
		if target.route != "" {
			event = event.Str("route", target.route)
		}
		if target.collection != "" {
			event = event.Str("collection", target.collection)
		}
		if target.documentID != "" {
			event = event.Str("document_id", target.documentID)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
