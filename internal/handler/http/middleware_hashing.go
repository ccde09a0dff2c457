// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-collections-keeper/internal/app"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
)

// withBodyHash checks the HMAC-SHA256 of every non-empty request body
// against the HashSHA256 header. It does nothing when no hash key is
// configured.
func (h *Handler) withBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withBodyHash").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withBodyHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		received := r.Header.Get(utils.HashHeader)
		if !utils.EqualHash(body, received) {
			log.Err(errInvalidHash).Str("func", "*Handler.withBodyHash").
				Str("hash from request", received).
				Msg("hashes are not equal")
			http.Error(w, app.MsgInvalidHash, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.withBodyHash").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
