// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-collections-keeper/internal/app"
	"github.com/MKhiriev/go-collections-keeper/internal/service"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidCollection:     http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrStoreUnhealthy:        http.StatusServiceUnavailable,

	store.ErrNotFound:  http.StatusNotFound,
	store.ErrConflict:  http.StatusConflict,
	store.ErrTransient: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessages is checked in order: the first match wins, so narrower
// errors come before the ones they are wrapped in.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrNoFieldsToUpdate, app.MsgNoFieldsToUpdate},
	{validators.ErrEmptyIDs, app.MsgNoIDsProvided},
	{service.ErrInvalidCollection, app.MsgInvalidCollection},
	{errInvalidFilter, app.MsgInvalidFilter},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{store.ErrNotFound, app.MsgDocumentNotFound},
	{store.ErrConflict, app.MsgDocumentConflict},
	{store.ErrTransient, app.MsgStoreUnavailable},
	{service.ErrStoreUnhealthy, app.MsgStoreUnavailable},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the body the client matches on to recover the
// cause of a failed request.
func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}
