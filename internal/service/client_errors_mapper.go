// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-collections-keeper/internal/adapter"
	"github.com/MKhiriev/go-collections-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", errRemoteNotFound, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgNoFieldsToUpdate:
			return fmt.Errorf("%w: %s", ErrInvalidRecord, msg)
		case app.MsgInvalidCollection:
			return fmt.Errorf("%w: %s", ErrUnknownDataset, msg)
		}

	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrOffline, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

func isRemoteNotFound(err error) bool {
	return errors.Is(err, errRemoteNotFound)
}
