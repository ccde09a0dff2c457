// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-collections-keeper/internal/service"
)

var (
	// errInvalidFilter is returned when a listing query parameter is
	// malformed. It wraps service.ErrInvalidDataProvided so the request is
	// answered with 400.
	errInvalidFilter = fmt.Errorf("%w: invalid filter", service.ErrInvalidDataProvided)

	// errInvalidHash is returned by the hashing middleware when the
	// HashSHA256 header does not match the body.
	errInvalidHash = errors.New("hash mismatch")

	// errInvalidGzip is logged when a gzip request body cannot be read.
	errInvalidGzip = errors.New("invalid gzip request body")
)
