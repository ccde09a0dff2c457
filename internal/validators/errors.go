// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrInvalidMode       = errors.New("mode must be offline or online")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrMissingOwner      = errors.New("worker name or receiver is required")
	ErrMissingParty      = errors.New("counter name or customer name is required")
	ErrEmptyName         = errors.New("name cannot be blank")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidActor      = errors.New("invalid actor")
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrEmptyData         = errors.New("data is required")
	ErrEmptyIDs          = errors.New("IDs list cannot be empty")
	ErrInvalidFilter     = errors.New("invalid filter")
)
