// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errInvalidMode   = errors.New("mode must be cash or online")
	errInvalidAmount = errors.New("amount must be a decimal number")
	errNothingToEdit = errors.New("nothing to edit: pass --amount, --mode or --name")
	errNoParty       = errors.New("--counter or --customer is required")
)
