// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransports means the server config names neither the document API
// address nor the health check address.
var errNoTransports = errors.New("neither document api nor health check address is configured")
