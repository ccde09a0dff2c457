// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It runs the document store over HTTP and the gRPC health protocol, including
// startup, signal handling, and graceful shutdown of all enabled transports.
package server
