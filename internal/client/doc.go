// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client.
//
// It wires the device cache, the remote store adapters and the client
// services into an App and exposes them as cobra commands.
package client
