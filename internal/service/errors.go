// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Client-side errors. Write paths (RecordEntry, EditEntry, DeleteEntry)
// only ever return ErrLocalStorage, ErrNotFound, ErrPermissionDenied or
// ErrInvalidRecord; network trouble degrades to a pending local write.
var (
	ErrLocalStorage     = errors.New("local storage failure")
	ErrOffline          = errors.New("remote store is unreachable")
	ErrNotFound         = errors.New("record not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrSyncFailed       = errors.New("sync failed")
	ErrCleanupFailed    = errors.New("remote cleanup failed")
	ErrInvalidRecord    = errors.New("invalid record")
	ErrInvalidActor     = errors.New("invalid actor")
	ErrUnknownDataset   = errors.New("unknown dataset")

	// errRemoteNotFound marks a remote 404 after adapter errors are mapped.
	errRemoteNotFound = errors.New("remote document not found")
)

// Server-side errors.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidCollection     = errors.New("invalid collection name")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrStoreUnhealthy        = errors.New("document store is unhealthy")
)
