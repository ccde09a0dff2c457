// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// document store handlers and the client that talks to them.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client matches on the same strings to recover the original cause, so
// the wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCollection is returned when the collection path segment is
	// not a valid collection name.
	MsgInvalidCollection = "invalid collection name"

	// MsgInvalidFilter is returned when a listing filter is malformed
	// (e.g. date_before is not a YYYY-MM-DD date).
	MsgInvalidFilter = "invalid filter"

	// MsgNoIDsProvided is returned when a batch delete request contains an
	// empty id list.
	MsgNoIDsProvided = "no ids provided"

	// MsgNoFieldsToUpdate is returned when a patch request carries an empty
	// object.
	MsgNoFieldsToUpdate = "no fields to update"

	// MsgInvalidHash is returned when the HashSHA256 header does not match
	// the request body.
	MsgInvalidHash = "invalid request hash"

	// MsgInvalidGzip is returned when a request declares a gzip body that
	// cannot be inflated.
	MsgInvalidGzip = "invalid gzip body"

	// MsgDocumentNotFound is returned when a read, update, or delete
	// operation targets a document that does not exist in the collection.
	MsgDocumentNotFound = "document not found"

	// MsgDocumentConflict is returned when a write collides with another
	// document, e.g. a PUT reusing a client id stored under a different id.
	MsgDocumentConflict = "document conflict"

	// MsgStoreUnavailable is returned when the database stayed unreachable
	// after the retry budget was spent. Clients treat it as being offline.
	MsgStoreUnavailable = "store temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
