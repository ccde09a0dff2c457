// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncScope restricts a full sync to a subset of the remote records.
// An empty Owner means every record.
type SyncScope struct {
	Owner string `json:"owner,omitempty"`
}

// ScopeAll returns the unrestricted scope.
func ScopeAll() SyncScope { return SyncScope{} }

// ScopeOwner returns a scope limited to records owned by name.
func ScopeOwner(name string) SyncScope { return SyncScope{Owner: name} }

// All reports whether the scope is unrestricted.
func (s SyncScope) All() bool { return s.Owner == "" }

// Contains reports whether r falls inside the scope.
func (s SyncScope) Contains(r Record) bool {
	return s.All() || r.Owner() == s.Owner
}

// SyncReport summarizes one full sync run.
type SyncReport struct {
	Dataset Dataset `json:"dataset"`
	// Uploaded counts pending records added to the remote store.
	Uploaded int `json:"uploaded"`
	// Restored counts mirrored records that had vanished remotely and were
	// written back under their remote id.
	Restored int `json:"restored"`
	// Updated counts dirty records whose edits were pushed.
	Updated int `json:"updated"`
	// DeletedRemote counts tombstones replayed as remote deletes.
	DeletedRemote int `json:"deleted_remote"`
	// TotalRemote is the size of the remote set read back after uploading.
	TotalRemote int       `json:"total_remote"`
	SyncedAt    time.Time `json:"synced_at"`
}

// SyncStatus is the display data behind "saved offline, pending sync".
type SyncStatus struct {
	Dataset      Dataset    `json:"dataset"`
	Total        int        `json:"total"`
	Pending      int        `json:"pending"`
	Tombstones   int        `json:"tombstones"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// RecordResult is returned by a local-first write.
type RecordResult struct {
	Record Record `json:"record"`
	// Mirrored is true when the remote store accepted the record during the
	// write itself.
	Mirrored bool `json:"mirrored"`
}
