// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CleanupResult describes what a retention pass removed from one store.
type CleanupResult struct {
	Dataset   Dataset `json:"dataset"`
	Cutoff    string  `json:"cutoff"`
	Removed   int     `json:"removed"`
	Remaining int     `json:"remaining,omitempty"`
}

// CleanupReport is the outcome of the daily automatic cleanup.
type CleanupReport struct {
	Skipped bool            `json:"skipped"`
	Date    string          `json:"date,omitempty"`
	Local   []CleanupResult `json:"local,omitempty"`
	Remote  []CleanupResult `json:"remote,omitempty"`
	// RemoteSkipped is set when the device was offline and only the local
	// cache was pruned.
	RemoteSkipped bool `json:"remote_skipped,omitempty"`
}

// TotalRemoved sums removals across both stores.
func (r CleanupReport) TotalRemoved() int {
	total := 0
	for _, res := range r.Local {
		total += res.Removed
	}
	for _, res := range r.Remote {
		total += res.Removed
	}
	return total
}
