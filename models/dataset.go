// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Dataset names a logical set of records kept both on the device and in the
// remote store.
type Dataset string

const (
	// DatasetCollections holds payments collected at counters.
	DatasetCollections Dataset = "collections"
	// DatasetOnShop holds direct sales received at the shop.
	DatasetOnShop Dataset = "onshop"
)

// Datasets lists every dataset in a stable order.
var Datasets = []Dataset{DatasetCollections, DatasetOnShop}

// ParseDataset converts a user supplied name into a Dataset.
func ParseDataset(s string) (Dataset, error) {
	switch Dataset(s) {
	case DatasetCollections:
		return DatasetCollections, nil
	case DatasetOnShop, "onShopCollections":
		return DatasetOnShop, nil
	}
	return "", fmt.Errorf("unknown dataset %q", s)
}

// LocalKey is the key the dataset's records are stored under on the device.
func (d Dataset) LocalKey() string {
	switch d {
	case DatasetOnShop:
		return "@local_onshop"
	default:
		return "@local_collections"
	}
}

// TombstonesKey is the key holding remote ids deleted locally but not yet
// deleted remotely.
func (d Dataset) TombstonesKey() string {
	return d.LocalKey() + "_tombstones"
}

// PendingDeletesKey is the key holding client ids of never mirrored records
// deleted locally. An upload whose reply was lost may have stored them
// remotely anyway.
func (d Dataset) PendingDeletesKey() string {
	return d.LocalKey() + "_pending_deletes"
}

// LastSyncedKey is the key holding the time of the last successful full sync.
func (d Dataset) LastSyncedKey() string {
	return "@last_synced" + d.LocalKey()[len("@local"):]
}

// RemoteCollection is the collection name used by the remote store.
func (d Dataset) RemoteCollection() string {
	switch d {
	case DatasetOnShop:
		return "onShopCollections"
	default:
		return "collections"
	}
}

// LastCleanupKey is the device key of the daily cleanup marker.
const LastCleanupKey = "@last_cleanup_date"
