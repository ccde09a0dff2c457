// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-collections-keeper/models"
)

// DatasetLocks serializes read-modify-write cycles on the device cache per
// dataset. The sync and retention services share one instance.
type DatasetLocks struct {
	mu    sync.Mutex
	locks map[models.Dataset]*sync.Mutex
}

func NewDatasetLocks() *DatasetLocks {
	return &DatasetLocks{locks: make(map[models.Dataset]*sync.Mutex)}
}

// Lock blocks until the dataset is free and returns the matching unlock.
func (l *DatasetLocks) Lock(dataset models.Dataset) func() {
	l.mu.Lock()
	m, ok := l.locks[dataset]
	if !ok {
		m = &sync.Mutex{}
		l.locks[dataset] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
