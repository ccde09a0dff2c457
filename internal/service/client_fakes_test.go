// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-collections-keeper/internal/adapter"
	"github.com/MKhiriev/go-collections-keeper/internal/app"
	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/internal/validators"
	"github.com/MKhiriev/go-collections-keeper/models"
)

// memoryLocal - LocalStorage в памяти.
type memoryLocal struct {
	mu             sync.Mutex
	records        map[models.Dataset][]models.Record
	tombstones     map[models.Dataset][]string
	pendingDeletes map[models.Dataset][]string
	lastSynced     map[models.Dataset]time.Time
	cleanupDate    string

	failSave     error
	failReplace  error
	failMarker   error
	markerWrites atomic.Int64
}

func newMemoryLocal() *memoryLocal {
	return &memoryLocal{
		records:        make(map[models.Dataset][]models.Record),
		tombstones:     make(map[models.Dataset][]string),
		pendingDeletes: make(map[models.Dataset][]string),
		lastSynced:     make(map[models.Dataset]time.Time),
	}
}

func (m *memoryLocal) Records(_ context.Context, dataset models.Dataset) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Record{}, m.records[dataset]...), nil
}

func (m *memoryLocal) SaveRecords(_ context.Context, dataset models.Dataset, records []models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		return m.failSave
	}
	m.records[dataset] = append([]models.Record{}, records...)
	return nil
}

func (m *memoryLocal) Tombstones(_ context.Context, dataset models.Dataset) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.tombstones[dataset]...), nil
}

func (m *memoryLocal) SaveTombstones(_ context.Context, dataset models.Dataset, remoteIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tombstones[dataset] = append([]string{}, remoteIDs...)
	return nil
}

func (m *memoryLocal) Replace(_ context.Context, dataset models.Dataset, records []models.Record, tombstones []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReplace != nil {
		return m.failReplace
	}
	m.records[dataset] = append([]models.Record{}, records...)
	m.tombstones[dataset] = append([]string{}, tombstones...)
	return nil
}

func (m *memoryLocal) PendingDeletes(_ context.Context, dataset models.Dataset) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.pendingDeletes[dataset]...), nil
}

func (m *memoryLocal) SavePendingDeletes(_ context.Context, dataset models.Dataset, clientIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingDeletes[dataset] = append([]string{}, clientIDs...)
	return nil
}

func (m *memoryLocal) ReplacePending(_ context.Context, dataset models.Dataset, records []models.Record, clientIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReplace != nil {
		return m.failReplace
	}
	m.records[dataset] = append([]models.Record{}, records...)
	m.pendingDeletes[dataset] = append([]string{}, clientIDs...)
	return nil
}

func (m *memoryLocal) LastSynced(_ context.Context, dataset models.Dataset) (*time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.lastSynced[dataset]
	if !ok {
		return nil, nil
	}
	return &at, nil
}

func (m *memoryLocal) SetLastSynced(_ context.Context, dataset models.Dataset, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSynced[dataset] = at
	return nil
}

func (m *memoryLocal) LastCleanupDate(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleanupDate, nil
}

func (m *memoryLocal) SetLastCleanupDate(_ context.Context, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failMarker != nil {
		return m.failMarker
	}
	m.markerWrites.Add(1)
	m.cleanupDate = date
	return nil
}

func (m *memoryLocal) put(dataset models.Dataset, records ...models.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[dataset] = append(m.records[dataset], records...)
}

func (m *memoryLocal) get(dataset models.Dataset, clientID string) (models.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records[dataset] {
		if r.ClientID == clientID {
			return r, true
		}
	}
	return models.Record{}, false
}

// fakeRemote - документное хранилище в памяти, отвечает ошибками адаптера.
type fakeRemote struct {
	mu     sync.Mutex
	docs   map[string]map[string]models.Document
	nextID int

	// failAfterAdds: после стольких успешных Add остальные падают
	failAfterAdds int
	addCalls      int
	// loseAddAcks: Add сохраняет документ, но ответ теряется
	loseAddAcks   bool
	failList      error
	failDelete    error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{docs: make(map[string]map[string]models.Document), failAfterAdds: -1}
}

func notFound() error {
	return fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgDocumentNotFound)
}

func (f *fakeRemote) Add(_ context.Context, collection string, doc models.Document) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAfterAdds >= 0 && f.addCalls >= f.failAfterAdds {
		return "", fmt.Errorf("%w: connection reset", adapter.ErrTransport)
	}
	f.addCalls++

	for id, existing := range f.docs[collection] {
		if doc.ClientID != "" && existing.ClientID == doc.ClientID {
			return id, nil
		}
	}
	f.nextID++
	doc.ID = fmt.Sprintf("01J%023d", f.nextID)
	f.store(collection, doc)
	if f.loseAddAcks {
		return "", fmt.Errorf("%w: context deadline exceeded", adapter.ErrTransport)
	}
	return doc.ID, nil
}

func (f *fakeRemote) Set(_ context.Context, collection string, doc models.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store(collection, doc)
	return nil
}

func (f *fakeRemote) Update(_ context.Context, collection, id string, patch models.JSONData) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, ok := f.docs[collection][id]
	if !ok {
		return notFound()
	}
	var data, fields map[string]any
	if err := json.Unmarshal(doc.Data, &data); err != nil {
		return err
	}
	if err := json.Unmarshal(patch, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		data[k] = v
	}
	merged, err := json.Marshal(data)
	if err != nil {
		return err
	}
	doc.Data = merged
	f.docs[collection][id] = doc
	return nil
}

func (f *fakeRemote) Delete(_ context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.docs[collection][id]; !ok {
		return notFound()
	}
	delete(f.docs[collection], id)
	return nil
}

func (f *fakeRemote) Get(_ context.Context, collection, id string) (models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[collection][id]
	if !ok {
		return models.Document{}, notFound()
	}
	return doc, nil
}

func (f *fakeRemote) List(_ context.Context, collection string, query models.DocumentQuery) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList != nil {
		return nil, f.failList
	}

	docs := []models.Document{}
	for _, doc := range f.docs[collection] {
		if query.Owner != "" && doc.Owner != query.Owner {
			continue
		}
		if query.ClientID != "" && doc.ClientID != query.ClientID {
			continue
		}
		if query.DateBefore != "" && doc.Date >= query.DateBefore {
			continue
		}
		docs = append(docs, doc)
	}
	slices.SortFunc(docs, func(a, b models.Document) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return docs, nil
}

func (f *fakeRemote) BatchDelete(_ context.Context, collection string, ids []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := 0
	for _, id := range ids {
		if _, ok := f.docs[collection][id]; ok {
			delete(f.docs[collection], id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeRemote) store(collection string, doc models.Document) {
	if f.docs[collection] == nil {
		f.docs[collection] = make(map[string]models.Document)
	}
	doc.Collection = collection
	f.docs[collection][doc.ID] = doc
}

func (f *fakeRemote) ids(collection string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.docs[collection]))
	for id := range f.docs[collection] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (f *fakeRemote) has(collection, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.docs[collection][id]
	return ok
}

// seed stores r remotely as if it had been mirrored earlier.
func (f *fakeRemote) seed(t *testing.T, dataset models.Dataset, r models.Record) {
	t.Helper()
	doc, err := models.NewDocument(r)
	if err != nil {
		t.Fatal(err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store(dataset.RemoteCollection(), doc)
}

// switchOracle - переключаемая сеть.
type switchOracle struct {
	online atomic.Bool
}

func (o *switchOracle) Online(context.Context) bool { return o.online.Load() }

// fakeClock - управляемые часы.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// counterIDs выдаёт предсказуемые client id.
type counterIDs struct {
	n atomic.Int64
}

func (c *counterIDs) Generate() string {
	return fmt.Sprintf("client-%03d", c.n.Add(1))
}

var (
	adminActor  = models.Actor{Name: "boss", Role: models.RoleAdmin}
	workerActor = models.Actor{Name: "ravi", Role: models.RoleWorker}
)

// testNow is 2026-03-31 10:00 in the business time zone.
var testNow = time.Date(2026, 3, 31, 4, 30, 0, 0, time.UTC)

const testToday = "2026-03-31"

type engineFixture struct {
	local  *memoryLocal
	remote *fakeRemote
	oracle *switchOracle
	clock  *fakeClock
	locks  *DatasetLocks
	sync   ClientSyncService
	ret    ClientRetentionService
}

func newEngineFixture() *engineFixture {
	f := &engineFixture{
		local:  newMemoryLocal(),
		remote: newFakeRemote(),
		oracle: &switchOracle{},
		clock:  &fakeClock{now: testNow},
		locks:  NewDatasetLocks(),
	}
	f.sync = NewClientSyncService(f.local, f.remote, f.oracle, validators.NewRecordValidator(),
		f.clock, &counterIDs{}, f.locks, time.Second, 30, logger.Nop())
	f.ret = NewClientRetentionService(f.local, f.remote, f.oracle, f.clock, f.locks,
		config.ClientRetention{Days: 30, BatchSize: 500}, time.Second, logger.Nop())
	return f
}

func newCollection(worker, counter string, amount int64, mode models.Mode) models.Record {
	return models.Record{
		WorkerName:  worker,
		CounterID:   "cnt-" + counter,
		CounterName: counter,
		Amount:      decimal.NewFromInt(amount),
		Mode:        mode,
	}
}

func dated(r models.Record, clientID, date string) models.Record {
	r.ClientID = clientID
	r.Date = date
	r.Timestamp = testNow
	return r
}

var _ utils.Clock = (*fakeClock)(nil)
