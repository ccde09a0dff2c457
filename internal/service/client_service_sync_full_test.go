// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-collections-keeper/internal/adapter"
	"github.com/MKhiriev/go-collections-keeper/internal/report"
	"github.com/MKhiriev/go-collections-keeper/models"
)

func remoteIDs(records []models.Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.RemoteID)
	}
	slices.Sort(ids)
	return ids
}

func TestFullSync_Offline(t *testing.T) {
	f := newEngineFixture()
	f.local.put(models.DatasetCollections, dated(newCollection("ravi", "Shop A", 100, models.ModeCash), "c1", testToday))

	_, err := f.sync.FullSync(context.Background(), adminActor, models.DatasetCollections, models.ScopeAll())
	assert.ErrorIs(t, err, ErrOffline)

	stored, _ := f.local.get(models.DatasetCollections, "c1")
	assert.Empty(t, stored.RemoteID)
	last, _ := f.local.LastSynced(context.Background(), models.DatasetCollections)
	assert.Nil(t, last)
}

func TestFullSync_WorkerCannotWidenScope(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)

	_, err := f.sync.FullSync(context.Background(), workerActor, models.DatasetCollections, models.ScopeAll())
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.sync.FullSync(context.Background(), workerActor, models.DatasetCollections, models.ScopeOwner("anil"))
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestFullSync_Converges(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	pending1 := dated(newCollection("ravi", "Shop A", 100, models.ModeCash), "c1", testToday)
	pending2 := dated(newCollection("ravi", "Shop B", 200, models.ModeOnline), "c2", yesterday)
	kept := mirrored(dated(newCollection("ravi", "Shop A", 300, models.ModeCash), "c3", yesterday), "R3")
	vanished := mirrored(dated(newCollection("anil", "Shop C", 400, models.ModeCash), "c4", testToday), "R4")
	dirty := mirrored(dated(newCollection("anil", "Shop C", 100, models.ModeCash), "c5", testToday), "R5")
	remoteOnly := mirrored(dated(newCollection("mohan", "Shop D", 50, models.ModeOnline), "c6", testToday), "R6")

	f.remote.seed(t, models.DatasetCollections, kept)
	f.remote.seed(t, models.DatasetCollections, dirty)
	f.remote.seed(t, models.DatasetCollections, remoteOnly)

	dirty.Amount = decimal.NewFromInt(500)
	dirty.Dirty = true
	f.local.put(models.DatasetCollections, pending1, pending2, kept, vanished, dirty)

	rep, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Uploaded)
	assert.Equal(t, 1, rep.Restored)
	assert.Equal(t, 1, rep.Updated)
	assert.Equal(t, 0, rep.DeletedRemote)
	assert.Equal(t, 6, rep.TotalRemote)
	assert.Equal(t, testNow, rep.SyncedAt)

	records, _ := f.local.Records(ctx, models.DatasetCollections)
	require.Len(t, records, 6)
	for _, r := range records {
		assert.True(t, r.Mirrored(), "запись %s должна быть зеркалирована", r.ClientID)
	}
	assert.Equal(t, f.remote.ids("collections"), remoteIDs(records))

	doc, err := f.remote.Get(ctx, "collections", "R5")
	require.NoError(t, err)
	pushed, err := doc.Record()
	require.NoError(t, err)
	assert.True(t, pushed.Amount.Equal(decimal.NewFromInt(500)))

	last, _ := f.local.LastSynced(ctx, models.DatasetCollections)
	require.NotNil(t, last)
	assert.Equal(t, testNow, *last)

	// повторная синхронизация ничего не меняет
	again, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	require.NoError(t, err)
	assert.Zero(t, again.Uploaded+again.Restored+again.Updated+again.DeletedRemote)
	assert.Equal(t, 6, again.TotalRemote)
	assert.Len(t, f.remote.ids("collections"), 6)
}

func TestFullSync_ReplaysTombstones(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	gone := mirrored(dated(newCollection("ravi", "Shop A", 100, models.ModeCash), "c9", testToday), "R9")
	f.remote.seed(t, models.DatasetCollections, gone)
	require.NoError(t, f.local.SaveTombstones(ctx, models.DatasetCollections, []string{"R9", "R10"}))

	rep, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.DeletedRemote)
	assert.Equal(t, 0, rep.TotalRemote)
	assert.False(t, f.remote.has("collections", "R9"))

	tombstones, _ := f.local.Tombstones(ctx, models.DatasetCollections)
	assert.Empty(t, tombstones)
	records, _ := f.local.Records(ctx, models.DatasetCollections)
	assert.Empty(t, records, "удалённая запись не должна вернуться")
}

func TestFullSync_WorkerScope(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	mine := dated(newCollection("ravi", "Shop A", 100, models.ModeCash), "c1", testToday)
	theirs := mirrored(dated(newCollection("anil", "Shop B", 200, models.ModeCash), "c5", testToday), "R5")
	mineRemote := mirrored(dated(newCollection("ravi", "Shop C", 300, models.ModeCash), "c6", yesterday), "R6")
	theirsRemote := mirrored(dated(newCollection("anil", "Shop D", 400, models.ModeCash), "c7", yesterday), "R7")
	f.local.put(models.DatasetCollections, mine, theirs)
	f.remote.seed(t, models.DatasetCollections, mineRemote)
	f.remote.seed(t, models.DatasetCollections, theirsRemote)

	rep, err := f.sync.FullSync(ctx, workerActor, models.DatasetCollections, workerActor.Scope())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Uploaded)
	assert.Equal(t, 2, rep.TotalRemote)

	records, _ := f.local.Records(ctx, models.DatasetCollections)
	require.Len(t, records, 3)

	_, ok := f.local.get(models.DatasetCollections, "c5")
	assert.True(t, ok, "чужая запись остаётся на устройстве")
	_, ok = f.local.get(models.DatasetCollections, "c7")
	assert.False(t, ok, "чужие удалённые записи не загружаются")
	assert.False(t, f.remote.has("collections", "R5"), "чужая запись не восстанавливается")

	uploaded, ok := f.local.get(models.DatasetCollections, "c1")
	require.True(t, ok)
	assert.True(t, uploaded.Mirrored())
}

func TestFullSync_AbortKeepsProgress(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	f.local.put(models.DatasetCollections,
		dated(newCollection("ravi", "Shop A", 100, models.ModeCash), "c1", testToday),
		dated(newCollection("ravi", "Shop A", 200, models.ModeCash), "c2", testToday),
		dated(newCollection("ravi", "Shop A", 300, models.ModeCash), "c3", testToday),
	)
	f.remote.failAfterAdds = 1

	_, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.ErrorIs(t, err, ErrOffline)

	records, _ := f.local.Records(ctx, models.DatasetCollections)
	require.Len(t, records, 3)
	mirroredCount := 0
	for _, r := range records {
		if r.RemoteID != "" {
			mirroredCount++
		}
	}
	assert.Equal(t, 1, mirroredCount, "выданный remote id должен сохраниться")
	last, _ := f.local.LastSynced(ctx, models.DatasetCollections)
	assert.Nil(t, last)

	f.remote.failAfterAdds = -1
	rep, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Uploaded)
	assert.Len(t, f.remote.ids("collections"), 3, "дубликатов быть не должно")
}

func TestFullSync_AbortKeepsOutstandingTombstones(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	require.NoError(t, f.local.SaveTombstones(ctx, models.DatasetCollections, []string{"R1", "R2"}))
	f.remote.failDelete = fmt.Errorf("%w: reset", adapter.ErrTransport)

	_, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	assert.ErrorIs(t, err, ErrSyncFailed)

	tombstones, _ := f.local.Tombstones(ctx, models.DatasetCollections)
	assert.Equal(t, []string{"R1", "R2"}, tombstones)
}

func TestFullSync_DeleteAfterLostUploadReply(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	// сервер сохранил документ, но ответ не дошёл
	f.remote.loseAddAcks = true
	res, err := f.sync.RecordEntry(ctx, workerActor, models.DatasetCollections,
		newCollection("ravi", "Shop A", 100, models.ModeCash))
	require.NoError(t, err)
	assert.False(t, res.Mirrored)
	require.Len(t, f.remote.ids("collections"), 1)

	require.NoError(t, f.sync.DeleteEntry(ctx, workerActor, models.DatasetCollections, res.Record.ClientID))
	pending, _ := f.local.PendingDeletes(ctx, models.DatasetCollections)
	assert.Equal(t, []string{res.Record.ClientID}, pending)

	f.remote.loseAddAcks = false
	rep, err := f.sync.FullSync(ctx, workerActor, models.DatasetCollections, workerActor.Scope())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.DeletedRemote)
	assert.Zero(t, rep.TotalRemote)

	_, ok := f.local.get(models.DatasetCollections, res.Record.ClientID)
	assert.False(t, ok, "удалённая запись не должна вернуться")
	assert.Empty(t, f.remote.ids("collections"))
	pending, _ = f.local.PendingDeletes(ctx, models.DatasetCollections)
	assert.Empty(t, pending)
}

func TestFullSync_PendingDeleteNeverReachedRemote(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	other := mirrored(dated(newCollection("ravi", "Shop B", 200, models.ModeCash), "c2", testToday), "R2")
	f.remote.seed(t, models.DatasetCollections, other)
	require.NoError(t, f.local.SavePendingDeletes(ctx, models.DatasetCollections, []string{"c1"}))

	rep, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	require.NoError(t, err)
	assert.Zero(t, rep.DeletedRemote)
	assert.True(t, f.remote.has("collections", "R2"), "чужой client id не трогаем")

	pending, _ := f.local.PendingDeletes(ctx, models.DatasetCollections)
	assert.Empty(t, pending)
}

func TestFullSync_AbortKeepsOutstandingPendingDeletes(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	require.NoError(t, f.local.SaveTombstones(ctx, models.DatasetCollections, []string{"R9"}))
	require.NoError(t, f.local.SavePendingDeletes(ctx, models.DatasetCollections, []string{"c1", "c2"}))
	f.remote.failList = fmt.Errorf("%w: 503", adapter.ErrUnavailable)

	_, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	assert.ErrorIs(t, err, ErrSyncFailed)

	pending, _ := f.local.PendingDeletes(ctx, models.DatasetCollections)
	assert.Equal(t, []string{"c1", "c2"}, pending)
	tombstones, _ := f.local.Tombstones(ctx, models.DatasetCollections)
	assert.Empty(t, tombstones, "R9 уже обработан")
}

func TestFullSync_ExpiredRecordIsNotRestored(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	expired := mirrored(dated(newCollection("ravi", "Shop A", 100, models.ModeCash), "c1", expiredDay), "R1")
	onCutoff := mirrored(dated(newCollection("ravi", "Shop A", 200, models.ModeCash), "c2", cutoffDay), "R2")
	f.local.put(models.DatasetCollections, expired, onCutoff)

	rep, err := f.sync.FullSync(ctx, adminActor, models.DatasetCollections, models.ScopeAll())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Restored)
	assert.False(t, f.remote.has("collections", "R1"))
	assert.True(t, f.remote.has("collections", "R2"))

	_, ok := f.local.get(models.DatasetCollections, "c1")
	assert.False(t, ok)
	_, ok = f.local.get(models.DatasetCollections, "c2")
	assert.True(t, ok)
}

func TestFullSync_ListFailure(t *testing.T) {
	f := newEngineFixture()
	f.oracle.online.Store(true)
	ctx := context.Background()

	f.local.put(models.DatasetOnShop, models.Record{
		ClientID:     "c1",
		CustomerName: "Walk-in",
		ReceivedBy:   "ravi",
		Amount:       decimal.NewFromInt(10),
		Mode:         models.ModeCash,
		Date:         testToday,
		Timestamp:    testNow,
	})
	f.remote.failList = fmt.Errorf("%w: 503", adapter.ErrUnavailable)

	_, err := f.sync.FullSync(ctx, adminActor, models.DatasetOnShop, models.ScopeAll())
	assert.ErrorIs(t, err, ErrSyncFailed)

	stored, ok := f.local.get(models.DatasetOnShop, "c1")
	require.True(t, ok)
	assert.NotEmpty(t, stored.RemoteID)
	assert.Len(t, f.remote.ids("onShopCollections"), 1)
}

func TestOfflineRecordsReachReportsAfterSync(t *testing.T) {
	f := newEngineFixture()
	ctx := context.Background()

	inputs := []models.Record{
		newCollection("ravi", "Shop A", 100, models.ModeCash),
		newCollection("ravi", "Shop A", 200, models.ModeOnline),
		newCollection("ravi", "Shop B", 300, models.ModeCash),
	}
	for _, in := range inputs {
		res, err := f.sync.RecordEntry(ctx, workerActor, models.DatasetCollections, in)
		require.NoError(t, err)
		assert.False(t, res.Mirrored)
	}

	before, _ := f.local.Records(ctx, models.DatasetCollections)
	offline := report.Aggregate(before)
	assert.True(t, offline.GrandTotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, offline.ByCounter["Shop A"].Cash.Equal(decimal.NewFromInt(100)))
	assert.True(t, offline.ByCounter["Shop A"].Online.Equal(decimal.NewFromInt(200)))

	f.oracle.online.Store(true)
	rep, err := f.sync.FullSync(ctx, workerActor, models.DatasetCollections, workerActor.Scope())
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Uploaded)

	after, _ := f.local.Records(ctx, models.DatasetCollections)
	require.Len(t, after, 3)
	for _, r := range after {
		assert.True(t, r.Mirrored())
	}
	synced := report.Aggregate(after)
	assert.True(t, synced.GrandTotal.Equal(offline.GrandTotal))
	assert.True(t, synced.TotalCash.Equal(decimal.NewFromInt(400)))
	assert.True(t, synced.TotalOnline.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 3, synced.Count)
}
