// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-collections-keeper/models"
)

func rec(worker, counter, date string, amount int64, mode models.Mode) models.Record {
	return models.Record{
		ClientID:    worker + counter + date,
		WorkerName:  worker,
		CounterName: counter,
		Amount:      decimal.NewFromInt(amount),
		Mode:        mode,
		Date:        date,
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil)

	assert.Equal(t, 0, agg.Count)
	assert.True(t, agg.GrandTotal.IsZero())
	assert.True(t, agg.TotalCash.IsZero())
	assert.True(t, agg.TotalOnline.IsZero())
	assert.NotNil(t, agg.ByCounter)
	assert.Empty(t, agg.ByCounter)
	assert.Empty(t, agg.ByDate)
}

func TestAggregate_SingleRecord(t *testing.T) {
	agg := Aggregate([]models.Record{rec("ravi", "Shop A", "2026-03-10", 150, models.ModeOnline)})

	require.Contains(t, agg.ByCounter, "Shop A")
	shop := agg.ByCounter["Shop A"]
	assert.True(t, shop.Online.Equal(decimal.NewFromInt(150)))
	assert.True(t, shop.Cash.IsZero())
	assert.True(t, shop.ByWorker["ravi"].Total.Equal(decimal.NewFromInt(150)))
	assert.True(t, agg.ByDate["2026-03-10"]["Shop A"].Online.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 1, agg.Count)
}

func TestAggregate_ThreeRecords(t *testing.T) {
	records := []models.Record{
		rec("ravi", "Shop A", "2026-03-10", 100, models.ModeCash),
		rec("ravi", "Shop B", "2026-03-10", 200, models.ModeCash),
		rec("anil", "Shop A", "2026-03-11", 300, models.ModeOnline),
	}

	agg := Aggregate(records)

	assert.True(t, agg.TotalCash.Equal(decimal.NewFromInt(300)))
	assert.True(t, agg.TotalOnline.Equal(decimal.NewFromInt(300)))
	assert.True(t, agg.GrandTotal.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 3, agg.Count)

	shopA := agg.ByCounter["Shop A"]
	assert.True(t, shopA.Total.Equal(decimal.NewFromInt(400)))
	assert.Len(t, shopA.ByWorker, 2)
	assert.True(t, shopA.ByWorker["anil"].Online.Equal(decimal.NewFromInt(300)))
	assert.Len(t, agg.ByDate, 2)
}

func TestAggregate_OnShopRecordsGroupByCustomer(t *testing.T) {
	records := []models.Record{{
		ClientID:     "c1",
		CustomerName: "Walk-in",
		ReceivedBy:   "meena",
		Amount:       decimal.RequireFromString("49.50"),
		Mode:         models.ModeCash,
		Date:         "2026-03-10",
	}}

	agg := Aggregate(records)

	require.Contains(t, agg.ByCounter, "Walk-in")
	assert.True(t, agg.ByCounter["Walk-in"].ByWorker["meena"].Cash.Equal(decimal.RequireFromString("49.5")))
}

// Сумма не должна зависеть ни от порядка записей, ни от разбиения по mode.
func TestAggregate_TotalsAreConsistent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	counters := []string{"Shop A", "Shop B", "Shop C"}
	workers := []string{"ravi", "anil"}

	for round := 0; round < 50; round++ {
		n := rng.IntN(40)
		records := make([]models.Record, 0, n)
		sum := decimal.Zero
		for i := 0; i < n; i++ {
			mode := models.ModeCash
			if rng.IntN(2) == 1 {
				mode = models.ModeOnline
			}
			amount := decimal.New(rng.Int64N(100000)+1, -2)
			sum = sum.Add(amount)
			r := rec(workers[rng.IntN(len(workers))], counters[rng.IntN(len(counters))], "2026-03-10", 0, mode)
			r.Amount = amount
			records = append(records, r)
		}

		agg := Aggregate(records)
		assert.True(t, agg.GrandTotal.Equal(sum), "round %d", round)
		assert.True(t, agg.GrandTotal.Equal(agg.TotalCash.Add(agg.TotalOnline)), "round %d", round)
		assert.Equal(t, n, agg.Count)

		counterSum := decimal.Zero
		for _, c := range agg.ByCounter {
			counterSum = counterSum.Add(c.Total)
		}
		assert.True(t, counterSum.Equal(sum), "round %d", round)

		rng.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
		shuffled := Aggregate(records)
		assert.True(t, shuffled.GrandTotal.Equal(agg.GrandTotal))
		assert.True(t, shuffled.TotalCash.Equal(agg.TotalCash))
	}
}

func TestFilter(t *testing.T) {
	records := []models.Record{
		rec("ravi", "Shop A", "2026-03-09", 100, models.ModeCash),
		rec("ravi", "Shop B", "2026-03-10", 200, models.ModeOnline),
		rec("anil", "Shop A", "2026-03-11", 300, models.ModeOnline),
	}

	tests := []struct {
		name   string
		filter models.ReportFilter
		want   int
	}{
		{name: "no filter", filter: models.ReportFilter{}, want: 3},
		{name: "date range inclusive", filter: models.ReportFilter{From: "2026-03-10", To: "2026-03-11"}, want: 2},
		{name: "single day", filter: models.ReportFilter{From: "2026-03-10", To: "2026-03-10"}, want: 1},
		{name: "owner", filter: models.ReportFilter{Owner: "ravi"}, want: 2},
		{name: "party", filter: models.ReportFilter{Party: "Shop A"}, want: 2},
		{name: "mode", filter: models.ReportFilter{Mode: models.ModeOnline}, want: 2},
		{name: "combined", filter: models.ReportFilter{Owner: "anil", Mode: models.ModeCash}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Filter(records, tt.filter), tt.want)
		})
	}
}
