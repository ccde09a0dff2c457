// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report builds collection totals out of local records and exports
// them as spreadsheets. Everything except the export is free of I/O.
package report

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-collections-keeper/models"
)

// Aggregate groups records by counter (or customer) and worker, and by
// business date, summing amounts per payment mode. The result does not
// depend on the order of records.
func Aggregate(records []models.Record) models.Aggregate {
	agg := models.Aggregate{
		ByCounter:   make(map[string]models.CounterTotals),
		ByDate:      make(map[string]map[string]models.Totals),
		GrandTotal:  decimal.Zero,
		TotalCash:   decimal.Zero,
		TotalOnline: decimal.Zero,
	}

	for _, r := range records {
		party, owner := r.Party(), r.Owner()

		counter, ok := agg.ByCounter[party]
		if !ok {
			counter = models.CounterTotals{Totals: zeroTotals(), ByWorker: make(map[string]models.Totals)}
		}
		counter.Add(r.Mode, r.Amount)
		worker, ok := counter.ByWorker[owner]
		if !ok {
			worker = zeroTotals()
		}
		worker.Add(r.Mode, r.Amount)
		counter.ByWorker[owner] = worker
		agg.ByCounter[party] = counter

		day, ok := agg.ByDate[r.Date]
		if !ok {
			day = make(map[string]models.Totals)
			agg.ByDate[r.Date] = day
		}
		dayParty, ok := day[party]
		if !ok {
			dayParty = zeroTotals()
		}
		dayParty.Add(r.Mode, r.Amount)
		day[party] = dayParty

		if r.Mode == models.ModeOnline {
			agg.TotalOnline = agg.TotalOnline.Add(r.Amount)
		} else {
			agg.TotalCash = agg.TotalCash.Add(r.Amount)
		}
		agg.GrandTotal = agg.GrandTotal.Add(r.Amount)
		agg.Count++
	}

	return agg
}

// Filter returns the records matching f in their original order.
func Filter(records []models.Record, f models.ReportFilter) []models.Record {
	matched := make([]models.Record, 0, len(records))
	for _, r := range records {
		if f.From != "" && r.Date < f.From {
			continue
		}
		if f.To != "" && r.Date > f.To {
			continue
		}
		if f.Owner != "" && r.Owner() != f.Owner {
			continue
		}
		if f.Party != "" && r.Party() != f.Party {
			continue
		}
		if f.Mode != "" && r.Mode != f.Mode {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func zeroTotals() models.Totals {
	return models.Totals{Cash: decimal.Zero, Online: decimal.Zero, Total: decimal.Zero}
}
