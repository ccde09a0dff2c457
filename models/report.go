// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Totals splits an amount by payment mode.
type Totals struct {
	Cash   decimal.Decimal `json:"cash"`
	Online decimal.Decimal `json:"online"`
	Total  decimal.Decimal `json:"total"`
}

// Add accounts amount under mode.
func (t *Totals) Add(mode Mode, amount decimal.Decimal) {
	if mode == ModeOnline {
		t.Online = t.Online.Add(amount)
	} else {
		t.Cash = t.Cash.Add(amount)
	}
	t.Total = t.Total.Add(amount)
}

// CounterTotals are the totals for one counter (or customer) with a
// breakdown per worker.
type CounterTotals struct {
	Totals
	ByWorker map[string]Totals `json:"by_worker"`
}

// Aggregate is the report shape shared by on-screen tiles and exports.
type Aggregate struct {
	ByCounter map[string]CounterTotals `json:"by_counter"`
	// ByDate groups totals per business day and counter.
	ByDate      map[string]map[string]Totals `json:"by_date"`
	GrandTotal  decimal.Decimal              `json:"grand_total"`
	TotalCash   decimal.Decimal              `json:"total_cash"`
	TotalOnline decimal.Decimal              `json:"total_online"`
	Count       int                          `json:"count"`
}

// ReportFilter narrows the records fed into a report. Empty fields match
// everything; From and To are inclusive business dates.
type ReportFilter struct {
	From   string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To     string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Owner  string `json:"owner,omitempty"`
	Party  string `json:"party,omitempty"`
	Mode   Mode   `json:"mode,omitempty" validate:"omitempty,oneof=offline online"`
}
