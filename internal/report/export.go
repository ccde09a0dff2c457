// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/go-collections-keeper/models"
)

const (
	summarySheet = "Summary"
	byDateSheet  = "By date"
	recordsSheet = "Records"
)

var (
	summaryHeadings = []any{"Counter", "Worker", "Cash", "Online", "Total"}
	byDateHeadings  = []any{"Date", "Counter", "Cash", "Online", "Total"}
	recordHeadings  = []any{"Date", "Counter", "Worker", "Mode", "Amount", "Synced"}
)

// ExportXLSX writes a workbook with the aggregate per counter and worker,
// the per-day breakdown and the underlying records.
func ExportXLSX(w io.Writer, agg models.Aggregate, records []models.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, sheet := range []string{byDateSheet, recordsSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}

	rows := [][]any{summaryHeadings}
	for _, party := range SortedKeys(agg.ByCounter) {
		counter := agg.ByCounter[party]
		rows = append(rows, totalsRow(counter.Totals, party, ""))
		for _, worker := range SortedKeys(counter.ByWorker) {
			rows = append(rows, totalsRow(counter.ByWorker[worker], "", worker))
		}
	}
	rows = append(rows,
		[]any{"Total", "", agg.TotalCash.InexactFloat64(), agg.TotalOnline.InexactFloat64(), agg.GrandTotal.InexactFloat64()},
		[]any{"Entries", agg.Count},
	)
	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}

	rows = [][]any{byDateHeadings}
	for _, date := range SortedKeys(agg.ByDate) {
		day := agg.ByDate[date]
		for _, party := range SortedKeys(day) {
			rows = append(rows, totalsRow(day[party], date, party))
		}
	}
	if err := writeRows(f, byDateSheet, rows); err != nil {
		return err
	}

	rows = [][]any{recordHeadings}
	for _, r := range records {
		rows = append(rows, []any{r.Date, r.Party(), r.Owner(), modeLabel(r.Mode), r.Amount.InexactFloat64(), r.Mirrored()})
	}
	if err := writeRows(f, recordsSheet, rows); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func totalsRow(t models.Totals, first, second string) []any {
	return []any{first, second, t.Cash.InexactFloat64(), t.Online.InexactFloat64(), t.Total.InexactFloat64()}
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func modeLabel(m models.Mode) string {
	if m == models.ModeOnline {
		return "online"
	}
	return "cash"
}
