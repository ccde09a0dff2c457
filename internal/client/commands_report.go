// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-collections-keeper/internal/report"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/models"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var (
		filter models.ReportFilter
		mode   string
		xlsx   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize collections by counter, worker and date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			datasets, err := opts.datasets()
			if err != nil {
				return err
			}
			for _, date := range []string{filter.From, filter.To} {
				if date == "" {
					continue
				}
				if _, err := utils.ParseBusinessDate(date); err != nil {
					return err
				}
			}
			if mode != "" {
				if filter.Mode, err = parseMode(mode); err != nil {
					return err
				}
			}

			return opts.withApp(cmd, func(app *App) error {
				agg, records, err := app.Report(cmd.Context(), app.Actor(opts.actor, opts.role), datasets, filter)
				if err != nil {
					return err
				}

				if xlsx != "" {
					if err := writeXLSX(xlsx, agg, records); err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", xlsx)
				}

				if opts.json {
					return printJSON(cmd.OutOrStdout(), agg)
				}

				w := newTabWriter(cmd.OutOrStdout())
				fmt.Fprintln(w, "COUNTER\tCASH\tONLINE\tTOTAL")
				for _, counter := range report.SortedKeys(agg.ByCounter) {
					t := agg.ByCounter[counter]
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", counter, t.Cash.StringFixed(2), t.Online.StringFixed(2), t.Total.StringFixed(2))
				}
				fmt.Fprintf(w, "ALL (%d records)\t%s\t%s\t%s\n", agg.Count,
					agg.TotalCash.StringFixed(2), agg.TotalOnline.StringFixed(2), agg.GrandTotal.StringFixed(2))
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&filter.From, "from", "", "First business date YYYY-MM-DD")
	cmd.Flags().StringVar(&filter.To, "to", "", "Last business date YYYY-MM-DD")
	cmd.Flags().StringVar(&filter.Owner, "owner", "", "Only records of this worker or receiver")
	cmd.Flags().StringVar(&filter.Party, "party", "", "Only records of this counter or customer")
	cmd.Flags().StringVar(&mode, "mode", "", "Only cash or online payments")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "Also export the report to this .xlsx file")

	return cmd
}

func writeXLSX(path string, agg models.Aggregate, records []models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	if err := report.ExportXLSX(f, agg, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
