// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-collections-keeper/models"
)

func newRecordCommand(opts *rootOptions) *cobra.Command {
	var (
		counter   string
		counterID string
		customer  string
		amount    string
		mode      string
		date      string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a new collection",
		Long:  "Save a new record on the device. It is mirrored to the remote store right away when online and left pending otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataset, err := opts.singleDataset()
			if err != nil {
				return err
			}
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("%w: %q", errInvalidAmount, amount)
			}
			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(app *App) error {
				actor := app.Actor(opts.actor, opts.role)

				record := models.Record{Amount: value, Mode: m, Date: date}
				switch dataset {
				case models.DatasetOnShop:
					if customer == "" {
						return errNoParty
					}
					record.CustomerName = customer
					record.ReceivedBy = actor.Name
				default:
					if counter == "" {
						return errNoParty
					}
					record.CounterName = counter
					record.CounterID = counterID
					record.WorkerName = actor.Name
				}

				res, err := app.services.SyncService.RecordEntry(cmd.Context(), actor, dataset, record)
				if err != nil {
					return err
				}

				if opts.json {
					return printJSON(cmd.OutOrStdout(), res)
				}
				if res.Mirrored {
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s), synced\n", res.Record.ClientID, res.Record.Date)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s) offline, pending sync\n", res.Record.ClientID, res.Record.Date)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&counter, "counter", "", "Counter name (collections)")
	cmd.Flags().StringVar(&counterID, "counter-id", "", "Counter id (collections)")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer name (onshop)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount collected")
	cmd.Flags().StringVar(&mode, "mode", "cash", "Payment mode: cash or online")
	cmd.Flags().StringVar(&date, "date", "", "Business date YYYY-MM-DD (admins only; defaults to today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newEditCommand(opts *rootOptions) *cobra.Command {
	var (
		amount string
		mode   string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "edit <client-id>",
		Short: "Edit a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := opts.singleDataset()
			if err != nil {
				return err
			}

			var patch models.RecordPatch
			if cmd.Flags().Changed("amount") {
				value, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("%w: %q", errInvalidAmount, amount)
				}
				patch.Amount = &value
			}
			if cmd.Flags().Changed("mode") {
				m, err := parseMode(mode)
				if err != nil {
					return err
				}
				patch.Mode = &m
			}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if patch.Empty() {
				return errNothingToEdit
			}

			return opts.withApp(cmd, func(app *App) error {
				synced, err := app.services.SyncService.EditEntry(cmd.Context(), app.Actor(opts.actor, opts.role), dataset, args[0], patch)
				if err != nil {
					return err
				}

				if synced {
					fmt.Fprintf(cmd.OutOrStdout(), "Updated %s, synced\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Updated %s offline, pending sync\n", args[0])
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().StringVar(&mode, "mode", "", "New payment mode: cash or online")
	cmd.Flags().StringVar(&name, "name", "", "New counter or customer name")

	return cmd
}

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <client-id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := opts.singleDataset()
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(app *App) error {
				if err := app.services.SyncService.DeleteEntry(cmd.Context(), app.Actor(opts.actor, opts.role), dataset, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List records visible to the actor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			datasets, err := opts.datasets()
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(app *App) error {
				actor := app.Actor(opts.actor, opts.role)
				today := app.Today()

				type row struct {
					Dataset   models.Dataset `json:"dataset"`
					Record    models.Record  `json:"record"`
					Modifiable bool           `json:"modifiable"`
				}
				var rows []row
				for _, dataset := range datasets {
					records, err := app.services.SyncService.List(cmd.Context(), actor, dataset)
					if err != nil {
						return err
					}
					for _, r := range records {
						rows = append(rows, row{
							Dataset:   dataset,
							Record:    r,
							Modifiable: app.services.SyncService.CanModify(r, actor.Role, today),
						})
					}
				}

				if opts.json {
					return printJSON(cmd.OutOrStdout(), rows)
				}
				if len(rows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
					return nil
				}

				w := newTabWriter(cmd.OutOrStdout())
				fmt.Fprintln(w, "DATASET\tCLIENT ID\tDATE\tOWNER\tPARTY\tMODE\tAMOUNT\tSTATUS")
				for _, r := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						r.Dataset, r.Record.ClientID, r.Record.Date, r.Record.Owner(), r.Record.Party(),
						modeLabel(r.Record.Mode), r.Record.Amount.StringFixed(2), syncLabel(r.Record))
				}
				return w.Flush()
			})
		},
	}
}
