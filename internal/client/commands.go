// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/models"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	open  Opener
	flags *config.Flags

	actor   string
	role    string
	dataset string
	json    bool
}

// NewRootCommand builds the client command tree. open is called lazily by
// commands that need the device cache.
func NewRootCommand(open Opener, buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{
		open:  open,
		flags: config.NewFlags("collections"),
	}

	root := &cobra.Command{
		Use:           "collections",
		Short:         "Offline-first field collections",
		Long:          "Record counter collections and shop sales on the device and keep them in sync with the remote store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().AddGoFlagSet(opts.flags.FlagSet())
	root.PersistentFlags().StringVar(&opts.actor, "actor", "", "Acting user name (defaults to APP_ACTOR)")
	root.PersistentFlags().StringVar(&opts.role, "role", "", "Acting user role: admin or worker (defaults to APP_ROLE)")
	root.PersistentFlags().StringVar(&opts.dataset, "dataset", "", "Dataset: collections or onshop (all datasets when empty, where allowed)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Output in JSON format")

	root.AddCommand(
		newRecordCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
		newListCommand(opts),
		newStatusCommand(opts),
		newSyncCommand(opts),
		newCleanupCommand(opts),
		newReportCommand(opts),
		newDaemonCommand(opts),
		newVersionCommand(buildInfo),
	)

	return root
}

// withApp opens the App for the duration of fn.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(app *App) error) error {
	app, err := o.open(cmd.Context(), o.flags)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(app)
}

// singleDataset is the dataset a write command works on. Collections is
// the default.
func (o *rootOptions) singleDataset() (models.Dataset, error) {
	if o.dataset == "" {
		return models.DatasetCollections, nil
	}
	return models.ParseDataset(o.dataset)
}

// datasets is the dataset selection of a read or maintenance command.
func (o *rootOptions) datasets() ([]models.Dataset, error) {
	if o.dataset == "" {
		return models.Datasets, nil
	}
	d, err := models.ParseDataset(o.dataset)
	if err != nil {
		return nil, err
	}
	return []models.Dataset{d}, nil
}

// parseMode accepts the user facing names of the payment modes.
func parseMode(s string) (models.Mode, error) {
	switch strings.ToLower(s) {
	case "cash", string(models.ModeCash):
		return models.ModeCash, nil
	case string(models.ModeOnline):
		return models.ModeOnline, nil
	}
	return "", fmt.Errorf("%w: %q", errInvalidMode, s)
}

func modeLabel(m models.Mode) string {
	if m == models.ModeOnline {
		return "online"
	}
	return "cash"
}

func syncLabel(r models.Record) string {
	if r.Mirrored() {
		return "synced"
	}
	return "pending sync"
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a configured tabwriter for aligned columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func newVersionCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
			return nil
		},
	}
}
