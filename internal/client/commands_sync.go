// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-collections-keeper/internal/service"
	"github.com/MKhiriev/go-collections-keeper/models"
)

func newSyncCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the device with the remote store",
		Long:  "Push pending records, edits and deletions, then replace the actor's records with the remote copy. Runs the daily cleanup afterwards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			datasets, err := opts.datasets()
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(app *App) error {
				reports, cleanup, err := app.Sync(cmd.Context(), app.Actor(opts.actor, opts.role), datasets)
				if errors.Is(err, service.ErrOffline) {
					return fmt.Errorf("cannot sync while offline: %w", err)
				}
				if err != nil {
					return err
				}

				if opts.json {
					return printJSON(cmd.OutOrStdout(), map[string]any{
						"sync":    reports,
						"cleanup": cleanup,
					})
				}

				for _, r := range reports {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: uploaded %d, updated %d, restored %d, deleted remotely %d, %d on server\n",
						r.Dataset, r.Uploaded, r.Updated, r.Restored, r.DeletedRemote, r.TotalRemote)
				}
				if cleanup != nil && !cleanup.Skipped {
					fmt.Fprintf(cmd.OutOrStdout(), "Daily cleanup removed %d expired records\n", cleanup.TotalRemoved())
				}
				return nil
			})
		},
	}
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pending work and the last sync time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			datasets, err := opts.datasets()
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(app *App) error {
				actor := app.Actor(opts.actor, opts.role)

				statuses := make([]models.SyncStatus, 0, len(datasets))
				for _, dataset := range datasets {
					st, err := app.services.SyncService.Status(cmd.Context(), actor, dataset)
					if err != nil {
						return err
					}
					statuses = append(statuses, st)
				}

				if opts.json {
					return printJSON(cmd.OutOrStdout(), statuses)
				}

				w := newTabWriter(cmd.OutOrStdout())
				fmt.Fprintln(w, "DATASET\tRECORDS\tPENDING\tDELETES\tLAST SYNCED")
				for _, st := range statuses {
					last := "never"
					if st.LastSyncedAt != nil {
						last = st.LastSyncedAt.Local().Format(time.DateTime)
					}
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", st.Dataset, st.Total, st.Pending, st.Tombstones, last)
				}
				return w.Flush()
			})
		},
	}
}

func newCleanupCommand(opts *rootOptions) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove records older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			datasets, err := opts.datasets()
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(app *App) error {
				local, remoteResults, err := app.Cleanup(cmd.Context(), datasets, remote)

				if opts.json {
					if jsonErr := printJSON(cmd.OutOrStdout(), map[string]any{"local": local, "remote": remoteResults}); jsonErr != nil {
						return jsonErr
					}
					return err
				}

				for _, res := range local {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (device): removed %d before %s, %d left\n", res.Dataset, res.Removed, res.Cutoff, res.Remaining)
				}
				for _, res := range remoteResults {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (remote): removed %d before %s\n", res.Dataset, res.Removed, res.Cutoff)
				}
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Also delete expired documents from the remote store")

	return cmd
}

func newDaemonCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run background sync and cleanup until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()

			return opts.withApp(cmd, func(app *App) error {
				app.RunDaemon(ctx, app.Actor(opts.actor, opts.role))
				fmt.Fprintln(cmd.OutOrStdout(), "Stopped")
				return nil
			})
		},
	}
}
