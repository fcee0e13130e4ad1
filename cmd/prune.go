package main

import (
	"context"
	"phishsniper/internal/config"
	"phishsniper/pkg/logger"
	"phishsniper/pkg/storage"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pruneCommand constructs the 'prune' subcommand that deletes persisted
// registration records fetched longer ago than the given age.
func pruneCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Deletes stale domain registration records",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			olderThan, _ := cmd.Flags().GetDuration("older-than")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			if olderThan <= 0 {
				olderThan = cfg.Intel.StoreTTL
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deleted, err := storage.PruneRegistrations(ctx, strg, time.Now().Add(-olderThan), dryRun)
			if err != nil {
				logger.Fatal(ctx, "could not prune registrations", zap.Error(err))
			}

			logger.Info(ctx, "registrations pruned",
				zap.Int64("deleted", deleted),
				zap.Duration("olderThan", olderThan),
				zap.Bool("dryRun", dryRun))
		},
	}

	cmd.Flags().Duration("older-than", 0, "Delete records fetched before this age (defaults to intel.storeTTL)")
	cmd.Flags().Bool("dry-run", false, "Report how many records would be deleted and roll back")

	return cmd
}
