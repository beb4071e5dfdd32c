package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var syncLimit int

func init() {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Ask the backend to pull fresh market data from upstream",
		RunE:  runSync,
	}
	syncCmd.Flags().IntVar(&syncLimit, "limit", 0, "number of tokens to sync (0 uses api.sync_limit)")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	b, err := bootstrap(os.Stderr)
	if err != nil {
		return err
	}
	defer b.Shutdown()

	limit := syncLimit
	if limit <= 0 {
		limit = b.Config.API.SyncLimit
	}

	res, err := b.Client.TriggerSync(cmd.Context(), limit)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d/%d synced)\n", res.Message, res.Synced, res.Total)
	return nil
}
