package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tokendash/internal/app"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tokendash",
	Short: "Terminal dashboard for the token aggregation backend",
	Long: `Browse tracked tokens ranked by market cap, chart a token's recent
price history and read market-wide analytics from the aggregation backend.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "path to the YAML config file")
}

// bootstrap loads config and wires the backend client. console receives a copy
// of the logs; the dashboard passes nil since it owns the terminal.
func bootstrap(console io.Writer) (*app.Bootstrap, error) {
	b := app.NewBootstrap()
	if err := b.Initialize(configPath, console); err != nil {
		return nil, err
	}
	return b, nil
}

func main() {
	// Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
