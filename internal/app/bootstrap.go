package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tokendash/internal/infra"
	"tokendash/internal/infra/backend"
	"tokendash/internal/ui"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config   *infra.Config
	Metrics  *infra.Metrics
	Client   *backend.Client
	Location *time.Location
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration, installs the default logger and builds the
// backend client. console receives a copy of the logs (nil for file only).
func (b *Bootstrap) Initialize(configPath string, console io.Writer) error {
	// 1. Load Config
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	slog.SetDefault(infra.NewLogger(cfg, console))
	slog.Info("🚀 Bootstrapping token dashboard...",
		slog.String("version", cfg.App.Version),
		slog.String("config", configPath))

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	b.Location = loc

	// 3. Backend client (after SetDefault so it picks up the logger)
	b.Metrics = infra.GlobalMetrics
	b.Client = backend.NewClient(cfg, b.Metrics)
	slog.Info("✅ Backend client ready",
		slog.String("base_url", cfg.API.BaseURL),
		slog.Duration("timeout", cfg.Timeout()))

	return nil
}

// Dashboard builds the root UI model bound to ctx
func (b *Bootstrap) Dashboard(ctx context.Context) *ui.Model {
	return ui.NewModel(ctx, b.Client, b.Metrics, ui.Options{
		InitialToken: b.Config.UI.InitialToken,
		SyncLimit:    b.Config.API.SyncLimit,
		HistoryLimit: b.Config.API.HistoryLimit,
		ChartHeight:  b.Config.UI.ChartHeight,
		Location:     b.Location,
		Title:        "Token Dashboard",
	})
}

// Shutdown logs the final request counters
func (b *Bootstrap) Shutdown() {
	if b.Metrics == nil {
		return
	}
	snap := b.Metrics.Snapshot()
	slog.Info("👋 Shutting down",
		slog.Uint64("requests", snap.RequestsTotal),
		slog.Uint64("errors", snap.ErrorsTotal),
		slog.Uint64("stale_dropped", snap.StaleDropped),
		slog.Uint64("syncs", snap.SyncsTotal),
		slog.Duration("avg_latency", snap.AvgLatency))
}
