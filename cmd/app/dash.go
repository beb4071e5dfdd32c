package main

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func init() {
	dashCmd := &cobra.Command{
		Use:     "dash",
		Aliases: []string{"d"},
		Short:   "Run the interactive dashboard (default)",
		RunE:    runDashboard,
	}

	rootCmd.AddCommand(dashCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	b, err := bootstrap(nil)
	if err != nil {
		return err
	}
	defer b.Shutdown()

	ctx := cmd.Context()
	p := tea.NewProgram(b.Dashboard(ctx), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("❌ Dashboard exited", slog.Any("error", err))
		return err
	}
	return nil
}
