package ui

import (
	"context"
	"log/slog"
	"time"

	"tokendash/internal/domain"
	"tokendash/internal/infra"
	"tokendash/internal/panel"
	"tokendash/internal/service"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the dashboard model
type Options struct {
	InitialToken string
	SyncLimit    int
	HistoryLimit int
	ChartHeight  int
	Location     *time.Location
	Title        string
}

// Model is the root bubbletea model. It composes the three panels under one
// selection coordinator and routes every message to them.
type Model struct {
	ctx     context.Context
	metrics *infra.Metrics
	opts    Options

	sel       *service.Selection
	roster    *panel.Roster
	history   *panel.History
	analytics *panel.Analytics

	width, height int
}

// NewModel wires the panels to the gateway. ctx bounds every fetch the
// dashboard issues.
func NewModel(ctx context.Context, gw domain.Gateway, metrics *infra.Metrics, opts Options) *Model {
	if metrics == nil {
		metrics = infra.GlobalMetrics
	}
	if opts.ChartHeight <= 0 {
		opts.ChartHeight = 12
	}
	if opts.Title == "" {
		opts.Title = "Token Dashboard"
	}
	return &Model{
		ctx:       ctx,
		metrics:   metrics,
		opts:      opts,
		sel:       service.NewSelection(opts.InitialToken),
		roster:    panel.NewRoster(gw, metrics, opts.SyncLimit),
		history:   panel.NewHistory(gw, metrics, opts.HistoryLimit, opts.Location),
		analytics: panel.NewAnalytics(gw, metrics),
		width:     100,
		height:    30,
	}
}

// Init activates the initial panel
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.opts.Title),
		m.activate(m.sel.ActivePanel()),
	)
}

// Update handles input and routes panel results
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}

	// Panel results: each panel only reacts to its own message types
	return m, tea.Batch(
		m.roster.Update(m.ctx, msg),
		m.history.Update(msg),
		m.analytics.Update(msg),
	)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Roster):
		return m.switchPanel(domain.PanelRoster)
	case key.Matches(msg, keys.History):
		return m.switchPanel(domain.PanelHistory)
	case key.Matches(msg, keys.Analytics):
		return m.switchPanel(domain.PanelAnalytics)
	case key.Matches(msg, keys.NextTab):
		return m.switchPanel((m.sel.ActivePanel() + 1) % 3)
	case key.Matches(msg, keys.Refresh):
		return m.refresh()
	}

	if m.sel.ActivePanel() != domain.PanelRoster {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Up):
		m.roster.MoveCursor(-1)
	case key.Matches(msg, keys.Down):
		m.roster.MoveCursor(1)
	case key.Matches(msg, keys.Sync):
		return m.roster.Sync(m.ctx)
	case key.Matches(msg, keys.Select):
		if id, ok := m.roster.Selected(); ok {
			return m.SelectToken(id)
		}
	}
	return nil
}

// SelectToken makes id the active token; the view moves to the chart.
func (m *Model) SelectToken(id string) tea.Cmd {
	state := m.sel.Select(id)
	slog.Debug("Token selected", slog.String("token", state.ActiveTokenID))
	return m.history.Show(m.ctx, state.ActiveTokenID)
}

// switchPanel navigates tabs; entering a panel re-fetches its data.
func (m *Model) switchPanel(p domain.Panel) tea.Cmd {
	if !m.sel.SwitchPanel(p) {
		return nil
	}
	return m.activate(p)
}

func (m *Model) activate(p domain.Panel) tea.Cmd {
	switch p {
	case domain.PanelRoster:
		return m.roster.Refresh(m.ctx)
	case domain.PanelHistory:
		return m.history.Show(m.ctx, m.sel.ActiveTokenID())
	case domain.PanelAnalytics:
		return m.analytics.Refresh(m.ctx)
	}
	return nil
}

// refresh re-runs the active panel's fetch for its current inputs
func (m *Model) refresh() tea.Cmd {
	switch m.sel.ActivePanel() {
	case domain.PanelRoster:
		return m.roster.Refresh(m.ctx)
	case domain.PanelHistory:
		return m.history.Refresh(m.ctx)
	case domain.PanelAnalytics:
		return m.analytics.Refresh(m.ctx)
	}
	return nil
}

// Selection exposes the coordinator state (read-only copy)
func (m *Model) Selection() domain.SelectionState { return m.sel.State() }
