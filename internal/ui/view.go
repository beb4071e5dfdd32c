package ui

import (
	"fmt"
	"strings"

	"tokendash/internal/domain"
	"tokendash/internal/format"
	"tokendash/internal/panel"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-runewidth"
)

const emptyHistoryText = "No price history available yet. Worker will collect data soon!"

// View renders the header, the active panel and the footer
func (m *Model) View() string {
	var body string
	switch m.sel.ActivePanel() {
	case domain.PanelRoster:
		body = m.viewRoster()
	case domain.PanelHistory:
		body = m.viewHistory()
	case domain.PanelAnalytics:
		body = m.viewAnalytics()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), "", body, "", m.viewFooter())
}

// failure renders an error line, with a retry hint when retrying may help
func failure(prefix string, err error, retry key.Binding) string {
	line := styleError.Render(prefix + ": " + err.Error())
	if domain.IsRetriable(err) {
		line += styleMuted.Render(" · " + retry.Help().Key + " to retry")
	}
	return line
}

func (m *Model) viewHeader() string {
	names := []string{"Tokens", "Chart", "Analytics"}
	tabs := make([]string, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%d %s", i+1, name)
		if domain.Panel(i) == m.sel.ActivePanel() {
			tabs[i] = styleTabActive.Render(label)
		} else {
			tabs[i] = styleTab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, styleTitle.Render(m.opts.Title), "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

type column struct {
	title string
	width int
}

var rosterColumns = []column{
	{"#", 4}, {"Symbol", 8}, {"Name", 20}, {"Price", 16}, {"Market Cap", 12}, {"24h Volume", 12},
}

func cell(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

func (m *Model) viewRoster() string {
	var b strings.Builder

	header := make([]string, len(rosterColumns))
	for i, c := range rosterColumns {
		header[i] = cell(c.title, c.width)
	}
	b.WriteString(styleTableHeader.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	rows := m.roster.Rows()
	if len(rows) == 0 {
		switch m.roster.Status() {
		case domain.StatusIdle, domain.StatusLoading:
			b.WriteString(styleMuted.Render("Loading tokens..."))
		case domain.StatusReady:
			b.WriteString(styleMuted.Render("No tokens yet. Press s to sync from upstream."))
		}
		b.WriteString("\n")
	}
	for i, r := range rows {
		line := strings.Join([]string{
			cell(fmt.Sprintf("%d", r.Rank), rosterColumns[0].width),
			cell(r.Symbol, rosterColumns[1].width),
			cell(r.Name, rosterColumns[2].width),
			cell(r.Price, rosterColumns[3].width),
			cell(r.MarketCap, rosterColumns[4].width),
			cell(r.Volume, rosterColumns[5].width),
		}, " ")
		if i == m.roster.Cursor() {
			b.WriteString(styleRowCursor.Render(line))
		} else {
			b.WriteString(styleRow.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.rosterStatusLine())
	return b.String()
}

func (m *Model) rosterStatusLine() string {
	var parts []string
	if m.roster.Status() == domain.StatusLoading && len(m.roster.Tokens()) > 0 {
		parts = append(parts, styleMuted.Render("refreshing..."))
	}
	if m.roster.Status() == domain.StatusFailed {
		parts = append(parts, failure("Refresh failed", m.roster.Err(), keys.Refresh))
	}
	switch {
	case m.roster.Syncing():
		parts = append(parts, styleWarn.Render("Syncing..."))
	case m.roster.SyncErr() != nil:
		parts = append(parts, failure("Sync failed", m.roster.SyncErr(), keys.Sync))
	case m.roster.LastSync() != nil:
		s := m.roster.LastSync()
		parts = append(parts, styleUp.Render(fmt.Sprintf("Synced %d/%d", s.Synced, s.Total)))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) viewHistory() string {
	view, ok := m.history.View()
	status := m.history.Status()

	if !ok {
		switch status {
		case domain.StatusFailed:
			return failure("Failed to load "+m.history.TokenID(), m.history.Err(), keys.Refresh)
		default:
			return styleMuted.Render("Loading " + m.history.TokenID() + "...")
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(view.Title))
	b.WriteString("  ")
	b.WriteString(styleCardLabel.Render("Current Price "))
	b.WriteString(styleCardValue.Render(view.Price))
	switch status {
	case domain.StatusLoading:
		b.WriteString("  " + styleMuted.Render("refreshing..."))
	case domain.StatusFailed:
		b.WriteString("  " + failure("Refresh failed", m.history.Err(), keys.Refresh))
	}
	b.WriteString("\n\n")

	if view.Empty() {
		b.WriteString(styleMuted.Render(emptyHistoryText))
		return b.String()
	}

	b.WriteString(m.renderChart(view))
	b.WriteString("\n\n")
	b.WriteString(renderSummary(view.Summary))
	return b.String()
}

func (m *Model) renderChart(view panel.HistoryView) string {
	prices := view.Prices()
	if len(prices) == 1 {
		prices = append(prices, prices[0])
	}
	width := m.width - 14
	if width < 20 {
		width = 20
	}
	graph := asciigraph.Plot(prices,
		asciigraph.Height(m.opts.ChartHeight),
		asciigraph.Width(width),
		asciigraph.Caption("Price (USD)"),
	)

	first := view.Points[0].Label
	last := view.Points[len(view.Points)-1].Label
	gap := width - runewidth.StringWidth(first) - runewidth.StringWidth(last)
	if gap < 1 {
		gap = 1
	}
	axis := strings.Repeat(" ", 10) + first + strings.Repeat(" ", gap) + last
	return graph + "\n" + styleMuted.Render(axis)
}

func renderSummary(s panel.HistorySummary) string {
	change := format.Percent(s.ChangePct)
	if s.ChangePct.IsNegative() {
		change = styleDown.Render(change)
	} else {
		change = styleUp.Render(change)
	}
	return strings.Join([]string{
		styleCardLabel.Render("Low ") + format.Currency(s.Min),
		styleCardLabel.Render("High ") + format.Currency(s.Max),
		styleCardLabel.Render("Change ") + change,
	}, "   ")
}

func (m *Model) viewAnalytics() string {
	view, ok := m.analytics.View()
	if !ok {
		if m.analytics.Status() == domain.StatusFailed {
			return failure("Failed to load analytics", m.analytics.Err(), keys.Refresh)
		}
		return styleMuted.Render("Loading analytics...")
	}

	card := func(label, value string) string {
		return styleCard.Render(styleCardLabel.Render(label) + "\n" + styleCardValue.Render(value))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Market Cap", view.TotalMarketCap),
		card("Average Token Price", view.AvgPrice),
		card("Top Tokens", fmt.Sprintf("%d", view.BucketCount)),
	)

	var b strings.Builder
	b.WriteString(cards)
	switch m.analytics.Status() {
	case domain.StatusLoading:
		b.WriteString("\n" + styleMuted.Render("refreshing..."))
	case domain.StatusFailed:
		b.WriteString("\n" + failure("Refresh failed", m.analytics.Err(), keys.Refresh))
	}
	b.WriteString("\n\n")
	b.WriteString(styleTableHeader.Render("Top Tokens by Market Cap"))
	b.WriteString("\n")
	for _, r := range view.Ranked {
		fmt.Fprintf(&b, "%s %s %s\n",
			styleMuted.Render(cell(fmt.Sprintf("#%d", r.Position), 4)),
			cell(r.Symbol, 8),
			styleCardValue.Render(r.Value))
	}
	return b.String()
}

func (m *Model) viewFooter() string {
	hot := []string{RenderHotKey(keys.Roster), RenderHotKey(keys.History), RenderHotKey(keys.Analytics), RenderHotKey(keys.Refresh)}
	if m.sel.ActivePanel() == domain.PanelRoster {
		hot = append(hot, RenderHotKey(keys.Sync), RenderHotKey(keys.Select))
	}
	hot = append(hot, RenderHotKey(keys.Quit))

	snap := m.metrics.Snapshot()
	stats := fmt.Sprintf("req %d · err %d · stale %d · avg %dms",
		snap.RequestsTotal, snap.ErrorsTotal, snap.StaleDropped, snap.AvgLatency.Milliseconds())

	return strings.Join(hot, " ") + "\n" + styleMuted.Render(stats)
}
