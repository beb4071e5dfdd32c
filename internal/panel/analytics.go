package panel

import (
	"context"
	"log/slog"
	"strings"

	"tokendash/internal/domain"
	"tokendash/internal/format"
	"tokendash/internal/infra"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// RankedBucket is one line of the top tokens breakdown
type RankedBucket struct {
	Position  int
	Symbol    string
	Value     string
	MarketCap decimal.Decimal
}

// AnalyticsView is the display-ready content of the analytics panel
type AnalyticsView struct {
	TotalMarketCap string
	AvgPrice       string
	BucketCount    int
	Ranked         []RankedBucket
}

// BuildAnalyticsView shapes a snapshot for display. Absent fields render as zero.
func BuildAnalyticsView(snap *domain.AnalyticsSnapshot) AnalyticsView {
	buckets := snap.Buckets()
	ranked := make([]RankedBucket, 0, len(buckets))
	for i, b := range buckets {
		ranked = append(ranked, RankedBucket{
			Position:  i + 1,
			Symbol:    strings.ToUpper(b.Key),
			Value:     format.Compact(b.MarketCap()),
			MarketCap: b.MarketCap(),
		})
	}

	return AnalyticsView{
		TotalMarketCap: format.Compact(snap.TotalMarketCapValue()),
		AvgPrice:       format.Currency(snap.AvgPriceValue()),
		BucketCount:    len(buckets),
		Ranked:         ranked,
	}
}

// Analytics is the market-wide summary view-model.
type Analytics struct {
	gw      domain.Gateway
	metrics *infra.Metrics
	state   FetchState[AnalyticsView]
}

// NewAnalytics creates the analytics panel
func NewAnalytics(gw domain.Gateway, metrics *infra.Metrics) *Analytics {
	if metrics == nil {
		metrics = infra.GlobalMetrics
	}
	return &Analytics{gw: gw, metrics: metrics}
}

// Refresh starts an analytics fetch. Called on activation and on user refresh.
func (a *Analytics) Refresh(ctx context.Context) tea.Cmd {
	seq := a.state.Begin()
	gw := a.gw
	return func() tea.Msg {
		snap, err := gw.GetAnalytics(ctx)
		if err != nil {
			return analyticsLoadedMsg{seq: seq, err: err}
		}
		return analyticsLoadedMsg{seq: seq, view: BuildAnalyticsView(snap)}
	}
}

// Update applies analytics messages and ignores everything else.
func (a *Analytics) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(analyticsLoadedMsg)
	if !ok {
		return nil
	}
	if !a.state.Resolve(m.seq, m.view, m.err) {
		a.metrics.RecordStale()
		return nil
	}
	if m.err != nil {
		slog.Warn("Analytics refresh failed", slog.Any("error", m.err))
	}
	return nil
}

// View returns the last successfully loaded content
func (a *Analytics) View() (AnalyticsView, bool) { return a.state.Last() }

// Status returns the analytics fetch status
func (a *Analytics) Status() domain.FetchStatus { return a.state.Status() }

// Err returns the last analytics fetch error
func (a *Analytics) Err() error { return a.state.Err() }
