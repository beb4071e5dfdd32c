package panel

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"tokendash/internal/domain"
	"tokendash/internal/format"
	"tokendash/internal/infra"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// ChartPoint is one chart sample: Label is the horizontal axis text, Price the
// raw vertical value, Tooltip the formatted price.
type ChartPoint struct {
	Time    time.Time
	Label   string
	Price   decimal.Decimal
	Tooltip string
}

// HistorySummary describes the charted window
type HistorySummary struct {
	First, Last, Min, Max decimal.Decimal
	ChangePct             decimal.Decimal
}

// HistoryView is the display-ready content of the price history panel.
// Points is oldest first. Empty is a first-class state, not an error.
type HistoryView struct {
	Token   domain.Token
	Title   string
	Price   string
	Points  []ChartPoint
	Summary HistorySummary
}

// Empty reports whether there is nothing to chart yet
func (v HistoryView) Empty() bool { return len(v.Points) == 0 }

// Prices returns the vertical-axis series as floats for plotting
func (v HistoryView) Prices() []float64 {
	out := make([]float64, len(v.Points))
	for i, p := range v.Points {
		out[i] = p.Price.InexactFloat64()
	}
	return out
}

// History is the per-token price chart view-model.
type History struct {
	gw      domain.Gateway
	metrics *infra.Metrics
	limit   int
	loc     *time.Location

	tokenID string
	state   FetchState[HistoryView]
}

// NewHistory creates the history panel. limit <= 0 means 50; nil loc means time.Local.
func NewHistory(gw domain.Gateway, metrics *infra.Metrics, limit int, loc *time.Location) *History {
	if limit <= 0 {
		limit = infra.DefaultHistoryLimit
	}
	if loc == nil {
		loc = time.Local
	}
	if metrics == nil {
		metrics = infra.GlobalMetrics
	}
	return &History{gw: gw, metrics: metrics, limit: limit, loc: loc}
}

// Show points the panel at tokenID and fetches it. Called whenever the active
// token changes and when the panel is activated. Data of a different token is
// dropped instead of being shown stale.
func (h *History) Show(ctx context.Context, tokenID string) tea.Cmd {
	if tokenID != h.tokenID {
		h.state.Reset()
		h.tokenID = tokenID
	}
	return h.Refresh(ctx)
}

// Refresh re-runs the fetch sequence for the current token.
func (h *History) Refresh(ctx context.Context) tea.Cmd {
	if h.tokenID == "" {
		return nil
	}
	seq := h.state.Begin()
	gw, id, limit, loc := h.gw, h.tokenID, h.limit, h.loc
	return func() tea.Msg {
		view, err := loadHistory(ctx, gw, id, limit, loc)
		return historyLoadedMsg{seq: seq, view: view, err: err}
	}
}

// loadHistory fetches the header token, then its history, and shapes both for display.
func loadHistory(ctx context.Context, gw domain.Gateway, id string, limit int, loc *time.Location) (HistoryView, error) {
	token, err := gw.GetToken(ctx, id)
	if err != nil {
		return HistoryView{}, err
	}

	raw, err := gw.GetHistory(ctx, id, limit)
	if domain.IsNotFound(err) {
		// The backend answers 404 for a token without samples yet
		raw, err = nil, nil
	}
	if err != nil {
		return HistoryView{}, err
	}

	return BuildHistoryView(*token, raw, loc), nil
}

// BuildHistoryView turns a newest-first history into an oldest-first chart series.
func BuildHistoryView(token domain.Token, newestFirst []domain.PricePoint, loc *time.Location) HistoryView {
	points := make([]ChartPoint, len(newestFirst))
	for i, p := range newestFirst {
		points[len(newestFirst)-1-i] = ChartPoint{
			Time:    p.Timestamp,
			Label:   format.TimeLabel(p.Timestamp, loc),
			Price:   p.Price,
			Tooltip: format.Currency(p.Price),
		}
	}

	isAscending := sort.SliceIsSorted(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	if !isAscending {
		slog.Warn("History not newest-first, re-sorting", slog.String("token", token.ID))
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Time.Before(points[j].Time)
		})
	}

	return HistoryView{
		Token:   token,
		Title:   fmt.Sprintf("%s (%s)", token.Name, strings.ToUpper(token.Symbol)),
		Price:   format.Currency(token.CurrentPrice),
		Points:  points,
		Summary: summarize(points),
	}
}

func summarize(points []ChartPoint) HistorySummary {
	if len(points) == 0 {
		return HistorySummary{}
	}
	s := HistorySummary{
		First: points[0].Price,
		Last:  points[len(points)-1].Price,
		Min:   points[0].Price,
		Max:   points[0].Price,
	}
	for _, p := range points[1:] {
		s.Min = decimal.Min(s.Min, p.Price)
		s.Max = decimal.Max(s.Max, p.Price)
	}
	if !s.First.IsZero() {
		s.ChangePct = s.Last.Sub(s.First).Div(s.First).Mul(decimal.NewFromInt(100))
	}
	return s
}

// Update applies history messages and ignores everything else.
func (h *History) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(historyLoadedMsg)
	if !ok {
		return nil
	}
	if !h.state.Resolve(m.seq, m.view, m.err) {
		h.metrics.RecordStale()
		return nil
	}
	if m.err != nil {
		slog.Warn("History refresh failed", slog.String("token", h.tokenID), slog.Any("error", m.err))
	}
	return nil
}

// TokenID returns the token the panel is showing
func (h *History) TokenID() string { return h.tokenID }

// View returns the last successfully loaded content
func (h *History) View() (HistoryView, bool) { return h.state.Last() }

// Status returns the history fetch status
func (h *History) Status() domain.FetchStatus { return h.state.Status() }

// Err returns the last history fetch error
func (h *History) Err() error { return h.state.Err() }
