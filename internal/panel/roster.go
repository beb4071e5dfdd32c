package panel

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"tokendash/internal/domain"
	"tokendash/internal/format"
	"tokendash/internal/infra"

	tea "github.com/charmbracelet/bubbletea"
)

// RosterRow is one display-ready line of the token table
type RosterRow struct {
	Rank      int
	ID        string
	Symbol    string
	Name      string
	Price     string
	MarketCap string
	Volume    string
}

// Roster is the ranked token list view-model.
type Roster struct {
	gw        domain.Gateway
	metrics   *infra.Metrics
	syncLimit int

	state  FetchState[[]domain.Token]
	cursor int

	syncing  bool
	lastSync *domain.SyncResult
	syncErr  error
}

// NewRoster creates the roster panel. syncLimit <= 0 means 10.
func NewRoster(gw domain.Gateway, metrics *infra.Metrics, syncLimit int) *Roster {
	if syncLimit <= 0 {
		syncLimit = infra.DefaultSyncLimit
	}
	if metrics == nil {
		metrics = infra.GlobalMetrics
	}
	return &Roster{gw: gw, metrics: metrics, syncLimit: syncLimit}
}

// Refresh starts a roster fetch. Called on activation and on user refresh.
func (r *Roster) Refresh(ctx context.Context) tea.Cmd {
	seq := r.state.Begin()
	gw := r.gw
	return func() tea.Msg {
		tokens, err := gw.ListTokens(ctx)
		if err != nil {
			return rosterLoadedMsg{seq: seq, err: err}
		}
		return rosterLoadedMsg{seq: seq, tokens: SortByMarketCap(tokens)}
	}
}

// Sync asks the backend to ingest fresh tokens and, only on success, reloads
// the roster. Returns nil while a sync is already running.
func (r *Roster) Sync(ctx context.Context) tea.Cmd {
	if r.syncing {
		return nil
	}
	r.syncing = true
	r.syncErr = nil
	gw, limit := r.gw, r.syncLimit
	return func() tea.Msg {
		res, err := gw.TriggerSync(ctx, limit)
		return syncDoneMsg{result: res, err: err}
	}
}

// Update applies roster messages and ignores everything else.
func (r *Roster) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		if !r.state.Resolve(msg.seq, msg.tokens, msg.err) {
			r.metrics.RecordStale()
			return nil
		}
		if msg.err != nil {
			slog.Warn("Roster refresh failed", slog.Any("error", msg.err))
			return nil
		}
		r.clampCursor()
		return nil

	case syncDoneMsg:
		r.syncing = false
		if msg.err != nil {
			// Existing roster stays as displayed
			r.syncErr = msg.err
			slog.Warn("Backend sync failed", slog.Any("error", msg.err))
			return nil
		}
		r.lastSync = msg.result
		if msg.result != nil {
			slog.Info("Backend sync completed",
				slog.Int("synced", msg.result.Synced),
				slog.Int("total", msg.result.Total),
			)
		}
		return r.Refresh(ctx)
	}
	return nil
}

// SortByMarketCap returns a copy of tokens ordered by market cap, largest
// first. Equal caps keep their backend order.
func SortByMarketCap(tokens []domain.Token) []domain.Token {
	sorted := make([]domain.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MarketCap.GreaterThan(sorted[j].MarketCap)
	})
	return sorted
}

// Tokens returns the last successfully loaded roster
func (r *Roster) Tokens() []domain.Token {
	tokens, _ := r.state.Last()
	return tokens
}

// Rows returns the display-ready table for the last loaded roster
func (r *Roster) Rows() []RosterRow {
	tokens := r.Tokens()
	rows := make([]RosterRow, 0, len(tokens))
	for i, t := range tokens {
		rows = append(rows, RosterRow{
			Rank:      i + 1,
			ID:        t.ID,
			Symbol:    strings.ToUpper(t.Symbol),
			Name:      t.Name,
			Price:     format.Currency(t.CurrentPrice),
			MarketCap: format.Compact(t.MarketCap),
			Volume:    format.Compact(t.Volume24h),
		})
	}
	return rows
}

// MoveCursor moves the row cursor by delta, clamped to the table
func (r *Roster) MoveCursor(delta int) {
	r.cursor += delta
	r.clampCursor()
}

func (r *Roster) clampCursor() {
	n := len(r.Tokens())
	if r.cursor >= n {
		r.cursor = n - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

// Cursor returns the highlighted row index
func (r *Roster) Cursor() int { return r.cursor }

// Selected returns the id of the highlighted token
func (r *Roster) Selected() (string, bool) {
	tokens := r.Tokens()
	if r.cursor < 0 || r.cursor >= len(tokens) {
		return "", false
	}
	return tokens[r.cursor].ID, true
}

// Status returns the roster fetch status
func (r *Roster) Status() domain.FetchStatus { return r.state.Status() }

// Err returns the last roster fetch error
func (r *Roster) Err() error { return r.state.Err() }

// Syncing reports whether a backend sync is in flight
func (r *Roster) Syncing() bool { return r.syncing }

// SyncErr returns the error of the last failed sync
func (r *Roster) SyncErr() error { return r.syncErr }

// LastSync returns the result of the last successful sync
func (r *Roster) LastSync() *domain.SyncResult { return r.lastSync }
