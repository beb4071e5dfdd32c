package panel

import "tokendash/internal/domain"

// Result messages produced by panel commands. Each carries the sequence tag of
// the fetch that produced it; only the owning panel reacts to its own types.

type rosterLoadedMsg struct {
	seq    uint64
	tokens []domain.Token
	err    error
}

type syncDoneMsg struct {
	result *domain.SyncResult
	err    error
}

type historyLoadedMsg struct {
	seq  uint64
	view HistoryView
	err  error
}

type analyticsLoadedMsg struct {
	seq  uint64
	view AnalyticsView
	err  error
}
