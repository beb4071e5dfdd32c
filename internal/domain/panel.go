package domain

// Panel identifies one of the dashboard's display surfaces
type Panel int

const (
	PanelRoster Panel = iota
	PanelHistory
	PanelAnalytics
)

// String returns the string representation of Panel
func (p Panel) String() string {
	switch p {
	case PanelRoster:
		return "roster"
	case PanelHistory:
		return "history"
	case PanelAnalytics:
		return "analytics"
	default:
		return "unknown"
	}
}

// FetchStatus is the lifecycle state of a panel's data
type FetchStatus int

const (
	StatusIdle FetchStatus = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// String returns the string representation of FetchStatus
func (s FetchStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SelectionState is the only state shared across panels
type SelectionState struct {
	ActiveTokenID string
	ActivePanel   Panel
}
