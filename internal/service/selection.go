package service

import (
	"tokendash/internal/domain"
)

// DefaultTokenID is the token shown before the user picks one
const DefaultTokenID = "bitcoin"

// Selection coordinates the state shared by all panels: which token is
// active and which panel is on screen. It is owned by the UI event loop and
// mutated only through Select and SwitchPanel.
type Selection struct {
	state domain.SelectionState
}

// NewSelection creates a coordinator on the roster panel with initialToken
// active (DefaultTokenID when empty).
func NewSelection(initialToken string) *Selection {
	if initialToken == "" {
		initialToken = DefaultTokenID
	}
	return &Selection{
		state: domain.SelectionState{
			ActiveTokenID: initialToken,
			ActivePanel:   domain.PanelRoster,
		},
	}
}

// Select makes tokenID active and always switches to the history panel.
func (s *Selection) Select(tokenID string) domain.SelectionState {
	s.state.ActiveTokenID = tokenID
	s.state.ActivePanel = domain.PanelHistory
	return s.state
}

// SwitchPanel changes the visible panel without touching the active token.
// It reports whether the panel actually changed.
func (s *Selection) SwitchPanel(p domain.Panel) bool {
	if s.state.ActivePanel == p {
		return false
	}
	s.state.ActivePanel = p
	return true
}

// State returns a copy of the current selection
func (s *Selection) State() domain.SelectionState {
	return s.state
}

// ActiveTokenID returns the selected token
func (s *Selection) ActiveTokenID() string {
	return s.state.ActiveTokenID
}

// ActivePanel returns the visible panel
func (s *Selection) ActivePanel() domain.Panel {
	return s.state.ActivePanel
}
