package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard's key bindings
type KeyMap struct {
	Quit, Refresh, Sync, Select key.Binding
	Up, Down, NextTab           key.Binding
	Roster, History, Analytics  key.Binding
}

var keys = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Sync:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view chart")),
	Up:        key.NewBinding(key.WithKeys("up", "k")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Roster:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tokens")),
	History:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "chart")),
	Analytics: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "analytics")),
}

// RenderHotKey renders a binding as "[k]desc"
func RenderHotKey(b key.Binding) string {
	h := b.Help()
	return styleKey.Render("["+h.Key+"]") + h.Desc
}
