package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorBorder = lipgloss.Color("#2e7de9")
	colorText   = lipgloss.Color("#a9b1d6")
	colorActive = lipgloss.Color("#7aa2f7")
	colorAccent = lipgloss.Color("#bd93f9")
	colorMuted  = lipgloss.Color("#565f89")
	colorError  = lipgloss.Color("#f7768e")
	colorWarn   = lipgloss.Color("#ff9e64")
	colorUp     = lipgloss.Color("#9ece6a")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorActive)

	styleTab = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	styleTabActive = styleTab.
			Foreground(colorActive).
			Bold(true).
			Underline(true)

	styleKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	styleTableHeader = lipgloss.NewStyle().Foreground(colorActive).Bold(true)
	styleRow         = lipgloss.NewStyle().Foreground(colorText)
	styleRowCursor   = lipgloss.NewStyle().Foreground(colorActive).Bold(true).Reverse(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginRight(1)

	styleCardLabel = lipgloss.NewStyle().Foreground(colorMuted)
	styleCardValue = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleError = lipgloss.NewStyle().Foreground(colorError)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
	styleUp    = lipgloss.NewStyle().Foreground(colorUp)
	styleDown  = lipgloss.NewStyle().Foreground(colorError)
)
