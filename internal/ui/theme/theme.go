package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: rose and pink on a dark plum background.
var (
	Primary   = lipgloss.Color("#F43F5E") // Rose
	Secondary = lipgloss.Color("#EC4899") // Pink
	Accent    = lipgloss.Color("#C084FC") // Lavender
	Success   = lipgloss.Color("#22C55E") // Green
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C0F1A") // Deep Plum
	BgCard    = lipgloss.Color("#2A1527") // Plum
	Border    = lipgloss.Color("#4C2A45") // Muted Plum
	Decline   = lipgloss.Color("#9CA3AF") // Gray
	Share     = lipgloss.Color("#60A5FA") // Blue
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
