package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequiz/internal/ui/theme"
)

// Button is a pill-shaped control. It only renders; screens own input.
type Button struct {
	Label   string
	Color   color.Color
	Focused bool
}

// NewButton creates a new button in the given accent color.
func NewButton(label string, c color.Color) Button {
	return Button{Label: label, Color: c}
}

// View renders the button. The rendered size does not depend on focus.
func (b Button) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Bold(true)
	if b.Focused {
		return style.
			BorderForeground(b.Color).
			Foreground(theme.BgDark).
			Background(b.Color).
			Render(b.Label)
	}
	return style.
		BorderForeground(b.Color).
		Foreground(b.Color).
		Render(b.Label)
}
