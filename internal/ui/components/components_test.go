package components

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequiz/internal/ui/theme"
)

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    int
	}{
		{0, 10, 0},
		{0.2, 10, 2},
		{0.6, 10, 6},
		{1, 10, 10},
		{1.5, 10, 10},
		{-1, 10, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.percent, false, tt.width)
		if got := p.Filled(tt.width); got != tt.want {
			t.Errorf("Filled(%v, %d) = %d, want %d", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestProgressBar_Width(t *testing.T) {
	p := NewProgressBar("", 0.4, false, 30)
	if got := lipgloss.Width(p.View()); got != 30 {
		t.Errorf("width = %d, want 30", got)
	}
}

func TestButton_SizeIndependentOfFocus(t *testing.T) {
	b := NewButton("No", theme.Decline)
	plain := b.View()
	b.Focused = true
	focused := b.View()

	if lipgloss.Width(plain) != lipgloss.Width(focused) || lipgloss.Height(plain) != lipgloss.Height(focused) {
		t.Errorf("focus changed button size: %dx%d vs %dx%d",
			lipgloss.Width(plain), lipgloss.Height(plain),
			lipgloss.Width(focused), lipgloss.Height(focused))
	}
	if lipgloss.Height(plain) != 3 {
		t.Errorf("button height = %d, want 3", lipgloss.Height(plain))
	}
}

func TestContentWidth(t *testing.T) {
	if got := ContentWidth(200); got != 56 {
		t.Errorf("ContentWidth(200) = %d, want 56", got)
	}
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", got)
	}
}
