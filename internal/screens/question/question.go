package question

import (
	"fmt"
	"math"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequiz/internal/evasive"
	"github.com/abhisek/lovequiz/internal/screen"
	"github.com/abhisek/lovequiz/internal/ui/components"
	"github.com/abhisek/lovequiz/internal/ui/layout"
	"github.com/abhisek/lovequiz/internal/ui/theme"
)

const (
	// CellWidthPx and CellHeightPx convert terminal cells to the pixel
	// units the evasive control works in.
	CellWidthPx  = 8
	CellHeightPx = 16

	gapCols      = 4
	maxSlackCols = evasive.DesktopRangePx / CellWidthPx
	maxSlackRows = evasive.DesktopRangePx / CellHeightPx

	hintText = "Try clicking the No button... 👀"
)

// Props is the data and callbacks the quiz passes down for one question.
type Props struct {
	Text   string
	Number int
	Total  int
	OnYes  func() tea.Cmd
	OnNo   func() tea.Cmd
}

type focus int

const (
	focusYes focus = iota
	focusNo
)

// Screen renders one question with an accept control and an evasive
// decline control.
type Screen struct {
	props   Props
	control *evasive.Control
	keys    keyMap
	focus   focus
	hoverNo bool
	width   int
	height  int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a question Screen. The decline control keeps its position
// across SetProps calls.
func New(props Props, control *evasive.Control) *Screen {
	return &Screen{
		props:   props,
		control: control,
		keys:    defaultKeyMap(),
	}
}

// SetProps moves the screen to another question.
func (s *Screen) SetProps(props Props) {
	s.props = props
	s.focus = focusYes
}

// Control exposes the decline control's state.
func (s *Screen) Control() *evasive.Control {
	return s.control
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Question"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return s.keys.hints()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.control.Resize(msg.Width * CellWidthPx)
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case tea.MouseMotionMsg:
		m := msg.Mouse()
		s.handleMotion(m.X, m.Y)
		return s, nil

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return s, nil
		}
		return s, s.handlePress(m.X, m.Y)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Yes):
		return s.yes()
	case key.Matches(msg, s.keys.No):
		// Keyboard declines are not touch gestures and always count.
		return s.no()
	case key.Matches(msg, s.keys.Focus):
		if s.focus == focusYes {
			s.focus = focusNo
			if s.control.Device() == evasive.Desktop {
				s.control.PointerEnter()
			}
		} else {
			s.focus = focusYes
		}
	case key.Matches(msg, s.keys.Press):
		if s.focus == focusYes {
			return s.yes()
		}
		return s.decline()
	}
	return nil
}

func (s *Screen) handleMotion(x, y int) {
	if s.control.Device() != evasive.Desktop {
		return
	}
	inside := s.geometry().no.contains(x, y)
	if inside && !s.hoverNo {
		s.control.PointerEnter()
		inside = s.geometry().no.contains(x, y)
	}
	s.hoverNo = inside
}

func (s *Screen) handlePress(x, y int) tea.Cmd {
	g := s.geometry()
	switch {
	case g.yes.contains(x, y):
		return s.yes()
	case g.no.contains(x, y):
		// A tap is a touch followed by a click, and on mobile each of them
		// moves the control, so one tap jumps twice.
		if s.control.Device() == evasive.Mobile {
			s.control.TouchStart()
		}
		return s.decline()
	}
	return nil
}

// decline is an activation of the decline control; on mobile it dodges
// instead of answering.
func (s *Screen) decline() tea.Cmd {
	if !s.control.Click() {
		return nil
	}
	return s.no()
}

func (s *Screen) yes() tea.Cmd {
	if s.props.OnYes == nil {
		return nil
	}
	return s.props.OnYes()
}

func (s *Screen) no() tea.Cmd {
	if s.props.OnNo == nil {
		return nil
	}
	return s.props.OnNo()
}

func (s *Screen) View(width, height int) string {
	content, _ := s.compose(width, height)
	return content
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type geometry struct {
	yes rect
	no  rect
}

func (s *Screen) geometry() geometry {
	_, g := s.compose(s.width, s.height)
	return g
}

func (s *Screen) yesButton() components.Button {
	b := components.NewButton("Yes 💚", theme.Primary)
	b.Focused = s.focus == focusYes
	return b
}

func (s *Screen) noButton() components.Button {
	b := components.NewButton("No 😢", theme.Decline)
	b.Focused = s.focus == focusNo
	return b
}

// compose renders the screen and reports where the controls ended up,
// in content coordinates.
func (s *Screen) compose(width, height int) (string, geometry) {
	header := s.renderHeader(width)
	headerH := lipgloss.Height(header)

	yesBtn := s.yesButton().View()
	noBtn := s.noButton().View()
	yesW, yesH := lipgloss.Width(yesBtn), lipgloss.Height(yesBtn)
	noW, noH := lipgloss.Width(noBtn), lipgloss.Height(noBtn)

	// header, blank, arena, blank, hint
	fixed := headerH + 3
	slackY := max(0, min((height-fixed-noH)/2, maxSlackRows))
	slackX := maxSlackCols
	arenaW := noW + 2*slackX
	arenaH := noH + 2*slackY

	rowW := yesW + gapCols + arenaW
	left := max(0, (width-rowW)/2)
	top := max(0, (height-(fixed+arenaH))/2)
	rowTop := top + headerH + 1
	yesTop := (arenaH - yesH) / 2

	off := s.control.Offset()
	dx := clampCells(off.X, CellWidthPx, slackX)
	dy := clampCells(off.Y, CellHeightPx, slackY)

	g := geometry{
		yes: rect{x: left, y: rowTop + yesTop, w: yesW, h: yesH},
		no:  rect{x: left + yesW + gapCols + slackX + dx, y: rowTop + slackY + dy, w: noW, h: noH},
	}

	yesCol := lipgloss.NewStyle().MarginTop(yesTop).Render(yesBtn)
	arena := lipgloss.NewStyle().
		Width(arenaW).
		Height(arenaH).
		Render(lipgloss.NewStyle().
			MarginLeft(slackX + dx).
			MarginTop(slackY + dy).
			Render(noBtn))
	row := lipgloss.JoinHorizontal(lipgloss.Top, yesCol, strings.Repeat(" ", gapCols), arena)
	row = lipgloss.NewStyle().MarginLeft(left).Render(row)

	hint := lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(hintText))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(row)
	b.WriteString("\n\n")
	b.WriteString(hint)
	return b.String(), g
}

func (s *Screen) renderHeader(width int) string {
	cw := components.ContentWidth(width)

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.props.Number, s.props.Total))

	var pct float64
	if s.props.Total > 0 {
		pct = float64(s.props.Number) / float64(s.props.Total)
	}
	bar := components.NewProgressBar("", pct, false, min(cw, 40)).View()

	text := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.props.Text)

	lines := []string{counter, bar, "", text, "", "💕"}
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l)
	}
	return strings.Join(lines, "\n")
}

// clampCells converts a pixel offset into whole cells within ±limit.
func clampCells(px float64, cellPx, limit int) int {
	c := int(math.Round(px / float64(cellPx)))
	return max(-limit, min(c, limit))
}
