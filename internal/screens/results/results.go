package results

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequiz/internal/capture"
	"github.com/abhisek/lovequiz/internal/confetti"
	"github.com/abhisek/lovequiz/internal/score"
	"github.com/abhisek/lovequiz/internal/screen"
	"github.com/abhisek/lovequiz/internal/ui/components"
	"github.com/abhisek/lovequiz/internal/ui/layout"
	"github.com/abhisek/lovequiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	buttonGap    = 2
)

// Exporter writes a results card somewhere and reports where.
type Exporter interface {
	Export(ctx context.Context, card capture.Card) (string, error)
}

// Props is the finished session handed to the results screen.
type Props struct {
	SessionID string
	Result    score.Result
	Accepted  []string
	OnRestart func() tea.Cmd
}

type tickMsg struct {
	sessionID string
}

type exportDoneMsg struct {
	sessionID string
	path      string
	err       error
}

// ResultsScreen shows the love score over falling confetti.
type ResultsScreen struct {
	ctx       context.Context
	props     Props
	exporter  Exporter
	keys      keyMap
	particles []confetti.Particle
	elapsed   time.Duration
	exporting bool
	status    string
	width     int
	height    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. A fresh confetti set is drawn from rng.
func New(ctx context.Context, props Props, exporter Exporter, rng *rand.Rand) *ResultsScreen {
	return &ResultsScreen{
		ctx:       ctx,
		props:     props,
		exporter:  exporter,
		keys:      defaultKeyMap(),
		particles: confetti.Generate(rng),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return s.tick()
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return s.keys.hints()
}

// Status is the last export or share outcome, if any.
func (s *ResultsScreen) Status() string {
	return s.status
}

func (s *ResultsScreen) tick() tea.Cmd {
	id := s.props.SessionID
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{sessionID: id}
	})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tickMsg:
		if msg.sessionID != s.props.SessionID {
			return s, nil
		}
		s.elapsed += tickInterval
		if confetti.Landed(s.particles, s.elapsed) {
			return s, nil
		}
		return s, s.tick()

	case exportDoneMsg:
		if msg.sessionID != s.props.SessionID {
			return s, nil
		}
		s.exporting = false
		if msg.err != nil {
			log.Printf("session=%s export failed: %v", msg.sessionID, msg.err)
			s.status = ""
			return s, nil
		}
		log.Printf("session=%s exported %s", msg.sessionID, msg.path)
		s.status = "Saved " + filepath.Base(msg.path)

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return s, nil
		}
		g := s.geometry()
		switch {
		case g.screenshot.contains(m.X, m.Y):
			return s, s.export()
		case g.restart.contains(m.X, m.Y):
			return s, s.restart()
		}

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Screenshot):
			return s, s.export()
		case key.Matches(msg, s.keys.Share):
			s.status = "Copied share text"
			return s, tea.SetClipboard(s.props.Result.ShareText())
		case key.Matches(msg, s.keys.Restart):
			return s, s.restart()
		}
	}
	return s, nil
}

func (s *ResultsScreen) restart() tea.Cmd {
	if s.props.OnRestart == nil {
		return nil
	}
	return s.props.OnRestart()
}

// export renders and writes the card in the background. A second request
// while one is running is dropped.
func (s *ResultsScreen) export() tea.Cmd {
	if s.exporter == nil || s.exporting {
		return nil
	}
	s.exporting = true
	s.status = "Saving..."

	ctx, exporter, id := s.ctx, s.exporter, s.props.SessionID
	card := capture.NewCard(s.props.Result, s.props.Accepted)
	return func() tea.Msg {
		path, err := exporter.Export(ctx, card)
		return exportDoneMsg{sessionID: id, path: path, err: err}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	content, _ := s.compose(width, height)
	return content
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// geometry is where the action buttons landed, in content coordinates.
type geometry struct {
	screenshot rect
	restart    rect
}

func (s *ResultsScreen) geometry() geometry {
	_, g := s.compose(s.width, s.height)
	return g
}

func (s *ResultsScreen) compose(width, height int) (string, geometry) {
	block, g := s.renderBlock(width)
	x := max(0, (width-lipgloss.Width(block))/2)
	y := max(0, (height-lipgloss.Height(block))/2)
	g.screenshot.x += x
	g.screenshot.y += y
	g.restart.x += x
	g.restart.y += y
	return confetti.Frame(s.particles, s.elapsed, width, height).Overlay(block, x, y), g
}

// renderBlock draws the card, buttons and footer. The geometry is relative
// to the block's top-left corner.
func (s *ResultsScreen) renderBlock(width int) (string, geometry) {
	r := s.props.Result
	msg := r.Tier.Message()
	cw := components.ContentWidth(width)
	inner := cw - 4

	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	title := theme.Title.Width(inner).Render(msg.Title)

	scoreLines := []string{
		theme.Subtitle.Width(inner).Render("Your Love Score:"),
		center.Foreground(theme.Primary).Bold(true).Render(r.Fraction()),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center,
			components.NewProgressBar("", float64(r.Percentage)/100, false, min(inner, 30)).View()),
		center.Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("%d%% Compatible", r.Percentage)),
	}

	sections := []string{
		center.Render(msg.Emoji),
		center.Render("👨 💕 👩"),
		title,
		"",
		strings.Join(scoreLines, "\n"),
		"",
		theme.Body.Width(inner).Align(lipgloss.Center).Render(msg.Description),
	}

	if len(s.props.Accepted) > 0 {
		list := []string{lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You said YES to:")}
		item := lipgloss.NewStyle().Width(inner - 8).Foreground(theme.Text)
		for _, q := range s.props.Accepted {
			list = append(list, lipgloss.JoinHorizontal(lipgloss.Top, "💕 ", item.Render(q)))
		}
		sections = append(sections, "", components.Panel(strings.Join(list, "\n"), inner-2))
	}

	card := components.Card(strings.Join(sections, "\n"), cw)

	shot := components.NewButton("📸 Screenshot", theme.Share)
	shot.Focused = s.exporting
	again := components.NewButton("💕 Try Again", theme.Primary)
	shotView, againView := shot.View(), again.View()
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, shotView, strings.Repeat(" ", buttonGap), againView)

	footer := theme.Hint.Render("Made with 💕 for Love")
	status := lipgloss.NewStyle().Foreground(theme.Success).Render(s.status)

	bw := max(lipgloss.Width(card), lipgloss.Width(buttons), lipgloss.Width(status), lipgloss.Width(footer))
	place := func(str string) string {
		return lipgloss.PlaceHorizontal(bw, lipgloss.Center, str)
	}
	left := (bw - lipgloss.Width(buttons)) / 2
	top := lipgloss.Height(card)

	g := geometry{
		screenshot: rect{x: left, y: top, w: lipgloss.Width(shotView), h: lipgloss.Height(shotView)},
		restart: rect{
			x: left + lipgloss.Width(shotView) + buttonGap,
			y: top,
			w: lipgloss.Width(againView),
			h: lipgloss.Height(againView),
		},
	}

	rows := []string{
		place(card),
		lipgloss.NewStyle().MarginLeft(left).Render(buttons),
		place(status),
		place(footer),
	}
	return strings.Join(rows, "\n"), g
}
