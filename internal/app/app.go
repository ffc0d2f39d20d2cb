package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequiz/internal/quiz"
	"github.com/abhisek/lovequiz/internal/router"
	"github.com/abhisek/lovequiz/internal/screen"
	"github.com/abhisek/lovequiz/internal/screens/results"
	"github.com/abhisek/lovequiz/internal/screens/session"
	"github.com/abhisek/lovequiz/internal/screens/welcome"
	"github.com/abhisek/lovequiz/internal/ui/layout"
)

// Options configures the program.
type Options struct {
	// Context is cancelled when the program should stop; background
	// exports observe it too.
	Context   context.Context
	Questions quiz.QuestionSet
	Exporter  results.Exporter
	// Rand drives the evasive control and the confetti. Nil means a
	// time-seeded source.
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		o.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return o
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	opts = opts.withDefaults()
	splash := welcome.New(func() screen.Screen {
		return session.New(opts.Context, quiz.NewController(opts.Questions), opts.Rand, opts.Exporter)
	})
	return AppModel{
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: layout.ContentHeight(msg.Height),
		})

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	// Screens work in content coordinates, below the header.
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseClickMsg(mouse))

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseMotionMsg(mouse))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.StatusProvider); ok {
			status = p.Status()
		}
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	content := m.router.View(m.width, layout.ContentHeight(m.height))

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	opts = opts.withDefaults()
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(opts.Context))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
