// Package session hosts one quiz session: the question loop, then the
// results, then back to the first question on restart.
package session

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequiz/internal/evasive"
	"github.com/abhisek/lovequiz/internal/quiz"
	"github.com/abhisek/lovequiz/internal/score"
	"github.com/abhisek/lovequiz/internal/screen"
	"github.com/abhisek/lovequiz/internal/screens/question"
	"github.com/abhisek/lovequiz/internal/screens/results"
	"github.com/abhisek/lovequiz/internal/ui/layout"
)

// SessionScreen owns the controller and swaps between the question and
// results views as the session progresses.
type SessionScreen struct {
	ctx      context.Context
	ctrl     *quiz.Controller
	rng      *rand.Rand
	exporter results.Exporter

	question *question.Screen
	active   screen.Screen
	width    int
	height   int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for ctrl. rng feeds both the evasive control
// and the confetti.
func New(ctx context.Context, ctrl *quiz.Controller, rng *rand.Rand, exporter results.Exporter) *SessionScreen {
	return &SessionScreen{
		ctx:      ctx,
		ctrl:     ctrl,
		rng:      rng,
		exporter: exporter,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.ctrl.Complete() {
		return s.showResults()
	}
	return s.showQuestion()
}

func (s *SessionScreen) Title() string {
	if s.active == nil {
		return ""
	}
	return s.active.Title()
}

// Status reports progress for the header.
func (s *SessionScreen) Status() string {
	if s.ctrl.Complete() {
		return "Complete"
	}
	return fmt.Sprintf("%d/%d", s.ctrl.Number(), s.ctrl.Total())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if p, ok := s.active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	return nil
}

// Controller exposes the session state.
func (s *SessionScreen) Controller() *quiz.Controller {
	return s.ctrl
}

// Active returns the view currently shown.
func (s *SessionScreen) Active() screen.Screen {
	return s.active
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		if s.ctrl.Complete() {
			return s, nil
		}
		if msg.yes {
			s.ctrl.AnswerYes()
		} else {
			s.ctrl.AnswerNo()
		}
		if s.ctrl.Complete() {
			return s, s.showResults()
		}
		s.question.SetProps(s.questionProps())
		return s, nil

	case restartMsg:
		s.ctrl.Restart()
		return s, s.showQuestion()

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	if s.active == nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.active, cmd = s.active.Update(msg)
	return s, cmd
}

func (s *SessionScreen) View(width, height int) string {
	if s.active == nil {
		return ""
	}
	return s.active.View(width, height)
}

func (s *SessionScreen) questionProps() question.Props {
	return question.Props{
		Text:   s.ctrl.Current(),
		Number: s.ctrl.Number(),
		Total:  s.ctrl.Total(),
		OnYes:  answer(true),
		OnNo:   answer(false),
	}
}

func answer(yes bool) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return answerMsg{yes: yes} }
	}
}

// showQuestion mounts a question view with a fresh evasive control.
func (s *SessionScreen) showQuestion() tea.Cmd {
	s.question = question.New(s.questionProps(), evasive.New(s.rng))
	return s.mount(s.question)
}

func (s *SessionScreen) showResults() tea.Cmd {
	accepted := s.ctrl.Accepted()
	r := score.Compute(len(accepted), s.ctrl.Total())
	log.Printf("session=%s complete score=%s tier=%s", s.ctrl.SessionID(), r.Fraction(), r.Tier)

	s.question = nil
	return s.mount(results.New(s.ctx, results.Props{
		SessionID: s.ctrl.SessionID(),
		Result:    r,
		Accepted:  accepted,
		OnRestart: func() tea.Cmd {
			return func() tea.Msg { return restartMsg{} }
		},
	}, s.exporter, s.rng))
}

// mount activates next and replays the last known size to it.
func (s *SessionScreen) mount(next screen.Screen) tea.Cmd {
	s.active = next
	cmds := []tea.Cmd{next.Init()}
	if s.width > 0 || s.height > 0 {
		var cmd tea.Cmd
		s.active, cmd = s.active.Update(tea.WindowSizeMsg{Width: s.width, Height: s.height})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
