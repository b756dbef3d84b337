package games

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/minigame"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

type roundPhase int

const (
	phaseAsking roundPhase = iota
	phaseFeedback
	phaseDone
)

// RoundsScreen plays a RoundGame: one multiple-choice round at a time,
// with right/wrong feedback after each answer.
type RoundsScreen struct {
	env     *screen.Env
	game    *minigame.RoundGame
	mc      components.MultiChoice
	phase   roundPhase
	outcome session.GameResult
	note    string
	errMsg  string
}

var _ screen.Screen = (*RoundsScreen)(nil)
var _ screen.KeyHintProvider = (*RoundsScreen)(nil)

// NewRounds creates a screen for game.
func NewRounds(env *screen.Env, game *minigame.RoundGame) *RoundsScreen {
	s := &RoundsScreen{env: env, game: game}
	s.loadRound()
	return s
}

func (s *RoundsScreen) loadRound() {
	r, ok := s.game.Current()
	if !ok {
		return
	}
	s.mc = components.NewMultiChoice(r.Prompt, r.Options, r.Correct)
	s.phase = phaseAsking
}

func (s *RoundsScreen) Init() tea.Cmd {
	return nil
}

func (s *RoundsScreen) Title() string {
	return s.game.Name()
}

func (s *RoundsScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseAsking {
		return []layout.KeyHint{
			{Key: "1-3", Description: "Responder"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Esc", Description: "Abandonar"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Continuar"}}
}

func (s *RoundsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseDone:
		return s, backOnEnter(msg)

	case phaseFeedback:
		if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "enter" || k.String() == "space") {
			s.advance()
		}
		return s, nil
	}

	if _, ok := msg.(tea.KeyMsg); !ok {
		return s, nil
	}
	s.mc, _ = s.mc.Update(msg)
	if !s.mc.Submitted {
		return s, nil
	}
	if _, err := s.game.Choose(s.mc.ChosenIndex); err != nil {
		s.errMsg = err.Error()
		s.loadRound()
		return s, nil
	}
	s.errMsg = ""
	s.phase = phaseFeedback
	return s, nil
}

// advance moves past the feedback to the next round or the outcome.
func (s *RoundsScreen) advance() {
	if !s.game.Done() {
		s.loadRound()
		return
	}
	res, err := s.game.Result()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	note, err := recordResult(s.env, res)
	if err != nil {
		s.errMsg = err.Error()
	}
	s.outcome = res
	s.note = note
	s.phase = phaseDone
}

func (s *RoundsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.phase == phaseDone {
		return components.Center(renderOutcome(s.outcome, s.note, cw), width, height)
	}

	played, total := s.game.Progress()
	round := played + 1
	if s.phase == phaseFeedback {
		round = played
	}

	sections := []string{
		theme.Title.Width(cw).Render(s.game.Name()),
		theme.Subtitle.Width(cw).Render(s.game.Intro()),
		theme.Hint.Render(fmt.Sprintf("Ronda %d de %d", round, total)),
		components.Card(strings.TrimRight(s.mc.View(), "\n"), cw),
	}

	if s.phase == phaseFeedback {
		if s.mc.IsCorrect() {
			sections = append(sections, theme.Correct.Render("¡Correcto!"))
		} else {
			sections = append(sections, theme.Incorrect.Render("No era esa."))
		}
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}
