package games

import (
	"strconv"
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

// SelfRatedScreen asks for the score of a game played outside the app.
type SelfRatedScreen struct {
	env     *screen.Env
	game    minigame.SelfRated
	input   components.TextInput
	done    bool
	outcome session.GameResult
	note    string
	errMsg  string
}

var _ screen.Screen = (*SelfRatedScreen)(nil)
var _ screen.KeyHintProvider = (*SelfRatedScreen)(nil)

// NewSelfRated creates a screen for game, prefilled with its default score.
func NewSelfRated(env *screen.Env, game minigame.SelfRated) *SelfRatedScreen {
	in := components.NewTextInput("0-100", true, 3)
	in.SetValue(strconv.Itoa(game.Default))
	return &SelfRatedScreen{env: env, game: game, input: in}
}

func (s *SelfRatedScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SelfRatedScreen) Title() string {
	return s.game.Name
}

func (s *SelfRatedScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{{Key: "Enter", Description: "Volver"}}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Puntaje"},
		{Key: "Enter", Description: "Registrar"},
		{Key: "Esc", Description: "Cancelar"},
	}
}

func (s *SelfRatedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, backOnEnter(msg)
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		s.submit()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SelfRatedScreen) submit() {
	score, err := s.input.NumericValue()
	if err != nil {
		s.input.Submit(false)
		s.errMsg = "Escribe un número entre 0 y 100."
		return
	}
	res, err := s.game.Result(score)
	if err != nil {
		s.input.Submit(false)
		s.errMsg = "El puntaje debe estar entre 0 y 100."
		return
	}
	note, err := recordResult(s.env, res)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.input.Submit(true)
	s.outcome = res
	s.note = note
	s.done = true
}

func (s *SelfRatedScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.done {
		return components.Center(renderOutcome(s.outcome, s.note, cw), width, height)
	}

	body := []string{
		theme.Dimmed.Render(s.game.Explanation),
		"",
		theme.Body.Render("¿Qué puntaje obtuviste? ") + s.input.View(),
	}
	sections := []string{
		theme.Title.Width(cw).Render(s.game.Name),
		components.Card(strings.Join(body, "\n"), cw),
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}
