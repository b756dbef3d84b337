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

// WheelScreen plays the vocational roulette: spin, rate the segment, and
// finish whenever the player wants.
type WheelScreen struct {
	env     *screen.Env
	wheel   *minigame.Wheel
	segment string
	mc      components.MultiChoice
	asking  bool
	done    bool
	outcome session.GameResult
	note    string
	errMsg  string
}

var _ screen.Screen = (*WheelScreen)(nil)
var _ screen.KeyHintProvider = (*WheelScreen)(nil)

// NewWheel creates a screen for w.
func NewWheel(env *screen.Env, w *minigame.Wheel) *WheelScreen {
	return &WheelScreen{env: env, wheel: w}
}

func (s *WheelScreen) Init() tea.Cmd {
	return nil
}

func (s *WheelScreen) Title() string {
	return minigame.WheelName
}

func (s *WheelScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.done:
		return []layout.KeyHint{{Key: "Enter", Description: "Volver"}}
	case s.asking:
		return []layout.KeyHint{
			{Key: "1-3", Description: "Responder"},
			{Key: "Enter", Description: "Elegir"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Girar"},
		{Key: "t", Description: "Terminar"},
		{Key: "Esc", Description: "Abandonar"},
	}
}

func (s *WheelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, backOnEnter(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.asking {
		s.mc, _ = s.mc.Update(msg)
		if !s.mc.Submitted {
			return s, nil
		}
		if err := s.wheel.Answer(s.mc.ChosenIndex); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.asking = false
		s.errMsg = ""
		return s, nil
	}

	switch k.String() {
	case "enter", "space", "s":
		s.spin()
	case "t":
		s.finish()
	}
	return s, nil
}

func (s *WheelScreen) spin() {
	seg, err := s.wheel.Spin()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	q, _ := s.wheel.Question()
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	s.segment = seg
	s.mc = components.NewMultiChoice(q.Prompt, labels, components.NoCorrectAnswer)
	s.asking = true
	s.errMsg = ""
}

func (s *WheelScreen) finish() {
	res := s.wheel.Finish()
	if s.wheel.Rounds() == 0 {
		s.outcome = res
		s.note = "Gira al menos una vez para que cuente."
		s.done = true
		return
	}
	note, err := recordResult(s.env, res)
	if err != nil {
		s.errMsg = err.Error()
	}
	s.outcome = res
	s.note = note
	s.done = true
}

func (s *WheelScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.done {
		return components.Center(renderOutcome(s.outcome, s.note, cw), width, height)
	}

	sections := []string{
		theme.Title.Width(cw).Render(minigame.WheelName),
		theme.Hint.Render(fmt.Sprintf("Rondas respondidas: %d", s.wheel.Rounds())),
	}
	if s.asking {
		sections = append(sections,
			theme.Body.Render("La ruleta se detuvo en ")+theme.Emphasis.Render(s.segment),
			components.Card(strings.TrimRight(s.mc.View(), "\n"), cw))
	} else {
		sections = append(sections, components.Card(
			theme.Body.Render("Pulsa Enter para girar la ruleta.\nCuando quieras, pulsa t para ver tu área."), cw))
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}
