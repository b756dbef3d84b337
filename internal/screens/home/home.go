package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/screens/favorites"
	"github.com/abhisek/orienta/internal/screens/games"
	"github.com/abhisek/orienta/internal/screens/history"
	"github.com/abhisek/orienta/internal/screens/interests"
	"github.com/abhisek/orienta/internal/screens/quiz"
	"github.com/abhisek/orienta/internal/screens/summary"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// noticeMsg shows a one-line message under the menu.
type noticeMsg string

// HomeScreen is the main menu.
type HomeScreen struct {
	env    *screen.Env
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.menu = components.NewMenu(h.items())
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) items() []components.MenuItem {
	env := h.env
	testHint := ""
	if env.Session.State() == session.StateInTest {
		answered, total := env.Session.Progress()
		testHint = fmt.Sprintf("continuar %d/%d", answered, total)
	}

	return []components.MenuItem{
		{Label: "Test vocacional", Hint: testHint, Action: func() tea.Cmd {
			return push(quiz.New(env))
		}},
		{Label: "Jugar minijuegos", Action: func() tea.Cmd {
			return push(games.New(env))
		}},
		{Label: "Contarme tus intereses", Action: func() tea.Cmd {
			return push(interests.New(env))
		}},
		{Label: "Mis favoritas", Action: func() tea.Cmd {
			return push(favorites.New(env))
		}},
		{Label: "Último resultado", Action: func() tea.Cmd {
			rec := env.Latest()
			if rec == nil {
				return func() tea.Msg { return noticeMsg("Aún no tienes resultados. Haz el test primero.") }
			}
			return push(summary.New(env, rec))
		}},
		{Label: "Historial", Disabled: env.Results == nil, Action: func() tea.Cmd {
			return push(history.New(env.Results))
		}},
		{Label: "Salir", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// Init rebuilds the menu so hints reflect the session after returning
// from another screen.
func (h *HomeScreen) Init() tea.Cmd {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.items())
	h.menu.Selected = selected
	h.notice = ""
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		h.notice = string(msg)
		return h, nil
	case tea.KeyMsg:
		h.notice = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s := h.env.Session

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Orientación Vocacional"))
	sections = append(sections, theme.Subtitle.Width(cw).Render(
		"Responde el test, juega y descubre qué área te queda mejor."))

	if !layout.IsCompactHeight(height) {
		sections = append(sections, components.Card(h.statusLines(), cw))
	}
	sections = append(sections, components.Card(strings.TrimRight(h.menu.View(), "\n"), cw))

	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(h.notice))
	} else if s.GamesPlayed() == 0 {
		sections = append(sections, theme.Hint.Render("Tip: los minijuegos suman un 30% al resultado."))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) statusLines() string {
	s := h.env.Session
	answered, total := s.Progress()

	lines := []string{
		fmt.Sprintf("Preguntas respondidas: %d/%d", answered, total),
		fmt.Sprintf("Minijuegos jugados: %d", s.GamesPlayed()),
	}
	if area, ok := s.StrongestGameArea(); ok {
		lines = append(lines, "Mejor área en juegos: "+theme.Emphasis.Render(string(area)))
	}
	if rec := h.env.Latest(); rec != nil {
		lines = append(lines, fmt.Sprintf("Último resultado: %s · %s", rec.Area, rec.Profession))
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
