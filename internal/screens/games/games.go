// Package games hosts the minigame screens. Each one feeds its result to
// the shared session when it ends.
package games

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/minigame"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// GamesScreen lists the available minigames.
type GamesScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*GamesScreen)(nil)

// New creates the minigame menu.
func New(env *screen.Env) *GamesScreen {
	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	damas := minigame.Damas()
	items := []components.MenuItem{
		{Label: "Debug Runner", Hint: string(catalog.AreaTecnologia), Action: func() tea.Cmd {
			return push(NewRounds(env, minigame.DebugRunner()))
		}},
		{Label: "Color Quest", Hint: string(catalog.AreaArte), Action: func() tea.Cmd {
			return push(NewRounds(env, minigame.ColorQuest()))
		}},
		{Label: minigame.WheelName, Hint: "autoevaluación", Action: func() tea.Cmd {
			return push(NewWheel(env, minigame.NewWheel(minigame.DefaultWheelConfig())))
		}},
		{Label: damas.Name, Hint: "puntaje manual", Action: func() tea.Cmd {
			return push(NewSelfRated(env, damas))
		}},
	}
	return &GamesScreen{env: env, menu: components.NewMenu(items)}
}

func (g *GamesScreen) Init() tea.Cmd {
	return nil
}

func (g *GamesScreen) Title() string {
	return "Minijuegos"
}

func (g *GamesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	g.menu, cmd = g.menu.Update(msg)
	return g, cmd
}

func (g *GamesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sections := []string{
		theme.Title.Width(cw).Render("Minijuegos"),
		components.Card(strings.TrimRight(g.menu.View(), "\n"), cw),
	}
	if !layout.IsCompactHeight(height) {
		sections = append(sections, renderAverages(g.env.Session, cw))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

// renderAverages lists the game average of every played area.
func renderAverages(s *session.Session, width int) string {
	if s.GamesPlayed() == 0 {
		return theme.Hint.Render("Todavía no jugaste. Cada juego suma a su área.")
	}

	avg := s.GameAverages()
	areas := s.Catalog().Areas()
	var lines []string
	for i, a := range areas {
		if avg[a] == 0 {
			continue
		}
		bar := components.NewProgressBar(string(a), avg[a]/100, true, width).
			WithColor(theme.AreaColor(i))
		lines = append(lines, bar.View())
	}
	if best, ok := s.StrongestGameArea(); ok {
		lines = append(lines, theme.Body.Render("Mejor área en juegos: ")+theme.Emphasis.Render(string(best)))
	}
	return strings.Join(lines, "\n")
}

// recordResult hands res to the session and describes what happened.
func recordResult(env *screen.Env, res session.GameResult) (string, error) {
	s := env.Session
	if err := s.RecordGameResult(res); err != nil {
		env.Logger().Warn("record game result", "game", res.Label, "err", err)
		return "", err
	}
	if !s.Catalog().HasArea(res.Area) {
		return fmt.Sprintf("%q no es un área del test: este resultado no suma.", res.Area), nil
	}
	avg := s.GameAverages()[res.Area]
	return fmt.Sprintf("Promedio de juegos en %s: %.1f", res.Area, avg), nil
}

// renderOutcome shows a finished game.
func renderOutcome(res session.GameResult, note string, width int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		theme.Title.Width(width).Render(res.Label),
		"",
		label.Render("Área: ") + theme.Body.Bold(true).Render(string(res.Area)),
		label.Render("Puntaje: ") + theme.Emphasis.Render(fmt.Sprintf("%.0f / 100", res.Score)),
	}
	if res.Explanation != "" {
		lines = append(lines, theme.Dimmed.Render(res.Explanation))
	}
	if note != "" {
		lines = append(lines, "", theme.Body.Render(note))
	}
	lines = append(lines, "", theme.Hint.Render("Enter para volver"))
	return components.Card(strings.Join(lines, "\n"), width)
}

// backOnEnter pops the screen when enter is pressed.
func backOnEnter(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && slices.Contains([]string{"enter", "space"}, k.String()) {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}
