// Package interests suggests an area from what the user writes about
// themselves.
package interests

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/scoring"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// Fallback is shown when no keyword matched.
const Fallback = "No logré identificar un área con eso. Puedes hacer el test " +
	"vocacional o contarme más sobre lo que te gusta."

// InterestsScreen takes free text and answers with a suggestion.
type InterestsScreen struct {
	env        *screen.Env
	input      components.TextInput
	suggestion *scoring.Suggestion
	cycler     *scoring.Cycler
	shown      string
	missed     bool
}

var _ screen.Screen = (*InterestsScreen)(nil)
var _ screen.KeyHintProvider = (*InterestsScreen)(nil)

// New creates an InterestsScreen.
func New(env *screen.Env) *InterestsScreen {
	return &InterestsScreen{
		env:   env,
		input: components.NewTextInput("Me gusta programar, dibujar, el campo…", false, 200),
	}
}

func (s *InterestsScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *InterestsScreen) Title() string {
	return "Tus intereses"
}

func (s *InterestsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Sugerir"}}
	if s.cycler != nil {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Otra profesión"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Volver"})
}

func (s *InterestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			s.suggest()
			return s, nil
		case "tab":
			if s.cycler != nil {
				if s.shown == s.cycler.Current() {
					s.shown = s.cycler.Next()
				} else {
					s.shown = s.cycler.Current()
				}
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterestsScreen) suggest() {
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return
	}
	sess := s.env.Session
	sug, ok := scoring.Suggest(sess.Catalog(), text, sess.Favorites())
	s.env.Logger().Debug("interest inference", "area", sug.Area, "hits", sug.Hits, "matched", ok)
	if !ok {
		s.suggestion, s.cycler, s.shown = nil, nil, ""
		s.missed = true
		return
	}
	s.missed = false
	s.suggestion = &sug
	s.shown = sug.Profession
	s.cycler, _ = scoring.NewCycler(sess.Catalog(), sug.Area, sess.Favorites())
}

func (s *InterestsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sections := []string{
		theme.Title.Width(cw).Render("Cuéntame qué te gusta"),
		theme.Subtitle.Width(cw).Render("Escribe con tus palabras y te sugiero un área."),
		components.Card(s.input.View(), cw),
	}

	switch {
	case s.missed:
		sections = append(sections, lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(Fallback))
	case s.suggestion != nil:
		sections = append(sections, components.Card(s.renderSuggestion(), cw))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (s *InterestsScreen) renderSuggestion() string {
	sug := s.suggestion
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		label.Render("Por lo que cuentas, te puede interesar ") + theme.Emphasis.Render(string(sug.Area)),
		label.Render("Profesión sugerida: ") + theme.Body.Bold(true).Render(s.shown),
		theme.Hint.Render("Palabras clave: " + strings.Join(sug.Keywords, ", ")),
	}
	return strings.Join(lines, "\n")
}
