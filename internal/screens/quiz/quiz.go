// Package quiz is the vocational test screen.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/screens/summary"
	"github.com/abhisek/orienta/internal/scoring"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// KeepResults is how many stored results survive a new save.
const KeepResults = 50

// QuizScreen asks the catalog questions one at a time.
type QuizScreen struct {
	env    *screen.Env
	mc     components.MultiChoice
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. A test already in progress is resumed;
// otherwise a new one starts.
func New(env *screen.Env) *QuizScreen {
	s := env.Session
	if answered, total := s.Progress(); s.State() != session.StateInTest || answered >= total {
		s.StartTest()
	}
	q := &QuizScreen{env: env}
	q.loadQuestion()
	return q
}

func (q *QuizScreen) loadQuestion() {
	cq, ok := q.env.Session.CurrentQuestion()
	if !ok {
		return
	}
	labels := make([]string, len(cq.Options))
	for i, o := range cq.Options {
		labels[i] = o.Label
	}
	q.mc = components.NewMultiChoice(cq.Prompt, labels, components.NoCorrectAnswer)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Test vocacional"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-5", Description: "Responder"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Pausar"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return q, nil
	}

	q.mc, _ = q.mc.Update(msg)
	if !q.mc.Submitted {
		return q, nil
	}

	s := q.env.Session
	if err := s.RecordAnswer(s.QuestionIndex(), q.mc.ChosenIndex); err != nil {
		q.env.Logger().Warn("record answer", "err", err)
		q.errMsg = err.Error()
		q.loadQuestion()
		return q, nil
	}
	q.errMsg = ""

	if answered, total := s.Progress(); answered < total {
		q.loadQuestion()
		return q, nil
	}
	return q, q.finish()
}

// finish finalizes the session, stores the record and swaps this screen
// for the result screen.
func (q *QuizScreen) finish() tea.Cmd {
	rec, err := q.env.Session.Finalize()
	if err != nil {
		q.errMsg = err.Error()
		return nil
	}
	q.env.Last = rec

	if repo := q.env.Results; repo != nil {
		ctx := context.Background()
		if _, err := repo.Save(ctx, rec); err != nil {
			q.env.Logger().Error("save result", "err", err)
		} else if err := repo.Prune(ctx, KeepResults); err != nil {
			q.env.Logger().Warn("prune results", "err", err)
		}
	}

	next := summary.New(q.env, rec)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s := q.env.Session
	answered, total := s.Progress()

	var sections []string
	progress := components.NewProgressBar(
		fmt.Sprintf("Pregunta %d de %d", min(answered+1, total), total),
		float64(answered)/float64(max(total, 1)), false, cw)
	sections = append(sections, progress.View())
	sections = append(sections, components.Card(strings.TrimRight(q.mc.View(), "\n"), cw))

	if q.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(q.errMsg))
	}
	if !layout.IsCompactHeight(height) {
		sections = append(sections, renderLiveScores(s.Catalog(), s.Normalized(), cw))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

// renderLiveScores draws one clamped bar per area, in catalog order.
func renderLiveScores(cat *catalog.Catalog, norm map[catalog.Area]float64, width int) string {
	labelWidth := 0
	for _, a := range cat.Areas() {
		labelWidth = max(labelWidth, lipgloss.Width(string(a)))
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render("Cómo vas") + "\n")
	for i, a := range cat.Areas() {
		name := string(a) + strings.Repeat(" ", labelWidth-lipgloss.Width(string(a)))
		bar := components.NewProgressBar(name, scoring.Clamp01(norm[a]), true, width).
			WithColor(theme.AreaColor(i))
		b.WriteString(bar.View() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
