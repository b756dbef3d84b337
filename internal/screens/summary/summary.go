// Package summary shows a finished test: the report, a browser over the
// professions of the winning area and export.
package summary

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/report"
	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/scoring"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// SummaryScreen displays one result record.
type SummaryScreen struct {
	env    *screen.Env
	rec    *result.Record
	cycler *scoring.Cycler
	shown  string
	notice string
	now    func() time.Time
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for rec.
func New(env *screen.Env, rec *result.Record) *SummaryScreen {
	s := &SummaryScreen{env: env, rec: rec, shown: rec.Profession, now: time.Now}
	if c, ok := scoring.NewCycler(env.Session.Catalog(), rec.Area, env.Session.Favorites()); ok {
		s.cycler = c
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Tu resultado"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "o", Description: "Otra profesión"},
		{Key: "f", Description: "Favorita"},
	}
	if s.env.ExportDir != "" {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Exportar"})
	}
	return append(hints, layout.KeyHint{Key: "Enter", Description: "Inicio"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "o":
		s.nextProfession()
	case "f":
		s.toggleFavorite()
	case "e":
		s.export()
	}
	return s, nil
}

// nextProfession moves to another profession of the winning area.
func (s *SummaryScreen) nextProfession() {
	if s.cycler == nil {
		s.notice = "No hay otras profesiones en esta área."
		return
	}
	if s.shown == s.cycler.Current() {
		s.shown = s.cycler.Next()
	} else {
		s.shown = s.cycler.Current()
	}
	s.notice = ""
}

func (s *SummaryScreen) toggleFavorite() {
	fav, err := s.env.Session.ToggleFavorite(s.shown)
	if err != nil {
		s.notice = err.Error()
		return
	}
	if err := s.env.SaveFavorites(context.Background()); err != nil {
		s.env.Logger().Error("save favorites", "err", err)
		s.notice = "No se pudieron guardar las favoritas."
		return
	}
	if fav {
		s.notice = "★ " + s.shown + " agregada a favoritas."
	} else {
		s.notice = s.shown + " quitada de favoritas."
	}
}

func (s *SummaryScreen) export() {
	if s.env.ExportDir == "" {
		return
	}
	path, err := report.ExportJSON(s.env.ExportDir, s.rec, s.now())
	if err != nil {
		s.env.Logger().Error("export result", "err", err)
		s.notice = "Error al exportar: " + err.Error()
		return
	}
	s.notice = "Exportado en " + path
}

func (s *SummaryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := report.Render(s.rec, s.env.Session.Catalog().Areas(), cw)

	var extra []string
	if s.shown != s.rec.Profession {
		extra = append(extra, fmt.Sprintf("Otra opción en %s: %s",
			s.rec.Area, theme.Emphasis.Render(s.shown)))
	}
	if slices.Contains(s.env.Session.Favorites(), s.shown) {
		extra = append(extra, theme.Correct.Render("★ ")+theme.Dimmed.Render(s.shown+" está en tus favoritas"))
	}
	if s.notice != "" {
		extra = append(extra, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}

	content := components.Card(strings.TrimRight(body, "\n"), cw)
	if len(extra) > 0 {
		content += "\n\n" + strings.Join(extra, "\n")
	}
	return components.Center(content, width, height)
}
