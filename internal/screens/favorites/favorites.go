// Package favorites lets the user mark the professions they like. Favorites
// win the profession choice within the recommended area.
package favorites

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

type row struct {
	area       catalog.Area
	profession string // empty for area headers
}

// FavoritesScreen is a toggle list of every profession, grouped by area.
type FavoritesScreen struct {
	env      *screen.Env
	rows     []row
	selected int
	dirty    bool
	notice   string
}

var _ screen.Screen = (*FavoritesScreen)(nil)
var _ screen.KeyHintProvider = (*FavoritesScreen)(nil)

// New creates a FavoritesScreen.
func New(env *screen.Env) *FavoritesScreen {
	cat := env.Session.Catalog()
	var rows []row
	for _, a := range cat.Areas() {
		rows = append(rows, row{area: a})
		for _, p := range cat.Professions(a) {
			rows = append(rows, row{area: a, profession: p})
		}
	}
	s := &FavoritesScreen{env: env, rows: rows}
	s.move(1)
	return s
}

func (s *FavoritesScreen) Init() tea.Cmd {
	return nil
}

func (s *FavoritesScreen) Title() string {
	return "Mis favoritas"
}

func (s *FavoritesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Marcar"},
		{Key: "g", Description: "Guardar"},
		{Key: "Esc", Description: "Volver"},
	}
}

// move steps the cursor by dir, skipping area headers.
func (s *FavoritesScreen) move(dir int) {
	for i := s.selected + dir; i >= 0 && i < len(s.rows); i += dir {
		if s.rows[i].profession != "" {
			s.selected = i
			return
		}
	}
}

// Selected returns the profession under the cursor.
func (s *FavoritesScreen) Selected() string {
	return s.rows[s.selected].profession
}

// Dirty reports whether there are unsaved changes.
func (s *FavoritesScreen) Dirty() bool {
	return s.dirty
}

func (s *FavoritesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "enter", "space":
		s.toggle()
	case "g":
		s.save()
	}
	return s, nil
}

func (s *FavoritesScreen) toggle() {
	p := s.Selected()
	if p == "" {
		return
	}
	if _, err := s.env.Session.ToggleFavorite(p); err != nil {
		s.notice = err.Error()
		return
	}
	s.dirty = true
	s.notice = ""
}

func (s *FavoritesScreen) save() {
	if s.env.Favorites == nil {
		s.notice = "Sin almacenamiento: las favoritas duran hasta que cierres."
		return
	}
	if err := s.env.SaveFavorites(context.Background()); err != nil {
		s.env.Logger().Error("save favorites", "err", err)
		s.notice = "No se pudieron guardar: " + err.Error()
		return
	}
	s.dirty = false
	s.notice = "Favoritas guardadas."
}

func (s *FavoritesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	favs := s.env.Session.Favorites()

	lines := make([]string, len(s.rows))
	for i, r := range s.rows {
		if r.profession == "" {
			lines[i] = theme.Emphasis.Render(string(r.area))
			continue
		}
		mark := "☆"
		if slices.Contains(favs, r.profession) {
			mark = "★"
		}
		line := fmt.Sprintf("  %s %s", mark, r.profession)
		if i == s.selected {
			lines[i] = theme.Selected.Render("▸" + line[1:])
		} else {
			lines[i] = theme.Unselected.Render(line)
		}
	}

	// Leave room for the card border, title and status line.
	visible := max(height-8, 5)
	start := min(max(s.selected-visible/2, 0), max(len(lines)-visible, 0))
	end := min(start+visible, len(lines))

	status := fmt.Sprintf("%d favoritas", len(favs))
	if s.dirty {
		status += " · cambios sin guardar"
	}
	sections := []string{
		components.Card(strings.Join(lines[start:end], "\n"), cw),
		theme.Hint.Render(status),
	}
	if s.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	return components.Center(strings.Join(sections, "\n"), width, height)
}
