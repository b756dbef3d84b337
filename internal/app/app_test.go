package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/screens/home"
	"github.com/abhisek/orienta/internal/session"
)

func newTestModel() AppModel {
	return newAppModel(&screen.Env{Session: session.New(catalog.Default())})
}

// step feeds msg to the model and then every message its command yields,
// one level deep.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(AppModel)
		}
	}
	return m
}

func TestStartsOnWelcomeThenHome(t *testing.T) {
	m := newTestModel()
	if m.router.Active().Title() != "" {
		t.Fatalf("expected welcome screen first, got %q", m.router.Active().Title())
	}

	m = step(t, m, tea.KeyPressMsg{Code: ' '})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home after key press, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestEscPops(t *testing.T) {
	m := newTestModel()
	m = step(t, m, tea.KeyPressMsg{Code: ' '})
	m = step(t, m, tea.KeyPressMsg{Code: '2'})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 after opening minigames", m.router.Depth())
	}

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1 after esc", m.router.Depth())
	}
}

func TestViewShowsHeaderStatus(t *testing.T) {
	m := newTestModel()
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = step(t, m, tea.KeyPressMsg{Code: ' '})

	out := ansi.Strip(m.render())
	if !strings.Contains(out, "Test 0/6") {
		t.Errorf("header status missing:\n%s", out)
	}
}

func TestTooSmall(t *testing.T) {
	m := step(t, newTestModel(), tea.WindowSizeMsg{Width: 40, Height: 10})
	if out := ansi.Strip(m.render()); !strings.Contains(out, "80 x 24") {
		t.Errorf("expected minimum size message, got:\n%s", out)
	}
}
