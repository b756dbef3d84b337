package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const compassArt = `    ╭─────╮
  ╭─┤  N  ├─╮
  │ ╰──▲──╯ │
  O ───◆─── E
  │ ╭──┴──╮ │
  ╰─┤  S  ├─╯
    ╰─────╯`

var needleFrames = []string{"◆", "◇"}

// Greeting is the first line the user reads.
const Greeting = "¡Hola! Soy tu orientador vocacional."

type tickMsg time.Time

// WelcomeScreen shows a short splash, with the last saved result when
// there is one, before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	previous     *result.Record
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with homeFactory's screen
// on the first key press. previous may be nil.
func New(homeFactory func() screen.Screen, previous *result.Record) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		previous:    previous,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	art := compassArt
	if w.elapsed >= phase1End {
		art = strings.Replace(art, "◆", needleFrames[w.tickCount%len(needleFrames)], 1)
	}
	sections := []string{lipgloss.NewStyle().Foreground(theme.Secondary).Render(art)}

	if w.elapsed >= phase1End {
		sections = append(sections, "", RenderBanner(width), "",
			theme.Body.Bold(true).Render(Greeting))
	}

	if w.elapsed >= phase2End {
		if w.previous != nil {
			sections = append(sections, "", theme.Dimmed.Render(fmt.Sprintf(
				"Tu último resultado (%s): %s · %s",
				w.previous.Timestamp, w.previous.Area, w.previous.Profession)))
		}
		sections = append(sections, "", theme.Hint.Render("pulsa cualquier tecla para continuar"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
