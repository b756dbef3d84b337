// Package minigame implements the scoring rules of the built-in minigames.
// Each game ends by producing exactly one session.GameResult; drawing and
// animation belong to the host.
package minigame

import (
	"errors"
	"fmt"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/session"
)

var (
	// ErrGameOver is returned when a finished game receives more input.
	ErrGameOver = errors.New("game already finished")

	// ErrNotFinished is returned when a result is requested too early.
	ErrNotFinished = errors.New("game not finished")

	// ErrChoiceOutOfRange is returned for an option the round does not have.
	ErrChoiceOutOfRange = errors.New("choice out of range")
)

// Round is one multiple-choice round with a single right answer.
type Round struct {
	Prompt  string
	Options []string
	Correct int
}

// RoundGame is a fixed sequence of rounds scored by the share of correct
// choices.
type RoundGame struct {
	name    string
	area    catalog.Area
	intro   string
	rounds  []Round
	pos     int
	correct int
}

// NewRoundGame creates a game crediting area.
func NewRoundGame(name string, area catalog.Area, intro string, rounds []Round) *RoundGame {
	return &RoundGame{name: name, area: area, intro: intro, rounds: rounds}
}

// DebugRunner asks for the number sequence that breaks its pattern.
func DebugRunner() *RoundGame {
	return NewRoundGame("Debug Runner", catalog.AreaTecnologia,
		"Elige la SECUENCIA con ERROR en el patrón.",
		[]Round{
			{Prompt: "¿Qué secuencia tiene un error?", Options: []string{"2, 4, 6, 8", "1, 3, 5, 7", "10, 12, 14, 17", "0, 5, 10, 15"}, Correct: 2},
			{Prompt: "¿Qué secuencia tiene un error?", Options: []string{"5, 10, 15, 21", "3, 6, 9, 12", "7, 14, 21, 28", "4, 8, 12, 16"}, Correct: 0},
			{Prompt: "¿Qué secuencia tiene un error?", Options: []string{"1, 2, 3, 5", "2, 4, 8, 16", "9, 7, 5, 3", "10, 20, 30, 40"}, Correct: 0},
		})
}

// ColorQuest asks for the color that best matches a target.
func ColorQuest() *RoundGame {
	return NewRoundGame("Color Quest", catalog.AreaArte,
		"Elige el color que MEJOR combina con el objetivo.",
		[]Round{
			{Prompt: "Objetivo: #3B82F6", Options: []string{"#EF4444", "#0EA5E9", "#F59E0B"}, Correct: 0},
			{Prompt: "Objetivo: #10B981", Options: []string{"#6B7280", "#FDE68A", "#059669"}, Correct: 1},
			{Prompt: "Objetivo: #9333EA", Options: []string{"#A78BFA", "#22C55E", "#111827"}, Correct: 0},
		})
}

// Name returns the display name.
func (g *RoundGame) Name() string { return g.name }

// Area returns the area the game credits.
func (g *RoundGame) Area() catalog.Area { return g.area }

// Intro returns the instructions shown before the first round.
func (g *RoundGame) Intro() string { return g.intro }

// Progress returns the rounds played and the total.
func (g *RoundGame) Progress() (played, total int) { return g.pos, len(g.rounds) }

// Done reports whether every round has been played.
func (g *RoundGame) Done() bool { return g.pos >= len(g.rounds) }

// Current returns the round awaiting a choice.
func (g *RoundGame) Current() (Round, bool) {
	if g.Done() {
		return Round{}, false
	}
	return g.rounds[g.pos], true
}

// Choose answers the current round and reports whether k was right.
func (g *RoundGame) Choose(k int) (bool, error) {
	r, ok := g.Current()
	if !ok {
		return false, ErrGameOver
	}
	if k < 0 || k >= len(r.Options) {
		return false, fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, k, len(r.Options))
	}
	right := k == r.Correct
	if right {
		g.correct++
	}
	g.pos++
	return right, nil
}

// Result scores the finished game as the truncated percentage of right
// choices.
func (g *RoundGame) Result() (session.GameResult, error) {
	if !g.Done() {
		return session.GameResult{}, ErrNotFinished
	}
	n := len(g.rounds)
	score := 0
	if n > 0 {
		score = int(float64(g.correct) / float64(n) * 100)
	}
	return session.GameResult{
		Area:        g.area,
		Score:       float64(score),
		Label:       g.name,
		Explanation: fmt.Sprintf("Aciertos: %d / %d", g.correct, n),
	}, nil
}
