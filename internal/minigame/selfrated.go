package minigame

import (
	"fmt"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/session"
)

// SelfRated describes a game played outside the app whose score the user
// reports by hand.
type SelfRated struct {
	Name        string
	Area        catalog.Area
	Explanation string
	Default     int // suggested starting value
	Step        int // reported scores snap to multiples of Step
}

// Damas is the checkers game, rated for logical reasoning.
func Damas() SelfRated {
	return SelfRated{
		Name:        "Damas Vocacional",
		Area:        catalog.AreaTecnologia,
		Explanation: "Juego estratégico que evalúa razonamiento lógico y planificación.",
		Default:     70,
		Step:        5,
	}
}

// Result turns a reported score in [0, 100] into a game result.
func (g SelfRated) Result(score int) (session.GameResult, error) {
	if score < 0 || score > 100 {
		return session.GameResult{}, fmt.Errorf("%w: %d", session.ErrScoreOutOfRange, score)
	}
	if g.Step > 1 {
		score = (score + g.Step/2) / g.Step * g.Step
		score = min(score, 100)
	}
	return session.GameResult{
		Area:        g.Area,
		Score:       float64(score),
		Label:       g.Name,
		Explanation: g.Explanation,
	}, nil
}
