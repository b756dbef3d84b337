package minigame

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/session"
)

// WheelName is the label of Wheel results.
const WheelName = "Ruleta Vocacional"

// NoDataArea is reported when the wheel is closed before any answer. It is
// not a catalog area, so the session ignores the result.
const NoDataArea = catalog.Area("Sin datos")

// ErrAnswerPending is returned by Spin while the last segment's question is
// still unanswered, and ErrNoQuestion by Answer before a spin.
var (
	ErrAnswerPending = errors.New("answer the current question before spinning again")
	ErrNoQuestion    = errors.New("spin the wheel first")
)

// WeightedOption is a self-rating answer and the affinity it adds.
type WeightedOption struct {
	Label  string
	Weight float64
}

// WheelQuestion is the self-rating question asked for a segment.
type WheelQuestion struct {
	Prompt  string
	Options []WeightedOption
}

// WheelConfig controls a Wheel.
type WheelConfig struct {
	// Segments in clockwise order. Names need not be catalog areas.
	Segments []string

	// Questions per segment. Segments without one use DefaultQuestion.
	Questions map[string]WheelQuestion

	// DefaultQuestion is asked for segments missing from Questions.
	DefaultQuestion WheelQuestion

	// Seed for the spinner. Zero seeds from the clock.
	Seed uint64
}

func ratingOptions() []WeightedOption {
	return []WeightedOption{{"Mucho", 1.0}, {"Un poco", 0.5}, {"Nada", 0.0}}
}

// DefaultWheelConfig returns the built-in segments and question bank.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		Segments: []string{
			"Seguridad", "Tecnología", "Arte y cultura", "Comunicación",
			"Cs. Exactas", "Cs. Humanas", "Cs. Naturales", "Educación", "Oficios", "Salud",
		},
		Questions: map[string]WheelQuestion{
			"Tecnología": {"¿Te motiva programar apps/juegos sencillos?", ratingOptions()},
			"Educación":  {"¿Te ves enseñando o acompañando a otros a aprender?", ratingOptions()},
			"Salud":      {"¿Te gustaría aprender primeros auxilios y anatomía?", ratingOptions()},
		},
		DefaultQuestion: WheelQuestion{"¿Qué tan identificado/a te sientes con esta área?", ratingOptions()},
	}
}

// Wheel is the vocational roulette: spin to land on a segment, rate how
// much it appeals, repeat, then Finish.
type Wheel struct {
	cfg     WheelConfig
	rng     *rand.Rand
	tally   map[string]float64
	rounds  int
	pending string
}

// NewWheel creates a wheel. cfg.Segments must not be empty.
func NewWheel(cfg WheelConfig) *Wheel {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	tally := make(map[string]float64, len(cfg.Segments))
	for _, s := range cfg.Segments {
		tally[s] = 0
	}
	return &Wheel{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		tally: tally,
	}
}

// Spin picks a segment uniformly at random and returns it.
func (w *Wheel) Spin() (string, error) {
	if w.pending != "" {
		return "", ErrAnswerPending
	}
	w.pending = w.cfg.Segments[w.rng.IntN(len(w.cfg.Segments))]
	return w.pending, nil
}

// Question returns the question for the segment the wheel stopped on.
func (w *Wheel) Question() (WheelQuestion, bool) {
	if w.pending == "" {
		return WheelQuestion{}, false
	}
	return w.questionFor(w.pending), true
}

func (w *Wheel) questionFor(segment string) WheelQuestion {
	if q, ok := w.cfg.Questions[segment]; ok {
		return q
	}
	return w.cfg.DefaultQuestion
}

// Answer adds the weight of option k to the pending segment.
func (w *Wheel) Answer(k int) error {
	q, ok := w.Question()
	if !ok {
		return ErrNoQuestion
	}
	if k < 0 || k >= len(q.Options) {
		return fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, k, len(q.Options))
	}
	w.tally[w.pending] += q.Options[k].Weight
	w.rounds++
	w.pending = ""
	return nil
}

// Rounds returns the number of answered spins.
func (w *Wheel) Rounds() int { return w.rounds }

// Finish ranks segments by accumulated affinity, segment order on ties, and
// scores the best one against the number of rounds. An unanswered pending
// spin is discarded.
func (w *Wheel) Finish() session.GameResult {
	if w.rounds == 0 {
		return session.GameResult{
			Area:        NoDataArea,
			Score:       0,
			Label:       WheelName,
			Explanation: "No se respondieron rondas.",
		}
	}

	ranked := slices.Clone(w.cfg.Segments)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return cmp.Compare(w.tally[b], w.tally[a])
	})
	best := ranked[0]

	parts := make([]string, 0, 3)
	for _, s := range ranked[:min(3, len(ranked))] {
		parts = append(parts, fmt.Sprintf("%s:%.1f", s, w.tally[s]))
	}

	return session.GameResult{
		Area:        catalog.Area(best),
		Score:       float64(int(w.tally[best] / float64(w.rounds) * 100)),
		Label:       WheelName,
		Explanation: fmt.Sprintf("Afinidad acumulada: %s (de %d rondas)", strings.Join(parts, ", "), w.rounds),
	}
}
