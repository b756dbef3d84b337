// Package session aggregates one user's run: test answers, minigame results
// and favorites, and turns them into a result.Record when the test ends.
//
// A Session is not safe for concurrent use. The host delivers events one at
// a time from its own event loop.
package session

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/logging"
	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/scoring"
)

// Session tracks the state of one interactive run.
type Session struct {
	id     string
	cat    *catalog.Catalog
	log    *slog.Logger
	now    func() time.Time
	state  State
	cursor int

	testTally    map[catalog.Area]int
	gameScoreSum map[catalog.Area]float64
	gameCount    map[catalog.Area]int

	favorites []string
	previous  *result.Record
}

// Option configures a Session.
type Option func(*Session)

// WithFavorites seeds the favorites list, typically loaded from storage.
// Names that are not catalog professions are dropped.
func WithFavorites(favs []string) Option {
	return func(s *Session) {
		s.favorites = s.cat.FilterProfessions(favs)
	}
}

// WithPrevious attaches the last persisted record. It is read only.
func WithPrevious(rec *result.Record) Option {
	return func(s *Session) {
		s.previous = rec.Clone()
	}
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithID sets the session ID instead of a random UUID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New creates an idle Session over cat. Without WithFavorites the catalog's
// seed favorites are used.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		cat:          cat,
		now:          time.Now,
		log:          logging.Discard(),
		testTally:    zeroTally(cat),
		gameScoreSum: make(map[catalog.Area]float64),
		gameCount:    make(map[catalog.Area]int),
		favorites:    cat.SeedFavorites(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.New().String()
	}
	s.log = s.log.With("session", s.id)
	return s
}

// StartTest resets the tally and question cursor and enters StateInTest.
// Game results already recorded are kept.
func (s *Session) StartTest() {
	s.testTally = zeroTally(s.cat)
	s.cursor = 0
	s.state = StateInTest
	s.log.Debug("test started", "questions", s.cat.NumQuestions())
}

// RecordAnswer credits the area of the chosen option and moves to the next
// question. questionIndex must equal QuestionIndex(). On error nothing
// changes.
func (s *Session) RecordAnswer(questionIndex, optionIndex int) error {
	if s.state != StateInTest {
		return ErrNotInTest
	}
	if questionIndex != s.cursor {
		return fmt.Errorf("%w: got %d, current is %d", ErrOutOfOrder, questionIndex, s.cursor)
	}
	q, ok := s.cat.Question(questionIndex)
	if !ok {
		return fmt.Errorf("%w: question %d", ErrOutOfOrder, questionIndex)
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: option %d of %d", ErrOptionOutOfRange, optionIndex, len(q.Options))
	}

	area := q.Options[optionIndex].Area
	s.testTally[area]++
	s.cursor++
	s.log.Debug("answer recorded", "question", questionIndex, "option", optionIndex, "area", area)
	return nil
}

// RecordGameResult accumulates a minigame score for its area. Results for
// areas outside the catalog are ignored.
func (s *Session) RecordGameResult(r GameResult) error {
	if !s.cat.HasArea(r.Area) {
		s.log.Debug("game result ignored: unknown area", "game", r.Label, "area", r.Area)
		return nil
	}
	if math.IsNaN(r.Score) || r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("%w: %v", ErrScoreOutOfRange, r.Score)
	}
	s.gameScoreSum[r.Area] += r.Score
	s.gameCount[r.Area]++
	s.log.Debug("game result recorded", "game", r.Label, "area", r.Area, "score", r.Score)
	return nil
}

// Finalize blends the test and game scores and returns a new record. It
// requires every question to be answered. Calling it again without a new
// test returns another, independent record built from the same state.
func (s *Session) Finalize() (*result.Record, error) {
	n := s.cat.NumQuestions()
	if s.state == StateIdle || s.cursor != n {
		return nil, fmt.Errorf("%w: %d of %d answered", ErrTestIncomplete, s.cursor, n)
	}

	b := s.Blend()
	winner := b.Winner()
	prof, ok := scoring.SelectProfession(s.cat, winner, s.favorites, nil)
	if !ok {
		prof = string(winner)
	}

	rec := result.New(result.Input{
		SessionID:  s.id,
		At:         s.now(),
		Tally:      s.testTally,
		TestNorm:   b.TestNorm,
		GameAvg:    b.GameAvg,
		Blended:    b.Scores,
		Weights:    b.Weights,
		Ranking:    b.Ranking,
		Profession: prof,
		Favorites:  s.favorites,
	})
	s.state = StateFinalized
	s.log.Info("test finalized", "area", rec.Area, "profession", rec.Profession, "games", rec.UsedGames())
	return rec, nil
}

// Blend computes the current blend without changing state. The host uses it
// for live previews.
func (s *Session) Blend() Blend {
	return computeBlend(s.cat, s.testTally, s.gameScoreSum, s.gameCount)
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the test lifecycle state.
func (s *Session) State() State { return s.state }

// Catalog returns the catalog the session scores against.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// QuestionIndex returns the index of the next question to answer.
func (s *Session) QuestionIndex() int { return s.cursor }

// CurrentQuestion returns the next question to answer. ok is false outside
// a test or after the last answer.
func (s *Session) CurrentQuestion() (catalog.Question, bool) {
	if s.state != StateInTest {
		return catalog.Question{}, false
	}
	return s.cat.Question(s.cursor)
}

// Progress returns the answered and total question counts.
func (s *Session) Progress() (answered, total int) {
	return s.cursor, s.cat.NumQuestions()
}

// Tally returns a copy of the raw per-area answer counts.
func (s *Session) Tally() map[catalog.Area]int {
	return maps.Clone(s.testTally)
}

// Normalized returns the normalized test scores so far.
func (s *Session) Normalized() map[catalog.Area]float64 {
	return scoring.NormalizeScores(s.cat, s.testTally)
}

// GameAverages returns the average game score per area, 0 when unplayed.
func (s *Session) GameAverages() map[catalog.Area]float64 {
	return averages(s.cat, s.gameScoreSum, s.gameCount)
}

// GamesPlayed returns how many game results were accepted.
func (s *Session) GamesPlayed() int {
	total := 0
	for _, n := range s.gameCount {
		total += n
	}
	return total
}

// StrongestGameArea returns the area with the best game average, the first
// declared one on ties. ok is false before any game result.
func (s *Session) StrongestGameArea() (catalog.Area, bool) {
	if s.GamesPlayed() == 0 {
		return "", false
	}
	return rank(s.cat.Areas(), s.GameAverages())[0], true
}

// Favorites returns a copy of the favorites list.
func (s *Session) Favorites() []string {
	return slices.Clone(s.favorites)
}

// SetFavorites replaces the favorites, dropping unknown professions.
func (s *Session) SetFavorites(favs []string) {
	s.favorites = s.cat.FilterProfessions(favs)
}

// ToggleFavorite adds profession to the favorites or removes it when it is
// already there. It reports whether the profession is a favorite afterwards.
func (s *Session) ToggleFavorite(profession string) (bool, error) {
	if _, err := s.cat.AreaOf(profession); err != nil {
		return false, err
	}
	if i := slices.Index(s.favorites, profession); i >= 0 {
		s.favorites = slices.Delete(s.favorites, i, i+1)
		return false, nil
	}
	s.favorites = append(s.favorites, profession)
	return true, nil
}

// Previous returns the record the session was started with, or nil.
func (s *Session) Previous() *result.Record {
	return s.previous.Clone()
}

func zeroTally(cat *catalog.Catalog) map[catalog.Area]int {
	t := make(map[catalog.Area]int, len(cat.Areas()))
	for _, a := range cat.Areas() {
		t[a] = 0
	}
	return t
}
