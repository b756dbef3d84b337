package session

import (
	"errors"

	"github.com/abhisek/orienta/internal/catalog"
)

// State is the test lifecycle of a Session. Minigame results are accepted
// in every state.
type State int

const (
	StateIdle      State = iota // No test started yet
	StateInTest                 // Answering questions
	StateFinalized              // Last test produced a record
)

// String returns a lower-case name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInTest:
		return "in_test"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

var (
	// ErrNotInTest is returned by RecordAnswer outside a running test.
	ErrNotInTest = errors.New("no test in progress")

	// ErrOutOfOrder is returned when an answer is not for the current question.
	ErrOutOfOrder = errors.New("answer is not for the current question")

	// ErrOptionOutOfRange is returned for an option index the question does not have.
	ErrOptionOutOfRange = errors.New("option index out of range")

	// ErrTestIncomplete is returned by Finalize before every question is answered.
	ErrTestIncomplete = errors.New("test is not complete")

	// ErrScoreOutOfRange is returned for game scores outside [0, 100].
	ErrScoreOutOfRange = errors.New("game score out of range")
)

// GameResult is the single outcome a minigame delivers when it ends.
type GameResult struct {
	Area        catalog.Area
	Score       float64 // 0..100
	Label       string  // game name shown to the user
	Explanation string
}
