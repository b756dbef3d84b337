// Package result defines the snapshot produced when a vocational test is
// finalized. Its JSON form is the contract shared with storage and reports.
package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/abhisek/orienta/internal/catalog"
)

// TimestampLayout is the format of Record.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// TopN is the number of areas kept in Record.Top3.
const TopN = 3

// ErrInvalidRecord is returned when a persisted record cannot be used.
var ErrInvalidRecord = errors.New("invalid result record")

// Weights are the blend weights used for a record.
type Weights struct {
	Test  float64 `json:"test"`
	Games float64 `json:"games"`
}

// Record is a finished test. Records are never modified after New returns;
// a later test produces a new record instead of updating this one.
type Record struct {
	SessionID      string                   `json:"session_id,omitempty"`
	Timestamp      string                   `json:"timestamp"`
	Scores         map[catalog.Area]int     `json:"scores"`
	NormalizedTest map[catalog.Area]float64 `json:"normalized_test"` // 0..1, 2 decimals
	GamesAvg       map[catalog.Area]float64 `json:"games_avg"`       // 0..100, 1 decimal
	Weights        Weights                  `json:"weights"`
	Blended        map[catalog.Area]float64 `json:"blended"` // 0..1, 2 decimals
	Top3           []catalog.Area           `json:"top3"`
	Area           catalog.Area             `json:"area"`
	Profession     string                   `json:"profession"`
	Favorites      []string                 `json:"favorites"`
}

// Input carries the unrounded values computed at finalization.
type Input struct {
	SessionID  string
	At         time.Time
	Tally      map[catalog.Area]int
	TestNorm   map[catalog.Area]float64
	GameAvg    map[catalog.Area]float64
	Blended    map[catalog.Area]float64
	Weights    Weights
	Ranking    []catalog.Area // best first
	Profession string
	Favorites  []string
}

// New builds a Record, rounding scores to their report precision.
// Ranking must hold at least one area.
func New(in Input) *Record {
	top := in.Ranking[:min(TopN, len(in.Ranking))]
	favs := slices.Clone(in.Favorites)
	if favs == nil {
		favs = []string{}
	}
	return &Record{
		SessionID:      in.SessionID,
		Timestamp:      in.At.Format(TimestampLayout),
		Scores:         maps.Clone(in.Tally),
		NormalizedTest: roundAll(in.TestNorm, 2),
		GamesAvg:       roundAll(in.GameAvg, 1),
		Weights:        in.Weights,
		Blended:        roundAll(in.Blended, 2),
		Top3:           slices.Clone(top),
		Area:           in.Ranking[0],
		Profession:     in.Profession,
		Favorites:      favs,
	}
}

// UsedGames reports whether minigame results took part in the blend.
func (r *Record) UsedGames() bool {
	return r.Weights.Games > 0
}

// Time parses Timestamp in the local zone.
func (r *Record) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, r.Timestamp, time.Local)
}

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.Scores = maps.Clone(r.Scores)
	c.NormalizedTest = maps.Clone(r.NormalizedTest)
	c.GamesAvg = maps.Clone(r.GamesAvg)
	c.Blended = maps.Clone(r.Blended)
	c.Top3 = slices.Clone(r.Top3)
	c.Favorites = slices.Clone(r.Favorites)
	return &c
}

// Encode returns the JSON form of r.
func (r *Record) Encode() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return b, nil
}

// Decode parses a previously persisted record.
func Decode(raw []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if r.Area == "" {
		return nil, fmt.Errorf("%w: missing area", ErrInvalidRecord)
	}
	if _, err := r.Time(); err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q", ErrInvalidRecord, r.Timestamp)
	}
	return &r, nil
}

func roundAll(m map[catalog.Area]float64, places int) map[catalog.Area]float64 {
	out := make(map[catalog.Area]float64, len(m))
	for k, v := range m {
		out[k] = round(v, places)
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
