package result

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/orienta/internal/catalog"
)

func testInput() Input {
	return Input{
		SessionID:  "s-1",
		At:         time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local),
		Tally:      map[catalog.Area]int{"A": 2, "B": 1, "C": 0, "D": 0},
		TestNorm:   map[catalog.Area]float64{"A": 2.0 / 3.0, "B": 0.125, "C": 0, "D": 0},
		GameAvg:    map[catalog.Area]float64{"A": 66.666, "B": 0, "C": 0, "D": 0},
		Blended:    map[catalog.Area]float64{"A": 0.666666, "B": 0.0875, "C": 0, "D": 0},
		Weights:    Weights{Test: 0.7, Games: 0.3},
		Ranking:    []catalog.Area{"A", "B", "C", "D"},
		Profession: "a1",
	}
}

func TestNew_RoundsAndSnapshots(t *testing.T) {
	in := testInput()
	r := New(in)

	assert.Equal(t, "s-1", r.SessionID)
	assert.Equal(t, "2026-03-14 09:26:53", r.Timestamp)
	assert.Equal(t, 0.67, r.NormalizedTest["A"])
	assert.Equal(t, 0.13, r.NormalizedTest["B"])
	assert.Equal(t, 66.7, r.GamesAvg["A"])
	assert.Equal(t, 0.67, r.Blended["A"])
	assert.Equal(t, 0.09, r.Blended["B"])
	assert.Equal(t, []catalog.Area{"A", "B", "C"}, r.Top3)
	assert.Equal(t, catalog.Area("A"), r.Area)
	assert.Equal(t, "a1", r.Profession)
	assert.Equal(t, []string{}, r.Favorites)
	assert.True(t, r.UsedGames())

	// Later changes to the inputs do not leak into the record.
	in.Tally["A"] = 99
	in.Ranking[0] = "Z"
	assert.Equal(t, 2, r.Scores["A"])
	assert.Equal(t, catalog.Area("A"), r.Top3[0])
}

func TestNew_FewerThanThreeAreas(t *testing.T) {
	in := testInput()
	in.Ranking = []catalog.Area{"B", "A"}
	r := New(in)
	assert.Equal(t, []catalog.Area{"B", "A"}, r.Top3)
	assert.Equal(t, catalog.Area("B"), r.Area)
}

func TestRecord_JSONFieldNames(t *testing.T) {
	raw, err := New(testInput()).Encode()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{
		"timestamp", "scores", "normalized_test", "games_avg", "weights",
		"blended", "top3", "area", "profession", "favorites",
	} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, map[string]any{"test": 0.7, "games": 0.3}, m["weights"])
}

func TestDecode(t *testing.T) {
	raw, err := New(testInput()).Encode()
	require.NoError(t, err)

	r, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, catalog.Area("A"), r.Area)

	ts, err := r.Time()
	require.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing area", `{"timestamp":"2026-01-01 10:00:00"}`},
		{"bad timestamp", `{"area":"A","timestamp":"yesterday"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	r := New(testInput())
	c := r.Clone()
	c.Blended["A"] = 0
	c.Top3[0] = "Z"
	assert.Equal(t, 0.67, r.Blended["A"])
	assert.Equal(t, catalog.Area("A"), r.Top3[0])

	var nilRec *Record
	assert.Nil(t, nilRec.Clone())
}
