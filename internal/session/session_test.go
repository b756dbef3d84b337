package session

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/result"
)

var fixedNow = time.Date(2026, 5, 2, 17, 4, 5, 0, time.Local)

func newTestSession(t *testing.T, cat *catalog.Catalog, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithID("test"), WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(cat, opts...)
}

// fiveQuestionCatalog has areas A and B, each offered once in every question.
func fiveQuestionCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var qs []catalog.Question
	for range 5 {
		qs = append(qs, catalog.Question{Prompt: "q", Options: []catalog.Option{
			{Label: "a", Area: "A"}, {Label: "b", Area: "B"},
		}})
	}
	cat, err := catalog.New([]catalog.AreaEntry{
		{Name: "A", Professions: []string{"a1", "a2"}},
		{Name: "B", Professions: []string{"b1"}},
	}, qs, nil)
	require.NoError(t, err)
	return cat
}

func answerAll(t *testing.T, s *Session, options ...int) {
	t.Helper()
	for i, opt := range options {
		require.NoError(t, s.RecordAnswer(i, opt))
	}
}

func TestEndToEnd_FirstOptionEverywhere(t *testing.T) {
	s := newTestSession(t, catalog.Default())
	s.StartTest()
	answerAll(t, s, 0, 0, 0, 0, 0, 0)

	rec, err := s.Finalize()
	require.NoError(t, err)

	assert.Equal(t, StateFinalized, s.State())
	assert.Equal(t, catalog.AreaOficios, rec.Area)
	assert.Equal(t, []catalog.Area{catalog.AreaOficios, catalog.AreaAmbiente, catalog.AreaNegocios}, rec.Top3)
	assert.Equal(t, "Ingeniería Civil", rec.Profession)
	assert.Equal(t, TestOnlyWeights, rec.Weights)
	assert.False(t, rec.UsedGames())

	assert.Equal(t, 2, rec.Scores[catalog.AreaOficios])
	assert.Equal(t, 0, rec.Scores[catalog.AreaSalud])
	assert.Equal(t, 1.0, rec.NormalizedTest[catalog.AreaOficios])
	assert.Equal(t, 0.5, rec.NormalizedTest[catalog.AreaAmbiente])
	assert.Equal(t, 0.33, rec.NormalizedTest[catalog.AreaNegocios])
	assert.Equal(t, 0.25, rec.NormalizedTest[catalog.AreaTecnologia])
	assert.Equal(t, rec.NormalizedTest, rec.Blended)
	assert.Equal(t, "2026-05-02 17:04:05", rec.Timestamp)
	assert.Equal(t, "test", rec.SessionID)
	assert.Equal(t, catalog.Default().SeedFavorites(), rec.Favorites)
}

func TestFinalize_FavoriteInWinningAreaIsRecommended(t *testing.T) {
	s := newTestSession(t, catalog.Default(), WithFavorites([]string{"Enfermería", "Topografía", "Mecánica"}))
	s.StartTest()
	answerAll(t, s, 0, 0, 0, 0, 0, 0)

	rec, err := s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "Topografía", rec.Profession)
}

func TestFinalize_NoGamesBlendEqualsTestNorm(t *testing.T) {
	cat := fiveQuestionCatalog(t)
	s := newTestSession(t, cat)
	s.StartTest()
	answerAll(t, s, 0, 0, 0, 0, 0)

	b := s.Blend()
	assert.Equal(t, TestOnlyWeights, b.Weights)
	assert.Equal(t, map[catalog.Area]float64{"A": 1.0, "B": 0}, b.TestNorm)
	assert.Equal(t, b.TestNorm, b.Scores)
}

func TestFinalize_BlendsGames(t *testing.T) {
	cat := fiveQuestionCatalog(t)
	s := newTestSession(t, cat)
	s.StartTest()
	answerAll(t, s, 0, 0, 0, 0, 1)
	require.NoError(t, s.RecordGameResult(GameResult{Area: "A", Score: 60, Label: "g"}))

	b := s.Blend()
	assert.Equal(t, WithGamesWeights, b.Weights)
	assert.InDelta(t, 0.8, b.TestNorm["A"], 1e-9)
	assert.InDelta(t, 0.74, b.Scores["A"], 1e-9)
	assert.InDelta(t, 0.14, b.Scores["B"], 1e-9)

	rec, err := s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 0.74, rec.Blended["A"])
	assert.Equal(t, 60.0, rec.GamesAvg["A"])
	assert.Equal(t, 0.0, rec.GamesAvg["B"])
	assert.True(t, rec.UsedGames())
}

func TestFinalize_TieGoesToFirstDeclaredArea(t *testing.T) {
	cat, err := catalog.New([]catalog.AreaEntry{
		{Name: "Y", Professions: []string{"y1"}},
		{Name: "X", Professions: []string{"x1"}},
	}, []catalog.Question{
		{Prompt: "q1", Options: []catalog.Option{{Label: "x", Area: "X"}, {Label: "y", Area: "Y"}}},
		{Prompt: "q2", Options: []catalog.Option{{Label: "x", Area: "X"}, {Label: "y", Area: "Y"}}},
	}, nil)
	require.NoError(t, err)

	for range 3 {
		s := newTestSession(t, cat)
		s.StartTest()
		answerAll(t, s, 0, 1)
		require.NoError(t, s.RecordGameResult(GameResult{Area: "X", Score: 40}))
		require.NoError(t, s.RecordGameResult(GameResult{Area: "Y", Score: 40}))

		rec, err := s.Finalize()
		require.NoError(t, err)
		assert.Equal(t, rec.Blended["X"], rec.Blended["Y"])
		assert.Equal(t, catalog.Area("Y"), rec.Area)
		assert.Equal(t, []catalog.Area{"Y", "X"}, rec.Top3)
		assert.Equal(t, "y1", rec.Profession)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	areas := []catalog.Area{"X", "Y", "Z", "W"}
	got := rank(areas, map[catalog.Area]float64{"X": 0.2, "Y": 0.5, "Z": 0.2, "W": 0.5})
	assert.Equal(t, []catalog.Area{"Y", "W", "X", "Z"}, got)
}

func TestFinalize_RepeatedCallsAreIndependent(t *testing.T) {
	s := newTestSession(t, fiveQuestionCatalog(t))
	s.StartTest()
	answerAll(t, s, 0, 0, 0, 0, 0)

	first, err := s.Finalize()
	require.NoError(t, err)
	second, err := s.Finalize()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	second.Blended["A"] = 0
	assert.Equal(t, 1.0, first.Blended["A"])
}

func TestFinalize_Incomplete(t *testing.T) {
	s := newTestSession(t, fiveQuestionCatalog(t))

	_, err := s.Finalize()
	assert.ErrorIs(t, err, ErrTestIncomplete)

	s.StartTest()
	answerAll(t, s, 0, 1)
	_, err = s.Finalize()
	assert.ErrorIs(t, err, ErrTestIncomplete)
	assert.Equal(t, StateInTest, s.State())
}

func TestRecordAnswer_Errors(t *testing.T) {
	cat := fiveQuestionCatalog(t)

	idle := newTestSession(t, cat)
	assert.ErrorIs(t, idle.RecordAnswer(0, 0), ErrNotInTest)

	tests := []struct {
		name     string
		question int
		option   int
		wantErr  error
	}{
		{"option too large", 0, 2, ErrOptionOutOfRange},
		{"negative option", 0, -1, ErrOptionOutOfRange},
		{"skipped question", 1, 0, ErrOutOfOrder},
		{"negative question", -1, 0, ErrOutOfOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, cat)
			s.StartTest()
			err := s.RecordAnswer(tt.question, tt.option)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, s.QuestionIndex())
			assert.Equal(t, map[catalog.Area]int{"A": 0, "B": 0}, s.Tally())
		})
	}
}

func TestRecordAnswer_AfterLastQuestion(t *testing.T) {
	s := newTestSession(t, fiveQuestionCatalog(t))
	s.StartTest()
	answerAll(t, s, 0, 0, 0, 0, 0)

	assert.ErrorIs(t, s.RecordAnswer(5, 0), ErrOutOfOrder)
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)
}

func TestStartTest_ResetsTallyButKeepsGames(t *testing.T) {
	s := newTestSession(t, fiveQuestionCatalog(t))
	require.NoError(t, s.RecordGameResult(GameResult{Area: "B", Score: 80}))
	s.StartTest()
	answerAll(t, s, 0, 0)

	s.StartTest()
	assert.Equal(t, 0, s.QuestionIndex())
	assert.Equal(t, map[catalog.Area]int{"A": 0, "B": 0}, s.Tally())
	assert.Equal(t, 1, s.GamesPlayed())

	answered, total := s.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 5, total)
}

func TestStartTest_AfterFinalize(t *testing.T) {
	s := newTestSession(t, fiveQuestionCatalog(t))
	s.StartTest()
	answerAll(t, s, 0, 0, 0, 0, 0)
	_, err := s.Finalize()
	require.NoError(t, err)

	s.StartTest()
	assert.Equal(t, StateInTest, s.State())
	q, ok := s.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "q", q.Prompt)
}

func TestRecordGameResult(t *testing.T) {
	s := newTestSession(t, catalog.Default())

	require.NoError(t, s.RecordGameResult(GameResult{Area: catalog.AreaTecnologia, Score: 100}))
	require.NoError(t, s.RecordGameResult(GameResult{Area: catalog.AreaTecnologia, Score: 33}))
	require.NoError(t, s.RecordGameResult(GameResult{Area: catalog.AreaArte, Score: 66}))

	avg := s.GameAverages()
	assert.InDelta(t, 66.5, avg[catalog.AreaTecnologia], 1e-9)
	assert.InDelta(t, 66.0, avg[catalog.AreaArte], 1e-9)
	assert.Equal(t, 0.0, avg[catalog.AreaSalud])
	assert.Len(t, avg, len(catalog.Default().Areas()))

	best, ok := s.StrongestGameArea()
	require.True(t, ok)
	assert.Equal(t, catalog.AreaTecnologia, best)
}

func TestRecordGameResult_UnknownAreaIgnored(t *testing.T) {
	s := newTestSession(t, catalog.Default())

	err := s.RecordGameResult(GameResult{Area: "Cs. Humanas", Score: 500, Label: "ruleta"})
	require.NoError(t, err)
	assert.Equal(t, 0, s.GamesPlayed())
	assert.Equal(t, TestOnlyWeights, s.Blend().Weights)

	_, ok := s.StrongestGameArea()
	assert.False(t, ok)
}

func TestRecordGameResult_ScoreOutOfRange(t *testing.T) {
	for _, score := range []float64{-1, 100.5, math.NaN(), math.Inf(1)} {
		s := newTestSession(t, catalog.Default())
		err := s.RecordGameResult(GameResult{Area: catalog.AreaSalud, Score: score})
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
		assert.Equal(t, 0, s.GamesPlayed())
	}
}

func TestFavorites(t *testing.T) {
	s := newTestSession(t, catalog.Default(), WithFavorites([]string{"Medicina", "nope", "Medicina"}))
	assert.Equal(t, []string{"Medicina"}, s.Favorites())

	on, err := s.ToggleFavorite("Biología")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{"Medicina", "Biología"}, s.Favorites())

	on, err = s.ToggleFavorite("Medicina")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, []string{"Biología"}, s.Favorites())

	_, err = s.ToggleFavorite("Astronauta")
	assert.ErrorIs(t, err, catalog.ErrUnknownProfession)

	s.SetFavorites([]string{"Docencia", "x"})
	assert.Equal(t, []string{"Docencia"}, s.Favorites())

	favs := s.Favorites()
	favs[0] = "changed"
	assert.Equal(t, []string{"Docencia"}, s.Favorites())
}

func TestDefaults(t *testing.T) {
	s := New(catalog.Default())
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, catalog.Default().SeedFavorites(), s.Favorites())
	assert.Nil(t, s.Previous())
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)
}

func TestWithPrevious_IsCopied(t *testing.T) {
	prev := &result.Record{Area: catalog.AreaSalud, Top3: []catalog.Area{catalog.AreaSalud}}
	s := New(catalog.Default(), WithPrevious(prev))

	prev.Top3[0] = "changed"
	got := s.Previous()
	require.NotNil(t, got)
	assert.Equal(t, catalog.AreaSalud, got.Top3[0])
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "in_test", StateInTest.String())
	assert.Equal(t, "finalized", StateFinalized.String())
	assert.Equal(t, "unknown", State(9).String())
}
