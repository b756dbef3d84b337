package minigame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/session"
)

func TestRoundGame_Scoring(t *testing.T) {
	tests := []struct {
		name      string
		game      func() *RoundGame
		choices   []int
		wantScore float64
		wantWhy   string
	}{
		{"debug runner all right", DebugRunner, []int{2, 0, 0}, 100, "Aciertos: 3 / 3"},
		{"debug runner two right", DebugRunner, []int{2, 0, 1}, 66, "Aciertos: 2 / 3"},
		{"debug runner one right", DebugRunner, []int{1, 1, 0}, 33, "Aciertos: 1 / 3"},
		{"color quest none right", ColorQuest, []int{1, 0, 2}, 0, "Aciertos: 0 / 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.game()
			for _, c := range tt.choices {
				_, err := g.Choose(c)
				require.NoError(t, err)
			}
			res, err := g.Result()
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantWhy, res.Explanation)
			assert.Equal(t, g.Area(), res.Area)
			assert.Equal(t, g.Name(), res.Label)
		})
	}
}

func TestRoundGame_Flow(t *testing.T) {
	g := ColorQuest()
	assert.Equal(t, catalog.AreaArte, g.Area())

	_, err := g.Result()
	assert.ErrorIs(t, err, ErrNotFinished)

	r, ok := g.Current()
	require.True(t, ok)
	assert.Len(t, r.Options, 3)

	_, err = g.Choose(3)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)
	played, total := g.Progress()
	assert.Equal(t, 0, played)
	assert.Equal(t, 3, total)

	right, err := g.Choose(0)
	require.NoError(t, err)
	assert.True(t, right)
	right, err = g.Choose(0)
	require.NoError(t, err)
	assert.False(t, right)
	_, err = g.Choose(0)
	require.NoError(t, err)

	assert.True(t, g.Done())
	_, ok = g.Current()
	assert.False(t, ok)
	_, err = g.Choose(0)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestRoundGame_FeedsSession(t *testing.T) {
	g := DebugRunner()
	for _, c := range []int{2, 0, 0} {
		_, err := g.Choose(c)
		require.NoError(t, err)
	}
	res, err := g.Result()
	require.NoError(t, err)

	s := session.New(catalog.Default())
	require.NoError(t, s.RecordGameResult(res))
	assert.Equal(t, 100.0, s.GameAverages()[catalog.AreaTecnologia])
}

func TestWheel_NoRounds(t *testing.T) {
	w := NewWheel(DefaultWheelConfig())
	res := w.Finish()
	assert.Equal(t, NoDataArea, res.Area)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, WheelName, res.Label)
}

func TestWheel_SpinAnswerFinish(t *testing.T) {
	cfg := DefaultWheelConfig()
	cfg.Seed = 42
	w := NewWheel(cfg)

	_, ok := w.Question()
	assert.False(t, ok)
	assert.ErrorIs(t, w.Answer(0), ErrNoQuestion)

	seg, err := w.Spin()
	require.NoError(t, err)
	assert.Contains(t, cfg.Segments, seg)

	_, err = w.Spin()
	assert.ErrorIs(t, err, ErrAnswerPending)

	q, ok := w.Question()
	require.True(t, ok)
	if want, has := cfg.Questions[seg]; has {
		assert.Equal(t, want.Prompt, q.Prompt)
	} else {
		assert.Equal(t, cfg.DefaultQuestion.Prompt, q.Prompt)
	}

	assert.ErrorIs(t, w.Answer(5), ErrChoiceOutOfRange)
	require.NoError(t, w.Answer(0))
	assert.Equal(t, 1, w.Rounds())

	res := w.Finish()
	assert.Equal(t, catalog.Area(seg), res.Area)
	assert.Equal(t, 100.0, res.Score)
	assert.Contains(t, res.Explanation, "de 1 rondas")
}

func TestWheel_SameSeedSameSpins(t *testing.T) {
	spin := func() []string {
		cfg := DefaultWheelConfig()
		cfg.Seed = 7
		w := NewWheel(cfg)
		var got []string
		for range 10 {
			seg, err := w.Spin()
			require.NoError(t, err)
			require.NoError(t, w.Answer(2))
			got = append(got, seg)
		}
		return got
	}
	assert.Equal(t, spin(), spin())
}

func TestWheel_ScoreAndTieBreak(t *testing.T) {
	cfg := WheelConfig{
		Segments:        []string{"Uno"},
		DefaultQuestion: WheelQuestion{Prompt: "?", Options: ratingOptions()},
		Seed:            1,
	}
	w := NewWheel(cfg)
	for _, k := range []int{0, 1, 2} {
		_, err := w.Spin()
		require.NoError(t, err)
		require.NoError(t, w.Answer(k))
	}
	res := w.Finish()
	assert.Equal(t, catalog.Area("Uno"), res.Area)
	assert.Equal(t, 50.0, res.Score)

	// With nothing scored, the first segment wins.
	cfg = DefaultWheelConfig()
	cfg.Seed = 3
	w = NewWheel(cfg)
	_, err := w.Spin()
	require.NoError(t, err)
	require.NoError(t, w.Answer(2))
	res = w.Finish()
	assert.Equal(t, catalog.Area("Seguridad"), res.Area)
	assert.Equal(t, 0.0, res.Score)
}

func TestWheel_NonCatalogSegmentIgnoredBySession(t *testing.T) {
	s := session.New(catalog.Default())
	require.NoError(t, s.RecordGameResult(session.GameResult{Area: "Cs. Exactas", Score: 100, Label: WheelName}))
	require.NoError(t, s.RecordGameResult(NewWheel(DefaultWheelConfig()).Finish()))
	assert.Equal(t, 0, s.GamesPlayed())
}

func TestSelfRated(t *testing.T) {
	g := Damas()

	tests := []struct {
		in   int
		want float64
	}{
		{70, 70}, {72, 70}, {73, 75}, {0, 0}, {100, 100}, {98, 100},
	}
	for _, tt := range tests {
		res, err := g.Result(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Score, "input %d", tt.in)
		assert.Equal(t, catalog.AreaTecnologia, res.Area)
	}

	_, err := g.Result(101)
	assert.ErrorIs(t, err, session.ErrScoreOutOfRange)
	_, err = g.Result(-5)
	assert.ErrorIs(t, err, session.ErrScoreOutOfRange)
}
