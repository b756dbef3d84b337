package session

import (
	"cmp"
	"slices"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/scoring"
)

// Blend weights. There are exactly two modes: test only, or test plus games
// once any game result has been recorded.
var (
	TestOnlyWeights  = result.Weights{Test: 1.0, Games: 0.0}
	WithGamesWeights = result.Weights{Test: 0.7, Games: 0.3}
)

// Blend is the unrounded outcome of combining test and game affinity.
type Blend struct {
	TestNorm map[catalog.Area]float64
	GameAvg  map[catalog.Area]float64
	Weights  result.Weights
	Scores   map[catalog.Area]float64
	Ranking  []catalog.Area // best first, catalog order on ties
}

// Winner returns the best ranked area.
func (b Blend) Winner() catalog.Area {
	return b.Ranking[0]
}

// computeBlend mixes normalized test scores with game averages scaled to
// 0..1 and ranks the areas.
func computeBlend(cat *catalog.Catalog, tally map[catalog.Area]int, gameSum map[catalog.Area]float64, gameCount map[catalog.Area]int) Blend {
	testNorm := scoring.NormalizeScores(cat, tally)
	avg := averages(cat, gameSum, gameCount)

	w := TestOnlyWeights
	total := 0
	for _, n := range gameCount {
		total += n
	}
	if total > 0 {
		w = WithGamesWeights
	}

	blended := make(map[catalog.Area]float64, len(testNorm))
	for _, a := range cat.Areas() {
		blended[a] = w.Test*testNorm[a] + w.Games*(avg[a]/100.0)
	}

	return Blend{
		TestNorm: testNorm,
		GameAvg:  avg,
		Weights:  w,
		Scores:   blended,
		Ranking:  rank(cat.Areas(), blended),
	}
}

func averages(cat *catalog.Catalog, gameSum map[catalog.Area]float64, gameCount map[catalog.Area]int) map[catalog.Area]float64 {
	out := make(map[catalog.Area]float64, len(gameSum))
	for _, a := range cat.Areas() {
		if n := gameCount[a]; n > 0 {
			out[a] = gameSum[a] / float64(n)
		} else {
			out[a] = 0
		}
	}
	return out
}

// rank orders areas by score, highest first. areas must be in catalog order;
// the stable sort keeps that order among equal scores.
func rank(areas []catalog.Area, score map[catalog.Area]float64) []catalog.Area {
	ranked := slices.Clone(areas)
	slices.SortStableFunc(ranked, func(a, b catalog.Area) int {
		return cmp.Compare(score[b], score[a])
	})
	return ranked
}
