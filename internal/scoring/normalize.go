// Package scoring holds the pure functions that turn raw answer counts and
// free text into per-area affinity signals.
package scoring

import "github.com/abhisek/orienta/internal/catalog"

// NormalizeScores divides each area's tally by the number of question
// options that reference the area, with the denominator floored at 1.
//
// The result is not clamped: an area picked more often than it appears as an
// option scores above 1. Display code should pass values through Clamp01.
func NormalizeScores(cat *catalog.Catalog, tally map[catalog.Area]int) map[catalog.Area]float64 {
	counts := cat.OptionCounts()
	out := make(map[catalog.Area]float64, len(counts))
	for _, a := range cat.Areas() {
		out[a] = float64(tally[a]) / float64(max(1, counts[a]))
	}
	return out
}

// Clamp01 bounds v to [0, 1] for progress bars and percentages.
func Clamp01(v float64) float64 {
	return max(0, min(1, v))
}
