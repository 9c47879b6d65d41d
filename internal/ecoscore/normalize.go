package ecoscore

import (
	"math"

	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// NormalizeImpact divides a raw impact by the category benchmark.
// A zero benchmark yields zero rather than dividing by zero.
func NormalizeImpact(rawImpact, benchmarkImpact float64) float64 {
	if benchmarkImpact == 0 {
		return 0
	}
	return rawImpact / benchmarkImpact
}

// ScoreFromNormalized maps a normalized impact onto the 0-100 scale:
// lower impact, higher score. Clamped, then rounded to one decimal.
func ScoreFromNormalized(normalizedImpact float64) float64 {
	score := 100.0 - normalizedImpact*100.0
	score = math.Max(0.0, math.Min(100.0, score))
	return math.Round(score*10) / 10
}

// GradeScore derives (score, grade) from a normalized impact using the
// benchmark's cut points, or the 80/60/40/20 defaults without one.
func GradeScore(normalizedImpact float64, benchmark *types.Benchmark) (float64, types.Grade) {
	score := ScoreFromNormalized(normalizedImpact)
	return score, types.GradeForScore(score, benchmark.Cutoffs())
}
