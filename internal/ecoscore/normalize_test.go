package ecoscore

import (
	"testing"

	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

func TestNormalizeImpact(t *testing.T) {
	if got := NormalizeImpact(0.05, 0.5); got != 0.1 {
		t.Fatalf("NormalizeImpact(0.05, 0.5) = %v, want 0.1", got)
	}
	if got := NormalizeImpact(1.0, 0); got != 0 {
		t.Fatalf("NormalizeImpact with zero benchmark = %v, want 0", got)
	}
}

func TestScoreFromNormalized(t *testing.T) {
	cases := []struct {
		name       string
		normalized float64
		want       float64
	}{
		{name: "tenth", normalized: 0.1, want: 90.0},
		{name: "equal_to_benchmark", normalized: 1.0, want: 0.0},
		{name: "above_benchmark_clamped", normalized: 1.5, want: 0.0},
		{name: "negative_clamped_high", normalized: -0.5, want: 100.0},
		{name: "zero_impact", normalized: 0.0, want: 100.0},
		{name: "rounded_one_decimal", normalized: 0.123, want: 87.7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreFromNormalized(tc.normalized); got != tc.want {
				t.Fatalf("ScoreFromNormalized(%v) = %v, want %v", tc.normalized, got, tc.want)
			}
		})
	}
}

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  types.Grade
	}{
		{score: 100.0, want: types.GradeA},
		{score: 80.0, want: types.GradeA},
		{score: 79.9, want: types.GradeB},
		{score: 60.0, want: types.GradeB},
		{score: 59.9, want: types.GradeC},
		{score: 40.0, want: types.GradeC},
		{score: 39.9, want: types.GradeD},
		{score: 20.0, want: types.GradeD},
		{score: 19.9, want: types.GradeE},
		{score: 0.0, want: types.GradeE},
	}
	cutoffs := types.DefaultGradeCutoffs()
	for _, tc := range cases {
		if got := types.GradeForScore(tc.score, cutoffs); got != tc.want {
			t.Fatalf("GradeForScore(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestGradeScoreHonorsBenchmarkCutoffs(t *testing.T) {
	strict := &types.Benchmark{BenchmarkImpact: 1.0, ScoreAMin: 95, ScoreBMin: 85, ScoreCMin: 70, ScoreDMin: 50}
	score, grade := GradeScore(0.1, strict)
	if score != 90.0 {
		t.Fatalf("score = %v, want 90.0", score)
	}
	if grade != types.GradeB {
		t.Fatalf("grade with strict cutoffs = %s, want B", grade)
	}

	// A row with no cut points falls back to the 80/60/40/20 defaults.
	blank := &types.Benchmark{BenchmarkImpact: 1.0}
	if _, grade := GradeScore(0.1, blank); grade != types.GradeA {
		t.Fatalf("grade with default cutoffs = %s, want A", grade)
	}
}

func TestBambooToothbrushEndToEnd(t *testing.T) {
	candidate := Resolve("Organic Bamboo Toothbrush", "Personal Care", "", nil, true)
	if candidate == nil {
		t.Fatal("Resolve returned nil")
	}
	if candidate.Code != "toothbrush_bamboo" {
		t.Fatalf("code = %s, want toothbrush_bamboo", candidate.Code)
	}
	benchmark := &types.Benchmark{BenchmarkImpact: 0.5}
	normalized := NormalizeImpact(candidate.DefaultImpact, benchmark.BenchmarkImpact)
	score, grade := GradeScore(normalized, benchmark)
	if normalized != 0.1 {
		t.Fatalf("normalized = %v, want 0.1", normalized)
	}
	if score != 90.0 || grade != types.GradeA {
		t.Fatalf("(score, grade) = (%v, %s), want (90.0, A)", score, grade)
	}
}
