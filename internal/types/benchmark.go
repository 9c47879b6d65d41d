package types

import (
	"time"

	"github.com/google/uuid"
)

// Benchmark is the category-typical impact used as the normalization
// denominator. Blank subcategory means category-wide.
type Benchmark struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category    string    `gorm:"column:category;not null;uniqueIndex:idx_benchmark_category_subcategory" json:"category"`
	Subcategory string    `gorm:"column:subcategory;uniqueIndex:idx_benchmark_category_subcategory" json:"subcategory"`

	BenchmarkImpact float64 `gorm:"column:benchmark_impact;not null" json:"benchmark_impact"`
	BenchmarkUnit   string  `gorm:"column:benchmark_unit;not null" json:"benchmark_unit"`
	Description     string  `gorm:"column:description" json:"description"`
	Source          string  `gorm:"column:source" json:"source"`

	ScoreAMin float64 `gorm:"column:score_a_min;not null;default:80" json:"score_a_min"`
	ScoreBMin float64 `gorm:"column:score_b_min;not null;default:60" json:"score_b_min"`
	ScoreCMin float64 `gorm:"column:score_c_min;not null;default:40" json:"score_c_min"`
	ScoreDMin float64 `gorm:"column:score_d_min;not null;default:20" json:"score_d_min"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Benchmark) TableName() string { return "benchmark" }

// Cutoffs returns the benchmark's grade cut points, falling back to the
// 80/60/40/20 defaults when the row carries none.
func (b *Benchmark) Cutoffs() GradeCutoffs {
	if b == nil {
		return DefaultGradeCutoffs()
	}
	if b.ScoreAMin == 0 && b.ScoreBMin == 0 && b.ScoreCMin == 0 && b.ScoreDMin == 0 {
		return DefaultGradeCutoffs()
	}
	return GradeCutoffs{AMin: b.ScoreAMin, BMin: b.ScoreBMin, CMin: b.ScoreCMin, DMin: b.ScoreDMin}
}
