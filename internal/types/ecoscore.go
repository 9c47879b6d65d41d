package types

import (
	"time"

	"github.com/google/uuid"
)

const LCAMethodGWP100a = "IPCC 2013 - climate change - GWP 100a"

const CalculationVersion = "1.0"

// EcoScore is the current computed score for one product. Recalculation
// under the same calculation version replaces the row rather than
// appending.
type EcoScore struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProductType ProductKind `gorm:"column:product_type;not null;uniqueIndex:idx_ecoscore_product_version" json:"product_type"`
	ProductID   uuid.UUID   `gorm:"type:uuid;column:product_id;not null;uniqueIndex:idx_ecoscore_product_version" json:"product_id"`

	ScoreValue float64 `gorm:"column:score_value;not null" json:"score_value"`
	ScoreGrade Grade   `gorm:"column:score_grade;not null" json:"score_grade"`

	RawImpact        float64 `gorm:"column:raw_impact;not null" json:"raw_impact"`
	ImpactUnit       string  `gorm:"column:impact_unit;not null" json:"impact_unit"`
	NormalizedImpact float64 `gorm:"column:normalized_impact;not null" json:"normalized_impact"`

	LCAMethod string `gorm:"column:lca_method;not null" json:"lca_method"`

	ProcessID uuid.UUID         `gorm:"type:uuid;column:process_id;not null" json:"process_id"`
	Process   *ReferenceProcess `gorm:"foreignKey:ProcessID;references:ID" json:"process,omitempty"`

	BenchmarkID uuid.UUID  `gorm:"type:uuid;column:benchmark_id;not null" json:"benchmark_id"`
	Benchmark   *Benchmark `gorm:"foreignKey:BenchmarkID;references:ID" json:"benchmark,omitempty"`

	CalculationDate    time.Time `gorm:"column:calculation_date;not null;index" json:"calculation_date"`
	CalculationVersion string    `gorm:"column:calculation_version;not null;uniqueIndex:idx_ecoscore_product_version" json:"calculation_version"`
	IsManualOverride   bool      `gorm:"column:is_manual_override;not null;default:false" json:"is_manual_override"`
	CalculationNotes   string    `gorm:"column:calculation_notes" json:"calculation_notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (EcoScore) TableName() string { return "ecoscore" }

func (s *EcoScore) Ref() ProductRef {
	return ProductRef{Kind: s.ProductType, ID: s.ProductID}
}
