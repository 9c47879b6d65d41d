package types

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceProcess is a standardized LCA activity with a known default
// impact. Seeded from the static catalog tables; never written by the
// scoring pipeline.
type ReferenceProcess struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code          string    `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Category      string    `gorm:"column:category;not null;index" json:"category"`
	Subcategory   string    `gorm:"column:subcategory" json:"subcategory"`
	Unit          string    `gorm:"column:unit;not null" json:"unit"`
	Location      string    `gorm:"column:location;not null;default:GLO" json:"location"`
	Description   string    `gorm:"column:description" json:"description"`
	DefaultImpact float64   `gorm:"column:default_impact;not null;default:0" json:"default_impact"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ReferenceProcess) TableName() string { return "reference_process" }
