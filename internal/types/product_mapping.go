package types

import (
	"time"

	"github.com/google/uuid"
)

// ProductMapping links one product to one reference process. The pipeline
// reads the first mapping found for a product; the unique index only
// forbids duplicate (product, process) pairs.
type ProductMapping struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProductType ProductKind `gorm:"column:product_type;not null;uniqueIndex:idx_mapping_product_process" json:"product_type"`
	ProductID   uuid.UUID   `gorm:"type:uuid;column:product_id;not null;uniqueIndex:idx_mapping_product_process" json:"product_id"`

	ProcessID uuid.UUID         `gorm:"type:uuid;column:process_id;not null;uniqueIndex:idx_mapping_product_process" json:"process_id"`
	Process   *ReferenceProcess `gorm:"foreignKey:ProcessID;references:ID" json:"process,omitempty"`

	MappingConfidence   float64 `gorm:"column:mapping_confidence;not null;default:0" json:"mapping_confidence"`
	FunctionalUnit      string  `gorm:"column:functional_unit;not null" json:"functional_unit"`
	FunctionalUnitValue float64 `gorm:"column:functional_unit_value;not null;default:1" json:"functional_unit_value"`

	ManualImpactOverride *float64 `gorm:"column:manual_impact_override" json:"manual_impact_override,omitempty"`
	IsManualOverride     bool     `gorm:"column:is_manual_override;not null;default:false" json:"is_manual_override"`

	MappingNotes string `gorm:"column:mapping_notes" json:"mapping_notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ProductMapping) TableName() string { return "product_mapping" }

func (m *ProductMapping) Ref() ProductRef {
	return ProductRef{Kind: m.ProductType, ID: m.ProductID}
}
