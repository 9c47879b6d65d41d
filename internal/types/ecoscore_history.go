package types

import (
	"time"

	"github.com/google/uuid"
)

// EcoScoreHistory is an append-only log of score transitions. Rows are
// written only when a recalculated value differs from the prior one.
type EcoScoreHistory struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProductType ProductKind `gorm:"column:product_type;not null;index:idx_history_product" json:"product_type"`
	ProductID   uuid.UUID   `gorm:"type:uuid;column:product_id;not null;index:idx_history_product" json:"product_id"`

	OldScore *float64 `gorm:"column:old_score" json:"old_score,omitempty"`
	NewScore float64  `gorm:"column:new_score;not null" json:"new_score"`
	OldGrade Grade    `gorm:"column:old_grade" json:"old_grade,omitempty"`
	NewGrade Grade    `gorm:"column:new_grade;not null" json:"new_grade"`

	ChangeReason string `gorm:"column:change_reason;not null" json:"change_reason"`
	ChangeNotes  string `gorm:"column:change_notes" json:"change_notes"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (EcoScoreHistory) TableName() string { return "ecoscore_history" }
