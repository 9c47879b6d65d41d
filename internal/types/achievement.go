package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	AchievementGreenShopper  = "green_shopper"
	AchievementEcoChampion   = "eco_champion"
	AchievementCarbonReducer = "carbon_reducer"
)

// EcoAchievement is a per (user, type) gamification badge. Repeat
// qualification accumulates the CO2 counter; thresholds are fixed at
// first award.
type EcoAchievement struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;column:user_id;not null;uniqueIndex:idx_achievement_user_type" json:"user_id"`
	AchievementType string    `gorm:"column:achievement_type;not null;uniqueIndex:idx_achievement_user_type" json:"achievement_type"`

	AchievementName string `gorm:"column:achievement_name;not null" json:"achievement_name"`
	Description     string `gorm:"column:description" json:"description"`

	EcoScoreThreshold      float64 `gorm:"column:eco_score_threshold;not null;default:0" json:"eco_score_threshold"`
	PurchaseCountThreshold int     `gorm:"column:purchase_count_threshold;not null;default:1" json:"purchase_count_threshold"`
	TotalCO2Saved          float64 `gorm:"column:total_co2_saved;not null;default:0" json:"total_co2_saved"`

	IsEarned bool       `gorm:"column:is_earned;not null;default:false" json:"is_earned"`
	EarnedAt *time.Time `gorm:"column:earned_at" json:"earned_at,omitempty"`

	BadgeIcon  string `gorm:"column:badge_icon;not null;default:🌱" json:"badge_icon"`
	BadgeColor string `gorm:"column:badge_color;not null;default:#4CAF50" json:"badge_color"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (EcoAchievement) TableName() string { return "eco_achievement" }
