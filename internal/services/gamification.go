package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

var ErrInvalidUser = errors.New("invalid user id")

// CartItem is one purchased product as the achievement check sees it.
type CartItem struct {
	Grade    types.Grade `json:"grade"`
	CO2Saved float64     `json:"co2_saved"`
}

// CartSummary aggregates a purchase for the achievement rules.
type CartSummary struct {
	Total         int
	GradeCounts   map[types.Grade]int
	FractionA     float64
	FractionAB    float64
	TotalCO2Saved float64
}

// SummarizeCart computes the fractions the achievement thresholds are
// checked against. An empty cart summarizes to all zeroes.
func SummarizeCart(items []CartItem) CartSummary {
	summary := CartSummary{GradeCounts: map[types.Grade]int{}}
	for _, item := range items {
		summary.Total++
		summary.GradeCounts[item.Grade]++
		summary.TotalCO2Saved += item.CO2Saved
	}
	if summary.Total > 0 {
		a := summary.GradeCounts[types.GradeA]
		b := summary.GradeCounts[types.GradeB]
		summary.FractionA = float64(a) / float64(summary.Total)
		summary.FractionAB = float64(a+b) / float64(summary.Total)
	}
	return summary
}

const (
	greenShopperMinABFraction = 0.7
	ecoChampionMinAFraction   = 0.9
	carbonReducerMinCO2       = 10.0
)

type badgeRule struct {
	Type        string
	Name        string
	Description string
	Threshold   float64
	Icon        string
	Color       string
	Qualifies   func(CartSummary) bool
}

var badgeRules = []badgeRule{
	{
		Type:        types.AchievementGreenShopper,
		Name:        "Green Shopper",
		Description: "At least 70% of purchased items graded B or better",
		Threshold:   greenShopperMinABFraction,
		Icon:        "🌱",
		Color:       "#4CAF50",
		Qualifies:   func(s CartSummary) bool { return s.Total > 0 && s.FractionAB >= greenShopperMinABFraction },
	},
	{
		Type:        types.AchievementEcoChampion,
		Name:        "Eco Champion",
		Description: "At least 90% of purchased items graded A",
		Threshold:   ecoChampionMinAFraction,
		Icon:        "🏆",
		Color:       "#FFD700",
		Qualifies:   func(s CartSummary) bool { return s.Total > 0 && s.FractionA >= ecoChampionMinAFraction },
	},
	{
		Type:        types.AchievementCarbonReducer,
		Name:        "Carbon Reducer",
		Description: "Saved at least 10 kg CO2-eq through purchases",
		Threshold:   carbonReducerMinCO2,
		Icon:        "🌍",
		Color:       "#2196F3",
		Qualifies:   func(s CartSummary) bool { return s.TotalCO2Saved >= carbonReducerMinCO2 },
	},
}

type GamificationService interface {
	CheckAchievements(ctx context.Context, userID uuid.UUID, items []CartItem) ([]*types.EcoAchievement, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.EcoAchievement, error)
	ListEarnedForUser(ctx context.Context, userID uuid.UUID) ([]*types.EcoAchievement, error)
}

type gamificationService struct {
	db              *gorm.DB
	log             *logger.Logger
	achievementRepo repos.AchievementRepo
}

func NewGamificationService(db *gorm.DB, log *logger.Logger, achievementRepo repos.AchievementRepo) GamificationService {
	return &gamificationService{
		db:              db,
		log:             log.With("service", "GamificationService"),
		achievementRepo: achievementRepo,
	}
}

// CheckAchievements evaluates one purchase against the badge rules and
// returns the achievements newly earned by it. Re-qualifying an earned
// badge only accumulates its CO2 counter.
func (s *gamificationService) CheckAchievements(ctx context.Context, userID uuid.UUID, items []CartItem) ([]*types.EcoAchievement, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUser
	}
	summary := SummarizeCart(items)

	var earned []*types.EcoAchievement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rule := range badgeRules {
			if !rule.Qualifies(summary) {
				continue
			}

			existing, err := s.achievementRepo.GetByUserAndType(ctx, tx, userID, rule.Type)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if existing == nil {
				row := &types.EcoAchievement{
					ID:                     uuid.New(),
					UserID:                 userID,
					AchievementType:        rule.Type,
					AchievementName:        rule.Name,
					Description:            rule.Description,
					EcoScoreThreshold:      rule.Threshold,
					PurchaseCountThreshold: 1,
					TotalCO2Saved:          summary.TotalCO2Saved,
					IsEarned:               true,
					EarnedAt:               &now,
					BadgeIcon:              rule.Icon,
					BadgeColor:             rule.Color,
					CreatedAt:              now,
					UpdatedAt:              now,
				}
				if _, err := s.achievementRepo.Create(ctx, tx, row); err != nil {
					return err
				}
				earned = append(earned, row)
				continue
			}

			existing.TotalCO2Saved += summary.TotalCO2Saved
			if !existing.IsEarned {
				existing.IsEarned = true
				existing.EarnedAt = &now
				earned = append(earned, existing)
			}
			if err := s.achievementRepo.Update(ctx, tx, existing); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, a := range earned {
		s.log.Info("achievement earned", "user_id", userID, "type", a.AchievementType)
	}
	return earned, nil
}

func (s *gamificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.EcoAchievement, error) {
	return s.achievementRepo.ListByUser(ctx, nil, userID)
}

func (s *gamificationService) ListEarnedForUser(ctx context.Context, userID uuid.UUID) ([]*types.EcoAchievement, error) {
	return s.achievementRepo.ListEarnedByUser(ctx, nil, userID)
}
