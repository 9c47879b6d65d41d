package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

type AchievementRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.EcoAchievement) (*types.EcoAchievement, error)
	GetByUserAndType(ctx context.Context, tx *gorm.DB, userID uuid.UUID, achievementType string) (*types.EcoAchievement, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.EcoAchievement, error)
	ListEarnedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.EcoAchievement, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.EcoAchievement) error
}

type achievementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAchievementRepo(db *gorm.DB, baseLog *logger.Logger) AchievementRepo {
	return &achievementRepo{db: db, log: baseLog.With("repo", "AchievementRepo")}
}

func (r *achievementRepo) Create(ctx context.Context, tx *gorm.DB, row *types.EcoAchievement) (*types.EcoAchievement, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *achievementRepo) GetByUserAndType(ctx context.Context, tx *gorm.DB, userID uuid.UUID, achievementType string) (*types.EcoAchievement, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.EcoAchievement
	if err := t.WithContext(ctx).
		Where("user_id = ? AND achievement_type = ?", userID, achievementType).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *achievementRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.EcoAchievement, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.EcoAchievement
	if err := t.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("achievement_type ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *achievementRepo) ListEarnedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.EcoAchievement, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.EcoAchievement
	if err := t.WithContext(ctx).
		Where("user_id = ? AND is_earned = ?", userID, true).
		Order("earned_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *achievementRepo) Update(ctx context.Context, tx *gorm.DB, row *types.EcoAchievement) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.ID == uuid.Nil {
		return nil
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(ctx).Save(row).Error
}
