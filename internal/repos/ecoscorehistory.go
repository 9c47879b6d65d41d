package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

type EcoScoreHistoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.EcoScoreHistory) (*types.EcoScoreHistory, error)
	ListByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef, limit int) ([]*types.EcoScoreHistory, error)
	CountByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (int64, error)
}

type ecoScoreHistoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEcoScoreHistoryRepo(db *gorm.DB, baseLog *logger.Logger) EcoScoreHistoryRepo {
	return &ecoScoreHistoryRepo{db: db, log: baseLog.With("repo", "EcoScoreHistoryRepo")}
}

func (r *ecoScoreHistoryRepo) Create(ctx context.Context, tx *gorm.DB, row *types.EcoScoreHistory) (*types.EcoScoreHistory, error) {
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

func (r *ecoScoreHistoryRepo) ListByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef, limit int) ([]*types.EcoScoreHistory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).
		Where("product_type = ? AND product_id = ?", ref.Kind, ref.ID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []*types.EcoScoreHistory
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ecoScoreHistoryRepo) CountByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).
		Model(&types.EcoScoreHistory{}).
		Where("product_type = ? AND product_id = ?", ref.Kind, ref.ID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
