package repos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// ProductFilter narrows merchant product listings on the denormalized
// score summary columns.
type ProductFilter struct {
	Grade    types.Grade
	MinScore *float64
	MaxScore *float64
	Category string
	Limit    int
	Offset   int
}

type MerchantProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.MerchantProduct) ([]*types.MerchantProduct, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MerchantProduct, error)
	ListActive(ctx context.Context, tx *gorm.DB, categoryFilter string) ([]*types.MerchantProduct, error)
	ListScored(ctx context.Context, tx *gorm.DB, filter ProductFilter) ([]*types.MerchantProduct, error)
	UpdateScoreSummary(ctx context.Context, tx *gorm.DB, id uuid.UUID, summary ScoreSummary) error
}

type merchantProductRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMerchantProductRepo(db *gorm.DB, baseLog *logger.Logger) MerchantProductRepo {
	return &merchantProductRepo{db: db, log: baseLog.With("repo", "MerchantProductRepo")}
}

func (r *merchantProductRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.MerchantProduct) ([]*types.MerchantProduct, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.MerchantProduct{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *merchantProductRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MerchantProduct, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.MerchantProduct
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *merchantProductRepo) ListActive(ctx context.Context, tx *gorm.DB, categoryFilter string) ([]*types.MerchantProduct, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Where("is_active = ?", true)
	if categoryFilter != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(categoryFilter)+"%")
	}
	var out []*types.MerchantProduct
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListScored returns active merchant products that have a score summary,
// filtered on the denormalized columns.
func (r *merchantProductRepo) ListScored(ctx context.Context, tx *gorm.DB, filter ProductFilter) ([]*types.MerchantProduct, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).
		Where("is_active = ?", true).
		Where("ecoscore_last_calculated IS NOT NULL")
	if filter.Grade != "" {
		q = q.Where("ecoscore_grade = ?", string(filter.Grade))
	}
	if filter.MinScore != nil {
		q = q.Where("ecoscore_value >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		q = q.Where("ecoscore_value <= ?", *filter.MaxScore)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	var out []*types.MerchantProduct
	if err := q.Order("ecoscore_value DESC, name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *merchantProductRepo) UpdateScoreSummary(ctx context.Context, tx *gorm.DB, id uuid.UUID, summary ScoreSummary) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.MerchantProduct{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"ecoscore_value":           summary.Value,
			"ecoscore_grade":           string(summary.Grade),
			"ecoscore_last_calculated": summary.CalculatedAt,
			"updated_at":               time.Now().UTC(),
		}).Error
}
