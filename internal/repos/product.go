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

// ScoreSummary is the denormalized slice of the latest score written
// back onto the product row.
type ScoreSummary struct {
	Value        float64
	Grade        types.Grade
	CalculatedAt time.Time
}

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Product) ([]*types.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error)
	ListActive(ctx context.Context, tx *gorm.DB, categoryFilter string) ([]*types.Product, error)
	UpdateScoreSummary(ctx context.Context, tx *gorm.DB, id uuid.UUID, summary ScoreSummary) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Product) ([]*types.Product, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Product{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Product
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

func (r *productRepo) ListActive(ctx context.Context, tx *gorm.DB, categoryFilter string) ([]*types.Product, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Where("is_active = ?", true)
	if categoryFilter != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(categoryFilter)+"%")
	}
	var out []*types.Product
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) UpdateScoreSummary(ctx context.Context, tx *gorm.DB, id uuid.UUID, summary ScoreSummary) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"ecoscore_value":           summary.Value,
			"ecoscore_grade":           string(summary.Grade),
			"ecoscore_last_calculated": summary.CalculatedAt,
			"updated_at":               time.Now().UTC(),
		}).Error
}
