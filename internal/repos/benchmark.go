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

type BenchmarkRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Benchmark) ([]*types.Benchmark, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Benchmark, error)
	GetByCategoryAndSubcategory(ctx context.Context, tx *gorm.DB, category, subcategory string) (*types.Benchmark, error)
	FirstCategoryContaining(ctx context.Context, tx *gorm.DB, category string) (*types.Benchmark, error)
	FirstByCategory(ctx context.Context, tx *gorm.DB, category string) (*types.Benchmark, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Benchmark) error
}

type benchmarkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBenchmarkRepo(db *gorm.DB, baseLog *logger.Logger) BenchmarkRepo {
	return &benchmarkRepo{db: db, log: baseLog.With("repo", "BenchmarkRepo")}
}

func (r *benchmarkRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Benchmark) ([]*types.Benchmark, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Benchmark{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *benchmarkRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Benchmark, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Benchmark
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

// GetByCategoryAndSubcategory matches case-insensitively on both columns;
// subcategory "" means the category-wide row.
func (r *benchmarkRepo) GetByCategoryAndSubcategory(ctx context.Context, tx *gorm.DB, category, subcategory string) (*types.Benchmark, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Benchmark
	if err := t.WithContext(ctx).
		Where("LOWER(category) = ? AND LOWER(subcategory) = ? AND is_active = ?",
			strings.ToLower(category), strings.ToLower(subcategory), true).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *benchmarkRepo) FirstCategoryContaining(ctx context.Context, tx *gorm.DB, category string) (*types.Benchmark, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if category == "" {
		return nil, nil
	}
	var out []*types.Benchmark
	if err := t.WithContext(ctx).
		Where("LOWER(category) LIKE ? AND is_active = ?", "%"+strings.ToLower(category)+"%", true).
		Order("category ASC, subcategory ASC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *benchmarkRepo) FirstByCategory(ctx context.Context, tx *gorm.DB, category string) (*types.Benchmark, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Benchmark
	if err := t.WithContext(ctx).
		Where("LOWER(category) = ? AND is_active = ?", strings.ToLower(category), true).
		Order("subcategory ASC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *benchmarkRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Benchmark) error {
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
