package repos

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// ScoreFilter narrows score listings. Zero values mean "no filter";
// MinScore/MaxScore are pointers so 0 remains expressible.
type ScoreFilter struct {
	Grade    types.Grade
	MinScore *float64
	MaxScore *float64
	Category string
	Limit    int
	Offset   int
}

// GradeCount is one row of the per-grade distribution.
type GradeCount struct {
	Grade types.Grade `json:"grade"`
	Count int64       `json:"count"`
}

// CategoryAverage aggregates scores per benchmark category.
type CategoryAverage struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"average_score"`
	Count        int64   `json:"count"`
}

type EcoScoreRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.EcoScore) (*types.EcoScore, error)
	GetLatestByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (*types.EcoScore, error)
	DeleteByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) error
	List(ctx context.Context, tx *gorm.DB, filter ScoreFilter) ([]*types.EcoScore, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	AverageScore(ctx context.Context, tx *gorm.DB) (float64, error)
	CountByGrade(ctx context.Context, tx *gorm.DB) ([]GradeCount, error)
	CategoryBreakdown(ctx context.Context, tx *gorm.DB) ([]CategoryAverage, error)
	CountCalculatedSince(ctx context.Context, tx *gorm.DB, since time.Time) (int64, error)
}

type ecoScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEcoScoreRepo(db *gorm.DB, baseLog *logger.Logger) EcoScoreRepo {
	return &ecoScoreRepo{db: db, log: baseLog.With("repo", "EcoScoreRepo")}
}

func (r *ecoScoreRepo) Create(ctx context.Context, tx *gorm.DB, row *types.EcoScore) (*types.EcoScore, error) {
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

func (r *ecoScoreRepo) GetLatestByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (*types.EcoScore, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.EcoScore
	if err := t.WithContext(ctx).
		Preload("Process").
		Preload("Benchmark").
		Where("product_type = ? AND product_id = ?", ref.Kind, ref.ID).
		Order("calculation_date DESC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// DeleteByRef removes every stored score for the product, whatever
// calculation version wrote it. The latest calculation always wins.
func (r *ecoScoreRepo) DeleteByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("product_type = ? AND product_id = ?", ref.Kind, ref.ID).
		Delete(&types.EcoScore{}).Error
}

func (r *ecoScoreRepo) List(ctx context.Context, tx *gorm.DB, filter ScoreFilter) ([]*types.EcoScore, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).
		Model(&types.EcoScore{}).
		Preload("Process").
		Preload("Benchmark")
	if filter.Grade != "" {
		q = q.Where("score_grade = ?", filter.Grade)
	}
	if filter.MinScore != nil {
		q = q.Where("score_value >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		q = q.Where("score_value <= ?", *filter.MaxScore)
	}
	if filter.Category != "" {
		q = q.Joins("JOIN benchmark ON benchmark.id = ecoscore.benchmark_id").
			Where("LOWER(benchmark.category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	var out []*types.EcoScore
	if err := q.Order("score_value DESC, calculation_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ecoScoreRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).Model(&types.EcoScore{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ecoScoreRepo) AverageScore(ctx context.Context, tx *gorm.DB) (float64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var avg *float64
	if err := t.WithContext(ctx).
		Model(&types.EcoScore{}).
		Select("AVG(score_value)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *ecoScoreRepo) CountByGrade(ctx context.Context, tx *gorm.DB) ([]GradeCount, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []GradeCount
	if err := t.WithContext(ctx).
		Model(&types.EcoScore{}).
		Select("score_grade AS grade, COUNT(*) AS count").
		Group("score_grade").
		Order("score_grade ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ecoScoreRepo) CategoryBreakdown(ctx context.Context, tx *gorm.DB) ([]CategoryAverage, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []CategoryAverage
	if err := t.WithContext(ctx).
		Model(&types.EcoScore{}).
		Select("benchmark.category AS category, AVG(ecoscore.score_value) AS average_score, COUNT(*) AS count").
		Joins("JOIN benchmark ON benchmark.id = ecoscore.benchmark_id").
		Group("benchmark.category").
		Order("benchmark.category ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ecoScoreRepo) CountCalculatedSince(ctx context.Context, tx *gorm.DB, since time.Time) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).
		Model(&types.EcoScore{}).
		Where("calculation_date >= ?", since).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
