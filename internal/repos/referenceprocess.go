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

type ReferenceProcessRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ReferenceProcess) ([]*types.ReferenceProcess, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ReferenceProcess, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.ReferenceProcess, error)
	ListActive(ctx context.Context, tx *gorm.DB, categoryFilter string) ([]*types.ReferenceProcess, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.ReferenceProcess) error
}

type referenceProcessRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReferenceProcessRepo(db *gorm.DB, baseLog *logger.Logger) ReferenceProcessRepo {
	return &referenceProcessRepo{db: db, log: baseLog.With("repo", "ReferenceProcessRepo")}
}

func (r *referenceProcessRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ReferenceProcess) ([]*types.ReferenceProcess, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.ReferenceProcess{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *referenceProcessRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ReferenceProcess, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.ReferenceProcess
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

func (r *referenceProcessRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.ReferenceProcess, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if code == "" {
		return nil, nil
	}
	var out []*types.ReferenceProcess
	if err := t.WithContext(ctx).
		Where("code = ?", code).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *referenceProcessRepo) ListActive(ctx context.Context, tx *gorm.DB, categoryFilter string) ([]*types.ReferenceProcess, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Where("is_active = ?", true)
	if categoryFilter != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(categoryFilter)+"%")
	}
	var out []*types.ReferenceProcess
	if err := q.Order("category ASC, name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *referenceProcessRepo) Update(ctx context.Context, tx *gorm.DB, row *types.ReferenceProcess) error {
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
