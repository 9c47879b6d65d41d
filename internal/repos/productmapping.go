package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

type ProductMappingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.ProductMapping) (*types.ProductMapping, error)
	GetFirstByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (*types.ProductMapping, error)
	ExistsByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.ProductMapping) error
	DeleteByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) error
}

type productMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductMappingRepo(db *gorm.DB, baseLog *logger.Logger) ProductMappingRepo {
	return &productMappingRepo{db: db, log: baseLog.With("repo", "ProductMappingRepo")}
}

func (r *productMappingRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ProductMapping) (*types.ProductMapping, error) {
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

// GetFirstByRef returns the oldest mapping for the product, with its
// process preloaded. The pipeline treats that one as authoritative.
func (r *productMappingRepo) GetFirstByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (*types.ProductMapping, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.ProductMapping
	if err := t.WithContext(ctx).
		Preload("Process").
		Where("product_type = ? AND product_id = ?", ref.Kind, ref.ID).
		Order("created_at ASC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *productMappingRepo) ExistsByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).
		Model(&types.ProductMapping{}).
		Where("product_type = ? AND product_id = ?", ref.Kind, ref.ID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *productMappingRepo) Update(ctx context.Context, tx *gorm.DB, row *types.ProductMapping) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(ctx).Save(row).Error
}

func (r *productMappingRepo) DeleteByRef(ctx context.Context, tx *gorm.DB, ref types.ProductRef) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("product_type = ? AND product_id = ?", ref.Kind, ref.ID).
		Delete(&types.ProductMapping{}).Error
}
