package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

var ErrProductNotFound = errors.New("product not found")

// productInfo is the catalog-source-independent view of one product, as
// much of it as the scoring pipeline reads.
type productInfo struct {
	Ref           types.ProductRef
	Name          string
	Category      string
	Subcategory   string
	Tags          []string
	IsEcoFriendly bool
	IsActive      bool
}

func loadProduct(ctx context.Context, tx *gorm.DB, productRepo repos.ProductRepo, merchantRepo repos.MerchantProductRepo, ref types.ProductRef) (*productInfo, error) {
	switch ref.Kind {
	case types.ProductKindCatalog:
		p, err := productRepo.GetByID(ctx, tx, ref.ID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrProductNotFound
		}
		return &productInfo{
			Ref:           ref,
			Name:          p.Name,
			Category:      p.Category,
			Subcategory:   p.Subcategory,
			Tags:          p.TagList(),
			IsEcoFriendly: p.IsEcoFriendly,
			IsActive:      p.IsActive,
		}, nil
	case types.ProductKindMerchant:
		p, err := merchantRepo.GetByID(ctx, tx, ref.ID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrProductNotFound
		}
		return &productInfo{
			Ref:           ref,
			Name:          p.Name,
			Category:      p.Category,
			Subcategory:   p.Subcategory,
			Tags:          p.TagList(),
			IsEcoFriendly: p.IsEcoFriendly,
			IsActive:      p.IsActive,
		}, nil
	default:
		return nil, ErrProductNotFound
	}
}

func updateScoreSummary(ctx context.Context, tx *gorm.DB, productRepo repos.ProductRepo, merchantRepo repos.MerchantProductRepo, ref types.ProductRef, summary repos.ScoreSummary) error {
	switch ref.Kind {
	case types.ProductKindCatalog:
		return productRepo.UpdateScoreSummary(ctx, tx, ref.ID, summary)
	case types.ProductKindMerchant:
		return merchantRepo.UpdateScoreSummary(ctx, tx, ref.ID, summary)
	default:
		return ErrProductNotFound
	}
}
