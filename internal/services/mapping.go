package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/ecoscore"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// ErrUnmappableProduct means no mapping rule covers the product's
// category, so it cannot be scored.
var ErrUnmappableProduct = errors.New("no mapping rule covers this product")

const (
	autoMappingConfidence = 0.8
	defaultFunctionalUnit = "per item"
)

type MappingService interface {
	EnsureMapping(ctx context.Context, ref types.ProductRef) (*types.ProductMapping, bool, error)
}

type mappingService struct {
	db           *gorm.DB
	log          *logger.Logger
	productRepo  repos.ProductRepo
	merchantRepo repos.MerchantProductRepo
	processRepo  repos.ReferenceProcessRepo
	mappingRepo  repos.ProductMappingRepo
}

func NewMappingService(
	db *gorm.DB,
	log *logger.Logger,
	productRepo repos.ProductRepo,
	merchantRepo repos.MerchantProductRepo,
	processRepo repos.ReferenceProcessRepo,
	mappingRepo repos.ProductMappingRepo,
) MappingService {
	return &mappingService{
		db:           db,
		log:          log.With("service", "MappingService"),
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		processRepo:  processRepo,
		mappingRepo:  mappingRepo,
	}
}

// EnsureMapping returns the product's mapping, creating one from the
// static rule tables when none exists. The bool reports creation.
func (s *mappingService) EnsureMapping(ctx context.Context, ref types.ProductRef) (*types.ProductMapping, bool, error) {
	if !ref.Valid() {
		return nil, false, ErrProductNotFound
	}

	existing, err := s.mappingRepo.GetFirstByRef(ctx, nil, ref)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	info, err := loadProduct(ctx, nil, s.productRepo, s.merchantRepo, ref)
	if err != nil {
		return nil, false, err
	}

	candidate := ecoscore.Resolve(info.Name, info.Category, info.Subcategory, info.Tags, info.IsEcoFriendly)
	if candidate == nil {
		return nil, false, fmt.Errorf("%w: category %q", ErrUnmappableProduct, info.Category)
	}

	var mapping *types.ProductMapping
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		process, err := s.processRepo.GetByCode(ctx, tx, candidate.Code)
		if err != nil {
			return err
		}
		if process == nil {
			now := time.Now().UTC()
			process = &types.ReferenceProcess{
				ID:            uuid.New(),
				Code:          candidate.Code,
				Name:          candidate.Name,
				Category:      candidate.Category,
				Unit:          candidate.Unit,
				Location:      "GLO",
				DefaultImpact: entryDefaultImpact(candidate),
				IsActive:      true,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if _, err := s.processRepo.Create(ctx, tx, []*types.ReferenceProcess{process}); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		mapping = &types.ProductMapping{
			ID:                  uuid.New(),
			ProductType:         ref.Kind,
			ProductID:           ref.ID,
			ProcessID:           process.ID,
			MappingConfidence:   autoMappingConfidence,
			FunctionalUnit:      defaultFunctionalUnit,
			FunctionalUnitValue: 1.0,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		// The eco-friendly credit lives on the mapping, not on the
		// shared process row.
		if candidate.DefaultImpact != process.DefaultImpact {
			credited := candidate.DefaultImpact
			mapping.ManualImpactOverride = &credited
			mapping.MappingNotes = "eco-friendly credit applied to fallback impact"
		}
		mapping.Process = process
		_, err = s.mappingRepo.Create(ctx, tx, mapping)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Info("created product mapping",
		"ref", ref.Key(),
		"process", candidate.Code,
		"confidence", autoMappingConfidence)
	return mapping, true, nil
}

// entryDefaultImpact recovers the uncredited catalog impact for the
// process row, since the candidate may carry the eco-friendly credit.
func entryDefaultImpact(c *ecoscore.Candidate) float64 {
	for _, group := range ecoscore.ProcessGroups {
		for _, e := range group.Entries {
			if e.Code == c.Code {
				return e.DefaultImpact
			}
		}
	}
	return c.DefaultImpact
}
