package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecoswitch/ecoswitch-backend/internal/ecoscore"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// SeedResult counts what a seeding run inserted and what it refreshed.
// Rows that already exist are overwritten from the static tables, so a
// re-seed is the way reference data gets updated.
type SeedResult struct {
	ProcessesCreated  int
	ProcessesUpdated  int
	BenchmarksCreated int
	BenchmarksUpdated int
	ProductsCreated   int
}

type SeedService interface {
	SeedReferenceData(ctx context.Context) (*SeedResult, error)
	SeedSampleProducts(ctx context.Context) (int, error)
}

type seedService struct {
	db            *gorm.DB
	log           *logger.Logger
	processRepo   repos.ReferenceProcessRepo
	benchmarkRepo repos.BenchmarkRepo
	productRepo   repos.ProductRepo
}

func NewSeedService(
	db *gorm.DB,
	log *logger.Logger,
	processRepo repos.ReferenceProcessRepo,
	benchmarkRepo repos.BenchmarkRepo,
	productRepo repos.ProductRepo,
) SeedService {
	return &seedService{
		db:            db,
		log:           log.With("service", "SeedService"),
		processRepo:   processRepo,
		benchmarkRepo: benchmarkRepo,
		productRepo:   productRepo,
	}
}

// SeedReferenceData loads the static process catalog and the category
// benchmarks into the database.
func (s *seedService) SeedReferenceData(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, group := range ecoscore.ProcessGroups {
			for _, entry := range group.Entries {
				existing, err := s.processRepo.GetByCode(ctx, tx, entry.Code)
				if err != nil {
					return err
				}
				if existing != nil {
					existing.Name = entry.Name
					existing.Category = entry.Category
					existing.Unit = entry.Unit
					existing.DefaultImpact = entry.DefaultImpact
					existing.IsActive = true
					existing.UpdatedAt = time.Now().UTC()
					if err := s.processRepo.Update(ctx, tx, existing); err != nil {
						return err
					}
					result.ProcessesUpdated++
					continue
				}
				now := time.Now().UTC()
				row := &types.ReferenceProcess{
					ID:            uuid.New(),
					Code:          entry.Code,
					Name:          entry.Name,
					Category:      entry.Category,
					Unit:          entry.Unit,
					Location:      "GLO",
					DefaultImpact: entry.DefaultImpact,
					IsActive:      true,
					CreatedAt:     now,
					UpdatedAt:     now,
				}
				if _, err := s.processRepo.Create(ctx, tx, []*types.ReferenceProcess{row}); err != nil {
					return err
				}
				result.ProcessesCreated++
			}
		}

		for _, seed := range ecoscore.BenchmarkSeeds {
			existing, err := s.benchmarkRepo.GetByCategoryAndSubcategory(ctx, tx, seed.Category, seed.Subcategory)
			if err != nil {
				return err
			}
			if existing != nil {
				existing.BenchmarkImpact = seed.Impact
				existing.BenchmarkUnit = seed.Unit
				existing.Description = seed.Description
				existing.Source = seed.Source
				existing.IsActive = true
				existing.UpdatedAt = time.Now().UTC()
				if err := s.benchmarkRepo.Update(ctx, tx, existing); err != nil {
					return err
				}
				result.BenchmarksUpdated++
				continue
			}
			now := time.Now().UTC()
			row := &types.Benchmark{
				ID:              uuid.New(),
				Category:        seed.Category,
				Subcategory:     seed.Subcategory,
				BenchmarkImpact: seed.Impact,
				BenchmarkUnit:   seed.Unit,
				Description:     seed.Description,
				Source:          seed.Source,
				ScoreAMin:       80,
				ScoreBMin:       60,
				ScoreCMin:       40,
				ScoreDMin:       20,
				IsActive:        true,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if _, err := s.benchmarkRepo.Create(ctx, tx, []*types.Benchmark{row}); err != nil {
				return err
			}
			result.BenchmarksCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("seeded reference data",
		"processes_created", result.ProcessesCreated,
		"processes_updated", result.ProcessesUpdated,
		"benchmarks_created", result.BenchmarksCreated,
		"benchmarks_updated", result.BenchmarksUpdated)
	return result, nil
}

type sampleProduct struct {
	Name        string
	Category    string
	Subcategory string
	Tags        []string
	EcoFriendly bool
	Price       float64
}

var sampleProducts = []sampleProduct{
	{Name: "Organic Bamboo Toothbrush", Category: "Personal Care", Subcategory: "Oral Care", Tags: []string{"eco", "bamboo"}, EcoFriendly: true, Price: 4.99},
	{Name: "Cotton Tote Bag", Category: "Home & Garden", Tags: []string{"reusable", "cotton"}, EcoFriendly: true, Price: 12.50},
	{Name: "Reusable Water Bottle", Category: "Kitchen & Dining", Tags: []string{"reusable", "glass"}, EcoFriendly: true, Price: 18.00},
	{Name: "Organic Cotton T-Shirt", Category: "Clothing & Textiles", Tags: []string{"organic", "cotton"}, EcoFriendly: true, Price: 24.99},
	{Name: "LED Light Bulb 10W", Category: "Electronics", Tags: []string{"led", "energy-saving"}, EcoFriendly: true, Price: 6.99},
	{Name: "Eco-Friendly Detergent", Category: "Cleaning Products", Tags: []string{"eco", "biodegradable"}, EcoFriendly: true, Price: 9.49},
	{Name: "Organic Apples 1kg", Category: "Food & Beverages", Subcategory: "Fresh Produce", Tags: []string{"organic", "fruit"}, EcoFriendly: true, Price: 3.99},
	{Name: "Plastic Toothbrush", Category: "Personal Care", Subcategory: "Oral Care", EcoFriendly: false, Price: 1.99},
	{Name: "Polyester T-Shirt", Category: "Fashion & Accessories", EcoFriendly: false, Price: 9.99},
	{Name: "Conventional Sunscreen SPF30", Category: "Personal Care", Subcategory: "Skincare", Tags: []string{"sunscreen"}, EcoFriendly: false, Price: 11.99},
}

// SeedSampleProducts inserts a demo catalog for local development. A
// product is skipped when one with the same name is already present.
func (s *seedService) SeedSampleProducts(ctx context.Context) (int, error) {
	existing, err := s.productRepo.ListActive(ctx, nil, "")
	if err != nil {
		return 0, err
	}
	present := make(map[string]bool, len(existing))
	for _, p := range existing {
		present[p.Name] = true
	}

	created := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sample := range sampleProducts {
			if present[sample.Name] {
				continue
			}
			now := time.Now().UTC()
			row := &types.Product{
				ID:            uuid.New(),
				Name:          sample.Name,
				Category:      sample.Category,
				Subcategory:   sample.Subcategory,
				Tags:          types.EncodeTags(sample.Tags),
				IsEcoFriendly: sample.EcoFriendly,
				Price:         sample.Price,
				IsActive:      true,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if _, err := s.productRepo.Create(ctx, tx, []*types.Product{row}); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("seeded sample products", "products_created", created)
	return created, nil
}
