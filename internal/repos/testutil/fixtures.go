package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

func NewProcess(code, category string, defaultImpact float64) *types.ReferenceProcess {
	now := time.Now().UTC()
	return &types.ReferenceProcess{
		ID:            uuid.New(),
		Code:          code,
		Name:          code,
		Category:      category,
		Unit:          "kg CO2-eq",
		Location:      "GLO",
		DefaultImpact: defaultImpact,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func NewBenchmark(category, subcategory string, impact float64) *types.Benchmark {
	now := time.Now().UTC()
	return &types.Benchmark{
		ID:              uuid.New(),
		Category:        category,
		Subcategory:     subcategory,
		BenchmarkImpact: impact,
		BenchmarkUnit:   "kg CO2-eq",
		ScoreAMin:       80,
		ScoreBMin:       60,
		ScoreCMin:       40,
		ScoreDMin:       20,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func NewProduct(name, category string, tags []string, ecoFriendly bool) *types.Product {
	now := time.Now().UTC()
	return &types.Product{
		ID:            uuid.New(),
		Name:          name,
		Category:      category,
		Tags:          types.EncodeTags(tags),
		IsEcoFriendly: ecoFriendly,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func NewMerchantProduct(name, category string, tags []string, ecoFriendly bool) *types.MerchantProduct {
	now := time.Now().UTC()
	return &types.MerchantProduct{
		ID:            uuid.New(),
		MerchantID:    uuid.New(),
		Name:          name,
		Category:      category,
		Tags:          types.EncodeTags(tags),
		IsEcoFriendly: ecoFriendly,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func NewMapping(ref types.ProductRef, processID uuid.UUID) *types.ProductMapping {
	now := time.Now().UTC()
	return &types.ProductMapping{
		ID:                  uuid.New(),
		ProductType:         ref.Kind,
		ProductID:           ref.ID,
		ProcessID:           processID,
		MappingConfidence:   0.8,
		FunctionalUnit:      "per item",
		FunctionalUnitValue: 1.0,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func NewScore(ref types.ProductRef, processID, benchmarkID uuid.UUID, value float64, grade types.Grade) *types.EcoScore {
	now := time.Now().UTC()
	return &types.EcoScore{
		ID:                 uuid.New(),
		ProductType:        ref.Kind,
		ProductID:          ref.ID,
		ScoreValue:         value,
		ScoreGrade:         grade,
		RawImpact:          1.0,
		ImpactUnit:         "kg CO2-eq",
		NormalizedImpact:   1.0 - value/100,
		LCAMethod:          types.LCAMethodGWP100a,
		ProcessID:          processID,
		BenchmarkID:        benchmarkID,
		CalculationDate:    now,
		CalculationVersion: types.CalculationVersion,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
