package repos_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos/testutil"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

func TestProductUpdateScoreSummary(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewProductRepo(db, testutil.Logger(t))

	product := testutil.NewProduct("Organic Bamboo Toothbrush", "Personal Care", []string{"eco", "bamboo"}, true)
	if _, err := repo.Create(ctx, tx, []*types.Product{product}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	calculatedAt := time.Now().UTC().Truncate(time.Second)
	err := repo.UpdateScoreSummary(ctx, tx, product.ID, repos.ScoreSummary{
		Value:        90.0,
		Grade:        types.GradeA,
		CalculatedAt: calculatedAt,
	})
	if err != nil {
		t.Fatalf("update summary: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, product.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EcoScoreValue != 90.0 || got.EcoScoreGrade != "A" {
		t.Fatalf("summary = (%v, %s)", got.EcoScoreValue, got.EcoScoreGrade)
	}
	if got.EcoScoreLastCalculated == nil {
		t.Fatal("last calculated not set")
	}
}

func TestMerchantProductListScoredFilters(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewMerchantProductRepo(db, testutil.Logger(t))

	scoredA := testutil.NewMerchantProduct("Reusable Water Bottle", "Home & Garden", nil, true)
	scoredC := testutil.NewMerchantProduct("Plastic Cutlery Pack", "Home & Garden", nil, false)
	unscored := testutil.NewMerchantProduct("Mystery Gadget", "Electronics", nil, false)
	if _, err := repo.Create(ctx, tx, []*types.MerchantProduct{scoredA, scoredC, unscored}); err != nil {
		t.Fatalf("create products: %v", err)
	}

	now := time.Now().UTC()
	if err := repo.UpdateScoreSummary(ctx, tx, scoredA.ID, repos.ScoreSummary{Value: 88.0, Grade: types.GradeA, CalculatedAt: now}); err != nil {
		t.Fatalf("update summary: %v", err)
	}
	if err := repo.UpdateScoreSummary(ctx, tx, scoredC.ID, repos.ScoreSummary{Value: 45.0, Grade: types.GradeC, CalculatedAt: now}); err != nil {
		t.Fatalf("update summary: %v", err)
	}

	all, err := repo.ListScored(ctx, tx, repos.ProductFilter{})
	if err != nil {
		t.Fatalf("list scored: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list scored returned %d rows, want 2 (unscored excluded)", len(all))
	}
	if all[0].ID != scoredA.ID {
		t.Fatalf("list not ordered by score desc")
	}

	byGrade, err := repo.ListScored(ctx, tx, repos.ProductFilter{Grade: types.GradeC})
	if err != nil {
		t.Fatalf("list by grade: %v", err)
	}
	if len(byGrade) != 1 || byGrade[0].ID != scoredC.ID {
		t.Fatalf("grade filter returned %d rows", len(byGrade))
	}

	min, max := 50.0, 95.0
	byRange, err := repo.ListScored(ctx, tx, repos.ProductFilter{MinScore: &min, MaxScore: &max})
	if err != nil {
		t.Fatalf("list by range: %v", err)
	}
	if len(byRange) != 1 || byRange[0].ID != scoredA.ID {
		t.Fatalf("range filter returned %d rows", len(byRange))
	}

	byCategory, err := repo.ListScored(ctx, tx, repos.ProductFilter{Category: "home"})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("category filter returned %d rows, want 2", len(byCategory))
	}
}

func TestProductListActiveCategoryFilter(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewProductRepo(db, testutil.Logger(t))

	food := testutil.NewProduct("Organic Apples", "Food & Beverages", nil, true)
	textiles := testutil.NewProduct("Cotton T-Shirt", "Clothing & Textiles", nil, false)
	inactive := testutil.NewProduct("Discontinued Juice", "Food & Beverages", nil, false)
	inactive.IsActive = false
	if _, err := repo.Create(ctx, tx, []*types.Product{food, textiles, inactive}); err != nil {
		t.Fatalf("create products: %v", err)
	}

	got, err := repo.ListActive(ctx, tx, "food")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != food.ID {
		t.Fatalf("category filter returned %d rows", len(got))
	}

	all, err := repo.ListActive(ctx, tx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("active list returned %d rows, want 2", len(all))
	}
}
