package repos_test

import (
	"context"
	"testing"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos/testutil"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

func TestBenchmarkLookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewBenchmarkRepo(db, testutil.Logger(t))

	seed := testutil.NewBenchmark("Personal Care", "Oral Care", 0.5)
	if _, err := repo.Create(ctx, tx, []*types.Benchmark{seed}); err != nil {
		t.Fatalf("create benchmark: %v", err)
	}

	got, err := repo.GetByCategoryAndSubcategory(ctx, tx, "personal care", "ORAL CARE")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil || got.ID != seed.ID {
		t.Fatalf("lookup returned %+v, want seeded row", got)
	}
}

func TestBenchmarkCategoryWideRow(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewBenchmarkRepo(db, testutil.Logger(t))

	wide := testutil.NewBenchmark("Food & Beverages", "", 2.0)
	narrow := testutil.NewBenchmark("Food & Beverages", "Snacks", 1.2)
	if _, err := repo.Create(ctx, tx, []*types.Benchmark{wide, narrow}); err != nil {
		t.Fatalf("create benchmarks: %v", err)
	}

	got, err := repo.GetByCategoryAndSubcategory(ctx, tx, "Food & Beverages", "")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil || got.ID != wide.ID {
		t.Fatalf("blank subcategory resolved to %+v, want the category-wide row", got)
	}
}

func TestBenchmarkFirstCategoryContaining(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewBenchmarkRepo(db, testutil.Logger(t))

	seed := testutil.NewBenchmark("Clothing & Textiles", "", 8.0)
	if _, err := repo.Create(ctx, tx, []*types.Benchmark{seed}); err != nil {
		t.Fatalf("create benchmark: %v", err)
	}

	got, err := repo.FirstCategoryContaining(ctx, tx, "clothing")
	if err != nil {
		t.Fatalf("contains lookup: %v", err)
	}
	if got == nil || got.ID != seed.ID {
		t.Fatalf("contains lookup returned %+v, want seeded row", got)
	}

	none, err := repo.FirstCategoryContaining(ctx, tx, "aerospace")
	if err != nil {
		t.Fatalf("contains lookup: %v", err)
	}
	if none != nil {
		t.Fatalf("contains lookup for unknown category returned %+v, want nil", none)
	}
}

func TestBenchmarkInactiveRowsAreInvisible(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := repos.NewBenchmarkRepo(db, testutil.Logger(t))

	seed := testutil.NewBenchmark("Electronics", "", 50.0)
	seed.IsActive = false
	if _, err := repo.Create(ctx, tx, []*types.Benchmark{seed}); err != nil {
		t.Fatalf("create benchmark: %v", err)
	}

	got, err := repo.GetByCategoryAndSubcategory(ctx, tx, "Electronics", "")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != nil {
		t.Fatalf("inactive benchmark was returned: %+v", got)
	}
}
