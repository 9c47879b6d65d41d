package services_test

import (
	"context"
	"testing"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos/testutil"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
)

func TestSeedReferenceDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	processRepo := repos.NewReferenceProcessRepo(db, log)
	benchmarkRepo := repos.NewBenchmarkRepo(db, log)
	svc := services.NewSeedService(db, log, processRepo, benchmarkRepo, repos.NewProductRepo(db, log))

	first, err := svc.SeedReferenceData(ctx)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if first.ProcessesCreated != 25 {
		t.Fatalf("processes created = %d, want the full catalog of 25", first.ProcessesCreated)
	}
	if first.BenchmarksCreated != 6 {
		t.Fatalf("benchmarks created = %d, want 6", first.BenchmarksCreated)
	}

	// Drift a row; the re-seed must restore it from the static tables.
	drifted, err := processRepo.GetByCode(ctx, nil, "toothbrush_bamboo")
	if err != nil {
		t.Fatalf("get process: %v", err)
	}
	drifted.DefaultImpact = 9.9
	if err := processRepo.Update(ctx, nil, drifted); err != nil {
		t.Fatalf("update process: %v", err)
	}

	second, err := svc.SeedReferenceData(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second.ProcessesCreated != 0 || second.BenchmarksCreated != 0 {
		t.Fatalf("rerun created (%d, %d) rows, want (0, 0)", second.ProcessesCreated, second.BenchmarksCreated)
	}
	if second.ProcessesUpdated != 25 || second.BenchmarksUpdated != 6 {
		t.Fatalf("rerun updated (%d, %d) rows, want (25, 6)", second.ProcessesUpdated, second.BenchmarksUpdated)
	}

	process, err := processRepo.GetByCode(ctx, nil, "toothbrush_bamboo")
	if err != nil {
		t.Fatalf("get process: %v", err)
	}
	if process == nil || process.DefaultImpact != 0.05 {
		t.Fatalf("re-seeded process = %+v, want default impact restored to 0.05", process)
	}

	benchmark, err := benchmarkRepo.GetByCategoryAndSubcategory(ctx, nil, "Food & Beverages", "")
	if err != nil {
		t.Fatalf("get benchmark: %v", err)
	}
	if benchmark == nil || benchmark.BenchmarkImpact != 2.0 {
		t.Fatalf("seeded benchmark = %+v", benchmark)
	}
}

func TestSeedSampleProductsSkipsExisting(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := services.NewSeedService(db, log,
		repos.NewReferenceProcessRepo(db, log),
		repos.NewBenchmarkRepo(db, log),
		repos.NewProductRepo(db, log))

	first, err := svc.SeedSampleProducts(ctx)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if first == 0 {
		t.Fatal("no sample products created")
	}

	second, err := svc.SeedSampleProducts(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second != 0 {
		t.Fatalf("rerun created %d products, want 0", second)
	}
}
