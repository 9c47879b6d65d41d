package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ecoswitch/ecoswitch-backend/internal/clients/lca"
	"github.com/ecoswitch/ecoswitch-backend/internal/db"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// calculate_ecoscores maps and scores catalog and merchant products in
// bulk. With no target flags it walks every active product.
func main() {
	productID := flag.String("product-id", "", "score a single catalog product")
	merchantProductID := flag.String("merchant-product-id", "", "score a single merchant product")
	category := flag.String("category", "", "limit to products whose category contains this string")
	force := flag.Bool("force", false, "recalculate even when the stored score is fresh")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "production"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	productRepo := repos.NewProductRepo(thePG, log)
	merchantProductRepo := repos.NewMerchantProductRepo(thePG, log)
	processRepo := repos.NewReferenceProcessRepo(thePG, log)
	mappingRepo := repos.NewProductMappingRepo(thePG, log)
	benchmarkRepo := repos.NewBenchmarkRepo(thePG, log)
	scoreRepo := repos.NewEcoScoreRepo(thePG, log)
	historyRepo := repos.NewEcoScoreHistoryRepo(thePG, log)

	lcaClient, err := lca.NewClient(log)
	if err != nil {
		log.Warn("LCA backend not configured, falling back to catalog impacts", "error", err)
		lcaClient = nil
	}

	mappingService := services.NewMappingService(thePG, log, productRepo, merchantProductRepo, processRepo, mappingRepo)
	scoreService := services.NewEcoScoreService(thePG, log,
		services.NewLCAService(log, lcaClient), nil,
		productRepo, merchantProductRepo, mappingRepo, benchmarkRepo, scoreRepo, historyRepo)

	ctx := context.Background()

	targets, err := collectTargets(ctx, productRepo, merchantProductRepo, *productID, *merchantProductID, *category)
	if err != nil {
		log.Error("Failed to collect products", "error", err)
		os.Exit(1)
	}
	if len(targets) == 0 {
		fmt.Println("No products to score.")
		return
	}

	fmt.Printf("Scoring %d products...\n", len(targets))
	scored, skipped, failed := 0, 0, 0
	for i, target := range targets {
		if _, _, err := mappingService.EnsureMapping(ctx, target.ref); err != nil {
			if errors.Is(err, services.ErrUnmappableProduct) {
				fmt.Printf("  ⚠ %s: no mapping rule for category %q\n", target.name, target.category)
				skipped++
				continue
			}
			fmt.Printf("  ⚠ %s: mapping failed: %v\n", target.name, err)
			failed++
			continue
		}

		score, err := scoreService.Calculate(ctx, target.ref, *force)
		if err != nil {
			fmt.Printf("  ⚠ %s: %v\n", target.name, err)
			failed++
			continue
		}
		fmt.Printf("  ✓ %s: %.1f (%s)\n", target.name, score.ScoreValue, score.ScoreGrade)
		scored++

		if (i+1)%10 == 0 {
			fmt.Printf("  ... %d/%d done\n", i+1, len(targets))
		}
	}

	fmt.Printf("Done: %d scored, %d skipped, %d failed.\n", scored, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

type target struct {
	ref      types.ProductRef
	name     string
	category string
}

func collectTargets(
	ctx context.Context,
	productRepo repos.ProductRepo,
	merchantProductRepo repos.MerchantProductRepo,
	productID, merchantProductID, category string,
) ([]target, error) {
	var targets []target

	if productID != "" {
		id, err := uuid.Parse(productID)
		if err != nil {
			return nil, fmt.Errorf("invalid -product-id: %w", err)
		}
		p, err := productRepo.GetByID(ctx, nil, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("catalog product %s not found", id)
		}
		targets = append(targets, target{ref: p.Ref(), name: p.Name, category: p.Category})
	}

	if merchantProductID != "" {
		id, err := uuid.Parse(merchantProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid -merchant-product-id: %w", err)
		}
		p, err := merchantProductRepo.GetByID(ctx, nil, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("merchant product %s not found", id)
		}
		targets = append(targets, target{ref: p.Ref(), name: p.Name, category: p.Category})
	}

	if len(targets) > 0 {
		return targets, nil
	}

	products, err := productRepo.ListActive(ctx, nil, category)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		targets = append(targets, target{ref: p.Ref(), name: p.Name, category: p.Category})
	}

	merchantProducts, err := merchantProductRepo.ListActive(ctx, nil, category)
	if err != nil {
		return nil, err
	}
	for _, p := range merchantProducts {
		targets = append(targets, target{ref: p.Ref(), name: p.Name, category: p.Category})
	}

	return targets, nil
}
