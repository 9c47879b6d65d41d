package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecoswitch/ecoswitch-backend/internal/db"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
)

// seed_ecoscore_data loads the static reference processes and category
// benchmarks, and optionally a demo product catalog.
func main() {
	withSamples := flag.Bool("with-sample-products", false, "also insert demo products")
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
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	seedService := services.NewSeedService(thePG, log,
		repos.NewReferenceProcessRepo(thePG, log),
		repos.NewBenchmarkRepo(thePG, log),
		repos.NewProductRepo(thePG, log))

	ctx := context.Background()
	result, err := seedService.SeedReferenceData(ctx)
	if err != nil {
		log.Error("Seeding reference data failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Reference processes: %d created, %d updated.\n", result.ProcessesCreated, result.ProcessesUpdated)
	fmt.Printf("Benchmarks: %d created, %d updated.\n", result.BenchmarksCreated, result.BenchmarksUpdated)

	if *withSamples {
		created, err := seedService.SeedSampleProducts(ctx)
		if err != nil {
			log.Error("Seeding sample products failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %d sample products.\n", created)
	}
}
