package main

import (
	"fmt"
	"os"

	"github.com/ecoswitch/ecoswitch-backend/internal/clients/lca"
	redisclient "github.com/ecoswitch/ecoswitch-backend/internal/clients/redis"
	"github.com/ecoswitch/ecoswitch-backend/internal/db"
	"github.com/ecoswitch/ecoswitch-backend/internal/handlers"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/server"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
	"github.com/ecoswitch/ecoswitch-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	productRepo := repos.NewProductRepo(thePG, log)
	merchantProductRepo := repos.NewMerchantProductRepo(thePG, log)
	processRepo := repos.NewReferenceProcessRepo(thePG, log)
	mappingRepo := repos.NewProductMappingRepo(thePG, log)
	benchmarkRepo := repos.NewBenchmarkRepo(thePG, log)
	scoreRepo := repos.NewEcoScoreRepo(thePG, log)
	historyRepo := repos.NewEcoScoreHistoryRepo(thePG, log)
	achievementRepo := repos.NewAchievementRepo(thePG, log)

	// Clients
	log.Info("Setting up clients from main...")
	lcaClient, err := lca.NewClient(log)
	if err != nil {
		log.Warn("LCA backend not configured, falling back to catalog impacts", "error", err)
		lcaClient = nil
	}
	scoreCache, err := redisclient.NewScoreCache(log)
	if err != nil {
		log.Warn("Score cache not configured, serving scores from Postgres", "error", err)
		scoreCache = nil
	}

	// Services
	log.Info("Setting up services from main...")
	lcaService := services.NewLCAService(log, lcaClient)
	scoreService := services.NewEcoScoreService(thePG, log,
		lcaService,
		scoreCache,
		productRepo,
		merchantProductRepo,
		mappingRepo,
		benchmarkRepo,
		scoreRepo,
		historyRepo,
	)
	gamificationService := services.NewGamificationService(thePG, log, achievementRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	ecoScoreHandler := handlers.NewEcoScoreHandler(scoreService)
	productHandler := handlers.NewProductHandler(productRepo, merchantProductRepo, scoreService)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)
	referenceProcessHandler := handlers.NewReferenceProcessHandler(processRepo)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:                     log,
		EcoScoreHandler:         ecoScoreHandler,
		ProductHandler:          productHandler,
		GamificationHandler:     gamificationHandler,
		ReferenceProcessHandler: referenceProcessHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
