package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ecoswitch/ecoswitch-backend/internal/handlers"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/middleware"
	"github.com/ecoswitch/ecoswitch-backend/internal/utils"
)

type RouterConfig struct {
	Log                     *logger.Logger
	EcoScoreHandler         *handlers.EcoScoreHandler
	ProductHandler          *handlers.ProductHandler
	GamificationHandler     *handlers.GamificationHandler
	ReferenceProcessHandler *handlers.ReferenceProcessHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(cfg.Log))

	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", cfg.Log)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(origins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/ecoscores", cfg.EcoScoreHandler.List)
		api.GET("/ecoscores/stats", cfg.EcoScoreHandler.Stats)
		api.GET("/ecoscores/:type/:id", cfg.EcoScoreHandler.Get)
		api.GET("/ecoscores/:type/:id/history", cfg.EcoScoreHandler.History)

		api.GET("/products", cfg.ProductHandler.List)
		api.POST("/products/:id/recalculate", cfg.ProductHandler.Recalculate)

		api.POST("/achievements/check", cfg.GamificationHandler.Check)
		api.GET("/achievements", cfg.GamificationHandler.List)

		api.GET("/reference-processes", cfg.ReferenceProcessHandler.List)
	}

	return router
}
