package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studenttrip/config"
	"studenttrip/handlers"
	"studenttrip/logger"
	"studenttrip/planner"
	"studenttrip/services"
	"studenttrip/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), zap.String("service", "student-travel-planner")); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Log.Sync() }()

	// Initialize AI service
	gen := services.NewTextGenerator(context.Background(), cfg.LLM)

	plans := store.New[services.TravelPlan](cfg.PlanTTL)
	p := services.NewPlanner(gen, plans, cfg.LLM.Timeout)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handlers.NewRouter(handlers.New(p, planner.DefaultRandomizer(), services.Enabled(gen)), cfg.FrontendURLs)

	// Trusted proxies (the host platform sits behind a proxy)
	if err := r.SetTrustedProxies([]string{"0.0.0.0/0"}); err != nil {
		logger.Log.Warn("Could not set trusted proxies", zap.Error(err))
	}

	logger.Log.Info("🚀 Student travel planner starting",
		zap.String("port", cfg.Port),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.Duration("plan_ttl", cfg.PlanTTL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
