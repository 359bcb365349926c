package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"rebateatlas-backend/internal/config"
	"rebateatlas-backend/internal/handlers"
	"rebateatlas-backend/internal/logger"
	"rebateatlas-backend/internal/ratelimit"
	"rebateatlas-backend/internal/router"
	"rebateatlas-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info("🚀 Starting Rebate Atlas Backend...")
	log.Info("✓ Environment variables loaded")

	// ──── Step 2: Initialize Rate Limit Store ────
	var (
		store       ratelimit.Store
		redisClient *redis.Client
	)
	if cfg.RedisURL != "" {
		redisStore, err := ratelimit.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		redisClient = redisStore.Client()
		log.Info("✓ Redis connected (shared rate limiting + enrichment cache)")
	} else {
		store = ratelimit.NewMemoryStore()
		log.Info("✓ In-memory rate limit store initialized")
	}

	limiter := ratelimit.New(store, cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowSeconds)*time.Second, log)
	limiter.StartSweeper()
	defer limiter.Stop()
	log.Infof("✓ Rate limiter started (%d req / %ds per IP)", cfg.RateLimitMax, cfg.RateLimitWindowSeconds)

	// ──── Step 3: Initialize Services ────
	enrichment := services.NewEnrichmentService(cfg.SiteURL, redisClient, log)
	completion := services.NewCompletionService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	log.Infof("✓ Completion client initialized (model %s)", cfg.OpenAIModel)

	// ──── Step 4: Initialize Handlers & Router ────
	chatHandler := handlers.NewChatHandler(limiter, enrichment, completion, log)
	r := router.New(chatHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // must outlive the upstream completion call
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Infof("✓ Rebate Atlas Backend ready on http://localhost:%s", cfg.Port)
	log.Infof("  Chat: POST http://localhost:%s/api/v1/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
