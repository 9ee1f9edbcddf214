// Command api serves normalized speedrun.com leaderboards over HTTP.
//
// Usage:
//
//	srlb-api
//	API_PORT=8080 srlb-api

// @title speedrun-lb API
// @version 1.0.0
// @description Normalized speedrun.com leaderboards: game search, per-category boards joined with the category taxonomy, and player profiles.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name speedrun-lb
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/speedrun-lb/internal/api"
	"github.com/albapepper/speedrun-lb/internal/cache"
	"github.com/albapepper/speedrun-lb/internal/config"
	"github.com/albapepper/speedrun-lb/internal/provider/speedrun"

	_ "github.com/albapepper/speedrun-lb/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// speedrun.com source
	client := speedrun.NewClient(speedrun.ClientOptions{
		BaseURL:           cfg.SpeedrunBaseURL,
		UserAgent:         cfg.SpeedrunUserAgent,
		RequestsPerMinute: cfg.SpeedrunRequestsPerMinute,
		Timeout:           cfg.SpeedrunTimeout,
	}, logger)
	src := speedrun.NewHandler(client, cfg.RecordsTop, logger)
	logger.Info("speedrun.com client ready",
		"base_url", cfg.SpeedrunBaseURL,
		"requests_per_minute", cfg.SpeedrunRequestsPerMinute)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL)

	// Create router
	router := api.NewRouter(src, appCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.SpeedrunTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting speedrun-lb API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/index.html", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
