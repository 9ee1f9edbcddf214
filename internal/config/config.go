// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/srlb and cmd/api.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// speedrun.com API
	SpeedrunBaseURL           string
	SpeedrunRequestsPerMinute int
	SpeedrunTimeout           time.Duration
	SpeedrunUserAgent         string
	RecordsTop                int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool
	CacheTTL     time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		SpeedrunBaseURL:           envOr("SPEEDRUN_API_BASE_URL", "https://www.speedrun.com/api/v1"),
		SpeedrunRequestsPerMinute: envInt("SPEEDRUN_REQUESTS_PER_MINUTE", 100),
		SpeedrunTimeout:           time.Duration(envInt("SPEEDRUN_TIMEOUT_SECONDS", 30)) * time.Second,
		SpeedrunUserAgent:         envOr("SPEEDRUN_USER_AGENT", "speedrun-lb/1.0"),
		RecordsTop:                envInt("SPEEDRUN_RECORDS_TOP", 0),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheTTL:     time.Duration(envInt("CACHE_TTL_MINUTES", 10)) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.SpeedrunBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SPEEDRUN_API_BASE_URL %q is not an absolute URL", c.SpeedrunBaseURL)
	}
	if c.SpeedrunRequestsPerMinute <= 0 {
		return fmt.Errorf("SPEEDRUN_REQUESTS_PER_MINUTE must be positive, got %d", c.SpeedrunRequestsPerMinute)
	}
	if c.SpeedrunTimeout <= 0 {
		return fmt.Errorf("SPEEDRUN_TIMEOUT_SECONDS must be positive")
	}
	if c.RecordsTop < 0 {
		return fmt.Errorf("SPEEDRUN_RECORDS_TOP must not be negative, got %d", c.RecordsTop)
	}
	if c.RateLimitEnabled && (c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0) {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
