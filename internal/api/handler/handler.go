// Package handler provides HTTP handlers for all API endpoints.
// Handlers call the speedrun.com source directly and cache the encoded
// normalized records; there is no service layer.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/speedrun-lb/internal/api/respond"
	"github.com/albapepper/speedrun-lb/internal/cache"
	"github.com/albapepper/speedrun-lb/internal/config"
	"github.com/albapepper/speedrun-lb/internal/provider"
	"github.com/albapepper/speedrun-lb/internal/provider/speedrun"
)

// Source is the subset of speedrun.Handler the endpoints need.
type Source interface {
	SearchGames(ctx context.Context, title string) ([]provider.GameSummary, error)
	GetGame(ctx context.Context, id string) (provider.GameSummary, error)
	GetLeaderboards(ctx context.Context, game provider.GameSummary, kind provider.CategoryKind) ([]provider.CategoryLeaderboard, error)
	GetPlayer(ctx context.Context, id string) (provider.Player, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	src    Source
	cache  *cache.Cache
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(src Source, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		src:    src,
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "speedrun-lb API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs/index.html",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serveCached answers from the cache when possible, otherwise calls load,
// encodes its result and caches it for ttl.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, load func(ctx context.Context) (interface{}, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := load(r.Context())
	if err != nil {
		h.writeSourceError(w, key, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encode response", "key", key, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response")
		return
	}

	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// writeSourceError maps fetch and normalization failures onto HTTP errors.
func (h *Handler) writeSourceError(w http.ResponseWriter, key string, err error) {
	var apiErr *speedrun.APIError
	switch {
	case errors.Is(err, provider.ErrEmptyResultSet):
		respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", "No results", err.Error())
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", "Not found on speedrun.com", apiErr.Message)
	case provider.IsInconsistency(err):
		h.logger.Warn("upstream data inconsistency", "key", key, "error", err)
		respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_INCONSISTENT", "speedrun.com returned inconsistent data", err.Error())
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
	default:
		h.logger.Error("upstream request failed", "key", key, "error", err)
		respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_ERROR", "speedrun.com request failed", err.Error())
	}
}
