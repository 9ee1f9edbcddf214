package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/speedrun-lb/internal/api/respond"
	"github.com/albapepper/speedrun-lb/internal/cache"
	"github.com/albapepper/speedrun-lb/internal/provider"
)

// SearchGames looks up games by title.
// @Summary Search games
// @Description Searches speedrun.com by title. Games missing a records or categories link are left out.
// @Tags games
// @Produce json
// @Param name query string true "Game title"
// @Success 200 {array} provider.GameSummary
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games [get]
func (h *Handler) SearchGames(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_NAME", "name query parameter is required")
		return
	}

	key := "search:" + strings.ToLower(name)
	h.serveCached(w, r, key, h.ttl(cache.TTLSearch), func(ctx context.Context) (interface{}, error) {
		return h.src.SearchGames(ctx, name)
	})
}

// GetGame returns one game summary.
// @Summary Get game
// @Description Returns a game summary by speedrun.com id or abbreviation.
// @Tags games
// @Produce json
// @Param gameID path string true "Game id or abbreviation"
// @Success 200 {object} provider.GameSummary
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/{gameID} [get]
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	h.serveCached(w, r, "game:"+id, h.ttl(cache.TTLGame), func(ctx context.Context) (interface{}, error) {
		return h.src.GetGame(ctx, id)
	})
}

// GetLeaderboards returns a game's normalized boards for one category kind.
// @Summary Get leaderboards
// @Description Joins the game's records with its categories and returns the boards of the requested kind, in upstream order.
// @Tags games
// @Produce json
// @Param gameID path string true "Game id or abbreviation"
// @Param kind query string false "Category kind" Enums(per-game, per-level, misc) default(per-game)
// @Success 200 {array} provider.CategoryLeaderboard
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/{gameID}/leaderboards [get]
func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	kind, err := provider.ParseCategoryKind(r.URL.Query().Get("kind"))
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_KIND", "Invalid category kind", err.Error())
		return
	}

	key := fmt.Sprintf("leaderboards:%s:%s", id, kind)
	h.serveCached(w, r, key, h.ttl(cache.TTLLeaderboard), func(ctx context.Context) (interface{}, error) {
		game, err := h.src.GetGame(ctx, id)
		if err != nil {
			return nil, err
		}
		return h.src.GetLeaderboards(ctx, game, kind)
	})
}

// ttl caps a resource TTL at the configured cache TTL.
func (h *Handler) ttl(d time.Duration) time.Duration {
	if h.cfg != nil && h.cfg.CacheTTL > 0 && h.cfg.CacheTTL < d {
		return h.cfg.CacheTTL
	}
	return d
}
