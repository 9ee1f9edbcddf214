package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/speedrun-lb/internal/cache"
)

// GetPlayer returns a registered user's profile.
// @Summary Get player
// @Description Returns the id and names of a speedrun.com user.
// @Tags players
// @Produce json
// @Param playerID path string true "User id"
// @Success 200 {object} provider.Player
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "playerID")
	h.serveCached(w, r, "player:"+id, h.ttl(cache.TTLPlayer), func(ctx context.Context) (interface{}, error) {
		return h.src.GetPlayer(ctx, id)
	})
}
