package speedrun

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/speedrun-lb/internal/provider"
)

// Handler fetches speedrun.com payloads and normalizes them into canonical
// provider types.
type Handler struct {
	client     *Client
	recordsTop int
	logger     *slog.Logger
}

// NewHandler creates a handler. recordsTop > 0 asks the records endpoint
// for that many places per category instead of the upstream default.
func NewHandler(client *Client, recordsTop int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		client:     client,
		recordsTop: recordsTop,
		logger:     logger,
	}
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

// SearchGames looks games up by title. Games missing a required link are
// skipped and logged; ErrEmptyResultSet is returned when nothing usable is
// left.
func (h *Handler) SearchGames(ctx context.Context, title string) ([]provider.GameSummary, error) {
	data, err := h.client.get(ctx, "/games", url.Values{"name": {title}})
	if err != nil {
		return nil, fmt.Errorf("search games %q: %w", title, err)
	}

	var raw []RawGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}

	games, skipped := ResolveGames(raw)
	for _, e := range skipped {
		h.logger.Warn("Skipping game", "error", e)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%w: no games match %q", provider.ErrEmptyResultSet, title)
	}
	return games, nil
}

// GetGame fetches a single game by id or abbreviation.
func (h *Handler) GetGame(ctx context.Context, id string) (provider.GameSummary, error) {
	data, err := h.client.get(ctx, "/games/"+url.PathEscape(id), nil)
	if err != nil {
		return provider.GameSummary{}, fmt.Errorf("fetch game %s: %w", id, err)
	}

	var raw RawGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return provider.GameSummary{}, fmt.Errorf("decode game %s: %w", id, err)
	}
	return NewGameSummary(raw)
}

// --------------------------------------------------------------------------
// Categories and records
// --------------------------------------------------------------------------

// GetCatalog fetches a game's categories from its categories link.
func (h *Handler) GetCatalog(ctx context.Context, uri string) (provider.Catalog, error) {
	data, err := h.client.get(ctx, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	var raw []RawCategory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return BuildCatalog(raw), nil
}

// GetRecords fetches the raw per-category records from a records link.
func (h *Handler) GetRecords(ctx context.Context, uri string) ([]RawRecord, error) {
	var params url.Values
	if h.recordsTop > 0 {
		params = url.Values{"top": {strconv.Itoa(h.recordsTop)}}
	}
	data, err := h.client.get(ctx, uri, params)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	var raw []RawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return raw, nil
}

// GetLeaderboards fetches categories and records concurrently and joins them,
// keeping the boards whose category has the given kind.
func (h *Handler) GetLeaderboards(ctx context.Context, game provider.GameSummary, kind provider.CategoryKind) ([]provider.CategoryLeaderboard, error) {
	var (
		catalog provider.Catalog
		records []RawRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = h.GetCatalog(gctx, game.CategoriesURI)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = h.GetRecords(gctx, game.RecordsURI)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("game %s: %w", game.Abbreviation, err)
	}

	boards, err := Assemble(records, catalog, kind)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", game.Abbreviation, err)
	}
	h.logger.Debug("Leaderboards assembled",
		"game", game.Abbreviation, "kind", kind,
		"categories", len(catalog), "records", len(records), "boards", len(boards))
	return boards, nil
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// GetPlayer fetches a registered user's profile.
func (h *Handler) GetPlayer(ctx context.Context, id string) (provider.Player, error) {
	data, err := h.client.get(ctx, "/users/"+url.PathEscape(id), nil)
	if err != nil {
		return provider.Player{}, fmt.Errorf("fetch player %s: %w", id, err)
	}

	var raw RawUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return provider.Player{}, fmt.Errorf("decode player %s: %w", id, err)
	}
	return normalizeUser(raw), nil
}
