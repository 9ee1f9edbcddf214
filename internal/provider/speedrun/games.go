package speedrun

import (
	"fmt"

	"github.com/albapepper/speedrun-lb/internal/provider"
)

const (
	relRecords    = "records"
	relCategories = "categories"
)

// NewGameSummary reduces a search result to a GameSummary. A game without a
// records or categories link cannot drive a leaderboard and fails with
// ErrMissingEndpoint.
func NewGameSummary(raw RawGame) (provider.GameSummary, error) {
	records := findLink(raw.Links, relRecords)
	if records == "" {
		return provider.GameSummary{}, fmt.Errorf("%w: game %s has no %q link", provider.ErrMissingEndpoint, gameRef(raw), relRecords)
	}
	categories := findLink(raw.Links, relCategories)
	if categories == "" {
		return provider.GameSummary{}, fmt.Errorf("%w: game %s has no %q link", provider.ErrMissingEndpoint, gameRef(raw), relCategories)
	}

	name := raw.Names.International
	if name == "" {
		name = raw.Abbreviation
	}
	return provider.GameSummary{
		ID:            raw.ID,
		Abbreviation:  raw.Abbreviation,
		DisplayName:   name,
		ReleaseYear:   raw.Released,
		RecordsURI:    records,
		CategoriesURI: categories,
	}, nil
}

// ResolveGames converts a search result, skipping games that cannot be used.
// Usable games keep their search order; the errors of skipped ones are
// returned alongside so the caller can report them.
func ResolveGames(raw []RawGame) (games []provider.GameSummary, skipped []error) {
	games = make([]provider.GameSummary, 0, len(raw))
	for _, g := range raw {
		summary, err := NewGameSummary(g)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		games = append(games, summary)
	}
	return games, skipped
}

func findLink(links []RawLink, rel string) string {
	for _, l := range links {
		if l.Rel == rel && l.URI != "" {
			return l.URI
		}
	}
	return ""
}

func gameRef(raw RawGame) string {
	if raw.Abbreviation != "" {
		return raw.Abbreviation
	}
	return raw.ID
}
