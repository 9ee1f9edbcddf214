package speedrun

import (
	"fmt"

	"github.com/albapepper/speedrun-lb/internal/provider"
)

// Assemble joins the records payload with the catalog and keeps the boards
// whose category has the given kind. Boards and their entries keep upstream
// order.
//
// A record naming a category the catalog does not know means the two
// endpoints disagree; Assemble fails with ErrUnknownCategory and returns no
// partial output. A run that fails to normalize fails the whole call.
func Assemble(records []RawRecord, catalog provider.Catalog, kind provider.CategoryKind) ([]provider.CategoryLeaderboard, error) {
	boards := make([]provider.CategoryLeaderboard, 0, len(records))

	for _, rec := range records {
		cat, ok := catalog[rec.Category]
		if !ok {
			return nil, fmt.Errorf("%w: record for game %s references category %q", provider.ErrUnknownCategory, rec.Game, rec.Category)
		}
		if cat.Kind != kind {
			continue
		}

		entries := make([]provider.LeaderboardEntry, 0, len(rec.Runs))
		for _, r := range rec.Runs {
			entry, err := NormalizeRun(r)
			if err != nil {
				return nil, fmt.Errorf("category %s (%s): %w", cat.Name, cat.ID, err)
			}
			entries = append(entries, entry)
		}

		boards = append(boards, provider.CategoryLeaderboard{
			GameID:       rec.Game,
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Weblink:      rec.Weblink,
			Entries:      entries,
		})
	}

	return boards, nil
}
