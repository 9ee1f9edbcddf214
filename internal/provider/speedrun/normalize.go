package speedrun

import (
	"encoding/json"
	"fmt"

	"github.com/albapepper/speedrun-lb/internal/provider"
)

// --------------------------------------------------------------------------
// Videos
// --------------------------------------------------------------------------

// SelectVideo picks the preferred video among a run's links. Upstream lists
// a mirror first and the primary link second, so with two links the second
// wins. With more than two the last one is taken.
func SelectVideo(uris []string) string {
	switch len(uris) {
	case 0:
		return ""
	case 1:
		return uris[0]
	default:
		return uris[len(uris)-1]
	}
}

// videoURIs collects links[].uri in order. A null, absent or unexpected
// container yields nothing.
func videoURIs(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v rawVideos
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	uris := make([]string, 0, len(v.Links))
	for _, l := range v.Links {
		if l.URI != "" {
			uris = append(uris, l.URI)
		}
	}
	return uris
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// ResolvePlayer returns the identity of the first reference. Co-op runs
// collapse to their first-listed player, matching the leaderboard's primary
// credit.
func ResolvePlayer(refs []RawPlayerRef) (provider.PlayerIdentity, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: run has no players", provider.ErrMalformedPlayerReference)
	}
	return resolveRef(refs[0])
}

func resolveRef(ref RawPlayerRef) (provider.PlayerIdentity, error) {
	if ref.Rel == "user" {
		if ref.ID == nil || *ref.ID == "" {
			return nil, fmt.Errorf("%w: user reference without id", provider.ErrMalformedPlayerReference)
		}
		return provider.RegisteredUser{ID: *ref.ID}, nil
	}
	if ref.Name == nil || *ref.Name == "" {
		return nil, fmt.Errorf("%w: %s reference without name", provider.ErrMalformedPlayerReference, relOrGuest(ref.Rel))
	}
	return provider.GuestName{Name: *ref.Name}, nil
}

func relOrGuest(rel string) string {
	if rel == "" {
		return "guest"
	}
	return rel
}

// --------------------------------------------------------------------------
// Runs
// --------------------------------------------------------------------------

// NormalizeRun flattens one runs[] element into a leaderboard entry.
func NormalizeRun(raw RawRunEntry) (provider.LeaderboardEntry, error) {
	run := raw.Run

	timeStr := run.Times.Primary
	if run.Times.Realtime != nil {
		timeStr = *run.Times.Realtime
	}
	duration, err := provider.ParseDuration(timeStr)
	if err != nil {
		return provider.LeaderboardEntry{}, fmt.Errorf("run %s: %w", run.ID, err)
	}

	// ResolvePlayer enforces the non-empty list; the rest are resolved in order.
	first, err := ResolvePlayer(run.Players)
	if err != nil {
		return provider.LeaderboardEntry{}, fmt.Errorf("run %s: %w", run.ID, err)
	}
	players := make([]provider.PlayerIdentity, 0, len(run.Players))
	players = append(players, first)
	for i, ref := range run.Players[1:] {
		p, err := resolveRef(ref)
		if err != nil {
			return provider.LeaderboardEntry{}, fmt.Errorf("run %s player %d: %w", run.ID, i+2, err)
		}
		players = append(players, p)
	}

	return provider.LeaderboardEntry{
		Place: raw.Place,
		Run: provider.Run{
			ID:          run.ID,
			Weblink:     run.Weblink,
			VideoURI:    SelectVideo(videoURIs(run.Videos)),
			Duration:    duration,
			SubmittedAt: run.Submitted,
			Players:     players,
		},
	}, nil
}

// normalizeUser passes the users payload through.
func normalizeUser(raw RawUser) provider.Player {
	return provider.Player{
		ID:                raw.ID,
		InternationalName: raw.Names.International,
		JapaneseName:      raw.Names.Japanese,
		Weblink:           raw.Weblink,
	}
}
