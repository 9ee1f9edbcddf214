// Package provider defines canonical leaderboard types that upstream payloads
// normalize into. These structs are the contract between the speedrun.com
// handler and everything that renders or serves leaderboards.
//
// All values are built once from an upstream payload and never mutated. None
// of them keep a reference to the raw JSON they came from.
package provider

import (
	"encoding/json"
	"fmt"
)

// GameSummary is a search result reduced to what the leaderboard flow needs.
type GameSummary struct {
	ID            string `json:"id" yaml:"id"`
	Abbreviation  string `json:"abbreviation" yaml:"abbreviation"`
	DisplayName   string `json:"display_name" yaml:"display_name"`
	ReleaseYear   uint16 `json:"release_year" yaml:"release_year"`
	RecordsURI    string `json:"records_uri" yaml:"records_uri"`
	CategoriesURI string `json:"categories_uri" yaml:"categories_uri"`
}

// Label is the human-readable line shown when picking a game.
func (g GameSummary) Label() string {
	if g.ReleaseYear == 0 {
		return fmt.Sprintf("%s [%s]", g.DisplayName, g.Abbreviation)
	}
	return fmt.Sprintf("%s (%d) [%s]", g.DisplayName, g.ReleaseYear, g.Abbreviation)
}

// CategoryKind distinguishes whole-game, per-level and miscellaneous categories.
type CategoryKind string

const (
	KindPerGame  CategoryKind = "per-game"
	KindPerLevel CategoryKind = "per-level"
	KindMisc     CategoryKind = "misc"
)

// ParseCategoryKind accepts the flag spellings used by the CLI and the API.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch s {
	case "per-game", "game", "":
		return KindPerGame, nil
	case "per-level", "level":
		return KindPerLevel, nil
	case "misc", "miscellaneous":
		return KindMisc, nil
	}
	return "", fmt.Errorf("unknown category kind %q (per-game, per-level, misc)", s)
}

// Category is one entry of a game's category taxonomy.
type Category struct {
	ID   string       `json:"id" yaml:"id"`
	Name string       `json:"name" yaml:"name"`
	Kind CategoryKind `json:"kind" yaml:"kind"`
}

// Catalog indexes a game's categories by id.
type Catalog map[string]Category

// PlayerIdentity is either a RegisteredUser or a GuestName.
type PlayerIdentity interface {
	// Display is the text shown in the player column.
	Display() string
	isPlayerIdentity()
}

// RegisteredUser is a player with a speedrun.com account.
type RegisteredUser struct {
	ID string
}

func (u RegisteredUser) Display() string { return u.ID }

func (RegisteredUser) isPlayerIdentity() {}

func (u RegisteredUser) MarshalJSON() ([]byte, error) {
	return json.Marshal(identityJSON{Rel: "user", ID: u.ID})
}

func (u RegisteredUser) MarshalYAML() (interface{}, error) {
	return identityJSON{Rel: "user", ID: u.ID}, nil
}

// GuestName is a player credited by free-text name only.
type GuestName struct {
	Name string
}

func (g GuestName) Display() string { return g.Name }

func (GuestName) isPlayerIdentity() {}

func (g GuestName) MarshalJSON() ([]byte, error) {
	return json.Marshal(identityJSON{Rel: "guest", Name: g.Name})
}

func (g GuestName) MarshalYAML() (interface{}, error) {
	return identityJSON{Rel: "guest", Name: g.Name}, nil
}

type identityJSON struct {
	Rel  string `json:"rel" yaml:"rel"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Run is a single submitted playthrough, flattened from the records payload.
type Run struct {
	ID          string           `json:"id" yaml:"id"`
	Weblink     string           `json:"weblink" yaml:"weblink"`
	VideoURI    string           `json:"video_uri,omitempty" yaml:"video_uri,omitempty"`
	Duration    ParsedDuration   `json:"duration" yaml:"duration"`
	SubmittedAt string           `json:"submitted_at,omitempty" yaml:"submitted_at,omitempty"`
	Players     []PlayerIdentity `json:"players" yaml:"players"`
}

// Player returns the primary credit for the run: its first-listed player.
func (r Run) Player() PlayerIdentity {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[0]
}

// LeaderboardEntry pairs an upstream placement with its run.
type LeaderboardEntry struct {
	Place uint `json:"place" yaml:"place"`
	Run   Run  `json:"run" yaml:"run"`
}

// CategoryLeaderboard is the unit handed to rendering. Entries keep the
// upstream order (ascending placement) and are never resorted.
type CategoryLeaderboard struct {
	GameID       string             `json:"game_id" yaml:"game_id"`
	CategoryID   string             `json:"category_id" yaml:"category_id"`
	CategoryName string             `json:"category_name" yaml:"category_name"`
	Weblink      string             `json:"weblink,omitempty" yaml:"weblink,omitempty"`
	Entries      []LeaderboardEntry `json:"entries" yaml:"entries"`
}

// Player is the pass-through shape of the users endpoint.
type Player struct {
	ID                string `json:"id" yaml:"id"`
	InternationalName string `json:"international_name" yaml:"international_name"`
	JapaneseName      string `json:"japanese_name,omitempty" yaml:"japanese_name,omitempty"`
	Weblink           string `json:"weblink,omitempty" yaml:"weblink,omitempty"`
}
