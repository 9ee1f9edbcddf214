// Package render formats normalized leaderboards for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/albapepper/speedrun-lb/internal/provider"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown format %q (table, json, yaml)", s)
}

var (
	titleColor   = color.New(color.FgGreen, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
)

// gameLeaderboards is the document shape for json and yaml output.
type gameLeaderboards struct {
	Game         provider.GameSummary           `json:"game" yaml:"game"`
	Leaderboards []provider.CategoryLeaderboard `json:"leaderboards" yaml:"leaderboards"`
}

// Leaderboards writes every board of a game.
func Leaderboards(w io.Writer, game provider.GameSummary, boards []provider.CategoryLeaderboard, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, gameLeaderboards{Game: game, Leaderboards: boards})
	case FormatYAML:
		return writeYAML(w, gameLeaderboards{Game: game, Leaderboards: boards})
	}

	titleColor.Fprintf(w, "Runs for %s\n\n", game.DisplayName)
	if len(boards) == 0 {
		fmt.Fprintln(w, "No leaderboards in this category kind.")
		return nil
	}
	for _, b := range boards {
		headingColor.Fprintf(w, "Category: %s\n", b.CategoryName)
		if err := Table(w, b); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Table writes one board as aligned columns.
func Table(w io.Writer, board provider.CategoryLeaderboard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Place\tRun ID\tPlayer\tVideo\tTime")
	for _, e := range board.Entries {
		player := ""
		if p := e.Run.Player(); p != nil {
			player = p.Display()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.Place, e.Run.ID, player, e.Run.VideoURI, e.Run.Duration)
	}
	return tw.Flush()
}

// Player writes a player profile.
func Player(w io.Writer, p provider.Player, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, p)
	case FormatYAML:
		return writeYAML(w, p)
	}

	titleColor.Fprintf(w, "%s\n", p.InternationalName)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", p.ID)
	if p.JapaneseName != "" {
		fmt.Fprintf(tw, "Japanese name\t%s\n", p.JapaneseName)
	}
	if p.Weblink != "" {
		fmt.Fprintf(tw, "Profile\t%s\n", p.Weblink)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
