// Command srlb browses speedrun.com leaderboards from the terminal.
//
// Usage:
//
//	srlb game --name "super mario 64"
//	srlb game --name celeste --pick 1 --kind per-level --format json
//	srlb player --id 0jm34we8
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/speedrun-lb/internal/config"
	"github.com/albapepper/speedrun-lb/internal/prompt"
	"github.com/albapepper/speedrun-lb/internal/provider"
	"github.com/albapepper/speedrun-lb/internal/provider/speedrun"
	"github.com/albapepper/speedrun-lb/internal/render"
)

var debug bool

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "srlb",
		Short:        "CLI for exploring speedrun.com leaderboards",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose logging")

	root.AddCommand(gameCmd())
	root.AddCommand(playerCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// game command
// --------------------------------------------------------------------------

func gameCmd() *cobra.Command {
	var (
		name   string
		pick   int
		kind   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Search a game and show its leaderboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			catKind, err := provider.ParseCategoryKind(kind)
			if err != nil {
				return err
			}
			outFormat, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			return runCLI(func(ctx context.Context, h *speedrun.Handler, logger *slog.Logger) error {
				games, err := h.SearchGames(ctx, name)
				if err != nil {
					return err
				}

				game, err := chooseGame(games, pick, os.Stdin, os.Stderr)
				if err != nil {
					return err
				}
				logger.Info("Selected game", "game", game.DisplayName, "id", game.ID, "abbreviation", game.Abbreviation)

				boards, err := h.GetLeaderboards(ctx, game, catKind)
				if err != nil {
					return err
				}
				return render.Leaderboards(cmd.OutOrStdout(), game, boards, outFormat)
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Game name")
	cmd.Flags().IntVar(&pick, "pick", 0, "Pick the Nth search result instead of prompting (1-based)")
	cmd.Flags().StringVar(&kind, "kind", string(provider.KindPerGame), "Category kind (per-game, per-level, misc)")
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatTable), "Output format (table, json, yaml)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// chooseGame applies --pick when set, otherwise prompts on in/out.
func chooseGame(games []provider.GameSummary, pick int, in io.Reader, out io.Writer) (provider.GameSummary, error) {
	if pick != 0 {
		if pick < 1 || pick > len(games) {
			return provider.GameSummary{}, fmt.Errorf("--pick %d out of range: %d games found", pick, len(games))
		}
		return games[pick-1], nil
	}

	labels := make([]string, len(games))
	for i, g := range games {
		labels[i] = g.Label()
	}
	idx, err := prompt.Select(in, out, "Select a game:", labels)
	if err != nil {
		return provider.GameSummary{}, err
	}
	return games[idx], nil
}

// --------------------------------------------------------------------------
// player command
// --------------------------------------------------------------------------

func playerCmd() *cobra.Command {
	var (
		id     string
		format string
	)
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Show a speedrun.com user",
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			return runCLI(func(ctx context.Context, h *speedrun.Handler, logger *slog.Logger) error {
				player, err := h.GetPlayer(ctx, id)
				if err != nil {
					return err
				}
				logger.Debug("Fetched player", "player", fmt.Sprintf("%+v", player))
				return render.Player(cmd.OutOrStdout(), player, outFormat)
			})
		},
	}
	cmd.Flags().StringVarP(&id, "id", "i", "", "Player ID")
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatTable), "Output format (table, json, yaml)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runCLI handles config loading, client construction, and context cancellation.
func runCLI(fn func(ctx context.Context, h *speedrun.Handler, logger *slog.Logger) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelInfo
	if debug || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := speedrun.NewClient(speedrun.ClientOptions{
		BaseURL:           cfg.SpeedrunBaseURL,
		UserAgent:         cfg.SpeedrunUserAgent,
		RequestsPerMinute: cfg.SpeedrunRequestsPerMinute,
		Timeout:           cfg.SpeedrunTimeout,
	}, logger)

	return fn(ctx, speedrun.NewHandler(client, cfg.RecordsTop, logger), logger)
}
