package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/games/zigzag"
	"github.com/vovakirdan/zigzag/internal/platform/tui"
	"github.com/vovakirdan/zigzag/internal/registry"
	"github.com/vovakirdan/zigzag/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Enter/Click  - Start, turn, restart
  M                  - Toggle sound
  P                  - Toggle performance overlay
  Tab                - High scores (outside of a run)
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower start, slower speed-up, tiles linger longer
  normal - Config values as-is
  hard   - Faster start, faster speed-up, tiles crumble sooner
  fixed  - No speed-up

Examples:
  zigzag play
  zigzag play --difficulty easy
  zigzag play --seed 42
  zigzag play --config ./my-zigzag.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "zigzag")
	if err != nil {
		return err
	}
	defer closeLog()

	if flagConfig != "" {
		if _, err := config.LoadZigzag(flagConfig); err != nil {
			return err
		}
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	zigzag.SetConfigPath(flagConfig)
	zigzag.SetDifficultyPreset(flagDifficulty)
	zigzag.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without persistence", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		zigzag.SetStats(store.Stats(gameID))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting run", "fps", cfg.TickRate, "seed", cfg.Seed, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
