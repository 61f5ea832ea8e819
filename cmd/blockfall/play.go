package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockfall/internal/config"
	"github.com/vovakirdan/tui-blockfall/internal/core"
	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall"
	"github.com/vovakirdan/tui-blockfall/internal/platform/tui"
	"github.com/vovakirdan/tui-blockfall/internal/registry"
	"github.com/vovakirdan/tui-blockfall/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Blockfall.

Controls:
  Left/A, Right/D  - Shift the piece
  Up/W             - Rotate clockwise
  Down/S           - Drop one row now
  P/Space          - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

The board size, gravity period and piece colors come from the config
file; see 'blockfall config'.

Examples:
  blockfall play
  blockfall play --fps 30
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := cliLogger()

	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return err
	}
	blockfall.SetConfig(&cfg)
	logger.Debug("config loaded", "rows", cfg.Board.Rows, "columns", cfg.Board.Columns,
		"gravity_ms", cfg.Gravity.PeriodMS)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return playGame(store, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
}

// playGame runs one TUI game session until the player quits.
func playGame(store *storage.Store, rt core.RuntimeConfig) error {
	game, err := registry.Create(blockfall.ID)
	if err != nil {
		return err
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := tui.Run(game, store, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
