package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockfall/internal/config"
	"github.com/vovakirdan/tui-blockfall/internal/core"
	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall"
	"github.com/vovakirdan/tui-blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start Blockfall with a title menu.

Pick Play to start a game or History to browse recorded sessions.
After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  blockfall menu
  blockfall menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := cliLogger()

	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return err
	}
	blockfall.SetConfig(&cfg)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		choice, updated, err := tui.RunMenu(rt)
		if err != nil {
			return err
		}
		rt = updated

		switch choice {
		case tui.ChoicePlay:
			if err := playGame(store, rt); err != nil {
				logger.Error("game failed", "error", err)
			}
		case tui.ChoiceHistory:
			if store == nil {
				logger.Warn("no sessions database, history unavailable")
				continue
			}
			if err := tui.RunHistory(store, blockfall.ID, maxHistory, rt.ScreenW, rt.ScreenH); err != nil {
				logger.Error("history failed", "error", err)
			}
		default:
			return nil
		}
	}
}
