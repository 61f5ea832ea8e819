package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall"
	"github.com/vovakirdan/tui-blockfall/internal/platform/tui"
	"github.com/vovakirdan/tui-blockfall/internal/registry"
	"github.com/vovakirdan/tui-blockfall/internal/storage"
)

// maxHistory is how many sessions the interactive views load.
const maxHistory = 100

var (
	flagHistoryGame  string
	flagHistoryLimit int
	flagHistoryBest  bool
	flagInteractive  bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions",
	Long: `List finished Blockfall sessions: lines cleared, pieces locked,
ticks played and how the session ended.

Examples:
  blockfall history
  blockfall history --best --limit 5
  blockfall history --interactive
  blockfall history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", blockfall.ID, "Game ID the sessions were recorded under")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryBest, "best", false, "Order by lines cleared instead of date")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse sessions in a table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded sessions")
}

// gameTitle checks that id names a registered game and returns its title.
func gameTitle(id string) (string, error) {
	if !registry.Exists(id) {
		ids := make([]string, 0)
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
		return "", fmt.Errorf("unknown game %q (available: %s)", id, strings.Join(ids, ", "))
	}
	for _, info := range registry.List() {
		if info.ID == id {
			return info.Title, nil
		}
	}
	return id, nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	gameID := flagHistoryGame
	title, err := gameTitle(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(gameID); err != nil {
			return err
		}
		cliLogger().Info("sessions cleared", "db", flagDBPath)
		return nil
	}

	if flagInteractive {
		width, height := terminalSize()
		return tui.RunHistory(store, gameID, max(flagHistoryLimit, maxHistory), width, height)
	}

	var sessions []storage.SessionRecord
	if flagHistoryBest {
		sessions, err = store.BestSessions(gameID, flagHistoryLimit)
	} else {
		sessions, err = store.RecentSessions(gameID, flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if flagHistoryBest {
		fmt.Printf("Best Sessions - %s\n", title)
	} else {
		fmt.Printf("Recent Sessions - %s\n", title)
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'blockfall play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-5s  %-6s  %-6s  %-8s  %-11s  %s\n", "#", "Lines", "Pieces", "Ticks", "Ended", "Date")
	fmt.Printf("  %-5s  %-6s  %-6s  %-8s  %-11s  %s\n", "-", "-----", "------", "-----", "-----", "----")
	for _, s := range sessions {
		row := tui.SessionRow(s)
		fmt.Printf("  %-5s  %-6s  %-6s  %-8s  %-11s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Sessions: %d  Best: %d lines  Average: %.1f lines  Total pieces: %d\n",
			stats.Sessions, stats.MostLines, stats.AvgLines, stats.TotalPieces)
	}
	return nil
}
