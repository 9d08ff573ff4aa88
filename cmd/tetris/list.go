package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best score and number of games played.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional; the list works without a database.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Title", "Played", "Best")
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "----")

	for _, g := range games {
		played, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			played, best = s.GamesCount, s.HighScore
		}
		fmt.Printf("  %-*s  %-10s  %-6d  %d\n", maxIDLen, g.ID, g.Title, played, best)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play <id>' to play a game.")
}
