package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-rush/internal/games/rush"
	"github.com/vovakirdan/neon-rush/internal/platform/tui"
	"github.com/vovakirdan/neon-rush/internal/registry"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs for a mode (default: rush) and the best score
shared by all modes.

Examples:
  neonrush scores
  neonrush scores rush_fixed
  neonrush scores --interactive
  neonrush scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the mode's run history and the best score")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the scoreboard UI")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "rush"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'neonrush list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearScores(store, gameID)
	case flagInteractive:
		cfg := runtimeConfig()
		_, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	default:
		err = printScores(store, gameID)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	if err := store.ClearBestScore(rush.BestScoreKey); err != nil {
		return err
	}
	fmt.Printf("Cleared runs for %s and the best score.\n", gameID)
	return nil
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Top Runs - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'neonrush play %s' to set the first score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %s\n", "Rank", "Score", "Distance", "Coins", "Date")
		fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %s\n", "----", "-----", "--------", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-8d  %-10s  %-5d  %s\n",
				i+1, entry.Score, fmt.Sprintf("%.0fm", entry.Distance), entry.Coins,
				entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	best, err := store.BestScore(rush.BestScoreKey)
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)

	if stats, statErr := store.GetGameStats(gameID); statErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Runs: %d  Avg: %.0f  Total distance: %.0fm  Coins: %d\n",
			stats.GamesCount, stats.AvgScore, stats.TotalDistance, stats.TotalCoins)
	}
	return nil
}
