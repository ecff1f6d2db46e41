package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-rush/internal/games/rush"
	"github.com/vovakirdan/neon-rush/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive launcher",
	Long: `Start Neon Rush with a mode picker and scoreboard.

Pause or finish a run and press B to return to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right      - Choose difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  neonrush menu
  neonrush menu --fps 30
  neonrush menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()
	rush.SetLogger(logger)

	store := openStore(logger)
	err := tui.RunSession(store, runtimeConfig(), logger, nil)
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
