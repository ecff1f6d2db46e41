// neonrush is a lane-based endless runner for the terminal.
//
// Usage:
//
//	neonrush list             - List game modes
//	neonrush play [mode]      - Play a mode directly (default: rush)
//	neonrush menu             - Start the interactive launcher
//	neonrush serve            - Start SSH server for remote play
//	neonrush scores [mode]    - Show recorded runs and the best score
//	neonrush config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.neonrush/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/games/rush"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrush",
	Short: "Neon Rush - a three-lane endless runner in your terminal",
	Long: `Neon Rush is a three-lane endless runner. Dodge cars, barriers and
trucks, grab shields, boosts and coins, and chase the best score.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive launcher with scoreboard
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the effective configuration

Examples:
  neonrush play
  neonrush play rush_fixed
  neonrush play --difficulty hard --spectate :8080
  neonrush serve --ssh :2222
  neonrush scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// fileLogger returns a logger for interactive commands. The terminal is
// owned by the UI, so logs only go to --log when given.
func fileLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}

	//nolint:errcheck // OpenFile reports a missing directory
	os.MkdirAll(filepath.Dir(flagLogPath), 0o755)
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonrush",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// openStore opens the score database and installs it as the best-score
// keeper. Returns nil when the database cannot be opened; play still works.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	rush.SetScoreKeeper(store)
	return store
}
