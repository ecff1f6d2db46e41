package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/games/rush"
	"github.com/vovakirdan/neon-rush/internal/platform/spectate"
	"github.com/vovakirdan/neon-rush/internal/platform/tui"
	"github.com/vovakirdan/neon-rush/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Neon Rush",
	Long: `Start a run in the given mode (default: rush).

Controls:
  Left/A/H     - Move one lane left
  Right/D/L    - Move one lane right
  P/Esc        - Pause / resume
  Space/Enter  - Pause, resume, or restart after game over
  R            - Restart after game over
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Speed ramps up every 750m instead of 500m
  normal - Configured values
  hard   - Start at speed 7.5, obstacles as often as every 450ms
  fixed  - Speed never ramps up

Spectating:
  --spectate :8080 serves msgpack snapshots of the run to websocket
  viewers at ws://<host>:8080/spectate.

Examples:
  neonrush play
  neonrush play rush_fixed
  neonrush play --difficulty hard
  neonrush play --config ./my-rush.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "rush"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'neonrush list' to see available modes.")
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagConfig != "" {
		if _, err := config.LoadRush(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	rush.SetConfigPath(flagConfig)
	rush.SetDifficultyPreset(flagDifficulty)
	rush.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	ctx, cancel := context.WithCancel(context.Background())
	var pub tui.Publisher
	if flagSpectate != "" {
		hub, stop, spErr := startSpectator(ctx, flagSpectate, logger)
		if spErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", spErr)
			os.Exit(1)
		}
		defer stop()
		pub = hub
	}

	runErr := tui.Run(game, store, runtimeConfig(), pub)

	cancel()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startSpectator serves the hub at /spectate on addr. The returned stop
// function shuts the HTTP server down.
func startSpectator(ctx context.Context, addr string, logger *log.Logger) (*spectate.Hub, func(), error) {
	hub := spectate.NewHub(logger.WithPrefix("spectate"))
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/spectate", hub)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Surface immediate bind failures before the UI takes the terminal.
	select {
	case err := <-errCh:
		return nil, nil, fmt.Errorf("spectator server: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	logger.Info("spectator feed listening", "addr", addr)
	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		//nolint:errcheck // Process is exiting
		srv.Shutdown(shutdownCtx)
	}
	return hub, stop, nil
}
