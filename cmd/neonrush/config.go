package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-rush/internal/config"
)

var (
	flagDefaults         bool
	flagConfigPath       string
	flagConfigDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML, after the search
order, the difficulty preset and validation have been applied.

Search order:
  1. --config path
  2. ~/.neonrush/configs/rush.yaml
  3. ./configs/rush.yaml
  4. built-in defaults

Examples:
  neonrush config
  neonrush config --difficulty hard
  neonrush config --defaults > ~/.neonrush/configs/rush.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML")
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadRush(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagConfigDifficulty != "" {
		preset := config.ParsePreset(flagConfigDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagConfigDifficulty)
			os.Exit(1)
		}
		config.ApplyRushPreset(&cfg, preset)
		cfg.Validate()
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing to do if stdout is gone
	os.Stdout.Write(out)
}
