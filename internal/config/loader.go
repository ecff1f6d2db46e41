package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const rushFile = "rush.yaml"

// LoadRush loads Neon Rush configuration.
// Search order: customPath -> ~/.neonrush/configs/rush.yaml -> ./configs/rush.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names. The result is always validated.
func LoadRush(customPath string) (RushConfig, error) {
	cfg := DefaultRushConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultRushConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(rushFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", rushFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultRushConfig()
	if err := yaml.Unmarshal(defaultRushYAML, &embedded); err != nil {
		return DefaultRushConfig(), nil // Fallback to hardcoded if embed fails
	}
	embedded.Validate()
	return embedded, nil
}

// tryLoad reads an implicit config location, ignoring any failure.
func tryLoad(path string) (RushConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RushConfig{}, false
	}
	cfg := DefaultRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RushConfig{}, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonrush", "configs", filename)
}

// Marshal renders a config as YAML.
func Marshal(cfg RushConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
