package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// Hard limits every configuration is clamped into.
const (
	MinSpeed = 5.0
	MaxSpeed = 15.0
	MaxLives = 3
)

// DefaultRushConfig returns the built-in Neon Rush configuration.
// It mirrors defaults/rush.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		Track: TrackConfig{
			LaneWidth:      80,
			Length:         600,
			PlayerOffset:   20,
			PlayerHeight:   100,
			PowerUpSize:    50,
			HitboxFactor:   0.7,
			ObstacleMargin: 100,
			PowerUpMargin:  50,
			CarHeight:      80,
			BarrierHeight:  50,
			TruckHeight:    120,
		},
		Speed: SpeedConfig{
			Initial:         5,
			Max:             15,
			Step:            0.5,
			Threshold:       500,
			RampEnabled:     true,
			BoostMultiplier: 1.5,
		},
		Spawn: SpawnConfig{
			ObstacleIntervalMs: 1500,
			ObstacleDecayMs:    50,
			ObstacleFloorMs:    600,
			PairChance:         0.3,
			PowerUpIntervalMs:  5000,
			ShieldWeight:       20,
			BoostWeight:        20,
			CoinWeight:         60,
		},
		Effects: EffectsConfig{
			BoostDurationMs: 3000,
			ComboHintMs:     500,
		},
		Scoring: ScoringConfig{
			CoinPoints:  100,
			CoinCount:   1,
			ComboFactor: 0.5,
		},
		Player: PlayerConfig{
			Lives: 3,
		},
		Timing: TimingConfig{
			ReferenceFPS: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRushYAML
}
