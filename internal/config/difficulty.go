package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// Unknown values return "" so the loaded config is used unchanged.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyRushPreset modifies the config based on a difficulty preset.
func ApplyRushPreset(cfg *RushConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Speed.RampEnabled = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Speed.Threshold = 750
	case DifficultyHard:
		cfg.Speed.Initial = 7.5
		cfg.Spawn.ObstacleFloorMs = 450
	}
}

// Validate clamps out-of-range values into the playable envelope.
// Non-positive durations and sizes fall back to the defaults.
func (c *RushConfig) Validate() {
	def := DefaultRushConfig()

	c.Speed.Initial = clampF(c.Speed.Initial, MinSpeed, MaxSpeed)
	c.Speed.Max = clampF(c.Speed.Max, c.Speed.Initial, MaxSpeed)
	if c.Speed.Step < 0 {
		c.Speed.Step = 0
	}
	if c.Speed.Threshold <= 0 {
		c.Speed.Threshold = def.Speed.Threshold
	}
	if c.Speed.BoostMultiplier < 1 {
		c.Speed.BoostMultiplier = def.Speed.BoostMultiplier
	}

	if c.Player.Lives < 1 || c.Player.Lives > MaxLives {
		c.Player.Lives = MaxLives
	}

	c.Spawn.PairChance = clampF(c.Spawn.PairChance, 0, 1)
	if c.Spawn.ObstacleIntervalMs <= 0 {
		c.Spawn.ObstacleIntervalMs = def.Spawn.ObstacleIntervalMs
	}
	if c.Spawn.ObstacleDecayMs < 0 {
		c.Spawn.ObstacleDecayMs = 0
	}
	if c.Spawn.ObstacleFloorMs <= 0 {
		c.Spawn.ObstacleFloorMs = def.Spawn.ObstacleFloorMs
	}
	if c.Spawn.PowerUpIntervalMs <= 0 {
		c.Spawn.PowerUpIntervalMs = def.Spawn.PowerUpIntervalMs
	}
	if c.Spawn.ShieldWeight < 0 {
		c.Spawn.ShieldWeight = 0
	}
	if c.Spawn.BoostWeight < 0 {
		c.Spawn.BoostWeight = 0
	}
	if c.Spawn.CoinWeight < 0 {
		c.Spawn.CoinWeight = 0
	}
	if c.Spawn.ShieldWeight+c.Spawn.BoostWeight+c.Spawn.CoinWeight == 0 {
		c.Spawn.ShieldWeight = def.Spawn.ShieldWeight
		c.Spawn.BoostWeight = def.Spawn.BoostWeight
		c.Spawn.CoinWeight = def.Spawn.CoinWeight
	}

	if c.Effects.BoostDurationMs <= 0 {
		c.Effects.BoostDurationMs = def.Effects.BoostDurationMs
	}
	if c.Effects.ComboHintMs <= 0 {
		c.Effects.ComboHintMs = def.Effects.ComboHintMs
	}

	if c.Scoring.CoinPoints < 0 {
		c.Scoring.CoinPoints = 0
	}
	if c.Scoring.CoinCount < 0 {
		c.Scoring.CoinCount = 0
	}
	if c.Scoring.ComboFactor < 0 {
		c.Scoring.ComboFactor = 0
	}

	if c.Timing.ReferenceFPS <= 0 {
		c.Timing.ReferenceFPS = def.Timing.ReferenceFPS
	}

	t := &c.Track
	if t.LaneWidth <= 0 {
		t.LaneWidth = def.Track.LaneWidth
	}
	if t.Length <= 0 {
		t.Length = def.Track.Length
	}
	if t.PlayerHeight <= 0 {
		t.PlayerHeight = def.Track.PlayerHeight
	}
	if t.PowerUpSize <= 0 {
		t.PowerUpSize = def.Track.PowerUpSize
	}
	if t.HitboxFactor <= 0 {
		t.HitboxFactor = def.Track.HitboxFactor
	}
	if t.CarHeight <= 0 {
		t.CarHeight = def.Track.CarHeight
	}
	if t.BarrierHeight <= 0 {
		t.BarrierHeight = def.Track.BarrierHeight
	}
	if t.TruckHeight <= 0 {
		t.TruckHeight = def.Track.TruckHeight
	}
	if t.ObstacleMargin < 0 {
		t.ObstacleMargin = 0
	}
	if t.PowerUpMargin < 0 {
		t.PowerUpMargin = 0
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
