// Package config provides YAML-based game configuration loading and
// difficulty presets for Neon Rush.
package config

import "time"

// RushConfig contains every tunable of the lane runner simulation.
// Track distances are in track units; speeds are track units per
// reference frame (see TimingConfig).
type RushConfig struct {
	Track   TrackConfig   `yaml:"track"`
	Speed   SpeedConfig   `yaml:"speed"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Effects EffectsConfig `yaml:"effects"`
	Scoring ScoringConfig `yaml:"scoring"`
	Player  PlayerConfig  `yaml:"player"`
	Timing  TimingConfig  `yaml:"timing"`
}

// TrackConfig describes the geometry of the visible track.
type TrackConfig struct {
	LaneWidth      float64 `yaml:"lane_width"`
	Length         float64 `yaml:"length"`                  // Visible track length, spawn edge at 0
	PlayerOffset   float64 `yaml:"player_offset"`           // Gap between player sprite and near edge
	PlayerHeight   float64 `yaml:"player_height"`           // Player sprite height (vertical hitbox band)
	PowerUpSize    float64 `yaml:"powerup_size"`            // Power-up sprite height
	HitboxFactor   float64 `yaml:"hitbox_factor"`           // Horizontal half-width as a fraction of lane width
	ObstacleMargin float64 `yaml:"obstacle_despawn_margin"` // Distance past the near edge before removal
	PowerUpMargin  float64 `yaml:"powerup_despawn_margin"`
	CarHeight      float64 `yaml:"car_height"`
	BarrierHeight  float64 `yaml:"barrier_height"`
	TruckHeight    float64 `yaml:"truck_height"`
}

// SpeedConfig defines base speed, its ramp-up and the boost multiplier.
type SpeedConfig struct {
	Initial         float64 `yaml:"initial"`
	Max             float64 `yaml:"max"`
	Step            float64 `yaml:"step"`      // Added each time distance crosses a threshold multiple
	Threshold       float64 `yaml:"threshold"` // Distance between ramp-ups
	RampEnabled     bool    `yaml:"ramp_enabled"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// SpawnConfig defines the two independent spawn cadences.
type SpawnConfig struct {
	ObstacleIntervalMs int     `yaml:"obstacle_interval_ms"`
	ObstacleDecayMs    int     `yaml:"obstacle_decay_ms"` // Interval reduction per speed unit
	ObstacleFloorMs    int     `yaml:"obstacle_floor_ms"`
	PairChance         float64 `yaml:"pair_chance"` // Probability of a two-obstacle batch
	PowerUpIntervalMs  int     `yaml:"powerup_interval_ms"`
	ShieldWeight       int     `yaml:"shield_weight"`
	BoostWeight        int     `yaml:"boost_weight"`
	CoinWeight         int     `yaml:"coin_weight"`
}

// EffectsConfig defines transient effect durations.
type EffectsConfig struct {
	BoostDurationMs int `yaml:"boost_duration_ms"`
	ComboHintMs     int `yaml:"combo_hint_ms"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	CoinPoints  int     `yaml:"coin_points"`
	CoinCount   int     `yaml:"coin_count"`
	ComboFactor float64 `yaml:"combo_factor"` // multiplier = combo*factor + 1 while combo > 0
}

// PlayerConfig defines the player's starting resources.
type PlayerConfig struct {
	Lives int `yaml:"lives"`
}

// TimingConfig anchors per-frame speeds to real time.
type TimingConfig struct {
	ReferenceFPS int `yaml:"reference_fps"` // Frame rate at which one tick advances exactly one speed unit
}

// ObstacleInterval returns the base obstacle cadence.
func (s SpawnConfig) ObstacleInterval() time.Duration {
	return time.Duration(s.ObstacleIntervalMs) * time.Millisecond
}

// ObstacleDecay returns the cadence reduction per unit of speed.
func (s SpawnConfig) ObstacleDecay() time.Duration {
	return time.Duration(s.ObstacleDecayMs) * time.Millisecond
}

// ObstacleFloor returns the shortest allowed obstacle cadence.
func (s SpawnConfig) ObstacleFloor() time.Duration {
	return time.Duration(s.ObstacleFloorMs) * time.Millisecond
}

// PowerUpInterval returns the fixed power-up cadence.
func (s SpawnConfig) PowerUpInterval() time.Duration {
	return time.Duration(s.PowerUpIntervalMs) * time.Millisecond
}

// BoostDuration returns how long a boost lasts.
func (e EffectsConfig) BoostDuration() time.Duration {
	return time.Duration(e.BoostDurationMs) * time.Millisecond
}

// ComboHint returns how long the combo banner stays visible.
func (e EffectsConfig) ComboHint() time.Duration {
	return time.Duration(e.ComboHintMs) * time.Millisecond
}

// FrameDuration returns the duration of one reference frame.
func (t TimingConfig) FrameDuration() time.Duration {
	return time.Second / time.Duration(t.ReferenceFPS)
}
