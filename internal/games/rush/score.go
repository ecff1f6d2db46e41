package rush

import "math"

// ScoreEngine accumulates distance, score and coins for one run.
// Each reference frame earns floor(speed*multiplier) points. Shorter or
// longer ticks earn a proportional share, and the leftover share carries
// into the next tick.
type ScoreEngine struct {
	Score    int
	Coins    int
	Distance float64

	carry float64
}

// Accrue adds one tick of travel: distance grows by speed*scale and
// score by floor(speed*multiplier) per reference frame.
func (s *ScoreEngine) Accrue(speed, multiplier, scale float64) {
	s.Distance += speed * scale

	pts := math.Floor(speed*multiplier)*scale + s.carry
	whole := math.Floor(pts)
	s.carry = pts - whole
	s.Score += int(whole)
}

// AddCoin credits a collected coin.
func (s *ScoreEngine) AddCoin(points, count int) {
	s.Score += points
	s.Coins += count
}

// DifficultyController raises base speed as distance accumulates.
type DifficultyController struct {
	initial   float64
	max       float64
	step      float64
	threshold float64
	enabled   bool

	speed     float64
	milestone int // Threshold multiples already rewarded
}

// NewDifficultyController creates a controller at its initial speed.
func NewDifficultyController(initial, maxSpeed, step, threshold float64, enabled bool) DifficultyController {
	d := DifficultyController{
		initial:   initial,
		max:       maxSpeed,
		step:      step,
		threshold: threshold,
		enabled:   enabled,
	}
	d.Reset()
	return d
}

// Reset returns to the initial speed.
func (d *DifficultyController) Reset() {
	d.speed = d.initial
	d.milestone = 0
}

// Speed returns the current base speed.
func (d *DifficultyController) Speed() float64 {
	return d.speed
}

// Update rewards every threshold multiple crossed since the last call,
// each exactly once, and reports whether speed changed.
func (d *DifficultyController) Update(distance float64) bool {
	if !d.enabled || d.threshold <= 0 {
		return false
	}
	m := int(math.Floor(distance / d.threshold))
	if m <= d.milestone {
		return false
	}
	crossed := m - d.milestone
	d.milestone = m

	prev := d.speed
	d.speed = math.Min(d.max, d.speed+float64(crossed)*d.step)
	return d.speed != prev
}
