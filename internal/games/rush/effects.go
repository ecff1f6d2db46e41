package rush

import "time"

// Boost is a timed speed multiplier. ExpiresAt is simulation time.
type Boost struct {
	Active    bool
	ExpiresAt time.Duration
}

// Effects owns the transient shield, boost and combo state.
// Deadlines are simulation-time stamps checked by Expire each tick.
type Effects struct {
	Shield         bool
	Boost          Boost
	Combo          int
	ComboHintUntil time.Duration // Combo banner deadline, zero when hidden
}

// ActivateShield arms the shield. Shields do not stack.
func (e *Effects) ActivateShield() {
	e.Shield = true
}

// ActivateBoost starts the boost or resets its deadline if already active.
func (e *Effects) ActivateBoost(now, duration time.Duration) {
	e.Boost = Boost{Active: true, ExpiresAt: now + duration}
}

// Absorb consumes the shield for one hit and bumps the combo.
// Returns false when no shield was armed.
func (e *Effects) Absorb(now, hint time.Duration) bool {
	if !e.Shield {
		return false
	}
	e.Shield = false
	e.Combo++
	e.ComboHintUntil = now + hint
	return true
}

// BreakCombo resets the combo after an unshielded hit.
func (e *Effects) BreakCombo() {
	e.Combo = 0
}

// Boosting reports whether the boost applies at simulation time now.
func (e *Effects) Boosting(now time.Duration) bool {
	return e.Boost.Active && now < e.Boost.ExpiresAt
}

// ComboHintVisible reports whether the combo banner should be shown.
func (e *Effects) ComboHintVisible(now time.Duration) bool {
	return e.ComboHintUntil > 0 && now < e.ComboHintUntil
}

// Expire clears every deadline that has passed.
func (e *Effects) Expire(now time.Duration) {
	if e.Boost.Active && now >= e.Boost.ExpiresAt {
		e.Boost = Boost{}
	}
	if e.ComboHintUntil > 0 && now >= e.ComboHintUntil {
		e.ComboHintUntil = 0
	}
}

// SpeedMultiplier returns the boost factor in effect at now.
func (e *Effects) SpeedMultiplier(now time.Duration, boost float64) float64 {
	if e.Boosting(now) {
		return boost
	}
	return 1
}

// ScoreMultiplier returns the combo factor: 1 without a combo,
// combo*factor+1 otherwise.
func (e *Effects) ScoreMultiplier(factor float64) float64 {
	if e.Combo == 0 {
		return 1
	}
	return float64(e.Combo)*factor + 1
}
