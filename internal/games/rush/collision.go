package rush

import (
	"time"

	"github.com/vovakirdan/neon-rush/internal/core"
)

// playerY returns the top of the player sprite on the track.
func (e *Engine) playerY() float64 {
	t := e.cfg.Track
	return t.Length - t.PlayerOffset - t.PlayerHeight
}

// PlayerBox returns the player hitbox: a band the height of the player
// sprite, extending HitboxFactor lane widths either side of the lane center.
func (e *Engine) PlayerBox() core.RectF {
	t := e.cfg.Track
	half := t.HitboxFactor * t.LaneWidth
	return core.NewRectF(e.lane.X(t.LaneWidth)-half, e.playerY(), 2*half, t.PlayerHeight)
}

// Entities are tested as zero-width columns at their lane center, so a
// horizontal overlap means the lane offset is below the hitbox half-width.
func (e *Engine) obstacleBox(o Obstacle) core.RectF {
	return core.NewRectF(o.Lane.X(e.cfg.Track.LaneWidth), o.Pos, 0, o.Height)
}

func (e *Engine) powerUpBox(p PowerUp) core.RectF {
	return core.NewRectF(p.Lane.X(e.cfg.Track.LaneWidth), p.Pos, 0, e.cfg.Track.PowerUpSize)
}

// resolveCollisions applies every overlap in insertion order. Each
// overlapping obstacle is resolved on its own, so one tick can cost more
// than one life. Resolution stops as soon as the run is over.
func (e *Engine) resolveCollisions(now time.Duration) {
	box := e.PlayerBox()

	kept := e.obstacles[:0]
	for i, o := range e.obstacles {
		if e.state == StateGameOver {
			kept = append(kept, e.obstacles[i:]...)
			break
		}
		if !box.Intersects(e.obstacleBox(o)) {
			kept = append(kept, o)
			continue
		}
		e.hitObstacle(now)
	}
	clear(e.obstacles[len(kept):])
	e.obstacles = kept

	if e.state == StateGameOver {
		return
	}

	keptPU := e.powerUps[:0]
	var collected []PowerUp
	for _, p := range e.powerUps {
		if box.Intersects(e.powerUpBox(p)) {
			collected = append(collected, p)
			continue
		}
		keptPU = append(keptPU, p)
	}
	clear(e.powerUps[len(keptPU):])
	e.powerUps = keptPU

	for _, p := range collected {
		e.collect(p, now)
	}
}

// hitObstacle applies one obstacle contact. The obstacle is always removed.
func (e *Engine) hitObstacle(now time.Duration) {
	hint := e.cfg.Effects.ComboHint()
	if e.effects.Absorb(now, hint) {
		e.emit(Event{Type: EventComboTriggered, Value: e.effects.Combo, HintUntil: now + hint})
		return
	}

	e.effects.BreakCombo()
	if e.lives > 0 {
		e.lives--
	}
	e.emit(Event{Type: EventLifeLost, Value: e.lives})
	if e.lives == 0 {
		e.state = StateGameOver
	}
}

// collect applies a power-up effect exactly once.
func (e *Engine) collect(p PowerUp, now time.Duration) {
	switch p.Kind {
	case PowerUpShield:
		e.effects.ActivateShield()
	case PowerUpBoost:
		e.effects.ActivateBoost(now, e.cfg.Effects.BoostDuration())
	case PowerUpCoin:
		e.score.AddCoin(e.cfg.Scoring.CoinPoints, e.cfg.Scoring.CoinCount)
	}
	e.emit(Event{Type: EventPowerUpCollected, PowerUp: p.Kind})
}
