package rush

import (
	"math"
	"slices"
	"time"
)

// Snapshot is a read-only copy of the run state for renderers and
// spectators. Entity slices are copies and may be kept by the caller.
type Snapshot struct {
	Tick  uint64        `msgpack:"tick"`
	Time  time.Duration `msgpack:"time"`
	State RunState      `msgpack:"state"`

	Lane     Lane    `msgpack:"lane"`
	Lives    int     `msgpack:"lives"`
	Score    int     `msgpack:"score"`
	Coins    int     `msgpack:"coins"`
	Distance float64 `msgpack:"distance"`
	Speed    float64 `msgpack:"speed"`     // Base speed
	EffSpeed float64 `msgpack:"eff_speed"` // Base speed with boost applied

	Shield    bool          `msgpack:"shield"`
	Boost     bool          `msgpack:"boost"`
	BoostLeft time.Duration `msgpack:"boost_left"`
	Combo     int           `msgpack:"combo"`
	ComboHint bool          `msgpack:"combo_hint"`

	BestScore int `msgpack:"best"`

	Obstacles []Obstacle `msgpack:"obstacles"`
	PowerUps  []PowerUp  `msgpack:"powerups"`
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	now := e.clock.Now()
	snap := Snapshot{
		Tick:  e.tick,
		Time:  now,
		State: e.state,

		Lane:     e.lane,
		Lives:    e.lives,
		Score:    e.score.Score,
		Coins:    e.score.Coins,
		Distance: e.score.Distance,
		Speed:    e.difficulty.Speed(),
		EffSpeed: e.EffectiveSpeed(),

		Shield:    e.effects.Shield,
		Boost:     e.effects.Boosting(now),
		Combo:     e.effects.Combo,
		ComboHint: e.effects.ComboHintVisible(now),

		BestScore: e.best,

		Obstacles: slices.Clone(e.obstacles),
		PowerUps:  slices.Clone(e.powerUps),
	}
	if snap.Boost {
		snap.BoostLeft = e.effects.Boost.ExpiresAt - now
	}
	return snap
}

// Entities returns every live entity ordered by id, which is spawn order.
func (snap *Snapshot) Entities() []Entity {
	out := make([]Entity, 0, len(snap.Obstacles)+len(snap.PowerUps))
	for _, o := range snap.Obstacles {
		out = append(out, o)
	}
	for _, p := range snap.PowerUps {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Entity) int {
		switch {
		case a.EntityID() < b.EntityID():
			return -1
		case a.EntityID() > b.EntityID():
			return 1
		}
		return 0
	})
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Time)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lane)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Distance)
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + boolBit(snap.Shield)
	h = h*31 + boolBit(snap.Boost)
	h = h*31 + uint64(snap.Combo) //#nosec G115 -- hash computation

	for _, o := range snap.Obstacles {
		h = h*31 + o.ID
		h = h*31 + uint64(o.Lane) //#nosec G115 -- hash computation
		h = h*31 + uint64(o.Kind)
		h = h*31 + math.Float64bits(o.Pos)
	}
	for _, p := range snap.PowerUps {
		h = h*31 + p.ID
		h = h*31 + uint64(p.Lane) //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Kind)
		h = h*31 + math.Float64bits(p.Pos)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
