// Package rush implements Neon Rush, a three-lane endless runner.
//
// The Engine is a deterministic simulation: it consumes abstract commands
// and wall-time advances, and exposes read-only snapshots plus events.
// Game adapts the Engine to the platform registry, screen and input.
package rush

import "github.com/vovakirdan/neon-rush/internal/core"

// Lane is one of the three discrete tracks. Values are lane offsets
// relative to the center lane, so Lane * laneWidth is the lane's x.
type Lane int8

const (
	LaneLeft   Lane = -1
	LaneCenter Lane = 0
	LaneRight  Lane = 1
)

// Lanes lists every lane, left to right.
var Lanes = [...]Lane{LaneLeft, LaneCenter, LaneRight}

// Shift returns the lane delta steps away, clamped to the track.
func (l Lane) Shift(delta int) Lane {
	return Lane(core.Clamp(int(l)+delta, int(LaneLeft), int(LaneRight)))
}

// Index returns the lane position 0..2 counted from the left.
func (l Lane) Index() int {
	return int(l) - int(LaneLeft)
}

// X returns the lane center in track units.
func (l Lane) X(laneWidth float64) float64 {
	return float64(l) * laneWidth
}

// Valid reports whether l is one of the three lanes.
func (l Lane) Valid() bool {
	return l >= LaneLeft && l <= LaneRight
}

func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneCenter:
		return "center"
	case LaneRight:
		return "right"
	default:
		return "invalid"
	}
}
