package rush

import "time"

// TickInput is the simulation advance produced by the Clock for one tick.
type TickInput struct {
	Elapsed time.Duration // Wall time consumed by this tick
	Now     time.Duration // Simulation time after the advance
	Scale   float64       // Elapsed expressed in reference frames
}

// Clock accumulates simulation time. It only advances when the engine
// ticks in the Playing state, so deadlines measured against it freeze
// while paused.
type Clock struct {
	now   time.Duration
	frame time.Duration
}

// NewClock creates a clock whose reference frame lasts 1/fps seconds.
func NewClock(fps int) Clock {
	if fps <= 0 {
		fps = 60
	}
	return Clock{frame: time.Second / time.Duration(fps)}
}

// Advance moves simulation time forward. Negative elapsed counts as zero.
func (c *Clock) Advance(elapsed time.Duration) TickInput {
	if elapsed < 0 {
		elapsed = 0
	}
	c.now += elapsed
	return TickInput{
		Elapsed: elapsed,
		Now:     c.now,
		Scale:   float64(elapsed) / float64(c.frame),
	}
}

// Now returns the current simulation time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Frame returns the duration of one reference frame.
func (c *Clock) Frame() time.Duration {
	return c.frame
}

// Reset rewinds simulation time to zero.
func (c *Clock) Reset() {
	c.now = 0
}
