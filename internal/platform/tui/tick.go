// Package tui provides the Bubble Tea integration for Neon Rush.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// It carries the wall time the tick fired at.
type TickMsg time.Time

// maxFrameGap caps the elapsed time fed to a single step, so a stalled
// terminal or a suspended SSH session does not teleport the run forward.
const maxFrameGap = 250 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameElapsed returns the time between two ticks, clamped to [0, maxFrameGap].
// A zero previous tick yields one nominal frame.
func frameElapsed(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return time.Second / time.Duration(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	return min(d, maxFrameGap)
}
