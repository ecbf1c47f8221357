package life

import (
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Bounds for the simulation interval. Requests outside the range are clamped
// to the nearest bound rather than rejected.
const (
	MinSpeedMs     = 100
	MaxSpeedMs     = 2000
	DefaultSpeedMs = 500
)

// clock holds the run gate and the tick interval for the simulation. It does
// no scheduling itself: the platform layer waits out the interval and feeds
// ticks back into the sim, which consults the gate. Stopping therefore takes
// effect on the next tick; a tick that has already begun completes in full.
// An interval change applies from the next scheduled wait onward.
type clock struct {
	running bool
	speedMs int
}

func newClock() clock {
	return clock{speedMs: DefaultSpeedMs}
}

func (c *clock) start() {
	c.running = true
}

func (c *clock) stop() {
	c.running = false
}

// setSpeed clamps ms into [MinSpeedMs, MaxSpeedMs] and stores it.
func (c *clock) setSpeed(ms int) {
	c.speedMs = core.Clamp(ms, MinSpeedMs, MaxSpeedMs)
}

// interval returns the current wait between generations.
func (c *clock) interval() time.Duration {
	return time.Duration(c.speedMs) * time.Millisecond
}
