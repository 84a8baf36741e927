package engine

import "time"

const (
	DefaultGravity = 500 * time.Millisecond
	DefaultSpeedup = 0.1
)

// Gravity turns elapsed time into automatic soft-drop steps. The step
// period shrinks as the level rises:
//
//	period = Interval / (1 + (level-1)*Speedup)
type Gravity struct {
	Interval time.Duration
	Speedup  float64

	accumulator float64
}

// Period returns the seconds between two steps at the given level.
func (g *Gravity) Period(level int) float64 {
	interval := g.Interval
	if interval <= 0 {
		interval = DefaultGravity
	}
	return interval.Seconds() / (1 + float64(max(level-1, 0))*g.Speedup)
}

// Advance adds dt seconds and returns how many steps are due.
func (g *Gravity) Advance(dt float64, level int) int {
	period := g.Period(level)
	g.accumulator += dt

	steps := 0
	for g.accumulator >= period {
		g.accumulator -= period
		steps++
	}
	return steps
}

// Reset discards any partially elapsed period.
func (g *Gravity) Reset() {
	g.accumulator = 0
}
