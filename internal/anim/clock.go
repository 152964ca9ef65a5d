package anim

import "time"

// LogicalClock is frame-counted time. T is derived from the frame count on every read, so
// it never drifts no matter how many frames have passed.
type LogicalClock struct {
	frames uint64
	step   float64
}

// NewLogicalClock returns a clock that advances by step per frame.
func NewLogicalClock(step float64) *LogicalClock {
	return &LogicalClock{step: step}
}

// Advance moves the clock forward by one frame.
func (c *LogicalClock) Advance() {
	c.frames++
}

func (c *LogicalClock) Frames() uint64 { return c.frames }
func (c *LogicalClock) Step() float64  { return c.step }

// T is the logical time: frames * step.
func (c *LogicalClock) T() float64 {
	return float64(c.frames) * c.step
}

// WallClock tracks real time between frames. The first Tick yields a zero delta.
type WallClock struct {
	Time    time.Time
	Dt      time.Duration
	Elapsed time.Duration

	started bool
}

// Tick records now and returns the delta since the previous Tick. A clock that goes
// backwards yields a zero delta.
func (w *WallClock) Tick(now time.Time) time.Duration {
	if !w.started {
		w.started = true
		w.Time = now
		w.Dt = 0
		return 0
	}
	dt := now.Sub(w.Time)
	if dt < 0 {
		dt = 0
	}
	w.Dt = dt
	w.Time = now
	w.Elapsed += dt
	return dt
}
