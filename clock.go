package glide

import "time"

// Clock supplies the monotonic time base tweens are measured against.
type Clock interface {
	ElapsedMilliseconds() float64
}

// --- Stopwatch ---

// Stopwatch is a wall clock that can be paused. While paused, elapsed time
// does not advance and every running tween holds its position.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	stored  time.Duration
	paused  bool
}

// NewStopwatch returns a running stopwatch started now.
func NewStopwatch() *Stopwatch {
	sw := &Stopwatch{now: time.Now}
	sw.started = sw.now()
	return sw
}

// ElapsedMilliseconds implements Clock.
func (sw *Stopwatch) ElapsedMilliseconds() float64 {
	return float64(sw.Elapsed()) / float64(time.Millisecond)
}

// Elapsed returns the running time, excluding paused intervals.
func (sw *Stopwatch) Elapsed() time.Duration {
	if sw.paused {
		return sw.stored
	}
	return sw.stored + sw.now().Sub(sw.started)
}

// Pause stops the stopwatch. Pausing twice is a no-op.
func (sw *Stopwatch) Pause() {
	if sw.paused {
		return
	}
	sw.stored += sw.now().Sub(sw.started)
	sw.paused = true
}

// Resume restarts a paused stopwatch from where it stopped.
func (sw *Stopwatch) Resume() {
	if !sw.paused {
		return
	}
	sw.started = sw.now()
	sw.paused = false
}

// Restart resets elapsed time to zero and runs.
func (sw *Stopwatch) Restart() {
	sw.stored = 0
	sw.started = sw.now()
	sw.paused = false
}

// Paused reports whether the stopwatch is paused.
func (sw *Stopwatch) Paused() bool { return sw.paused }

// --- FrameClock ---

// FrameClock is a manually advanced clock. Run advances it by one frame per
// ebiten update; tests advance it directly for deterministic timing.
type FrameClock struct {
	ms float64
}

// ElapsedMilliseconds implements Clock.
func (c *FrameClock) ElapsedMilliseconds() float64 { return c.ms }

// Advance moves the clock forward by ms milliseconds. Negative values are
// ignored so the clock stays monotonic.
func (c *FrameClock) Advance(ms float64) {
	if ms > 0 {
		c.ms += ms
	}
}

// AdvanceSeconds moves the clock forward by s seconds.
func (c *FrameClock) AdvanceSeconds(s float64) {
	c.Advance(s * 1000)
}
