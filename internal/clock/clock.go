package clock

import "time"

// PausableClock accumulates elapsed wall-clock time and can be frozen.
// While paused, Playtime stays constant; the paused interval is never
// counted. This is what keeps the lyric timeline in step with audible
// playback across pause/resume.
type PausableClock struct {
	startedAt   time.Time
	pausedAccum time.Duration
	pausedSince time.Time
}

// New creates a running clock starting at zero playtime.
func New() *PausableClock {
	return &PausableClock{startedAt: time.Now()}
}

// Pause freezes playtime accumulation. Calling Pause on an already
// paused clock does nothing, so a paused interval is never counted twice.
func (c *PausableClock) Pause() {
	if c.pausedSince.IsZero() {
		c.pausedSince = time.Now()
	}
}

// Resume unfreezes the clock. Calling Resume on a running clock does
// nothing.
func (c *PausableClock) Resume() {
	if c.pausedSince.IsZero() {
		return
	}
	c.pausedAccum += time.Since(c.pausedSince)
	c.pausedSince = time.Time{}
}

// Paused reports whether the clock is currently frozen.
func (c *PausableClock) Paused() bool {
	return !c.pausedSince.IsZero()
}

// Playtime returns the total elapsed time since creation minus every
// paused interval, including the currently open one. The wall clock is
// sampled exactly once, so while paused the result is constant.
func (c *PausableClock) Playtime() time.Duration {
	now := time.Now()
	elapsed := now.Sub(c.startedAt) - c.pausedAccum
	if !c.pausedSince.IsZero() {
		elapsed -= now.Sub(c.pausedSince)
	}
	return elapsed
}
