package timer

import "time"

// Timer is a single-shot deadline meant to be polled. It has no
// goroutine behind it; Expired simply compares against the wall clock.
type Timer struct {
	start time.Time
	len   time.Duration
}

// New creates a timer that expires after the given duration.
func New(len time.Duration) Timer {
	return Timer{start: time.Now(), len: len}
}

// Reset restarts the timer with its current duration.
func (t *Timer) Reset() {
	t.start = time.Now()
}

// Rebuild restarts the timer with a new duration.
func (t *Timer) Rebuild(len time.Duration) {
	t.len = len
	t.Reset()
}

// Expired reports whether the timer's deadline has passed.
func (t *Timer) Expired() bool {
	return time.Since(t.start) >= t.len
}
