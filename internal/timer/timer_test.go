package timer

import (
	"testing"
	"time"
)

func TestExpired(t *testing.T) {
	tm := New(20 * time.Millisecond)
	if tm.Expired() {
		t.Error("timer expired immediately")
	}
	time.Sleep(30 * time.Millisecond)
	if !tm.Expired() {
		t.Error("timer did not expire after its duration")
	}
}

func TestZeroDurationExpiresAtOnce(t *testing.T) {
	tm := New(0)
	if !tm.Expired() {
		t.Error("zero-length timer should be expired")
	}
}

func TestReset(t *testing.T) {
	tm := New(20 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	tm.Reset()
	if tm.Expired() {
		t.Error("reset timer still expired")
	}
}

func TestRebuildChangesDuration(t *testing.T) {
	tm := New(time.Hour)
	tm.Rebuild(0)
	if !tm.Expired() {
		t.Error("rebuild did not apply the new duration")
	}

	tm.Rebuild(time.Hour)
	if tm.Expired() {
		t.Error("rebuild did not restart the timer")
	}
}
