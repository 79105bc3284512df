package clock

import (
	"testing"
	"time"
)

// tolerance absorbs scheduling jitter around time.Sleep.
const tolerance = 15 * time.Millisecond

func TestPlaytimeAdvancesWhileRunning(t *testing.T) {
	c := New()
	first := c.Playtime()
	time.Sleep(20 * time.Millisecond)
	second := c.Playtime()

	if second < first {
		t.Errorf("playtime went backwards: %v then %v", first, second)
	}
	if second == first {
		t.Error("playtime did not advance while running")
	}
}

func TestPausedTimeDoesNotAccumulate(t *testing.T) {
	c := New()
	time.Sleep(20 * time.Millisecond)

	before := c.Playtime()
	c.Pause()
	time.Sleep(50 * time.Millisecond)
	c.Resume()
	after := c.Playtime()

	if diff := after - before; diff < 0 || diff > tolerance {
		t.Errorf("paused interval leaked into playtime: before=%v after=%v", before, after)
	}
}

func TestPlaytimeFrozenWhilePaused(t *testing.T) {
	c := New()
	c.Pause()

	first := c.Playtime()
	time.Sleep(30 * time.Millisecond)
	second := c.Playtime()

	if first != second {
		t.Errorf("playtime moved while paused: %v then %v", first, second)
	}
}

func TestPlaytimeExactlyConstantWhilePaused(t *testing.T) {
	c := New()
	c.Pause()

	want := c.Playtime()
	for i := 0; i < 1000; i++ {
		if got := c.Playtime(); got != want {
			t.Fatalf("sample %d while paused: got %v, want %v", i, got, want)
		}
	}
}

func TestDoublePauseDoesNotDoubleCount(t *testing.T) {
	c := New()
	c.Pause()
	time.Sleep(30 * time.Millisecond)
	c.Pause() // must not restart the paused interval
	c.Resume()

	if got := c.Playtime(); got > tolerance {
		t.Errorf("double pause corrupted accumulation: playtime=%v", got)
	}
}

func TestResumeWhileRunningIsNoop(t *testing.T) {
	c := New()
	time.Sleep(20 * time.Millisecond)
	before := c.Playtime()
	c.Resume()
	after := c.Playtime()

	if after < before {
		t.Errorf("resume on a running clock moved playtime backwards: %v then %v", before, after)
	}
}

func TestPaused(t *testing.T) {
	c := New()
	if c.Paused() {
		t.Error("new clock reports paused")
	}
	c.Pause()
	if !c.Paused() {
		t.Error("paused clock reports running")
	}
	c.Resume()
	if c.Paused() {
		t.Error("resumed clock reports paused")
	}
}
