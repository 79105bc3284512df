package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Load()

	if cfg.TickInterval != 10*time.Millisecond {
		t.Errorf("tick interval: got %v", cfg.TickInterval)
	}
	if cfg.ScrollInterval != 200*time.Millisecond {
		t.Errorf("scroll interval: got %v", cfg.ScrollInterval)
	}
	if cfg.ScrollPause != 3*time.Second {
		t.Errorf("scroll pause: got %v", cfg.ScrollPause)
	}
	if cfg.StatusMessageTime != 2*time.Second {
		t.Errorf("status message time: got %v", cfg.StatusMessageTime)
	}
	if cfg.InitialVolume != 100 {
		t.Errorf("initial volume: got %d", cfg.InitialVolume)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LYRA_TICK_MS", "25")
	t.Setenv("LYRA_VOLUME", "57")

	cfg := Load()
	if cfg.TickInterval != 25*time.Millisecond {
		t.Errorf("tick override: got %v", cfg.TickInterval)
	}
	// Volume snaps down to the 10-percent step grid.
	if cfg.InitialVolume != 50 {
		t.Errorf("volume override: got %d, want 50", cfg.InitialVolume)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LYRA_SCROLL_MS", "soon")
	t.Setenv("LYRA_VOLUME", "-20")

	cfg := Load()
	if cfg.ScrollInterval != 200*time.Millisecond {
		t.Errorf("bad scroll value not defaulted: %v", cfg.ScrollInterval)
	}
	if cfg.InitialVolume != 100 {
		t.Errorf("bad volume not defaulted: %d", cfg.InitialVolume)
	}
}

func TestVolumeClamp(t *testing.T) {
	t.Setenv("LYRA_VOLUME", "400")
	if cfg := Load(); cfg.InitialVolume != 100 {
		t.Errorf("volume not clamped: %d", cfg.InitialVolume)
	}
}
