package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for every tunable. Values are overridable through LYRA_*
// environment variables or a .env file next to the binary.
const (
	defaultTickMs        = 10
	defaultScrollMs      = 200
	defaultScrollPauseMs = 3000
	defaultStatusMsgSecs = 2
	defaultVolume        = 100
)

// Config holds the player's timing and volume tunables.
type Config struct {
	// TickInterval is the sleep between polling-loop iterations.
	TickInterval time.Duration
	// ScrollInterval is the delay between marquee frames.
	ScrollInterval time.Duration
	// ScrollPause is the hold time at each end of the marquee before
	// the direction flips.
	ScrollPause time.Duration
	// StatusMessageTime is how long a transient status message stays
	// on screen.
	StatusMessageTime time.Duration
	// InitialVolume is the starting volume in percent (0-100).
	InitialVolume int
}

// Load reads the optional .env file and assembles the configuration.
// Missing or unparsable variables fall back to defaults; a config typo
// must never prevent playback.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		TickInterval:      msEnv("LYRA_TICK_MS", defaultTickMs),
		ScrollInterval:    msEnv("LYRA_SCROLL_MS", defaultScrollMs),
		ScrollPause:       msEnv("LYRA_SCROLL_PAUSE_MS", defaultScrollPauseMs),
		StatusMessageTime: msEnv("LYRA_STATUS_MSG_MS", defaultStatusMsgSecs*1000),
		InitialVolume:     clampVolume(intEnv("LYRA_VOLUME", defaultVolume)),
	}
}

func msEnv(key string, def int) time.Duration {
	return time.Duration(intEnv(key, def)) * time.Millisecond
}

func intEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func clampVolume(v int) int {
	if v > 100 {
		return 100
	}
	return v - v%10
}
