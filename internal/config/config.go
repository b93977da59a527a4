package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Snapshot persistence
	SnapshotDBPath   string
	SnapshotDebounce time.Duration

	// Clock
	TickInterval time.Duration

	// Scoreboard feed
	FeedEnabled bool
	FeedPort    int
	FeedAddr    string // host:port the viewer dials

	// Sport defaults
	PresetsPath string

	// Display
	DisplayClockEvery time.Duration

	// Telemetry
	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		SnapshotDBPath: envStr("SNAPSHOT_DB_PATH", "data/scoreboard.db"),
		// A burst of taps collapses into a single write.
		SnapshotDebounce: time.Duration(envInt("SNAPSHOT_DEBOUNCE_MS", 150)) * time.Millisecond,

		TickInterval: time.Duration(envInt("TICK_INTERVAL_MS", 1000)) * time.Millisecond,

		FeedEnabled: envBool("FEED_ENABLED", true),
		FeedPort:    envInt("FEED_PORT", 8790),
		FeedAddr:    envStr("FEED_ADDR", "localhost:8790"),

		PresetsPath: envStr("PRESETS_PATH", "internal/config/presets.yaml"),

		DisplayClockEvery: time.Duration(envInt("DISPLAY_CLOCK_EVERY_SEC", 15)) * time.Second,

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
