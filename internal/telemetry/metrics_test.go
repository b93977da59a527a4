package telemetry

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLatencyTracker_Percentiles(t *testing.T) {
	lt := NewLatencyTracker(3)
	for _, ms := range []int{50, 10, 30, 20} {
		lt.Record(time.Duration(ms) * time.Millisecond)
	}
	// oldest sample (50ms) evicted
	if got := lt.P50(); got != 20*time.Millisecond {
		t.Fatalf("P50 = %v, want 20ms", got)
	}
	if got := lt.P99(); got != 20*time.Millisecond {
		t.Fatalf("P99 = %v, want 20ms", got)
	}
}

func TestLatencyTracker_Empty(t *testing.T) {
	if got := NewLatencyTracker(10).P99(); got != 0 {
		t.Fatalf("P99 = %v, want 0", got)
	}
}

func TestPrettyHandler_LevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, slog.LevelInfo)
	defer SetOutput(&bytes.Buffer{}, slog.LevelInfo)

	Debugf("hidden")
	Warnf("snapshot %s failed", "tennis")
	L().With("sport", "cricket").Info("loaded")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug line should be filtered: %q", got)
	}
	if !strings.Contains(got, "WARN: snapshot tennis failed") {
		t.Fatalf("missing warn line: %q", got)
	}
	if !strings.Contains(got, "loaded sport=cricket") {
		t.Fatalf("missing attr line: %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
