package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charleschow/sportshunt/internal/config"
	"github.com/charleschow/sportshunt/internal/core/registry"
	"github.com/charleschow/sportshunt/internal/core/snapshot"
	"github.com/charleschow/sportshunt/internal/core/state/store"
	"github.com/charleschow/sportshunt/internal/events"
)

func newConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	games := store.New()
	t.Cleanup(games.CloseAll)
	var out bytes.Buffer
	reg := registry.NewRegistry(config.Presets{}, snapshot.NewMemoryStore())
	return New(reg, games, &out), &out
}

// run executes one line and returns what it printed.
func run(t *testing.T, c *Console, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	if c.Exec(context.Background(), line) {
		t.Fatalf("%q quit the console", line)
	}
	return out.String()
}

func TestScoringSession(t *testing.T) {
	c, out := newConsole(t)

	if got := run(t, c, out, `win_pull {"team":"home"}`); !strings.Contains(got, "no sport selected") {
		t.Fatalf("event without sport: %q", got)
	}
	if got := run(t, c, out, `new tugofwar {"home":"Reds","away":"Blues"}`); got != "" {
		t.Fatalf("new: %q", got)
	}
	if c.Active() != events.SportTugOfWar {
		t.Fatalf("active = %q", c.Active())
	}
	run(t, c, out, `win_pull {"team":"home"}`)
	if got := run(t, c, out, "show"); !strings.Contains(got, "Reds vs Blues") || !strings.Contains(got, "1 pulls - 0 pulls") {
		t.Fatalf("show after point:\n%s", got)
	}

	run(t, c, out, "undo")
	if got := run(t, c, out, "show"); !strings.Contains(got, "0 pulls - 0 pulls") {
		t.Fatalf("show after undo:\n%s", got)
	}
	if got := run(t, c, out, "undo"); !strings.Contains(got, "nothing to undo") {
		t.Fatalf("empty undo: %q", got)
	}
}

func TestErrorsAreNotFatal(t *testing.T) {
	c, out := newConsole(t)
	run(t, c, out, "new tugofwar")

	tests := []struct{ line, want string }{
		{"new curling", "unknown sport"},
		{"use", "unknown sport"},
		{"slam_dunk", "unknown event kind"},
		{`win_pull {"team":`, "decode win_pull"},
		{`new tugofwar {"best_of":`, "parse tugofwar setup"},
	}
	for _, tt := range tests {
		if got := run(t, c, out, tt.line); !strings.Contains(got, "error:") || !strings.Contains(got, tt.want) {
			t.Errorf("%q printed %q, want error containing %q", tt.line, got, tt.want)
		}
	}
	if c.Active() != events.SportTugOfWar {
		t.Fatalf("active sport changed to %q", c.Active())
	}
}

func TestSportsAndKinds(t *testing.T) {
	c, out := newConsole(t)
	run(t, c, out, "use tennis")

	sports := run(t, c, out, "sports")
	if n := strings.Count(sports, "\n"); n != len(events.AllSports) {
		t.Fatalf("sports listed %d lines, want %d", n, len(events.AllSports))
	}
	if !strings.Contains(sports, "* tennis") || !strings.Contains(sports, "  golf") {
		t.Fatalf("open marker wrong:\n%s", sports)
	}
	if kinds := run(t, c, out, "kinds"); !strings.Contains(kinds, "point") {
		t.Fatalf("tennis kinds = %q", kinds)
	}
}

func TestRunStopsAtQuit(t *testing.T) {
	c, out := newConsole(t)
	in := strings.NewReader("new tugofwar\nreset\nquit\nnew tennis\n")
	if err := c.Run(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if c.Active() != events.SportTugOfWar {
		t.Fatalf("commands after quit ran: active = %q", c.Active())
	}
	if !strings.Contains(out.String(), "tugofwar> ") {
		t.Fatalf("prompt missing: %q", out.String())
	}
}
