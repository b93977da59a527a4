package clock

import (
	"context"
	"testing"
	"time"

	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/core/state/game/basketball"
	"github.com/charleschow/sportshunt/internal/core/state/game/tennis"
	"github.com/charleschow/sportshunt/internal/core/state/store"
)

func gameClock(gc *game.GameContext) int {
	var v int
	gc.Exec(func() {
		v = gc.Match.(*game.Session[basketball.State, basketball.Event]).State().GameClock
	})
	return v
}

func TestTickAllOnlyAdvancesRunningClocks(t *testing.T) {
	games := store.New()
	defer games.CloseAll()

	hoops := game.NewGameContext(basketball.New(basketball.Setup{}))
	games.Put(hoops)
	games.Put(game.NewGameContext(tennis.New(tennis.Setup{})))

	start := gameClock(hoops)
	tk := NewTicker(time.Second, games)
	tk.TickAll()
	if got := gameClock(hoops); got != start {
		t.Fatalf("stopped clock moved: %d -> %d", start, got)
	}

	if err := hoops.Dispatch("start", nil); err != nil {
		t.Fatal(err)
	}
	tk.TickAll()
	tk.TickAll()
	if got := gameClock(hoops); got != start-2 {
		t.Fatalf("clock = %d, want %d", got, start-2)
	}
	if hoops.Summary().Actions != 0 {
		t.Fatal("ticks and start must not enter the action log")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewTicker(time.Millisecond, store.New()).Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
