package clock

import (
	"context"
	"time"

	"github.com/charleschow/sportshunt/internal/core/state/store"
)

// Ticker advances every live match by one second per interval. Matches
// whose clock is stopped ignore the tick.
type Ticker struct {
	interval time.Duration
	games    *store.GameStateStore
}

func NewTicker(interval time.Duration, games *store.GameStateStore) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval, games: games}
}

// Run blocks until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context) {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			t.TickAll()
		}
	}
}

// TickAll queues one second on every context. It never blocks on a busy
// match.
func (t *Ticker) TickAll() {
	for _, gc := range t.games.All() {
		gc.Tick()
	}
}
