package display

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/charleschow/sportshunt/internal/events"
)

// State holds per-sport display flags. Each *State is only touched from
// that sport's game goroutine, so its fields need no locking.
type State struct {
	Finaled bool
	MatchID string
	ticks   *rate.Limiter
}

// Tracker maps sports to their display state. The map is mutex-protected
// so concurrent game goroutines can create entries; a returned *State is
// goroutine-local.
type Tracker struct {
	mu        sync.Mutex
	tickEvery time.Duration
	states    map[events.Sport]*State
}

func NewTracker(tickEvery time.Duration) *Tracker {
	return &Tracker{
		tickEvery: tickEvery,
		states:    make(map[events.Sport]*State),
	}
}

// Get returns the display state for a sport, creating one if needed.
func (t *Tracker) Get(sport events.Sport) *State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.states[sport]
	if !ok {
		limit := rate.Inf
		if t.tickEvery > 0 {
			limit = rate.Every(t.tickEvery)
		}
		s = &State{ticks: rate.NewLimiter(limit, 1)}
		t.states[sport] = s
	}
	return s
}

// AllowTick reports whether a clock line may be printed now.
func (s *State) AllowTick() bool { return s.ticks.Allow() }
