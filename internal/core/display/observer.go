package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charleschow/sportshunt/internal/core/state/game"
)

// DisplayObserver implements game.GameObserver. It prints a scoreboard
// block on every scoring change and throttles clock-tick lines per sport.
type DisplayObserver struct {
	mu      sync.Mutex
	out     io.Writer
	tracker *Tracker
	now     func() time.Time
}

func NewObserver(out io.Writer, tickEvery time.Duration) *DisplayObserver {
	return &DisplayObserver{
		out:     out,
		tracker: NewTracker(tickEvery),
		now:     time.Now,
	}
}

func (d *DisplayObserver) OnGameEvent(gc *game.GameContext, eventType string) {
	sum := gc.Match.Summary()
	st := d.tracker.Get(gc.Sport)
	if st.MatchID != sum.MatchID {
		st.MatchID = sum.MatchID
		st.Finaled = false
	}

	switch eventType {
	case game.EventTick:
		if !st.AllowTick() {
			return
		}
		d.write(RenderTick(sum, d.now()))
		return
	case game.EventComplete:
		if st.Finaled {
			return
		}
		st.Finaled = true
	case game.EventScore:
		// The COMPLETE notification that follows prints the final block.
		if sum.Complete && !st.Finaled {
			return
		}
	case game.EventUndo, game.EventLoaded:
		st.Finaled = sum.Complete
	}
	d.write(Render(sum, eventType, d.now()))
}

func (d *DisplayObserver) write(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(d.out, s)
}
