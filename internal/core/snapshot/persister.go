package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

const saveTimeout = 5 * time.Second

type pendingSave struct {
	data  []byte
	gen   uint64
	timer *time.Timer
}

// Persister implements game.GameObserver. Each change marshals the match
// on the game goroutine and schedules a debounced write; a burst of
// changes within the debounce window produces one write of the latest
// snapshot. Reset deletes the saved snapshot, and no save queued before
// the reset lands after it.
type Persister struct {
	store    Store
	debounce time.Duration

	mu      sync.Mutex
	pending map[events.Sport]*pendingSave
	gens    map[events.Sport]uint64 // bumped on every reset

	// io serializes store writes so a delete never overtakes a save.
	io sync.Mutex
}

func NewPersister(store Store, debounce time.Duration) *Persister {
	return &Persister{
		store:    store,
		debounce: debounce,
		pending:  make(map[events.Sport]*pendingSave),
		gens:     make(map[events.Sport]uint64),
	}
}

func (p *Persister) OnGameEvent(gc *game.GameContext, eventType string) {
	switch eventType {
	case game.EventLoaded:
		return
	case game.EventReset:
		p.cancel(gc.Sport)
		p.io.Lock()
		defer p.io.Unlock()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := p.store.Delete(ctx, gc.Sport); err != nil {
			telemetry.Metrics.SnapshotErrors.Inc()
			telemetry.Warnf("snapshot: %v", err)
		}
		return
	}

	data, err := gc.Match.MarshalSnapshot()
	if err != nil {
		telemetry.Metrics.SnapshotErrors.Inc()
		telemetry.Warnf("snapshot: marshal %s: %v", gc.Sport, err)
		return
	}
	p.schedule(gc.Sport, data)
}

func (p *Persister) schedule(sport events.Sport, data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ps, ok := p.pending[sport]; ok {
		ps.data = data
		ps.timer.Reset(p.debounce)
		return
	}
	p.pending[sport] = &pendingSave{
		data:  data,
		gen:   p.gens[sport],
		timer: time.AfterFunc(p.debounce, func() { p.write(sport) }),
	}
}

// cancel drops the queued save for sport and invalidates any save that
// has already been dequeued.
func (p *Persister) cancel(sport events.Sport) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gens[sport]++
	if ps, ok := p.pending[sport]; ok {
		ps.timer.Stop()
		delete(p.pending, sport)
	}
}

// write saves the pending snapshot for sport, if one is still queued.
func (p *Persister) write(sport events.Sport) {
	p.mu.Lock()
	ps, ok := p.pending[sport]
	delete(p.pending, sport)
	p.mu.Unlock()
	if !ok {
		return
	}
	p.save(sport, ps)
}

func (p *Persister) current(sport events.Sport, gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gens[sport] == gen
}

func (p *Persister) save(sport events.Sport, ps *pendingSave) {
	p.io.Lock()
	defer p.io.Unlock()
	if !p.current(sport, ps.gen) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	start := time.Now()
	if err := p.store.Save(ctx, sport, ps.data); err != nil {
		telemetry.Metrics.SnapshotErrors.Inc()
		telemetry.Warnf("snapshot: %v", err)
		return
	}
	telemetry.Metrics.SaveLatency.Record(time.Since(start))
	telemetry.Metrics.SnapshotsSaved.Inc()
}

// Flush writes every queued snapshot now. Called on shutdown.
func (p *Persister) Flush() {
	p.mu.Lock()
	queued := p.pending
	p.pending = make(map[events.Sport]*pendingSave)
	p.mu.Unlock()

	for sport, ps := range queued {
		ps.timer.Stop()
		p.save(sport, ps)
	}
}
