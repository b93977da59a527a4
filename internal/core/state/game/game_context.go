package game

import (
	"sync"

	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

// Observer event types passed to GameObserver.OnGameEvent.
const (
	EventScore    = "SCORE"
	EventUndo     = "UNDO"
	EventReset    = "RESET"
	EventTick     = "TICK"
	EventComplete = "COMPLETE"
	EventSetup    = "SETUP"
	EventLoaded   = "LOADED"
)

// GameContext is the single owner of one sport's live match.
//
// All access to Match goes through the inbox channel: one goroutine drains
// it, so console commands and clock ticks never interleave and no mutex
// is needed on the session.
type GameContext struct {
	Sport events.Sport
	Match Match

	// LastKind is the event kind most recently applied, "" after undo,
	// reset or load.
	LastKind string

	observers []GameObserver

	// mu guards closed against sends racing Close.
	mu     sync.RWMutex
	closed bool
	inbox  chan func()
	stop   chan struct{}
}

// GameObserver receives notifications when match state changes.
// Implementations run on the game's goroutine and may read gc.Match directly.
type GameObserver interface {
	OnGameEvent(gc *GameContext, eventType string)
}

func NewGameContext(m Match) *GameContext {
	gc := &GameContext{
		Sport: m.Sport(),
		Match: m,
		inbox: make(chan func(), 256),
		stop:  make(chan struct{}),
	}
	go gc.run()
	return gc
}

func (gc *GameContext) run() {
	defer close(gc.stop)
	for fn := range gc.inbox {
		fn()
	}
}

// Send enqueues a closure to run on the game's goroutine.
// Non-blocking: drops the closure and logs a warning if the inbox is full.
// Sends after Close are dropped.
func (gc *GameContext) Send(fn func()) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	if gc.closed {
		return
	}
	select {
	case gc.inbox <- fn:
	default:
		telemetry.Metrics.InboxOverflows.Inc()
		telemetry.Warnf("%s: inbox full (cap=%d), dropping event", gc.Sport, cap(gc.inbox))
	}
}

// Exec runs fn on the game's goroutine and waits for it to finish.
// Must not be called from inside a Send/Exec closure. After Close, fn is
// not run.
func (gc *GameContext) Exec(fn func()) {
	done := make(chan struct{})
	gc.mu.RLock()
	if gc.closed {
		gc.mu.RUnlock()
		return
	}
	gc.inbox <- func() {
		defer close(done)
		fn()
	}
	gc.mu.RUnlock()
	<-done
}

// AddObserver registers an observer. Must be called before the game
// starts receiving events.
func (gc *GameContext) AddObserver(o GameObserver) {
	gc.observers = append(gc.observers, o)
}

// Notify calls all registered observers with the given event type.
// Must be called from the game's goroutine.
func (gc *GameContext) Notify(eventType string) {
	for _, o := range gc.observers {
		o.OnGameEvent(gc, eventType)
	}
}

// Close shuts down the game's goroutine and waits for it to drain. Safe
// to call more than once.
func (gc *GameContext) Close() {
	gc.mu.Lock()
	if !gc.closed {
		gc.closed = true
		close(gc.inbox)
	}
	gc.mu.Unlock()
	<-gc.stop
}

// Dispatch applies one event by kind and notifies observers when the
// match changed. Blocks until applied.
func (gc *GameContext) Dispatch(kind string, payload []byte) error {
	var err error
	gc.Exec(func() {
		wasComplete := gc.Match.Summary().Complete
		rev := gc.Match.Revision()
		if err = gc.Match.ApplyKind(kind, payload); err != nil {
			telemetry.Metrics.EventsRejected.Inc()
			return
		}
		if gc.Match.Revision() == rev {
			return
		}
		telemetry.Metrics.EventsApplied.Inc()
		gc.LastKind = kind
		gc.Notify(EventScore)
		if !wasComplete && gc.Match.Summary().Complete {
			gc.Notify(EventComplete)
		}
	})
	return err
}

// Undo reverts the last reversible event. Returns false when there was
// nothing to undo.
func (gc *GameContext) Undo() bool {
	var ok bool
	gc.Exec(func() {
		if ok = gc.Match.Undo(); ok {
			telemetry.Metrics.Undos.Inc()
			gc.LastKind = ""
			gc.Notify(EventUndo)
		}
	})
	return ok
}

func (gc *GameContext) Reset() {
	gc.Exec(func() {
		gc.Match.Reset()
		telemetry.Metrics.Resets.Inc()
		gc.LastKind = ""
		gc.Notify(EventReset)
	})
}

// Setup starts a new match with the given JSON setup parameters.
func (gc *GameContext) Setup(raw []byte) error {
	var err error
	gc.Exec(func() {
		if err = gc.Match.Setup(raw); err != nil {
			return
		}
		gc.LastKind = ""
		gc.Notify(EventSetup)
	})
	return err
}

// Restore loads a saved snapshot into the match.
func (gc *GameContext) Restore(data []byte) error {
	var err error
	gc.Exec(func() {
		if err = gc.Match.RestoreSnapshot(data); err != nil {
			return
		}
		gc.LastKind = ""
		gc.Notify(EventLoaded)
	})
	return err
}

// Tick queues one clock second. Non-blocking so a slow match never holds
// up the shared ticker.
func (gc *GameContext) Tick() {
	gc.Send(func() {
		if gc.Match.Tick() {
			telemetry.Metrics.Ticks.Inc()
			gc.Notify(EventTick)
		}
	})
}

// Summary reads the current summary on the game's goroutine.
func (gc *GameContext) Summary() Summary {
	var s Summary
	gc.Exec(func() { s = gc.Match.Summary() })
	return s
}
