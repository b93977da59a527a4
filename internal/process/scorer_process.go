package process

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/charleschow/sportshunt/internal/config"
	"github.com/charleschow/sportshunt/internal/console"
	"github.com/charleschow/sportshunt/internal/core/clock"
	"github.com/charleschow/sportshunt/internal/core/display"
	"github.com/charleschow/sportshunt/internal/core/registry"
	"github.com/charleschow/sportshunt/internal/core/snapshot"
	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/core/state/store"
	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/fanout"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

// feedTickEvery caps clock-only updates sent to feed viewers per sport.
const feedTickEvery = time.Second

// ScorerConfig captures what differs between scorer entry points.
type ScorerConfig struct {
	// Sport, when set, is opened and selected before the first prompt.
	Sport events.Sport
}

// RunScorer boots the interactive scorer. It wires persistence, the sport
// registry, the clock, the terminal display and the scoreboard feed, then
// hands stdin to the console until quit or a signal.
func RunScorer(sc ScorerConfig) {
	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))
	telemetry.Infof("Starting scorer")

	// ── Presets ────────────────────────────────────────────────
	presets, err := config.LoadPresets(cfg.PresetsPath)
	if err != nil {
		telemetry.Warnf("Presets unavailable, using built-in defaults: %v", err)
	}

	// ── Snapshots ──────────────────────────────────────────────
	var snapStore snapshot.Store
	sqlStore, err := snapshot.OpenSQLite(cfg.SnapshotDBPath)
	if err != nil {
		telemetry.Warnf("Snapshot store disabled, matches will not survive restart: %v", err)
		snapStore = snapshot.NewMemoryStore()
	} else {
		snapStore = sqlStore
	}
	defer snapStore.Close()
	persister := snapshot.NewPersister(snapStore, cfg.SnapshotDebounce)

	bus := events.NewBus()
	games := store.New()
	reg := registry.NewRegistry(presets, snapStore)

	// ── Observers ──────────────────────────────────────────────
	observers := []game.GameObserver{
		display.NewObserver(os.Stderr, cfg.DisplayClockEvery),
		persister,
		fanout.NewPublisher(bus),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ── Clock ──────────────────────────────────────────────────
	var clockWG sync.WaitGroup
	clockWG.Add(1)
	go func() {
		defer clockWG.Done()
		clock.NewTicker(cfg.TickInterval, games).Run(ctx)
	}()

	// ── Feed ───────────────────────────────────────────────────
	if cfg.FeedEnabled {
		feed := fanout.NewServer(bus, feedTickEvery)
		go func() {
			if err := feed.ListenAndServe(ctx, cfg.FeedPort); err != nil {
				telemetry.Errorf("Feed server: %v", err)
			}
		}()
	}

	// ── Console ────────────────────────────────────────────────
	con := console.New(reg, games, os.Stdout, observers...)
	if sc.Sport != "" {
		con.Exec(ctx, "use "+string(sc.Sport))
	}
	done := make(chan error, 1)
	go func() { done <- con.Run(ctx, os.Stdin) }()

	select {
	case <-ctx.Done():
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			telemetry.Warnf("Console: %v", err)
		}
	}

	// ── Shutdown ───────────────────────────────────────────────
	telemetry.Infof("Shutting down scorer...")
	cancel()
	clockWG.Wait()
	games.CloseAll()
	persister.Flush()

	telemetry.Infof("Scorer shutdown complete  events=%s  undos=%d  saves=%d  save_p50=%s  errors=%d",
		humanize.Comma(telemetry.Metrics.EventsApplied.Value()),
		telemetry.Metrics.Undos.Value(),
		telemetry.Metrics.SnapshotsSaved.Value(),
		telemetry.Metrics.SaveLatency.P50(),
		telemetry.Metrics.SnapshotErrors.Value(),
	)
}
