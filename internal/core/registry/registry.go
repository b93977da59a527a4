package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charleschow/sportshunt/internal/config"
	"github.com/charleschow/sportshunt/internal/core/snapshot"
	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/core/state/game/badminton"
	"github.com/charleschow/sportshunt/internal/core/state/game/baseball"
	"github.com/charleschow/sportshunt/internal/core/state/game/basketball"
	"github.com/charleschow/sportshunt/internal/core/state/game/cricket"
	"github.com/charleschow/sportshunt/internal/core/state/game/football"
	"github.com/charleschow/sportshunt/internal/core/state/game/golf"
	"github.com/charleschow/sportshunt/internal/core/state/game/handball"
	"github.com/charleschow/sportshunt/internal/core/state/game/hockey"
	"github.com/charleschow/sportshunt/internal/core/state/game/kabaddi"
	"github.com/charleschow/sportshunt/internal/core/state/game/pickleball"
	"github.com/charleschow/sportshunt/internal/core/state/game/pool"
	"github.com/charleschow/sportshunt/internal/core/state/game/rugby"
	"github.com/charleschow/sportshunt/internal/core/state/game/snooker"
	"github.com/charleschow/sportshunt/internal/core/state/game/squash"
	"github.com/charleschow/sportshunt/internal/core/state/game/tabletennis"
	"github.com/charleschow/sportshunt/internal/core/state/game/tennis"
	"github.com/charleschow/sportshunt/internal/core/state/game/throwball"
	"github.com/charleschow/sportshunt/internal/core/state/game/tugofwar"
	"github.com/charleschow/sportshunt/internal/core/state/game/volleyball"
	"github.com/charleschow/sportshunt/internal/core/state/game/waterpolo"
	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

var ErrUnknownSport = errors.New("unknown sport")

// Factory builds a fresh match with default setup.
type Factory func() game.Match

// Registry maps sport -> match factory and opens live matches with their
// preset setup and any saved snapshot.
type Registry struct {
	factories map[events.Sport]Factory
	presets   config.Presets
	snapshots snapshot.Store // nil disables restore
}

func NewRegistry(presets config.Presets, snapshots snapshot.Store) *Registry {
	r := &Registry{
		factories: make(map[events.Sport]Factory),
		presets:   presets,
		snapshots: snapshots,
	}
	r.Register(events.SportFootball, func() game.Match { return football.New(football.Setup{}) })
	r.Register(events.SportBasketball, func() game.Match { return basketball.New(basketball.Setup{}) })
	r.Register(events.SportTennis, func() game.Match { return tennis.New(tennis.Setup{}) })
	r.Register(events.SportHockey, func() game.Match { return hockey.New(hockey.Setup{}) })
	r.Register(events.SportRugby, func() game.Match { return rugby.New(rugby.Setup{}) })
	r.Register(events.SportHandball, func() game.Match { return handball.New(handball.Setup{}) })
	r.Register(events.SportWaterPolo, func() game.Match { return waterpolo.New(waterpolo.Setup{}) })
	r.Register(events.SportTableTennis, func() game.Match { return tabletennis.New(tabletennis.Setup{}) })
	r.Register(events.SportBadminton, func() game.Match { return badminton.New(badminton.Setup{}) })
	r.Register(events.SportPickleball, func() game.Match { return pickleball.New(pickleball.Setup{}) })
	r.Register(events.SportVolleyball, func() game.Match { return volleyball.New(volleyball.Setup{}) })
	r.Register(events.SportThrowball, func() game.Match { return throwball.New(throwball.Setup{}) })
	r.Register(events.SportTugOfWar, func() game.Match { return tugofwar.New(tugofwar.Setup{}) })
	r.Register(events.SportPool, func() game.Match { return pool.New(pool.Setup{}) })
	r.Register(events.SportSnooker, func() game.Match { return snooker.New(snooker.Setup{}) })
	r.Register(events.SportGolf, func() game.Match { return golf.New(golf.Setup{}) })
	r.Register(events.SportBaseball, func() game.Match { return baseball.New(baseball.Setup{}) })
	r.Register(events.SportKabaddi, func() game.Match { return kabaddi.New(kabaddi.Setup{}) })
	r.Register(events.SportSquash, func() game.Match { return squash.New(squash.Setup{}) })
	r.Register(events.SportCricket, func() game.Match { return cricket.New(cricket.Setup{}) })
	return r
}

func (r *Registry) Register(sport events.Sport, f Factory) {
	r.factories[sport] = f
}

func (r *Registry) Get(sport events.Sport) (Factory, bool) {
	f, ok := r.factories[sport]
	return f, ok
}

// Sports lists registered sports in menu order.
func (r *Registry) Sports() []events.Sport {
	out := make([]events.Sport, 0, len(r.factories))
	for _, s := range events.AllSports {
		if _, ok := r.factories[s]; ok {
			out = append(out, s)
		}
	}
	for s := range r.factories {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// NewMatch builds a match for sport with the preset setup overlaid by the
// caller's JSON fields.
func (r *Registry) NewMatch(sport events.Sport, setup []byte) (game.Match, error) {
	f, ok := r.factories[sport]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSport, sport)
	}
	raw, err := r.SetupParams(sport, setup)
	if err != nil {
		return nil, err
	}
	m := f()
	if err := m.Setup(raw); err != nil {
		return nil, err
	}
	return m, nil
}

// SetupParams overlays the caller's JSON fields on the sport's preset.
func (r *Registry) SetupParams(sport events.Sport, setup []byte) ([]byte, error) {
	if _, ok := r.factories[sport]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSport, sport)
	}
	return r.presets.Setup(string(sport), setup)
}

// Open starts a live context for sport. When a snapshot was saved for the
// sport it is restored verbatim; otherwise the preset setup is used.
// Observers are attached before the restore so they see the LOADED event.
func (r *Registry) Open(ctx context.Context, sport events.Sport, observers ...game.GameObserver) (*game.GameContext, error) {
	m, err := r.NewMatch(sport, nil)
	if err != nil {
		return nil, err
	}
	gc := game.NewGameContext(m)
	for _, o := range observers {
		gc.AddObserver(o)
	}
	if r.snapshots == nil {
		return gc, nil
	}

	data, err := r.snapshots.Load(ctx, sport)
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		return gc, nil
	case err != nil:
		telemetry.Warnf("%s: snapshot load failed, starting fresh: %v", sport, err)
		return gc, nil
	}
	if err := gc.Restore(data); err != nil {
		telemetry.Warnf("%s: snapshot restore failed, starting fresh: %v", sport, err)
	}
	return gc, nil
}
