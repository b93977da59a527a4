package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/charleschow/sportshunt/internal/config"
	"github.com/charleschow/sportshunt/internal/core/snapshot"
	"github.com/charleschow/sportshunt/internal/events"
)

func testPresets(t *testing.T) config.Presets {
	t.Helper()
	p, err := config.ParsePresets([]byte(`
sports:
  tennis:
    player_a: Alcaraz
    player_b: Sinner
    best_of: 5
  badminton:
    points_to_win: 15
`))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEverySportRegistered(t *testing.T) {
	r := NewRegistry(config.Presets{}, nil)
	if got := len(r.Sports()); got != len(events.AllSports) {
		t.Fatalf("registered %d sports, want %d", got, len(events.AllSports))
	}
	for _, sport := range events.AllSports {
		m, err := r.NewMatch(sport, nil)
		if err != nil {
			t.Fatalf("%s: %v", sport, err)
		}
		if m.Sport() != sport {
			t.Fatalf("factory for %s built %s", sport, m.Sport())
		}
		if len(m.Kinds()) == 0 {
			t.Fatalf("%s has no event kinds", sport)
		}
		if sum := m.Summary(); sum.Home == "" || sum.Complete {
			t.Fatalf("%s fresh summary = %+v", sport, sum)
		}
	}
}

func TestPresetAndOverride(t *testing.T) {
	r := NewRegistry(testPresets(t), nil)
	m, err := r.NewMatch(events.SportTennis, []byte(`{"player_b":"Djokovic"}`))
	if err != nil {
		t.Fatal(err)
	}
	sum := m.Summary()
	if sum.Home != "Alcaraz" || sum.Away != "Djokovic" {
		t.Fatalf("names = %q vs %q", sum.Home, sum.Away)
	}

	if _, err := r.NewMatch("curling", nil); !errors.Is(err, ErrUnknownSport) {
		t.Fatalf("err = %v, want ErrUnknownSport", err)
	}
	if _, err := r.NewMatch(events.SportTennis, []byte(`{`)); err == nil {
		t.Fatal("bad setup JSON should fail")
	}
}

func TestOpenRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	r := NewRegistry(testPresets(t), store)

	gc, err := r.Open(ctx, events.SportBadminton)
	if err != nil {
		t.Fatal(err)
	}
	if err := gc.Dispatch("point", []byte(`{"player":"B"}`)); err != nil {
		t.Fatal(err)
	}
	var data []byte
	gc.Exec(func() { data, err = gc.Match.MarshalSnapshot() })
	if err != nil {
		t.Fatal(err)
	}
	gc.Close()
	if err := store.Save(ctx, events.SportBadminton, data); err != nil {
		t.Fatal(err)
	}

	again, err := r.Open(ctx, events.SportBadminton)
	if err != nil {
		t.Fatal(err)
	}
	defer again.Close()
	sum := again.Summary()
	if sum.AwayScore != "1 (games 0)" || sum.Actions != 1 {
		t.Fatalf("restored summary = %+v", sum)
	}
	if !again.Undo() {
		t.Fatal("restored journal should be undoable")
	}
}

func TestOpenIgnoresCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	_ = store.Save(ctx, events.SportPool, []byte("not json"))
	r := NewRegistry(config.Presets{}, store)
	gc, err := r.Open(ctx, events.SportPool)
	if err != nil {
		t.Fatal(err)
	}
	defer gc.Close()
	if gc.Summary().Actions != 0 {
		t.Fatal("corrupt snapshot should start a fresh match")
	}
}
