package store

import (
	"errors"
	"testing"

	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/core/state/game/pool"
	"github.com/charleschow/sportshunt/internal/core/state/game/snooker"
	"github.com/charleschow/sportshunt/internal/events"
)

func TestPutReplacesPerSport(t *testing.T) {
	s := New()
	first := game.NewGameContext(pool.New(pool.Setup{}))
	s.Put(first)
	s.Put(game.NewGameContext(snooker.New(snooker.Setup{})))
	if s.Count() != 2 {
		t.Fatalf("count = %d", s.Count())
	}

	second := game.NewGameContext(pool.New(pool.Setup{RaceTo: 9}))
	s.Put(second)
	got, ok := s.Get(events.SportPool)
	if !ok || got != second || s.Count() != 2 {
		t.Fatal("second pool context should replace the first")
	}

	s.Delete(events.SportPool)
	if _, err := s.Require(events.SportPool); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	s.CloseAll()
	if s.Count() != 0 || len(s.All()) != 0 {
		t.Fatal("CloseAll should empty the store")
	}
}
