package pool

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func TestRaceTo(t *testing.T) {
	s := New(Setup{RaceTo: 3, GameType: NineBall})
	for range 2 {
		s.Apply(WinRack{Player: game.PlayerA})
		s.Apply(WinRack{Player: game.PlayerB})
	}
	st := s.State()
	if st.IsComplete || st.CurrentRack != 5 || st.Shooter != game.PlayerA {
		t.Fatalf("2-2: %+v", st)
	}
	s.Apply(WinRack{Player: game.PlayerB})
	st = s.State()
	if !st.IsComplete || st.Winner != game.PlayerB || st.RacksB != 3 {
		t.Fatalf("B should win the race: %+v", st)
	}
	s.Apply(WinRack{Player: game.PlayerA})
	if s.State().RacksA != 2 {
		t.Fatal("racks after completion must be ignored")
	}
	if got := s.Summary().Winner; got != "Player B" {
		t.Fatalf("winner = %q", got)
	}
}

func TestFoulAndSwitch(t *testing.T) {
	s := New(Setup{})
	s.Apply(Foul{})
	st := s.State()
	if st.FoulsA != 1 || st.Shooter != game.PlayerB {
		t.Fatalf("foul: %+v", st)
	}
	s.Apply(SwitchPlayer{})
	if s.State().Shooter != game.PlayerA {
		t.Fatal("switch should pass the table back")
	}
	s.Undo()
	s.Undo()
	if st := s.State(); st.FoulsA != 0 || st.Shooter != game.PlayerA {
		t.Fatalf("undo: %+v", st)
	}
}
