package kabaddi

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func TestScoringAndAllOut(t *testing.T) {
	s := New(Setup{})
	s.Apply(Raid{Team: game.Home, Points: 2})
	s.Apply(Tackle{Team: game.Away, Points: 1})
	s.Apply(Bonus{Team: game.Home, Points: 1})
	for range 7 {
		s.Apply(PlayerOut{Team: game.Away})
	}
	st := s.State()
	if st.HomeScore != 3 || st.AwayScore != 1 || st.AwayPlayers != 0 {
		t.Fatalf("before all out: %+v", st)
	}
	s.Apply(AllOut{Team: game.Home})
	st = s.State()
	if st.HomeScore != 5 || st.AwayPlayers != SquadOnMat {
		t.Fatalf("all out should add 2 and revive away: %+v", st)
	}
	s.Undo()
	if st := s.State(); st.HomeScore != 3 || st.AwayPlayers != 0 {
		t.Fatalf("undo all out: %+v", st)
	}
}

func TestPlayerCountClamps(t *testing.T) {
	s := New(Setup{})
	s.Apply(Revive{Team: game.Home})
	if s.Actions() != 0 {
		t.Fatal("revive at full strength should be a no-op")
	}
	for range 9 {
		s.Apply(PlayerOut{Team: game.Home})
	}
	if st := s.State(); st.HomePlayers != 0 || s.Actions() != 7 {
		t.Fatalf("players = %d actions = %d", st.HomePlayers, s.Actions())
	}
}

func TestHalvesAndResult(t *testing.T) {
	s := New(Setup{Home: "Patna", Away: "Jaipur"})
	s.Apply(PlayerOut{Team: game.Home})
	s.Apply(NextHalf{})
	st := s.State()
	if st.Half != 2 || st.HomePlayers != SquadOnMat {
		t.Fatalf("next half should revive both sides: %+v", st)
	}
	s.Apply(NextHalf{})
	if s.Actions() != 2 {
		t.Fatal("a third half should not exist")
	}
	s.Apply(Raid{Team: game.Away, Points: 3})
	s.Apply(EndMatch{})
	sum := s.Summary()
	if !sum.Complete || sum.Winner != "Jaipur" || sum.Period != "2nd Half" {
		t.Fatalf("summary = %+v", sum)
	}
	s.Apply(Raid{Team: game.Home, Points: 5})
	if s.State().HomeScore != 0 {
		t.Fatal("scoring after the end must be ignored")
	}
}
