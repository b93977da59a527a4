package pickleball

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func rallies(s *game.Session[State, Event], seq ...game.Side) {
	for _, t := range seq {
		s.Apply(Rally{Team: t})
	}
}

func TestOnlyServerScores(t *testing.T) {
	s := New(Setup{})
	rallies(s, game.Home, game.Home)
	if st := s.State(); st.PointsA != 2 {
		t.Fatalf("serving team should score: %+v", st.RallyTracker)
	}
	rallies(s, game.Away)
	st := s.State()
	if st.PointsB != 0 || st.ServingTeam != game.Away || st.ServerNumber != 1 {
		t.Fatalf("receiver winning should side out without a point: %+v", st)
	}
	if got := st.CallScore(); got != "0-2" {
		t.Fatalf("call = %q, want 0-2", got)
	}
}

func TestDoublesServerSequence(t *testing.T) {
	s := New(Setup{Doubles: true})
	st := s.State()
	if st.ServerNumber != 2 || st.CallScore() != "0-0-2" {
		t.Fatalf("doubles opens on server 2: %+v", st)
	}
	rallies(s, game.Away)
	st = s.State()
	if st.ServingTeam != game.Away || st.ServerNumber != 1 {
		t.Fatalf("first fault should side out: %+v", st)
	}
	rallies(s, game.Home)
	st = s.State()
	if st.ServingTeam != game.Away || st.ServerNumber != 2 {
		t.Fatalf("server 1 fault passes to server 2: %+v", st)
	}
	rallies(s, game.Home)
	if st := s.State(); st.ServingTeam != game.Home || st.ServerNumber != 1 {
		t.Fatalf("server 2 fault sides out: %+v", st)
	}
}

func TestSwitchServerDoublesOnly(t *testing.T) {
	singles := New(Setup{})
	singles.Apply(SwitchServer{})
	if singles.Actions() != 0 {
		t.Fatal("switch_server in singles should be ignored")
	}
	doubles := New(Setup{Doubles: true})
	doubles.Apply(SwitchServer{})
	if st := doubles.State(); st.ServerNumber != 1 || doubles.Actions() != 1 {
		t.Fatalf("switch_server in doubles: %+v", st)
	}
}

func TestWinByTwoOption(t *testing.T) {
	off := false
	tests := []struct {
		name     string
		winByTwo *bool
		wantDone bool
	}{
		{"default win by two", nil, false},
		{"first to target", &off, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Setup{WinByTwo: tt.winByTwo})
			// Home to 10, side out, Away to 10, side out, Home scores one.
			for range 10 {
				rallies(s, game.Home)
			}
			rallies(s, game.Away)
			for range 10 {
				rallies(s, game.Away)
			}
			rallies(s, game.Home, game.Home)
			st := s.State()
			if st.IsComplete != tt.wantDone {
				t.Fatalf("11-10 complete=%v, want %v: %+v", st.IsComplete, tt.wantDone, st.RallyTracker)
			}
		})
	}
}

func TestMatchOverSetsAndUndo(t *testing.T) {
	s := New(Setup{SetsToWin: 2})
	for range 11 {
		rallies(s, game.Home)
	}
	if st := s.State(); st.GamesA != 1 || st.CurrentGame != 2 || st.PointsA != 0 {
		t.Fatalf("game 1: %+v", st.RallyTracker)
	}
	for range 11 {
		rallies(s, game.Home)
	}
	st := s.State()
	if !st.IsComplete || st.Winner != game.Home {
		t.Fatalf("Home should take the match: %+v", st.RallyTracker)
	}
	if got := Summarize(st).Winner; got != "Team 1" {
		t.Fatalf("winner = %q", got)
	}
	s.Undo()
	if st := s.State(); st.IsComplete || st.PointsA != 10 {
		t.Fatalf("undo: %+v", st.RallyTracker)
	}
}
