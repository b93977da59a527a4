package tugofwar

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func TestPullsAndFouls(t *testing.T) {
	tests := []struct {
		name       string
		setup      Setup
		events     []Event
		wantDone   bool
		wantWinner game.Side
		wantPull   int
	}{
		{"first pull", Setup{}, []Event{WinPull{Team: game.Home}}, false, game.None, 2},
		{"two pulls win best of 3", Setup{}, []Event{WinPull{Team: game.Away}, WinPull{Team: game.Away}}, true, game.Away, 2},
		{"best of 5 needs three", Setup{BestOf: 5}, []Event{WinPull{Team: game.Home}, WinPull{Team: game.Home}}, false, game.None, 3},
		{"one foul is a caution", Setup{}, []Event{Foul{Team: game.Home}}, false, game.None, 1},
		{"second foul disqualifies", Setup{}, []Event{Foul{Team: game.Home}, WinPull{Team: game.Home}, Foul{Team: game.Home}}, true, game.Away, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.setup)
			for _, e := range tt.events {
				s.Apply(e)
			}
			st := s.State()
			if st.IsComplete != tt.wantDone || st.Winner != tt.wantWinner || st.CurrentPull != tt.wantPull {
				t.Fatalf("got complete=%v winner=%q pull=%d", st.IsComplete, st.Winner, st.CurrentPull)
			}
		})
	}
}

func TestNoOpAfterCompleteAndUndo(t *testing.T) {
	s := New(Setup{})
	s.Apply(Foul{Team: game.Away})
	s.Apply(Foul{Team: game.Away})
	if st := s.State(); st.Disqualified != game.Away || st.Winner != game.Home {
		t.Fatalf("away should be disqualified: %+v", st)
	}
	s.Apply(WinPull{Team: game.Away})
	if s.State().AwayPulls != 0 || s.Actions() != 2 {
		t.Fatal("pulls after completion must be ignored")
	}
	s.Undo()
	if st := s.State(); st.IsComplete || st.Disqualified != game.None || st.AwayFouls != 1 {
		t.Fatalf("undo should lift the disqualification: %+v", st)
	}
}
