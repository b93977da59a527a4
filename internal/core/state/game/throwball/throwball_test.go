package throwball

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func points(s *game.Session[State, Event], team game.Side, n int) {
	for range n {
		s.Apply(Point{Team: team})
	}
}

func TestBestOfThree(t *testing.T) {
	tests := []struct {
		name     string
		sets     []game.Side
		complete bool
		winner   game.Side
	}{
		{"one set", []game.Side{game.Home}, false, game.None},
		{"one each", []game.Side{game.Home, game.Away}, false, game.None},
		{"straight sets", []game.Side{game.Away, game.Away}, true, game.Away},
		{"decider", []game.Side{game.Home, game.Away, game.Home}, true, game.Home},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Setup{PointsToWin: 15})
			for _, w := range tt.sets {
				points(s, w, 15)
			}
			st := s.State()
			if st.IsComplete != tt.complete || st.Winner != tt.winner {
				t.Fatalf("complete=%v winner=%q, want %v %q", st.IsComplete, st.Winner, tt.complete, tt.winner)
			}
		})
	}
}

func TestDeuceAndServer(t *testing.T) {
	s := New(Setup{})
	points(s, game.Home, 24)
	points(s, game.Away, 25)
	st := s.State()
	if st.GamesB != 0 || st.Server != game.Away {
		t.Fatalf("24-25 is still live with Away serving: %+v", st)
	}
	points(s, game.Away, 1)
	if st := s.State(); st.GamesB != 1 || st.CurrentGame != 2 {
		t.Fatalf("24-26 ends the set: %+v", st.RallyTracker)
	}
}
