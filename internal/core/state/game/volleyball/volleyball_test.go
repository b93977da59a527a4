package volleyball

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func points(s *game.Session[State, Event], team game.Side, n int) {
	for range n {
		s.Apply(Point{Team: team})
	}
}

func TestSetNeedsTwoPointLead(t *testing.T) {
	s := New(Setup{})
	points(s, game.Home, 24)
	points(s, game.Away, 24)
	points(s, game.Home, 1)
	if st := s.State(); st.GamesA != 0 {
		t.Fatalf("25-24 must not end the set: %+v", st.RallyTracker)
	}
	points(s, game.Away, 1)
	points(s, game.Away, 1)
	points(s, game.Away, 1)
	if st := s.State(); st.GamesB != 1 || st.CurrentGame != 2 {
		t.Fatalf("25-27 should give Away the set: %+v", st.RallyTracker)
	}
}

func TestTimeoutsResetEachSet(t *testing.T) {
	s := New(Setup{})
	for range 3 {
		s.Apply(Timeout{Team: game.Home})
	}
	if st := s.State(); st.HomeTimeouts != 0 {
		t.Fatalf("home timeouts = %d", st.HomeTimeouts)
	}
	if s.Actions() != 2 {
		t.Fatalf("third timeout should be a no-op, actions = %d", s.Actions())
	}
	points(s, game.Away, 25)
	if st := s.State(); st.HomeTimeouts != TimeoutsPerSet {
		t.Fatalf("timeouts should reset for set 2, got %d", st.HomeTimeouts)
	}
}

func TestFinalSetToFifteen(t *testing.T) {
	s := New(Setup{BestOf: 5})
	for range 2 {
		points(s, game.Home, 25)
		points(s, game.Away, 25)
	}
	st := s.State()
	if !st.FinalSet() || st.SetTarget() != 15 {
		t.Fatalf("2-2 should be the final set to 15: %+v", st.RallyTracker)
	}
	if got := Summarize(st).Period; got != "5th Set (final)" {
		t.Fatalf("period = %q", got)
	}
	points(s, game.Home, 15)
	st = s.State()
	if !st.IsComplete || st.Winner != game.Home || st.PointsA != 15 {
		t.Fatalf("Home should win 3-2: %+v", st.RallyTracker)
	}
}

func TestServeFollowsRally(t *testing.T) {
	s := New(Setup{})
	points(s, game.Away, 1)
	if st := s.State(); st.Server != game.Away {
		t.Fatalf("server = %s", st.Server)
	}
	s.Undo()
	if st := s.State(); st.Server != game.Home || st.PointsB != 0 {
		t.Fatalf("undo: %+v", st)
	}
}
