package handball

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func TestThirdSuspensionDisqualifies(t *testing.T) {
	s := New(Setup{})
	s.Apply(Suspend{Team: game.Home, Player: "Hansen"})
	s.Apply(StartTimer{})
	for range suspensionSeconds + 5 {
		s.Tick()
	}
	s.Apply(Suspend{Team: game.Home, Player: "hansen"})
	if b := s.State().Home; len(b.Suspensions) != 1 || b.Suspensions[0].Count != 2 || b.Suspensions[0].SecondsRemaining != suspensionSeconds {
		t.Fatalf("second suspension: %+v", b.Suspensions)
	}
	s.Apply(Suspend{Team: game.Home, Player: "HANSEN"})
	b := s.State().Home
	if len(b.Suspensions) != 0 || len(b.Disqualified) != 1 || b.Disqualified[0] != "Hansen" {
		t.Fatalf("third suspension: %+v", b)
	}
	s.Undo()
	if b := s.State().Home; len(b.Disqualified) != 0 || len(b.Suspensions) != 1 {
		t.Fatalf("undo disqualification: %+v", b)
	}
}

func TestTimeoutLimits(t *testing.T) {
	s := New(Setup{})
	for range 3 {
		s.Apply(UseTimeout{Team: game.Away})
	}
	if b := s.State().Away; b.Timeouts != 1 || b.TimeoutsThisHalf != 2 {
		t.Fatalf("first half: %+v", b)
	}
	s.Apply(EndHalf{})
	s.Apply(UseTimeout{Team: game.Away})
	s.Apply(UseTimeout{Team: game.Away})
	if b := s.State().Away; b.Timeouts != 0 || b.TimeoutsThisHalf != 1 {
		t.Fatalf("second half: %+v", b)
	}
}

func TestHalvesAndWinner(t *testing.T) {
	s := New(Setup{HalfDurationMinutes: 1})
	s.Apply(StartTimer{})
	for range 70 {
		s.Tick()
	}
	if st := s.State(); st.TimerSeconds != 0 || st.Running {
		t.Fatalf("clock should stop at zero: %+v", st)
	}
	s.Apply(Goal{Team: game.Home})
	s.Apply(EndHalf{})
	if st := s.State(); st.Half != 2 || st.TimerSeconds != 60 {
		t.Fatalf("second half: %+v", st)
	}
	s.Apply(EndHalf{})
	if st := s.State(); !st.IsComplete || st.Winner() != game.Home {
		t.Fatalf("complete=%v winner=%q", st.IsComplete, st.Winner())
	}
}
