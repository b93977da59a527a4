package hockey

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func TestPeriodsByVariant(t *testing.T) {
	tests := []struct {
		variant       Variant
		periods, secs int
	}{
		{Ice, 3, 1200},
		{Field, 4, 900},
		{"", 3, 1200},
	}
	for _, tt := range tests {
		s := New(Setup{HockeyType: tt.variant})
		if got := s.State().TimerSeconds; got != tt.secs {
			t.Errorf("%q timer = %d, want %d", tt.variant, got, tt.secs)
		}
		for range tt.periods - 1 {
			s.Apply(EndPeriod{})
		}
		if s.State().IsComplete {
			t.Errorf("%q complete before the last period", tt.variant)
		}
		s.Apply(EndPeriod{})
		if !s.State().IsComplete {
			t.Errorf("%q not complete after %d periods", tt.variant, tt.periods)
		}
	}
}

func TestPowerPlayGoalReleasesFirstMinor(t *testing.T) {
	s := New(Setup{})
	s.Apply(AddPenalty{Team: game.Away, Player: "Marchand", Type: Major})
	s.Apply(AddPenalty{Team: game.Away, Player: "Pastrnak", Type: Minor})
	s.Apply(AddPenalty{Team: game.Away, Player: "Bergeron", Type: Minor})
	s.Apply(Goal{Team: game.Home})
	ps := s.State().AwayPenalties
	if len(ps) != 2 || ps[0].Player != "Marchand" || ps[1].Player != "Bergeron" {
		t.Fatalf("penalties after PP goal = %+v", ps)
	}
	s.Undo()
	if got := len(s.State().AwayPenalties); got != 3 {
		t.Fatalf("undo should restore the released minor, got %d penalties", got)
	}
}

func TestPenaltiesCountDown(t *testing.T) {
	s := New(Setup{})
	s.Apply(AddPenalty{Team: game.Home, Player: "Ovechkin", Type: Minor})
	s.Apply(StartTimer{})
	for range 119 {
		s.Tick()
	}
	if ps := s.State().HomePenalties; len(ps) != 1 || ps[0].Seconds != 1 {
		t.Fatalf("after 119s: %+v", ps)
	}
	s.Tick()
	if ps := s.State().HomePenalties; len(ps) != 0 {
		t.Fatalf("minor should expire after 120s: %+v", ps)
	}
	if got := s.State().TimerSeconds; got != 1200-120 {
		t.Fatalf("timer = %d", got)
	}
}

func TestEndPeriodClearsPenalties(t *testing.T) {
	s := New(Setup{})
	s.Apply(AddPenalty{Team: game.Home, Player: "X", Type: Major})
	s.Apply(EndPeriod{})
	st := s.State()
	if st.Period != 2 || len(st.HomePenalties) != 0 || st.TimerSeconds != 1200 {
		t.Fatalf("%+v", st)
	}
}
