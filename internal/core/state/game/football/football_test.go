package football

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func shootout(s *game.Session[State, Event], home, away []bool) {
	for i := range max(len(home), len(away)) {
		if i < len(home) {
			s.Apply(RecordPenalty{Team: game.Home, Scored: home[i]})
		}
		if i < len(away) {
			s.Apply(RecordPenalty{Team: game.Away, Scored: away[i]})
		}
	}
}

func toPenalties(s *game.Session[State, Event]) {
	s.Apply(EndPhase{})
	s.Apply(StartPenalties{})
}

func TestSecondYellowBecomesRed(t *testing.T) {
	s := New(Setup{})
	s.Apply(Card{Team: game.Home, Type: Yellow, Player: "Sergio Ramos"})
	s.Apply(Card{Team: game.Home, Type: Yellow, Player: "sergio  ramos"})
	st := s.State()
	if len(st.HomeYellow) != 1 || len(st.HomeRed) != 1 {
		t.Fatalf("yellow=%d red=%d, want 1/1", len(st.HomeYellow), len(st.HomeRed))
	}
	if st.HomeRed[0].Type != Red {
		t.Fatalf("second yellow recorded as %q", st.HomeRed[0].Type)
	}
	s.Undo()
	if st := s.State(); len(st.HomeRed) != 0 || len(st.HomeYellow) != 1 {
		t.Fatalf("undo: yellow=%d red=%d", len(st.HomeYellow), len(st.HomeRed))
	}
}

func TestClockAndPhases(t *testing.T) {
	s := New(Setup{})
	s.Apply(StartTimer{})
	for range 90 {
		s.Tick()
	}
	s.Apply(Card{Team: game.Away, Type: Yellow, Player: "Busquets"})
	if got := s.State().AwayYellow[0].Minute; got != 1 {
		t.Fatalf("card minute = %d, want 1", got)
	}
	s.Apply(AddStoppage{})
	s.Apply(EndPhase{})
	st := s.State()
	if st.Phase != SecondHalf || st.TimerSeconds != 0 || st.Running || st.Stoppage != 0 {
		t.Fatalf("after first half: %+v", st)
	}
	s.Apply(StartTimer{})
	s.Tick()
	s.Apply(EndPhase{})
	if st := s.State(); st.Phase != SecondHalf || st.Running {
		t.Fatalf("end of second half should only stop the clock: %+v", st)
	}
	s.Apply(StartExtraTime{})
	if st := s.State(); st.Phase != ExtraFirst || st.TimerSeconds != 0 {
		t.Fatalf("extra time: %+v", st)
	}
	s.Apply(EndPhase{})
	if st := s.State(); st.Phase != ExtraSecond {
		t.Fatalf("phase = %s, want extra-second", st.Phase)
	}
}

func TestUndoPhaseKeepsClock(t *testing.T) {
	s := New(Setup{})
	s.Apply(StartTimer{})
	s.Tick()
	s.Tick()
	s.Apply(Goal{Team: game.Home})
	s.Tick()
	s.Undo()
	st := s.State()
	if st.HomeScore != 0 || st.TimerSeconds != 3 {
		t.Fatalf("undo goal: score=%d timer=%d, want 0/3", st.HomeScore, st.TimerSeconds)
	}
	if s.Actions() != 0 {
		t.Fatalf("clock events counted as actions: %d", s.Actions())
	}
}

func TestShootoutEarlyElimination(t *testing.T) {
	s := New(Setup{})
	toPenalties(s)
	// Home 3/3, away 0/3: away cannot catch up.
	shootout(s, []bool{true, true, true}, []bool{false, false, false})
	st := s.State()
	if st.Phase != Complete || st.Winner() != game.Home {
		t.Fatalf("phase=%s winner=%q", st.Phase, st.Winner())
	}
}

func TestShootoutNotDecidedWhileCatchable(t *testing.T) {
	s := New(Setup{})
	toPenalties(s)
	shootout(s, []bool{true, true, true}, []bool{false, false})
	if st := s.State(); st.Phase != Penalties {
		t.Fatalf("away can still level: phase=%s", st.Phase)
	}
}

func TestShootoutSuddenDeath(t *testing.T) {
	s := New(Setup{})
	toPenalties(s)
	five := []bool{true, true, true, true, true}
	shootout(s, five, five)
	if st := s.State(); st.Phase != Penalties || st.PenaltyRound != 6 {
		t.Fatalf("5-5: phase=%s round=%d", st.Phase, st.PenaltyRound)
	}
	s.Apply(RecordPenalty{Team: game.Home, Scored: false})
	if s.State().Phase != Penalties {
		t.Fatal("sudden death must wait for the away kick")
	}
	s.Apply(RecordPenalty{Team: game.Away, Scored: true})
	st := s.State()
	if st.Phase != Complete || st.Winner() != game.Away {
		t.Fatalf("phase=%s winner=%q", st.Phase, st.Winner())
	}

	s.Undo()
	if st := s.State(); st.Phase != Penalties || st.Winner() != game.None || len(st.AwayPenalties) != 5 {
		t.Fatalf("undo of the decisive kick: %+v", st)
	}
}

func TestEndAsDraw(t *testing.T) {
	s := New(Setup{Home: "Spain", Away: "Italy"})
	s.Apply(Goal{Team: game.Home})
	s.Apply(Goal{Team: game.Away})
	s.Apply(EndAsDraw{})
	sum := s.Summary()
	if !sum.Complete || sum.Winner != "Tie" {
		t.Fatalf("summary = %+v", sum)
	}
	s.Apply(Goal{Team: game.Home})
	if s.State().HomeScore != 1 {
		t.Fatal("goals after full time must be ignored")
	}
}

func TestSetExtraTimeDurationIsTransient(t *testing.T) {
	s := New(Setup{})
	s.Apply(SetExtraTimeDuration{Seconds: 600})
	if s.State().Setup.ExtraTimeHalfSeconds != 600 || s.Actions() != 0 {
		t.Fatalf("extra=%d actions=%d", s.State().Setup.ExtraTimeHalfSeconds, s.Actions())
	}
}
