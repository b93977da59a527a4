package rugby

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func TestScoringValues(t *testing.T) {
	s := New(Setup{})
	s.Apply(Try{Team: game.Home})
	if st := s.State(); st.Home.Score != 5 || !st.CanConvert || st.LastTryTeam != game.Home {
		t.Fatalf("after try: %+v", st)
	}
	s.Apply(Conversion{Team: game.Home, Made: true})
	s.Apply(PenaltyGoal{Team: game.Away})
	s.Apply(DropGoal{Team: game.Away})
	s.Apply(PenaltyTry{Team: game.Away})
	st := s.State()
	if st.Home.Score != 7 || st.Away.Score != 13 {
		t.Fatalf("scores %d-%d, want 7-13", st.Home.Score, st.Away.Score)
	}
	if st.CanConvert {
		t.Fatal("conversion window should be closed")
	}
	if st.Away.Tries != 1 || st.Away.Conversions != 1 {
		t.Fatalf("penalty try should count a try and a conversion: %+v", st.Away)
	}
}

func TestMissedConversionClosesWindow(t *testing.T) {
	s := New(Setup{})
	s.Apply(Try{Team: game.Away})
	s.Apply(Conversion{Team: game.Away, Made: false})
	st := s.State()
	if st.Away.Score != 5 || st.CanConvert || st.LastTryTeam != game.None {
		t.Fatalf("%+v", st)
	}
	s.Undo()
	if st := s.State(); !st.CanConvert {
		t.Fatal("undo should reopen the conversion window")
	}
}

func TestSinBin(t *testing.T) {
	s := New(Setup{})
	s.Apply(StartTimer{})
	s.Apply(ShowCard{Team: game.Home, Type: Yellow, Player: "Itoje"})
	s.Apply(ShowCard{Team: game.Home, Type: Red, Player: "Farrell"})
	for range sinBinSeconds - 1 {
		s.Tick()
	}
	if y := s.State().Home.Yellow; len(y) != 1 || y[0].SecondsRemaining != 1 {
		t.Fatalf("yellow before expiry: %+v", y)
	}
	s.Tick()
	st := s.State()
	if len(st.Home.Yellow) != 0 || len(st.Home.Red) != 1 || st.TimerSeconds != sinBinSeconds {
		t.Fatalf("after ten minutes: %+v", st)
	}
}

func TestHalves(t *testing.T) {
	s := New(Setup{})
	s.Apply(StartTimer{})
	s.Tick()
	s.Apply(Try{Team: game.Home})
	s.Apply(EndHalf{})
	if st := s.State(); st.Half != 2 || st.TimerSeconds != 0 || st.CanConvert {
		t.Fatalf("%+v", st)
	}
	s.Apply(EndHalf{})
	if w := s.State().Winner(); w != game.Home {
		t.Fatalf("winner = %q", w)
	}
}
