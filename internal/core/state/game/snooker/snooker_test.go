package snooker

import (
	"testing"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

func TestBreakAndFoul(t *testing.T) {
	s := New(Setup{})
	for _, p := range []int{1, 7, 1, 7} {
		s.Apply(Pot{Points: p})
	}
	st := s.State()
	if st.FrameScoreA != 16 || st.Break != 16 || st.HighBreakA != 16 {
		t.Fatalf("break: %+v", st)
	}
	s.Apply(Foul{Points: 2})
	st = s.State()
	if st.FrameScoreB != 4 || st.Player != game.PlayerB || st.Break != 0 {
		t.Fatalf("foul should award 4 and pass the table: %+v", st)
	}
	s.Apply(Foul{Points: 6})
	if st := s.State(); st.FrameScoreA != 22 || st.Player != game.PlayerA {
		t.Fatalf("foul on the black awards its value: %+v", st)
	}
	s.Apply(Pot{Points: 9})
	if s.Actions() != 6 {
		t.Fatal("a 9-point pot is not a ball")
	}
}

func TestFramesAlternateBreakOff(t *testing.T) {
	s := New(Setup{BestOf: 3})
	s.Apply(Pot{Points: 1})
	s.Apply(WinFrame{Player: game.PlayerA})
	st := s.State()
	if st.FrameScoreA != 0 || st.CurrentFrame != 2 || st.Player != game.PlayerB || st.HighBreakA != 1 {
		t.Fatalf("frame 2: %+v", st)
	}
	s.Apply(WinFrame{Player: game.PlayerA})
	st = s.State()
	if !st.IsComplete || st.Winner != game.PlayerA || st.CurrentFrame != 2 {
		t.Fatalf("A should win 2-0: %+v", st)
	}
	if got := s.Summary().Winner; got != "Player A" {
		t.Fatalf("winner = %q", got)
	}
	s.Undo()
	if st := s.State(); st.IsComplete || st.FramesA != 1 {
		t.Fatalf("undo: %+v", st)
	}
}
