package snooker

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const (
	MinFoul  = 4
	MaxBall  = 7
	MaxBreak = 147
)

type Setup struct {
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
	BestOf  int    `json:"best_of"`
}

func (s Setup) withDefaults() Setup {
	if s.PlayerA == "" {
		s.PlayerA = "Player A"
	}
	if s.PlayerB == "" {
		s.PlayerB = "Player B"
	}
	if s.BestOf <= 0 {
		s.BestOf = 7
	}
	return s
}

type State struct {
	Setup Setup `json:"setup"`

	FrameScoreA  int       `json:"frame_score_a"`
	FrameScoreB  int       `json:"frame_score_b"`
	FramesA      int       `json:"frames_a"`
	FramesB      int       `json:"frames_b"`
	CurrentFrame int       `json:"current_frame"`
	Player       game.Side `json:"player"`
	// FrameBreaker broke off the current frame; the other player breaks
	// the next.
	FrameBreaker game.Side `json:"frame_breaker"`
	Break        int       `json:"break"`
	HighBreakA   int       `json:"high_break_a"`
	HighBreakB   int       `json:"high_break_b"`
	IsComplete   bool      `json:"is_complete"`
	Winner       game.Side `json:"winner"`
}

func Initial(setup Setup) State {
	return State{
		Setup:        setup.withDefaults(),
		CurrentFrame: 1,
		Player:       game.PlayerA,
		FrameBreaker: game.PlayerA,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportSnooker,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func Summarize(s State) game.Summary {
	sum := game.Summary{
		Home:      s.Setup.PlayerA,
		Away:      s.Setup.PlayerB,
		HomeScore: fmt.Sprintf("%d (frames %d)", s.FrameScoreA, s.FramesA),
		AwayScore: fmt.Sprintf("%d (frames %d)", s.FrameScoreB, s.FramesB),
		Period:    format.PeriodLabel(s.CurrentFrame, "Frame") + fmt.Sprintf(" of %d", s.Setup.BestOf),
		Serving:   s.Player,
		Lines: []string{
			fmt.Sprintf("Break: %d", s.Break),
			fmt.Sprintf("High break: %d - %d", s.HighBreakA, s.HighBreakB),
		},
		Complete: s.IsComplete,
		Winner:   game.WinnerName(s.Winner, s.Setup.PlayerA, s.Setup.PlayerB),
	}
	if s.IsComplete {
		sum.Serving = game.None
		sum.Lines = sum.Lines[1:]
	}
	return sum
}
