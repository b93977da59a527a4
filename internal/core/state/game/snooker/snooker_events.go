package snooker

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	snookerEvent()
}

// Pot adds Points (one ball, 1..7) to the player at the table.
type Pot struct {
	Points int `json:"points"`
}

// Foul by the player at the table awards max(4, Points) to the opponent,
// who comes to the table.
type Foul struct {
	Points int `json:"points"`
}

type EndBreak struct{}

type WinFrame struct {
	Player game.Side `json:"player"`
}

func (Pot) Kind() string      { return "pot" }
func (Foul) Kind() string     { return "foul" }
func (EndBreak) Kind() string { return "end_break" }
func (WinFrame) Kind() string { return "win_frame" }

func (Pot) snookerEvent()      {}
func (Foul) snookerEvent()     {}
func (EndBreak) snookerEvent() {}
func (WinFrame) snookerEvent() {}

var codec = game.NewCodec(
	game.Variant[Event, Pot](),
	game.Variant[Event, Foul](),
	game.Variant[Event, EndBreak](),
	game.Variant[Event, WinFrame](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Pot:
		if ev.Points < 1 || ev.Points > MaxBall {
			return s
		}
		*game.Pick(s.Player, &s.FrameScoreA, &s.FrameScoreB) += ev.Points
		s.Break = min(s.Break+ev.Points, MaxBreak)
		high := game.Pick(s.Player, &s.HighBreakA, &s.HighBreakB)
		*high = max(*high, s.Break)
	case Foul:
		opp := s.Player.Other()
		*game.Pick(opp, &s.FrameScoreA, &s.FrameScoreB) += min(max(MinFoul, ev.Points), MaxBall)
		s.Player, s.Break = opp, 0
	case EndBreak:
		s.Player, s.Break = s.Player.Other(), 0
	case WinFrame:
		if !ev.Player.IsPlayer() {
			return s
		}
		frames := game.Pick(ev.Player, &s.FramesA, &s.FramesB)
		*frames++
		s.Break = 0
		if *frames >= game.GamesToWin(s.Setup.BestOf) {
			s.IsComplete, s.Winner = true, ev.Player
			return s
		}
		s.CurrentFrame++
		s.FrameScoreA, s.FrameScoreB = 0, 0
		s.FrameBreaker = s.FrameBreaker.Other()
		s.Player = s.FrameBreaker
	}
	return s
}
