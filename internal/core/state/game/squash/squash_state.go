package squash

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type Setup struct {
	PlayerA     string `json:"player_a"`
	PlayerB     string `json:"player_b"`
	BestOf      int    `json:"best_of"`       // 3 or 5
	PointsToWin int    `json:"points_to_win"` // 11 or 15
}

func (s Setup) withDefaults() Setup {
	if s.PlayerA == "" {
		s.PlayerA = "Player A"
	}
	if s.PlayerB == "" {
		s.PlayerB = "Player B"
	}
	if s.BestOf != 3 {
		s.BestOf = 5
	}
	if s.PointsToWin != 15 {
		s.PointsToWin = 11
	}
	return s
}

type State struct {
	Setup Setup `json:"setup"`
	game.RallyTracker

	Server game.Side `json:"server"`
}

func Initial(setup Setup) State {
	return State{
		Setup:        setup.withDefaults(),
		RallyTracker: game.NewRally(),
		Server:       game.PlayerA,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportSquash,
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
		HomeScore: fmt.Sprintf("%d (games %d)", s.PointsA, s.GamesA),
		AwayScore: fmt.Sprintf("%d (games %d)", s.PointsB, s.GamesB),
		Period:    format.PeriodLabel(s.CurrentGame, "Game"),
		Serving:   s.Server,
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.PlayerA, s.Setup.PlayerB),
	}
	if s.IsComplete {
		sum.Serving = game.None
	}
	return sum
}
