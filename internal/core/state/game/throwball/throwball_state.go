package throwball

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

// Matches are always best of three sets.
const BestOf = 3

type Setup struct {
	Home        string `json:"home"`
	Away        string `json:"away"`
	PointsToWin int    `json:"points_to_win"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.PointsToWin <= 0 {
		s.PointsToWin = 25
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
		Server:       game.Home,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportThrowball,
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
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprintf("%d (sets %d)", s.PointsA, s.GamesA),
		AwayScore: fmt.Sprintf("%d (sets %d)", s.PointsB, s.GamesB),
		Period:    format.PeriodLabel(s.CurrentGame, "Set"),
		Serving:   s.Server,
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.Home, s.Setup.Away),
	}
	if s.IsComplete {
		sum.Serving = game.None
	}
	return sum
}
