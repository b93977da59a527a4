package badminton

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type Setup struct {
	PlayerA     string `json:"player_a"`
	PlayerB     string `json:"player_b"`
	BestOf      int    `json:"best_of"`
	PointsToWin int    `json:"points_to_win"`
}

func (s Setup) withDefaults() Setup {
	if s.PlayerA == "" {
		s.PlayerA = "Player A"
	}
	if s.PlayerB == "" {
		s.PlayerB = "Player B"
	}
	if s.BestOf <= 0 {
		s.BestOf = 3
	}
	if s.PointsToWin <= 0 {
		s.PointsToWin = 21
	}
	return s
}

// Cap is the score that ends a game outright regardless of margin.
func (s Setup) Cap() int { return s.PointsToWin + 9 }

type Court string

const (
	Right Court = "right"
	Left  Court = "left"
)

type State struct {
	Setup Setup `json:"setup"`
	game.RallyTracker

	Server       game.Side `json:"server"`
	ServiceCourt Court     `json:"service_court"`
}

func Initial(setup Setup) State {
	return State{
		Setup:        setup.withDefaults(),
		RallyTracker: game.NewRally(),
		Server:       game.PlayerA,
		ServiceCourt: Right,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportBadminton,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

// courtFor serves from the right on an even score, the left on odd.
func courtFor(score int) Court {
	if score%2 == 0 {
		return Right
	}
	return Left
}

func Summarize(s State) game.Summary {
	sum := game.Summary{
		Home:      s.Setup.PlayerA,
		Away:      s.Setup.PlayerB,
		HomeScore: fmt.Sprintf("%d (games %d)", s.PointsA, s.GamesA),
		AwayScore: fmt.Sprintf("%d (games %d)", s.PointsB, s.GamesB),
		Period:    format.PeriodLabel(s.CurrentGame, "Game"),
		Serving:   s.Server,
		Lines:     []string{fmt.Sprintf("Service court: %s", s.ServiceCourt)},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.PlayerA, s.Setup.PlayerB),
	}
	if s.IsComplete {
		sum.Serving = game.None
		sum.Lines = nil
	}
	return sum
}
