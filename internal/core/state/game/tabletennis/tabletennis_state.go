package tabletennis

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
		s.BestOf = 5
	}
	if s.PointsToWin <= 0 {
		s.PointsToWin = 11
	}
	return s
}

// State tracks one table tennis match. Serve passes every two points, or
// every point once both players reach PointsToWin-1.
type State struct {
	Setup Setup `json:"setup"`
	game.RallyTracker

	Server          game.Side `json:"server"`
	ServesRemaining int       `json:"serves_remaining"`
	// GameServer served first in the current game; the other player opens
	// the next one.
	GameServer game.Side `json:"game_server"`
}

func Initial(setup Setup) State {
	return State{
		Setup:           setup.withDefaults(),
		RallyTracker:    game.NewRally(),
		Server:          game.PlayerA,
		ServesRemaining: 2,
		GameServer:      game.PlayerA,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportTableTennis,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

// Deuce reports whether both players have reached PointsToWin-1.
func (s State) Deuce() bool {
	t := s.Setup.PointsToWin - 1
	return s.PointsA >= t && s.PointsB >= t
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
	switch {
	case s.IsComplete:
		sum.Serving = game.None
	case s.Deuce():
		sum.Lines = []string{"Deuce: serve alternates every point"}
	default:
		sum.Lines = []string{fmt.Sprintf("Serves remaining: %d", s.ServesRemaining)}
	}
	return sum
}
