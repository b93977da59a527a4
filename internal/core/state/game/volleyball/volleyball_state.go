package volleyball

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const TimeoutsPerSet = 2

type Setup struct {
	Home           string `json:"home"`
	Away           string `json:"away"`
	BestOf         int    `json:"best_of"`
	PointsToWin    int    `json:"points_to_win"`
	FinalSetPoints int    `json:"final_set_points"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.BestOf <= 0 {
		s.BestOf = 5
	}
	if s.PointsToWin <= 0 {
		s.PointsToWin = 25
	}
	if s.FinalSetPoints <= 0 {
		s.FinalSetPoints = 15
	}
	return s
}

// State uses the rally line's games as sets, Home first.
type State struct {
	Setup Setup `json:"setup"`
	game.RallyTracker

	Server       game.Side `json:"server"`
	HomeTimeouts int       `json:"home_timeouts"`
	AwayTimeouts int       `json:"away_timeouts"`
}

func Initial(setup Setup) State {
	return State{
		Setup:        setup.withDefaults(),
		RallyTracker: game.NewRally(),
		Server:       game.Home,
		HomeTimeouts: TimeoutsPerSet,
		AwayTimeouts: TimeoutsPerSet,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportVolleyball,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

// FinalSet reports whether the current set is the decider, played to
// FinalSetPoints.
func (s State) FinalSet() bool {
	need := game.GamesToWin(s.Setup.BestOf)
	return s.GamesA == need-1 && s.GamesB == need-1
}

// SetTarget is the points needed to take the current set.
func (s State) SetTarget() int {
	if s.FinalSet() {
		return s.Setup.FinalSetPoints
	}
	return s.Setup.PointsToWin
}

func Summarize(s State) game.Summary {
	period := format.PeriodLabel(s.CurrentGame, "Set")
	if s.FinalSet() && !s.IsComplete {
		period += " (final)"
	}
	sum := game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprintf("%d (sets %d)", s.PointsA, s.GamesA),
		AwayScore: fmt.Sprintf("%d (sets %d)", s.PointsB, s.GamesB),
		Period:    period,
		Serving:   s.Server,
		Lines:     []string{fmt.Sprintf("Timeouts: %d - %d", s.HomeTimeouts, s.AwayTimeouts)},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.Home, s.Setup.Away),
	}
	if s.IsComplete {
		sum.Serving = game.None
	}
	return sum
}
