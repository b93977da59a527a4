package pickleball

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

// Setup names the two teams as team1 (Home) and team2 (Away).
type Setup struct {
	Team1       string `json:"team1"`
	Team2       string `json:"team2"`
	PointsToWin int    `json:"points_to_win"`
	SetsToWin   int    `json:"sets_to_win"`
	WinByTwo    *bool  `json:"win_by_two,omitempty"`
	Doubles     bool   `json:"doubles"`
}

func (s Setup) withDefaults() Setup {
	if s.Team1 == "" {
		s.Team1 = "Team 1"
	}
	if s.Team2 == "" {
		s.Team2 = "Team 2"
	}
	if s.PointsToWin <= 0 {
		s.PointsToWin = 11
	}
	if s.SetsToWin <= 0 {
		s.SetsToWin = 1
	}
	if s.WinByTwo == nil {
		on := true
		s.WinByTwo = &on
	}
	return s
}

func (s Setup) margin() int {
	if s.WinByTwo != nil && !*s.WinByTwo {
		return 1
	}
	return 2
}

func (s Setup) firstServer() int {
	if s.Doubles {
		return 2
	}
	return 1
}

// State embeds the rally line with team1 as the first position. Only the
// serving team can score; ServerNumber is 1 or 2 within the serving team.
type State struct {
	Setup Setup `json:"setup"`
	game.RallyTracker

	ServingTeam  game.Side `json:"serving_team"`
	ServerNumber int       `json:"server_number"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	return State{
		Setup:        setup,
		RallyTracker: game.NewRally(),
		ServingTeam:  game.Home,
		ServerNumber: setup.firstServer(),
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportPickleball,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

// CallScore is the score as called before a serve: serving score,
// receiving score and, in doubles, the server number.
func (s State) CallScore() string {
	serving, receiving := s.PointsA, s.PointsB
	if s.ServingTeam == game.Away {
		serving, receiving = receiving, serving
	}
	if s.Setup.Doubles {
		return fmt.Sprintf("%d-%d-%d", serving, receiving, s.ServerNumber)
	}
	return fmt.Sprintf("%d-%d", serving, receiving)
}

func Summarize(s State) game.Summary {
	sum := game.Summary{
		Home:      s.Setup.Team1,
		Away:      s.Setup.Team2,
		HomeScore: fmt.Sprintf("%d (games %d)", s.PointsA, s.GamesA),
		AwayScore: fmt.Sprintf("%d (games %d)", s.PointsB, s.GamesB),
		Period:    format.PeriodLabel(s.CurrentGame, "Game"),
		Serving:   s.ServingTeam,
		Lines:     []string{"Call: " + s.CallScore()},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.Team1, s.Setup.Team2),
	}
	if s.IsComplete {
		sum.Serving = game.None
		sum.Lines = nil
	}
	return sum
}
