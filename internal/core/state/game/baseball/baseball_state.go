package baseball

import (
	"fmt"
	"strings"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const OutsPerHalf = 3

type Setup struct {
	Home    string `json:"home"`
	Away    string `json:"away"`
	Innings int    `json:"innings"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.Innings <= 0 {
		s.Innings = 9
	}
	return s
}

// State is a line score. HomeRuns and AwayRuns hold runs per inning and
// grow by one for every extra inning.
type State struct {
	Setup Setup `json:"setup"`

	HomeRuns   []int `json:"home_runs"`
	AwayRuns   []int `json:"away_runs"`
	HomeHits   int   `json:"home_hits"`
	AwayHits   int   `json:"away_hits"`
	HomeErrors int   `json:"home_errors"`
	AwayErrors int   `json:"away_errors"`
	Inning     int   `json:"inning"`
	TopHalf    bool  `json:"top_half"`
	Outs       int   `json:"outs"`
	IsComplete bool  `json:"is_complete"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	return State{
		Setup:    setup,
		HomeRuns: make([]int, setup.Innings),
		AwayRuns: make([]int, setup.Innings),
		Inning:   1,
		TopHalf:  true,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportBaseball,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func total(runs []int) int {
	n := 0
	for _, r := range runs {
		n += r
	}
	return n
}

func (s State) HomeTotal() int { return total(s.HomeRuns) }
func (s State) AwayTotal() int { return total(s.AwayRuns) }

// Batting is the team at the plate: Away in the top half, Home in the
// bottom.
func (s State) Batting() game.Side {
	if s.TopHalf {
		return game.Away
	}
	return game.Home
}

func (s State) Winner() game.Side {
	return game.ScoreWinner(s.IsComplete, s.HomeTotal(), s.AwayTotal(), game.Home)
}

// LineScore renders one team's row: runs per inning then R H E.
func LineScore(name string, runs []int, hits, errors int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s", name)
	for _, r := range runs {
		fmt.Fprintf(&b, " %2d", r)
	}
	fmt.Fprintf(&b, " | %2d %2d %2d", total(runs), hits, errors)
	return b.String()
}

func Summarize(s State) game.Summary {
	half := "Bottom"
	if s.TopHalf {
		half = "Top"
	}
	sum := game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.HomeTotal()),
		AwayScore: fmt.Sprint(s.AwayTotal()),
		Period:    fmt.Sprintf("%s %s, %d out", half, format.Ordinal(s.Inning), s.Outs),
		Serving:   s.Batting(),
		Lines: []string{
			LineScore(s.Setup.Away, s.AwayRuns, s.AwayHits, s.AwayErrors),
			LineScore(s.Setup.Home, s.HomeRuns, s.HomeHits, s.HomeErrors),
		},
		Complete: s.IsComplete,
		Winner:   game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
	if s.IsComplete {
		sum.Serving = game.None
		sum.Period = "Final"
		if s.Inning > s.Setup.Innings {
			sum.Period = fmt.Sprintf("Final/%d", s.Inning)
		}
	}
	return sum
}
