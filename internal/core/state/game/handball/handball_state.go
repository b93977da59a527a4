package handball

import (
	"fmt"
	"strings"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const (
	halves            = 2
	timeoutsPerMatch  = 3
	timeoutsPerHalf   = 2
	suspensionSeconds = 120
	// The third suspension of the same player is a disqualification.
	maxSuspensions = 2
)

type Setup struct {
	Home                string `json:"home"`
	Away                string `json:"away"`
	HalfDurationMinutes int    `json:"half_duration_minutes"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.HalfDurationMinutes <= 0 {
		s.HalfDurationMinutes = 30
	}
	return s
}

type Suspension struct {
	Player           string `json:"player"`
	SecondsRemaining int    `json:"seconds_remaining"`
	Count            int    `json:"count"`
}

// Bench is one team's discipline record and timeout allowance.
type Bench struct {
	Suspensions      []Suspension `json:"suspensions"`
	Disqualified     []string     `json:"disqualified"`
	Timeouts         int          `json:"timeouts"`
	TimeoutsThisHalf int          `json:"timeouts_this_half"`
}

type State struct {
	Setup Setup `json:"setup"`

	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
	Half      int `json:"half"`

	TimerSeconds int  `json:"timer_seconds"` // counts down
	Running      bool `json:"running"`
	IsComplete   bool `json:"is_complete"`

	Home Bench `json:"home"`
	Away Bench `json:"away"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	return State{
		Setup:        setup,
		Half:         1,
		TimerSeconds: setup.HalfDurationMinutes * 60,
		Home:         Bench{Timeouts: timeoutsPerMatch},
		Away:         Bench{Timeouts: timeoutsPerMatch},
	}
}

func (s State) Winner() game.Side {
	return game.ScoreWinner(s.IsComplete, s.HomeScore, s.AwayScore, game.Home)
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportHandball,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Undoable:  game.Transient[Event](StartTimer{}.Kind(), StopTimer{}.Kind(), Tick{}.Kind()),
		Merge:     game.MergeTicks(func(n int) Event { return Tick{Seconds: n} }),
		Tick:      func() Event { return Tick{Seconds: 1} },
		Running:   func(s State) bool { return s.Running },
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func benchLine(team string, b Bench) string {
	susp := make([]string, len(b.Suspensions))
	for i, s := range b.Suspensions {
		susp[i] = fmt.Sprintf("%s %s (%d)", s.Player, format.Clock(s.SecondsRemaining), s.Count)
	}
	line := fmt.Sprintf("%s: TO %d", team, b.Timeouts)
	if len(susp) > 0 {
		line += "  2min: " + strings.Join(susp, ", ")
	}
	if len(b.Disqualified) > 0 {
		line += "  DQ: " + strings.Join(b.Disqualified, ", ")
	}
	return line
}

func Summarize(s State) game.Summary {
	return game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.HomeScore),
		AwayScore: fmt.Sprint(s.AwayScore),
		Period:    format.PeriodLabel(s.Half, "Half"),
		Clock:     format.Clock(s.TimerSeconds),
		Lines:     []string{benchLine(s.Setup.Home, s.Home), benchLine(s.Setup.Away, s.Away)},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
}
