package waterpolo

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const (
	periods   = 4
	shotClock = 30
	timeouts  = 2
)

type Setup struct {
	Home                  string `json:"home"`
	Away                  string `json:"away"`
	PeriodDurationMinutes int    `json:"period_duration_minutes"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.PeriodDurationMinutes <= 0 {
		s.PeriodDurationMinutes = 8
	}
	return s
}

type State struct {
	Setup Setup `json:"setup"`

	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
	Period    int `json:"period"`

	PeriodSeconds int  `json:"period_seconds"`
	ShotClock     int  `json:"shot_clock"`
	Running       bool `json:"running"`
	IsComplete    bool `json:"is_complete"`

	HomeExclusions int `json:"home_exclusions"`
	AwayExclusions int `json:"away_exclusions"`
	HomeTimeouts   int `json:"home_timeouts"`
	AwayTimeouts   int `json:"away_timeouts"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	return State{
		Setup:         setup,
		Period:        1,
		PeriodSeconds: setup.PeriodDurationMinutes * 60,
		ShotClock:     shotClock,
		HomeTimeouts:  timeouts,
		AwayTimeouts:  timeouts,
	}
}

func (s State) Winner() game.Side {
	return game.ScoreWinner(s.IsComplete, s.HomeScore, s.AwayScore, game.Home)
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportWaterPolo,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Undoable:  game.Transient[Event](StartTimer{}.Kind(), StopTimer{}.Kind(), Tick{}.Kind(), ResetShotClock{}.Kind()),
		Merge:     game.MergeTicks(func(n int) Event { return Tick{Seconds: n} }),
		Tick:      func() Event { return Tick{Seconds: 1} },
		Running:   func(s State) bool { return s.Running },
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func Summarize(s State) game.Summary {
	return game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.HomeScore),
		AwayScore: fmt.Sprint(s.AwayScore),
		Period:    format.PeriodLabel(s.Period, "Period"),
		Clock:     format.Clock(s.PeriodSeconds),
		Lines: []string{
			fmt.Sprintf("Shot clock %d", s.ShotClock),
			fmt.Sprintf("Exclusions %d-%d  Timeouts %d-%d", s.HomeExclusions, s.AwayExclusions, s.HomeTimeouts, s.AwayTimeouts),
		},
		Complete: s.IsComplete,
		Winner:   game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
}
