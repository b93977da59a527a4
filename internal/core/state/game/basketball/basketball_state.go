package basketball

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const (
	quarters       = 4
	shotClock      = 24
	timeouts       = 5
	violationHoldS = 2 // seconds the violation stays on the board before the shot clock resets
)

type Setup struct {
	Home                   string `json:"home"`
	Away                   string `json:"away"`
	QuarterDurationSeconds int    `json:"quarter_duration_seconds"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.QuarterDurationSeconds <= 0 {
		s.QuarterDurationSeconds = 12 * 60
	}
	return s
}

type State struct {
	Setup Setup `json:"setup"`

	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
	Quarter   int `json:"quarter"`

	GameClock int  `json:"game_clock"`
	ShotClock int  `json:"shot_clock"`
	Running   bool `json:"running"`

	ShotClockViolation bool `json:"shot_clock_violation"`
	ViolationHold      int  `json:"violation_hold"`

	HomeFouls    int  `json:"home_fouls"`
	AwayFouls    int  `json:"away_fouls"`
	HomeTimeouts int  `json:"home_timeouts"`
	AwayTimeouts int  `json:"away_timeouts"`
	IsComplete   bool `json:"is_complete"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	return State{
		Setup:        setup,
		Quarter:      1,
		GameClock:    setup.QuarterDurationSeconds,
		ShotClock:    shotClock,
		HomeTimeouts: timeouts,
		AwayTimeouts: timeouts,
	}
}

func (s State) Winner() game.Side {
	return game.ScoreWinner(s.IsComplete, s.HomeScore, s.AwayScore, game.Home)
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:    events.SportBasketball,
		Init:     game.SetupFrom(Initial),
		Apply:    Apply,
		Codec:    codec,
		Undoable: game.Transient[Event](StartTimer{}.Kind(), StopTimer{}.Kind(), Tick{}.Kind(), ResetShotClock{}.Kind(), ClearViolation{}.Kind()),
		Merge:    game.MergeTicks(func(n int) Event { return Tick{Seconds: n} }),
		Tick:     func() Event { return Tick{Seconds: 1} },
		// A violation keeps the ticker feeding us until it clears itself.
		Running:   func(s State) bool { return s.Running || s.ShotClockViolation },
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func Summarize(s State) game.Summary {
	shot := fmt.Sprintf("Shot clock %d", s.ShotClock)
	if s.ShotClockViolation {
		shot = "SHOT CLOCK VIOLATION"
	}
	return game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.HomeScore),
		AwayScore: fmt.Sprint(s.AwayScore),
		Period:    format.PeriodLabel(s.Quarter, "Quarter"),
		Clock:     format.Clock(s.GameClock),
		Lines: []string{
			shot,
			fmt.Sprintf("Fouls %d-%d  Timeouts %d-%d", s.HomeFouls, s.AwayFouls, s.HomeTimeouts, s.AwayTimeouts),
		},
		Complete: s.IsComplete,
		Winner:   game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
}
