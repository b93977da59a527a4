package rugby

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const (
	tryPoints        = 5
	conversionPoints = 2
	penaltyPoints    = 3
	dropGoalPoints   = 3
	penaltyTryPoints = 7
	sinBinSeconds    = 600
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
		s.HalfDurationMinutes = 40
	}
	return s
}

type Card struct {
	Player           string `json:"player"`
	Minute           int    `json:"minute"`
	SecondsRemaining int    `json:"seconds_remaining,omitempty"`
}

// Tally is one team's scoring breakdown and disciplinary record.
type Tally struct {
	Score       int    `json:"score"`
	Tries       int    `json:"tries"`
	Conversions int    `json:"conversions"`
	Penalties   int    `json:"penalties"`
	DropGoals   int    `json:"drop_goals"`
	Yellow      []Card `json:"yellow"`
	Red         []Card `json:"red"`
}

type State struct {
	Setup Setup `json:"setup"`

	Home Tally `json:"home"`
	Away Tally `json:"away"`
	Half int   `json:"half"`

	TimerSeconds int  `json:"timer_seconds"` // counts up
	Running      bool `json:"running"`
	IsComplete   bool `json:"is_complete"`

	// Conversion window opened by the last try.
	CanConvert  bool      `json:"can_convert"`
	LastTryTeam game.Side `json:"last_try_team"`
}

func Initial(setup Setup) State {
	return State{Setup: setup.withDefaults(), Half: 1}
}

func (s State) Winner() game.Side {
	return game.ScoreWinner(s.IsComplete, s.Home.Score, s.Away.Score, game.Home)
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportRugby,
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

func tallyLine(team string, t Tally) string {
	line := fmt.Sprintf("%s: T%d C%d P%d DG%d", team, t.Tries, t.Conversions, t.Penalties, t.DropGoals)
	for _, c := range t.Yellow {
		line += fmt.Sprintf("  YC %s %s", c.Player, format.Clock(c.SecondsRemaining))
	}
	for _, c := range t.Red {
		line += "  RC " + c.Player
	}
	return line
}

func Summarize(s State) game.Summary {
	lines := []string{tallyLine(s.Setup.Home, s.Home), tallyLine(s.Setup.Away, s.Away)}
	if s.CanConvert {
		lines = append(lines, "Conversion: "+game.Pick(s.LastTryTeam, s.Setup.Home, s.Setup.Away))
	}
	return game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.Home.Score),
		AwayScore: fmt.Sprint(s.Away.Score),
		Period:    format.PeriodLabel(s.Half, "Half"),
		Clock:     format.Clock(s.TimerSeconds),
		Lines:     lines,
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
}
