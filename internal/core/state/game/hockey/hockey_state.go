package hockey

import (
	"fmt"
	"strings"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type Variant string

const (
	Ice   Variant = "ice"
	Field Variant = "field"
)

type PenaltyType string

const (
	Minor PenaltyType = "minor"
	Major PenaltyType = "major"
)

var penaltySeconds = map[PenaltyType]int{Minor: 120, Major: 300}

type Setup struct {
	Home       string  `json:"home"`
	Away       string  `json:"away"`
	HockeyType Variant `json:"hockey_type"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.HockeyType != Field {
		s.HockeyType = Ice
	}
	return s
}

// Periods is 3×20 minutes on ice and 4×15 on grass.
func (s Setup) Periods() (count, minutes int) {
	if s.HockeyType == Field {
		return 4, 15
	}
	return 3, 20
}

type Penalty struct {
	Player  string      `json:"player"`
	Seconds int         `json:"seconds"`
	Type    PenaltyType `json:"type"`
}

type State struct {
	Setup Setup `json:"setup"`

	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
	Period    int `json:"period"`

	TimerSeconds int  `json:"timer_seconds"` // counts down
	Running      bool `json:"running"`
	IsComplete   bool `json:"is_complete"`

	HomePenalties []Penalty `json:"home_penalties"`
	AwayPenalties []Penalty `json:"away_penalties"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	_, minutes := setup.Periods()
	return State{
		Setup:        setup,
		Period:       1,
		TimerSeconds: minutes * 60,
	}
}

func (s State) Winner() game.Side {
	return game.ScoreWinner(s.IsComplete, s.HomeScore, s.AwayScore, game.Home)
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportHockey,
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

func penaltyBox(ps []Penalty) string {
	if len(ps) == 0 {
		return "-"
	}
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = fmt.Sprintf("%s (%s %s)", p.Player, p.Type, format.Clock(p.Seconds))
	}
	return strings.Join(out, ", ")
}

func Summarize(s State) game.Summary {
	return game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.HomeScore),
		AwayScore: fmt.Sprint(s.AwayScore),
		Period:    format.PeriodLabel(s.Period, "Period"),
		Clock:     format.Clock(s.TimerSeconds),
		Lines: []string{
			"Penalties " + s.Setup.Home + ": " + penaltyBox(s.HomePenalties),
			"Penalties " + s.Setup.Away + ": " + penaltyBox(s.AwayPenalties),
		},
		Complete: s.IsComplete,
		Winner:   game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
}
