package football

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type Phase string

const (
	FirstHalf   Phase = "first-half"
	SecondHalf  Phase = "second-half"
	ExtraFirst  Phase = "extra-first"
	ExtraSecond Phase = "extra-second"
	Penalties   Phase = "penalties"
	Complete    Phase = "complete"
)

const shootoutRounds = 5

type Setup struct {
	Home                 string `json:"home"`
	Away                 string `json:"away"`
	HalfDurationSeconds  int    `json:"half_duration_seconds"`
	ExtraTimeHalfSeconds int    `json:"extra_time_half_seconds"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.HalfDurationSeconds <= 0 {
		s.HalfDurationSeconds = 45 * 60
	}
	if s.ExtraTimeHalfSeconds <= 0 {
		s.ExtraTimeHalfSeconds = 15 * 60
	}
	return s
}

type CardType string

const (
	Yellow CardType = "yellow"
	Red    CardType = "red"
)

// Booking is one card shown to a player.
type Booking struct {
	Player string   `json:"player"`
	Minute int      `json:"minute"`
	Type   CardType `json:"type"`
}

type State struct {
	Setup Setup `json:"setup"`

	HomeScore int   `json:"home_score"`
	AwayScore int   `json:"away_score"`
	Phase     Phase `json:"phase"`

	// Count-up clock for the current phase.
	TimerSeconds int  `json:"timer_seconds"`
	Running      bool `json:"running"`
	Stoppage     int  `json:"stoppage"` // announced minutes

	HomePenalties []bool    `json:"home_penalties"`
	AwayPenalties []bool    `json:"away_penalties"`
	PenaltyRound  int       `json:"penalty_round"`
	PenaltyTeam   game.Side `json:"penalty_team"`

	HomeYellow []Booking `json:"home_yellow"`
	HomeRed    []Booking `json:"home_red"`
	AwayYellow []Booking `json:"away_yellow"`
	AwayRed    []Booking `json:"away_red"`
}

func Initial(setup Setup) State {
	return State{
		Setup:        setup.withDefaults(),
		Phase:        FirstHalf,
		PenaltyRound: 1,
		PenaltyTeam:  game.Home,
	}
}

// Winner is set once the match is complete: by shootout when one was
// held, otherwise by score. Level scores give Tie.
func (s State) Winner() game.Side {
	if s.Phase != Complete {
		return game.None
	}
	if len(s.HomePenalties) > 0 || len(s.AwayPenalties) > 0 {
		h, a := scored(s.HomePenalties), scored(s.AwayPenalties)
		if h != a {
			return pick(h > a)
		}
	}
	if s.HomeScore == s.AwayScore {
		return game.Tie
	}
	return pick(s.HomeScore > s.AwayScore)
}

// MatchMinute is the minute of play across phases, used for card records.
func (s State) MatchMinute() int {
	half := s.Setup.HalfDurationSeconds
	extra := s.Setup.ExtraTimeHalfSeconds
	offset := 0
	switch s.Phase {
	case SecondHalf:
		offset = half
	case ExtraFirst:
		offset = 2 * half
	case ExtraSecond, Penalties, Complete:
		offset = 2*half + extra
	}
	return (offset + s.TimerSeconds) / 60
}

func pick(home bool) game.Side {
	if home {
		return game.Home
	}
	return game.Away
}

func scored(kicks []bool) int {
	n := 0
	for _, k := range kicks {
		if k {
			n++
		}
	}
	return n
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportFootball,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Undoable:  game.Transient[Event](StartTimer{}.Kind(), StopTimer{}.Kind(), Tick{}.Kind(), AddStoppage{}.Kind(), SetExtraTimeDuration{}.Kind()),
		Merge:     game.MergeTicks(func(n int) Event { return Tick{Seconds: n} }),
		Tick:      func() Event { return Tick{Seconds: 1} },
		Running:   func(s State) bool { return s.Running },
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

var phaseLabels = map[Phase]string{
	FirstHalf:   "1st Half",
	SecondHalf:  "2nd Half",
	ExtraFirst:  "Extra Time 1st Half",
	ExtraSecond: "Extra Time 2nd Half",
	Penalties:   "Penalties",
	Complete:    "Full Time",
}

func kicks(k []bool) string {
	out := make([]byte, 0, len(k))
	for _, v := range k {
		if v {
			out = append(out, 'O')
		} else {
			out = append(out, 'X')
		}
	}
	return string(out)
}

func Summarize(s State) game.Summary {
	clock := format.Clock(s.TimerSeconds)
	if s.Stoppage > 0 {
		clock += fmt.Sprintf(" +%d", s.Stoppage)
	}
	var lines []string
	if s.Phase == Penalties || len(s.HomePenalties)+len(s.AwayPenalties) > 0 {
		lines = append(lines,
			fmt.Sprintf("Shootout %d-%d (round %d)", scored(s.HomePenalties), scored(s.AwayPenalties), s.PenaltyRound),
			fmt.Sprintf("%s: %s", s.Setup.Home, kicks(s.HomePenalties)),
			fmt.Sprintf("%s: %s", s.Setup.Away, kicks(s.AwayPenalties)))
	}
	lines = append(lines,
		fmt.Sprintf("Cards %s: %dY %dR  %s: %dY %dR", s.Setup.Home, len(s.HomeYellow), len(s.HomeRed),
			s.Setup.Away, len(s.AwayYellow), len(s.AwayRed)))
	sum := game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.HomeScore),
		AwayScore: fmt.Sprint(s.AwayScore),
		Period:    phaseLabels[s.Phase],
		Clock:     clock,
		Lines:     lines,
		Complete:  s.Phase == Complete,
		Winner:    game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
	if s.Phase == Penalties {
		sum.Serving = s.PenaltyTeam
	}
	return sum
}
