package football

import (
	"slices"

	"github.com/charleschow/sportshunt/internal/core/names"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	footballEvent()
}

type Goal struct {
	Team game.Side `json:"team"`
}

// Card books Player. A second yellow for the same player becomes a red.
type Card struct {
	Team   game.Side `json:"team"`
	Type   CardType  `json:"type"`
	Player string    `json:"player"`
}

type RecordPenalty struct {
	Team   game.Side `json:"team"`
	Scored bool      `json:"scored"`
}

type EndPhase struct{}
type StartExtraTime struct{}
type StartPenalties struct{}
type EndAsDraw struct{}

type StartTimer struct{}
type StopTimer struct{}

type Tick struct {
	Seconds int `json:"seconds,omitempty"`
}

// AddStoppage announces one more minute of added time.
type AddStoppage struct{}

type SetExtraTimeDuration struct {
	Seconds int `json:"seconds"`
}

func (Goal) Kind() string                 { return "goal" }
func (Card) Kind() string                 { return "card" }
func (RecordPenalty) Kind() string        { return "penalty" }
func (EndPhase) Kind() string             { return "end_phase" }
func (StartExtraTime) Kind() string       { return "start_extra_time" }
func (StartPenalties) Kind() string       { return "start_penalties" }
func (EndAsDraw) Kind() string            { return "end_as_draw" }
func (StartTimer) Kind() string           { return "start" }
func (StopTimer) Kind() string            { return "stop" }
func (Tick) Kind() string                 { return "tick" }
func (AddStoppage) Kind() string          { return "add_stoppage" }
func (SetExtraTimeDuration) Kind() string { return "set_extra_time" }

func (t Tick) TickSeconds() int { return game.TickSteps(t.Seconds) }

func (Goal) footballEvent()                 {}
func (Card) footballEvent()                 {}
func (RecordPenalty) footballEvent()        {}
func (EndPhase) footballEvent()             {}
func (StartExtraTime) footballEvent()       {}
func (StartPenalties) footballEvent()       {}
func (EndAsDraw) footballEvent()            {}
func (StartTimer) footballEvent()           {}
func (StopTimer) footballEvent()            {}
func (Tick) footballEvent()                 {}
func (AddStoppage) footballEvent()          {}
func (SetExtraTimeDuration) footballEvent() {}

var codec = game.NewCodec(
	game.Variant[Event, Goal](),
	game.Variant[Event, Card](),
	game.Variant[Event, RecordPenalty](),
	game.Variant[Event, EndPhase](),
	game.Variant[Event, StartExtraTime](),
	game.Variant[Event, StartPenalties](),
	game.Variant[Event, EndAsDraw](),
	game.Variant[Event, StartTimer](),
	game.Variant[Event, StopTimer](),
	game.Variant[Event, Tick](),
	game.Variant[Event, AddStoppage](),
	game.Variant[Event, SetExtraTimeDuration](),
)

func Apply(s State, e Event) State {
	if ev, ok := e.(SetExtraTimeDuration); ok {
		if ev.Seconds > 0 {
			s.Setup.ExtraTimeHalfSeconds = ev.Seconds
		}
		return s
	}
	if s.Phase == Complete {
		return s
	}
	switch ev := e.(type) {
	case Goal:
		switch ev.Team {
		case game.Home:
			s.HomeScore++
		case game.Away:
			s.AwayScore++
		}
	case Card:
		return card(s, ev)
	case RecordPenalty:
		return penalty(s, ev.Team, ev.Scored)
	case EndPhase:
		return endPhase(s)
	case StartExtraTime:
		if s.Phase != SecondHalf {
			return s
		}
		return newPhase(s, ExtraFirst)
	case StartPenalties:
		if s.Phase != SecondHalf && s.Phase != ExtraSecond {
			return s
		}
		s.Phase = Penalties
		s.HomePenalties, s.AwayPenalties = nil, nil
		s.PenaltyRound = 1
		s.PenaltyTeam = game.Home
		s.Running = false
	case EndAsDraw:
		s.Phase = Complete
		s.Running = false
	case StartTimer:
		if s.Phase != Penalties {
			s.Running = true
		}
	case StopTimer:
		s.Running = false
	case Tick:
		if s.Running {
			s.TimerSeconds += ev.TickSeconds()
		}
	case AddStoppage:
		s.Stoppage++
	}
	return s
}

func newPhase(s State, p Phase) State {
	s.Phase = p
	s.TimerSeconds = 0
	s.Stoppage = 0
	s.Running = false
	return s
}

// endPhase moves first halves on to second halves. The end of a second
// half only stops the clock: extra time, penalties or a draw follow by
// explicit choice.
func endPhase(s State) State {
	switch s.Phase {
	case FirstHalf:
		return newPhase(s, SecondHalf)
	case ExtraFirst:
		return newPhase(s, ExtraSecond)
	case SecondHalf, ExtraSecond:
		s.Running = false
	}
	return s
}

func card(s State, c Card) State {
	if !c.Team.IsTeam() || c.Player == "" {
		return s
	}
	b := Booking{Player: c.Player, Minute: s.MatchMinute(), Type: c.Type}
	yellows := game.Pick(c.Team, s.HomeYellow, s.AwayYellow)
	reds := game.Pick(c.Team, s.HomeRed, s.AwayRed)
	switch c.Type {
	case Yellow:
		second := slices.ContainsFunc(yellows, func(y Booking) bool { return names.Same(y.Player, c.Player) })
		if second {
			b.Type = Red
			reds = append(slices.Clone(reds), b)
		} else {
			yellows = append(slices.Clone(yellows), b)
		}
	case Red:
		reds = append(slices.Clone(reds), b)
	default:
		return s
	}
	if c.Team == game.Home {
		s.HomeYellow, s.HomeRed = yellows, reds
	} else {
		s.AwayYellow, s.AwayRed = yellows, reds
	}
	return s
}

func penalty(s State, team game.Side, goal bool) State {
	if s.Phase != Penalties || !team.IsTeam() {
		return s
	}
	if team == game.Home {
		s.HomePenalties = append(slices.Clone(s.HomePenalties), goal)
		s.PenaltyTeam = game.Away
	} else {
		s.AwayPenalties = append(slices.Clone(s.AwayPenalties), goal)
		s.PenaltyTeam = game.Home
		s.PenaltyRound++
	}

	hs, as := scored(s.HomePenalties), scored(s.AwayPenalties)
	ht, at := len(s.HomePenalties), len(s.AwayPenalties)
	switch {
	case ht >= shootoutRounds && at >= shootoutRounds && s.PenaltyRound > shootoutRounds:
		// Sudden death: decided once both have kicked and the tallies differ.
		if ht == at && hs != as {
			s.Phase = Complete
		}
	case s.PenaltyRound <= shootoutRounds:
		if hs > as+(shootoutRounds-at) || as > hs+(shootoutRounds-ht) {
			s.Phase = Complete
		}
	}
	return s
}
