package rugby

import (
	"slices"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	rugbyEvent()
}

type Try struct {
	Team game.Side `json:"team"`
}

// Conversion closes the window opened by a try, made or missed.
type Conversion struct {
	Team game.Side `json:"team"`
	Made bool      `json:"made"`
}

type PenaltyGoal struct {
	Team game.Side `json:"team"`
}

type DropGoal struct {
	Team game.Side `json:"team"`
}

// PenaltyTry is worth seven points with no conversion attempt.
type PenaltyTry struct {
	Team game.Side `json:"team"`
}

type CardType string

const (
	Yellow CardType = "yellow"
	Red    CardType = "red"
)

type ShowCard struct {
	Team   game.Side `json:"team"`
	Type   CardType  `json:"type"`
	Player string    `json:"player"`
}

type EndHalf struct{}
type StartTimer struct{}
type StopTimer struct{}

type Tick struct {
	Seconds int `json:"seconds,omitempty"`
}

func (Try) Kind() string         { return "try" }
func (Conversion) Kind() string  { return "conversion" }
func (PenaltyGoal) Kind() string { return "penalty" }
func (DropGoal) Kind() string    { return "drop_goal" }
func (PenaltyTry) Kind() string  { return "penalty_try" }
func (ShowCard) Kind() string    { return "card" }
func (EndHalf) Kind() string     { return "end_half" }
func (StartTimer) Kind() string  { return "start" }
func (StopTimer) Kind() string   { return "stop" }
func (Tick) Kind() string        { return "tick" }

func (t Tick) TickSeconds() int { return game.TickSteps(t.Seconds) }

func (Try) rugbyEvent()         {}
func (Conversion) rugbyEvent()  {}
func (PenaltyGoal) rugbyEvent() {}
func (DropGoal) rugbyEvent()    {}
func (PenaltyTry) rugbyEvent()  {}
func (ShowCard) rugbyEvent()    {}
func (EndHalf) rugbyEvent()     {}
func (StartTimer) rugbyEvent()  {}
func (StopTimer) rugbyEvent()   {}
func (Tick) rugbyEvent()        {}

var codec = game.NewCodec(
	game.Variant[Event, Try](),
	game.Variant[Event, Conversion](),
	game.Variant[Event, PenaltyGoal](),
	game.Variant[Event, DropGoal](),
	game.Variant[Event, PenaltyTry](),
	game.Variant[Event, ShowCard](),
	game.Variant[Event, EndHalf](),
	game.Variant[Event, StartTimer](),
	game.Variant[Event, StopTimer](),
	game.Variant[Event, Tick](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Try:
		return s.score(ev.Team, func(t *Tally) {
			t.Score += tryPoints
			t.Tries++
		}, func(s *State) {
			s.CanConvert = true
			s.LastTryTeam = ev.Team
		})
	case Conversion:
		if !ev.Team.IsTeam() {
			return s
		}
		closeWindow := func(s *State) {
			s.CanConvert = false
			s.LastTryTeam = game.None
		}
		if !ev.Made {
			closeWindow(&s)
			return s
		}
		return s.score(ev.Team, func(t *Tally) {
			t.Score += conversionPoints
			t.Conversions++
		}, closeWindow)
	case PenaltyGoal:
		return s.score(ev.Team, func(t *Tally) {
			t.Score += penaltyPoints
			t.Penalties++
		}, nil)
	case DropGoal:
		return s.score(ev.Team, func(t *Tally) {
			t.Score += dropGoalPoints
			t.DropGoals++
		}, nil)
	case PenaltyTry:
		return s.score(ev.Team, func(t *Tally) {
			t.Score += penaltyTryPoints
			t.Tries++
			t.Conversions++
		}, nil)
	case ShowCard:
		return card(s, ev)
	case EndHalf:
		s.Running = false
		if s.Half >= 2 {
			s.IsComplete = true
			return s
		}
		s.Half++
		s.TimerSeconds = 0
		s.CanConvert = false
		s.LastTryTeam = game.None
	case StartTimer:
		s.Running = true
	case StopTimer:
		s.Running = false
	case Tick:
		if !s.Running {
			return s
		}
		n := ev.TickSeconds()
		s.TimerSeconds += n
		s.Home.Yellow = sinBin(s.Home.Yellow, n)
		s.Away.Yellow = sinBin(s.Away.Yellow, n)
	}
	return s
}

// score applies fn to the scoring team's tally, then after (if any) to the
// whole state.
func (s State) score(team game.Side, fn func(*Tally), after func(*State)) State {
	switch team {
	case game.Home:
		fn(&s.Home)
	case game.Away:
		fn(&s.Away)
	default:
		return s
	}
	if after != nil {
		after(&s)
	}
	return s
}

func card(s State, c ShowCard) State {
	if c.Player == "" || (c.Type != Yellow && c.Type != Red) {
		return s
	}
	rec := Card{Player: c.Player, Minute: s.TimerSeconds / 60}
	if c.Type == Yellow {
		rec.SecondsRemaining = sinBinSeconds
	}
	return s.score(c.Team, func(t *Tally) {
		if c.Type == Yellow {
			t.Yellow = append(slices.Clone(t.Yellow), rec)
		} else {
			t.Red = append(slices.Clone(t.Red), rec)
		}
	}, nil)
}

// sinBin counts yellow cards down by n seconds; players whose time is
// served come off the list.
func sinBin(cards []Card, n int) []Card {
	if len(cards) == 0 {
		return cards
	}
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		c.SecondsRemaining -= n
		if c.SecondsRemaining > 0 {
			out = append(out, c)
		}
	}
	return out
}
