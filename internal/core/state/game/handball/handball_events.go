package handball

import (
	"slices"

	"github.com/charleschow/sportshunt/internal/core/names"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	handballEvent()
}

type Goal struct {
	Team game.Side `json:"team"`
}

// Suspend sends Player off for two minutes.
type Suspend struct {
	Team   game.Side `json:"team"`
	Player string    `json:"player"`
}

type UseTimeout struct {
	Team game.Side `json:"team"`
}

type EndHalf struct{}
type StartTimer struct{}
type StopTimer struct{}

type Tick struct {
	Seconds int `json:"seconds,omitempty"`
}

func (Goal) Kind() string       { return "goal" }
func (Suspend) Kind() string    { return "suspension" }
func (UseTimeout) Kind() string { return "timeout" }
func (EndHalf) Kind() string    { return "end_half" }
func (StartTimer) Kind() string { return "start" }
func (StopTimer) Kind() string  { return "stop" }
func (Tick) Kind() string       { return "tick" }

func (t Tick) TickSeconds() int { return game.TickSteps(t.Seconds) }

func (Goal) handballEvent()       {}
func (Suspend) handballEvent()    {}
func (UseTimeout) handballEvent() {}
func (EndHalf) handballEvent()    {}
func (StartTimer) handballEvent() {}
func (StopTimer) handballEvent()  {}
func (Tick) handballEvent()       {}

var codec = game.NewCodec(
	game.Variant[Event, Goal](),
	game.Variant[Event, Suspend](),
	game.Variant[Event, UseTimeout](),
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
	case Goal:
		switch ev.Team {
		case game.Home:
			s.HomeScore++
		case game.Away:
			s.AwayScore++
		}
	case Suspend:
		if !ev.Team.IsTeam() || ev.Player == "" {
			return s
		}
		return s.withBench(ev.Team, suspend(s.bench(ev.Team), ev.Player))
	case UseTimeout:
		if !ev.Team.IsTeam() {
			return s
		}
		b := s.bench(ev.Team)
		if b.Timeouts <= 0 || b.TimeoutsThisHalf >= timeoutsPerHalf {
			return s
		}
		b.Timeouts--
		b.TimeoutsThisHalf++
		s.Running = false
		return s.withBench(ev.Team, b)
	case EndHalf:
		s.Running = false
		if s.Half >= halves {
			s.IsComplete = true
			return s
		}
		s.Half++
		s.TimerSeconds = s.Setup.HalfDurationMinutes * 60
		for _, side := range []game.Side{game.Home, game.Away} {
			b := s.bench(side)
			b.Suspensions = nil
			b.TimeoutsThisHalf = 0
			s = s.withBench(side, b)
		}
	case StartTimer:
		if s.TimerSeconds > 0 {
			s.Running = true
		}
	case StopTimer:
		s.Running = false
	case Tick:
		for range ev.TickSeconds() {
			if !s.Running {
				break
			}
			s.TimerSeconds--
			s.Home.Suspensions = serve(s.Home.Suspensions)
			s.Away.Suspensions = serve(s.Away.Suspensions)
			if s.TimerSeconds <= 0 {
				s.TimerSeconds = 0
				s.Running = false
			}
		}
	}
	return s
}

func (s State) bench(side game.Side) Bench {
	return game.Pick(side, s.Home, s.Away)
}

func (s State) withBench(side game.Side, b Bench) State {
	if side == game.Home {
		s.Home = b
	} else {
		s.Away = b
	}
	return s
}

func suspend(b Bench, player string) Bench {
	i := slices.IndexFunc(b.Suspensions, func(s Suspension) bool { return names.Same(s.Player, player) })
	if i < 0 {
		b.Suspensions = append(slices.Clone(b.Suspensions), Suspension{Player: player, SecondsRemaining: suspensionSeconds, Count: 1})
		return b
	}
	existing := b.Suspensions[i]
	if existing.Count >= maxSuspensions {
		b.Suspensions = slices.Delete(slices.Clone(b.Suspensions), i, i+1)
		b.Disqualified = append(slices.Clone(b.Disqualified), existing.Player)
		return b
	}
	b.Suspensions = slices.Clone(b.Suspensions)
	b.Suspensions[i] = Suspension{Player: existing.Player, SecondsRemaining: suspensionSeconds, Count: existing.Count + 1}
	return b
}

// serve counts suspensions down one second. An expired suspension stays
// on the sheet with zero seconds so a later one for the same player still
// counts toward disqualification.
func serve(ss []Suspension) []Suspension {
	if len(ss) == 0 {
		return ss
	}
	out := slices.Clone(ss)
	for i := range out {
		out[i].SecondsRemaining = game.Countdown(out[i].SecondsRemaining)
	}
	return out
}
