package hockey

import (
	"slices"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	hockeyEvent()
}

type Goal struct {
	Team game.Side `json:"team"`
}

type AddPenalty struct {
	Team   game.Side   `json:"team"`
	Player string      `json:"player"`
	Type   PenaltyType `json:"type"`
}

type EndPeriod struct{}
type StartTimer struct{}
type StopTimer struct{}

type Tick struct {
	Seconds int `json:"seconds,omitempty"`
}

func (Goal) Kind() string       { return "goal" }
func (AddPenalty) Kind() string { return "penalty" }
func (EndPeriod) Kind() string  { return "end_period" }
func (StartTimer) Kind() string { return "start" }
func (StopTimer) Kind() string  { return "stop" }
func (Tick) Kind() string       { return "tick" }

func (t Tick) TickSeconds() int { return game.TickSteps(t.Seconds) }

func (Goal) hockeyEvent()       {}
func (AddPenalty) hockeyEvent() {}
func (EndPeriod) hockeyEvent()  {}
func (StartTimer) hockeyEvent() {}
func (StopTimer) hockeyEvent()  {}
func (Tick) hockeyEvent()       {}

var codec = game.NewCodec(
	game.Variant[Event, Goal](),
	game.Variant[Event, AddPenalty](),
	game.Variant[Event, EndPeriod](),
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
			s.AwayPenalties = releaseMinor(s.AwayPenalties)
		case game.Away:
			s.AwayScore++
			s.HomePenalties = releaseMinor(s.HomePenalties)
		}
	case AddPenalty:
		secs, ok := penaltySeconds[ev.Type]
		if !ok || !ev.Team.IsTeam() {
			return s
		}
		p := Penalty{Player: ev.Player, Seconds: secs, Type: ev.Type}
		if ev.Team == game.Home {
			s.HomePenalties = append(slices.Clone(s.HomePenalties), p)
		} else {
			s.AwayPenalties = append(slices.Clone(s.AwayPenalties), p)
		}
	case EndPeriod:
		count, minutes := s.Setup.Periods()
		s.Running = false
		if s.Period >= count {
			s.IsComplete = true
			return s
		}
		s.Period++
		s.TimerSeconds = minutes * 60
		s.HomePenalties, s.AwayPenalties = nil, nil
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
			s.HomePenalties = serve(s.HomePenalties)
			s.AwayPenalties = serve(s.AwayPenalties)
			if s.TimerSeconds <= 0 {
				s.TimerSeconds = 0
				s.Running = false
			}
		}
	}
	return s
}

// releaseMinor ends the first minor penalty of the short-handed side after
// a power-play goal. Majors are served in full.
func releaseMinor(ps []Penalty) []Penalty {
	i := slices.IndexFunc(ps, func(p Penalty) bool { return p.Type == Minor })
	if i < 0 {
		return ps
	}
	return slices.Delete(slices.Clone(ps), i, i+1)
}

// serve counts every penalty down one second and drops the expired ones.
func serve(ps []Penalty) []Penalty {
	if len(ps) == 0 {
		return ps
	}
	out := make([]Penalty, 0, len(ps))
	for _, p := range ps {
		p.Seconds--
		if p.Seconds > 0 {
			out = append(out, p)
		}
	}
	return out
}
