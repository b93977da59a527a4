package waterpolo

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	waterpoloEvent()
}

type Goal struct {
	Team game.Side `json:"team"`
}

type Exclusion struct {
	Team game.Side `json:"team"`
}

type UseTimeout struct {
	Team game.Side `json:"team"`
}

type EndPeriod struct{}
type StartTimer struct{}
type StopTimer struct{}
type ResetShotClock struct{}

type Tick struct {
	Seconds int `json:"seconds,omitempty"`
}

func (Goal) Kind() string           { return "goal" }
func (Exclusion) Kind() string      { return "exclusion" }
func (UseTimeout) Kind() string     { return "timeout" }
func (EndPeriod) Kind() string      { return "end_period" }
func (StartTimer) Kind() string     { return "start" }
func (StopTimer) Kind() string      { return "stop" }
func (ResetShotClock) Kind() string { return "reset_shot_clock" }
func (Tick) Kind() string           { return "tick" }

func (t Tick) TickSeconds() int { return game.TickSteps(t.Seconds) }

func (Goal) waterpoloEvent()           {}
func (Exclusion) waterpoloEvent()      {}
func (UseTimeout) waterpoloEvent()     {}
func (EndPeriod) waterpoloEvent()      {}
func (StartTimer) waterpoloEvent()     {}
func (StopTimer) waterpoloEvent()      {}
func (ResetShotClock) waterpoloEvent() {}
func (Tick) waterpoloEvent()           {}

var codec = game.NewCodec(
	game.Variant[Event, Goal](),
	game.Variant[Event, Exclusion](),
	game.Variant[Event, UseTimeout](),
	game.Variant[Event, EndPeriod](),
	game.Variant[Event, StartTimer](),
	game.Variant[Event, StopTimer](),
	game.Variant[Event, ResetShotClock](),
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
		default:
			return s
		}
		s.ShotClock = shotClock
	case Exclusion:
		switch ev.Team {
		case game.Home:
			s.HomeExclusions++
		case game.Away:
			s.AwayExclusions++
		}
	case UseTimeout:
		switch {
		case ev.Team == game.Home && s.HomeTimeouts > 0:
			s.HomeTimeouts--
		case ev.Team == game.Away && s.AwayTimeouts > 0:
			s.AwayTimeouts--
		default:
			return s
		}
		s.Running = false
	case EndPeriod:
		s.Running = false
		if s.Period >= periods {
			s.IsComplete = true
			return s
		}
		s.Period++
		s.PeriodSeconds = s.Setup.PeriodDurationMinutes * 60
		s.ShotClock = shotClock
	case StartTimer:
		if s.PeriodSeconds > 0 && s.ShotClock > 0 {
			s.Running = true
		}
	case StopTimer:
		s.Running = false
	case ResetShotClock:
		s.ShotClock = shotClock
	case Tick:
		for range ev.TickSeconds() {
			if !s.Running {
				break
			}
			s.PeriodSeconds = game.Countdown(s.PeriodSeconds)
			s.ShotClock = game.Countdown(s.ShotClock)
			if s.PeriodSeconds == 0 || s.ShotClock == 0 {
				s.Running = false
			}
		}
	}
	return s
}
