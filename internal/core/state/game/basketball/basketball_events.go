package basketball

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	basketballEvent()
}

type Points struct {
	Team   game.Side `json:"team"`
	Points int       `json:"points"`
}

type Foul struct {
	Team game.Side `json:"team"`
}

type UseTimeout struct {
	Team game.Side `json:"team"`
}

type NextQuarter struct{}

type StartTimer struct{}
type StopTimer struct{}

type Tick struct {
	Seconds int `json:"seconds,omitempty"`
}

// ResetShotClock sets the shot clock, 24 when Seconds is zero.
type ResetShotClock struct {
	Seconds int `json:"seconds,omitempty"`
}

type ClearViolation struct{}

func (Points) Kind() string         { return "points" }
func (Foul) Kind() string           { return "foul" }
func (UseTimeout) Kind() string     { return "timeout" }
func (NextQuarter) Kind() string    { return "next_quarter" }
func (StartTimer) Kind() string     { return "start" }
func (StopTimer) Kind() string      { return "stop" }
func (Tick) Kind() string           { return "tick" }
func (ResetShotClock) Kind() string { return "reset_shot_clock" }
func (ClearViolation) Kind() string { return "clear_violation" }

func (t Tick) TickSeconds() int { return game.TickSteps(t.Seconds) }

func (Points) basketballEvent()         {}
func (Foul) basketballEvent()           {}
func (UseTimeout) basketballEvent()     {}
func (NextQuarter) basketballEvent()    {}
func (StartTimer) basketballEvent()     {}
func (StopTimer) basketballEvent()      {}
func (Tick) basketballEvent()           {}
func (ResetShotClock) basketballEvent() {}
func (ClearViolation) basketballEvent() {}

var codec = game.NewCodec(
	game.Variant[Event, Points](),
	game.Variant[Event, Foul](),
	game.Variant[Event, UseTimeout](),
	game.Variant[Event, NextQuarter](),
	game.Variant[Event, StartTimer](),
	game.Variant[Event, StopTimer](),
	game.Variant[Event, Tick](),
	game.Variant[Event, ResetShotClock](),
	game.Variant[Event, ClearViolation](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Points:
		if ev.Points <= 0 {
			return s
		}
		switch ev.Team {
		case game.Home:
			s.HomeScore += ev.Points
		case game.Away:
			s.AwayScore += ev.Points
		}
	case Foul:
		switch ev.Team {
		case game.Home:
			s.HomeFouls++
		case game.Away:
			s.AwayFouls++
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
	case NextQuarter:
		if s.Quarter >= quarters {
			s.IsComplete = true
			s.Running = false
			return s
		}
		s.Quarter++
		s.GameClock = s.Setup.QuarterDurationSeconds
		s.ShotClock = shotClock
		s.HomeFouls, s.AwayFouls = 0, 0
		s.Running = false
		s.ShotClockViolation, s.ViolationHold = false, 0
	case StartTimer:
		if s.GameClock > 0 && !s.ShotClockViolation {
			s.Running = true
		}
	case StopTimer:
		s.Running = false
	case Tick:
		for range ev.TickSeconds() {
			s = tick(s)
		}
	case ResetShotClock:
		s.ShotClock = shotClock
		if ev.Seconds > 0 {
			s.ShotClock = ev.Seconds
		}
		s.ShotClockViolation, s.ViolationHold = false, 0
	case ClearViolation:
		return clearViolation(s)
	}
	return s
}

func tick(s State) State {
	if s.ShotClockViolation {
		s.ViolationHold = game.Countdown(s.ViolationHold)
		if s.ViolationHold == 0 {
			return clearViolation(s)
		}
		return s
	}
	if !s.Running {
		return s
	}
	s.GameClock = game.Countdown(s.GameClock)
	s.ShotClock = game.Countdown(s.ShotClock)
	if s.GameClock == 0 {
		s.Running = false
	}
	if s.ShotClock == 0 && s.GameClock > 0 {
		s.Running = false
		s.ShotClockViolation = true
		s.ViolationHold = violationHoldS
	}
	return s
}

func clearViolation(s State) State {
	if !s.ShotClockViolation {
		return s
	}
	s.ShotClockViolation = false
	s.ViolationHold = 0
	s.ShotClock = shotClock
	return s
}
