package baseball

import (
	"slices"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	baseballEvent()
}

// Runs scored by Team in the current inning.
type Runs struct {
	Team game.Side `json:"team"`
	Runs int       `json:"runs"`
}

type Hit struct {
	Team game.Side `json:"team"`
}

// Error is charged to the fielding Team.
type Error struct {
	Team game.Side `json:"team"`
}

type Out struct{}

// NextHalfInning ends the half regardless of outs.
type NextHalfInning struct{}

func (Runs) Kind() string           { return "runs" }
func (Hit) Kind() string            { return "hit" }
func (Error) Kind() string          { return "error" }
func (Out) Kind() string            { return "out" }
func (NextHalfInning) Kind() string { return "next_half_inning" }

func (Runs) baseballEvent()           {}
func (Hit) baseballEvent()            {}
func (Error) baseballEvent()          {}
func (Out) baseballEvent()            {}
func (NextHalfInning) baseballEvent() {}

var codec = game.NewCodec(
	game.Variant[Event, Runs](),
	game.Variant[Event, Hit](),
	game.Variant[Event, Error](),
	game.Variant[Event, Out](),
	game.Variant[Event, NextHalfInning](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Runs:
		if !ev.Team.IsTeam() || ev.Runs <= 0 {
			return s
		}
		i := s.Inning - 1
		if ev.Team == game.Home {
			s.HomeRuns = slices.Clone(s.HomeRuns)
			s.HomeRuns[i] += ev.Runs
		} else {
			s.AwayRuns = slices.Clone(s.AwayRuns)
			s.AwayRuns[i] += ev.Runs
		}
		// Walk-off: the home side going ahead in the last or an extra
		// bottom half ends the game.
		if !s.TopHalf && s.Inning >= s.Setup.Innings && s.HomeTotal() > s.AwayTotal() {
			s.IsComplete = true
		}
	case Hit:
		if ev.Team.IsTeam() {
			*game.Pick(ev.Team, &s.HomeHits, &s.AwayHits)++
		}
	case Error:
		if ev.Team.IsTeam() {
			*game.Pick(ev.Team, &s.HomeErrors, &s.AwayErrors)++
		}
	case Out:
		s.Outs++
		if s.Outs >= OutsPerHalf {
			return endHalf(s)
		}
	case NextHalfInning:
		return endHalf(s)
	}
	return s
}

func endHalf(s State) State {
	s.Outs = 0
	if s.TopHalf {
		s.TopHalf = false
		// Home leading after the top of the last inning does not bat.
		if s.Inning >= s.Setup.Innings && s.HomeTotal() > s.AwayTotal() {
			s.IsComplete = true
		}
		return s
	}
	if s.Inning >= s.Setup.Innings && s.HomeTotal() != s.AwayTotal() {
		s.IsComplete = true
		return s
	}
	s.Inning++
	s.TopHalf = true
	if s.Inning > len(s.HomeRuns) {
		s.HomeRuns = append(slices.Clone(s.HomeRuns), 0)
		s.AwayRuns = append(slices.Clone(s.AwayRuns), 0)
	}
	return s
}
