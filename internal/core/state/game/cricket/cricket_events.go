package cricket

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/names"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	cricketEvent()
}

type ExtraType string

const (
	Wide    ExtraType = "wide"
	NoBall  ExtraType = "noBall"
	Byes    ExtraType = "byes"
	LegByes ExtraType = "legByes"
)

// Runs off the bat for the current delivery.
type Runs struct {
	Runs int `json:"runs"`
}

// Wicket dismisses the striker.
type Wicket struct{}

// Extra records runs not credited to a batter. Wides and no-balls carry
// a one-run penalty on top of Runs.
type Extra struct {
	Type ExtraType `json:"type"`
	Runs int       `json:"runs"`
}

// NextBall completes a legal delivery.
type NextBall struct{}

type SwitchInnings struct{}

type EndMatch struct{}

// ChangeBowler brings Name on to bowl, adding them to the card if new.
type ChangeBowler struct {
	Name string `json:"name"`
}

func (Runs) Kind() string          { return "runs" }
func (Wicket) Kind() string        { return "wicket" }
func (Extra) Kind() string         { return "extra" }
func (NextBall) Kind() string      { return "next_ball" }
func (SwitchInnings) Kind() string { return "switch_innings" }
func (EndMatch) Kind() string      { return "end_match" }
func (ChangeBowler) Kind() string  { return "change_bowler" }

func (Runs) cricketEvent()          {}
func (Wicket) cricketEvent()        {}
func (Extra) cricketEvent()         {}
func (NextBall) cricketEvent()      {}
func (SwitchInnings) cricketEvent() {}
func (EndMatch) cricketEvent()      {}
func (ChangeBowler) cricketEvent()  {}

var codec = game.NewCodec(
	game.Variant[Event, Runs](),
	game.Variant[Event, Wicket](),
	game.Variant[Event, Extra](),
	game.Variant[Event, NextBall](),
	game.Variant[Event, SwitchInnings](),
	game.Variant[Event, EndMatch](),
	game.Variant[Event, ChangeBowler](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Runs:
		return addRuns(s, ev.Runs)
	case Wicket:
		return wicket(s)
	case Extra:
		return extra(s, ev.Type, ev.Runs)
	case NextBall:
		return nextBall(s)
	case SwitchInnings:
		if s.Innings != 1 {
			return s
		}
		return closeInnings(s)
	case EndMatch:
		return finish(s)
	case ChangeBowler:
		return changeBowler(s, ev.Name)
	}
	return s
}

func addRuns(s State, runs int) State {
	if runs < 0 || s.Batting().Wickets >= allOut {
		return s
	}
	bat := s.Batting().clone()
	bat.Runs += runs

	b := &bat.Batters[bat.Striker]
	b.Runs += runs
	switch runs {
	case 4:
		b.Fours++
	case 6:
		b.Sixes++
	}
	if !bat.Faced {
		b.Balls++
		bat.Faced = true
	}
	if bw := currentBowler(&bat); bw != nil {
		bw.Runs += runs
	}
	if runs%2 == 1 {
		bat.Striker, bat.NonStriker = bat.NonStriker, bat.Striker
	}
	return checkChase(s.withBatting(bat), true)
}

func extra(s State, t ExtraType, runs int) State {
	if runs < 0 || s.Batting().Wickets >= allOut {
		return s
	}
	total := runs
	if t == Wide || t == NoBall {
		total++
	}
	bat := s.Batting().clone()
	switch t {
	case Wide:
		bat.Extras.Wide += total
	case NoBall:
		bat.Extras.NoBall += total
	case Byes:
		bat.Extras.Byes += total
	case LegByes:
		bat.Extras.LegByes += total
	default:
		return s
	}
	bat.Runs += total
	if t == Wide || t == NoBall {
		if bw := currentBowler(&bat); bw != nil {
			bw.Runs += total
		}
	}
	if runs%2 == 1 {
		bat.Striker, bat.NonStriker = bat.NonStriker, bat.Striker
	}
	return checkChase(s.withBatting(bat), t == Byes || t == LegByes)
}

// wicket dismisses the striker. The tenth wicket of the first innings
// leaves the innings open until the delivery is completed with next_ball;
// in the second innings it ends the match on that delivery.
func wicket(s State) State {
	if s.Batting().Wickets >= allOut {
		return s
	}
	bat := s.Batting().clone()
	bat.Wickets++

	b := &bat.Batters[bat.Striker]
	b.Out = true
	if !bat.Faced {
		b.Balls++
		bat.Faced = true
	}
	if bw := currentBowler(&bat); bw != nil {
		bw.Wickets++
	}
	if bat.Wickets < allOut && bat.NextBatter < len(bat.Batters) {
		bat.Striker = bat.NextBatter
		bat.NextBatter++
	}
	if bat.Wickets >= allOut && s.Innings == 2 {
		countDelivery(&bat)
		return finish(s.withBatting(bat))
	}
	return s.withBatting(bat)
}

func nextBall(s State) State {
	bat := s.Batting().clone()
	countDelivery(&bat)
	s = s.withBatting(bat)
	if bat.Wickets >= allOut || (bat.Overs >= s.Setup.MaxOvers && s.Setup.Format != Test) {
		return closeInnings(s)
	}
	return s
}

// countDelivery completes one legal delivery: the striker and bowler are
// each charged a ball and the over rolls after six.
func countDelivery(bat *Innings) {
	if !bat.Faced {
		bat.Batters[bat.Striker].Balls++
	}
	bat.Faced = false
	if bw := currentBowler(bat); bw != nil {
		bw.Balls++
	}
	bat.Balls++
	if bat.Balls >= ballsPerOver {
		bat.Overs++
		bat.Balls = 0
		bat.Striker, bat.NonStriker = bat.NonStriker, bat.Striker
	}
}

// closeInnings ends the current innings: the first sets the target and
// hands over the bat, the second ends the match.
func closeInnings(s State) State {
	if s.Innings == 2 {
		return finish(s)
	}
	s.Target = s.Batting().Runs + 1
	s.BattingTeam = s.BattingTeam.Other()
	s.Innings = 2
	return s
}

// checkChase ends the match once the target is reached. A winning legal
// delivery is counted here, since no next_ball follows a finished match.
func checkChase(s State, legal bool) State {
	if s.Innings != 2 || s.Target <= 0 || s.Batting().Runs < s.Target {
		return s
	}
	if legal {
		bat := s.Batting().clone()
		countDelivery(&bat)
		s = s.withBatting(bat)
	}
	return finish(s)
}

func finish(s State) State {
	s.IsComplete = true
	home, away := s.Home.Runs, s.Away.Runs
	switch {
	case home == away:
		s.Winner = game.Tie
		s.Result = "Match tied"
		return s
	case home > away:
		s.Winner = game.Home
	default:
		s.Winner = game.Away
	}
	winner := game.Pick(s.Winner, s.Home, s.Away)
	loser := game.Pick(s.Winner, s.Away, s.Home)
	name := s.teamName(s.Winner)
	if s.Innings == 2 && s.Winner == s.BattingTeam {
		s.Result = fmt.Sprintf("%s won by %d wickets", name, allOut-winner.Wickets)
	} else {
		s.Result = fmt.Sprintf("%s won by %d runs", name, winner.Runs-loser.Runs)
	}
	return s
}

func changeBowler(s State, name string) State {
	if name == "" {
		return s
	}
	bat := s.Batting().clone()
	for i, bw := range bat.Bowlers {
		if names.Same(bw.Name, name) {
			if i == bat.Bowler {
				return s
			}
			bat.Bowler = i
			return s.withBatting(bat)
		}
	}
	bat.Bowlers = append(bat.Bowlers, Bowler{Name: name})
	bat.Bowler = len(bat.Bowlers) - 1
	return s.withBatting(bat)
}

func currentBowler(in *Innings) *Bowler {
	if in.Bowler < 0 || in.Bowler >= len(in.Bowlers) {
		return nil
	}
	return &in.Bowlers[in.Bowler]
}
