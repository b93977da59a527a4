package tugofwar

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	tugOfWarEvent()
}

type WinPull struct {
	Team game.Side `json:"team"`
}

// Foul cautions Team. A second caution disqualifies it.
type Foul struct {
	Team game.Side `json:"team"`
}

func (WinPull) Kind() string { return "win_pull" }
func (Foul) Kind() string    { return "foul" }

func (WinPull) tugOfWarEvent() {}
func (Foul) tugOfWarEvent()    {}

var codec = game.NewCodec(
	game.Variant[Event, WinPull](),
	game.Variant[Event, Foul](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case WinPull:
		if !ev.Team.IsTeam() {
			return s
		}
		*game.Pick(ev.Team, &s.HomePulls, &s.AwayPulls)++
		if *game.Pick(ev.Team, &s.HomePulls, &s.AwayPulls) >= game.GamesToWin(s.Setup.BestOf) {
			s.IsComplete, s.Winner = true, ev.Team
			return s
		}
		s.CurrentPull++
	case Foul:
		if !ev.Team.IsTeam() {
			return s
		}
		fouls := game.Pick(ev.Team, &s.HomeFouls, &s.AwayFouls)
		*fouls++
		if *fouls >= FoulsToDisqualify {
			s.IsComplete = true
			s.Winner = ev.Team.Other()
			s.Disqualified = ev.Team
		}
	}
	return s
}
