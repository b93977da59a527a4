package tugofwar

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

// FoulsToDisqualify is the caution count that forfeits the match.
const FoulsToDisqualify = 2

type Setup struct {
	Home   string `json:"home"`
	Away   string `json:"away"`
	BestOf int    `json:"best_of"` // 3 or 5
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	if s.BestOf != 5 {
		s.BestOf = 3
	}
	return s
}

type State struct {
	Setup Setup `json:"setup"`

	HomePulls    int       `json:"home_pulls"`
	AwayPulls    int       `json:"away_pulls"`
	HomeFouls    int       `json:"home_fouls"`
	AwayFouls    int       `json:"away_fouls"`
	CurrentPull  int       `json:"current_pull"`
	IsComplete   bool      `json:"is_complete"`
	Winner       game.Side `json:"winner"`
	Disqualified game.Side `json:"disqualified"`
}

func Initial(setup Setup) State {
	return State{Setup: setup.withDefaults(), CurrentPull: 1}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportTugOfWar,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func Summarize(s State) game.Summary {
	sum := game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprintf("%d pulls", s.HomePulls),
		AwayScore: fmt.Sprintf("%d pulls", s.AwayPulls),
		Period:    format.PeriodLabel(s.CurrentPull, "Pull"),
		Lines:     []string{fmt.Sprintf("Fouls: %d - %d", s.HomeFouls, s.AwayFouls)},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.Home, s.Setup.Away),
	}
	if s.Disqualified != game.None {
		sum.Lines = append(sum.Lines, game.WinnerName(s.Disqualified, s.Setup.Home, s.Setup.Away)+" disqualified")
	}
	return sum
}
