package kabaddi

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

const (
	// SquadOnMat is the number of players each side fields.
	SquadOnMat  = 7
	AllOutBonus = 2
)

type Setup struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	return s
}

type State struct {
	Setup Setup `json:"setup"`

	HomeScore   int  `json:"home_score"`
	AwayScore   int  `json:"away_score"`
	HomePlayers int  `json:"home_players"`
	AwayPlayers int  `json:"away_players"`
	Half        int  `json:"half"`
	IsComplete  bool `json:"is_complete"`
}

func Initial(setup Setup) State {
	return State{
		Setup:       setup.withDefaults(),
		HomePlayers: SquadOnMat,
		AwayPlayers: SquadOnMat,
		Half:        1,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportKabaddi,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func (s State) Winner() game.Side {
	return game.ScoreWinner(s.IsComplete, s.HomeScore, s.AwayScore, game.Home)
}

func Summarize(s State) game.Summary {
	return game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: fmt.Sprint(s.HomeScore),
		AwayScore: fmt.Sprint(s.AwayScore),
		Period:    format.PeriodLabel(s.Half, "Half"),
		Lines:     []string{fmt.Sprintf("On mat: %d - %d", s.HomePlayers, s.AwayPlayers)},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner(), s.Setup.Home, s.Setup.Away),
	}
}
