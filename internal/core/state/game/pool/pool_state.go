package pool

import (
	"fmt"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type GameType string

const (
	EightBall GameType = "8ball"
	NineBall  GameType = "9ball"
)

type Setup struct {
	PlayerA  string   `json:"player_a"`
	PlayerB  string   `json:"player_b"`
	GameType GameType `json:"game_type"`
	RaceTo   int      `json:"race_to"`
}

func (s Setup) withDefaults() Setup {
	if s.PlayerA == "" {
		s.PlayerA = "Player A"
	}
	if s.PlayerB == "" {
		s.PlayerB = "Player B"
	}
	if s.GameType != NineBall {
		s.GameType = EightBall
	}
	if s.RaceTo <= 0 {
		s.RaceTo = 5
	}
	return s
}

type State struct {
	Setup Setup `json:"setup"`

	RacksA      int       `json:"racks_a"`
	RacksB      int       `json:"racks_b"`
	CurrentRack int       `json:"current_rack"`
	Shooter     game.Side `json:"shooter"`
	FoulsA      int       `json:"fouls_a"`
	FoulsB      int       `json:"fouls_b"`
	IsComplete  bool      `json:"is_complete"`
	Winner      game.Side `json:"winner"`
}

func Initial(setup Setup) State {
	return State{Setup: setup.withDefaults(), CurrentRack: 1, Shooter: game.PlayerA}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportPool,
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
	label := "8-Ball"
	if s.Setup.GameType == NineBall {
		label = "9-Ball"
	}
	sum := game.Summary{
		Home:      s.Setup.PlayerA,
		Away:      s.Setup.PlayerB,
		HomeScore: fmt.Sprint(s.RacksA),
		AwayScore: fmt.Sprint(s.RacksB),
		Period:    fmt.Sprintf("%s rack %d, race to %d", label, s.CurrentRack, s.Setup.RaceTo),
		Serving:   s.Shooter,
		Lines:     []string{fmt.Sprintf("Fouls: %d - %d", s.FoulsA, s.FoulsB)},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.PlayerA, s.Setup.PlayerB),
	}
	if s.IsComplete {
		sum.Serving = game.None
		sum.Period = format.PeriodLabel(s.CurrentRack, "Rack")
	}
	return sum
}
