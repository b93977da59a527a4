package pool

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	poolEvent()
}

// WinRack credits the rack to Player. The loser shoots first in the next.
type WinRack struct {
	Player game.Side `json:"player"`
}

// SwitchPlayer passes the table after a miss.
type SwitchPlayer struct{}

// Foul is committed by the shooter and passes the table.
type Foul struct{}

func (WinRack) Kind() string      { return "win_rack" }
func (SwitchPlayer) Kind() string { return "switch_player" }
func (Foul) Kind() string         { return "foul" }

func (WinRack) poolEvent()      {}
func (SwitchPlayer) poolEvent() {}
func (Foul) poolEvent()         {}

var codec = game.NewCodec(
	game.Variant[Event, WinRack](),
	game.Variant[Event, SwitchPlayer](),
	game.Variant[Event, Foul](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case WinRack:
		if !ev.Player.IsPlayer() {
			return s
		}
		racks := game.Pick(ev.Player, &s.RacksA, &s.RacksB)
		*racks++
		s.Shooter = ev.Player.Other()
		if *racks >= s.Setup.RaceTo {
			s.IsComplete, s.Winner = true, ev.Player
			return s
		}
		s.CurrentRack++
	case SwitchPlayer:
		s.Shooter = s.Shooter.Other()
	case Foul:
		*game.Pick(s.Shooter, &s.FoulsA, &s.FoulsB)++
		s.Shooter = s.Shooter.Other()
	}
	return s
}
