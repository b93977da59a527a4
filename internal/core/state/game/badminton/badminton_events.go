package badminton

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	badmintonEvent()
}

// Point awards a rally to Player, who serves next.
type Point struct {
	Player game.Side `json:"player"`
}

func (Point) Kind() string    { return "point" }
func (Point) badmintonEvent() {}

var codec = game.NewCodec(game.Variant[Event, Point]())

func Apply(s State, e Event) State {
	switch ev := e.(type) {
	case Point:
		return point(s, ev.Player)
	}
	return s
}

func point(s State, p game.Side) State {
	if s.IsComplete || !p.IsPlayer() {
		return s
	}
	s.AddPoint(p == game.PlayerA)
	s.Server = p
	if pos := s.GameWinner(s.Setup.PointsToWin, 2, s.Setup.Cap()); pos != 0 {
		w := game.PlayerA
		if pos == 2 {
			w = game.PlayerB
		}
		s.AwardGame(pos, game.GamesToWin(s.Setup.BestOf), w)
		// Winner of a game serves first in the next.
		s.Server = w
	}
	s.ServiceCourt = courtFor(s.Points(s.Server == game.PlayerA))
	return s
}
