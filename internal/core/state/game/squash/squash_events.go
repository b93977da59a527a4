package squash

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	squashEvent()
}

// Point is a rally won outright. PAR scoring: every rally scores and the
// winner serves.
type Point struct {
	Player game.Side `json:"player"`
}

// Stroke is a referee's award of the rally to Player.
type Stroke struct {
	Player game.Side `json:"player"`
}

// Let replays the rally.
type Let struct{}

func (Point) Kind() string  { return "point" }
func (Stroke) Kind() string { return "stroke" }
func (Let) Kind() string    { return "let" }

func (Point) squashEvent()  {}
func (Stroke) squashEvent() {}
func (Let) squashEvent()    {}

var codec = game.NewCodec(
	game.Variant[Event, Point](),
	game.Variant[Event, Stroke](),
	game.Variant[Event, Let](),
)

func Apply(s State, e Event) State {
	switch ev := e.(type) {
	case Point:
		return rally(s, ev.Player)
	case Stroke:
		return rally(s, ev.Player)
	}
	return s
}

func rally(s State, p game.Side) State {
	if s.IsComplete || !p.IsPlayer() {
		return s
	}
	s.AddPoint(p == game.PlayerA)
	s.Server = p
	if pos := s.GameWinner(s.Setup.PointsToWin, 2, 0); pos != 0 {
		s.AwardGame(pos, game.GamesToWin(s.Setup.BestOf), p)
	}
	return s
}
