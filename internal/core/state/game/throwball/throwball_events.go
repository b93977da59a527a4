package throwball

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	throwballEvent()
}

type Point struct {
	Team game.Side `json:"team"`
}

func (Point) Kind() string    { return "point" }
func (Point) throwballEvent() {}

var codec = game.NewCodec(game.Variant[Event, Point]())

func Apply(s State, e Event) State {
	switch ev := e.(type) {
	case Point:
		if s.IsComplete || !ev.Team.IsTeam() {
			return s
		}
		s.AddPoint(ev.Team == game.Home)
		s.Server = ev.Team
		if pos := s.GameWinner(s.Setup.PointsToWin, 2, 0); pos != 0 {
			s.AwardGame(pos, game.GamesToWin(BestOf), ev.Team)
		}
	}
	return s
}
