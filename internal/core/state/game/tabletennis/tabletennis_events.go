package tabletennis

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	tableTennisEvent()
}

type Point struct {
	Player game.Side `json:"player"`
}

func (Point) Kind() string      { return "point" }
func (Point) tableTennisEvent() {}

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

	s.ServesRemaining--
	if s.ServesRemaining <= 0 {
		s.Server = s.Server.Other()
		s.ServesRemaining = 2
		if s.Deuce() {
			s.ServesRemaining = 1
		}
	}

	pos := s.GameWinner(s.Setup.PointsToWin, 2, 0)
	if pos == 0 {
		return s
	}
	if !s.AwardGame(pos, game.GamesToWin(s.Setup.BestOf), p) {
		s.GameServer = s.GameServer.Other()
		s.Server = s.GameServer
		s.ServesRemaining = 2
	}
	return s
}
