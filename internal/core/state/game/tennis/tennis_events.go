package tennis

import (
	"slices"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	tennisEvent()
}

// Point awards one rally to Player.
type Point struct {
	Player game.Side `json:"player"`
}

func (Point) Kind() string { return "point" }
func (Point) tennisEvent() {}

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
	if s.Tiebreak {
		if p == game.PlayerA {
			s.TiebreakA++
		} else {
			s.TiebreakB++
		}
		a, b := s.TiebreakA, s.TiebreakB
		if (a >= 7 || b >= 7) && abs(a-b) >= 2 {
			w := game.PlayerA
			if b > a {
				w = game.PlayerB
			}
			return winGame(s, w)
		}
		// Server changes after the first point, then every two.
		if total := a + b; total == 1 || (total > 1 && (total-1)%2 == 0) {
			s.Server = s.Server.Other()
		}
		return s
	}

	if p == game.PlayerA {
		s.PointsA++
	} else {
		s.PointsB++
	}
	a, b := s.PointsA, s.PointsB
	if a < 4 && b < 4 {
		return s
	}
	if a >= 3 && b >= 3 {
		switch {
		case a-b >= 2:
			return winGame(s, game.PlayerA)
		case b-a >= 2:
			return winGame(s, game.PlayerB)
		}
		return s
	}
	if a >= 4 {
		return winGame(s, game.PlayerA)
	}
	return winGame(s, game.PlayerB)
}

func winGame(s State, w game.Side) State {
	s.GamesA = slices.Clone(s.GamesA)
	s.GamesB = slices.Clone(s.GamesB)
	i := s.CurrentSet - 1
	if w == game.PlayerA {
		s.GamesA[i]++
	} else {
		s.GamesB[i]++
	}
	s.PointsA, s.PointsB = 0, 0
	s.TiebreakA, s.TiebreakB = 0, 0
	s.Tiebreak = false
	s.Server = s.Server.Other()

	ga, gb := s.GamesA[i], s.GamesB[i]
	setWon := ((ga >= 6 || gb >= 6) && abs(ga-gb) >= 2) || ga == 7 || gb == 7
	if !setWon {
		s.Tiebreak = ga == 6 && gb == 6
		return s
	}
	if ga > gb {
		s.SetsA++
	} else {
		s.SetsB++
	}
	need := s.Setup.SetsToWin()
	switch {
	case s.SetsA >= need:
		s.IsComplete, s.Winner = true, game.PlayerA
	case s.SetsB >= need:
		s.IsComplete, s.Winner = true, game.PlayerB
	default:
		s.CurrentSet++
		s.GamesA = append(s.GamesA, 0)
		s.GamesB = append(s.GamesB, 0)
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
