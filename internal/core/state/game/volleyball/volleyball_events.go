package volleyball

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	volleyballEvent()
}

// Point is a rally won by Team, which serves next.
type Point struct {
	Team game.Side `json:"team"`
}

type Timeout struct {
	Team game.Side `json:"team"`
}

func (Point) Kind() string   { return "point" }
func (Timeout) Kind() string { return "timeout" }

func (Point) volleyballEvent()   {}
func (Timeout) volleyballEvent() {}

var codec = game.NewCodec(
	game.Variant[Event, Point](),
	game.Variant[Event, Timeout](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Point:
		return point(s, ev.Team)
	case Timeout:
		switch ev.Team {
		case game.Home:
			s.HomeTimeouts = game.Countdown(s.HomeTimeouts)
		case game.Away:
			s.AwayTimeouts = game.Countdown(s.AwayTimeouts)
		}
	}
	return s
}

func point(s State, team game.Side) State {
	if !team.IsTeam() {
		return s
	}
	s.AddPoint(team == game.Home)
	s.Server = team
	pos := s.GameWinner(s.SetTarget(), 2, 0)
	if pos == 0 {
		return s
	}
	if !s.AwardGame(pos, game.GamesToWin(s.Setup.BestOf), team) {
		s.HomeTimeouts, s.AwayTimeouts = TimeoutsPerSet, TimeoutsPerSet
	}
	return s
}
