package pickleball

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	pickleballEvent()
}

// Rally is won by Team. A rally won by the receiving team is a side out
// or a hand-over to the second server.
type Rally struct {
	Team game.Side `json:"team"`
}

// SwitchServer toggles the server number in doubles.
type SwitchServer struct{}

func (Rally) Kind() string        { return "point" }
func (SwitchServer) Kind() string { return "switch_server" }

func (Rally) pickleballEvent()        {}
func (SwitchServer) pickleballEvent() {}

var codec = game.NewCodec(
	game.Variant[Event, Rally](),
	game.Variant[Event, SwitchServer](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Rally:
		return rally(s, ev.Team)
	case SwitchServer:
		if s.Setup.Doubles {
			s.ServerNumber = 3 - s.ServerNumber
		}
	}
	return s
}

func rally(s State, team game.Side) State {
	if !team.IsTeam() {
		return s
	}
	if team != s.ServingTeam {
		if s.Setup.Doubles && s.ServerNumber == 1 {
			s.ServerNumber = 2
			return s
		}
		s.ServingTeam = team
		s.ServerNumber = 1
		return s
	}

	s.AddPoint(team == game.Home)
	pos := s.GameWinner(s.Setup.PointsToWin, s.Setup.margin(), 0)
	if pos == 0 {
		return s
	}
	if !s.AwardGame(pos, s.Setup.SetsToWin, team) {
		s.ServingTeam = game.Home
		s.ServerNumber = s.Setup.firstServer()
	}
	return s
}
