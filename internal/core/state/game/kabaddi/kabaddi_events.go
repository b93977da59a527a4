package kabaddi

import game "github.com/charleschow/sportshunt/internal/core/state/game"

type Event interface {
	Kind() string
	kabaddiEvent()
}

type Raid struct {
	Team   game.Side `json:"team"`
	Points int       `json:"points"`
}

type Tackle struct {
	Team   game.Side `json:"team"`
	Points int       `json:"points"`
}

type Bonus struct {
	Team   game.Side `json:"team"`
	Points int       `json:"points"`
}

// AllOut credits Team for putting out the whole opposing side, which is
// then revived.
type AllOut struct {
	Team game.Side `json:"team"`
}

type PlayerOut struct {
	Team game.Side `json:"team"`
}

type Revive struct {
	Team game.Side `json:"team"`
}

type NextHalf struct{}

type EndMatch struct{}

func (Raid) Kind() string      { return "raid" }
func (Tackle) Kind() string    { return "tackle" }
func (Bonus) Kind() string     { return "bonus" }
func (AllOut) Kind() string    { return "all_out" }
func (PlayerOut) Kind() string { return "player_out" }
func (Revive) Kind() string    { return "revive" }
func (NextHalf) Kind() string  { return "next_half" }
func (EndMatch) Kind() string  { return "end_match" }

func (Raid) kabaddiEvent()      {}
func (Tackle) kabaddiEvent()    {}
func (Bonus) kabaddiEvent()     {}
func (AllOut) kabaddiEvent()    {}
func (PlayerOut) kabaddiEvent() {}
func (Revive) kabaddiEvent()    {}
func (NextHalf) kabaddiEvent()  {}
func (EndMatch) kabaddiEvent()  {}

var codec = game.NewCodec(
	game.Variant[Event, Raid](),
	game.Variant[Event, Tackle](),
	game.Variant[Event, Bonus](),
	game.Variant[Event, AllOut](),
	game.Variant[Event, PlayerOut](),
	game.Variant[Event, Revive](),
	game.Variant[Event, NextHalf](),
	game.Variant[Event, EndMatch](),
)

func Apply(s State, e Event) State {
	if s.IsComplete {
		return s
	}
	switch ev := e.(type) {
	case Raid:
		return score(s, ev.Team, ev.Points)
	case Tackle:
		return score(s, ev.Team, ev.Points)
	case Bonus:
		return score(s, ev.Team, ev.Points)
	case AllOut:
		if !ev.Team.IsTeam() {
			return s
		}
		s = score(s, ev.Team, AllOutBonus)
		*game.Pick(ev.Team, &s.AwayPlayers, &s.HomePlayers) = SquadOnMat
	case PlayerOut:
		if ev.Team.IsTeam() {
			p := game.Pick(ev.Team, &s.HomePlayers, &s.AwayPlayers)
			*p = max(*p-1, 0)
		}
	case Revive:
		if ev.Team.IsTeam() {
			p := game.Pick(ev.Team, &s.HomePlayers, &s.AwayPlayers)
			*p = min(*p+1, SquadOnMat)
		}
	case NextHalf:
		if s.Half == 1 {
			s.Half = 2
			s.HomePlayers, s.AwayPlayers = SquadOnMat, SquadOnMat
		}
	case EndMatch:
		s.IsComplete = true
	}
	return s
}

func score(s State, team game.Side, points int) State {
	if !team.IsTeam() || points <= 0 {
		return s
	}
	*game.Pick(team, &s.HomeScore, &s.AwayScore) += points
	return s
}
