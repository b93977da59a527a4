package golf

import (
	"fmt"
	"slices"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type Mode string

const (
	Stroke Mode = "stroke"
	Match  Mode = "match"
)

const defaultPar = 4

type Setup struct {
	Players []string `json:"players"`
	Holes   int      `json:"holes"`
	Mode    Mode     `json:"mode"`
	Par     []int    `json:"par"` // per hole; missing holes are par 4
}

func (s Setup) withDefaults() Setup {
	if len(s.Players) == 0 {
		s.Players = []string{"Player 1", "Player 2"}
	}
	if s.Holes <= 0 {
		s.Holes = 18
	}
	if s.Mode != Match || len(s.Players) != 2 {
		s.Mode = Stroke
	}
	par := make([]int, s.Holes)
	for i := range par {
		par[i] = defaultPar
		if i < len(s.Par) && s.Par[i] > 0 {
			par[i] = s.Par[i]
		}
	}
	s.Par = par
	return s
}

// State holds a round. Scores is indexed [player][hole-1]; 0 means the
// hole has not been scored.
type State struct {
	Setup Setup `json:"setup"`

	Scores      [][]int `json:"scores"`
	CurrentHole int     `json:"current_hole"`
	IsComplete  bool    `json:"is_complete"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	scores := make([][]int, len(setup.Players))
	for i := range scores {
		scores[i] = make([]int, setup.Holes)
	}
	return State{Setup: setup, Scores: scores, CurrentHole: 1}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportGolf,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func (s State) Total(player int) int {
	total := 0
	for _, v := range s.Scores[player] {
		total += v
	}
	return total
}

// ToPar is the player's strokes against the par of the holes they have
// scored.
func (s State) ToPar(player int) int {
	diff := 0
	for h, v := range s.Scores[player] {
		if v > 0 {
			diff += v - s.Setup.Par[h]
		}
	}
	return diff
}

func (s State) Thru(player int) int {
	n := 0
	for _, v := range s.Scores[player] {
		if v > 0 {
			n++
		}
	}
	return n
}

// Standing is the match-play position between the two players.
type Standing struct {
	Leader    game.Side // PlayerA, PlayerB or None when all square
	Lead      int
	Played    int
	Remaining int
	Clinched  bool
}

// MatchStanding counts holes both players have scored. Lower strokes win
// the hole; equal strokes halve it.
func (s State) MatchStanding() Standing {
	var st Standing
	if len(s.Scores) != 2 {
		return st
	}
	lead := 0
	for h := range s.Setup.Holes {
		a, b := s.Scores[0][h], s.Scores[1][h]
		if a == 0 || b == 0 {
			continue
		}
		st.Played++
		switch {
		case a < b:
			lead++
		case b < a:
			lead--
		}
	}
	st.Remaining = s.Setup.Holes - st.Played
	switch {
	case lead > 0:
		st.Leader, st.Lead = game.PlayerA, lead
	case lead < 0:
		st.Leader, st.Lead = game.PlayerB, -lead
	}
	st.Clinched = st.Lead > st.Remaining
	return st
}

// String renders "AS", "2 UP" or a clinched result such as "3&2".
func (m Standing) String() string {
	switch {
	case m.Lead == 0:
		return "AS"
	case m.Clinched && m.Remaining > 0:
		return fmt.Sprintf("%d&%d", m.Lead, m.Remaining)
	}
	return fmt.Sprintf("%d UP", m.Lead)
}

// Winner is decided by match standing in match play and by lowest total
// in stroke play. It returns the winning player index, -1 for none and
// -2 for a tie.
func (s State) Winner() int {
	if s.Setup.Mode == Match {
		m := s.MatchStanding()
		switch {
		case !m.Clinched && !s.IsComplete:
			return -1
		case m.Leader == game.PlayerA:
			return 0
		case m.Leader == game.PlayerB:
			return 1
		}
		return -2
	}
	if !s.IsComplete {
		return -1
	}
	totals := make([]int, len(s.Scores))
	for i := range totals {
		totals[i] = s.Total(i)
	}
	best := slices.Min(totals)
	if c := count(totals, best); c > 1 {
		return -2
	}
	return slices.Index(totals, best)
}

func count(xs []int, v int) int {
	n := 0
	for _, x := range xs {
		if x == v {
			n++
		}
	}
	return n
}

func Summarize(s State) game.Summary {
	p := s.Setup.Players
	sum := game.Summary{
		Home:      p[0],
		HomeScore: fmt.Sprintf("%d (%s)", s.Total(0), format.RelativeToPar(s.ToPar(0))),
		Period:    fmt.Sprintf("Hole %d of %d (par %d)", s.CurrentHole, s.Setup.Holes, s.Setup.Par[s.CurrentHole-1]),
		Complete:  s.IsComplete,
	}
	if len(p) > 1 {
		sum.Away = p[1]
		sum.AwayScore = fmt.Sprintf("%d (%s)", s.Total(1), format.RelativeToPar(s.ToPar(1)))
	}
	for i, name := range p {
		sum.Lines = append(sum.Lines, fmt.Sprintf("%s: %d (%s) thru %d", name, s.Total(i), format.RelativeToPar(s.ToPar(i)), s.Thru(i)))
	}
	if s.Setup.Mode == Match {
		m := s.MatchStanding()
		line := "Match: " + m.String()
		if m.Leader != game.None {
			line = fmt.Sprintf("Match: %s %s", game.WinnerName(m.Leader, p[0], p[1]), m)
		}
		sum.Lines = append(sum.Lines, line)
		sum.Complete = s.IsComplete || m.Clinched
	}
	switch w := s.Winner(); {
	case w >= 0:
		sum.Winner = p[w]
	case w == -2:
		sum.Winner = "Tie"
	}
	return sum
}
