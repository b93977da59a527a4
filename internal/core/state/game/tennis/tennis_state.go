package tennis

import (
	"fmt"
	"strings"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type Setup struct {
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
	BestOf  int    `json:"best_of"` // 3 or 5
}

func (s Setup) withDefaults() Setup {
	if s.PlayerA == "" {
		s.PlayerA = "Player A"
	}
	if s.PlayerB == "" {
		s.PlayerB = "Player B"
	}
	if s.BestOf != 5 {
		s.BestOf = 3
	}
	return s
}

// SetsToWin is 2 for best of 3 and 3 for best of 5.
func (s Setup) SetsToWin() int { return s.BestOf/2 + 1 }

// State holds one tennis match. Points count 0..n within the current game;
// display mapping lives in PointDisplay.
type State struct {
	Setup Setup `json:"setup"`

	PointsA int `json:"points_a"`
	PointsB int `json:"points_b"`

	// Games won per set, indexed by set number - 1.
	GamesA []int `json:"games_a"`
	GamesB []int `json:"games_b"`

	SetsA      int       `json:"sets_a"`
	SetsB      int       `json:"sets_b"`
	CurrentSet int       `json:"current_set"`
	Server     game.Side `json:"server"`

	Tiebreak   bool `json:"tiebreak"`
	TiebreakA  int  `json:"tiebreak_a"`
	TiebreakB  int  `json:"tiebreak_b"`
	IsComplete bool `json:"is_complete"`

	Winner game.Side `json:"winner"`
}

func Initial(setup Setup) State {
	return State{
		Setup:      setup.withDefaults(),
		GamesA:     []int{0},
		GamesB:     []int{0},
		CurrentSet: 1,
		Server:     game.PlayerA,
	}
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportTennis,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

var pointNames = [...]string{"0", "15", "30", "40"}

// PointDisplay maps raw game points to the called score. In a tiebreak the
// raw tiebreak counts are shown instead.
func PointDisplay(pointsA, pointsB int, tiebreak bool, tbA, tbB int) (string, string) {
	if tiebreak {
		return fmt.Sprint(tbA), fmt.Sprint(tbB)
	}
	if pointsA >= 3 && pointsB >= 3 {
		switch {
		case pointsA == pointsB:
			return "40", "40"
		case pointsA > pointsB:
			return "AD", "40"
		default:
			return "40", "AD"
		}
	}
	return pointNames[min(pointsA, 3)], pointNames[min(pointsB, 3)]
}

func Summarize(s State) game.Summary {
	a, b := PointDisplay(s.PointsA, s.PointsB, s.Tiebreak, s.TiebreakA, s.TiebreakB)
	sets := make([]string, 0, len(s.GamesA))
	for i := range s.GamesA {
		sets = append(sets, fmt.Sprintf("%d-%d", s.GamesA[i], s.GamesB[i]))
	}
	period := format.PeriodLabel(s.CurrentSet, "Set")
	if s.Tiebreak {
		period += " (tiebreak)"
	}
	sum := game.Summary{
		Home:      s.Setup.PlayerA,
		Away:      s.Setup.PlayerB,
		HomeScore: fmt.Sprintf("%d sets | %s", s.SetsA, a),
		AwayScore: fmt.Sprintf("%d sets | %s", s.SetsB, b),
		Period:    period,
		Serving:   s.Server,
		Lines:     []string{"Games: " + strings.Join(sets, "  ")},
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.PlayerA, s.Setup.PlayerB),
	}
	if s.IsComplete {
		sum.Serving = game.None
	}
	return sum
}
