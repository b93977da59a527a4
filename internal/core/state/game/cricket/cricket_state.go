package cricket

import (
	"fmt"
	"slices"

	"github.com/charleschow/sportshunt/internal/core/format"
	game "github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

type Format string

const (
	T20    Format = "T20"
	ODI    Format = "ODI"
	Test   Format = "Test"
	Custom Format = "Custom"
)

const (
	ballsPerOver = 6
	allOut       = 10
	squadSize    = 11
)

type Setup struct {
	Home     string `json:"home"`
	Away     string `json:"away"`
	Format   Format `json:"format"`
	MaxOvers int    `json:"max_overs"`

	// Batting orders. Missing names are filled as "Batter n".
	HomeLineup []string `json:"home_lineup,omitempty"`
	AwayLineup []string `json:"away_lineup,omitempty"`

	// Opening bowler of each side when it fields.
	HomeBowler string `json:"home_bowler,omitempty"`
	AwayBowler string `json:"away_bowler,omitempty"`
}

func (s Setup) withDefaults() Setup {
	if s.Home == "" {
		s.Home = "Home"
	}
	if s.Away == "" {
		s.Away = "Away"
	}
	switch s.Format {
	case T20, ODI, Test, Custom:
	default:
		s.Format = T20
	}
	if s.MaxOvers <= 0 {
		switch s.Format {
		case ODI:
			s.MaxOvers = 50
		case Test:
			s.MaxOvers = 90
		default:
			s.MaxOvers = 20
		}
	}
	if s.HomeBowler == "" {
		s.HomeBowler = s.Home + " Bowler 1"
	}
	if s.AwayBowler == "" {
		s.AwayBowler = s.Away + " Bowler 1"
	}
	return s
}

type Extras struct {
	Wide    int `json:"wide"`
	NoBall  int `json:"no_ball"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
}

func (e Extras) Total() int { return e.Wide + e.NoBall + e.Byes + e.LegByes }

type Batter struct {
	Name  string `json:"name"`
	Runs  int    `json:"runs"`
	Balls int    `json:"balls"`
	Fours int    `json:"fours"`
	Sixes int    `json:"sixes"`
	Out   bool   `json:"out"`
}

type Bowler struct {
	Name    string `json:"name"`
	Balls   int    `json:"balls"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

// Innings is one side's batting record together with the opposing
// bowling card.
type Innings struct {
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Overs   int    `json:"overs"`
	Balls   int    `json:"balls"`
	Extras  Extras `json:"extras"`

	Batters    []Batter `json:"batters"`
	Striker    int      `json:"striker"`
	NonStriker int      `json:"non_striker"`
	NextBatter int      `json:"next_batter"`

	Bowlers []Bowler `json:"bowlers"`
	Bowler  int      `json:"bowler"`

	// Faced is set once the current delivery has been charged to a batter.
	Faced bool `json:"faced"`
}

func (in Innings) clone() Innings {
	in.Batters = slices.Clone(in.Batters)
	in.Bowlers = slices.Clone(in.Bowlers)
	return in
}

func newInnings(lineup []string, openingBowler string) Innings {
	batters := make([]Batter, squadSize)
	for i := range batters {
		name := fmt.Sprintf("Batter %d", i+1)
		if i < len(lineup) && lineup[i] != "" {
			name = lineup[i]
		}
		batters[i] = Batter{Name: name}
	}
	return Innings{
		Batters:    batters,
		Striker:    0,
		NonStriker: 1,
		NextBatter: 2,
		Bowlers:    []Bowler{{Name: openingBowler}},
	}
}

type State struct {
	Setup Setup `json:"setup"`

	Home Innings `json:"home"`
	Away Innings `json:"away"`

	BattingTeam game.Side `json:"batting_team"`
	Innings     int       `json:"innings"`
	// Target is the chasing side's winning total, 0 until the first
	// innings closes.
	Target     int       `json:"target"`
	IsComplete bool      `json:"is_complete"`
	Winner     game.Side `json:"winner"`
	Result     string    `json:"result"`
}

func Initial(setup Setup) State {
	setup = setup.withDefaults()
	return State{
		Setup:       setup,
		Home:        newInnings(setup.HomeLineup, setup.AwayBowler),
		Away:        newInnings(setup.AwayLineup, setup.HomeBowler),
		BattingTeam: game.Home,
		Innings:     1,
	}
}

func (s State) Batting() Innings {
	return game.Pick(s.BattingTeam, s.Home, s.Away)
}

func (s State) withBatting(in Innings) State {
	if s.BattingTeam == game.Home {
		s.Home = in
	} else {
		s.Away = in
	}
	return s
}

func (s State) teamName(side game.Side) string {
	return game.Pick(side, s.Setup.Home, s.Setup.Away)
}

func Rules() game.Rules[State, Event] {
	return game.Rules[State, Event]{
		Sport:     events.SportCricket,
		Init:      game.SetupFrom(Initial),
		Apply:     Apply,
		Codec:     codec,
		Summarize: Summarize,
	}
}

func New(setup Setup) *game.Session[State, Event] {
	return game.NewSession(Rules(), Initial(setup))
}

func score(in Innings) string {
	return fmt.Sprintf("%d/%d (%s)", in.Runs, in.Wickets, format.Overs(in.Overs, in.Balls))
}

func Summarize(s State) game.Summary {
	bat := s.Batting()
	lines := []string{
		fmt.Sprintf("%s batting  RR %s  Extras %d",
			s.teamName(s.BattingTeam), format.Rate2(format.RunRate(bat.Runs, bat.Overs, bat.Balls)), bat.Extras.Total()),
	}
	if s.Target > 0 && !s.IsComplete {
		need := max(s.Target-bat.Runs, 0)
		lines = append(lines, fmt.Sprintf("Target %d  need %d  RRR %s", s.Target, need,
			format.Rate2(format.RequiredRunRate(s.Target, bat.Runs, s.Setup.MaxOvers, bat.Overs, bat.Balls))))
	}
	for _, i := range []int{bat.Striker, bat.NonStriker} {
		if i < 0 || i >= len(bat.Batters) {
			continue
		}
		b := bat.Batters[i]
		mark := ""
		if i == bat.Striker {
			mark = "*"
		}
		lines = append(lines, fmt.Sprintf("%s%s %d (%d) 4s:%d 6s:%d SR %s", b.Name, mark, b.Runs, b.Balls,
			b.Fours, b.Sixes, format.Rate2(format.StrikeRate(b.Runs, b.Balls))))
	}
	if bat.Bowler >= 0 && bat.Bowler < len(bat.Bowlers) {
		bw := bat.Bowlers[bat.Bowler]
		lines = append(lines, fmt.Sprintf("%s %s-%d-%d Econ %s", bw.Name, format.Overs(bw.Balls/ballsPerOver, bw.Balls%ballsPerOver),
			bw.Runs, bw.Wickets, format.Rate2(format.Economy(bw.Runs, bw.Balls))))
	}
	if s.Result != "" {
		lines = append(lines, s.Result)
	}
	sum := game.Summary{
		Home:      s.Setup.Home,
		Away:      s.Setup.Away,
		HomeScore: score(s.Home),
		AwayScore: score(s.Away),
		Period:    fmt.Sprintf("%s, %s Innings", s.Setup.Format, format.Ordinal(s.Innings)),
		Serving:   s.BattingTeam,
		Lines:     lines,
		Complete:  s.IsComplete,
		Winner:    game.WinnerName(s.Winner, s.Setup.Home, s.Setup.Away),
	}
	if s.IsComplete {
		sum.Serving = game.None
	}
	return sum
}
