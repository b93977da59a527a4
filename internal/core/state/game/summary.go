package game

import "github.com/charleschow/sportshunt/internal/events"

// Summary is the sport-agnostic read model of a match, consumed by the
// console, the terminal display and the scoreboard feed.
type Summary struct {
	Sport     events.Sport
	MatchID   string
	Home      string
	Away      string
	HomeScore string
	AwayScore string
	Period    string
	Clock     string // empty for untimed sports
	Serving   Side   // who serves / bats / shoots next, None when not applicable
	Lines     []string
	Complete  bool
	Winner    string // display name of the winner, "Tie", or ""
	Actions   int
}

// WinnerName maps a winner side to the display name carried in a Summary.
func WinnerName(w Side, home, away string) string {
	switch w {
	case Home, PlayerA:
		return home
	case Away, PlayerB:
		return away
	case Tie:
		return "Tie"
	}
	return ""
}

// ScoreboardEvent projects the summary onto the bus payload.
func (s Summary) ScoreboardEvent(trigger string) events.ScoreboardEvent {
	return events.ScoreboardEvent{
		Sport:     s.Sport,
		MatchID:   s.MatchID,
		Trigger:   trigger,
		Home:      s.Home,
		Away:      s.Away,
		HomeScore: s.HomeScore,
		AwayScore: s.AwayScore,
		Period:    s.Period,
		Clock:     s.Clock,
		Serving:   string(s.Serving),
		Lines:     s.Lines,
		Complete:  s.Complete,
		Winner:    s.Winner,
		Actions:   s.Actions,
	}
}
