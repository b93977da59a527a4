package game

// Side identifies one of the two competitors in a match. Team sports use
// Home/Away, racket and cue sports use PlayerA/PlayerB. None is the empty
// winner tag.
type Side string

const (
	None    Side = ""
	Home    Side = "home"
	Away    Side = "away"
	PlayerA Side = "A"
	PlayerB Side = "B"
	Tie     Side = "tie"
)

// Other returns the opposing side. None and Tie map to themselves.
func (s Side) Other() Side {
	switch s {
	case Home:
		return Away
	case Away:
		return Home
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return s
}

// IsTeam reports whether s is Home or Away.
func (s Side) IsTeam() bool { return s == Home || s == Away }

// IsPlayer reports whether s is PlayerA or PlayerB.
func (s Side) IsPlayer() bool { return s == PlayerA || s == PlayerB }

// Pick returns a when s is Home/PlayerA and b when s is Away/PlayerB.
func Pick[T any](s Side, a, b T) T {
	if s == Home || s == PlayerA {
		return a
	}
	return b
}

// Reached reports whether score has hit target while leading other by at
// least margin.
func Reached(score, other, target, margin int) bool {
	return score >= target && score-other >= margin
}

// ScoreWinner decides a finished two-sided match by score. Level scores
// give Tie; an unfinished match has no winner.
func ScoreWinner(complete bool, home, away int, homeSide Side) Side {
	switch {
	case !complete:
		return None
	case home > away:
		return homeSide
	case away > home:
		return homeSide.Other()
	}
	return Tie
}
