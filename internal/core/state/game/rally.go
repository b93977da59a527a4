package game

// RallyTracker is the shared score line of best-of-N sports played in
// win-by-margin games or sets. Sport states embed it.
//
// A and B are the two sides in setup order (Home/PlayerA first).
type RallyTracker struct {
	PointsA     int  `json:"points_a"`
	PointsB     int  `json:"points_b"`
	GamesA      int  `json:"games_a"`
	GamesB      int  `json:"games_b"`
	CurrentGame int  `json:"current_game"`
	IsComplete  bool `json:"is_complete"`
	Winner      Side `json:"winner"`
}

func NewRally() RallyTracker { return RallyTracker{CurrentGame: 1} }

// GamesToWin is the majority of bestOf.
func GamesToWin(bestOf int) int { return (bestOf + 1) / 2 }

// AddPoint credits one point to the side at position first (true) or
// second (false).
func (r *RallyTracker) AddPoint(first bool) {
	if first {
		r.PointsA++
	} else {
		r.PointsB++
	}
}

// GameWinner reports which position has closed the current game: 1 for
// first, 2 for second, 0 when play continues. cap, when positive, ends the
// game outright for whoever reaches it.
func (r RallyTracker) GameWinner(target, margin, cap int) int {
	switch {
	case Reached(r.PointsA, r.PointsB, target, margin):
		return 1
	case Reached(r.PointsB, r.PointsA, target, margin):
		return 2
	case cap > 0 && r.PointsA >= cap:
		return 1
	case cap > 0 && r.PointsB >= cap:
		return 2
	}
	return 0
}

// AwardGame credits the current game to position (1 or 2). When that
// completes the match, winner is recorded and the final points stay on the
// board; otherwise a new game starts at 0-0. Reports whether the match ended.
func (r *RallyTracker) AwardGame(position, toWin int, winner Side) bool {
	games := &r.GamesA
	if position == 2 {
		games = &r.GamesB
	}
	*games++
	if *games >= toWin {
		r.IsComplete = true
		r.Winner = winner
		return true
	}
	r.CurrentGame++
	r.PointsA, r.PointsB = 0, 0
	return false
}

// Points returns the current game points of the first or second position.
func (r RallyTracker) Points(first bool) int {
	if first {
		return r.PointsA
	}
	return r.PointsB
}
