package golf

import (
	"slices"

	game "github.com/charleschow/sportshunt/internal/core/state/game"
)

type Event interface {
	Kind() string
	golfEvent()
}

// SetScore records Strokes for Player (0-based) on Hole (1-based). Zero
// clears the hole. Scores may be corrected after the round is complete.
type SetScore struct {
	Player  int `json:"player"`
	Hole    int `json:"hole"`
	Strokes int `json:"strokes"`
}

// NextHole advances play; on the last hole it completes the round.
type NextHole struct{}

// PrevHole steps back one hole, or reopens a completed round.
type PrevHole struct{}

func (SetScore) Kind() string { return "score" }
func (NextHole) Kind() string { return "next_hole" }
func (PrevHole) Kind() string { return "prev_hole" }

func (SetScore) golfEvent() {}
func (NextHole) golfEvent() {}
func (PrevHole) golfEvent() {}

var codec = game.NewCodec(
	game.Variant[Event, SetScore](),
	game.Variant[Event, NextHole](),
	game.Variant[Event, PrevHole](),
)

func Apply(s State, e Event) State {
	switch ev := e.(type) {
	case SetScore:
		if ev.Player < 0 || ev.Player >= len(s.Scores) || ev.Hole < 1 || ev.Hole > s.Setup.Holes || ev.Strokes < 0 {
			return s
		}
		s.Scores = slices.Clone(s.Scores)
		s.Scores[ev.Player] = slices.Clone(s.Scores[ev.Player])
		s.Scores[ev.Player][ev.Hole-1] = ev.Strokes
	case NextHole:
		if s.IsComplete {
			return s
		}
		if s.CurrentHole < s.Setup.Holes {
			s.CurrentHole++
		} else {
			s.IsComplete = true
		}
	case PrevHole:
		switch {
		case s.IsComplete:
			s.IsComplete = false
		case s.CurrentHole > 1:
			s.CurrentHole--
		}
	}
	return s
}
