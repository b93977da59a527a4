package process

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

func TestPrintFeedEvent(t *testing.T) {
	ts := time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC)
	sb := events.ScoreboardEvent{
		Sport: events.SportBasketball, Trigger: game.EventScore,
		Home: "Boston Celtics", Away: "Miami Heat", HomeScore: "88", AwayScore: "85",
		Period: "4th Quarter", Clock: "01:12", Serving: "home",
	}

	tests := []struct {
		name string
		evt  events.Event
		want []string
	}{
		{"score", events.Event{Timestamp: ts, Payload: sb}, []string{"[SCORE", "Boston Celtics vs Miami Heat", "88 - 85", "01:12", "Serving:      Boston Celtics"}},
		{"tick", events.Event{Timestamp: ts, Payload: func() events.ScoreboardEvent { s := sb; s.Trigger = game.EventTick; return s }()}, []string{"[TICK", "Celtics 88 - 85 Heat"}},
		{"reset", events.Event{Timestamp: ts, Payload: events.ResetEvent{Sport: events.SportGolf}}, []string{"[RESET", "golf"}},
		{"feed", events.Event{Payload: events.FeedStatusEvent{Connected: false}}, []string{"[FEED] disconnected"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printFeedEvent(&buf, tt.evt)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}
