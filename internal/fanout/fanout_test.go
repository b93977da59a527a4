package fanout

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/core/state/game/tugofwar"
	"github.com/charleschow/sportshunt/internal/events"
)

func TestUnmarshalEvent_Scoreboard(t *testing.T) {
	data, err := MarshalEvent(events.Event{
		ID:      "e1",
		Type:    events.EventScoreboard,
		Sport:   events.SportTennis,
		MatchID: "m1",
		Payload: events.ScoreboardEvent{Sport: events.SportTennis, HomeScore: "15", AwayScore: "0", Lines: []string{"Sets 0-0"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	evt, err := UnmarshalEvent(data)
	if err != nil {
		t.Fatal(err)
	}
	sb, ok := evt.Payload.(events.ScoreboardEvent)
	if !ok {
		t.Fatalf("payload type %T", evt.Payload)
	}
	if evt.MatchID != "m1" || sb.HomeScore != "15" || len(sb.Lines) != 1 {
		t.Fatalf("decoded %+v / %+v", evt, sb)
	}
}

func TestUnmarshalEvent_Errors(t *testing.T) {
	if _, err := UnmarshalEvent([]byte(`{"type":"odds","payload":{}}`)); err == nil {
		t.Error("unknown type: expected error")
	}
	if _, err := UnmarshalEvent([]byte(`not json`)); err == nil {
		t.Error("bad envelope: expected error")
	}
	if _, err := UnmarshalEvent([]byte(`{"type":"feed_status","payload":"x"}`)); err == nil {
		t.Error("bad payload: expected error")
	}
}

func TestPublisherProjectsGameEvents(t *testing.T) {
	bus := events.NewBus()
	var got []events.EventType
	var last events.ScoreboardEvent
	bus.Subscribe(func(e events.Event) error {
		got = append(got, e.Type)
		if sb, ok := e.Payload.(events.ScoreboardEvent); ok {
			last = sb
		}
		return nil
	}, events.EventScoreboard, events.EventComplete, events.EventReset)

	gc := game.NewGameContext(tugofwar.New(tugofwar.Setup{Home: "Reds", Away: "Blues"}))
	defer gc.Close()
	gc.AddObserver(NewPublisher(bus))

	for range 2 {
		if err := gc.Dispatch("win_pull", []byte(`{"team":"home"}`)); err != nil {
			t.Fatal(err)
		}
	}
	gc.Reset()

	want := []events.EventType{
		events.EventScoreboard,
		events.EventScoreboard, events.EventComplete,
		events.EventReset, events.EventScoreboard,
	}
	if len(got) != len(want) {
		t.Fatalf("published %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("published %v, want %v", got, want)
		}
	}
	if last.Trigger != game.EventReset || last.HomeScore != "0 pulls" {
		t.Fatalf("last scoreboard = %+v", last)
	}
}

func TestServerForwardsToMatchingViewers(t *testing.T) {
	bus := events.NewBus()
	srv := NewServer(bus, time.Hour)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?sport=tennis"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for srv.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	bus.Publish(events.Event{Type: events.EventScoreboard, Sport: events.SportGolf, Payload: events.ScoreboardEvent{Sport: events.SportGolf}})
	tick := events.ScoreboardEvent{Sport: events.SportTennis, Trigger: "TICK"}
	bus.Publish(events.Event{Type: events.EventScoreboard, Sport: events.SportTennis, Payload: tick})
	bus.Publish(events.Event{Type: events.EventScoreboard, Sport: events.SportTennis, Payload: tick})
	bus.Publish(events.Event{Type: events.EventScoreboard, Sport: events.SportTennis, Payload: events.ScoreboardEvent{Sport: events.SportTennis, Trigger: "SCORE", HomeScore: "15"}})

	var triggers []string
	for range 2 {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		var env Envelope
		if err := json.Unmarshal(msg, &env); err != nil {
			t.Fatal(err)
		}
		if env.Sport != events.SportTennis {
			t.Fatalf("viewer got %s event", env.Sport)
		}
		evt, err := UnmarshalEvent(msg)
		if err != nil {
			t.Fatal(err)
		}
		triggers = append(triggers, evt.Payload.(events.ScoreboardEvent).Trigger)
	}
	if triggers[0] != "TICK" || triggers[1] != "SCORE" {
		t.Fatalf("triggers = %v, want [TICK SCORE]", triggers)
	}
}
