package fanout

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charleschow/sportshunt/internal/events"
)

// Envelope is the wire format for events sent over the feed WebSocket.
type Envelope struct {
	Type      string          `json:"type"`
	ID        string          `json:"id,omitempty"`
	Sport     events.Sport    `json:"sport,omitempty"`
	MatchID   string          `json:"match_id,omitempty"`
	Timestamp time.Time       `json:"ts"`
	Payload   json.RawMessage `json:"payload"`
}

// MarshalEvent serializes an Event into a JSON-encoded Envelope.
func MarshalEvent(evt events.Event) ([]byte, error) {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal(Envelope{
		Type:      string(evt.Type),
		ID:        evt.ID,
		Sport:     evt.Sport,
		MatchID:   evt.MatchID,
		Timestamp: evt.Timestamp,
		Payload:   payload,
	})
}

// UnmarshalEvent deserializes a JSON Envelope back into a typed Event.
func UnmarshalEvent(data []byte) (events.Event, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return events.Event{}, fmt.Errorf("unmarshal envelope: %w", err)
	}

	evt := events.Event{
		ID:        env.ID,
		Type:      events.EventType(env.Type),
		Sport:     env.Sport,
		MatchID:   env.MatchID,
		Timestamp: env.Timestamp,
	}

	switch evt.Type {
	case events.EventScoreboard, events.EventComplete:
		var sb events.ScoreboardEvent
		if err := json.Unmarshal(env.Payload, &sb); err != nil {
			return evt, fmt.Errorf("unmarshal %s: %w", env.Type, err)
		}
		evt.Payload = sb
	case events.EventReset:
		var re events.ResetEvent
		if err := json.Unmarshal(env.Payload, &re); err != nil {
			return evt, fmt.Errorf("unmarshal match_reset: %w", err)
		}
		evt.Payload = re
	case events.EventFeedStatus:
		var fs events.FeedStatusEvent
		if err := json.Unmarshal(env.Payload, &fs); err != nil {
			return evt, fmt.Errorf("unmarshal feed_status: %w", err)
		}
		evt.Payload = fs
	default:
		return evt, fmt.Errorf("unknown event type: %s", env.Type)
	}

	return evt, nil
}
