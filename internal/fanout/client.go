package fanout

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

const (
	minBackoff = 1 * time.Second
	maxBackoff = 30 * time.Second
)

// Client connects to a scorer's feed and republishes received events onto
// a local in-process bus. Connection changes are published as
// feed_status events.
type Client struct {
	addr  string
	sport events.Sport
	bus   *events.Bus
}

// NewClient builds a viewer for one sport; an empty sport follows all.
func NewClient(addr string, sport events.Sport, bus *events.Bus) *Client {
	if sport == "" {
		sport = allSports
	}
	return &Client{
		addr:  addr,
		sport: sport,
		bus:   bus,
	}
}

// ConnectWithRetry connects to the feed and reconnects on failure with
// exponential backoff. Blocks until ctx is cancelled.
func (c *Client) ConnectWithRetry(ctx context.Context) {
	attempt := 0
	for {
		if ctx.Err() != nil {
			return
		}

		connStart := time.Now()
		err := c.connect(ctx)
		if ctx.Err() != nil {
			return
		}

		if time.Since(connStart) > time.Minute {
			attempt = 0
		}

		attempt++
		backoff := time.Duration(float64(minBackoff) * math.Pow(2, float64(min(attempt-1, 5))))
		backoff = min(backoff, maxBackoff)

		if err != nil {
			telemetry.Warnf("feed: connection lost (attempt %d): %v, retrying in %s", attempt, err, backoff)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}

func (c *Client) connect(ctx context.Context) error {
	u := url.URL{Scheme: "ws", Host: c.addr, Path: "/ws", RawQuery: "sport=" + url.QueryEscape(string(c.sport))}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", u.String(), err)
	}
	defer conn.Close()

	// Unblock ReadMessage on cancel.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	telemetry.Infof("feed: connected to %s as sport=%s", c.addr, c.sport)
	c.bus.Publish(events.Event{Type: events.EventFeedStatus, Payload: events.FeedStatusEvent{Connected: true}})
	defer c.bus.Publish(events.Event{Type: events.EventFeedStatus, Payload: events.FeedStatusEvent{Connected: false}})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read: %w", err)
		}

		evt, err := UnmarshalEvent(msg)
		if err != nil {
			telemetry.Warnf("feed: unmarshal error: %v", err)
			continue
		}

		c.bus.Publish(evt)
	}
}
