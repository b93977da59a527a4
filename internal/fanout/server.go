package fanout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

const (
	clientSendBuf = 256
	writeDeadline = 5 * time.Second
	pongWait      = 30 * time.Second
	pingInterval  = 20 * time.Second

	// allSports subscribes a viewer to every sport.
	allSports = "all"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// title is called per use; a Caser must not be shared between goroutines.
func title(s string) string { return cases.Title(language.English).String(s) }

type viewer struct {
	sport events.Sport
	conn  *websocket.Conn
	send  chan []byte
	done  chan struct{}
}

func (v *viewer) wants(sport events.Sport) bool {
	return v.sport == allSports || sport == "" || v.sport == sport
}

// Server fans scoreboard events out to connected viewers. It is read-only:
// nothing a viewer sends is applied to a match.
type Server struct {
	mu        sync.Mutex
	clients   map[*viewer]struct{}
	tickEvery time.Duration
	ticks     map[events.Sport]*rate.Limiter
}

// NewServer subscribes to the bus. Clock-tick scoreboards are forwarded at
// most once per tickEvery per sport; zero forwards every tick.
func NewServer(bus *events.Bus, tickEvery time.Duration) *Server {
	s := &Server{
		clients:   make(map[*viewer]struct{}),
		tickEvery: tickEvery,
		ticks:     make(map[events.Sport]*rate.Limiter),
	}
	bus.Subscribe(s.forward, events.EventScoreboard, events.EventComplete, events.EventReset, events.EventFeedStatus)
	return s
}

// ClientCount is the number of connected viewers.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// forward is called on the publisher's goroutine. It serializes the event
// and enqueues it to matching viewers' send channels (non-blocking).
func (s *Server) forward(evt events.Event) error {
	if sb, ok := evt.Payload.(events.ScoreboardEvent); ok && sb.Trigger == "TICK" && !s.allowTick(evt.Sport) {
		return nil
	}
	data, err := MarshalEvent(evt)
	if err != nil {
		return fmt.Errorf("fanout: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		if !c.wants(evt.Sport) {
			continue
		}
		select {
		case c.send <- data:
		default:
			telemetry.Warnf("fanout: dropping message for slow viewer sport=%s", c.sport)
		}
	}
	return nil
}

func (s *Server) allowTick(sport events.Sport) bool {
	if s.tickEvery <= 0 {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ticks[sport]
	if !ok {
		l = rate.NewLimiter(rate.Every(s.tickEvery), 1)
		s.ticks[sport] = l
	}
	return l.Allow()
}

// HandleWS is the HTTP handler for WebSocket upgrade requests. Viewers
// connect with ?sport=hockey, or ?sport=all (the default) for every sport.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	sport := events.Sport(r.URL.Query().Get("sport"))
	if sport == "" {
		sport = allSports
	}
	if sport != allSports && !knownSport(sport) {
		http.Error(w, fmt.Sprintf("unknown sport %q", sport), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		telemetry.Warnf("fanout: upgrade failed: %v", err)
		return
	}

	c := &viewer{
		sport: sport,
		conn:  conn,
		send:  make(chan []byte, clientSendBuf),
		done:  make(chan struct{}),
	}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	telemetry.Metrics.FeedClients.Inc()

	telemetry.Plainf("Feed: Viewer Connected [%s]", title(string(sport)))

	go s.writePump(c)
	go s.readPump(c)
}

func knownSport(sport events.Sport) bool {
	for _, s := range events.AllSports {
		if s == sport {
			return true
		}
	}
	return false
}

// writePump drains the viewer's send channel and writes to the connection.
// It owns the viewer lifecycle: on exit it removes the viewer from the map
// so forward never sends to a stale channel.
func (s *Server) writePump(c *viewer) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		s.removeClient(c)
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				telemetry.Warnf("fanout: write error sport=%s: %v", c.sport, err)
				return
			}
		case <-c.done:
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump keeps the connection alive by reading pongs and close frames.
// On exit it signals writePump via c.done (never closes c.send).
func (s *Server) readPump(c *viewer) {
	defer close(c.done)

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) removeClient(c *viewer) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	telemetry.Metrics.FeedClients.Dec()
	telemetry.Plainf("Feed: Viewer Disconnected [%s]", title(string(c.sport)))
}

// Handler routes /ws to HandleWS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	return mux
}

// ListenAndServe serves the feed until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	telemetry.Plainf("feed: server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
