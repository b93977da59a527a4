package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charleschow/sportshunt/internal/config"
	"github.com/charleschow/sportshunt/internal/core/display"
	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/fanout"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

// RunViewer follows a scorer's feed and prints every scoreboard it
// receives. An empty sport follows all sports.
func RunViewer(sport events.Sport) {
	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	bus := events.NewBus()
	bus.Subscribe(func(e events.Event) error {
		printFeedEvent(os.Stdout, e)
		return nil
	}, events.EventScoreboard, events.EventComplete, events.EventReset, events.EventFeedStatus)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	telemetry.Infof("Following feed at %s", cfg.FeedAddr)
	fanout.NewClient(cfg.FeedAddr, sport, bus).ConnectWithRetry(ctx)
	telemetry.Infof("Viewer stopped")
}

func printFeedEvent(w io.Writer, e events.Event) {
	switch p := e.Payload.(type) {
	case events.ScoreboardEvent:
		if p.Trigger == game.EventTick {
			fmt.Fprint(w, display.RenderTick(summaryOf(p), e.Timestamp))
			return
		}
		fmt.Fprint(w, display.Render(summaryOf(p), p.Trigger, e.Timestamp.Local()))
	case events.ResetEvent:
		fmt.Fprintf(w, "[RESET %s]  %s\n", e.Timestamp.Local().Format(time.Kitchen), p.Sport)
	case events.FeedStatusEvent:
		state := "disconnected"
		if p.Connected {
			state = "connected"
		}
		fmt.Fprintf(w, "[FEED] %s\n", state)
	}
}

func summaryOf(sb events.ScoreboardEvent) game.Summary {
	return game.Summary{
		Sport:     sb.Sport,
		MatchID:   sb.MatchID,
		Home:      sb.Home,
		Away:      sb.Away,
		HomeScore: sb.HomeScore,
		AwayScore: sb.AwayScore,
		Period:    sb.Period,
		Clock:     sb.Clock,
		Serving:   game.Side(sb.Serving),
		Lines:     sb.Lines,
		Complete:  sb.Complete,
		Winner:    sb.Winner,
		Actions:   sb.Actions,
	}
}
