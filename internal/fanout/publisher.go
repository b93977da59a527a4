package fanout

import (
	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
)

// Publisher is a game.GameObserver that projects every match change onto
// the bus as scoreboard events.
type Publisher struct {
	bus *events.Bus
}

func NewPublisher(bus *events.Bus) *Publisher {
	return &Publisher{bus: bus}
}

func (p *Publisher) OnGameEvent(gc *game.GameContext, eventType string) {
	sum := gc.Match.Summary()
	evt := events.Event{
		Type:    events.EventScoreboard,
		Sport:   gc.Sport,
		MatchID: sum.MatchID,
		Payload: sum.ScoreboardEvent(eventType),
	}
	switch eventType {
	case game.EventComplete:
		evt.Type = events.EventComplete
	case game.EventReset, game.EventSetup:
		p.bus.Publish(events.Event{
			Type:    events.EventReset,
			Sport:   gc.Sport,
			MatchID: sum.MatchID,
			Payload: events.ResetEvent{Sport: gc.Sport, MatchID: sum.MatchID},
		})
	}
	p.bus.Publish(evt)
}
