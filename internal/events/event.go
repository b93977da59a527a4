package events

import "time"

type Sport string

const (
	SportFootball    Sport = "football"
	SportBasketball  Sport = "basketball"
	SportTennis      Sport = "tennis"
	SportHockey      Sport = "hockey"
	SportRugby       Sport = "rugby"
	SportHandball    Sport = "handball"
	SportWaterPolo   Sport = "waterpolo"
	SportTableTennis Sport = "tabletennis"
	SportBadminton   Sport = "badminton"
	SportPickleball  Sport = "pickleball"
	SportVolleyball  Sport = "volleyball"
	SportThrowball   Sport = "throwball"
	SportTugOfWar    Sport = "tugofwar"
	SportPool        Sport = "pool"
	SportSnooker     Sport = "snooker"
	SportGolf        Sport = "golf"
	SportBaseball    Sport = "baseball"
	SportKabaddi     Sport = "kabaddi"
	SportSquash      Sport = "squash"
	SportCricket     Sport = "cricket"
)

// AllSports lists every supported sport in menu order.
var AllSports = []Sport{
	SportFootball, SportBasketball, SportTennis, SportHockey, SportRugby,
	SportHandball, SportWaterPolo, SportTableTennis, SportBadminton,
	SportPickleball, SportVolleyball, SportThrowball, SportTugOfWar,
	SportPool, SportSnooker, SportGolf, SportBaseball, SportKabaddi,
	SportSquash, SportCricket,
}

// StorageKey is the snapshot key a sport's match is persisted under.
func (s Sport) StorageKey() string { return "sportshunt-" + string(s) }

// Event is the envelope that flows through the event bus.
// Every scoreboard change (score, undo, reset, clock) is wrapped in one.
type Event struct {
	ID        string
	Type      EventType
	Sport     Sport
	MatchID   string
	Timestamp time.Time
	Payload   any
}

type EventType string

const (
	EventScoreboard EventType = "scoreboard"
	EventComplete   EventType = "match_complete"
	EventReset      EventType = "match_reset"
	EventFeedStatus EventType = "feed_status"
)
