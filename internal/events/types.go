package events

// ScoreboardEvent is published after every change to a match. It carries the
// read-only projection that display clients render.
type ScoreboardEvent struct {
	Sport     Sport    `json:"sport"`
	MatchID   string   `json:"match_id"`
	Trigger   string   `json:"trigger"` // "SCORE", "UNDO", "TICK", ...
	Home      string   `json:"home"`
	Away      string   `json:"away"`
	HomeScore string   `json:"home_score"`
	AwayScore string   `json:"away_score"`
	Period    string   `json:"period,omitempty"`
	Clock     string   `json:"clock,omitempty"`
	Serving   string   `json:"serving,omitempty"`
	Lines     []string `json:"lines,omitempty"`
	Complete  bool     `json:"complete"`
	Winner    string   `json:"winner,omitempty"`
	Actions   int      `json:"actions"`
}

// ResetEvent signals that a sport's match was cleared.
type ResetEvent struct {
	Sport   Sport  `json:"sport"`
	MatchID string `json:"match_id"`
}

// FeedStatusEvent signals feed connect/disconnect to viewers.
type FeedStatusEvent struct {
	Connected bool `json:"connected"`
}
