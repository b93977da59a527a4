package game

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/charleschow/sportshunt/internal/events"
)

// Rules binds one sport's reducer and metadata to the generic Session.
type Rules[S any, E Kinded] struct {
	Sport events.Sport

	// Init builds the post-setup state from JSON setup parameters.
	Init func(raw []byte) (S, error)

	// Apply is the pure reducer. It must not write to slices or maps
	// reachable from its input state.
	Apply func(S, E) S

	Codec Codec[E]

	// Undoable reports whether e enters the action log. Nil means every
	// event is undoable.
	Undoable func(E) bool

	// Merge folds consecutive transient events (clock ticks). Optional.
	Merge func(prev, next E) (E, bool)

	// Tick returns the one-second clock event. Nil for untimed sports.
	Tick func() E

	// Running reports whether the clock should advance. Nil means never.
	Running func(S) bool

	Summarize func(S) Summary
}

// Session owns one match: the post-setup initial state, the live state and
// the journal of events applied since. Not safe for concurrent use; a
// GameContext serializes access.
type Session[S any, E Kinded] struct {
	rules    Rules[S, E]
	matchID  string
	initial  S
	state    S
	journal  Journal[E]
	revision uint64
}

func NewSession[S any, E Kinded](rules Rules[S, E], initial S) *Session[S, E] {
	return &Session[S, E]{
		rules:   rules,
		matchID: uuid.NewString(),
		initial: initial,
		state:   initial,
	}
}

func (s *Session[S, E]) Sport() events.Sport { return s.rules.Sport }
func (s *Session[S, E]) MatchID() string     { return s.matchID }
func (s *Session[S, E]) State() S            { return s.state }
func (s *Session[S, E]) Initial() S          { return s.initial }
func (s *Session[S, E]) Actions() int        { return s.journal.Actions() }
func (s *Session[S, E]) CanUndo() bool       { return s.journal.Actions() > 0 }

// Revision increases on every state change. Observers compare revisions to
// detect no-ops.
func (s *Session[S, E]) Revision() uint64 { return s.revision }

func (s *Session[S, E]) Journal() []Entry[E] { return s.journal.Entries() }

func (s *Session[S, E]) Kinds() []string { return s.rules.Codec.Kinds() }

// Apply runs e through the reducer. Events that leave the state unchanged
// are dropped and never reach the journal.
func (s *Session[S, E]) Apply(e E) {
	next := s.rules.Apply(s.state, e)
	if reflect.DeepEqual(next, s.state) {
		return
	}
	s.state = next
	s.journal.Append(e, s.undoable(e), s.rules.Merge)
	s.revision++
}

// ApplyKind decodes payload as the event named kind and applies it.
func (s *Session[S, E]) ApplyKind(kind string, payload []byte) error {
	e, err := s.rules.Codec.Decode(kind, payload)
	if err != nil {
		return err
	}
	s.Apply(e)
	return nil
}

// Undo drops the most recent undoable entry and rebuilds the live state by
// replaying what remains from the initial state. Returns false when the
// action log is empty.
func (s *Session[S, E]) Undo() bool {
	if !s.journal.PopUndoable() {
		return false
	}
	s.state = Replay(&s.journal, s.initial, s.rules.Apply)
	s.revision++
	return true
}

// Reset returns to the post-setup state. Setup parameters are kept.
func (s *Session[S, E]) Reset() {
	s.state = s.initial
	s.journal.Clear()
	s.matchID = uuid.NewString()
	s.revision++
}

// Setup starts a new match from JSON setup parameters.
func (s *Session[S, E]) Setup(raw []byte) error {
	initial, err := s.rules.Init(raw)
	if err != nil {
		return fmt.Errorf("%s setup: %w", s.rules.Sport, err)
	}
	s.initial = initial
	s.Reset()
	return nil
}

func (s *Session[S, E]) Running() bool {
	return s.rules.Running != nil && s.rules.Running(s.state)
}

// Tick advances the clock by one second when it is running. Returns true
// when the state changed.
func (s *Session[S, E]) Tick() bool {
	if s.rules.Tick == nil || !s.Running() {
		return false
	}
	rev := s.revision
	s.Apply(s.rules.Tick())
	return s.revision != rev
}

func (s *Session[S, E]) Summary() Summary {
	sum := s.rules.Summarize(s.state)
	sum.Sport = s.rules.Sport
	sum.MatchID = s.matchID
	sum.Actions = s.journal.Actions()
	return sum
}

func (s *Session[S, E]) undoable(e E) bool {
	return s.rules.Undoable == nil || s.rules.Undoable(e)
}

type journalRecord struct {
	Kind     string          `json:"kind"`
	Undoable bool            `json:"undoable"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

type snapshot struct {
	Sport   events.Sport    `json:"sport"`
	MatchID string          `json:"match_id"`
	Initial json.RawMessage `json:"initial"`
	State   json.RawMessage `json:"state"`
	Journal []journalRecord `json:"journal"`
	SavedAt time.Time       `json:"saved_at"`
}

// MarshalSnapshot serializes the whole session: setup, live state and the
// journal needed for undo after a reload.
func (s *Session[S, E]) MarshalSnapshot() ([]byte, error) {
	initial, err := json.Marshal(s.initial)
	if err != nil {
		return nil, fmt.Errorf("marshal initial: %w", err)
	}
	state, err := json.Marshal(s.state)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	records := make([]journalRecord, 0, s.journal.Len())
	for _, entry := range s.journal.Entries() {
		env, err := Encode(entry.Event)
		if err != nil {
			return nil, err
		}
		records = append(records, journalRecord{Kind: env.Kind, Undoable: entry.Undoable, Payload: env.Payload})
	}
	return json.Marshal(snapshot{
		Sport:   s.rules.Sport,
		MatchID: s.matchID,
		Initial: initial,
		State:   state,
		Journal: records,
		SavedAt: time.Now().UTC(),
	})
}

// RestoreSnapshot replaces the session with a previously saved one,
// verbatim. The session is untouched on error.
func (s *Session[S, E]) RestoreSnapshot(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Sport != s.rules.Sport {
		return fmt.Errorf("%s snapshot into %s: %w", snap.Sport, s.rules.Sport, ErrSportMismatch)
	}
	var initial, state S
	if err := json.Unmarshal(snap.Initial, &initial); err != nil {
		return fmt.Errorf("parse initial state: %w", err)
	}
	if err := json.Unmarshal(snap.State, &state); err != nil {
		return fmt.Errorf("parse live state: %w", err)
	}
	var journal Journal[E]
	for _, rec := range snap.Journal {
		e, err := s.rules.Codec.Decode(rec.Kind, rec.Payload)
		if err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		journal.Append(e, rec.Undoable, nil)
	}

	s.initial = initial
	s.state = state
	s.journal = journal
	if snap.MatchID != "" {
		s.matchID = snap.MatchID
	}
	s.revision++
	return nil
}

// SetupFrom adapts a typed constructor into a Rules.Init function. Empty
// input yields the constructor's defaults.
func SetupFrom[P any, S any](build func(P) S) func([]byte) (S, error) {
	return func(raw []byte) (S, error) {
		var p P
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &p); err != nil {
				var none S
				return none, err
			}
		}
		return build(p), nil
	}
}
