package game

// Entry is one applied event. Only undoable entries count toward the
// action log.
type Entry[E Kinded] struct {
	Event    E
	Undoable bool
}

// Journal records every event applied since the last setup or reset, in
// order. Replaying it from the initial state reproduces the live state.
type Journal[E Kinded] struct {
	entries []Entry[E]
	actions int
}

// Append records e. When merge is non-nil and both e and the previous
// entry are transient, merge may fold them into a single entry (used to
// collapse runs of clock ticks).
func (j *Journal[E]) Append(e E, undoable bool, merge func(prev, next E) (E, bool)) {
	if !undoable && merge != nil && len(j.entries) > 0 {
		last := &j.entries[len(j.entries)-1]
		if !last.Undoable {
			if folded, ok := merge(last.Event, e); ok {
				last.Event = folded
				return
			}
		}
	}
	j.entries = append(j.entries, Entry[E]{Event: e, Undoable: undoable})
	if undoable {
		j.actions++
	}
}

// PopUndoable removes the most recent undoable entry. Transient entries
// recorded after it stay in place.
func (j *Journal[E]) PopUndoable() bool {
	for i := len(j.entries) - 1; i >= 0; i-- {
		if j.entries[i].Undoable {
			j.entries = append(j.entries[:i:i], j.entries[i+1:]...)
			j.actions--
			return true
		}
	}
	return false
}

// Actions is the length of the action log.
func (j *Journal[E]) Actions() int { return j.actions }

func (j *Journal[E]) Len() int { return len(j.entries) }

func (j *Journal[E]) Entries() []Entry[E] { return j.entries }

func (j *Journal[E]) Clear() {
	j.entries = nil
	j.actions = 0
}

// Replay folds the journal's events over initial.
func Replay[S any, E Kinded](j *Journal[E], initial S, apply func(S, E) S) S {
	st := initial
	for _, e := range j.entries {
		st = apply(st, e.Event)
	}
	return st
}
