package game

import "github.com/charleschow/sportshunt/internal/events"

// Match is the sport-agnostic view of a Session. Every *Session satisfies it.
type Match interface {
	Sport() events.Sport
	MatchID() string
	Revision() uint64
	Kinds() []string

	ApplyKind(kind string, payload []byte) error
	Undo() bool
	CanUndo() bool
	Actions() int
	Reset()
	Setup(raw []byte) error

	Tick() bool
	Running() bool

	Summary() Summary

	MarshalSnapshot() ([]byte, error)
	RestoreSnapshot(data []byte) error
}
