package game

import "slices"

// TickEvent is implemented by clock-tick variants so consecutive ticks can
// be folded into one journal entry.
type TickEvent interface {
	Kinded
	TickSeconds() int
}

// MergeTicks folds two tick events into one carrying their combined
// seconds. build constructs the sport's tick variant.
func MergeTicks[E Kinded](build func(seconds int) E) func(prev, next E) (E, bool) {
	return func(prev, next E) (E, bool) {
		p, ok1 := any(prev).(TickEvent)
		n, ok2 := any(next).(TickEvent)
		if !ok1 || !ok2 {
			var none E
			return none, false
		}
		return build(p.TickSeconds() + n.TickSeconds()), true
	}
}

// TickSteps is the number of one-second steps a tick payload stands for.
// A zero or missing count means one second.
func TickSteps(seconds int) int { return max(seconds, 1) }

// Transient returns an Undoable predicate that keeps the named kinds out
// of the action log.
func Transient[E Kinded](kinds ...string) func(E) bool {
	return func(e E) bool { return !slices.Contains(kinds, e.Kind()) }
}

// Countdown decrements v by one, flooring at zero.
func Countdown(v int) int { return max(v-1, 0) }
