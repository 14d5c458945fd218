// Package debounce implements a per-button cooldown filter for raw
// switch edges.
package debounce

import "time"

// Window is the refractory period after an accepted edge.
const Window = 400 * time.Millisecond

// Button identifies a physical button.
type Button int

// Buttons wired to the board.
const (
	ButtonA Button = iota
	ButtonB

	NumButtons int = iota
)

// String implements fmt.Stringer.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	}
	return "?"
}

// IsValid indicates the button is wired.
func (b Button) IsValid() bool {
	return b >= 0 && int(b) < NumButtons
}

// Verdict is the outcome of considering an edge.
type Verdict int

const (
	// Suppressed means the edge is a bounce and must be ignored.
	Suppressed Verdict = iota
	// Accepted means the edge is a logical press.
	Accepted
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	if v == Accepted {
		return "accepted"
	}
	return "suppressed"
}

// Filter keeps the last accepted timestamp of every button.
// Timestamps are monotonic durations since boot.
// A Filter is not safe for concurrent use; it belongs to the context
// that receives edges.
type Filter struct {
	Window time.Duration

	last     [NumButtons]time.Duration
	accepted [NumButtons]bool
}

// NewFilter creates a Filter with the default Window.
func NewFilter() *Filter {
	return &Filter{Window: Window}
}

// Consider decides whether an edge of button b at time at is accepted.
// The first edge of a button is always accepted. Later edges are accepted
// only when strictly more than Window has elapsed since the last accepted
// one; edges older than the last accepted one are suppressed.
func (f *Filter) Consider(b Button, at time.Duration) Verdict {
	if !b.IsValid() {
		return Suppressed
	}
	if f.accepted[b] {
		if at < f.last[b] || at-f.last[b] <= f.Window {
			return Suppressed
		}
	}
	f.last[b], f.accepted[b] = at, true
	return Accepted
}

// LastAccepted returns the timestamp of the last accepted edge of b.
// ok is false if no edge has been accepted yet.
func (f *Filter) LastAccepted(b Button) (at time.Duration, ok bool) {
	if !b.IsValid() {
		return 0, false
	}
	return f.last[b], f.accepted[b]
}
