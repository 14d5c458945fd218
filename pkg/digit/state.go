// Package digit holds the displayed value.
package digit

import "sync/atomic"

// Base is the number of distinct digits.
const Base = 10

// State is the currently displayed digit, always in [0, Base).
// Only one context may call Increment and Decrement; Value can be
// read from anywhere.
type State struct {
	value atomic.Uint32
}

// Value returns the digit at call time.
func (s *State) Value() int {
	return int(s.value.Load())
}

// Increment advances the digit, wrapping 9 to 0, and returns the new value.
func (s *State) Increment() int {
	v := (s.value.Load() + 1) % Base
	s.value.Store(v)
	return int(v)
}

// Decrement steps the digit back, wrapping 0 to 9, and returns the new value.
func (s *State) Decrement() int {
	v := (s.value.Load() + Base - 1) % Base
	s.value.Store(v)
	return int(v)
}
