package input

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Kind is the logical request carried by an accepted edge.
type Kind int

// Event kinds.
const (
	IncrementRequested Kind = iota + 1
	DecrementRequested
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case IncrementRequested:
		return "increment"
	case DecrementRequested:
		return "decrement"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is produced at the interrupt boundary for every accepted edge.
type Event struct {
	Kind Kind
	At   time.Duration
}

// QueueSize is the capacity of Queue, a power of 2.
const QueueSize = 16

// Queue is a fixed-capacity ring handing events from one producer
// (the interrupt handler) to one consumer (the main loop). It only uses
// atomic loads and stores and never allocates.
type Queue struct {
	buf     [QueueSize]Event
	head    atomic.Uint32
	tail    atomic.Uint32
	dropped atomic.Uint32
}

// Push appends an event. When the queue is full the event is dropped,
// counted, and false is returned.
func (q *Queue) Push(ev Event) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() >= QueueSize {
		q.dropped.Add(1)
		return false
	}
	q.buf[tail%QueueSize] = ev
	q.tail.Store(tail + 1)
	return true
}

// Pop removes the oldest event.
func (q *Queue) Pop() (ev Event, ok bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return
	}
	ev = q.buf[head%QueueSize]
	q.head.Store(head + 1)
	return ev, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Dropped returns the number of events lost to overflow.
func (q *Queue) Dropped() uint32 {
	return q.dropped.Load()
}
