package event

import "sync"

// Queue is an unbounded FIFO of system events
// Thread-Safety:
//   - Push: any goroutine (input readers, js callbacks)
//   - Pop/Drain: the UI loop
//
// The mutex is the only state shared between producers and the UI loop
type Queue struct {
	mu     sync.Mutex
	events []SystemEvent
	head   int
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]SystemEvent, 0, 16)}
}

// Push appends an event
func (q *Queue) Push(e SystemEvent) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// PushAll appends events in order
func (q *Queue) PushAll(es ...SystemEvent) {
	q.mu.Lock()
	q.events = append(q.events, es...)
	q.mu.Unlock()
}

// Pop removes the oldest event, false when empty
func (q *Queue) Pop() (SystemEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.events) {
		return nil, false
	}
	e := q.events[q.head]
	q.events[q.head] = nil
	q.head++
	// Compact once the consumed prefix dominates
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	} else if q.head > 64 && q.head*2 > len(q.events) {
		n := copy(q.events, q.events[q.head:])
		q.events = q.events[:n]
		q.head = 0
	}
	return e, true
}

// Drain returns all pending events in FIFO order
func (q *Queue) Drain() []SystemEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.events) {
		return nil
	}
	out := make([]SystemEvent, len(q.events)-q.head)
	copy(out, q.events[q.head:])
	q.events = q.events[:0]
	q.head = 0
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events) - q.head
}
