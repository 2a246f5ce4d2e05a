package control

// Queue buffers events from the input poller until the frame loop drains
// them once per tick. Both sides run on the same goroutine; a Queue is not
// safe for concurrent use.
type Queue struct {
	pending []Event
}

// NewQueue returns an empty queue with room for capacity events before it
// has to grow.
func NewQueue(capacity int) *Queue {
	return &Queue{pending: make([]Event, 0, capacity)}
}

// Push appends e.
func (q *Queue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.pending) }

// Drain removes and returns all pending events in arrival order.
func (q *Queue) Drain() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Event, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}
