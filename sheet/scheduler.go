package sheet

// FrameQueue defers work to the next frame boundary of a cooperative,
// single-threaded UI loop. The loop calls Flush once per frame; functions
// scheduled during a flush run on the following one.
type FrameQueue struct {
	pending []func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Schedule queues fn for the next flush.
func (q *FrameQueue) Schedule(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Flush runs everything scheduled before this call, in order.
func (q *FrameQueue) Flush() {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
}

// Len returns the number of functions waiting for the next flush.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}
