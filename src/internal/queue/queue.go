// FILE: logfan/src/internal/queue/queue.go
package queue

import (
	"sync"

	"logfan/src/internal/core"
)

// Queue is an unbounded FIFO transferring entry ownership from producers to
// the single consumer. One mutex plus a condition variable guard the slice;
// the consumer holds the lock only inside Next, so all destination I/O
// happens with the queue unlocked and producers keep submitting freely.
//
// A buffered channel is deliberately not used here: the exit condition is
// "empty AND stopped", re-checked after every wake, and queued entries must
// survive a stop request. A closed channel cannot express that drain contract
// without a second coordinator.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	entries []core.LogEntry
	stopped bool
}

// New creates an empty queue.
func New() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends an entry and wakes one waiting consumer. The critical section
// is a slice append; producers never block on I/O. Entries pushed after Stop
// are discarded, submitting past teardown is a caller contract violation.
func (q *Queue) Push(e core.LogEntry) {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.entries = append(q.entries, e)
	q.mu.Unlock()
	q.cond.Signal()
}

// Next blocks until an entry is available or the queue is stopped AND empty.
// It returns false only in the latter case, so a stop request never truncates
// a non-empty queue.
func (q *Queue) Next() (core.LogEntry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.entries) == 0 {
		if q.stopped {
			return core.LogEntry{}, false
		}
		q.cond.Wait()
	}

	e := q.entries[0]
	q.entries = q.entries[1:]
	if len(q.entries) == 0 {
		// Release the backing array once drained
		q.entries = nil
	}
	return e, true
}

// Stop marks the queue stopped and wakes the consumer. Already-queued entries
// still drain through Next.
func (q *Queue) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
