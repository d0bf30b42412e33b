package notifier

import (
	"sync"
	"time"
)

// depositQueue is an unbounded FIFO with a pop-with-timeout. A timed-out
// pop is a normal "no event" result, not an error.
type depositQueue struct {
	mu    sync.Mutex
	items []DepositEvent
	wake  chan struct{}
}

func newDepositQueue() *depositQueue {
	return &depositQueue{
		wake: make(chan struct{}, 1),
	}
}

func (q *depositQueue) Push(event DepositEvent) {
	q.mu.Lock()
	q.items = append(q.items, event)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *depositQueue) Pop(timeout time.Duration) (DepositEvent, bool) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			event := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return event, true
		}
		q.mu.Unlock()

		select {
		case <-q.wake:
			// re-check; another reader may have raced us to the item
		case <-deadline.C:
			return DepositEvent{}, false
		}
	}
}

func (q *depositQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
