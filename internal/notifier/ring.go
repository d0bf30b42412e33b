package notifier

import "sync"

// depositRing keeps the most recent events up to a fixed capacity,
// evicting the oldest on overflow. Reads never block or mutate.
type depositRing struct {
	mu       sync.Mutex
	capacity int
	events   []DepositEvent
}

func newDepositRing(capacity int) *depositRing {
	return &depositRing{
		capacity: capacity,
	}
}

func (r *depositRing) Append(event DepositEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	if len(r.events) > r.capacity {
		r.events = r.events[len(r.events)-r.capacity:]
	}
}

// Latest returns up to limit of the newest events in chronological order.
// limit <= 0 returns everything retained.
func (r *depositRing) Latest(limit int) []DepositEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := 0
	if limit > 0 && len(r.events) > limit {
		start = len(r.events) - limit
	}

	latest := make([]DepositEvent, len(r.events)-start)
	copy(latest, r.events[start:])
	return latest
}

func (r *depositRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
