package geo

import "sync"

// Ticket identifies one location request.
type Ticket uint64

// Tracker orders concurrent location requests so that only the most
// recently issued one may publish its result. Results of superseded
// requests are dropped even when they arrive last.
type Tracker struct {
	mu     sync.Mutex
	latest Ticket
}

// Issue starts a new request and supersedes every earlier ticket.
func (t *Tracker) Issue() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	return t.latest
}

// Accept reports whether a result carrying ticket may be applied.
func (t *Tracker) Accept(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ticket != 0 && ticket == t.latest
}
