// Package requests keeps at most one in-flight upstream call per session view.
//
// Starting a request for a key cancels the previous one for the same key, and the
// holder of a ticket can check whether it is still the latest before touching shared
// state. Calls for the same key are also spaced out by a minimum interval, which
// absorbs bursts of input changes.
package requests

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrSuperseded is returned by Begin when a newer request for the same key arrived
// while this one was waiting its turn.
var ErrSuperseded = errors.New("requests: superseded by a newer request")

// View names the part of the UI a request belongs to.
type View string

const (
	ViewDirections View = "directions"
	ViewExplore    View = "explore"
)

// Key identifies a request slot.
type Key struct {
	Session string
	View    View
}

type slot struct {
	limiter *rate.Limiter
	seq     uint64
	cancel  context.CancelFunc
}

// Tracker hands out tickets per key.
type Tracker struct {
	mu       sync.Mutex
	interval time.Duration
	slots    map[Key]*slot
}

// NewTracker creates a tracker allowing one call per interval for each key. A zero
// interval disables the spacing.
func NewTracker(interval time.Duration) *Tracker {
	return &Tracker{
		interval: interval,
		slots:    make(map[Key]*slot),
	}
}

// Ticket is held for the duration of one upstream call.
type Ticket struct {
	tracker *Tracker
	key     Key
	seq     uint64
	cancel  context.CancelFunc
}

// Begin registers a new request for key, cancelling any older one, and blocks until
// the key's interval allows it to proceed. The returned context is cancelled when a
// newer request for the same key begins.
func (t *Tracker) Begin(ctx context.Context, key Key) (context.Context, *Ticket, error) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	s, ok := t.slots[key]
	if !ok {
		limit := rate.Inf
		if t.interval > 0 {
			limit = rate.Every(t.interval)
		}
		s = &slot{limiter: rate.NewLimiter(limit, 1)}
		t.slots[key] = s
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	s.cancel = cancel
	ticket := &Ticket{tracker: t, key: key, seq: s.seq, cancel: cancel}
	limiter := s.limiter
	t.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		ticket.Done()
		if !ticket.Current() {
			return nil, nil, ErrSuperseded
		}
		return nil, nil, err
	}
	return ctx, ticket, nil
}

// Current reports whether no newer request for the same key has begun.
func (tk *Ticket) Current() bool {
	tk.tracker.mu.Lock()
	defer tk.tracker.mu.Unlock()

	s, ok := tk.tracker.slots[tk.key]
	return ok && s.seq == tk.seq
}

// Done releases the ticket's context.
func (tk *Ticket) Done() {
	tk.cancel()
}

// Forget drops every slot of a session.
func (t *Tracker) Forget(session string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, s := range t.slots {
		if key.Session != session {
			continue
		}
		if s.cancel != nil {
			s.cancel()
		}
		delete(t.slots, key)
	}
}

// Len returns the number of tracked slots.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}
