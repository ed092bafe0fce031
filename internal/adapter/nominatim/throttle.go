package nominatim

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Throttle serializes external calls so that consecutive request starts are
// at least one interval apart. The limit is global to the process: a single
// Throttle is shared by every client instance, because the external service
// rate-limits by origin regardless of which editor triggered the call.
type Throttle struct {
	interval time.Duration
	clock    clockwork.Clock

	mu   sync.Mutex
	next time.Time // earliest permitted start of the next external call
}

// NewThrottle creates a throttle with the given minimum interval between
// call starts. A nil clock selects the real clock; tests inject a fake.
func NewThrottle(interval time.Duration, clock clockwork.Clock) *Throttle {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Throttle{interval: interval, clock: clock}
}

// Wait blocks until the caller may start its external call, or until the
// context is done. Callers reserve their start slot under the mutex and then
// sleep outside it, so they are admitted in arrival order and cannot race
// past the check.
func (t *Throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	now := t.clock.Now()
	start := t.next
	if start.Before(now) {
		start = now
	}
	t.next = start.Add(t.interval)
	t.mu.Unlock()

	delay := start.Sub(now)
	if delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.clock.After(delay):
		return nil
	}
}
