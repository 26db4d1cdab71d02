// Package scan bridges a token scanner device feed to a verifying
// operator. The device side pushes raw machine reads; the operator side
// awaits the next read with a bounded wait so a verification attempt
// never blocks the counter indefinitely.
package scan

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultAwaitTimeout bounds how long an operator waits for a scanner
// flash before the attempt resolves to a failed scan.
const DefaultAwaitTimeout = 30 * time.Second

var (
	// ErrScanTimedOut is returned when no machine read arrives within the
	// listener's timeout. The operator returns to idle and may retry.
	ErrScanTimedOut = errors.New("no scan received before timeout")

	// ErrAwaitInProgress is returned when a second Await is started while
	// one is already pending on the same listener.
	ErrAwaitInProgress = errors.New("another scan await is already in progress")
)

// Listener is a single-station scan feed. One Await may be pending at a
// time; a Push with no pending Await is dropped as a stale flash.
type Listener struct {
	mu      sync.Mutex
	waiter  chan string
	timeout time.Duration
}

// NewListener creates a Listener with the given await timeout.
// A non-positive timeout falls back to DefaultAwaitTimeout.
func NewListener(timeout time.Duration) *Listener {
	if timeout <= 0 {
		timeout = DefaultAwaitTimeout
	}
	return &Listener{timeout: timeout}
}

// Push delivers a raw machine read to the pending Await, if any.
// It never blocks: with no waiter the read is discarded.
func (l *Listener) Push(raw string) {
	l.mu.Lock()
	waiter := l.waiter
	l.waiter = nil
	l.mu.Unlock()

	if waiter == nil {
		return
	}
	waiter <- raw
}

// Await blocks until the next machine read arrives, the listener's
// timeout elapses, or ctx is cancelled. On timeout it returns
// ErrScanTimedOut; a concurrent Await returns ErrAwaitInProgress.
func (l *Listener) Await(ctx context.Context) (string, error) {
	l.mu.Lock()
	if l.waiter != nil {
		l.mu.Unlock()
		return "", ErrAwaitInProgress
	}
	waiter := make(chan string, 1)
	l.waiter = waiter
	l.mu.Unlock()

	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	select {
	case raw := <-waiter:
		return raw, nil
	case <-timer.C:
		l.abandon(waiter)
		return "", ErrScanTimedOut
	case <-ctx.Done():
		l.abandon(waiter)
		return "", ctx.Err()
	}
}

// abandon detaches the waiter so later pushes are dropped. A push that
// already claimed the channel lands in its buffer and is discarded
// with it.
func (l *Listener) abandon(waiter chan string) {
	l.mu.Lock()
	if l.waiter == waiter {
		l.waiter = nil
	}
	l.mu.Unlock()
}
