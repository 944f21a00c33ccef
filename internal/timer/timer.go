// ABOUTME: Repeating one-second tick scheduler with a strict stop guarantee.
// ABOUTME: At most one tick loop is alive per Ticker; Stop waits for it to exit.
package timer

import (
	"context"
	"sync"
	"time"
)

// Source creates a tick channel and a func that releases it.
type Source func(d time.Duration) (<-chan time.Time, func())

// RealSource backs ticks with time.Ticker.
func RealSource(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Ticker calls a function on every tick until stopped.
type Ticker struct {
	interval time.Duration
	source   Source

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Ticker.
type Option func(*Ticker)

// WithSource replaces the tick source, mainly for tests.
func WithSource(src Source) Option {
	return func(t *Ticker) { t.source = src }
}

// WithInterval sets the tick period. The default is one second.
func WithInterval(d time.Duration) Option {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// New creates a stopped Ticker.
func New(opts ...Option) *Ticker {
	t := &Ticker{
		interval: time.Second,
		source:   RealSource,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start runs fn on every tick until Stop is called or ctx ends. Any loop
// already running is stopped first. fn returning false ends the loop; fn
// runs on the loop goroutine and must not call Start or Stop itself.
func (t *Ticker) Start(ctx context.Context, fn func() bool) {
	t.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticks, release := t.source(t.interval)

	t.mu.Lock()
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		defer release()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				// Stop may have raced with this tick.
				if ctx.Err() != nil {
					return
				}
				if !fn() {
					return
				}
			}
		}
	}()
}

// Stop cancels the running loop and waits until it has exited, so fn is
// never called after Stop returns. Stopping an idle Ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a loop is alive.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Wait blocks until the current loop exits on its own or via Stop.
func (t *Ticker) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}
