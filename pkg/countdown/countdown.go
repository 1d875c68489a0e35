// Package countdown implements a per-slot hold timer that ticks once per second
// and fires an expiry callback exactly once.
package countdown

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Interval is the tick period
const Interval = time.Second

// Countdown counts down from a number of seconds to zero
type Countdown struct {
	mu        sync.Mutex
	remaining int
	onExpire  func()
	expired   bool
	cancelled bool
}

// New creates a stopped countdown. onExpire may be nil.
func New(seconds int, onExpire func()) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{
		remaining: seconds,
		onExpire:  onExpire,
	}
}

// Remaining returns the seconds left, never negative
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Expired reports whether the expiry callback has fired
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Cancel stops the countdown without firing the callback. Further ticks are ignored.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelled = true
}

// Tick decrements the countdown by one second and returns the seconds left.
// On reaching zero the callback is invoked once; it runs outside the lock.
func (c *Countdown) Tick() int {
	c.mu.Lock()
	if c.cancelled || c.expired {
		left := c.remaining
		c.mu.Unlock()
		return left
	}

	if c.remaining > 0 {
		c.remaining--
	}
	left := c.remaining
	fire := c.expireLocked()
	c.mu.Unlock()

	if fire != nil {
		fire()
	}
	return left
}

// Run drives Tick from the clock until the countdown expires or ctx is done.
// The ticker is always stopped on return.
func (c *Countdown) Run(ctx context.Context, clock clockwork.Clock) {
	// уже истекший (нулевой) отсчет срабатывает сразу, без тикера
	c.mu.Lock()
	fire := c.expireLocked()
	done := c.expired || c.cancelled
	c.mu.Unlock()
	if fire != nil {
		fire()
	}
	if done {
		return
	}

	ticker := clock.NewTicker(Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if c.Tick() == 0 {
				return
			}
			if c.isCancelled() {
				return
			}
		}
	}
}

// Start runs the countdown in its own goroutine and returns a stop function.
// Stop cancels the countdown and its context; it does not wait for the goroutine,
// so it is safe to call from the expiry callback.
func (c *Countdown) Start(parent context.Context, clock clockwork.Clock) (stop func()) {
	ctx, cancel := context.WithCancel(parent)

	go c.Run(ctx, clock)

	return func() {
		c.Cancel()
		cancel()
	}
}

func (c *Countdown) isCancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelled
}

// expireLocked marks the countdown expired if it reached zero and returns the callback to run
func (c *Countdown) expireLocked() func() {
	if c.remaining > 0 || c.expired || c.cancelled {
		return nil
	}
	c.expired = true
	if c.onExpire == nil {
		return func() {}
	}
	return c.onExpire
}

// FormatClock formats seconds as MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
