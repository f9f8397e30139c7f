package tapgate

import (
	"time"

	"github.com/zoobzio/clockz"
)

// config holds configuration options for a Gate.
type config struct {
	debounce  time.Duration
	clock     clockz.Clock
	action    func()
	lifecycle LifecycleSource
}

// Option configures a Gate.
type Option func(*config)

// WithDebounce sets the minimum elapsed time between two accepted taps.
// Raw events arriving sooner are discarded. Defaults to DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		c.debounce = d
	}
}

// WithClock sets a custom clock for debounce timing.
// Use this with clockz.FakeClock for deterministic debounce testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithAction sets the initial action invoked on each accepted tap.
// Equivalent to calling SetAction before any session exists.
func WithAction(fn func()) Option {
	return func(c *config) {
		c.action = fn
	}
}

// WithLifecycle subscribes the gate to background/foreground transitions at
// construction. The subscription is released by Close.
func WithLifecycle(src LifecycleSource) Option {
	return func(c *config) {
		c.lifecycle = src
	}
}
