package tapgate

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default minimum interval between accepted taps.
// Rapid duplicates inside this window are a known symptom of the external
// listener failing to release cleanly; 300ms suppresses them without eating
// deliberate repeated presses.
const DefaultDebounce = 300 * time.Millisecond

// Gate coordinates a hardware button listening session behind two intents:
// enabled (may the feature exist) and active (should it currently listen).
// It owns the session exclusively; callers interact only through the
// enabled/active/action surface.
//
// All entry points are safe for concurrent use. The action callback runs on
// the goroutine that delivered the raw event, outside the gate's lock.
type Gate struct {
	factory  ListenerFactory
	clock    clockz.Clock
	debounce time.Duration

	mu          sync.Mutex
	enabled     bool
	active      bool
	session     Listener
	action      func()
	lastTap     time.Time
	tapped      bool
	unsubscribe func()

	lastError atomic.Pointer[error]
}

// New creates a Gate around a listener factory. No session is acquired
// until the first SetEnabled(true); the factory is invoked lazily on every
// transition that requires a session.
//
// If WithLifecycle is given, the gate subscribes to background/foreground
// transitions immediately; Close releases the subscription.
func New(factory ListenerFactory, opts ...Option) *Gate {
	cfg := &config{
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	g := &Gate{
		factory:  factory,
		clock:    cfg.clock,
		debounce: cfg.debounce,
		action:   cfg.action,
	}
	if cfg.lifecycle != nil {
		g.unsubscribe = cfg.lifecycle.Subscribe(g.Background, g.Foreground)
	}
	return g
}

// SetEnabled sets whether the feature is permitted to exist at all.
// Transitioning to true lazily acquires the listening session and, if
// active already holds, starts it. Transitioning to false stops and
// releases any session. Unchanged values are a no-op.
//
// If the factory fails, both intents are forced false and the returned
// error wraps ErrSetupFailed; the gate is never left enabled without a
// session.
func (g *Gate) SetEnabled(value bool) error {
	ctx := context.Background()

	g.mu.Lock()
	if g.enabled == value {
		g.mu.Unlock()
		return nil
	}

	if !value {
		g.enabled = false
		s := g.session
		g.session = nil
		active := g.active
		g.mu.Unlock()

		g.releaseSession(s, "disabled")
		capitan.Emit(ctx, GateDisabled,
			KeyReason.Field("disabled"),
			KeyActive.Field(strconv.FormatBool(active)),
		)
		return nil
	}
	g.mu.Unlock()

	s, err := g.factory(g.handler(DirectionUp), g.handler(DirectionDown))
	if err != nil {
		g.degrade(err)
		return fmt.Errorf("%w: %w", ErrSetupFailed, err)
	}

	g.mu.Lock()
	if g.enabled && g.session != nil {
		// Lost a race with a concurrent enable; the held session wins.
		g.mu.Unlock()
		s.Release()
		return nil
	}
	g.enabled = true
	g.session = s
	start := g.active
	g.mu.Unlock()

	capitan.Emit(ctx, SessionCreated, KeyReason.Field("enabled"))
	capitan.Emit(ctx, GateEnabled, KeyActive.Field(strconv.FormatBool(start)))
	if start {
		s.Start(true)
		capitan.Emit(ctx, ListeningStarted, KeyReason.Field("enabled"))
	}
	return nil
}

// SetActive sets whether, given enabled, the gate should currently be
// listening. While enabled it starts or stops the held session without
// releasing it; while disabled it only records the intent for a later
// SetEnabled(true).
//
// Finding no session while enabled is an internal-consistency fault: the
// gate degrades to disabled and returns ErrNoSession.
func (g *Gate) SetActive(value bool) error {
	ctx := context.Background()

	g.mu.Lock()
	if !g.enabled {
		g.active = value
		g.mu.Unlock()
		return nil
	}

	if g.session == nil {
		g.enabled = false
		g.active = value
		g.mu.Unlock()

		err := ErrNoSession
		g.setError(err)
		capitan.Emit(ctx, GateFault, KeyError.Field(err.Error()))
		capitan.Emit(ctx, GateDisabled, KeyReason.Field("fault"))
		return err
	}

	if g.active == value {
		g.mu.Unlock()
		return nil
	}
	g.active = value
	s := g.session
	g.mu.Unlock()

	if value {
		s.Start(true)
		capitan.Emit(ctx, ListeningStarted, KeyReason.Field("active"))
	} else {
		s.Stop()
		capitan.Emit(ctx, ListeningStopped, KeyReason.Field("inactive"))
	}
	return nil
}

// SetAction replaces the callback invoked on each accepted tap. If a
// session is currently held, both its up and down handlers are rebound
// immediately, so the action is always current regardless of when it is
// set relative to session creation.
func (g *Gate) SetAction(fn func()) {
	g.mu.Lock()
	g.action = fn
	s := g.session
	g.mu.Unlock()

	if s != nil {
		s.Bind(g.handler(DirectionUp), g.handler(DirectionDown))
	}
}

// Background handles the entered-background transition: any held session is
// unconditionally stopped and released, regardless of the intents.
// Listening sessions must not survive process suspension, or the external
// duplicate-registration defect compounds across suspend/resume cycles.
func (g *Gate) Background() {
	ctx := context.Background()

	g.mu.Lock()
	s := g.session
	g.session = nil
	enabled, active := g.enabled, g.active
	g.mu.Unlock()

	capitan.Emit(ctx, EnteredBackground,
		KeyEnabled.Field(strconv.FormatBool(enabled)),
		KeyActive.Field(strconv.FormatBool(active)),
	)
	g.releaseSession(s, "background")
}

// Foreground handles the entering-foreground transition: if enabled still
// holds the session is recreated, and started if active holds too.
//
// No session should exist at this point. Finding one indicates the external
// defect; it is reported via SessionStale and released before recreation.
// If recreation fails both intents are forced false and the error is
// retained via LastError.
func (g *Gate) Foreground() {
	ctx := context.Background()

	g.mu.Lock()
	stale := g.session
	g.session = nil
	enabled, active := g.enabled, g.active
	g.mu.Unlock()

	capitan.Emit(ctx, EnteredForeground,
		KeyEnabled.Field(strconv.FormatBool(enabled)),
		KeyActive.Field(strconv.FormatBool(active)),
	)

	if stale != nil {
		capitan.Emit(ctx, SessionStale)
		g.releaseSession(stale, "stale")
	}

	if !enabled {
		return
	}

	s, err := g.factory(g.handler(DirectionUp), g.handler(DirectionDown))
	if err != nil {
		g.degrade(err)
		return
	}

	g.mu.Lock()
	if !g.enabled {
		// Disabled while the factory ran; do not install.
		g.mu.Unlock()
		s.Release()
		return
	}
	g.session = s
	start := g.active
	g.mu.Unlock()

	capitan.Emit(ctx, SessionCreated, KeyReason.Field("foreground"))
	if start {
		s.Start(true)
		capitan.Emit(ctx, ListeningStarted, KeyReason.Field("foreground"))
	}
}

// TearDown stops and releases any held session. Idempotent; a no-op when
// no session exists. The intents are left untouched.
func (g *Gate) TearDown() {
	g.mu.Lock()
	s := g.session
	g.session = nil
	g.mu.Unlock()

	g.releaseSession(s, "teardown")
}

// Close tears down the session and releases the lifecycle subscription.
// Idempotent.
func (g *Gate) Close() {
	g.mu.Lock()
	unsub := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	g.TearDown()
}

// Enabled reports whether the feature is permitted to exist.
func (g *Gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

// Active reports whether the gate should currently be listening.
func (g *Gate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// SessionHeld reports whether a listening session currently exists.
func (g *Gate) SessionHeld() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session != nil
}

// State returns the current state of the gate.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case !g.enabled:
		return StateDisabled
	case g.active && g.session != nil:
		return StateListening
	default:
		return StateArmed
	}
}

// Status returns a human-readable summary of the intents for diagnostics.
func (g *Gate) Status() string {
	g.mu.Lock()
	enabled, active, held := g.enabled, g.active, g.session != nil
	g.mu.Unlock()

	state := StateDisabled
	switch {
	case enabled && active && held:
		state = StateListening
	case enabled:
		state = StateArmed
	}
	return fmt.Sprintf("tap gate %s (enabled=%t active=%t session=%t)",
		state, enabled, active, held)
}

// LastError returns the last failure retained by the gate, or nil.
func (g *Gate) LastError() error {
	ptr := g.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// handler returns the raw event callback bound into sessions for one
// button direction.
func (g *Gate) handler(d Direction) func() {
	return func() {
		g.deliver(d)
	}
}

// deliver feeds a raw event through the shared debounce window and invokes
// the current action if it is accepted. Both directions share one window
// and one action; directionality survives only as a log field.
func (g *Gate) deliver(d Direction) {
	ctx := context.Background()

	g.mu.Lock()
	now := g.clock.Now()
	elapsed := now.Sub(g.lastTap)
	if g.tapped && elapsed < g.debounce {
		g.mu.Unlock()
		capitan.Emit(ctx, TapSuppressed,
			KeyDirection.Field(d.String()),
			KeyElapsed.Field(elapsed),
			KeyDebounce.Field(g.debounce),
		)
		return
	}
	g.lastTap = now
	g.tapped = true
	fn := g.action
	g.mu.Unlock()

	capitan.Emit(ctx, TapAccepted, KeyDirection.Field(d.String()))
	if fn != nil {
		fn()
	}
}

// degrade forces both intents false after a setup failure and retains the
// error. The fail-safe end state is "feature disabled", never enabled with
// no session.
func (g *Gate) degrade(err error) {
	g.mu.Lock()
	g.enabled = false
	g.active = false
	g.mu.Unlock()

	g.setError(err)
	ctx := context.Background()
	capitan.Emit(ctx, SetupFailed, KeyError.Field(err.Error()))
	capitan.Emit(ctx, GateDisabled, KeyReason.Field("setup-failed"))
}

// releaseSession stops and releases a session taken out of the gate.
func (g *Gate) releaseSession(s Listener, reason string) {
	if s == nil {
		return
	}
	s.Stop()
	s.Release()
	capitan.Emit(context.Background(), SessionReleased, KeyReason.Field(reason))
}

// setError stores an error atomically.
func (g *Gate) setError(err error) {
	e := err
	g.lastError.Store(&e)
}
