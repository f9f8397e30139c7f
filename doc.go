/*
Package tapgate gates a hardware button event source behind two independent
intents, so a host application can repurpose physical buttons (volume keys,
a global hotkey, a GPIO pushbutton) as an alternate trigger for a user action
without permanently hijacking their normal behavior.

tapgate is designed to be embedded within applications, not run as a
standalone service. The host owns exactly one Gate per button source and
drives it through explicit setters; the Gate owns the listening session
exclusively and reconciles intent changes into listener create/start/stop/
release calls.

# Basic Usage

Create a gate around a listener factory and give it an action:

	gate := tapgate.New(hotkey.Factory(mods, key),
	    tapgate.WithAction(stopwatch.Toggle),
	    tapgate.WithDebounce(300*time.Millisecond),
	)

	gate.SetEnabled(true) // acquire the listening session
	gate.SetActive(true)  // start forwarding debounced taps

# Intents

The Gate holds two booleans with distinct meanings:

Enabled - whether the feature is permitted to exist at all. Transitioning to
true lazily creates the listening session; transitioning to false releases
it. Typically backed by a persisted user setting (see Settings).

Active - whether, given enabled, the gate should currently be listening.
Toggling active starts and stops the existing session without releasing it.
Setting active while disabled only records the intent for later.

Session existence tracks enabled alone:

	gate.SetActive(true)  // no session yet - intent recorded
	gate.SetEnabled(true) // session created and started, since active holds

# Debouncing

The underlying hardware listeners are known to occasionally fail to release
cleanly, producing rapid duplicate events from stale registrations. Every raw
up and down event feeds one shared debounce gate: events arriving within the
debounce window of the last accepted tap are discarded and reported through
the TapSuppressed signal. The window defaults to DefaultDebounce and both
directions invoke the same action.

# Lifecycle

Listening sessions must not be held while the host process is suspended.
Background() unconditionally releases any session; Foreground() recreates it
if enabled still holds and starts it if active does too. Hosts can wire these
automatically by passing a LifecycleSource:

	gate := tapgate.New(factory, tapgate.WithLifecycle(src))
	defer gate.Close() // releases the session and unsubscribes

# Failure Policy

Any failure degrades the gate to disabled, never to a crash or a half-held
session. If the factory fails, enabled and active are both forced false and
the error is returned (and retained via LastError). Setting active while
enabled without a session is an internal-consistency fault: it is surfaced
as ErrNoSession and the gate degrades to disabled.

A host process killed without the background signal firing can leave the
external listener's OS-level registration dangling across restarts. That is
outside this package's control; the debounce filter only mitigates the
resulting duplicate taps.

# Observability

All state transitions and suppressed taps are emitted as capitan signals
(see signals.go); hosts hook them for logging or metrics:

	capitan.Hook(tapgate.TapSuppressed, func(_ context.Context, e *capitan.Event) {
	    elapsed, _ := tapgate.KeyElapsed.From(e)
	    log.Printf("rapid repeat suppressed after %s", elapsed)
	})
*/
package tapgate
