package tapgate

import "github.com/zoobzio/capitan"

// Gate intent signals.
var (
	// GateEnabled is emitted when the feature transitions to enabled.
	GateEnabled = capitan.NewSignal(
		"tapgate.gate.enabled",
		"Feature enabled, session acquired",
	)

	// GateDisabled is emitted when the feature transitions to disabled,
	// including forced degradation after a failure.
	GateDisabled = capitan.NewSignal(
		"tapgate.gate.disabled",
		"Feature disabled, session released",
	)

	// GateFault is emitted on an internal-consistency fault before the
	// gate degrades to disabled.
	GateFault = capitan.NewSignal(
		"tapgate.gate.fault",
		"Internal consistency fault, degrading to disabled",
	)
)

// Session lifecycle signals.
var (
	// SessionCreated is emitted when a listening session is acquired.
	SessionCreated = capitan.NewSignal(
		"tapgate.session.created",
		"Hardware listening session created",
	)

	// SessionReleased is emitted when a listening session is released.
	SessionReleased = capitan.NewSignal(
		"tapgate.session.released",
		"Hardware listening session released",
	)

	// SessionStale is emitted when a session is unexpectedly still held
	// at a foreground transition, a symptom of the external listener's
	// duplicate-instance defect.
	SessionStale = capitan.NewSignal(
		"tapgate.session.stale",
		"Stale session found at foreground transition",
	)

	// SetupFailed is emitted when the listener factory fails and the
	// gate degrades to disabled.
	SetupFailed = capitan.NewSignal(
		"tapgate.session.setup.failed",
		"Listener setup failed, gate disabled",
	)

	// ListeningStarted is emitted when the session begins listening.
	ListeningStarted = capitan.NewSignal(
		"tapgate.listening.started",
		"Session started listening",
	)

	// ListeningStopped is emitted when the session stops listening
	// without being released.
	ListeningStopped = capitan.NewSignal(
		"tapgate.listening.stopped",
		"Session stopped listening",
	)
)

// Tap delivery signals.
var (
	// TapAccepted is emitted when a raw event passes the debounce window
	// and the action is invoked.
	TapAccepted = capitan.NewSignal(
		"tapgate.tap.accepted",
		"Debounced tap delivered to action",
	)

	// TapSuppressed is emitted when a raw event arrives within the
	// debounce window of the last accepted tap and is discarded.
	TapSuppressed = capitan.NewSignal(
		"tapgate.tap.suppressed",
		"Rapid-repeat tap suppressed",
	)
)

// Process lifecycle signals.
var (
	// EnteredBackground is emitted when the background transition tears
	// down the session.
	EnteredBackground = capitan.NewSignal(
		"tapgate.lifecycle.background",
		"Background transition, session torn down",
	)

	// EnteredForeground is emitted when the foreground transition
	// reconciles session state.
	EnteredForeground = capitan.NewSignal(
		"tapgate.lifecycle.foreground",
		"Foreground transition, session reconciled",
	)
)

// Settings signals.
var (
	// SettingsApplied is emitted when a persisted settings payload is
	// decoded, validated and applied.
	SettingsApplied = capitan.NewSignal(
		"tapgate.settings.applied",
		"Settings applied",
	)

	// SettingsRejected is emitted when a settings payload fails to
	// decode, validate or apply. The previous settings remain in effect.
	SettingsRejected = capitan.NewSignal(
		"tapgate.settings.rejected",
		"Settings rejected",
	)
)
