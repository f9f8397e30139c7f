package tapgate

import "github.com/zoobzio/capitan"

// Field keys for Gate events.
var (
	// KeyState is the gate state after the transition.
	KeyState = capitan.NewStringKey("state")

	// KeyEnabled is the enabled intent, formatted as "true"/"false".
	KeyEnabled = capitan.NewStringKey("enabled")

	// KeyActive is the active intent, formatted as "true"/"false".
	KeyActive = capitan.NewStringKey("active")

	// KeyReason names the operation that drove a session change.
	KeyReason = capitan.NewStringKey("reason")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDirection is the physical button direction of a raw event.
	KeyDirection = capitan.NewStringKey("direction")

	// KeyElapsed is the time since the last accepted tap.
	KeyElapsed = capitan.NewDurationKey("elapsed")

	// KeyDebounce is the configured debounce window.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyPath is the settings file path being watched.
	KeyPath = capitan.NewStringKey("path")
)
