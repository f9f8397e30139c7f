package tapgate

// Direction identifies which physical button edge produced a raw event.
// The gate does not distinguish directions beyond a log field: both feed
// the same debounce window and the same action.
type Direction int

const (
	// DirectionUp is the volume-up (or rising-edge) button event.
	DirectionUp Direction = iota

	// DirectionDown is the volume-down (or falling-edge) button event.
	DirectionDown
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Listener is an opaque handle to a hardware button listener. Its existence
// implies registered OS-level callbacks; a released Listener holds no
// resources and delivers no events.
//
// Implementations deliver raw events by invoking the currently bound
// handlers. Start, Stop, Bind and Release are synchronous and must be safe
// to call from the goroutine that owns the Gate.
type Listener interface {
	// Start begins delivering raw button events to the bound handlers.
	// If resumeAtCurrentLevel is true, listeners that shadow a system
	// control (such as the volume level) restore its current value rather
	// than resetting it. Backends without such a control ignore the flag.
	Start(resumeAtCurrentLevel bool)

	// Stop pauses event delivery without releasing the underlying
	// registration. A stopped listener can be started again.
	Stop()

	// Bind replaces both event handlers. Takes effect immediately,
	// including on a started listener.
	Bind(onUp, onDown func())

	// Release stops the listener and frees its OS-level registration.
	// The listener cannot be reused afterward.
	Release()
}

// ListenerFactory creates a listener with its initial handlers bound.
// It returns an error when the underlying hardware capability cannot be
// acquired; the gate responds by degrading to disabled.
type ListenerFactory func(onUp, onDown func()) (Listener, error)
