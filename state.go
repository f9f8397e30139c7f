package tapgate

// State summarizes a Gate for diagnostics. It is derived from the two
// intents and session existence; only the setters and lifecycle signals
// move a gate between states.
type State int32

const (
	// StateDisabled indicates the feature is off entirely: no session is
	// held and no events can be delivered.
	StateDisabled State = iota

	// StateArmed indicates the feature is enabled but not listening. The
	// session is held (or pending recreation after a background
	// transition) and can be started without reacquiring hardware.
	StateArmed

	// StateListening indicates the session is started and debounced taps
	// are being forwarded to the action.
	StateListening
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateArmed:
		return "armed"
	case StateListening:
		return "listening"
	default:
		return "unknown"
	}
}
