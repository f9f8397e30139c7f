package tapgate

import "errors"

var (
	// ErrSetupFailed wraps listener factory failures. When returned, the
	// gate has already degraded to disabled; it is never left enabled
	// with no session beyond the instant of the failed attempt.
	ErrSetupFailed = errors.New("listener setup failed")

	// ErrNoSession reports an internal-consistency fault: active was set
	// while enabled but no session was held. This indicates a programming
	// error in the host integration; the gate degrades to disabled rather
	// than crashing the host.
	ErrNoSession = errors.New("no session held while enabled")
)
