package tapgate

// LifecycleSource delivers process background/foreground transitions to a
// gate. Each real transition is delivered exactly once, background before
// any matching foreground.
//
// The gate subscribes at construction (via WithLifecycle) and releases the
// subscription at Close. Sources are platform glue owned by the host; this
// package deliberately ships no OS-specific implementation since suspension
// semantics differ per platform.
type LifecycleSource interface {
	// Subscribe registers the two transition callbacks and returns a
	// function that releases the subscription. Both callbacks must be
	// non-nil. The returned func must be idempotent.
	Subscribe(onBackground, onForeground func()) (unsubscribe func())
}
