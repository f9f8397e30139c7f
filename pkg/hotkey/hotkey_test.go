package hotkey

import (
	"testing"

	"github.com/zoobzio/tapgate"
)

// newBareListener builds a listener without an OS registration, so the
// dispatch path can be exercised headless.
func newBareListener(onUp, onDown func()) *Listener {
	return &Listener{
		onUp:   onUp,
		onDown: onDown,
		done:   make(chan struct{}),
	}
}

func TestListener_DispatchGatedByStarted(t *testing.T) {
	var ups, downs int
	l := newBareListener(func() { ups++ }, func() { downs++ })

	l.dispatch(tapgate.DirectionUp)
	if ups != 0 {
		t.Error("expected no dispatch before start")
	}

	l.Start(true)
	l.dispatch(tapgate.DirectionUp)
	l.dispatch(tapgate.DirectionDown)
	if ups != 1 || downs != 1 {
		t.Errorf("expected 1 up and 1 down, got %d/%d", ups, downs)
	}

	l.Stop()
	l.dispatch(tapgate.DirectionDown)
	if downs != 1 {
		t.Error("expected no dispatch after stop")
	}
}

func TestListener_BindSwapsHandlers(t *testing.T) {
	var stale, fresh int
	l := newBareListener(func() { stale++ }, func() { stale++ })
	l.Start(false)

	l.Bind(func() { fresh++ }, func() { fresh++ })
	l.dispatch(tapgate.DirectionUp)
	l.dispatch(tapgate.DirectionDown)

	if stale != 0 {
		t.Errorf("stale handlers invoked %d times after rebind", stale)
	}
	if fresh != 2 {
		t.Errorf("expected 2 fresh invocations, got %d", fresh)
	}
}

func TestListener_ReleaseIdempotent(t *testing.T) {
	l := newBareListener(nil, nil)
	l.Start(false)

	l.Release()
	l.Release() // must not close done twice

	l.dispatch(tapgate.DirectionUp) // released listeners drop events
}
