// Package hotkey provides a tapgate.Listener backed by a global hotkey,
// for desktop hosts that repurpose a key combination the way mobile hosts
// repurpose volume buttons.
//
// The OS-level registration is acquired when the gate's factory runs and
// freed on Release, so a gate that is enabled but inactive still owns the
// key; Start and Stop only gate event forwarding. Keyup and keydown map to
// the gate's up and down directions and share its debounce window.
package hotkey

import (
	"fmt"
	"sync"

	"github.com/zoobzio/tapgate"
	"golang.design/x/hotkey"
)

// Listener forwards global hotkey events to the handlers bound by a gate.
type Listener struct {
	hk *hotkey.Hotkey

	mu       sync.Mutex
	onUp     func()
	onDown   func()
	started  bool
	released bool
	done     chan struct{}
}

// Factory returns a tapgate.ListenerFactory registering the given key
// combination. Registration failures (the combination is taken, or no
// display is available) surface through the factory error, degrading the
// gate to disabled.
//
// On platforms that require it, the host must run the factory on the main
// thread (see golang.design/x/mainthread).
func Factory(mods []hotkey.Modifier, key hotkey.Key) tapgate.ListenerFactory {
	return func(onUp, onDown func()) (tapgate.Listener, error) {
		hk := hotkey.New(mods, key)
		if err := hk.Register(); err != nil {
			return nil, fmt.Errorf("register hotkey: %w", err)
		}

		l := &Listener{
			hk:     hk,
			onUp:   onUp,
			onDown: onDown,
			done:   make(chan struct{}),
		}
		go l.forward()
		return l, nil
	}
}

// Start begins forwarding key events. The resume flag is ignored; a hotkey
// shadows no system control.
func (l *Listener) Start(_ bool) {
	l.mu.Lock()
	l.started = true
	l.mu.Unlock()
}

// Stop pauses forwarding. The registration is kept, so the combination
// stays owned while the gate is armed.
func (l *Listener) Stop() {
	l.mu.Lock()
	l.started = false
	l.mu.Unlock()
}

// Bind replaces both event handlers.
func (l *Listener) Bind(onUp, onDown func()) {
	l.mu.Lock()
	l.onUp = onUp
	l.onDown = onDown
	l.mu.Unlock()
}

// Release stops forwarding and frees the OS-level registration. Idempotent.
func (l *Listener) Release() {
	l.mu.Lock()
	if l.released {
		l.mu.Unlock()
		return
	}
	l.released = true
	l.started = false
	l.mu.Unlock()

	close(l.done)
	if l.hk != nil {
		l.hk.Unregister()
	}
}

// forward drains the hotkey event channels until Release. Events are
// always consumed so the library never blocks; they reach the handlers
// only while started.
func (l *Listener) forward() {
	for {
		select {
		case <-l.done:
			return
		case <-l.hk.Keyup():
			l.dispatch(tapgate.DirectionUp)
		case <-l.hk.Keydown():
			l.dispatch(tapgate.DirectionDown)
		}
	}
}

func (l *Listener) dispatch(d tapgate.Direction) {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	var fn func()
	if d == tapgate.DirectionUp {
		fn = l.onUp
	} else {
		fn = l.onDown
	}
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}
