// Package gpio provides a tapgate.Listener backed by an edge-triggered
// pushbutton on a GPIO pin, for single-board hosts.
//
// Falling edges (button pressed, pulled to ground) map to the gate's down
// direction and rising edges to up. Contact bounce is not filtered here;
// the gate's debounce window covers it.
package gpio

import (
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/tapgate"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// edgeTimeout bounds each edge wait so the watch loop can observe Release.
const edgeTimeout = time.Second

// Pin is the subset of periph.io's gpio.PinIO the listener needs.
// Narrowing the surface lets tests inject a fake pin.
type Pin interface {
	In(pull gpio.Pull, edge gpio.Edge) error
	WaitForEdge(timeout time.Duration) bool
	Read() gpio.Level
}

// Listener watches one pin and forwards edges to the handlers bound by a
// gate.
type Listener struct {
	pin Pin

	mu       sync.Mutex
	onUp     func()
	onDown   func()
	started  bool
	released bool
	done     chan struct{}
}

// Factory returns a tapgate.ListenerFactory for the named pin (BCM naming,
// e.g. "GPIO20"). Host and pin initialization failures surface through the
// factory error, degrading the gate to disabled.
func Factory(name string) tapgate.ListenerFactory {
	return func(onUp, onDown func()) (tapgate.Listener, error) {
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("init periph host: %w", err)
		}
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("no GPIO pin %q", name)
		}
		return newListener(pin, onUp, onDown)
	}
}

// newListener configures the pin for pulled-up edge detection and starts
// the watch loop.
func newListener(pin Pin, onUp, onDown func()) (*Listener, error) {
	if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("configure pin: %w", err)
	}

	l := &Listener{
		pin:    pin,
		onUp:   onUp,
		onDown: onDown,
		done:   make(chan struct{}),
	}
	go l.watch()
	return l, nil
}

// Start begins forwarding edges. The resume flag is ignored; a pin shadows
// no system control.
func (l *Listener) Start(_ bool) {
	l.mu.Lock()
	l.started = true
	l.mu.Unlock()
}

// Stop pauses forwarding without releasing the pin.
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

// Release stops the watch loop. Idempotent.
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
}

// watch waits for edges and forwards level changes. A level that did not
// change since the last edge is noise and is skipped.
func (l *Listener) watch() {
	last := l.pin.Read()
	for {
		select {
		case <-l.done:
			return
		default:
		}

		if !l.pin.WaitForEdge(edgeTimeout) {
			continue
		}

		level := l.pin.Read()
		if level == last {
			continue
		}
		last = level

		if level == gpio.Low {
			l.dispatch(tapgate.DirectionDown)
		} else {
			l.dispatch(tapgate.DirectionUp)
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
