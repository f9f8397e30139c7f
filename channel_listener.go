package tapgate

import "sync"

// ChannelListener adapts an existing Direction channel into a Listener.
// Useful for tests and custom sources that already produce button events.
//
// Events are forwarded to the bound handlers only while the listener is
// started; while stopped they are drained and dropped so producers never
// block on an inactive session.
type ChannelListener struct {
	ch <-chan Direction

	mu       sync.Mutex
	onUp     func()
	onDown   func()
	started  bool
	released bool
	done     chan struct{}
}

// NewChannelListener creates a ChannelListener over the given channel.
// The forwarding goroutine runs until Release is called or the channel
// closes.
func NewChannelListener(ch <-chan Direction) *ChannelListener {
	l := &ChannelListener{
		ch:   ch,
		done: make(chan struct{}),
	}
	go l.forward()
	return l
}

// NewChannelListenerFactory returns a ListenerFactory producing a
// ChannelListener over the given channel. Each factory call creates a fresh
// listener, matching the gate's create-per-enable lifecycle.
func NewChannelListenerFactory(ch <-chan Direction) ListenerFactory {
	return func(onUp, onDown func()) (Listener, error) {
		l := NewChannelListener(ch)
		l.Bind(onUp, onDown)
		return l, nil
	}
}

// Start begins forwarding events to the bound handlers. The flag is
// ignored; a channel source shadows no system control.
func (l *ChannelListener) Start(_ bool) {
	l.mu.Lock()
	l.started = true
	l.mu.Unlock()
}

// Stop pauses forwarding without releasing the listener. Events arriving
// while stopped are dropped.
func (l *ChannelListener) Stop() {
	l.mu.Lock()
	l.started = false
	l.mu.Unlock()
}

// Bind replaces both event handlers.
func (l *ChannelListener) Bind(onUp, onDown func()) {
	l.mu.Lock()
	l.onUp = onUp
	l.onDown = onDown
	l.mu.Unlock()
}

// Release stops forwarding permanently. Idempotent.
func (l *ChannelListener) Release() {
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

func (l *ChannelListener) forward() {
	for {
		select {
		case <-l.done:
			return
		case d, ok := <-l.ch:
			if !ok {
				return
			}
			l.dispatch(d)
		}
	}
}

func (l *ChannelListener) dispatch(d Direction) {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	var fn func()
	if d == DirectionUp {
		fn = l.onUp
	} else {
		fn = l.onDown
	}
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}
