package tapgate

import (
	"testing"
	"time"
)

// waitFor polls a condition, failing the test if it never holds.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestChannelListener_ForwardsWhileStarted(t *testing.T) {
	ch := make(chan Direction, 4)
	l := NewChannelListener(ch)
	defer l.Release()

	ups := make(chan struct{}, 4)
	downs := make(chan struct{}, 4)
	l.Bind(
		func() { ups <- struct{}{} },
		func() { downs <- struct{}{} },
	)
	l.Start(false)

	ch <- DirectionUp
	ch <- DirectionDown

	waitFor(t, func() bool { return len(ups) == 1 }, "up event not forwarded")
	waitFor(t, func() bool { return len(downs) == 1 }, "down event not forwarded")
}

func TestChannelListener_DropsWhileStopped(t *testing.T) {
	ch := make(chan Direction, 4)
	l := NewChannelListener(ch)
	defer l.Release()

	got := make(chan Direction, 4)
	l.Bind(
		func() { got <- DirectionUp },
		func() { got <- DirectionDown },
	)

	// Not started: the event is drained and dropped.
	ch <- DirectionUp
	waitFor(t, func() bool { return len(ch) == 0 }, "event not drained")
	time.Sleep(20 * time.Millisecond)
	if len(got) != 0 {
		t.Fatal("expected no forwarding before start")
	}

	l.Start(false)
	ch <- DirectionDown
	waitFor(t, func() bool { return len(got) == 1 }, "event not forwarded after start")

	if d := <-got; d != DirectionDown {
		t.Errorf("expected down event, got %s", d)
	}

	l.Stop()
	ch <- DirectionUp
	waitFor(t, func() bool { return len(ch) == 0 }, "event not drained after stop")
	if len(got) != 0 {
		t.Error("expected no forwarding after stop")
	}
}

func TestChannelListener_BindSwapsHandlers(t *testing.T) {
	ch := make(chan Direction, 1)
	l := NewChannelListener(ch)
	defer l.Release()

	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)
	l.Bind(func() { first <- struct{}{} }, func() {})
	l.Start(false)

	l.Bind(func() { second <- struct{}{} }, func() {})
	ch <- DirectionUp

	waitFor(t, func() bool { return len(second) == 1 }, "rebound handler not invoked")
	if len(first) != 0 {
		t.Error("stale handler invoked after rebind")
	}
}

func TestChannelListener_ReleaseIdempotent(t *testing.T) {
	ch := make(chan Direction)
	l := NewChannelListener(ch)

	l.Release()
	l.Release() // must not panic on a second close
}

func TestChannelListenerFactory(t *testing.T) {
	ch := make(chan Direction, 1)
	factory := NewChannelListenerFactory(ch)

	got := make(chan struct{}, 1)
	l, err := factory(func() { got <- struct{}{} }, func() {})
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	defer l.Release()

	l.Start(true)
	ch <- DirectionUp
	waitFor(t, func() bool { return len(got) == 1 }, "factory-bound handler not invoked")
}

func TestChannelListener_WithGate(t *testing.T) {
	ch := make(chan Direction, 4)

	taps := make(chan struct{}, 4)
	g := New(NewChannelListenerFactory(ch),
		WithAction(func() { taps <- struct{}{} }),
		WithDebounce(time.Millisecond),
	)
	defer g.Close()

	g.SetEnabled(true)
	g.SetActive(true)

	ch <- DirectionUp
	waitFor(t, func() bool { return len(taps) == 1 }, "tap not delivered through gate")
}
