package tapgate

import (
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestWithDebounce(t *testing.T) {
	cfg := &config{debounce: DefaultDebounce}
	WithDebounce(50 * time.Millisecond)(cfg)
	if cfg.debounce != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %s", cfg.debounce)
	}
}

func TestWithClock(t *testing.T) {
	clock := clockz.NewFakeClock()
	cfg := &config{}
	WithClock(clock)(cfg)
	if cfg.clock != clock {
		t.Error("expected custom clock stored")
	}
}

func TestWithAction(t *testing.T) {
	var called bool
	cfg := &config{}
	WithAction(func() { called = true })(cfg)
	if cfg.action == nil {
		t.Fatal("expected action stored")
	}
	cfg.action()
	if !called {
		t.Error("expected stored action invoked")
	}
}

func TestWithLifecycle(t *testing.T) {
	src := &fakeLifecycle{}
	cfg := &config{}
	WithLifecycle(src)(cfg)
	if cfg.lifecycle != src {
		t.Error("expected lifecycle source stored")
	}
}

func TestNew_Defaults(t *testing.T) {
	f := &fakeFactory{}
	g := New(f.new)
	if g.debounce != DefaultDebounce {
		t.Errorf("expected default debounce %s, got %s", DefaultDebounce, g.debounce)
	}
	if g.clock != clockz.RealClock {
		t.Error("expected real clock by default")
	}
}
