package tapgate

import "testing"

func TestSignalNames(t *testing.T) {
	cases := []struct {
		signal interface{ Name() string }
		want   string
	}{
		{GateEnabled, "tapgate.gate.enabled"},
		{GateDisabled, "tapgate.gate.disabled"},
		{GateFault, "tapgate.gate.fault"},
		{SessionCreated, "tapgate.session.created"},
		{SessionReleased, "tapgate.session.released"},
		{SessionStale, "tapgate.session.stale"},
		{SetupFailed, "tapgate.session.setup.failed"},
		{ListeningStarted, "tapgate.listening.started"},
		{ListeningStopped, "tapgate.listening.stopped"},
		{TapAccepted, "tapgate.tap.accepted"},
		{TapSuppressed, "tapgate.tap.suppressed"},
		{EnteredBackground, "tapgate.lifecycle.background"},
		{EnteredForeground, "tapgate.lifecycle.foreground"},
		{SettingsApplied, "tapgate.settings.applied"},
		{SettingsRejected, "tapgate.settings.rejected"},
	}

	for _, tc := range cases {
		if got := tc.signal.Name(); got != tc.want {
			t.Errorf("expected name %q, got %q", tc.want, got)
		}
	}
}
