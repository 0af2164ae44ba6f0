package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/creational/internal/platform/otel"
)

// TestSetupShutdownSucceeds verifies every setup mode returns a working
// shutdown.
func TestSetupShutdownSucceeds(t *testing.T) {
	tcs := []struct {
		name     string
		endpoint string
		enabled  string
	}{
		{name: "no endpoint", endpoint: "", enabled: ""},
		{name: "explicitly disabled", endpoint: "http://localhost:4318", enabled: "false"},
		{name: "disabled ignores case", endpoint: "http://localhost:4318", enabled: "FALSE"},
		// Non-routable address so no export reaches the network.
		{name: "exporter configured", endpoint: "http://192.0.2.1:4318", enabled: ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CREATIONAL_OTEL_ENDPOINT", tc.endpoint)
			t.Setenv("CREATIONAL_OTEL_ENABLED", tc.enabled)

			shutdown, err := otel.Setup(context.Background(), "guifactory")
			if err != nil {
				t.Fatalf("setup: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown: %v", err)
			}
		})
	}
}

// TestSetupNoopShutdownIgnoresCancelledContext verifies the disabled provider
// shuts down unconditionally.
func TestSetupNoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("CREATIONAL_OTEL_ENDPOINT", "")
	t.Setenv("CREATIONAL_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "gameobjects")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
