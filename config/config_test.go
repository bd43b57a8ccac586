package config

import (
	"testing"
	"time"
)

// TestFromArgs tests the two positional arguments
func TestFromArgs(t *testing.T) {
	cfg, err := FromArgs([]string{"127.0.0.1", "8080"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got %s", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.PollInterval != 0 || cfg.ReadTimeout != 0 || cfg.ReadBufferSize != 0 {
		t.Error("tunables must stay zero without env overrides")
	}
}

// TestFromArgsBadPort tests port parse failures
func TestFromArgsBadPort(t *testing.T) {
	tests := []string{"", "nope", "-1", "65536", "8080x"}
	for _, port := range tests {
		if _, err := FromArgs([]string{"127.0.0.1", port}); err == nil {
			t.Errorf("port %q: expected error", port)
		}
	}
}

// TestFromArgsMissingArgsPanics tests the documented out-of-bounds
// failure on absent arguments
func TestFromArgsMissingArgsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected index panic on missing arguments")
		}
	}()
	FromArgs([]string{"127.0.0.1"})
}

// TestFromArgsEnvOverrides tests the environment tunables
func TestFromArgsEnvOverrides(t *testing.T) {
	t.Setenv("FLUX_POLL_INTERVAL", "250ms")
	t.Setenv("FLUX_READ_TIMEOUT", "1s")
	t.Setenv("FLUX_READ_BUFFER", "4096")
	t.Setenv("FLUX_READINESS_POLLING", "1")

	cfg, err := FromArgs([]string{"::1", "9000"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms poll interval, got %v", cfg.PollInterval)
	}
	if cfg.ReadTimeout != time.Second {
		t.Errorf("expected 1s read timeout, got %v", cfg.ReadTimeout)
	}
	if cfg.ReadBufferSize != 4096 {
		t.Errorf("expected 4096 buffer, got %d", cfg.ReadBufferSize)
	}
	if !cfg.ReadinessPolling {
		t.Error("expected readiness polling enabled")
	}
}

// TestFromArgsBadEnv tests that malformed overrides are rejected
func TestFromArgsBadEnv(t *testing.T) {
	t.Setenv("FLUX_READ_TIMEOUT", "fast")
	if _, err := FromArgs([]string{"127.0.0.1", "8080"}); err == nil {
		t.Error("expected error for malformed FLUX_READ_TIMEOUT")
	}
}
