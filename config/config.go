// Package config holds process configuration: the two required
// positional arguments (bind host and port) plus tunables with
// defaults, overridable from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Host string
	Port uint16

	PollInterval   time.Duration
	ReadTimeout    time.Duration
	ReadBufferSize int

	// ReadinessPolling switches the idle accept wait from a fixed
	// sleep to an epoll/kqueue wait on the listener.
	ReadinessPolling bool
}

// FromArgs builds a Config from the positional arguments: bind host
// (an IP literal) and bind port (16-bit unsigned). Missing arguments
// are not validated and panic with an index error. Tunables are zero
// (meaning the core defaults apply) unless overridden via
// FLUX_POLL_INTERVAL, FLUX_READ_TIMEOUT (durations), FLUX_READ_BUFFER
// (bytes) and FLUX_READINESS_POLLING.
func FromArgs(args []string) (*Config, error) {
	host := args[0]
	port, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("bind port %q: %w", args[1], err)
	}

	cfg := &Config{
		Host: host,
		Port: uint16(port),
	}

	if v := os.Getenv("FLUX_POLL_INTERVAL"); v != "" {
		if cfg.PollInterval, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("FLUX_POLL_INTERVAL: %w", err)
		}
	}
	if v := os.Getenv("FLUX_READ_TIMEOUT"); v != "" {
		if cfg.ReadTimeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("FLUX_READ_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("FLUX_READ_BUFFER"); v != "" {
		if cfg.ReadBufferSize, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("FLUX_READ_BUFFER: %w", err)
		}
	}
	if v := os.Getenv("FLUX_READINESS_POLLING"); v != "" {
		cfg.ReadinessPolling = v == "true" || v == "yes" || v == "1"
	}

	return cfg, nil
}
