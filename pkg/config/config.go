// Package config provides TOML-based configuration for vital-pulse.
package config

import (
	"fmt"
	"time"
)

// Config is the full configuration tree.
type Config struct {
	Server ServerConfig `toml:"server"`
	Poll   PollConfig   `toml:"poll"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig locates the VitalGuard backend.
type ServerConfig struct {
	// URL is the backend base URL, e.g. "http://localhost:8080".
	URL string `toml:"url"`

	// RecentLimit is the sample-window size requested from /api/recent.
	// The backend caps it at 500.
	RecentLimit int `toml:"recent_limit"`
}

// PollConfig sets the per-action poll intervals. These are configuration,
// not law; the defaults match the reference deployment.
type PollConfig struct {
	Telemetry Duration `toml:"telemetry_interval"`
	Status    Duration `toml:"status_interval"`
	Health    Duration `toml:"health_interval"`
}

// LogConfig controls the log file location.
type LogConfig struct {
	File string `toml:"file"`
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url must be set")
	}
	if c.Server.RecentLimit < 0 {
		return fmt.Errorf("server.recent_limit must not be negative")
	}
	for name, d := range map[string]time.Duration{
		"poll.telemetry_interval": c.Poll.Telemetry.Duration,
		"poll.status_interval":    c.Poll.Status.Duration,
		"poll.health_interval":    c.Poll.Health.Duration,
	} {
		if d < time.Second {
			return fmt.Errorf("%s must be at least 1s, got %s", name, d)
		}
	}
	return nil
}
