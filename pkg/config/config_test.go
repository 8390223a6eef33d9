package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Poll.Telemetry.Duration != 4*time.Second {
		t.Errorf("expected 4s telemetry interval, got %s", cfg.Poll.Telemetry)
	}
	if cfg.Server.RecentLimit != 50 {
		t.Errorf("expected recent_limit 50, got %d", cfg.Server.RecentLimit)
	}
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	input := `
[server]
url = "http://sensor-hub:9000"
recent_limit = 120

[poll]
telemetry_interval = "2s"
status_interval = "8s"
`
	cfg, err := LoadFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Server.URL != "http://sensor-hub:9000" {
		t.Errorf("unexpected server URL %q", cfg.Server.URL)
	}
	if cfg.Server.RecentLimit != 120 {
		t.Errorf("unexpected recent_limit %d", cfg.Server.RecentLimit)
	}
	if cfg.Poll.Telemetry.Duration != 2*time.Second {
		t.Errorf("unexpected telemetry interval %s", cfg.Poll.Telemetry)
	}
	// Untouched field keeps its default.
	if cfg.Poll.Health.Duration != 10*time.Second {
		t.Errorf("expected default health interval, got %s", cfg.Poll.Health)
	}
}

func TestInvalidDurationIsRejected(t *testing.T) {
	input := "[poll]\ntelemetry_interval = \"soon\"\n"
	if _, err := LoadFromReader(strings.NewReader(input)); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestValidateRejectsSubSecondInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Poll.Status = Duration{500 * time.Millisecond}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for sub-second poll interval")
	}
}

func TestValidateRequiresServerURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.URL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty server URL")
	}
}

func TestEnvOverrideWins(t *testing.T) {
	t.Setenv("VITALPULSE_SERVER", "http://override:1234")
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Server.URL != "http://override:1234" {
		t.Errorf("expected env override, got %q", cfg.Server.URL)
	}
}
