package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `environment: test
server:
  port: 8081
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 5s
log:
  level: info
  format: console
  output: stdout
metrics:
  enabled: true
  path: /metrics
monitor:
  squad_size: 25
  refresh_interval: 30s
  seed: 42
  policy: matchday
  fixture_congestion: true
  days_to_match: 2
cache:
  backend: memory
  ttl: 60s
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Monitor.SquadSize != 25 {
		t.Fatalf("unexpected squad size %d", cfg.Monitor.SquadSize)
	}
	if cfg.Monitor.RefreshInterval != 30*time.Second {
		t.Fatalf("unexpected interval %s", cfg.Monitor.RefreshInterval)
	}
	if cfg.Monitor.Seed != 42 {
		t.Fatalf("unexpected seed %d", cfg.Monitor.Seed)
	}
}

func TestValidateRejectsBadPolicy(t *testing.T) {
	cfg, _ := Load(writeConfig(t, validYAML))
	cfg.Monitor.Policy = "aggressive"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected policy validation error")
	}
}

func TestValidateRejectsBadInterval(t *testing.T) {
	cfg, _ := Load(writeConfig(t, validYAML))
	cfg.Monitor.RefreshInterval = 5 * time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected interval validation error")
	}
	cfg.Monitor.RefreshInterval = 10 * time.Minute
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected interval validation error")
	}
}

func TestValidateRejectsBadSquadSize(t *testing.T) {
	cfg, _ := Load(writeConfig(t, validYAML))
	cfg.Monitor.SquadSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected squad size validation error")
	}
}

func TestValidateRedisRequiresAddr(t *testing.T) {
	cfg, _ := Load(writeConfig(t, validYAML))
	cfg.Cache.Backend = "redis"
	cfg.Cache.Redis.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected redis addr validation error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("SQUAD_SIZE", "10")
	t.Setenv("POLICY", "basic")
	t.Setenv("REFRESH_INTERVAL", "45s")
	t.Setenv("SEED", "123")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Monitor.SquadSize != 10 {
		t.Fatalf("env squad size not applied: %d", cfg.Monitor.SquadSize)
	}
	if cfg.Monitor.Policy != "basic" {
		t.Fatalf("env policy not applied: %s", cfg.Monitor.Policy)
	}
	if cfg.Monitor.RefreshInterval != 45*time.Second {
		t.Fatalf("env interval not applied: %s", cfg.Monitor.RefreshInterval)
	}
	if cfg.Monitor.Seed != 123 {
		t.Fatalf("env seed not applied: %d", cfg.Monitor.Seed)
	}
}

func TestLoadWithEnvRevalidates(t *testing.T) {
	t.Setenv("POLICY", "nonsense")
	if _, err := LoadWithEnv(writeConfig(t, validYAML)); err == nil {
		t.Fatalf("expected validation error on env override")
	}
}
