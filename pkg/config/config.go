package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"SquadPulse/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Monitor struct {
		SquadSize       int           `yaml:"squad_size"`
		RefreshInterval time.Duration `yaml:"refresh_interval"`
		Seed            int64         `yaml:"seed"`
		Policy          string        `yaml:"policy"`
		Congestion      bool          `yaml:"fixture_congestion"`
		DaysToMatch     int           `yaml:"days_to_match"`
	} `yaml:"monitor"`
	Cache struct {
		Backend string        `yaml:"backend"`
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SQUADPULSE_PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("SQUAD_SIZE"); v != "" {
		c.Monitor.SquadSize = util.ParseIntDefault(v, c.Monitor.SquadSize)
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Monitor.RefreshInterval = d
		}
	}
	if v := os.Getenv("SEED"); v != "" {
		c.Monitor.Seed = util.ParseInt64Default(v, c.Monitor.Seed)
	}
	if v := os.Getenv("POLICY"); v != "" {
		c.Monitor.Policy = strings.ToLower(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Backend = "redis"
		c.Cache.Redis.Addr = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Monitor.SquadSize < 1 || c.Monitor.SquadSize > 50 {
		return fmt.Errorf("monitor.squad_size must be in [1,50], got %d", c.Monitor.SquadSize)
	}
	if c.Monitor.Policy != "basic" && c.Monitor.Policy != "matchday" {
		return fmt.Errorf("monitor.policy must be 'basic' or 'matchday', got '%s'", c.Monitor.Policy)
	}
	if c.Monitor.RefreshInterval < 10*time.Second || c.Monitor.RefreshInterval > 120*time.Second {
		return fmt.Errorf("monitor.refresh_interval must be in [10s,120s], got %s", c.Monitor.RefreshInterval)
	}
	if c.Monitor.DaysToMatch < 0 || c.Monitor.DaysToMatch > 6 {
		return fmt.Errorf("monitor.days_to_match must be in [0,6], got %d", c.Monitor.DaysToMatch)
	}
	if c.Cache.Backend != "" && c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for redis backend")
	}
	return nil
}
