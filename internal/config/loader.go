package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering sources, lowest precedence first:
//  1. defaults (New)
//  2. YAML file named by TRAINBOOK_CONFIG, when set
//  3. environment variables with the TRAINBOOK_ prefix
//
// Env keys map to koanf tags by lowercasing and stripping the prefix,
// so TRAINBOOK_RATE_LIMIT_PER_SECOND sets rate_limit_per_second.
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TRAINBOOK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("TRAINBOOK_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "trainbook_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load config env: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	if c.RateLimitPerSecond <= 0 {
		return fmt.Errorf("rate_limit_per_second must be positive; got %d", c.RateLimitPerSecond)
	}
	if c.PerfRingSize <= 0 {
		return fmt.Errorf("perf_ring_size must be positive; got %d", c.PerfRingSize)
	}
	return nil
}
