// Package config defines process configuration and its loading order:
// defaults, then an optional YAML file, then environment variables.
package config

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Env names the runtime environment: "development" or "production".
	// Synthetic seeding happens outside production only.
	Env string `koanf:"env"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TemplatesDir is the directory holding HTML page templates.
	TemplatesDir string `koanf:"templates_dir"`

	// CSRFKey is the hex-encoded 32-byte CSRF secret. Empty means a random
	// per-start key, which is acceptable only outside production.
	CSRFKey string `koanf:"csrf_key"`

	// RateLimitPerSecond caps requests per second per client IP.
	RateLimitPerSecond int `koanf:"rate_limit_per_second"`

	// PerfRingSize bounds the in-memory request-timing ring buffer.
	PerfRingSize int `koanf:"perf_ring_size"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:               ":8080",
		Env:                "development",
		LogLevel:           "info",
		TemplatesDir:       "internal/adapters/http/templates",
		RateLimitPerSecond: 10,
		PerfRingSize:       10000,
	}
}
