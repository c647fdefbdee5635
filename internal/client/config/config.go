package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the folio client.
//
// Units: RequestTimeout is a time.Duration; RequestsPerSecond <= 0 disables
// throttling.
type Config struct {
	APIBaseURL        string        `env:"FOLIO_API_URL"`
	RequestTimeout    time.Duration `env:"FOLIO_REQUEST_TIMEOUT"`
	StoragePath       string        `env:"FOLIO_STORAGE_PATH"`
	RequestsPerSecond float64       `env:"FOLIO_RPS"`
	RequestBurst      int           `env:"FOLIO_RPS_BURST"`
	LogFormat         string        `env:"FOLIO_LOG_FORMAT"`
	LogLevel          string        `env:"FOLIO_LOG_LEVEL"`
	Environment       string        `env:"FOLIO_ENV"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost/api"
	c.RequestTimeout = 30 * time.Second
	c.StoragePath = "folio.db"
	c.RequestsPerSecond = 10
	c.RequestBurst = 5
	c.LogFormat = "zerolog"
	c.LogLevel = "info"
	c.Environment = "development"
}

// IsDevelopment reports whether human-oriented log output is wanted.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Origin returns scheme://host of the API base URL. Durable storage is
// scoped by it.
func (c *Config) Origin() (string, error) {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid api base url %q: scheme and host required", c.APIBaseURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
