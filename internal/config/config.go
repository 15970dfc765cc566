// Package config assembles runtime settings for the SafariHub CLI from
// layered sources: built-in defaults, then a JSON config file, then
// environment variables (including a .env file), then command-line
// flags. Later sources win.
package config

import "time"

// Config holds everything the client needs to run.
type Config struct {
	// BaseURL is the backend API root, e.g. "http://localhost:8000/api".
	BaseURL string

	// RequestTimeout bounds every single API request.
	RequestTimeout time.Duration

	// CredentialsPath is the SQLite file holding the persisted session.
	CredentialsPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.CredentialsPath = "safarihub.db"
	c.LogLevel = "info"
}

// Load builds the effective configuration by applying every layer in
// precedence order.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
