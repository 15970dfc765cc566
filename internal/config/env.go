package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first and never overrides variables already set in the
// process environment.
const (
	envBaseURL         = "SAFARIHUB_API_URL"
	envRequestTimeout  = "SAFARIHUB_REQUEST_TIMEOUT"
	envCredentialsPath = "SAFARIHUB_CREDENTIALS_PATH"
	envLogLevel        = "SAFARIHUB_LOG_LEVEL"
)

// parseEnv overlays cfg with environment variables. Unset or malformed
// values leave the current value alone.
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envCredentialsPath); v != "" {
		cfg.CredentialsPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
