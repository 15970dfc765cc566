package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jkimani/safarihub/internal/flagx"
	"github.com/jkimani/safarihub/internal/timex"
)

// jsonConfig is the file-format DTO. Durations accept either "15s"
// style strings or integer nanoseconds via timex.Duration. Absent
// fields leave the current value alone.
type jsonConfig struct {
	BaseURL         string          `json:"base_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	CredentialsPath string          `json:"credentials_path"`
	LogLevel        string          `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag means no file and no overlay.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialsPath != "" {
		cfg.CredentialsPath = jc.CredentialsPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
