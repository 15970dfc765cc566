package config

import (
	"flag"
	"os"
	"time"

	"github.com/jkimani/safarihub/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   backend API base URL
//	-t int      request timeout in seconds
//	-d string   credentials database path
//	-v string   log level (debug, info, warn, error)
//
// Arguments are pre-filtered so flags owned by other components (such
// as -c/-config) pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-v"})

	fs := flag.NewFlagSet("safarihub", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend API base URL")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (seconds)")
	fs.StringVar(&cfg.CredentialsPath, "d", cfg.CredentialsPath, "credentials database path")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
