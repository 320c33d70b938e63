package app

import "fmt"

// DefaultEnvPrefix is the environment variable prefix used when none is given.
const DefaultEnvPrefix = "OPTMAP_"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	EnvPrefix    string // empty disables the environment overlay
	LogFormat    string
	LogLevel     string
	OutputFormat string
}

// NewConfig validates cfg and fills in defaults for empty fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.OutputFormat != "text" && cfg.OutputFormat != "json" {
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.OutputFormat)
	}

	return &cfg, nil
}
