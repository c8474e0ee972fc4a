package desktop

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the process environment the desktop shell reads.
type Env struct {
	// Dev enables debug logging and the inspector.
	Dev bool `env:"WAILS_DEV"`
	// LogFile sends logs to a file instead of stdout.
	LogFile string `env:"INVOICEDESK_LOG_FILE"`
	// ConfigPath overrides ~/.invoicedesk/config.toml.
	ConfigPath string `env:"INVOICEDESK_CONFIG"`
}

// LoadEnv parses Env from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
