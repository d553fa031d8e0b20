package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envDefaults carries environment-variable fallbacks for CLI flags that
// were not set explicitly.
type envDefaults struct {
	LogLevel    string `env:"MONKEYSIM_LOG" envDefault:"error"`
	PresetsFile string `env:"MONKEYSIM_PRESETS"`
}

// parseEnv loads flag defaults from environment variables.
func parseEnv() (envDefaults, error) {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return defaults, fmt.Errorf("parse env: %w", err)
	}
	return defaults, nil
}
