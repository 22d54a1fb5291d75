package app

import (
	"errors"
	"fmt"
)

// Modes select which ordering the app computes.
const (
	ModeSchedule = "schedule"
	ModeFlatten  = "flatten"
)

// Output formats for the computed order.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath    string // .hcl, .yaml or .yml file, or a directory of them
	Mode         string
	OutputFormat string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults for empty fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	if cfg.Mode == "" {
		cfg.Mode = ModeSchedule
	}
	switch cfg.Mode {
	case ModeSchedule, ModeFlatten:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be '%s' or '%s'", cfg.Mode, ModeSchedule, ModeFlatten)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputText
	}
	switch cfg.OutputFormat {
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be '%s' or '%s'", cfg.OutputFormat, OutputText, OutputJSON)
	}

	return &cfg, nil
}
