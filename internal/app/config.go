package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FactoryPath string // hcl file or directory

	LogFormat string
	LogLevel  string
	// PlanOnly stops after demand propagation; nothing is built.
	PlanOnly bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.FactoryPath == "" {
		return nil, errors.New("FactoryPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
