package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FlowPath string // .hcl file or directory searched recursively

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.FlowPath == "" {
		return nil, errors.New("FlowPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
