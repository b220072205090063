package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPaths      []string // hcl files or directories
	InventoryPaths []string // yaml files, merged in order

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.PlanPaths) == 0 {
		return nil, errors.New("PlanPaths is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
