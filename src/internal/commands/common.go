package commands

import (
	"fmt"

	"github.com/maksimkurb/dns-blackhole/src/internal/config"
)

type Runner interface {
	Init(args []string, ctx *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	Version string
	Commit  string
	Date    string
}

// loadConfigOrDefault loads the config file, or the built-in defaults when no path is given.
func loadConfigOrDefault(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	return cfg, nil
}
