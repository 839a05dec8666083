package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alnah/go-legalsite/internal/config"
	"github.com/alnah/go-legalsite/internal/hints"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // used when no --config is given
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}

// loadConfig returns the named config, or a copy of the environment default.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	if name != "" {
		cfg, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	if env.Config == nil {
		return config.DefaultConfig(), nil
	}
	cfg := *env.Config
	return &cfg, nil
}
