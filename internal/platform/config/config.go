// Package config loads server settings from CUBE_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"cubefour/internal/cube"
)

type Config struct {
	Addr        string `env:"CUBE_ADDR" envDefault:":2888"`
	WebDir      string `env:"CUBE_WEB_DIR" envDefault:"./web"`
	BoardSize   int    `env:"CUBE_BOARD_SIZE" envDefault:"5"`
	LogLevel    string `env:"CUBE_LOG_LEVEL" envDefault:"info"`
	OpenBrowser bool   `env:"CUBE_OPEN_BROWSER" envDefault:"true"`
	MaxGames    int    `env:"CUBE_MAX_GAMES" envDefault:"1024"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardSize < 1 || c.BoardSize > cube.MaxSize {
		return fmt.Errorf("board size %d: must be in [1,%d]", c.BoardSize, cube.MaxSize)
	}
	if c.MaxGames < 1 {
		return errors.New("max games must be positive")
	}
	if c.Addr == "" {
		return errors.New("listen address is empty")
	}
	return nil
}
