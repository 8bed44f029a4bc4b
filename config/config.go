// Package config loads the game configuration from a YAML file and flags.
package config

import (
	"os"
	"time"

	"classic-snake/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// ErrInvalid is the cause of every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the full application configuration
type Config struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	UnitSize      int           `yaml:"unit_size"`
	InitialLength int           `yaml:"initial_length"`
	Tick          time.Duration `yaml:"tick"`
	Seed          uint64        `yaml:"seed"`
	Frontend      string        `yaml:"frontend"`
	Sound         bool          `yaml:"sound"`
	ScoresFile    string        `yaml:"scores_file"`
	LogLevel      string        `yaml:"log_level"`
	LogFile       string        `yaml:"log_file"`
}

// Default is the classic 500x500 board with a 20 unit grid.
func Default() Config {
	return Config{
		Width:         types.DefaultWidth,
		Height:        types.DefaultHeight,
		UnitSize:      types.DefaultUnitSize,
		InitialLength: types.DefaultInitialLength,
		Tick:          types.DefaultTickInterval,
		Frontend:      FrontendWindow,
		Sound:         true,
		ScoresFile:    "data/scores.json",
		LogLevel:      "info",
	}
}

// Load overlays the YAML file at path onto the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.UnitSize <= 0 {
		return errors.Wrapf(ErrInvalid, "unit_size must be positive, got %d", c.UnitSize)
	}
	if c.Width <= 0 || c.Width%c.UnitSize != 0 {
		return errors.Wrapf(ErrInvalid, "width %d must be a positive multiple of unit_size %d", c.Width, c.UnitSize)
	}
	if c.Height <= 0 || c.Height%c.UnitSize != 0 {
		return errors.Wrapf(ErrInvalid, "height %d must be a positive multiple of unit_size %d", c.Height, c.UnitSize)
	}
	capacity := c.Settings().Grid.Capacity()
	if c.InitialLength < 1 || c.InitialLength > capacity {
		return errors.Wrapf(ErrInvalid, "initial_length %d must be within [1, %d]", c.InitialLength, capacity)
	}
	if c.Tick <= 0 {
		return errors.Wrapf(ErrInvalid, "tick must be positive, got %s", c.Tick)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return errors.Wrapf(ErrInvalid, "unknown frontend %q", c.Frontend)
	}
	if _, err := c.Level(); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level: %v", err)
	}
	return nil
}

// Level is the parsed log level.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// Settings builds the immutable panel configuration.
func (c Config) Settings() types.Settings {
	return types.Settings{
		Grid: types.Grid{
			Width:    c.Width,
			Height:   c.Height,
			UnitSize: c.UnitSize,
		},
		InitialLength: c.InitialLength,
		TickInterval:  c.Tick,
	}
}
