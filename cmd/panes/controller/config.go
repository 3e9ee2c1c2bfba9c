// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slukits/panes"
	"github.com/slukits/panes/cmd/panes/model"
	"github.com/slukits/panes/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overwriting configuration
// keys, e.g. PANES_SURFACE_WIDTH overwrites surface.width.
const EnvPrefix = "PANES"

// ErrConfig is wrapped by errors about an invalid configuration.
var ErrConfig = errors.New("config: invalid")

// Config is the configuration of the panes command.
type Config struct {
	Surface SurfaceConfig `mapstructure:"surface"`
	Log     LogConfig     `mapstructure:"log"`

	// Menu is the path of a toml menu definition; the embedded default
	// menu is used if empty.
	Menu string `mapstructure:"menu"`

	// Viewer is reported with each click.
	Viewer string `mapstructure:"viewer"`

	// Watch reloads the menu file whenever it is written.
	Watch bool `mapstructure:"watch"`
}

// SurfaceConfig sizes the terminal surface.
type SurfaceConfig struct {
	Width     int `mapstructure:"width"`
	Height    int `mapstructure:"height"`
	CellWidth int `mapstructure:"cell_width"`
}

// LogConfig configures the log lines of the panes command.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// NewViper returns a viper instance reading yaml configurations with
// the panes command's defaults and environment bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("surface.width", 9)
	v.SetDefault("surface.height", 6)
	v.SetDefault("surface.cell_width", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("menu", "")
	v.SetDefault("viewer", "player")
	v.SetDefault("watch", false)
}

// LoadConfig reads given configuration file, if any, into given viper
// instance and returns the validated configuration.
func LoadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, file, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	s := c.Surface
	if s.Width <= 0 || s.Height <= 0 || s.CellWidth <= 0 {
		return fmt.Errorf("%w: surface: sizes must be positive: %dx%d/%d",
			ErrConfig, s.Width, s.Height, s.CellWidth)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.Watch && c.Menu == "" {
		return fmt.Errorf("%w: watch: %w", ErrConfig, ErrNoMenuFile)
	}
	return nil
}

// Dim returns the configured grid size of the surface.
func (c *Config) Dim() panes.Dim {
	return panes.MustDim(c.Surface.Width, c.Surface.Height)
}

// Logging returns the logging configuration.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level, _ = logging.ParseLevel(c.Log.Level)
	cfg.Format, _ = logging.ParseFormat(c.Log.Format)
	cfg.File = c.Log.File
	return cfg
}

// LoadMenu returns the configured menu or the default menu.
func (c *Config) LoadMenu() (*model.Menu, error) {
	if c.Menu == "" {
		return model.Default(), nil
	}
	return model.Load(c.Menu)
}
