// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the spinsquare YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggview/input"
	"github.com/gogpu/ggview/spinner"
)

// Config represents the spinsquare.yaml configuration.
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Spinner SpinnerConfig `yaml:"spinner"`
	Input   InputConfig   `yaml:"input"`
	Debug   DebugConfig   `yaml:"debug"`
	Log     LogConfig     `yaml:"log"`
}

// ViewConfig sizes and paces the headless view.
type ViewConfig struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Interval time.Duration `yaml:"interval"`
	Frames   uint64        `yaml:"frames,omitempty"`
}

// SpinnerConfig configures the drawable.
type SpinnerConfig struct {
	// Label is the text above the square. Nil keeps the default label;
	// an empty string draws none.
	Label    *string `yaml:"label,omitempty"`
	Font     string  `yaml:"font,omitempty"`
	FontSize float64 `yaml:"font_size,omitempty"`
	Step     float64 `yaml:"step,omitempty"`
}

// InputConfig configures input handling.
type InputConfig struct {
	QuitKey uint32 `yaml:"quit_key,omitempty"`
}

// DebugConfig configures the inspector.
type DebugConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Width:    800,
			Height:   600,
			Interval: time.Second / 60,
		},
		Spinner: SpinnerConfig{
			FontSize: spinner.DefaultFontSize,
			Step:     spinner.DefaultStep,
		},
		Input: InputConfig{
			QuitKey: input.HIDUsageEscape,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size %dx%d must be positive", c.View.Width, c.View.Height))
	}
	if c.View.Interval <= 0 {
		errs = append(errs, fmt.Errorf("view interval %v must be positive", c.View.Interval))
	}
	if c.Spinner.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("spinner font_size %v must be positive", c.Spinner.FontSize))
	}
	if c.Input.QuitKey == 0 {
		errs = append(errs, errors.New("input quit_key must be set"))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level. Names are case-insensitive.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
