// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for vellum,
// with defaults from struct tags, TOML and YAML config files,
// and live reloading of config files.
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/vellum/base/errors"
	"cogentcore.org/vellum/base/iox/tomlx"
	"cogentcore.org/vellum/base/iox/yamlx"
	"cogentcore.org/vellum/base/logx"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
)

// Config is the main config struct that contains all of the
// configuration options for vellum.
type Config struct {

	// Title is the window title.
	Title string `default:"VellumEngine" toml:"title" yaml:"title"`

	// Width is the initial window width in pixels.
	Width int `default:"800" toml:"width" yaml:"width"`

	// Height is the initial window height in pixels.
	Height int `default:"600" toml:"height" yaml:"height"`

	// UpdatesPerSecond is the fixed simulation rate.
	// Changing it requires a restart.
	UpdatesPerSecond float64 `default:"60" toml:"updates_per_second" yaml:"updates_per_second"`

	// Speed is the horizontal speed of the animated entity,
	// in world units per second.
	Speed float32 `default:"0.5" toml:"speed" yaml:"speed"`

	// ClearColor is the background color as a hex string, such as "#000000".
	ClearColor string `default:"#000000" toml:"clear_color" yaml:"clear_color"`

	// PowerPreference selects the adapter: "low-power", "high-performance" or "none".
	PowerPreference string `default:"low-power" toml:"power_preference" yaml:"power_preference"`

	// LogLevel is the logging level: debug, info, warn or error.
	// If empty, the command line verbosity flags apply.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Watch reloads the config file when it changes.
	Watch bool `toml:"watch" yaml:"watch"`
}

// New returns a new [Config] with default values.
func New() *Config {
	cfg := &Config{}
	errors.Log(SetFromDefaults(cfg))
	return cfg
}

// Clone returns a deep copy of the config.
func (cfg *Config) Clone() *Config {
	nc := &Config{}
	errors.Log(copier.CopyWithOption(nc, cfg, copier.Option{DeepCopy: true}))
	return nc
}

// Open reads the config from the given file, overwriting the fields
// it sets. The format is chosen by the extension: .toml, .yaml or .yml.
// A leading ~ is expanded to the home directory.
func Open(cfg *Config, file string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		err = tomlx.Open(cfg, fn)
	case ".yaml", ".yml":
		err = yamlx.Open(cfg, fn)
	default:
		return fmt.Errorf("config: unsupported config file type %q", fn)
	}
	if err != nil {
		return fmt.Errorf("config: opening %q: %w", fn, err)
	}
	return nil
}

// Save writes the config to the given file, in the format
// chosen by its extension.
func Save(cfg *Config, file string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		return tomlx.Save(cfg, fn)
	case ".yaml", ".yml":
		return yamlx.Save(cfg, fn)
	}
	return fmt.Errorf("config: unsupported config file type %q", fn)
}

// Validate returns an error describing every invalid field.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size must be positive, got %dx%d", cfg.Width, cfg.Height))
	}
	if !(cfg.UpdatesPerSecond > 0) {
		errs = append(errs, fmt.Errorf("config: updates per second must be positive, got %g", cfg.UpdatesPerSecond))
	}
	if _, err := cfg.Clear(); err != nil {
		errs = append(errs, err)
	}
	if _, err := cfg.Power(); err != nil {
		errs = append(errs, err)
	}
	if _, err := cfg.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Clear returns the parsed [Config.ClearColor].
func (cfg *Config) Clear() (color.Color, error) {
	c, err := colorful.Hex(cfg.ClearColor)
	if err != nil {
		return color.Black, fmt.Errorf("config: invalid clear color %q: %w", cfg.ClearColor, err)
	}
	return c, nil
}

// Power returns the parsed [Config.PowerPreference].
func (cfg *Config) Power() (wgpu.PowerPreference, error) {
	switch strings.ToLower(cfg.PowerPreference) {
	case "low-power", "low", "":
		return wgpu.PowerPreferenceLowPower, nil
	case "high-performance", "high":
		return wgpu.PowerPreferenceHighPerformance, nil
	case "none", "undefined":
		return wgpu.PowerPreferenceUndefined, nil
	}
	return wgpu.PowerPreferenceLowPower, fmt.Errorf("config: invalid power preference %q", cfg.PowerPreference)
}

// Level returns the parsed [Config.LogLevel].
func (cfg *Config) Level() (slog.Level, error) {
	return logx.LevelFromString(cfg.LogLevel)
}
