// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/vellum/base/logx"
	"cogentcore.org/vellum/config"
	"github.com/spf13/pflag"
)

// logEnv is the environment variable that sets the log level.
const logEnv = "VELLUM_LOG"

// flags are the command line flags. Config values are bound to
// a separate config so that only the flags actually given
// override the config file.
type flags struct {
	file string
	cfg  *config.Config

	verbose     bool
	veryVerbose bool
	quiet       bool
}

func newFlags() *flags {
	return &flags{cfg: config.New()}
}

func (fl *flags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&fl.file, "config", "c", "", "config file (TOML or YAML)")
	fs.StringVar(&fl.cfg.Title, "title", fl.cfg.Title, "window title")
	fs.IntVar(&fl.cfg.Width, "width", fl.cfg.Width, "window width in pixels")
	fs.IntVar(&fl.cfg.Height, "height", fl.cfg.Height, "window height in pixels")
	fs.Float64Var(&fl.cfg.UpdatesPerSecond, "ups", fl.cfg.UpdatesPerSecond, "fixed updates per second")
	fs.Float32Var(&fl.cfg.Speed, "speed", fl.cfg.Speed, "triangle speed in world units per second")
	fs.StringVar(&fl.cfg.ClearColor, "clear", fl.cfg.ClearColor, "background color as a hex string")
	fs.StringVar(&fl.cfg.PowerPreference, "power", fl.cfg.PowerPreference, "adapter power preference: low-power, high-performance or none")
	fs.BoolVar(&fl.cfg.Watch, "watch", fl.cfg.Watch, "reload the config file when it changes")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "log info messages")
	fs.BoolVar(&fl.veryVerbose, "vv", false, "log debug messages")
	fs.BoolVarP(&fl.quiet, "quiet", "q", false, "only log errors")
}

// load builds the config from the defaults, then the given log level
// environment value, then the config file, then the flags that were set,
// and sets the log level from it.
func (fl *flags) load(fs *pflag.FlagSet, env string) (*config.Config, error) {
	cfg := config.New()
	cfg.LogLevel = env
	if fl.file != "" {
		if err := config.Open(cfg, fl.file); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "title":
			cfg.Title = fl.cfg.Title
		case "width":
			cfg.Width = fl.cfg.Width
		case "height":
			cfg.Height = fl.cfg.Height
		case "ups":
			cfg.UpdatesPerSecond = fl.cfg.UpdatesPerSecond
		case "speed":
			cfg.Speed = fl.cfg.Speed
		case "clear":
			cfg.ClearColor = fl.cfg.ClearColor
		case "power":
			cfg.PowerPreference = fl.cfg.PowerPreference
		case "watch":
			cfg.Watch = fl.cfg.Watch
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if fl.verbose || fl.veryVerbose || fl.quiet {
		logx.SetLevel(logx.LevelFromFlags(fl.veryVerbose, fl.verbose, fl.quiet))
	} else if cfg.LogLevel != "" {
		lvl, err := cfg.Level()
		if err != nil {
			return nil, err
		}
		logx.SetLevel(lvl)
	}
	return cfg, nil
}
