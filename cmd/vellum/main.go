// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vellum opens a window and draws an animated triangle
// with the GPU, updating the scene at a fixed rate.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/vellum/base/errors"
	"cogentcore.org/vellum/base/logx"
	"cogentcore.org/vellum/clock"
	"cogentcore.org/vellum/config"
	"cogentcore.org/vellum/frame"
	"cogentcore.org/vellum/gpu/wgpudrv"
	"cogentcore.org/vellum/render"
	"cogentcore.org/vellum/scene"
	"cogentcore.org/vellum/system/driver/desktop"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vellum:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	fl := newFlags()
	cmd := &cobra.Command{
		Use:           "vellum",
		Short:         "Draw an animated triangle in a window with the GPU",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fl.load(cmd.Flags(), os.Getenv(logEnv))
			if err != nil {
				return err
			}
			logx.SetDefaultLogger()
			return run(cfg, fl.file)
		},
	}
	fl.bind(cmd.Flags())
	return cmd
}

// run runs the engine with the given config until the window is closed.
func run(cfg *config.Config, file string) error {
	power, err := cfg.Power()
	if err != nil {
		return err
	}
	bg, err := cfg.Clear()
	if err != nil {
		return err
	}

	sc := scene.Default()
	sc.Speed = cfg.Speed
	ctx := render.NewContext(wgpudrv.New(), sc, render.Options{
		PowerPreference: power,
		ClearColor:      bg,
	})
	fd := frame.New(clock.New(cfg.UpdatesPerSecond), sc, ctx, cfg)
	defer fd.Release()

	if cfg.Watch && file != "" {
		w, err := config.Watch(file, cfg)
		if errors.Log(err) == nil {
			defer w.Close()
			fd.WatchConfigs(w.Configs())
		}
	}

	err = desktop.Run(fd, desktop.Options{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return err
	}
	return fd.Err()
}
