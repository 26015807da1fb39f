// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides the frame [Driver], which handles the host
// events and runs one fixed-timestep update and render cycle each
// time the event loop goes idle.
package frame

import (
	"fmt"
	"log/slog"

	"cogentcore.org/vellum/base/errors"
	"cogentcore.org/vellum/base/logx"
	"cogentcore.org/vellum/clock"
	"cogentcore.org/vellum/config"
	"cogentcore.org/vellum/events"
	"cogentcore.org/vellum/events/key"
	"cogentcore.org/vellum/input"
	"cogentcore.org/vellum/render"
	"cogentcore.org/vellum/scene"
	"cogentcore.org/vellum/system"
)

// Driver is the [system.Handler] that owns the clock, the scene and
// the graphics context, and drives them from the host event loop.
type Driver struct {
	clock *clock.Clock
	scene *scene.Scene
	ctx   *render.Context

	// Input is the keyboard state.
	Input input.State

	// cfg is the config currently applied, or nil.
	cfg *config.Config

	// configs delivers reloaded configs, or is nil.
	configs <-chan *config.Config

	win system.Window
	err error
}

// New returns a new driver that exclusively owns the given
// clock, scene and context. The config, which can be nil, is the one
// they were made from, used to detect what a reload changes.
func New(ck *clock.Clock, sc *scene.Scene, ctx *render.Context, cfg *config.Config) *Driver {
	return &Driver{clock: ck, scene: sc, ctx: ctx, cfg: cfg}
}

// WatchConfigs makes the driver apply the configs received on the
// given channel at the start of each idle cycle.
func (fd *Driver) WatchConfigs(ch <-chan *config.Config) {
	fd.configs = ch
}

// Clock returns the clock.
func (fd *Driver) Clock() *clock.Clock { return fd.clock }

// Scene returns the scene.
func (fd *Driver) Scene() *scene.Scene { return fd.scene }

// Context returns the graphics context.
func (fd *Driver) Context() *render.Context { return fd.ctx }

// Err returns the fatal error that stopped the event loop, if any.
func (fd *Driver) Err() error { return fd.err }

// fail records a fatal error and exits the loop.
func (fd *Driver) fail(l system.Loop, err error) {
	slog.Error(err.Error())
	if fd.err == nil {
		fd.err = err
	}
	l.Exit()
}

// Release releases the scene vertex buffer and then the graphics
// context, for orderly shutdown after the loop exits.
func (fd *Driver) Release() {
	fd.scene.Release()
	fd.ctx.Release()
}

// Resumed initializes the graphics context for the window, if it is
// not already initialized. A failure is fatal.
func (fd *Driver) Resumed(l system.Loop, w system.Window) {
	fd.win = w
	if fd.ctx.State() == render.Ready {
		return
	}
	if err := fd.ctx.Initialize(w); err != nil {
		fd.fail(l, fmt.Errorf("initializing graphics: %w", err))
	}
}

// WindowEvent updates the input state, resizes the surface,
// and exits the loop when the window is closed. Events that arrive
// before [Driver.Resumed] are ignored.
func (fd *Driver) WindowEvent(l system.Loop, ev events.Event) {
	// [system.Handler] hosts call Resumed before any window event.
	if fd.win == nil {
		return
	}
	if fd.Input.HandleEvent(ev) {
		if fd.Input.IsPressed(key.CodeW) {
			slog.Info("W key is pressed!")
		}
		return
	}
	switch ev := ev.(type) {
	case *events.Resize:
		fd.ctx.Resize(ev.Width, ev.Height)
		fd.win.RequestRedraw()
	case *events.Focus:
		if !ev.Focused {
			fd.Input.Reset()
		}
	default:
		if ev.Type() == events.WindowClose {
			slog.Info("window closed")
			l.Exit()
		}
	}
}

// AboutToWait runs one frame: it applies any reloaded config, runs
// the updates the clock says are due, rebuilding the scene vertex
// buffer when they changed it, renders, and requests the next frame.
func (fd *Driver) AboutToWait(l system.Loop) {
	if fd.win == nil {
		return
	}
	fd.applyConfigs()

	elapsed, updates := fd.clock.Tick()
	dt := fd.clock.Period().Seconds()
	changed := false
	for range updates {
		if fd.scene.Update(dt) {
			changed = true
		}
	}
	if changed {
		if dev := fd.ctx.Device(); dev != nil {
			if err := fd.scene.RebuildVertexBuffer(dev); err != nil {
				fd.fail(l, fmt.Errorf("%w: %w", render.ErrBufferCreationFailed, err))
				return
			}
		}
	}
	slog.Debug(fmt.Sprintf("Delta time: %.4fms, Updates: %d", elapsed*1000, updates))

	fd.ctx.Render()
	fd.win.RequestRedraw()
}

// applyConfigs applies the most recent reloaded config, if any.
func (fd *Driver) applyConfigs() {
	var cfg *config.Config
	for {
		select {
		case c, ok := <-fd.configs:
			if !ok {
				fd.configs = nil
				break
			}
			cfg = c
			continue
		default:
		}
		break
	}
	if cfg != nil {
		fd.ApplyConfig(cfg)
	}
}

// ApplyConfig applies the settings of the given config that can change
// while running: the clear color, the scene speed and the log level.
// Changes to the other settings are logged and ignored.
func (fd *Driver) ApplyConfig(cfg *config.Config) {
	if c, err := cfg.Clear(); errors.Log(err) == nil {
		fd.ctx.SetClearColor(c)
	}
	fd.scene.Speed = cfg.Speed
	if cfg.LogLevel != "" {
		if lvl, err := cfg.Level(); errors.Log(err) == nil {
			logx.SetLevel(lvl)
		}
	}
	if old := fd.cfg; old != nil {
		if old.UpdatesPerSecond != cfg.UpdatesPerSecond {
			slog.Warn("updates per second cannot change while running", "current", old.UpdatesPerSecond)
		}
		if old.Width != cfg.Width || old.Height != cfg.Height || old.Title != cfg.Title {
			slog.Warn("window settings cannot change while running")
		}
	}
	fd.cfg = cfg
	slog.Info("config applied", "clear", cfg.ClearColor, "speed", cfg.Speed)
}
