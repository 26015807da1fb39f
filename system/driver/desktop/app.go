// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the [system] host on desktop
// platforms using glfw.
package desktop

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"cogentcore.org/vellum/events"
	"cogentcore.org/vellum/system"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// must lock main thread for glfw and gpu
	runtime.LockOSThread()
}

// ErrWindowCreation is returned by [Run] when the window
// cannot be created.
var ErrWindowCreation = errors.New("desktop: window creation failed")

// Options configure the window.
type Options struct {
	Title  string
	Width  int
	Height int
}

// App is the desktop event loop. It implements [system.Loop].
type App struct {
	events events.Queue
	exit   bool
	redraw bool

	// poll processes pending system events, blocking until
	// there is at least one if wait is true.
	poll func(wait bool)
}

// Window is a glfw window. It implements [system.Window].
type Window struct {
	Glw *glfw.Window
	app *App
}

// Run creates the window and runs the event loop, delivering
// events to the given handler until it calls [system.Loop.Exit].
// It must be called on the main thread.
func Run(h system.Handler, opts Options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	defer glw.Destroy()

	a := newApp(func(wait bool) {
		if wait {
			glfw.WaitEvents()
		} else {
			glfw.PollEvents()
		}
	})
	w := &Window{Glw: glw, app: a}
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetFramebufferSizeCallback(w.FramebufferSizeEvent)
	glw.SetCloseCallback(w.CloseEvent)
	glw.SetFocusCallback(w.FocusEvent)
	glw.SetRefreshCallback(w.RefreshEvent)

	width, height := w.Size()
	slog.Info("window created", "title", opts.Title, "width", width, "height", height)
	a.run(h, w)
	return nil
}

func newApp(poll func(wait bool)) *App {
	a := &App{poll: poll}
	a.events.Init()
	return a
}

func (a *App) Exit() { a.exit = true }

// run delivers events to h until it exits.
func (a *App) run(h system.Handler, w system.Window) {
	h.Resumed(a, w)
	for !a.exit {
		a.events.Drain(func(ev events.Event) {
			if !a.exit {
				h.WindowEvent(a, ev)
			}
		})
		if a.exit {
			break
		}
		h.AboutToWait(a)
		if a.exit {
			break
		}
		wait := !a.redraw
		a.redraw = false
		a.poll(wait)
	}
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.Glw)
}

func (w *Window) Size() (width, height int) {
	return w.Glw.GetFramebufferSize()
}

func (w *Window) RequestRedraw() {
	w.app.redraw = true
	glfw.PostEmptyEvent()
}
