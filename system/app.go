// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the interface between a host window
// and the code it drives: the host owns the operating system
// window and event loop, and delivers lifecycle and input events
// to a single [Handler].
package system

import (
	"cogentcore.org/vellum/events"
	"cogentcore.org/vellum/gpu"
)

// Window is the single host window.
type Window interface {
	gpu.SurfaceSource

	// Size returns the current size of the drawable area in pixels.
	// It can be zero while the window is minimized.
	Size() (width, height int)

	// RequestRedraw asks the host to run another iteration of the
	// event loop as soon as possible, instead of waiting for input.
	RequestRedraw()
}

// Loop controls the host event loop.
type Loop interface {
	// Exit stops the event loop after the current event is handled.
	Exit()
}

// Handler receives events from the host event loop. All methods
// are called on the main thread, one at a time.
type Handler interface {
	// Resumed is called once the window exists and can be drawn to.
	Resumed(l Loop, w Window)

	// WindowEvent is called for every window and keyboard event.
	WindowEvent(l Loop, ev events.Event)

	// AboutToWait is called after pending events have been handled,
	// before the loop waits for more.
	AboutToWait(l Loop)
}
