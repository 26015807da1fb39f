// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"cogentcore.org/vellum/events"
	"cogentcore.org/vellum/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwMods converts glfw modifier flags to [key.Modifiers].
func GlfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}

// GlfwKeyCode converts a glfw key to a [key.Codes].
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch {
	case kcode >= glfw.KeyA && kcode <= glfw.KeyZ:
		return key.CodeA + key.Codes(kcode-glfw.KeyA)
	case kcode == glfw.Key0:
		return key.Code0
	case kcode >= glfw.Key1 && kcode <= glfw.Key9:
		return key.Code1 + key.Codes(kcode-glfw.Key1)
	}
	switch kcode {
	case glfw.KeyEnter:
		return key.CodeReturnEnter
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyBackspace:
		return key.CodeBackspace
	case glfw.KeyTab:
		return key.CodeTab
	case glfw.KeySpace:
		return key.CodeSpacebar
	case glfw.KeyRight:
		return key.CodeRightArrow
	case glfw.KeyLeft:
		return key.CodeLeftArrow
	case glfw.KeyDown:
		return key.CodeDownArrow
	case glfw.KeyUp:
		return key.CodeUpArrow
	case glfw.KeyLeftControl:
		return key.CodeLeftControl
	case glfw.KeyLeftShift:
		return key.CodeLeftShift
	case glfw.KeyLeftAlt:
		return key.CodeLeftAlt
	case glfw.KeyLeftSuper:
		return key.CodeLeftMeta
	case glfw.KeyRightControl:
		return key.CodeRightControl
	case glfw.KeyRightShift:
		return key.CodeRightShift
	case glfw.KeyRightAlt:
		return key.CodeRightAlt
	case glfw.KeyRightSuper:
		return key.CodeRightMeta
	}
	return key.CodeUnknown
}

// keyEvent converts a glfw key callback to an event.
func keyEvent(ky glfw.Key, action glfw.Action, mod glfw.ModifierKey) *events.Key {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	ev := events.NewKey(typ, GlfwKeyCode(ky), GlfwMods(mod))
	ev.Repeat = action == glfw.Repeat
	return ev
}

// physical key
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	w.app.events.Send(keyEvent(ky, action, mod))
}

func (w *Window) FramebufferSizeEvent(gw *glfw.Window, width, height int) {
	w.app.events.Send(events.NewResize(width, height))
	w.RequestRedraw()
}

func (w *Window) CloseEvent(gw *glfw.Window) {
	// the handler decides whether to exit
	gw.SetShouldClose(false)
	w.app.events.Send(events.NewWindow(events.WindowClose))
	w.RequestRedraw()
}

func (w *Window) FocusEvent(gw *glfw.Window, focused bool) {
	w.app.events.Send(&events.Focus{Base: events.NewBase(events.WindowFocus), Focused: focused})
}

func (w *Window) RefreshEvent(gw *glfw.Window) {
	w.app.events.Send(events.NewWindow(events.WindowPaint))
}
