// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"testing"

	"cogentcore.org/vellum/events"
	"cogentcore.org/vellum/events/key"
	"cogentcore.org/vellum/system"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeW, GlfwKeyCode(glfw.KeyW))
	assert.Equal(t, key.CodeA, GlfwKeyCode(glfw.KeyA))
	assert.Equal(t, key.CodeZ, GlfwKeyCode(glfw.KeyZ))
	assert.Equal(t, key.Code0, GlfwKeyCode(glfw.Key0))
	assert.Equal(t, key.Code7, GlfwKeyCode(glfw.Key7))
	assert.Equal(t, key.CodeEscape, GlfwKeyCode(glfw.KeyEscape))
	assert.Equal(t, key.CodeUnknown, GlfwKeyCode(glfw.KeyF25))
}

func TestGlfwMods(t *testing.T) {
	m := GlfwMods(glfw.ModShift | glfw.ModSuper)
	assert.True(t, m.HasFlag(key.Shift))
	assert.True(t, m.HasFlag(key.Meta))
	assert.False(t, m.HasFlag(key.Control))
}

func TestKeyEvent(t *testing.T) {
	ev := keyEvent(glfw.KeyW, glfw.Press, 0)
	assert.Equal(t, events.KeyDown, ev.Type())
	assert.False(t, ev.Repeat)
	ev = keyEvent(glfw.KeyW, glfw.Repeat, 0)
	assert.Equal(t, events.KeyDown, ev.Type())
	assert.True(t, ev.Repeat)
	ev = keyEvent(glfw.KeyW, glfw.Release, glfw.ModControl)
	assert.Equal(t, events.KeyUp, ev.Type())
	assert.True(t, ev.Mods.HasFlag(key.Control))
}

type fakeWindow struct{}

func (fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (fakeWindow) Size() (int, int)                           { return 800, 600 }
func (fakeWindow) RequestRedraw()                             {}

// recorder exits after a fixed number of idle iterations,
// or on a close event.
type recorder struct {
	log   []string
	idles int
}

func (r *recorder) Resumed(l system.Loop, w system.Window) {
	r.log = append(r.log, "Resumed")
}

func (r *recorder) WindowEvent(l system.Loop, ev events.Event) {
	r.log = append(r.log, ev.Type().String())
	if ev.Type() == events.WindowClose {
		l.Exit()
	}
}

func (r *recorder) AboutToWait(l system.Loop) {
	r.log = append(r.log, "AboutToWait")
	r.idles++
	if r.idles >= 3 {
		l.Exit()
	}
}

func TestRunOrder(t *testing.T) {
	var a *App
	polls := 0
	a = newApp(func(wait bool) {
		polls++
		if polls == 1 {
			a.events.Send(events.NewResize(10, 20))
		}
	})
	r := &recorder{}
	a.run(r, fakeWindow{})
	assert.Equal(t, []string{"Resumed", "AboutToWait", "WindowResize", "AboutToWait", "AboutToWait"}, r.log)
	assert.Equal(t, 2, polls)
}

func TestRunExitOnClose(t *testing.T) {
	a := newApp(func(wait bool) {})
	a.events.Send(events.NewWindow(events.WindowClose))
	a.events.Send(events.NewResize(1, 1))
	r := &recorder{}
	a.run(r, fakeWindow{})
	assert.Equal(t, []string{"Resumed", "WindowClose"}, r.log)
}
