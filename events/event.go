// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window and keyboard events delivered
// by a host window to its handler, and a queue for passing them
// from system callbacks to the event loop.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/vellum/events/key"
)

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time
}

// Base is the base type for events, providing the type and time.
type Base struct {
	Typ     Types
	GenTime time.Time
}

// NewBase returns a new [Base] of the given type, stamped now.
func NewBase(typ Types) Base {
	return Base{Typ: typ, GenTime: time.Now()}
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) String() string { return ev.Typ.String() }

// Resize is a [WindowResize] event, with the new size of the
// drawable area in pixels.
type Resize struct {
	Base
	Width  int
	Height int
}

// NewResize returns a new [Resize] event for the given size.
func NewResize(width, height int) *Resize {
	return &Resize{Base: NewBase(WindowResize), Width: width, Height: height}
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{%dx%d}", ev.Typ, ev.Width, ev.Height)
}

// Key is a [KeyDown] or [KeyUp] event.
type Key struct {
	Base

	// Code is the physical key.
	Code key.Codes

	// Mods are the modifiers held at the time of the event.
	Mods key.Modifiers

	// Repeat is whether a KeyDown is an auto-repeat of a held key.
	Repeat bool
}

// NewKey returns a new [Key] event.
func NewKey(typ Types, code key.Codes, mods key.Modifiers) *Key {
	return &Key{Base: NewBase(typ), Code: code, Mods: mods}
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{%v %v}", ev.Typ, ev.Mods, ev.Code)
}

// Focus is a [WindowFocus] event.
type Focus struct {
	Base
	Focused bool
}

// NewWindow returns a new event of a window type that carries no data,
// such as [WindowClose] or [WindowPaint].
func NewWindow(typ Types) *Base {
	ev := NewBase(typ)
	return &ev
}
