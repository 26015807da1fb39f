// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of window event. The type
// includes both the source and the "action" of the event
// (e.g., KeyDown and KeyUp are separate event types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// KeyDown is when a key is pressed down, including
	// auto-repeat while it is held.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// WindowResize happens when the window has been resized,
	// which can happen continuously during a user resizing
	// episode.
	WindowResize

	// WindowClose is sent when the user asks to close the window.
	// The window stays open until the handler exits the loop.
	WindowClose

	// WindowPaint is sent when the window contents must be redrawn,
	// either because a redraw was requested or because the
	// system exposed it.
	WindowPaint

	// WindowFocus is sent when the window gains or loses focus.
	WindowFocus

	typesN
)

var typesNames = [...]string{
	UnknownType:  "UnknownType",
	KeyDown:      "KeyDown",
	KeyUp:        "KeyUp",
	WindowResize: "WindowResize",
	WindowClose:  "WindowClose",
	WindowPaint:  "WindowPaint",
	WindowFocus:  "WindowFocus",
}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typesNames[tp]
}

// IsKey returns whether this is a keyboard event type.
func (tp Types) IsKey() bool {
	return tp == KeyDown || tp == KeyUp
}

// IsWindow returns whether this is a window lifecycle event type.
func (tp Types) IsWindow() bool {
	return tp >= WindowResize && tp <= WindowFocus
}
