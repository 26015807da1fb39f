// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input tracks which keys are currently held down.
package input

import (
	"slices"

	"cogentcore.org/vellum/events"
	"cogentcore.org/vellum/events/key"
)

// State is the set of keys currently pressed.
// The zero value is ready to use.
type State struct {
	pressed map[key.Codes]bool
	mods    key.Modifiers
}

// HandleEvent updates the state from the given event, and returns
// whether it was a key event. Non-key events are ignored.
func (st *State) HandleEvent(ev events.Event) bool {
	ke, ok := ev.(*events.Key)
	if !ok {
		return false
	}
	if st.pressed == nil {
		st.pressed = map[key.Codes]bool{}
	}
	st.mods = ke.Mods
	switch ke.Type() {
	case events.KeyDown:
		st.pressed[ke.Code] = true
	case events.KeyUp:
		delete(st.pressed, ke.Code)
	default:
		return false
	}
	return true
}

// IsPressed returns whether the given key is held down.
func (st *State) IsPressed(code key.Codes) bool {
	return st.pressed[code]
}

// Pressed returns the held keys, in code order.
func (st *State) Pressed() []key.Codes {
	ks := make([]key.Codes, 0, len(st.pressed))
	for k := range st.pressed {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

// Modifiers returns the modifiers of the last key event.
func (st *State) Modifiers() key.Modifiers { return st.mods }

// Reset releases all keys, as when the window loses focus.
func (st *State) Reset() {
	clear(st.pressed)
	st.mods = 0
}
