// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"testing"

	"cogentcore.org/vellum/events"
	"cogentcore.org/vellum/events/key"
	"github.com/stretchr/testify/assert"
)

func TestPressRelease(t *testing.T) {
	var st State
	assert.False(t, st.IsPressed(key.CodeW))

	assert.True(t, st.HandleEvent(events.NewKey(events.KeyDown, key.CodeW, 0)))
	assert.True(t, st.HandleEvent(events.NewKey(events.KeyDown, key.CodeA, key.Shift)))
	assert.True(t, st.IsPressed(key.CodeW))
	assert.Equal(t, []key.Codes{key.CodeA, key.CodeW}, st.Pressed())
	assert.True(t, st.Modifiers().HasFlag(key.Shift))

	// auto-repeat keeps it pressed
	st.HandleEvent(events.NewKey(events.KeyDown, key.CodeW, 0))
	assert.True(t, st.IsPressed(key.CodeW))

	st.HandleEvent(events.NewKey(events.KeyUp, key.CodeW, 0))
	assert.False(t, st.IsPressed(key.CodeW))
	assert.Equal(t, []key.Codes{key.CodeA}, st.Pressed())
}

func TestIgnoresOtherEvents(t *testing.T) {
	var st State
	assert.False(t, st.HandleEvent(events.NewResize(10, 10)))
	assert.Empty(t, st.Pressed())
}

func TestReset(t *testing.T) {
	var st State
	st.HandleEvent(events.NewKey(events.KeyDown, key.CodeEscape, key.Control))
	st.Reset()
	assert.Empty(t, st.Pressed())
	assert.Zero(t, st.Modifiers())
}
