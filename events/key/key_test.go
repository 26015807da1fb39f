// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeStrings(t *testing.T) {
	assert.Equal(t, "W", CodeW.String())
	assert.Equal(t, "A", CodeA.String())
	assert.Equal(t, "9", Code9.String())
	assert.Equal(t, "0", Code0.String())
	assert.Equal(t, "Escape", CodeEscape.String())
	assert.Equal(t, "Codes(500)", Codes(500).String())
}

func TestCodeFromString(t *testing.T) {
	for _, kc := range []Codes{CodeW, CodeZ, Code0, Code5, CodeEscape, CodeLeftShift} {
		got, ok := CodeFromString(kc.String())
		assert.True(t, ok)
		assert.Equal(t, kc, got)
	}
	got, ok := CodeFromString("w")
	assert.True(t, ok)
	assert.Equal(t, CodeW, got)
	_, ok = CodeFromString("NotAKey")
	assert.False(t, ok)
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	assert.Equal(t, "", m.String())
	m.SetFlag(true, Control, Shift)
	assert.True(t, m.HasFlag(Shift))
	assert.False(t, m.HasFlag(Alt))
	assert.Equal(t, "Control+Shift", m.String())
	m.SetFlag(false, Control)
	assert.Equal(t, "Shift", m.String())
	assert.True(t, CodeRightAlt.IsModifier())
	assert.False(t, CodeW.IsModifier())
}
