// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = 1 << iota

	// Meta is the system meta key (the "Command" key on macOS
	// and the Windows key on Windows).
	Meta

	// Alt is the "Alt" ("Option" on macOS) key.
	Alt

	// Shift is the "Shift" key.
	Shift
)

// HasFlag returns whether these modifiers contain the given one.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}

// SetFlag sets or clears the given flags.
func (m *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*m |= fl
		} else {
			*m &^= fl
		}
	}
}

// String returns the modifiers joined with "+", such as "Control+Shift".
func (m Modifiers) String() string {
	var parts []string
	for _, f := range []struct {
		fl Modifiers
		nm string
	}{{Control, "Control"}, {Meta, "Meta"}, {Alt, "Alt"}, {Shift, "Shift"}} {
		if m.HasFlag(f.fl) {
			parts = append(parts, f.nm)
		}
	}
	return strings.Join(parts, "+")
}
