// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines physical key codes and modifier flags.
package key

import (
	"strconv"
	"strings"
)

// Codes is the physical key that was pressed, independent of layout.
// The values follow the USB HID usage table for keyboards.
type Codes int32

const (
	CodeUnknown Codes = 0

	CodeA Codes = 4
	CodeB Codes = 5
	CodeC Codes = 6
	CodeD Codes = 7
	CodeE Codes = 8
	CodeF Codes = 9
	CodeG Codes = 10
	CodeH Codes = 11
	CodeI Codes = 12
	CodeJ Codes = 13
	CodeK Codes = 14
	CodeL Codes = 15
	CodeM Codes = 16
	CodeN Codes = 17
	CodeO Codes = 18
	CodeP Codes = 19
	CodeQ Codes = 20
	CodeR Codes = 21
	CodeS Codes = 22
	CodeT Codes = 23
	CodeU Codes = 24
	CodeV Codes = 25
	CodeW Codes = 26
	CodeX Codes = 27
	CodeY Codes = 28
	CodeZ Codes = 29

	Code1 Codes = 30
	Code2 Codes = 31
	Code3 Codes = 32
	Code4 Codes = 33
	Code5 Codes = 34
	Code6 Codes = 35
	Code7 Codes = 36
	Code8 Codes = 37
	Code9 Codes = 38
	Code0 Codes = 39

	CodeReturnEnter Codes = 40
	CodeEscape      Codes = 41
	CodeBackspace   Codes = 42
	CodeTab         Codes = 43
	CodeSpacebar    Codes = 44

	CodeRightArrow Codes = 79
	CodeLeftArrow  Codes = 80
	CodeDownArrow  Codes = 81
	CodeUpArrow    Codes = 82

	CodeLeftControl  Codes = 224
	CodeLeftShift    Codes = 225
	CodeLeftAlt      Codes = 226
	CodeLeftMeta     Codes = 227
	CodeRightControl Codes = 228
	CodeRightShift   Codes = 229
	CodeRightAlt     Codes = 230
	CodeRightMeta    Codes = 231
)

var codeNames = map[Codes]string{
	CodeUnknown:      "Unknown",
	CodeReturnEnter:  "ReturnEnter",
	CodeEscape:       "Escape",
	CodeBackspace:    "Backspace",
	CodeTab:          "Tab",
	CodeSpacebar:     "Spacebar",
	CodeRightArrow:   "RightArrow",
	CodeLeftArrow:    "LeftArrow",
	CodeDownArrow:    "DownArrow",
	CodeUpArrow:      "UpArrow",
	CodeLeftControl:  "LeftControl",
	CodeLeftShift:    "LeftShift",
	CodeLeftAlt:      "LeftAlt",
	CodeLeftMeta:     "LeftMeta",
	CodeRightControl: "RightControl",
	CodeRightShift:   "RightShift",
	CodeRightAlt:     "RightAlt",
	CodeRightMeta:    "RightMeta",
}

// String returns the name of the key, such as "W", "7" or "Escape".
func (kc Codes) String() string {
	switch {
	case kc >= CodeA && kc <= CodeZ:
		return string(rune('A' + kc - CodeA))
	case kc >= Code1 && kc <= Code9:
		return string(rune('1' + kc - Code1))
	case kc == Code0:
		return "0"
	}
	if nm, ok := codeNames[kc]; ok {
		return nm
	}
	return "Codes(" + strconv.Itoa(int(kc)) + ")"
}

// CodeFromString returns the code with the given name,
// as returned by [Codes.String], ignoring case.
func CodeFromString(s string) (Codes, bool) {
	if len(s) == 1 {
		c := strings.ToUpper(s)[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return CodeA + Codes(c-'A'), true
		case c == '0':
			return Code0, true
		case c >= '1' && c <= '9':
			return Code1 + Codes(c-'1'), true
		}
	}
	for kc, nm := range codeNames {
		if strings.EqualFold(nm, s) {
			return kc, true
		}
	}
	return CodeUnknown, false
}

// IsModifier returns whether the key is a modifier key.
func (kc Codes) IsModifier() bool {
	return kc >= CodeLeftControl && kc <= CodeRightMeta
}
