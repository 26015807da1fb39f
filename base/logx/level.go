// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging level and handler setup
// used throughout vellum, on top of [log/slog].
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through command line flags to the end user's preference.
// The default user verbosity level depends on the build tags:
// [slog.LevelDebug] for debug, [slog.LevelWarn] for release,
// and [slog.LevelInfo] otherwise.
var UserLevel = defaultUserLevel

// level is the live level consulted by handlers made with [NewHandler],
// so that [SetLevel] takes effect on loggers already installed.
var level = new(slog.LevelVar)

func init() {
	level.Set(UserLevel)
}

// SetLevel sets [UserLevel] and updates every handler
// created by this package to use it.
func SetLevel(l slog.Level) {
	UserLevel = l
	level.Set(l)
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// LevelFromString parses a level name such as "debug" or "WARN".
// The empty string returns [UserLevel].
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return UserLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return UserLevel, fmt.Errorf("logx: unknown log level %q", s)
}
