// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup:
// a verbosity level chosen by the user, and a text handler whose
// level field is colored for terminals.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] to the end user's preference.
// The default user verbosity level depends on the build tags:
// debug builds use [slog.LevelDebug], release builds [slog.LevelWarn],
// and all others [slog.LevelInfo].
var UserLevel = defaultUserLevel

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

// SetDefaultLogger sets the default logger to a [NewHandler] writing
// to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// NewHandler returns a text handler writing to w that only shows
// messages at or above level. The level name is colored according
// to its severity when w is a terminal that supports color.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if out.Profile == termenv.Ascii || len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(out, lvl)).String())
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("1")
	case level >= slog.LevelWarn:
		return out.Color("3")
	case level >= slog.LevelInfo:
		return out.Color("4")
	default:
		return out.Color("8")
	}
}
