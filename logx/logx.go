// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides level-gated print helpers used for translator
// and parser diagnostics: a UserLevel gate over a Print/Println/Printf
// family, keyed by [slog.Level].
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the minimum level that will be printed. Messages below this
// level are silently dropped. Defaults to defaultUserLevel, which is
// LevelDebug in normal builds and LevelWarn in release builds (see
// level_release.go).
var UserLevel = defaultUserLevel

// Print is equivalent to [fmt.Print], but gated on UserLevel.
func Print(level slog.Level, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Print(a...)
}

// PrintDebug is equivalent to [Print] with level [slog.LevelDebug].
func PrintDebug(a ...any) (n int, err error) { return Print(slog.LevelDebug, a...) }

// PrintInfo is equivalent to [Print] with level [slog.LevelInfo].
func PrintInfo(a ...any) (n int, err error) { return Print(slog.LevelInfo, a...) }

// PrintWarn is equivalent to [Print] with level [slog.LevelWarn].
func PrintWarn(a ...any) (n int, err error) { return Print(slog.LevelWarn, a...) }

// PrintError is equivalent to [Print] with level [slog.LevelError].
func PrintError(a ...any) (n int, err error) { return Print(slog.LevelError, a...) }

// Println is equivalent to [fmt.Println], but gated on UserLevel.
func Println(level slog.Level, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Println(a...)
}

// PrintlnWarn is equivalent to [Println] with level [slog.LevelWarn].
func PrintlnWarn(a ...any) (n int, err error) { return Println(slog.LevelWarn, a...) }

// PrintlnError is equivalent to [Println] with level [slog.LevelError].
func PrintlnError(a ...any) (n int, err error) { return Println(slog.LevelError, a...) }

// Printf is equivalent to [fmt.Printf], but gated on UserLevel.
func Printf(level slog.Level, format string, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Printf(format, a...)
}

// PrintfWarn is equivalent to [Printf] with level [slog.LevelWarn].
func PrintfWarn(format string, a ...any) (n int, err error) { return Printf(slog.LevelWarn, format, a...) }

// PrintfError is equivalent to [Printf] with level [slog.LevelError].
func PrintfError(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelError, format, a...)
}
