// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintGatedByLevel(t *testing.T) {
	orig := UserLevel
	defer func() { UserLevel = orig }()

	UserLevel = slog.LevelWarn
	n, err := Print(slog.LevelDebug, "suppressed")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = Print(slog.LevelError, "shown")
	assert.NoError(t, err)
	assert.Greater(t, n, 0)
}

func TestPrintlnGatedByLevel(t *testing.T) {
	orig := UserLevel
	defer func() { UserLevel = orig }()

	UserLevel = slog.LevelError
	n, err := PrintlnWarn("suppressed")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPrintfGatedByLevel(t *testing.T) {
	orig := UserLevel
	defer func() { UserLevel = orig }()

	UserLevel = slog.LevelWarn
	n, err := PrintfWarn("hello %s\n", "world")
	assert.NoError(t, err)
	assert.Greater(t, n, 0)
}

func TestDefaultUserLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, defaultUserLevel)
}
