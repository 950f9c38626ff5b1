// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndWrap(t *testing.T) {
	e := New(Input, "bad source")
	assert.Equal(t, "InputError: bad source", e.Error())
	assert.Nil(t, e.Unwrap())

	cause := errors.New("disk full")
	w := Wrap(IO, "write output", cause)
	assert.Equal(t, "IOError: write output: disk full", w.Error())
	assert.Equal(t, cause, w.Unwrap())
	assert.True(t, errors.Is(w, cause))
}

func TestIs(t *testing.T) {
	e := New(Internal, "mode stack underflow")
	assert.True(t, Is(e, Internal))
	assert.False(t, Is(e, IO))
	assert.False(t, Is(errors.New("plain"), Internal))
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Input:         "InputError",
		Encoding:      "EncodingError",
		LanguageUnset: "LanguageUnset",
		Transform:     "TransformError",
		Internal:      "InternalError",
		IO:            "IOError",
		Unknown:       "Error",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}

func TestList(t *testing.T) {
	var l List
	assert.Equal(t, 0, l.Len())

	l.Add(Input, "first")
	l.Add(Encoding, "second")
	assert.Equal(t, 2, l.Len())
	assert.Len(t, l.All(), 2)

	report := l.Report(0)
	assert.Contains(t, report, "first")
	assert.Contains(t, report, "second")

	truncated := l.Report(1)
	assert.Contains(t, truncated, "first")
	assert.NotContains(t, truncated, "second")
}
