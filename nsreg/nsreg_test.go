// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nsreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWellKnownPrefixes(t *testing.T) {
	r := New()
	assert.Equal(t, "", r.Prefix(Src))
	assert.Equal(t, "cpp", r.Prefix(CPP))
	assert.Equal(t, "err", r.Prefix(Err))
	assert.Equal(t, "lit", r.Prefix(Literal))
	assert.Equal(t, "op", r.Prefix(Operator))
	assert.Equal(t, "type", r.Prefix(Modifier))
	assert.Equal(t, "pos", r.Prefix(Position))
	assert.Equal(t, "diff", r.Prefix(Diff))

	assert.True(t, r.Declared(Src))
	assert.True(t, r.Declared(CPP))
}

func TestGeneratedPrefix(t *testing.T) {
	r := New()
	extra := URI("http://example.com/extension")
	assert.False(t, r.Declared(extra))

	p := r.Prefix(extra)
	assert.Equal(t, "nsa", p)
	assert.True(t, r.Declared(extra))

	// Repeated lookups are stable.
	assert.Equal(t, p, r.Prefix(extra))

	extra2 := URI("http://example.com/extension2")
	assert.Equal(t, "nsb", r.Prefix(extra2))
}

func TestCanonicalOrder(t *testing.T) {
	extra := URI("http://example.com/extra")
	set := map[URI]bool{extra: true, CPP: true, Src: true, Position: true}

	assert.Equal(t, []URI{Src, CPP, Position, extra}, Canonical(set))
}

func TestOrderedFirstUse(t *testing.T) {
	r := New()
	extra := URI("http://example.com/extra")
	r.Prefix(extra)

	order := r.Ordered()
	assert.Equal(t, Src, order[0])
	assert.Equal(t, extra, order[len(order)-1])
}
