// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml"
	_ "github.com/corelang/srcml/langs/all"
)

// TestSourceRoundTrip: translating source to srcML and extracting it
// back reproduces the input byte for byte.
func TestSourceRoundTrip(t *testing.T) {
	src := []byte("#include <stdio.h>\nint main() {\n\treturn 0;\n}\n")

	a := srcml.CreateArchive(srcml.XMLDecl)
	var doc bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: src}, "C", &doc)
	require.NoError(t, err)

	r, err := srcml.OpenArchiveRead(&doc)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	var out bytes.Buffer
	require.NoError(t, r.ExtractUnit(1, &out))
	assert.Equal(t, src, out.Bytes())
}

// TestEscapeExtraction: an <escape char="0xHH"/> element expands back to
// the original control byte on extraction.
func TestEscapeExtraction(t *testing.T) {
	src := []byte("int x = 1\x01;\n")

	a := srcml.CreateArchive(0)
	var doc bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: src}, "C", &doc)
	require.NoError(t, err)

	r, err := srcml.OpenArchiveRead(&doc)
	require.NoError(t, err)

	u, err := r.Unit(1)
	require.NoError(t, err)
	assert.Equal(t, src, u.Source())
}

// TestArchiveReadBack: reading an archive yields each member in
// insertion order with its attributes intact.
func TestArchiveReadBack(t *testing.T) {
	a := srcml.CreateArchive(srcml.XMLDecl)
	w, err := a.OpenArchiveWrite(nil)
	require.NoError(t, err)

	_, err = w.Add(srcml.Meta{Filename: "a.c"}, srcml.Source{Bytes: []byte("int a;\n")}, "C")
	require.NoError(t, err)
	_, err = w.Add(srcml.Meta{Filename: "b.c"}, srcml.Source{Bytes: []byte("int b;\n")}, "C")
	require.NoError(t, err)

	var doc bytes.Buffer
	require.NoError(t, a.WriteArchive(&doc))

	r, err := srcml.OpenArchiveRead(&doc)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	u1, err := r.Unit(1)
	require.NoError(t, err)
	assert.Equal(t, "a.c", u1.Meta.Filename)
	assert.Equal(t, []byte("int a;\n"), u1.Source())

	u2, err := r.Unit(2)
	require.NoError(t, err)
	assert.Equal(t, "b.c", u2.Meta.Filename)

	_, err = r.Unit(3)
	assert.Error(t, err)
}
