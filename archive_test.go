// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml"
	_ "github.com/corelang/srcml/langs/all"
)

func TestCreateAndFreeUnit(t *testing.T) {
	a := srcml.CreateArchive(0)
	u1 := a.CreateUnit(srcml.Meta{Filename: "a.c"})
	u2 := a.CreateUnit(srcml.Meta{Filename: "b.c"})
	assert.Len(t, a.Units, 2)

	a.FreeUnit(u1)
	assert.Len(t, a.Units, 1)
	assert.Equal(t, u2, a.Units[0])
}

func TestFreeArchiveClearsUnits(t *testing.T) {
	a := srcml.CreateArchive(0)
	a.CreateUnit(srcml.Meta{})
	a.FreeArchive()
	assert.Empty(t, a.Units)
}

// TestResolvedMetaUnitOverridesDefault exercises the per-unit-override ->
// archive-default -> absent resolution order: a field the unit sets wins
// over the archive default, and a field the unit leaves empty falls back
// to it.
func TestResolvedMetaUnitOverridesDefault(t *testing.T) {
	a := srcml.CreateArchive(0)
	a.DefaultMeta = srcml.Meta{Directory: "/src", Version: "1.0.0"}

	u := a.CreateUnit(srcml.Meta{Version: "2.0.0"})
	require.NoError(t, a.ParseUnit(u, srcml.Source{Bytes: []byte("int main() {}\n")}, "C"))

	var out bytes.Buffer
	require.NoError(t, a.UnparseUnit(u, &out))

	doc := out.String()
	assert.Contains(t, doc, `directory="/src"`)
	assert.Contains(t, doc, `version="2.0.0"`)
	assert.NotContains(t, doc, `version="1.0.0"`)
}

func TestUnparseUnitUnparsedErrors(t *testing.T) {
	a := srcml.CreateArchive(0)
	u := a.CreateUnit(srcml.Meta{})
	var out bytes.Buffer
	assert.Error(t, a.UnparseUnit(u, &out))
}

func TestWriteArchiveRejectsUnparsedMember(t *testing.T) {
	a := srcml.CreateArchive(0)
	a.CreateUnit(srcml.Meta{Filename: "a.c"})
	var out bytes.Buffer
	assert.Error(t, a.WriteArchive(&out))
}

func TestApplyTransformDelegatesToFunc(t *testing.T) {
	a := srcml.CreateArchive(0)
	src := bytes.NewBufferString("hello")
	var out bytes.Buffer
	require.NoError(t, a.ApplyTransform(src, func(r io.Reader, w io.Writer) error {
		_, err := io.Copy(w, r)
		return err
	}, &out))
	assert.Equal(t, "hello", out.String())
}
