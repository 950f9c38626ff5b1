// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml"
	_ "github.com/corelang/srcml/langs/all"
)

// TestSingleCFunction: a minimal C function translates to a
// <unit> wrapping a <function> with <type>/<name>/<parameter_list>/<block>.
func TestSingleCFunction(t *testing.T) {
	a := srcml.CreateArchive(srcml.XMLDecl)
	var out bytes.Buffer
	u, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("int main() {\n  return 0;\n}\n")},
		"C", &out)
	require.NoError(t, err)
	assert.True(t, u.Parsed())
	assert.Equal(t, "C", u.Language())

	doc := out.String()
	assert.Contains(t, doc, "<?xml")
	assert.Contains(t, doc, `<unit xmlns=`)
	assert.Contains(t, doc, `language="C"`)
	assert.Contains(t, doc, "<function")
	assert.Contains(t, doc, "<name>main</name>")
	assert.Contains(t, doc, "<return>")
	assert.Contains(t, doc, "</unit>")
}

// TestDeclarationStatement: a simple declaration statement
// wraps as decl_stmt/decl with type/name/init.
func TestDeclarationStatement(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("int main() {\n  int x = 1;\n}\n")},
		"C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<decl_stmt>")
	assert.Contains(t, doc, "<decl>")
	assert.Contains(t, doc, "<init>")
}

// TestPreprocessorInclude exercises the cpp: namespace for a #include line.
func TestPreprocessorInclude(t *testing.T) {
	a := srcml.CreateArchive(srcml.XMLDecl)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("#include <stdio.h>\nint main() {}\n")},
		"C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "xmlns:cpp")
	assert.Contains(t, doc, "<cpp:include>")
}

// TestEscapeRoundTrip: a C0 control character in the source
// becomes an <escape char="0xHH"/> element, never raw bytes in the XML.
func TestEscapeRoundTrip(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	src := []byte("int main() {\n  int x = 1\x01;\n}\n")
	_, err := a.TranslateSeparate(srcml.Source{Bytes: src}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, `<escape char="0x01"/>`)
	assert.NotContains(t, doc, "\x01")
}

// TestArchiveAssembly: multiple units share one root <unit>
// with a namespace union, and each child carries its own filename.
func TestArchiveAssembly(t *testing.T) {
	a := srcml.CreateArchive(srcml.XMLDecl)

	u1 := a.CreateUnit(srcml.Meta{})
	require.NoError(t, a.ParseUnit(u1, srcml.Source{Bytes: []byte("int a() {}\n")}, "C"))
	u1.Meta.Filename = "a.c"

	u2 := a.CreateUnit(srcml.Meta{})
	require.NoError(t, a.ParseUnit(u2, srcml.Source{Bytes: []byte("#include <b.h>\nint b() {}\n")}, "C"))
	u2.Meta.Filename = "b.c"

	var out bytes.Buffer
	require.NoError(t, a.WriteArchive(&out))

	doc := out.String()
	assert.Equal(t, 1, strings.Count(doc, "<?xml"))
	assert.Contains(t, doc, `filename="a.c"`)
	assert.Contains(t, doc, `filename="b.c"`)
	assert.Contains(t, doc, "xmlns:cpp")
	// Only the root declares the namespace once.
	assert.Equal(t, 1, strings.Count(doc, "xmlns:cpp"))
}

func TestUnparseUnitRequiresParse(t *testing.T) {
	a := srcml.CreateArchive(0)
	u := a.CreateUnit(srcml.Meta{})
	var out bytes.Buffer
	err := a.UnparseUnit(u, &out)
	assert.Error(t, err)
}

func TestLanguageUnsetWithoutResolution(t *testing.T) {
	a := srcml.CreateArchive(0)
	u := a.CreateUnit(srcml.Meta{})
	err := a.ParseUnit(u, srcml.Source{Bytes: []byte("x = 1;")}, "")
	assert.Error(t, err)
}
