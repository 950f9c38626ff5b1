// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml"
	_ "github.com/corelang/srcml/langs/all"
)

func TestNameAndExtensions(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	u, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int main() {}\n")}, "C++", &out)
	require.NoError(t, err)
	assert.Equal(t, "C++", u.Language())
}

func TestClassDeclaration(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("class Foo {\n};\n")}, "C++", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<class")
	assert.Contains(t, doc, "<name>Foo</name>")
	assert.Contains(t, doc, "</class>")
	assert.NotContains(t, doc, "expr_stmt")
	// The trailing ';' is spliced inside the class element via the
	// look-back window, before the already-produced end tag.
	assert.Contains(t, doc, ";</class>")
}

func TestNamespaceDeclaration(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("namespace foo {\nint x;\n}\n")}, "C++", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<namespace")
	assert.Contains(t, doc, "<name>foo</name>")
	assert.Contains(t, doc, "</namespace>")
}

func TestPlainFunctionDelegatesToC(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int add(int a, int b) {\n  return a;\n}\n")}, "C++", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<function")
	assert.Contains(t, doc, "<name>add</name>")
	assert.Contains(t, doc, "<return>")
}
