// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csharp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml"
	_ "github.com/corelang/srcml/langs/csharp"
)

func TestNameAndExtensions(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	u, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("class Foo {\n}\n")}, "C#", &out)
	require.NoError(t, err)
	assert.Equal(t, "C#", u.Language())
}

func TestNamespaceAndClass(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("namespace Foo {\n  class Bar {\n  }\n}\n")},
		"C#", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<namespace")
	assert.Contains(t, doc, "<name>Foo</name>")
	assert.Contains(t, doc, "<class")
	assert.Contains(t, doc, "<name>Bar</name>")
}

func TestUsingDirective(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("using System;\nclass Foo {\n}\n")},
		"C#", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<using>")
	assert.Contains(t, doc, "System")
}

func TestMethodHeaderAndReturn(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("class Foo {\n  public int Get() {\n    return 1;\n  }\n}\n")},
		"C#", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<function")
	assert.Contains(t, doc, "<name>Get</name>")
	assert.Contains(t, doc, "<return>")
}

// TestDeclWithoutInitializer regression-guards the Next() terminator-
// buffering fix shared with langs/c and langs/java.
func TestDeclWithoutInitializer(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("class Foo {\n  int x;\n}\n")},
		"C#", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<decl_stmt>")
	assert.NotContains(t, doc, "<init>")
}
