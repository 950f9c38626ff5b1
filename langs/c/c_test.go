// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package c_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml"
	_ "github.com/corelang/srcml/langs/c"
)

func TestFunctionDefinition(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int main() {\n  return 0;\n}\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<function")
	assert.Contains(t, doc, "<type>")
	assert.Contains(t, doc, "<name>main</name>")
	assert.Contains(t, doc, "<parameter_list>")
	assert.Contains(t, doc, "<return>")
	assert.Contains(t, doc, "</function>")
}

func TestFunctionDeclaration(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int add(int a, int b);\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<function_decl")
	assert.Contains(t, doc, "<name>add</name>")
	assert.Contains(t, doc, "<parameter>")
	assert.Contains(t, doc, "</function_decl>")
	assert.NotContains(t, doc, "<block>")
}

// TestDeclStmtWithoutInitializer regression-guards the fix to flushStatement:
// a declaration with no '(' or '=' used to swallow its own terminator into
// a spurious <init>, duplicating the ';' in the output.
func TestDeclStmtWithoutInitializer(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int main() {\n  int x;\n}\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<decl_stmt>")
	assert.Contains(t, doc, "<decl>")
	assert.Contains(t, doc, "<name>x</name>")
	assert.NotContains(t, doc, "<init>")
	assert.Equal(t, 1, strings.Count(doc, ";"))
}

func TestDeclStmtWithInitializer(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int main() {\n  int x = 1;\n}\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<decl_stmt>")
	assert.Contains(t, doc, "<init>")
}

func TestExprStmt(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int main() {\n  x = 1;\n}\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<expr_stmt>")
	assert.Contains(t, doc, "<expr>")
}

// TestReturnAfterOtherStatement regression-guards the fix to flushStatement:
// a 'return' not immediately following '{' used to fail the keyword check
// because a leading whitespace/newline token carried over from the prior
// statement's terminator sat at buf[0] instead of the 'return' token.
func TestReturnAfterOtherStatement(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int main() {\n  int x;\n  return x;\n}\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<return>")
	assert.Contains(t, doc, "<name>x</name>")
}

func TestPreprocessorDirectiveLine(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("#define MAX 100\nint main() {}\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<cpp:define>")
	assert.Contains(t, doc, "MAX")
}

func TestNameAndExtensions(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	u, err := a.TranslateSeparate(srcml.Source{Bytes: []byte("int main() {}\n")}, "C", &out)
	require.NoError(t, err)
	assert.Equal(t, "C", u.Language())
}

// TestConditionalDirectives: #if/#endif classify off the keyword after
// the '#', and both lines wrap as their own cpp elements.
func TestConditionalDirectives(t *testing.T) {
	a := srcml.CreateArchive(0)
	var out bytes.Buffer
	_, err := a.TranslateSeparate(
		srcml.Source{Bytes: []byte("#if A\nint x;\n#endif\n")}, "C", &out)
	require.NoError(t, err)

	doc := out.String()
	assert.Contains(t, doc, "<cpp:if>")
	assert.Contains(t, doc, "<cpp:endif>")
	assert.Contains(t, doc, "<decl_stmt>")
}
