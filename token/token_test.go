// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corelang/srcml/nsreg"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Literal", Literal.String())
	assert.Equal(t, "Start", Start.String())
	assert.Equal(t, "End", End.String())
	assert.Equal(t, "Empty", Empty.String())
	assert.Equal(t, "Category(?)", Category(99).String())
}

func TestNewConstructors(t *testing.T) {
	lit := NewLiteral(Type(Identifier), 1, 2, "x")
	assert.Equal(t, Literal, lit.Category)
	assert.Equal(t, "x", lit.Text)
	assert.False(t, lit.IsMarkup())

	start := NewStart(Type(ElFunction), 3, 4)
	assert.Equal(t, Start, start.Category)
	assert.True(t, start.IsMarkup())
	assert.Empty(t, start.Text)

	end := NewEnd(Type(ElFunction), 5, 6)
	assert.Equal(t, End, end.Category)
	assert.True(t, end.IsMarkup())

	empty := NewEmpty(Type(ElEscape), 7, 8)
	assert.Equal(t, Empty, empty.Category)
	assert.True(t, empty.IsMarkup())
}

func TestTokenString(t *testing.T) {
	lit := NewLiteral(Type(Identifier), 1, 1, "foo")
	assert.Contains(t, lit.String(), "foo")

	start := NewStart(Type(ElFunction), 1, 1)
	assert.Contains(t, start.String(), "Start")
}

func TestLiteralKindString(t *testing.T) {
	assert.Equal(t, "Identifier", Identifier.String())
	assert.Equal(t, "EscapeChar", EscapeChar.String())
	assert.Equal(t, "LiteralKind(?)", LiteralKind(-1).String())
}

func TestElementNameAndNamespace(t *testing.T) {
	name, ok := Name(ElFunction)
	assert.True(t, ok)
	assert.Equal(t, "function", name)
	assert.Equal(t, nsreg.Src, Namespace(ElFunction))

	assert.Equal(t, nsreg.CPP, Namespace(ElCppInclude))
	assert.Equal(t, nsreg.Err, Namespace(ElEscape))

	_, ok = Name(ElementType(-1))
	assert.False(t, ok)
}
