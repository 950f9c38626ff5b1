// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml/charbuf"
	"github.com/corelang/srcml/lexer"
	"github.com/corelang/srcml/mode"
	"github.com/corelang/srcml/token"
	"github.com/corelang/srcml/tokenbuffer"
)

// passthroughGrammar is a minimal Grammar that returns every literal
// unchanged and records the paren/brace depth it observes on each call,
// enough to exercise StreamParser's bracket-counting independent of any
// real language's statement-buffering rules.
type passthroughGrammar struct {
	parenDepths []int
	braceDepths []int
}

func (g *passthroughGrammar) Name() string          { return "Test" }
func (g *passthroughGrammar) Extensions() []string  { return []string{"test"} }
func (g *passthroughGrammar) LexerConfig() lexer.Config {
	return lexer.Config{Keywords: map[string]bool{}, LineComment: "//", BlockComment: [2]string{"/*", "*/"}}
}
func (g *passthroughGrammar) Open(stack *mode.Stack) { stack.Push(0) }

func (g *passthroughGrammar) Next(stack *mode.Stack, win *tokenbuffer.Window[token.Token], lit token.Token) ([]token.Token, error) {
	g.parenDepths = append(g.parenDepths, stack.Top().ParenCount())
	g.braceDepths = append(g.braceDepths, stack.Top().BraceCount())
	return []token.Token{lit}, nil
}

func (g *passthroughGrammar) Finish(stack *mode.Stack, win *tokenbuffer.Window[token.Token]) []token.Token {
	return nil
}

func newParser(t *testing.T, src string, g Grammar) *StreamParser {
	t.Helper()
	b, err := charbuf.FromBytes([]byte(src), charbuf.Options{})
	require.NoError(t, err)
	scan := lexer.NewScanner(b)
	tl := lexer.New(scan, g.LexerConfig())
	return New(tl, g)
}

func TestStreamParserCountsBrackets(t *testing.T) {
	g := &passthroughGrammar{}
	p := newParser(t, "f(a)", g)

	for {
		_, ok, err := p.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	assert.Contains(t, g.parenDepths, 1)
	assert.Equal(t, 0, p.Mode().Top().ParenCount())
}

func TestStreamParserUnmatchedCloseParenRecordsError(t *testing.T) {
	g := &passthroughGrammar{}
	p := newParser(t, ")", g)

	for {
		_, ok, err := p.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	assert.Equal(t, 1, p.Errs.Len())
}

func TestStreamParserBraceDepthTracksBlocks(t *testing.T) {
	g := &passthroughGrammar{}
	p := newParser(t, "{x}", g)

	for {
		_, ok, err := p.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	assert.Contains(t, g.braceDepths, 1)
	assert.Equal(t, 0, p.Mode().Top().BraceCount())
}

// TestStreamParserWindowDelaysEmission: tokens are routed through the
// look-back window, so nothing shorter than the window's capacity comes
// out until end of input drains it -- and what drains is the full input
// in order.
func TestStreamParserWindowDelaysEmission(t *testing.T) {
	g := &passthroughGrammar{}
	p := newParser(t, "a b c", g)

	var all []token.Token
	sawEarly := false
	for {
		out, ok, err := p.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		if len(out) > 0 && len(all) == 0 && !p.Finished() {
			sawEarly = true
		}
		all = append(all, out...)
	}
	assert.False(t, sawEarly)

	var text string
	for _, tok := range all {
		text += tok.Text
	}
	assert.Equal(t, "a b c", text)
}
