// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package java implements parser.Grammar for Java: thinner than
// langs/c and langs/cpp -- enough keywords plus class/package/import
// recognition to round-trip simple programs, built on the same
// statement-buffering shape as langs/c.
package java

import (
	"github.com/corelang/srcml/lexer"
	"github.com/corelang/srcml/mode"
	"github.com/corelang/srcml/parser"
	"github.com/corelang/srcml/token"
	"github.com/corelang/srcml/tokenbuffer"
)

// Keywords is the Java keyword set.
var Keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true,
}

// TypeSpecifiers names the keywords that can start a declaration.
var TypeSpecifiers = map[string]bool{
	"boolean": true, "byte": true, "char": true, "double": true, "final": true,
	"float": true, "int": true, "long": true, "private": true, "protected": true,
	"public": true, "short": true, "static": true, "void": true, "abstract": true,
}

// Grammar is the Java parser.Grammar. One instance per unit.
type Grammar struct {
	cfg lexer.Config

	buf       []token.Token
	blockKind []token.ElementType // 0 for a plain block, ElClass/ElEnum/ElFunction otherwise

	// typeRun is true while every significant token buffered so far is a
	// type specifier; each one bumps the frame's type-token counter.
	typeRun bool
}

// New returns a fresh Java Grammar instance.
func New() *Grammar {
	g := &Grammar{typeRun: true}
	g.cfg = lexer.Config{
		Keywords:     Keywords,
		LineComment:  "//",
		BlockComment: [2]string{"/*", "*/"},
		DocComment:   [2]string{"/**", "*/"},
	}
	return g
}

func (g *Grammar) Name() string              { return "Java" }
func (g *Grammar) Extensions() []string      { return []string{"java"} }
func (g *Grammar) LexerConfig() lexer.Config { return g.cfg }

func (g *Grammar) Open(stack *mode.Stack) { stack.Push(0) }

func (g *Grammar) Next(stack *mode.Stack, win *tokenbuffer.Window[token.Token], lit token.Token) ([]token.Token, error) {
	if lit.Category == token.Literal && lit.Text == "}" {
		return g.closeBrace(stack, lit), nil
	}

	if isTerminator(lit) {
		return g.flush(stack, lit), nil
	}
	g.bufferToken(stack, lit)
	return nil, nil
}

// bufferToken appends lit to the statement buffer, bumping the current
// frame's type-token counter while the statement is still in its
// leading run of type specifiers.
func (g *Grammar) bufferToken(stack *mode.Stack, lit token.Token) {
	k := token.LiteralKind(lit.Type)
	if k != token.Whitespace && k != token.Newline {
		if g.typeRun && (k == token.Keyword || k == token.Identifier) && TypeSpecifiers[lit.Text] {
			stack.IncType()
		} else {
			g.typeRun = false
		}
	}
	g.buf = append(g.buf, lit)
}

// resetStatement drains the current frame's type-token count and starts
// a fresh leading type run for the next statement.
func (g *Grammar) resetStatement(stack *mode.Stack) {
	for stack.Top().TypeCount() > 0 {
		stack.DecType()
	}
	g.typeRun = true
}

func isTerminator(lit token.Token) bool {
	return lit.Category == token.Literal && (lit.Text == ";" || lit.Text == "{")
}

func (g *Grammar) flush(stack *mode.Stack, term token.Token) []token.Token {
	lead, buf := splitLeading(g.buf)
	g.buf = nil

	isDecl := stack.Top().TypeCount() > 0
	g.resetStatement(stack)

	if len(buf) == 0 {
		if term.Text == "{" {
			stack.Push(mode.BlockContent)
			g.blockKind = append(g.blockKind, 0)
			return append(lead, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
		}
		return append(lead, term)
	}

	if kind, nameIdx := classHeader(buf); kind != 0 {
		out := wrapClass(kind, buf, nameIdx, term)
		if term.Text == "{" {
			stack.Push(mode.BlockContent | mode.StatementStart)
			g.blockKind = append(g.blockKind, kind)
		}
		return append(lead, out...)
	}

	if hasKeyword(buf, "import") {
		return append(lead, wrapSimple(token.ElImport, buf, term)...)
	}
	if hasKeyword(buf, "package") {
		return append(lead, wrapSimple(token.ElPackage, buf, term)...)
	}
	if hasKeyword(buf, "return") {
		return append(lead, wrapKeywordExpr(token.ElReturn, buf, term)...)
	}

	if hasParen(buf) && !isControl(buf[0]) && term.Text == "{" {
		out := wrapMethodHeader(buf, term)
		stack.Push(mode.BlockContent)
		g.blockKind = append(g.blockKind, token.ElFunction)
		return append(lead, out...)
	}

	if term.Text == "{" {
		stack.Push(mode.BlockContent)
		g.blockKind = append(g.blockKind, 0)
		out := append(lead, buf...)
		return append(out, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
	}

	if isDecl {
		return append(lead, wrapDecl(buf, term)...)
	}
	return append(lead, wrapExprStmt(buf, term)...)
}

// splitLeading splits off buf's leading run of whitespace/newline tokens
// so classification always looks at the statement's first significant
// token, not at inter-statement formatting.
func splitLeading(buf []token.Token) (lead, rest []token.Token) {
	i := 0
	for i < len(buf) {
		k := token.LiteralKind(buf[i].Type)
		if k != token.Whitespace && k != token.Newline {
			break
		}
		i++
	}
	return buf[:i], buf[i:]
}

func (g *Grammar) closeBrace(stack *mode.Stack, lit token.Token) []token.Token {
	out := g.buf
	g.buf = nil
	g.resetStatement(stack)

	n := len(g.blockKind)
	if n == 0 {
		return append(out, lit)
	}
	kind := g.blockKind[n-1]
	g.blockKind = g.blockKind[:n-1]
	stack.Pop()
	out = append(out, token.NewEnd(token.Type(token.ElBlock), lit.Line, lit.Column), lit)
	if kind != 0 {
		out = append(out, token.NewEnd(token.Type(kind), lit.Line, lit.Column))
	}
	return out
}

func (g *Grammar) Finish(stack *mode.Stack, win *tokenbuffer.Window[token.Token]) []token.Token {
	out := g.buf
	g.buf = nil
	for i := len(g.blockKind) - 1; i >= 0; i-- {
		out = append(out, token.NewEnd(token.Type(token.ElBlock), 0, 0))
		if kind := g.blockKind[i]; kind != 0 {
			out = append(out, token.NewEnd(token.Type(kind), 0, 0))
		}
		stack.Pop()
	}
	g.blockKind = nil
	return out
}

// controlKeywords are the statement keywords whose parenthesized
// condition must not be mistaken for a method header.
var controlKeywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true, "switch": true,
	"do": true, "try": true, "catch": true, "finally": true, "synchronized": true,
}

func isControl(t token.Token) bool {
	return t.Category == token.Literal && token.LiteralKind(t.Type) == token.Keyword && controlKeywords[t.Text]
}

func hasKeyword(buf []token.Token, kw string) bool {
	for _, t := range buf {
		if t.Category == token.Literal && token.LiteralKind(t.Type) == token.Keyword && t.Text == kw {
			return true
		}
	}
	return false
}

func hasParen(buf []token.Token) bool {
	for _, t := range buf {
		if t.Category == token.Literal && t.Text == "(" {
			return true
		}
	}
	return false
}

func classHeader(buf []token.Token) (token.ElementType, int) {
	for i, t := range buf {
		if t.Category != token.Literal || token.LiteralKind(t.Type) != token.Keyword {
			continue
		}
		if t.Text == "class" || t.Text == "interface" || t.Text == "enum" {
			kind := token.ElClass
			if t.Text == "interface" {
				kind = token.ElClass // srcML has no distinct interface element in this subset
			}
			if t.Text == "enum" {
				kind = token.ElEnum
			}
			for j := i + 1; j < len(buf); j++ {
				if buf[j].Category == token.Literal && token.LiteralKind(buf[j].Type) == token.Identifier {
					return kind, j
				}
			}
			return kind, -1
		}
	}
	return 0, -1
}

func wrapClass(kind token.ElementType, buf []token.Token, nameIdx int, term token.Token) []token.Token {
	line, col := pos(buf)
	out := []token.Token{token.NewStart(token.Type(kind), line, col)}
	if nameIdx >= 0 {
		out = append(out, buf[:nameIdx]...)
		out = append(out, wrap(token.ElName, buf[nameIdx:nameIdx+1])...)
		out = append(out, buf[nameIdx+1:]...)
	} else {
		out = append(out, buf...)
	}
	if term.Text != "{" {
		out = append(out, term, token.NewEnd(token.Type(kind), term.Line, term.Column))
		return out
	}
	out = append(out, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
	return out
}

func wrapSimple(el token.ElementType, buf []token.Token, term token.Token) []token.Token {
	line, col := pos(buf)
	out := []token.Token{token.NewStart(token.Type(el), line, col)}
	out = append(out, buf...)
	out = append(out, term, token.NewEnd(token.Type(el), term.Line, term.Column))
	return out
}

func wrapKeywordExpr(el token.ElementType, buf []token.Token, term token.Token) []token.Token {
	line, col := pos(buf)
	out := []token.Token{token.NewStart(token.Type(el), line, col), buf[0]}
	out = append(out, wrap(token.ElExpr, buf[1:])...)
	out = append(out, term, token.NewEnd(token.Type(el), term.Line, term.Column))
	return out
}

func wrapMethodHeader(buf []token.Token, term token.Token) []token.Token {
	typeToks, nameToks, rest := splitDeclarator(buf)
	parenIdx := -1
	for i, t := range rest {
		if t.Category == token.Literal && t.Text == "(" {
			parenIdx = i
			break
		}
	}
	var between, params []token.Token
	if parenIdx >= 0 {
		between, params = rest[:parenIdx], rest[parenIdx:]
	} else {
		params = rest
	}
	line, col := pos(buf)
	out := []token.Token{token.NewStart(token.Type(token.ElFunction), line, col)}
	out = append(out, wrap(token.ElType, typeToks)...)
	out = append(out, wrap(token.ElName, nameToks)...)
	out = append(out, between...)
	out = append(out, wrapParamList(params)...)
	out = append(out, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
	return out
}

func wrapDecl(buf []token.Token, term token.Token) []token.Token {
	typeToks, nameToks, rest := splitDeclarator(buf)
	line, col := pos(buf)
	out := []token.Token{
		token.NewStart(token.Type(token.ElDeclStmt), line, col),
		token.NewStart(token.Type(token.ElDecl), line, col),
	}
	out = append(out, wrap(token.ElType, typeToks)...)
	out = append(out, wrap(token.ElName, nameToks)...)
	if len(rest) > 0 {
		out = append(out, wrap(token.ElInit, rest)...)
	}
	out = append(out, token.NewEnd(token.Type(token.ElDecl), term.Line, term.Column))
	out = append(out, term, token.NewEnd(token.Type(token.ElDeclStmt), term.Line, term.Column))
	return out
}

func wrapExprStmt(buf []token.Token, term token.Token) []token.Token {
	line, col := pos(buf)
	out := []token.Token{token.NewStart(token.Type(token.ElExprStmt), line, col)}
	out = append(out, wrap(token.ElExpr, buf)...)
	out = append(out, term, token.NewEnd(token.Type(token.ElExprStmt), term.Line, term.Column))
	return out
}

func splitDeclarator(buf []token.Token) (typeToks, nameToks, rest []token.Token) {
	nameIdx := -1
	for i, t := range buf {
		if t.Category == token.Literal && token.LiteralKind(t.Type) == token.Identifier {
			nameIdx = i
		}
		if t.Category == token.Literal && (t.Text == "(" || t.Text == "=") {
			break
		}
	}
	if nameIdx < 0 {
		return buf, nil, nil
	}
	return buf[:nameIdx], buf[nameIdx : nameIdx+1], buf[nameIdx+1:]
}

func wrapParamList(toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return nil
	}
	out := []token.Token{token.NewStart(token.Type(token.ElParameterList), toks[0].Line, toks[0].Column)}
	var cur []token.Token
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if allSpace(cur) {
			out = append(out, cur...)
		} else {
			out = append(out, wrap(token.ElParameter, cur)...)
		}
		cur = nil
	}
	for _, t := range toks {
		if t.Category == token.Literal && (t.Text == "(" || t.Text == ")" || t.Text == ",") {
			flush()
			out = append(out, t)
			continue
		}
		cur = append(cur, t)
	}
	flush()
	last := toks[len(toks)-1]
	out = append(out, token.NewEnd(token.Type(token.ElParameterList), last.Line, last.Column))
	return out
}

func wrap(el token.ElementType, toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return nil
	}
	out := make([]token.Token, 0, len(toks)+2)
	out = append(out, token.NewStart(token.Type(el), toks[0].Line, toks[0].Column))
	out = append(out, toks...)
	last := toks[len(toks)-1]
	out = append(out, token.NewEnd(token.Type(el), last.Line, last.Column))
	return out
}

func pos(buf []token.Token) (int, int) {
	if len(buf) == 0 {
		return 0, 0
	}
	return buf[0].Line, buf[0].Column
}

func allSpace(toks []token.Token) bool {
	for _, t := range toks {
		k := token.LiteralKind(t.Type)
		if k != token.Whitespace && k != token.Newline {
			return false
		}
	}
	return true
}

var _ parser.Grammar = (*Grammar)(nil)
