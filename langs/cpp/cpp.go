// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpp implements parser.Grammar for C++: the C keyword table
// extended with class/namespace/template and the associated
// object-oriented constructs. It shares its statement/header buffering
// engine with langs/c but recognizes three additional constructs C does
// not have: class/struct bodies, namespace bodies, and a leading
// template parameter list.
package cpp

import (
	"github.com/corelang/srcml/langs/c"
	"github.com/corelang/srcml/lexer"
	"github.com/corelang/srcml/mode"
	"github.com/corelang/srcml/parser"
	"github.com/corelang/srcml/token"
	"github.com/corelang/srcml/tokenbuffer"
)

// Keywords is the C++ keyword set: C's keywords plus the class/template/
// exception/cast vocabulary.
var Keywords = unionKeywords(c.Keywords, map[string]bool{
	"class": true, "namespace": true, "template": true, "typename": true,
	"public": true, "private": true, "protected": true, "virtual": true,
	"friend": true, "explicit": true, "mutable": true, "operator": true,
	"new": true, "delete": true, "try": true, "catch": true, "throw": true,
	"using": true, "bool": true, "true": true, "false": true, "this": true,
	"const_cast": true, "static_cast": true, "dynamic_cast": true,
	"reinterpret_cast": true, "nullptr": true, "constexpr": true,
	"decltype": true, "noexcept": true, "override": true, "final": true,
})

// TypeSpecifiers extends c.TypeSpecifiers with C++'s class/bool keywords,
// used to tell a decl_stmt apart from an expr_stmt at statement level.
var TypeSpecifiers = unionKeywords(c.TypeSpecifiers, map[string]bool{
	"class": true, "bool": true, "typename": true,
})

func unionKeywords(sets ...map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// Grammar is the C++ parser.Grammar. It wraps a c.Grammar for the
// statement/declaration/preprocessor machinery that does not differ
// between the two languages, and adds its own thin recognizer in front
// of it for class/struct, namespace, and template headers.
type Grammar struct {
	inner *c.Grammar

	// buf accumulates tokens of a not-yet-classified header (the text
	// before the '{' or ';' that tells cpp whether this is a class,
	// namespace, or ordinary C construct).
	buf []token.Token

	// open records, per open brace depth, which wrapping element (if
	// any) must be closed when that brace closes: ElClass or
	// ElNamespace, or 0 for a plain block the inner C grammar owns.
	open []token.ElementType

	// templateOpen, when true, means a leading `template <...>` list is
	// held on tplToks: wrapHeader emits it as a complete template element
	// ahead of the next class/struct/namespace header, and a header cpp
	// does not wrap is preceded by it as plain text.
	templateOpen bool
	tplToks      []token.Token

	// pendingSemi is set after closing a class/struct body: C++ requires
	// (and a class/struct_decl's trailing ';' is not itself markup) the
	// next ';' to be consumed as plain trailing punctuation rather than
	// handed to the embedded C grammar, which would otherwise wrap it as
	// a spurious empty expr_stmt.
	pendingSemi bool
}

// New returns a fresh C++ Grammar instance.
func New() *Grammar {
	return &Grammar{inner: c.NewWith(Keywords, TypeSpecifiers, "C++", []string{"cpp", "cxx", "cc", "hpp", "hxx", "h++"})}
}

func (g *Grammar) Name() string              { return "C++" }
func (g *Grammar) Extensions() []string      { return g.inner.Extensions() }
func (g *Grammar) LexerConfig() lexer.Config { return g.inner.LexerConfig() }

func (g *Grammar) Open(stack *mode.Stack) { g.inner.Open(stack) }

// Next intercepts class/namespace/template headers, wherever they occur,
// before anything reaches the embedded C grammar; every other token
// passes straight through to it unchanged.
func (g *Grammar) Next(stack *mode.Stack, win *tokenbuffer.Window[token.Token], lit token.Token) ([]token.Token, error) {
	// Preprocessor lines are the embedded C grammar's concern: it runs
	// them in a transparent frame on the shared mode stack, so the only
	// state cpp needs here is the stack itself. Text buffered toward a
	// header is flushed raw first so output order matches input order.
	if stack.InTransparent() {
		return g.inner.Next(stack, win, lit)
	}
	if token.LiteralKind(lit.Type) == token.PreprocStart {
		out := g.buf
		g.buf = nil
		res, err := g.inner.Next(stack, win, lit)
		if err != nil {
			return nil, err
		}
		return append(out, res...), nil
	}

	if lit.Category == token.Literal && token.LiteralKind(lit.Type) == token.Punctuation && lit.Text == "}" {
		if n := len(g.open); n > 0 {
			if g.open[n-1] != 0 {
				return g.closeWrapped(stack, lit), nil
			}
			g.open = g.open[:n-1]
		}
		// A plain block's '}': the embedded C grammar owns its close.
		return g.flushPlain(stack, win, lit)
	}

	if g.pendingSemi {
		kind := token.LiteralKind(lit.Type)
		if kind == token.Whitespace || kind == token.Newline {
			return []token.Token{lit}, nil
		}
		g.pendingSemi = false
		if lit.Category == token.Literal && lit.Text == ";" {
			if spliceClassSemi(win, lit) {
				return nil, nil
			}
			return []token.Token{lit}, nil
		}
	}

	if len(g.buf) == 0 && isKW(lit, "template") {
		g.templateOpen = true
		g.tplToks = append(g.tplToks, lit)
		return nil, nil
	}
	// While a template parameter list is still open, everything through
	// its closing '>' accumulates on tplToks; the header that follows is
	// buffered fresh and wrapped once it resolves below.
	if g.templateOpen && len(g.buf) == 0 && !templateListClosed(g.tplToks) {
		g.tplToks = append(g.tplToks, lit)
		return nil, nil
	}

	if lit.Category == token.Literal && token.LiteralKind(lit.Type) == token.Punctuation && lit.Text != "{" && lit.Text != ";" {
		g.buf = append(g.buf, lit)
		return nil, nil
	}
	if lit.Category == token.Literal && token.LiteralKind(lit.Type) != token.Whitespace && token.LiteralKind(lit.Type) != token.Newline &&
		token.LiteralKind(lit.Type) != token.Punctuation {
		g.buf = append(g.buf, lit)
		return nil, nil
	}
	if lit.Category == token.Literal && (token.LiteralKind(lit.Type) == token.Whitespace || token.LiteralKind(lit.Type) == token.Newline) {
		g.buf = append(g.buf, lit)
		return nil, nil
	}

	// lit.Text is now "{" or ";": the header is complete.
	kind, nameIdx := classifyHeader(g.buf)
	if kind == 0 {
		if lit.Text == "{" {
			g.open = append(g.open, 0)
		}
		// A template list held ahead of this header goes out first, as
		// plain text, so output order matches input order.
		var tpl []token.Token
		if g.templateOpen {
			tpl = g.tplToks
			g.templateOpen = false
			g.tplToks = nil
		}
		res, err := g.flushPlain(stack, win, lit)
		if err != nil {
			return nil, err
		}
		return append(tpl, res...), nil
	}

	out := g.wrapHeader(kind, nameIdx, lit)
	if lit.Text == "{" {
		// A type or namespace body expects member declarations, not
		// expression statements; StatementStart on the frame is what
		// lets the embedded C grammar recognize methods inside it.
		stack.Push(mode.BlockContent | mode.StatementStart)
		g.open = append(g.open, kind)
	}
	return out, nil
}

// spliceClassSemi moves the ';' that trails a class/struct body inside
// the element, directly before the end tag that was already produced
// when the body's '}' closed. The end tag is still in the look-back
// window (the ';' is the very next significant token), so the revision
// happens in place before anything has reached the output.
func spliceClassSemi(win *tokenbuffer.Window[token.Token], semi token.Token) bool {
	if win == nil || win.Len() == 0 || win.Len() >= win.Cap() {
		return false
	}
	t, ok := win.PeekBack(0)
	if !ok || t.Category != token.End {
		return false
	}
	el := token.ElementType(t.Type)
	if el != token.ElClass && el != token.ElStruct {
		return false
	}
	win.InsertAt(1, semi)
	return true
}

// templateListClosed counts angle brackets by rune, not by token: the
// lexer merges ">>" into one operator, and a nested parameter list like
// vector<vector<int>> closes two levels with it.
func templateListClosed(toks []token.Token) bool {
	depth := 0
	seen := false
	for _, t := range toks {
		if t.Category != token.Literal {
			continue
		}
		for _, r := range t.Text {
			switch r {
			case '<':
				depth++
				seen = true
			case '>':
				depth--
			}
		}
	}
	return seen && depth == 0
}

func isKW(t token.Token, text string) bool {
	return t.Category == token.Literal && token.LiteralKind(t.Type) == token.Keyword && t.Text == text
}

// classifyHeader decides whether buf (everything since the last
// statement boundary) is a class/struct or namespace header, returning
// the wrapping element type (0 if neither, meaning "hand to the
// embedded C grammar instead") and the index of the name token.
func classifyHeader(buf []token.Token) (kind token.ElementType, nameIdx int) {
	for i, t := range buf {
		if t.Category != token.Literal {
			continue
		}
		switch {
		case isKW(t, "class"):
			return firstIdentAfter(buf, i, token.ElClass)
		case isKW(t, "struct"):
			return firstIdentAfter(buf, i, token.ElStruct)
		case isKW(t, "namespace"):
			return firstIdentAfter(buf, i, token.ElNamespace)
		}
	}
	return 0, -1
}

func firstIdentAfter(buf []token.Token, from int, kind token.ElementType) (token.ElementType, int) {
	for i := from + 1; i < len(buf); i++ {
		if buf[i].Category == token.Literal && token.LiteralKind(buf[i].Type) == token.Identifier {
			return kind, i
		}
	}
	return kind, -1
}

func (g *Grammar) wrapHeader(kind token.ElementType, nameIdx int, term token.Token) []token.Token {
	buf := g.buf
	g.buf = nil
	line, col := 0, 0
	if len(buf) > 0 {
		line, col = buf[0].Line, buf[0].Column
	}

	var tplOut []token.Token
	if g.templateOpen {
		last := g.tplToks[len(g.tplToks)-1]
		tplOut = append(tplOut, token.NewStart(token.Type(token.ElTemplate), g.tplToks[0].Line, g.tplToks[0].Column))
		tplOut = append(tplOut, wrap(token.ElTemplateParameter, g.tplToks)...)
		tplOut = append(tplOut, token.NewEnd(token.Type(token.ElTemplate), last.Line, last.Column))
		g.templateOpen = false
		g.tplToks = nil
	}

	// A header terminated by ';' is a forward declaration: the whole
	// element is the _decl variant, since there is no body to close later.
	el := kind
	if term.Text != "{" {
		switch kind {
		case token.ElClass:
			el = token.ElClassDecl
		case token.ElStruct:
			el = token.ElStructDecl
		}
	}

	out := append([]token.Token{}, tplOut...)
	out = append(out, token.NewStart(token.Type(el), line, col))
	if nameIdx >= 0 {
		out = append(out, buf[:nameIdx]...)
		out = append(out, wrap(token.ElName, buf[nameIdx:nameIdx+1])...)
		out = append(out, buf[nameIdx+1:]...)
	} else {
		out = append(out, buf...)
	}
	if term.Text == "{" {
		out = append(out, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
	} else {
		out = append(out, term, token.NewEnd(token.Type(el), term.Line, term.Column))
	}
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

func (g *Grammar) closeWrapped(stack *mode.Stack, lit token.Token) []token.Token {
	n := len(g.open)
	kind := g.open[n-1]
	g.open = g.open[:n-1]
	stack.Pop()
	g.pendingSemi = kind == token.ElClass || kind == token.ElStruct
	// Text buffered since the last statement boundary (usually trailing
	// whitespace) precedes the close.
	out := g.buf
	g.buf = nil
	return append(out,
		token.NewEnd(token.Type(token.ElBlock), lit.Line, lit.Column),
		lit,
		token.NewEnd(token.Type(kind), lit.Line, lit.Column),
	)
}

// flushPlain hands a non-class/namespace header to the embedded C
// grammar one token at a time, replaying the buffered tokens first so
// its own statement buffer sees exactly what it would have seen without
// cpp's header lookahead in front of it.
func (g *Grammar) flushPlain(stack *mode.Stack, win *tokenbuffer.Window[token.Token], term token.Token) ([]token.Token, error) {
	buf := g.buf
	g.buf = nil
	var out []token.Token
	for _, t := range buf {
		res, err := g.inner.Next(stack, win, t)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	res, err := g.inner.Next(stack, win, term)
	if err != nil {
		return nil, err
	}
	return append(out, res...), nil
}

// Finish drains cpp's own header lookahead and the embedded C grammar,
// then closes every construct still open, innermost first: wrapped
// class/namespace bodies are cpp's to close, plain blocks are the
// embedded grammar's.
func (g *Grammar) Finish(stack *mode.Stack, win *tokenbuffer.Window[token.Token]) []token.Token {
	var out []token.Token
	if g.templateOpen {
		out = append(out, g.tplToks...)
		g.templateOpen = false
		g.tplToks = nil
	}
	out = append(out, g.buf...)
	g.buf = nil
	out = append(out, g.inner.FlushPending(stack)...)

	for i := len(g.open) - 1; i >= 0; i-- {
		if kind := g.open[i]; kind != 0 {
			out = append(out,
				token.NewEnd(token.Type(token.ElBlock), 0, 0),
				token.NewEnd(token.Type(kind), 0, 0),
			)
			stack.Pop()
		} else {
			out = append(out, g.inner.CloseTop(stack)...)
		}
	}
	g.open = nil
	return out
}

var _ parser.Grammar = (*Grammar)(nil)
