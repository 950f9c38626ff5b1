// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package c implements parser.Grammar for C: the keyword table,
// comment/quote conventions, and the statement/function/preprocessor
// recognition rules that turn a C token stream into srcML markup. It
// self-registers into srcml.Languages from its register.go shim.
package c

import (
	"github.com/corelang/srcml/lexer"
	"github.com/corelang/srcml/mode"
	"github.com/corelang/srcml/parser"
	"github.com/corelang/srcml/token"
	"github.com/corelang/srcml/tokenbuffer"
)

// Keywords is the C keyword set, shared by cpp (which extends it).
var Keywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "int": true, "long": true, "register": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true, "struct": true,
	"switch": true, "typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true, "inline": true, "restrict": true,
}

// TypeSpecifiers names the keywords that can start a declaration, used to
// tell a decl_stmt apart from an expr_stmt at statement level.
var TypeSpecifiers = map[string]bool{
	"char": true, "const": true, "double": true, "enum": true, "float": true,
	"int": true, "long": true, "short": true, "signed": true, "static": true,
	"struct": true, "typedef": true, "union": true, "unsigned": true,
	"void": true, "volatile": true, "extern": true, "register": true, "auto": true,
	"inline": true,
}

// Grammar is the C parser.Grammar. Each unit gets its own instance (via
// New) since it carries mutable per-unit statement-buffering state.
type Grammar struct {
	kw    map[string]bool
	types map[string]bool

	name string
	exts []string
	cfg  lexer.Config

	buf []token.Token // buffered tokens of the statement/header in progress

	// typeRun is true while every significant token buffered so far is a
	// type specifier: the statement is still in its leading type run, and
	// each specifier bumps the mode frame's type-token counter.
	typeRun bool

	// blockFunc records, per open brace depth, whether that block is a
	// function body (so the matching '}' also closes <function>).
	blockFunc []bool
}

// New returns a fresh C Grammar instance.
func New() *Grammar {
	return NewWith(Keywords, TypeSpecifiers, "C", []string{"c", "h"})
}

// NewWith builds a Grammar for a C-family dialect with its own keyword
// set, declaration-starting type-specifier set, name, and extensions --
// used by langs/cpp to extend the C rules rather than duplicate them.
func NewWith(kw, types map[string]bool, name string, exts []string) *Grammar {
	g := &Grammar{kw: kw, types: types, name: name, exts: exts, typeRun: true}
	g.cfg = lexer.Config{
		Keywords:     kw,
		LineComment:  "//",
		BlockComment: [2]string{"/*", "*/"},
	}
	return g
}

func (g *Grammar) Name() string              { return g.name }
func (g *Grammar) Extensions() []string      { return g.exts }
func (g *Grammar) LexerConfig() lexer.Config { return g.cfg }

func (g *Grammar) Open(stack *mode.Stack) {
	stack.Push(0)
}

// Next implements the statement/header buffering state machine described
// in the package doc comment. It is heuristic, not a full C grammar: it
// covers function definitions/declarations, simple declarations,
// `return` statements, plain expression statements, and `#`-directive
// lines; the long tail of detailed C grammar productions is left to the
// generic statement fallback.
func (g *Grammar) Next(stack *mode.Stack, win *tokenbuffer.Window[token.Token], lit token.Token) ([]token.Token, error) {
	if stack.InTransparent() {
		return g.stepPreproc(stack, lit)
	}

	if token.LiteralKind(lit.Type) == token.PreprocStart {
		// A directive can interrupt a buffered statement mid-construct;
		// the pending text is passed through raw so output order matches
		// input order, and the directive runs in its own transparent
		// frame so the enclosing counters stay visible and untouched.
		lead := g.buf
		g.buf = nil
		g.resetStatement(stack)
		stack.Push(mode.PreprocessorLine)
		out, err := g.stepPreproc(stack, lit)
		if err != nil {
			return nil, err
		}
		return append(lead, out...), nil
	}

	if lit.Category == token.Literal && token.LiteralKind(lit.Type) == token.Punctuation && lit.Text == "}" {
		return g.closeBrace(stack, lit), nil
	}

	if isTerminator(lit) {
		return g.flushStatement(stack, lit), nil
	}
	g.bufferToken(stack, lit)
	return nil, nil
}

// bufferToken appends lit to the statement buffer, bumping the current
// frame's type-token counter while the statement is still in its leading
// run of type specifiers.
func (g *Grammar) bufferToken(stack *mode.Stack, lit token.Token) {
	k := token.LiteralKind(lit.Type)
	if k != token.Whitespace && k != token.Newline {
		if g.typeRun && (k == token.Keyword || k == token.Identifier) && g.types[lit.Text] {
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
	if lit.Category != token.Literal {
		return false
	}
	k := token.LiteralKind(lit.Type)
	return (k == token.Punctuation && (lit.Text == ";" || lit.Text == "{"))
}

// stepPreproc buffers one directive line while its transparent frame is
// on the stack; the PreprocEnd newline pops the frame and flushes the
// wrapped element.
func (g *Grammar) stepPreproc(stack *mode.Stack, lit token.Token) ([]token.Token, error) {
	if token.LiteralKind(lit.Type) == token.PreprocEnd {
		if _, err := stack.EndCurrent(mode.PreprocessorLine); err != nil {
			return nil, err
		}
		return append(g.wrapDirective(), lit), nil
	}
	g.buf = append(g.buf, lit)
	return nil, nil
}

// wrapDirective wraps the buffered directive line in its cpp element,
// classified by the first word after the '#' (a keyword for directives
// like #if and #else, an identifier for the rest).
func (g *Grammar) wrapDirective() []token.Token {
	el := token.ElCppDirective
	for _, t := range g.buf {
		k := token.LiteralKind(t.Type)
		if t.Category == token.Literal && (k == token.Identifier || k == token.Keyword) {
			el = directiveElement(t.Text)
			break
		}
	}
	last := g.buf[len(g.buf)-1]
	out := make([]token.Token, 0, len(g.buf)+2)
	out = append(out, token.NewStart(token.Type(el), firstLine(g.buf), firstCol(g.buf)))
	out = append(out, g.buf...)
	out = append(out, token.NewEnd(token.Type(el), last.Line, last.Column))
	g.buf = nil
	return out
}

func directiveElement(kw string) token.ElementType {
	switch kw {
	case "include":
		return token.ElCppInclude
	case "define":
		return token.ElCppDefine
	case "undef":
		return token.ElCppUndef
	case "if":
		return token.ElCppIf
	case "ifdef":
		return token.ElCppIfdef
	case "ifndef":
		return token.ElCppIfndef
	case "elif":
		return token.ElCppElif
	case "else":
		return token.ElCppElse
	case "endif":
		return token.ElCppEndif
	case "pragma":
		return token.ElCppPragma
	case "error":
		return token.ElCppError
	case "warning":
		return token.ElCppWarning
	case "line":
		return token.ElCppLine
	default:
		return token.ElCppDirective
	}
}

// flushStatement classifies the buffered statement/header by the
// terminator that just arrived and emits its wrapped markup. Leading
// whitespace/newline tokens carried over from the previous statement's
// terminator are split off first and passed through unwrapped, so
// classification (and every wrap*'s firstLine/firstCol position) always
// looks at the statement's first significant token, not at incidental
// inter-statement formatting.
func (g *Grammar) flushStatement(stack *mode.Stack, term token.Token) []token.Token {
	lead, buf := splitLeading(g.buf)
	g.buf = nil

	// isDecl reads the frame's type-token counter the leading type run
	// bumped; both are consumed here, before any new frame is pushed.
	isDecl := stack.Top().TypeCount() > 0
	g.resetStatement(stack)

	if len(buf) == 0 {
		if term.Text == "{" {
			stack.Push(mode.BlockContent)
			g.blockFunc = append(g.blockFunc, false)
			return append(lead, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
		}
		return append(lead, term)
	}

	if isKeyword(buf[0], "return") {
		return append(lead, g.wrapReturn(buf, term)...)
	}

	// A '(' only marks a declarator's parameter list when it comes before
	// any '=': in `int x = f(1);` the paren belongs to the initializer.
	hasParen := false
	for _, t := range buf {
		if t.Category == token.Literal && t.Text == "=" {
			break
		}
		if t.Category == token.Literal && t.Text == "(" {
			hasParen = true
			break
		}
	}
	// A parenthesized header is a function only when it does not open
	// with a control-flow keyword (`if (x) {` is a statement whose block
	// the generic '{' branch below owns) and the enclosing mode allows
	// one: file scope, or a type/namespace body (which is marked
	// StatementStart on top of BlockContent), but not a statement block.
	ctrl := isControlKeyword(buf[0])
	fnScope := !stack.In(mode.BlockContent) || stack.In(mode.BlockContent|mode.StatementStart)

	if hasParen && !ctrl && fnScope && term.Text == "{" {
		stack.Push(mode.BlockContent)
		g.blockFunc = append(g.blockFunc, true)
		return append(lead, g.wrapFunctionHeader(buf, token.ElFunction, term, true)...)
	}
	if hasParen && !ctrl && fnScope && isDecl && term.Text == ";" {
		return append(lead, g.wrapFunctionHeader(buf, token.ElFunctionDecl, term, false)...)
	}
	if term.Text == "{" {
		stack.Push(mode.BlockContent)
		g.blockFunc = append(g.blockFunc, false)
		out := append(lead, buf...)
		return append(out, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
	}

	if isDecl {
		return append(lead, g.wrapDeclStmt(buf, term)...)
	}
	return append(lead, g.wrapExprStmt(buf, term)...)
}

// splitLeading splits off buf's leading run of whitespace/newline tokens
// (carried over from the previous statement's terminator) from the first
// significant token onward.
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
	// Pending text (usually trailing whitespace before the '}') must
	// reach the output before the close tokens do.
	out := g.buf
	g.buf = nil
	g.resetStatement(stack)

	n := len(g.blockFunc)
	if n == 0 {
		// Stray '}' with no open block: pass it through as plain text.
		return append(out, lit)
	}
	isFunc := g.blockFunc[n-1]
	g.blockFunc = g.blockFunc[:n-1]
	stack.Pop()
	out = append(out, token.NewEnd(token.Type(token.ElBlock), lit.Line, lit.Column), lit)
	if isFunc {
		out = append(out, token.NewEnd(token.Type(token.ElFunction), lit.Line, lit.Column))
	}
	return out
}

// allSpace reports whether every token in toks is whitespace or newline.
func allSpace(toks []token.Token) bool {
	for _, t := range toks {
		k := token.LiteralKind(t.Type)
		if k != token.Whitespace && k != token.Newline {
			return false
		}
	}
	return true
}

// FlushPending returns whatever the grammar is still buffering, as raw
// passthrough text (or a wrapped directive, popping its transparent
// frame, if input ended mid-directive). Exported so langs/cpp can drain
// the embedded C grammar at end of input.
func (g *Grammar) FlushPending(stack *mode.Stack) []token.Token {
	if stack.InTransparent() {
		stack.Pop()
		out := g.wrapDirective()
		g.buf = nil
		return out
	}
	out := g.buf
	g.buf = nil
	return out
}

// CloseTop closes the innermost open block, emitting its end tokens and
// popping its mode frame. Exported for langs/cpp, whose own wrapped
// constructs interleave with the C grammar's blocks.
func (g *Grammar) CloseTop(stack *mode.Stack) []token.Token {
	n := len(g.blockFunc)
	if n == 0 {
		return nil
	}
	isFunc := g.blockFunc[n-1]
	g.blockFunc = g.blockFunc[:n-1]
	stack.Pop()
	out := []token.Token{token.NewEnd(token.Type(token.ElBlock), 0, 0)}
	if isFunc {
		out = append(out, token.NewEnd(token.Type(token.ElFunction), 0, 0))
	}
	return out
}

func (g *Grammar) Finish(stack *mode.Stack, win *tokenbuffer.Window[token.Token]) []token.Token {
	out := g.FlushPending(stack)
	for len(g.blockFunc) > 0 {
		out = append(out, g.CloseTop(stack)...)
	}
	return out
}

// controlKeywords are the statement keywords whose parenthesized
// condition must not be mistaken for a function header.
var controlKeywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true,
	"switch": true, "do": true,
}

func isControlKeyword(t token.Token) bool {
	return t.Category == token.Literal && token.LiteralKind(t.Type) == token.Keyword && controlKeywords[t.Text]
}

func isKeyword(t token.Token, text string) bool {
	return t.Category == token.Literal && token.LiteralKind(t.Type) == token.Keyword && t.Text == text
}

func firstLine(buf []token.Token) int {
	if len(buf) == 0 {
		return 0
	}
	return buf[0].Line
}

func firstCol(buf []token.Token) int {
	if len(buf) == 0 {
		return 0
	}
	return buf[0].Column
}

// splitDeclarator finds the declarator name: the last identifier before
// any '(' / '=' / the terminator, with everything before it as the type.
func splitDeclarator(buf []token.Token) (typeToks, nameToks, rest []token.Token) {
	nameIdx := -1
	for i, t := range buf {
		if t.Category == token.Literal && token.LiteralKind(t.Type) == token.Identifier {
			nameIdx = i
		}
		if t.Category == token.Literal && t.Text == "(" {
			break
		}
		if t.Category == token.Literal && t.Text == "=" {
			break
		}
	}
	if nameIdx < 0 {
		return buf, nil, nil
	}
	return buf[:nameIdx], buf[nameIdx : nameIdx+1], buf[nameIdx+1:]
}

func (g *Grammar) wrapFunctionHeader(buf []token.Token, el token.ElementType, term token.Token, withBlock bool) []token.Token {
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

	line, col := firstLine(buf), firstCol(buf)
	out := []token.Token{token.NewStart(token.Type(el), line, col)}
	out = append(out, wrapTokens(token.ElType, typeToks)...)
	out = append(out, wrapTokens(token.ElName, nameToks)...)
	out = append(out, between...)
	out = append(out, wrapParamList(params)...)
	if el == token.ElFunctionDecl {
		out = append(out, term)
		out = append(out, token.NewEnd(token.Type(el), term.Line, term.Column))
	} else {
		out = append(out, token.NewStart(token.Type(token.ElBlock), term.Line, term.Column), term)
	}
	return out
}

func wrapTokens(el token.ElementType, toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return nil
	}
	out := make([]token.Token, 0, len(toks)+2)
	out = append(out, token.NewStart(token.Type(el), firstLine(toks), firstCol(toks)))
	out = append(out, toks...)
	last := toks[len(toks)-1]
	out = append(out, token.NewEnd(token.Type(el), last.Line, last.Column))
	return out
}

func wrapParamList(toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return nil
	}
	out := []token.Token{token.NewStart(token.Type(token.ElParameterList), firstLine(toks), firstCol(toks))}
	var cur []token.Token
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if allSpace(cur) {
			out = append(out, cur...)
		} else {
			out = append(out, wrapTokens(token.ElParameter, cur)...)
		}
		cur = nil
	}
	for _, t := range toks {
		if t.Category == token.Literal && (t.Text == "(" || t.Text == ")") {
			flush()
			out = append(out, t)
			continue
		}
		if t.Category == token.Literal && t.Text == "," {
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

func (g *Grammar) wrapDeclStmt(buf []token.Token, term token.Token) []token.Token {
	typeToks, nameToks, rest := splitDeclarator(buf)
	line, col := firstLine(buf), firstCol(buf)
	out := []token.Token{
		token.NewStart(token.Type(token.ElDeclStmt), line, col),
		token.NewStart(token.Type(token.ElDecl), line, col),
	}
	out = append(out, wrapTokens(token.ElType, typeToks)...)
	out = append(out, wrapTokens(token.ElName, nameToks)...)
	if len(rest) > 0 {
		out = append(out, wrapTokens(token.ElInit, rest)...)
	}
	out = append(out, token.NewEnd(token.Type(token.ElDecl), term.Line, term.Column))
	out = append(out, term)
	out = append(out, token.NewEnd(token.Type(token.ElDeclStmt), term.Line, term.Column))
	return out
}

func (g *Grammar) wrapExprStmt(buf []token.Token, term token.Token) []token.Token {
	line, col := firstLine(buf), firstCol(buf)
	out := []token.Token{token.NewStart(token.Type(token.ElExprStmt), line, col)}
	out = append(out, wrapTokens(token.ElExpr, buf)...)
	out = append(out, term)
	out = append(out, token.NewEnd(token.Type(token.ElExprStmt), term.Line, term.Column))
	return out
}

func (g *Grammar) wrapReturn(buf []token.Token, term token.Token) []token.Token {
	line, col := firstLine(buf), firstCol(buf)
	kw := buf[0]
	rest := buf[1:]
	out := []token.Token{token.NewStart(token.Type(token.ElReturn), line, col), kw}
	out = append(out, wrapTokens(token.ElExpr, rest)...)
	out = append(out, term)
	out = append(out, token.NewEnd(token.Type(token.ElReturn), term.Line, term.Column))
	return out
}

var _ parser.Grammar = (*Grammar)(nil)
