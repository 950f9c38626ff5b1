// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"github.com/corelang/srcml/token"
)

// Config is the per-language table a TokenLexer is parameterized by: its
// keyword set and its comment/quote delimiters. Each supported language
// package builds one of these and passes it to New.
type Config struct {
	Keywords map[string]bool

	LineComment  string    // e.g. "//"
	BlockComment [2]string // e.g. {"/*", "*/"}
	DocComment   [2]string // e.g. {"/**", "*/"}, checked before BlockComment
}

// TokenLexer lexes one language: a Scanner plus the rules that turn its
// runes into a stream of Literal tokens, classifying identifiers
// against Config.Keywords and recognizing the language's comment,
// quote, operator, and preprocessor conventions.
type TokenLexer struct {
	*Scanner
	cfg Config

	// midLine is true once a non-whitespace token has been produced on
	// the current line; a '#' is a preprocessor start only when it is
	// the first significant character of its line.
	midLine bool

	// inDirective is true between a PreprocStart token and the newline
	// that ends its line, which is delivered as PreprocEnd.
	inDirective bool
}

// New builds a TokenLexer over src configured by cfg.
func New(src *Scanner, cfg Config) *TokenLexer {
	return &TokenLexer{Scanner: src, cfg: cfg}
}

// Next returns the next Literal token, or ok=false at end of input. It
// never returns a markup token; the Grammar (parser.Grammar) layers
// markup recognition on top of this literal stream.
func (l *TokenLexer) Next() (tok token.Token, ok bool, err error) {
	tok, ok, err = l.lex()
	if err != nil || !ok {
		return tok, ok, err
	}
	switch token.LiteralKind(tok.Type) {
	case token.Whitespace:
	case token.Newline, token.PreprocEnd:
		l.midLine = false
	default:
		l.midLine = true
	}
	return tok, true, nil
}

func (l *TokenLexer) lex() (tok token.Token, ok bool, err error) {
	r, ok, err := l.Peek()
	if err != nil || !ok {
		return token.Token{}, ok, err
	}

	line, col := l.Line(), l.Col()

	switch {
	case IsWhiteSpace(r) && r != '\n':
		return l.lexWhitespace(line, col)
	case r == '\n':
		l.Scanner.Next()
		kind := token.Newline
		if l.inDirective {
			kind = token.PreprocEnd
			l.inDirective = false
		}
		return token.NewLiteral(token.Type(kind), line, col, "\n"), true, nil
	case IsC0Control(r):
		l.Scanner.Next()
		return token.NewLiteral(token.Type(token.EscapeChar), line, col, hexByte(r)), true, nil
	case IsLetter(r):
		return l.lexName(line, col)
	case IsDigit(r):
		return l.lexNumber(line, col)
	case r == '"' || r == '\'':
		return l.lexQuoted(r, line, col)
	case l.cfg.LineComment != "" && l.startsWith(l.cfg.LineComment):
		return l.lexLineComment(line, col)
	case l.cfg.DocComment[0] != "" && l.startsWith(l.cfg.DocComment[0]):
		return l.lexBlockComment(l.cfg.DocComment[0], l.cfg.DocComment[1], token.CommentDoc, line, col)
	case l.cfg.BlockComment[0] != "" && l.startsWith(l.cfg.BlockComment[0]):
		return l.lexBlockComment(l.cfg.BlockComment[0], l.cfg.BlockComment[1], token.CommentBlock, line, col)
	case r == '#' && !l.midLine:
		l.Scanner.Next()
		l.inDirective = true
		return token.NewLiteral(token.Type(token.PreprocStart), line, col, "#"), true, nil
	case isOperatorRune(r):
		return l.lexOperator(line, col)
	default:
		l.Scanner.Next()
		return token.NewLiteral(token.Type(token.Punctuation), line, col, string(r)), true, nil
	}
}

const hexDigits = "0123456789ABCDEF"

// hexByte renders a C0 control rune as the "0xHH" form the escape
// element's char attribute carries.
func hexByte(r rune) string {
	b := byte(r)
	return string([]byte{'0', 'x', hexDigits[b>>4], hexDigits[b&0xF]})
}

// operators lists the multi-character operators of the C family, longest
// first so lexOperator's greedy match never splits one.
var operators = []string{
	"<<=", ">>=", "->*", "...",
	"==", "!=", "<=", ">=", "&&", "||", "->", "++", "--",
	"<<", ">>", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "::",
}

func isOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~', '?', '.', ':':
		return true
	}
	return false
}

// lexOperator reads one operator: the longest multi-character match from
// the operators table, or the single rune.
func (l *TokenLexer) lexOperator(line, col int) (token.Token, bool, error) {
	for _, op := range operators {
		if l.startsWith(op) {
			for range op {
				l.Scanner.Next()
			}
			return token.NewLiteral(token.Type(token.Operator), line, col, op), true, nil
		}
	}
	r, _, err := l.Scanner.Next()
	if err != nil {
		return token.Token{}, false, err
	}
	return token.NewLiteral(token.Type(token.Operator), line, col, string(r)), true, nil
}

func (l *TokenLexer) lexWhitespace(line, col int) (token.Token, bool, error) {
	var text []rune
	for {
		r, ok, err := l.Peek()
		if err != nil {
			return token.Token{}, false, err
		}
		if !ok || !IsWhiteSpace(r) || r == '\n' {
			break
		}
		l.Scanner.Next()
		text = append(text, r)
	}
	return token.NewLiteral(token.Type(token.Whitespace), line, col, string(text)), true, nil
}

func (l *TokenLexer) lexName(line, col int) (token.Token, bool, error) {
	name, err := l.Name()
	if err != nil {
		return token.Token{}, false, err
	}
	kind := token.Identifier
	if l.cfg.Keywords[name] {
		kind = token.Keyword
	}
	return token.NewLiteral(token.Type(kind), line, col, name), true, nil
}

func (l *TokenLexer) lexNumber(line, col int) (token.Token, bool, error) {
	text, err := l.Number()
	if err != nil {
		return token.Token{}, false, err
	}
	kind := token.IntLiteral
	for _, c := range text {
		if c == '.' || c == 'e' || c == 'E' {
			kind = token.FloatLiteral
			break
		}
	}
	return token.NewLiteral(token.Type(kind), line, col, text), true, nil
}

func (l *TokenLexer) lexQuoted(delim rune, line, col int) (token.Token, bool, error) {
	l.Scanner.Next()
	text, err := l.Quoted(delim)
	if err != nil {
		return token.Token{}, false, err
	}
	kind := token.StringLiteral
	if delim == '\'' {
		kind = token.CharLiteral
	}
	return token.NewLiteral(token.Type(kind), line, col, text), true, nil
}

func (l *TokenLexer) lexLineComment(line, col int) (token.Token, bool, error) {
	for range l.cfg.LineComment {
		l.Scanner.Next()
	}
	rest, err := l.EOL()
	if err != nil {
		return token.Token{}, false, err
	}
	return token.NewLiteral(token.Type(token.CommentLine), line, col, l.cfg.LineComment+rest), true, nil
}

func (l *TokenLexer) lexBlockComment(start, end string, kind token.LiteralKind, line, col int) (token.Token, bool, error) {
	for range start {
		l.Scanner.Next()
	}
	rest, err := l.ReadUntil(end)
	if err != nil {
		return token.Token{}, false, err
	}
	return token.NewLiteral(token.Type(kind), line, col, start+rest), true, nil
}

// startsWith reports whether the upcoming input begins with s, without
// consuming anything, using the Scanner's multi-rune lookahead queue.
func (l *TokenLexer) startsWith(s string) bool {
	for i, want := range []rune(s) {
		r, have, err := l.PeekAt(i)
		if err != nil || !have || r != want {
			return false
		}
	}
	return true
}
