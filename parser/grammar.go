// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the mode-stack-driven pass that turns a
// TokenLexer's Literal token stream into the merged Literal+markup
// stream xmlout consumes. The per-language grammar rules (which keywords
// open a function, which punctuation opens a block) are supplied by a
// Grammar implementation; StreamParser itself owns the language-general
// bracket/brace counting, the mode push/pop bookkeeping, and the
// look-back window every produced token passes through: a token reaches
// the caller only once it has been evicted from (or drained out of) the
// window, so grammars can revise recent tokens in place until then.
package parser

import (
	"github.com/corelang/srcml/errs"
	"github.com/corelang/srcml/lexer"
	"github.com/corelang/srcml/mode"
	"github.com/corelang/srcml/token"
	"github.com/corelang/srcml/tokenbuffer"
)

// Grammar is the pluggable per-language interface: a lexer configuration
// plus a single "given the next literal token, what markup should
// open/close around it" rule.
type Grammar interface {
	// Name is the language's canonical identifier ("C", "C++", "C#", "Java").
	Name() string

	// Extensions lists the filename extensions (without the dot) this
	// Grammar claims, consulted during language resolution before the
	// content-sniff fallback.
	Extensions() []string

	// LexerConfig returns the keyword table and comment/quote delimiters
	// TokenLexer should use for this language.
	LexerConfig() lexer.Config

	// Open is called once per unit, before any token is processed, to
	// push whatever root-level mode frame the language needs.
	Open(stack *mode.Stack)

	// Next is called once per literal token from the lexer. It may push
	// or pop mode frames and inspect/revise the look-back window, and it
	// returns zero or more tokens (markup and/or the literal itself) in
	// emission order for this step.
	Next(stack *mode.Stack, win *tokenbuffer.Window[token.Token], lit token.Token) ([]token.Token, error)

	// Finish is called once at end of input. It flushes any tokens the
	// Grammar is still buffering and emits end tokens for every construct
	// left open, so premature end of input still yields balanced markup.
	Finish(stack *mode.Stack, win *tokenbuffer.Window[token.Token]) []token.Token
}

// StreamParser drives a TokenLexer and a Grammar into the merged token
// stream, owning the mode.Stack and tokenbuffer.Window both consult,
// and the language-general paren/brace depth bookkeeping.
type StreamParser struct {
	lex      *lexer.TokenLexer
	g        Grammar
	stack    *mode.Stack
	win      *tokenbuffer.Window[token.Token]
	finished bool
	Errs     errs.List
}

// New builds a StreamParser over an already-configured TokenLexer for
// Grammar g.
func New(lex *lexer.TokenLexer, g Grammar) *StreamParser {
	p := &StreamParser{
		lex:   lex,
		g:     g,
		stack: mode.NewStack(),
		win:   tokenbuffer.New[token.Token](),
	}
	g.Open(p.stack)
	return p
}

// Mode exposes the parser's mode stack (for tests).
func (p *StreamParser) Mode() *mode.Stack { return p.stack }

// Finished reports whether the input has been exhausted and the window
// drained.
func (p *StreamParser) Finished() bool { return p.finished }

// Next advances the parser by one literal token and returns the tokens
// that exited the look-back window as a result, or ok=false at end of
// input. Everything the Grammar produces is routed through the window:
// a token is only handed out (and becomes immutable) once newer tokens
// have pushed it past the window's capacity, or the input is exhausted
// and the window drains.
func (p *StreamParser) Next() (toks []token.Token, ok bool, err error) {
	if p.finished {
		return nil, false, nil
	}
	lit, ok, err := p.lex.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.finished = true
		var emitted []token.Token
		for _, t := range p.g.Finish(p.stack, p.win) {
			emitted = p.emit(emitted, t)
		}
		for {
			t, ok := p.win.ConsumeOldest()
			if !ok {
				break
			}
			emitted = append(emitted, t)
		}
		return emitted, len(emitted) > 0, nil
	}

	p.countBrackets(lit)

	out, err := p.g.Next(p.stack, p.win, lit)
	if err != nil {
		return nil, false, err
	}
	var emitted []token.Token
	for _, t := range out {
		emitted = p.emit(emitted, t)
	}
	return emitted, true, nil
}

// emit appends t to the window, collecting whatever eviction that
// forces onto emitted.
func (p *StreamParser) emit(emitted []token.Token, t token.Token) []token.Token {
	if ev, did := p.win.Append(t); did {
		emitted = append(emitted, ev)
	}
	return emitted
}

// countBrackets tracks parenthesis/brace depth on the current mode
// frame and records an unmatched close on Errs; the counting does not
// vary per language. Inside a transparent preprocessor-line frame structural
// tracking is suspended: a directive's brackets never count against the
// enclosing construct, whose counters stay visible and untouched.
func (p *StreamParser) countBrackets(lit token.Token) {
	if lit.Category != token.Literal {
		return
	}
	if p.stack.InTransparent() {
		return
	}
	switch lit.Text {
	case "{":
		p.stack.IncBrace()
	case "(":
		p.stack.IncParen()
	case ")":
		if err := p.stack.DecParen(); err != nil {
			p.Errs.Add(errs.Internal, "unmatched )")
		}
	case "}":
		if err := p.stack.DecBrace(); err != nil {
			p.Errs.Add(errs.Internal, "unmatched }")
		}
	}
}
