// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"strings"

	"github.com/corelang/srcml/charbuf"
	"github.com/corelang/srcml/errs"
)

// DefaultTabSize is the column-width a tab character expands to when the
// caller does not configure one.
const DefaultTabSize = 8

// Scanner is the shared rune-level engine every language's lexer is built
// on: a thin layer over charbuf.Buffer adding multi-rune lookahead and
// tab-aware column tracking, plus the Name/Number/Quoted/QuotedRaw/EOL/
// ReadUntil consuming primitives.
type Scanner struct {
	src     *charbuf.Buffer
	tabSize int

	queue []rune
	atEOF bool

	line, col int
	Errs      errs.List
}

// NewScanner wraps src with the default tab size.
func NewScanner(src *charbuf.Buffer) *Scanner {
	return NewScannerTabSize(src, DefaultTabSize)
}

// NewScannerTabSize wraps src with an explicit tab size.
func NewScannerTabSize(src *charbuf.Buffer, tabSize int) *Scanner {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	return &Scanner{src: src, tabSize: tabSize, line: 1, col: 1}
}

// Line and Col report the position the next rune returned by Next will
// carry.
func (s *Scanner) Line() int { return s.line }
func (s *Scanner) Col() int  { return s.col }

func (s *Scanner) advance(r rune) {
	if r == '\n' {
		s.line++
		s.col = 1
		return
	}
	if r == '\t' {
		s.col = ((s.col-1)/s.tabSize+1)*s.tabSize + 1
		return
	}
	s.col++
}

// fill ensures the lookahead queue holds at least n+1 runes, short of
// end of input.
func (s *Scanner) fill(n int) error {
	for !s.atEOF && len(s.queue) <= n {
		r, _, _, ok, err := s.src.Next()
		if err != nil {
			return err
		}
		if !ok {
			s.atEOF = true
			break
		}
		s.queue = append(s.queue, r)
	}
	return nil
}

// Peek returns the next rune without consuming it.
func (s *Scanner) Peek() (r rune, ok bool, err error) {
	return s.PeekAt(0)
}

// PeekAt returns the rune n positions ahead (0 is the next rune) without
// consuming anything.
func (s *Scanner) PeekAt(n int) (r rune, ok bool, err error) {
	if err = s.fill(n); err != nil {
		return 0, false, err
	}
	if n >= len(s.queue) {
		return 0, false, nil
	}
	return s.queue[n], true, nil
}

// Next returns and consumes the next rune. ok is false at end of input.
func (s *Scanner) Next() (r rune, ok bool, err error) {
	r, ok, err = s.Peek()
	if err != nil || !ok {
		return r, ok, err
	}
	s.queue = s.queue[1:]
	s.advance(r)
	return r, true, nil
}

// Name reads an identifier: IsLetter then IsLetterOrDigit*.
func (s *Scanner) Name() (string, error) {
	var b strings.Builder
	for {
		r, ok, err := s.Peek()
		if err != nil {
			return b.String(), err
		}
		if !ok || (b.Len() == 0 && !IsLetter(r)) || (b.Len() > 0 && !IsLetterOrDigit(r)) {
			break
		}
		s.Next()
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Number reads a numeric literal: digits, at most one `.`, and a
// trailing run of letters for suffixes/exponents (`0x1F`, `3.14f`,
// `1e10L`). It does not validate that the result is a well-formed
// literal in any one language's grammar; that is the Grammar's job.
func (s *Scanner) Number() (string, error) {
	var b strings.Builder
	sawDot := false
	for {
		r, ok, err := s.Peek()
		if err != nil {
			return b.String(), err
		}
		if !ok {
			break
		}
		switch {
		case IsDigit(r):
		case r == '.' && !sawDot:
			sawDot = true
		case IsLetter(r) && b.Len() > 0:
		case (r == '+' || r == '-') && b.Len() > 0 && endsInExponent(b.String()):
		default:
			goto done
		}
		s.Next()
		b.WriteRune(r)
	}
done:
	return b.String(), nil
}

func endsInExponent(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == 'e' || c == 'E' || c == 'p' || c == 'P'
}

// Quoted reads a quoted string beginning at the already-consumed opening
// delim, honoring backslash escapes, and returns the full text including
// both delimiters. It stops at an unescaped delim or end of line.
func (s *Scanner) Quoted(delim rune) (string, error) {
	var b strings.Builder
	b.WriteRune(delim)
	for {
		r, ok, err := s.Next()
		if err != nil {
			return b.String(), err
		}
		if !ok || r == '\n' {
			break
		}
		b.WriteRune(r)
		if r == '\\' {
			r2, ok2, err2 := s.Next()
			if err2 != nil {
				return b.String(), err2
			}
			if ok2 {
				b.WriteRune(r2)
			}
			continue
		}
		if r == delim {
			break
		}
	}
	return b.String(), nil
}

// QuotedRaw is Quoted's multi-line variant (triple-quoted strings,
// back-tick literals): it does not stop at `\n` and includes raw line
// endings in the result.
func (s *Scanner) QuotedRaw(delim rune) (string, error) {
	var b strings.Builder
	b.WriteRune(delim)
	for {
		r, ok, err := s.Next()
		if err != nil {
			return b.String(), err
		}
		if !ok {
			break
		}
		b.WriteRune(r)
		if r == '\\' {
			r2, ok2, err2 := s.Next()
			if err2 != nil {
				return b.String(), err2
			}
			if ok2 {
				b.WriteRune(r2)
			}
			continue
		}
		if r == delim {
			break
		}
	}
	return b.String(), nil
}

// EOL reads to, but not including, the next `\n` (or end of input) -- the
// single-line-comment primitive.
func (s *Scanner) EOL() (string, error) {
	var b strings.Builder
	for {
		r, ok, err := s.Peek()
		if err != nil {
			return b.String(), err
		}
		if !ok || r == '\n' {
			break
		}
		s.Next()
		b.WriteRune(r)
	}
	return b.String(), nil
}

// ReadUntil reads and returns everything up to (and including) the first
// occurrence of any string in marks, or to end of input if none appear --
// the block-comment/delimited-region primitive.
func (s *Scanner) ReadUntil(marks ...string) (string, error) {
	var b strings.Builder
	for {
		for _, m := range marks {
			if strings.HasSuffix(b.String(), m) {
				return b.String(), nil
			}
		}
		r, ok, err := s.Next()
		if err != nil {
			return b.String(), err
		}
		if !ok {
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}
