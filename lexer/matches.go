// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer is a rune-level scanner built over charbuf.Buffer,
// exposing the small set of lexing primitives every supported
// language's grammar composes into its own keyword/operator rules.
package lexer

import (
	"unicode"
	"unicode/utf8"
)

// IsLetter reports whether ch can start or continue an identifier.
func IsLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

// IsDigit reports whether ch is a decimal digit.
func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' || ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

// IsLetterOrDigit reports whether ch can continue an identifier.
func IsLetterOrDigit(ch rune) bool {
	return IsLetter(ch) || IsDigit(ch)
}

// IsWhiteSpace reports whether ch is inter-token whitespace.
func IsWhiteSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// IsC0Control reports whether ch is a C0 control character outside of
// ordinary whitespace -- the set that is lexed as an escape literal
// rather than passed through as text.
func IsC0Control(ch rune) bool {
	return ch < 0x20 && ch != '\t' && ch != '\n' && ch != '\r'
}
