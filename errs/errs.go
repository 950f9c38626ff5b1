// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error kinds surfaced across the translation
// engine: InputError, EncodingError, LanguageUnset, TransformError,
// InternalError and IOError. The parser and lexer never return these for
// malformed source -- only I/O and invariant violations produce them.
package errs

import "fmt"

// Kind classifies an error into one of the fixed status codes.
type Kind int

const (
	// Unknown is the zero value; Error values built through New always set Kind.
	Unknown Kind = iota

	// Input covers a source that cannot be opened or read.
	Input

	// Encoding covers a declared encoding that is unknown.
	Encoding

	// LanguageUnset covers a unit whose language could not be resolved.
	LanguageUnset

	// Transform covers an XPath/XSLT compile or transform-spec failure.
	Transform

	// Internal covers an invariant violation: mode-stack underflow, an
	// end_current_mode assertion mismatch, or an unmatched open element.
	Internal

	// IO covers a write failure on the output destination.
	IO
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "InputError"
	case Encoding:
		return "EncodingError"
	case LanguageUnset:
		return "LanguageUnset"
	case Transform:
		return "TransformError"
	case Internal:
		return "InternalError"
	case IO:
		return "IOError"
	default:
		return "Error"
	}
}

// Error is the concrete error type returned by every public operation.
// It wraps an optional underlying cause the way cli.Run wraps errors
// with fmt.Errorf("...: %w", err).
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error of the given kind.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Wrap builds an *Error of the given kind around a lower-level cause.
func Wrap(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Msg: msg, Err: err}
}

// Is reports whether err is an *Error of the given kind. A wrapped
// cause never changes the kind, so a direct type assertion suffices.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == k
}

// List accumulates non-fatal diagnostics during a single pass (lexing,
// a parser pass) so a caller can report them together at the end.
type List struct {
	items []*Error
}

// Add appends a new diagnostic of the given kind.
func (l *List) Add(k Kind, msg string) {
	l.items = append(l.items, New(k, msg))
}

// Len reports how many diagnostics have been recorded.
func (l *List) Len() int { return len(l.items) }

// All returns every recorded diagnostic, in recording order.
func (l *List) All() []*Error { return l.items }

// Report renders up to max diagnostics (0 means unlimited) as a
// newline-joined report, one line per diagnostic.
func (l *List) Report(max int) string {
	n := len(l.items)
	if max > 0 && n > max {
		n = max
	}
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += "\n"
		}
		s += l.items[i].Error()
	}
	return s
}
