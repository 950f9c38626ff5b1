// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokenbuffer provides a bounded look-back ring the stream
// parser routes every produced token through, so a language grammar can
// revise recently-emitted tokens (langs/cpp moves a class body's
// trailing ';' inside the class element) before they are handed to the
// XML writer for good.
package tokenbuffer

import "golang.org/x/exp/constraints"

// defaultCapacity is the look-back window size.
const defaultCapacity = 64

// Window is a bounded ring buffer over T, indexed from the back: index 0
// is the most recently appended element. Once an element leaves the
// window via ConsumeOldest it is never mutated again (the caller receives
// a value copy).
type Window[T any] struct {
	buf []T
	cap int
}

// New returns an empty Window with the default capacity.
func New[T any]() *Window[T] {
	return NewSize[T](defaultCapacity)
}

// NewSize returns an empty Window with the given capacity, clamped to at
// least 1.
func NewSize[T any](capacity int) *Window[T] {
	return &Window[T]{cap: clamp(capacity, 1)}
}

func clamp[I constraints.Integer](n, min I) I {
	if n < min {
		return min
	}
	return n
}

// Len reports how many elements are currently buffered.
func (w *Window[T]) Len() int { return len(w.buf) }

// Cap reports the window's fixed capacity.
func (w *Window[T]) Cap() int { return w.cap }

// Append adds tok as the newest element. If the window is at capacity the
// oldest element is evicted and returned as (evicted, true); otherwise
// (zero, false).
func (w *Window[T]) Append(tok T) (evicted T, did bool) {
	w.buf = append(w.buf, tok)
	if len(w.buf) > w.cap {
		evicted = w.buf[0]
		did = true
		w.buf = w.buf[1:]
	}
	return evicted, did
}

// ConsumeOldest removes and returns the oldest (front) element, which the
// caller now owns as a final, immutable value. ok is false on an empty
// window.
func (w *Window[T]) ConsumeOldest() (tok T, ok bool) {
	if len(w.buf) == 0 {
		return tok, false
	}
	tok = w.buf[0]
	w.buf = w.buf[1:]
	return tok, true
}

// PeekBack returns the element n positions back from the newest (n=0 is
// the newest element itself). ok is false if n is out of range.
func (w *Window[T]) PeekBack(n int) (tok T, ok bool) {
	idx := len(w.buf) - 1 - n
	if idx < 0 || idx >= len(w.buf) {
		return tok, false
	}
	return w.buf[idx], true
}

// ReplaceAt overwrites the element n positions back from the newest with
// tok. ok is false if n is out of range.
func (w *Window[T]) ReplaceAt(n int, tok T) (ok bool) {
	idx := len(w.buf) - 1 - n
	if idx < 0 || idx >= len(w.buf) {
		return false
	}
	w.buf[idx] = tok
	return true
}

// InsertAt inserts tok at position n back from the newest, shifting older
// elements further back. If the window overflows capacity as a result,
// the oldest element is evicted exactly as Append would.
func (w *Window[T]) InsertAt(n int, tok T) (evicted T, did bool) {
	idx := len(w.buf) - n
	if idx < 0 {
		idx = 0
	}
	if idx > len(w.buf) {
		idx = len(w.buf)
	}
	w.buf = append(w.buf, tok)
	copy(w.buf[idx+1:], w.buf[idx:len(w.buf)-1])
	w.buf[idx] = tok
	if len(w.buf) > w.cap {
		evicted = w.buf[0]
		did = true
		w.buf = w.buf[1:]
	}
	return evicted, did
}

// DeleteAt removes the element n positions back from the newest. ok is
// false if n is out of range.
func (w *Window[T]) DeleteAt(n int) (tok T, ok bool) {
	idx := len(w.buf) - 1 - n
	if idx < 0 || idx >= len(w.buf) {
		return tok, false
	}
	tok = w.buf[idx]
	w.buf = append(w.buf[:idx], w.buf[idx+1:]...)
	return tok, true
}
