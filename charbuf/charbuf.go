// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charbuf provides a single "read next logical character"
// operation over a byte source, with BOM-aware encoding detection,
// CRLF/CR normalization to LF, and an optional running SHA-1 of the raw
// pre-decode bytes. It is the leaf of the translation pipeline.
package charbuf

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"io"
	"os"

	"golang.org/x/text/transform"

	"github.com/corelang/srcml/errs"
)

// Options configures how a Buffer is constructed.
type Options struct {
	// Encoding, if non-empty, forces the declared encoding (e.g. from
	// --encoding/--src-encoding) and skips BOM/heuristic detection.
	Encoding string

	// Hash, if true, accumulates a running SHA-1 of the raw bytes read
	// from the underlying source, before decoding.
	Hash bool

	// HashOut, when Hash is true, receives the finalized 40-character
	// lowercase hex digest when Close is called. Left untouched if Hash
	// is false or Close is never called.
	HashOut *string
}

// Buffer is CharBuffer: decoded code points, one at a time, with line/column
// tracking and CRLF normalization already applied.
type Buffer struct {
	br        *bufio.Reader
	hasher    hash.Hash
	hashOut   *string
	line, col int
	closer    io.Closer
	closed    bool
}

// Open constructs a Buffer reading from the named file.
func Open(filename string, opts Options) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errs.Wrap(errs.Input, "open "+filename, err)
	}
	return newBuffer(f, opts)
}

// FromBytes constructs a Buffer reading from an in-memory byte slice.
func FromBytes(b []byte, opts Options) (*Buffer, error) {
	return newBuffer(io.NopCloser(bytes.NewReader(b)), opts)
}

// FromFile constructs a Buffer from an already-opened *os.File or any
// other io.ReadCloser; a raw file descriptor is first wrapped with
// os.NewFile by the caller.
func FromFile(f io.ReadCloser, opts Options) (*Buffer, error) {
	return newBuffer(f, opts)
}

func newBuffer(rc io.ReadCloser, opts Options) (*Buffer, error) {
	var h hash.Hash
	var raw io.Reader = rc
	if opts.Hash {
		h = sha1.New()
		raw = io.TeeReader(rc, h)
	}

	peekR := bufio.NewReaderSize(raw, 4096)

	enc, err := encodingForPeek(peekR, opts.Encoding)
	if err != nil {
		rc.Close()
		return nil, err
	}
	if enc.bomLen > 0 {
		if _, derr := peekR.Discard(enc.bomLen); derr != nil {
			rc.Close()
			return nil, errs.Wrap(errs.Input, "discard BOM", derr)
		}
	}

	tr := transform.NewReader(peekR, enc.enc.NewDecoder())
	return &Buffer{
		br:      bufio.NewReader(tr),
		hasher:  h,
		hashOut: opts.HashOut,
		line:    1,
		col:     1,
		closer:  rc,
	}, nil
}

// Next returns the next decoded, CRLF-normalized code point, or ok=false
// at end of stream. A `\r\n` or bare `\r` is delivered as a single `\n`;
// an immediately following real `\n` after a `\r` substitution is
// suppressed exactly once, never twice.
func (b *Buffer) Next() (r rune, line, col int, ok bool, err error) {
	r1, _, rerr := b.br.ReadRune()
	if rerr == io.EOF {
		return 0, 0, 0, false, nil
	}
	if rerr != nil {
		return 0, 0, 0, false, errs.Wrap(errs.Input, "decode", rerr)
	}

	line, col = b.line, b.col

	if r1 == '\r' {
		r2, _, rerr2 := b.br.ReadRune()
		if rerr2 == nil && r2 != '\n' {
			b.br.UnreadRune()
		}
		r1 = '\n'
	}

	if r1 == '\n' {
		b.line++
		b.col = 1
	} else {
		b.col++
	}
	return r1, line, col, true, nil
}

// Close finalizes the hash (if enabled) into HashOut and releases the
// underlying source.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.hasher != nil && b.hashOut != nil {
		*b.hashOut = hex.EncodeToString(b.hasher.Sum(nil))
	}
	if b.closer != nil {
		return b.closer.Close()
	}
	return nil
}
