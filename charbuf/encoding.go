// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charbuf

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/corelang/srcml/errs"
)

// byName resolves a caller-declared encoding name (as would come from
// --encoding/--src-encoding) to a golang.org/x/text/encoding.Encoding. It
// covers the names srcML documents and CLI flags actually use; an unknown
// name is an EncodingError, never a silent fallback.
var byName = map[string]encoding.Encoding{
	"UTF-8":        unicode.UTF8,
	"UTF8":         unicode.UTF8,
	"UTF-16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"ISO-8859-1":   charmap.ISO8859_1,
	"ISO8859-1":    charmap.ISO8859_1,
	"Latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// lookupEncoding resolves an explicit encoding name. ok is false for an
// unrecognized name, which the caller turns into an EncodingError.
func lookupEncoding(name string) (encoding.Encoding, bool) {
	enc, ok := byName[name]
	return enc, ok
}

// bomLength reports how many leading bytes of peek are a BOM, and which
// encoding that BOM declares. Returns (nil, 0) if peek carries no BOM.
func bomLength(peek []byte) (encoding.Encoding, int) {
	switch {
	case bytes.HasPrefix(peek, []byte{0xEF, 0xBB, 0xBF}):
		return unicode.UTF8, 3
	case bytes.HasPrefix(peek, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), 2
	case bytes.HasPrefix(peek, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), 2
	default:
		return nil, 0
	}
}

// sniff runs the heuristic encoding detector over a content sample when
// no encoding was declared and no BOM was present. A sample that is
// entirely valid UTF-8 (all-ASCII included) is UTF-8; otherwise
// golang.org/x/net/html/charset.DetermineEncoding is the heuristic, and
// when it isn't confident ("certain" is false) we fall back to
// ISO-8859-1 ourselves rather than trust a guess.
func sniff(sample []byte) encoding.Encoding {
	if utf8.Valid(sample) {
		return unicode.UTF8
	}
	enc, _, certain := charset.DetermineEncoding(sample, "")
	if !certain || enc == nil {
		return charmap.ISO8859_1
	}
	return enc
}

// resolvedEncoding is the outcome of resolving the encoding for a peeked
// byte stream: which encoding.Encoding to decode with, and how many
// leading bytes (a BOM, if any) to discard before decoding begins.
type resolvedEncoding struct {
	enc    encoding.Encoding
	bomLen int
}

// encodingForPeek resolves the decode encoding for peekR: an explicit
// declared name wins outright; otherwise a BOM sniff; otherwise the
// heuristic charset detector, falling back to ISO-8859-1.
func encodingForPeek(peekR *bufio.Reader, explicit string) (resolvedEncoding, error) {
	if explicit != "" {
		enc, ok := lookupEncoding(explicit)
		if !ok {
			return resolvedEncoding{}, errs.New(errs.Encoding, "unrecognized encoding "+explicit)
		}
		return resolvedEncoding{enc: enc}, nil
	}

	head, _ := peekR.Peek(4)
	if enc, n := bomLength(head); enc != nil {
		return resolvedEncoding{enc: enc, bomLen: n}, nil
	}

	sample, serr := peekR.Peek(512)
	if serr != nil && serr != io.EOF && serr != bufio.ErrBufferFull {
		return resolvedEncoding{}, errs.Wrap(errs.Input, "peek for encoding sniff", serr)
	}
	return resolvedEncoding{enc: sniff(sample)}, nil
}
