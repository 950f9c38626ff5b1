// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/corelang/srcml/errs"
)

// ReadUnit is one child unit of an already-produced srcML document: its
// unit attributes plus the reconstructed source text, with markup
// stripped and every <escape char="0xHH"/> element expanded back to the
// original byte.
type ReadUnit struct {
	Meta Meta

	source []byte
}

// Source returns the unit's reconstructed source bytes.
func (u *ReadUnit) Source() []byte { return u.source }

// ArchiveReader iterates the child units of an srcML document produced
// by UnparseUnit or WriteArchive. A single-unit document reads as an
// archive of one.
type ArchiveReader struct {
	units []*ReadUnit
}

// OpenArchiveRead parses the srcML document on src into an
// ArchiveReader. The whole document is consumed before returning;
// a malformed document is an Input error.
func OpenArchiveRead(src io.Reader) (*ArchiveReader, error) {
	dec := xml.NewDecoder(src)
	r := &ArchiveReader{}

	// Stack of units currently open. Character data always accumulates
	// on the innermost one; a popped unit is recorded only when it is a
	// leaf, so an archive root wrapping children never reads as a unit
	// of its own.
	type frame struct {
		u        *ReadUnit
		hasUnits bool
	}
	var stack []*frame

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.Input, "decode srcML document", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "unit":
				if n := len(stack); n > 0 {
					stack[n-1].hasUnits = true
				}
				stack = append(stack, &frame{u: &ReadUnit{Meta: metaFromAttrs(t.Attr)}})
			case "escape":
				if n := len(stack); n > 0 {
					if b, ok := escapeByte(t.Attr); ok {
						f := stack[n-1]
						f.u.source = append(f.u.source, b)
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local != "unit" {
				break
			}
			n := len(stack)
			if n == 0 {
				return nil, errs.New(errs.Input, "unmatched </unit>")
			}
			f := stack[n-1]
			stack = stack[:n-1]
			if !f.hasUnits {
				r.units = append(r.units, f.u)
			}
		case xml.CharData:
			if n := len(stack); n > 0 {
				f := stack[n-1]
				if !f.hasUnits {
					f.u.source = append(f.u.source, t...)
				}
			}
		}
	}
	if len(stack) != 0 {
		return nil, errs.New(errs.Input, "unclosed <unit>")
	}
	return r, nil
}

// Len reports how many child units the document contained.
func (r *ArchiveReader) Len() int { return len(r.units) }

// Unit returns the nth child unit, 1-based, matching how --unit N counts
// archive members.
func (r *ArchiveReader) Unit(n int) (*ReadUnit, error) {
	if n < 1 || n > len(r.units) {
		return nil, errs.New(errs.Input, "unit index "+strconv.Itoa(n)+" out of range")
	}
	return r.units[n-1], nil
}

// ExtractUnit writes the nth child unit's reconstructed source to dst.
func (r *ArchiveReader) ExtractUnit(n int, dst io.Writer) error {
	u, err := r.Unit(n)
	if err != nil {
		return err
	}
	if _, err := dst.Write(u.source); err != nil {
		return errs.Wrap(errs.IO, "write extracted source", err)
	}
	return nil
}

// metaFromAttrs picks the known unit attributes out of a <unit> start
// tag, ignoring namespace declarations and anything unrecognized.
func metaFromAttrs(attrs []xml.Attr) Meta {
	var m Meta
	for _, a := range attrs {
		switch a.Name.Local {
		case "language":
			m.Language = a.Value
		case "filename":
			m.Filename = a.Value
		case "directory":
			m.Directory = a.Value
		case "version":
			m.Version = a.Value
		case "timestamp":
			m.Timestamp = a.Value
		case "hash":
			m.Hash = a.Value
		case "revision":
			m.Revision = a.Value
		case "tabs":
			if n, err := strconv.Atoi(a.Value); err == nil {
				m.Tabs = n
			}
		}
	}
	return m
}

// escapeByte decodes the char="0xHH" attribute of an <escape/> element.
func escapeByte(attrs []xml.Attr) (byte, bool) {
	for _, a := range attrs {
		if a.Name.Local != "char" {
			continue
		}
		v := strings.TrimPrefix(a.Value, "0x")
		n, err := strconv.ParseUint(v, 16, 8)
		if err != nil {
			return 0, false
		}
		return byte(n), true
	}
	return 0, false
}
