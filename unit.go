// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"io"

	"github.com/Masterminds/semver/v3"

	"github.com/corelang/srcml/nsreg"
	"github.com/corelang/srcml/token"
)

// Meta is a Unit's attribute set: language, source filename,
// optional directory, optional version, optional timestamp, optional
// content hash, optional revision, and tab size.
type Meta struct {
	Language  string
	Filename  string
	Directory string
	Version   string
	Timestamp string
	Hash      string
	Revision  string
	Tabs      int
}

// normalizeVersion canonicalizes Version when it parses as a semantic
// version, passing it through unchanged otherwise: a unit is never
// rejected over an unparsable version string.
func (m *Meta) normalizeVersion() {
	if m.Version == "" {
		return
	}
	if v, err := semver.NewVersion(m.Version); err == nil {
		m.Version = v.String()
	}
}

// Source is a unit's input: exactly one of Filename, Bytes, or File
// should be set, selecting how the character buffer opens it.
type Source struct {
	Filename string
	Bytes    []byte
	File     io.ReadCloser
}

// Unit is a logical srcML element: a parsed or yet-to-be-parsed
// source file (or archive member) plus its resolved metadata and, once
// ParseUnit succeeds, the merged literal+markup token stream ready for
// UnparseUnit or archive assembly.
type Unit struct {
	Meta Meta

	archive *Archive

	parsed   bool
	language string
	tokens   []token.Token
	used     map[nsreg.URI]bool
}

// Parsed reports whether ParseUnit has succeeded for this unit.
func (u *Unit) Parsed() bool { return u.parsed }

// Language returns the language resolved during ParseUnit ("" before
// parsing).
func (u *Unit) Language() string { return u.language }
