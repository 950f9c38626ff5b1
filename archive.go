// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"io"

	"github.com/jinzhu/copier"

	"github.com/corelang/srcml/nsreg"
)

// Archive is an ordered sequence of Units plus the default
// metadata and language new units inherit. Namespace prefixes are
// resolved per document: WriteArchive builds one NamespaceRegistry for
// the root and shares it with every child Unit's Writer, and
// UnparseUnit builds a fresh one for each unit it writes.
type Archive struct {
	Opts            Options
	DefaultMeta     Meta
	DefaultLanguage string

	// Encoding names the declared output encoding for the XML
	// declaration; empty means UTF-8.
	Encoding string

	// SrcEncoding, if non-empty, forces the source decode encoding and
	// skips BOM/heuristic detection.
	SrcEncoding string

	Units []*Unit

	ns *nsreg.Registry
}

// CreateArchive returns an empty archive with the given option flags.
func CreateArchive(opts Options) *Archive {
	return &Archive{Opts: opts, ns: nsreg.New()}
}

// CloseArchive flushes nothing by itself (writers own their own flush)
// but is the explicit lifecycle bookend callers expecting create/close
// symmetry can rely on.
func (a *Archive) CloseArchive() error { return nil }

// FreeArchive releases the archive's units. In Go this is a hint to the
// garbage collector, not a required call.
func (a *Archive) FreeArchive() {
	a.Units = nil
}

// CreateUnit appends a new Unit to the archive with the given per-unit
// metadata override.
func (a *Archive) CreateUnit(meta Meta) *Unit {
	u := &Unit{Meta: meta, archive: a}
	a.Units = append(a.Units, u)
	return u
}

// FreeUnit removes u from the archive's unit list.
func (a *Archive) FreeUnit(u *Unit) {
	for i, v := range a.Units {
		if v == u {
			a.Units = append(a.Units[:i], a.Units[i+1:]...)
			return
		}
	}
}

// resolvedMeta resolves each attribute as per-unit override, then
// archive default, then absent: the archive's non-zero default fields
// are structurally copied onto a fresh Meta, then the unit's own
// non-empty fields are copied back on top so they win.
func (a *Archive) resolvedMeta(u *Unit) Meta {
	var resolved Meta
	copier.Copy(&resolved, &a.DefaultMeta)
	copier.CopyWithOption(&resolved, &u.Meta, copier.Option{IgnoreEmpty: true})
	resolved.normalizeVersion()
	return resolved
}

// namespaceUnion computes the namespace set actually used by at least
// one already-parsed child unit, by unioning each Unit's recorded usage
// set. Every child's usage is computed before the archive root is
// written, then published as one fixed set.
func (a *Archive) namespaceUnion() map[nsreg.URI]bool {
	union := map[nsreg.URI]bool{nsreg.Src: true}
	for _, u := range a.Units {
		for uri, used := range u.used {
			if used {
				union[uri] = true
			}
		}
	}
	return union
}

// ArchiveWriter accumulates parsed units and writes the whole archive on
// Close. Parsing is incremental; the root <unit> cannot be written until
// every member has parsed, since its namespace declarations are the
// union of what the members actually use.
type ArchiveWriter struct {
	a   *Archive
	dst io.Writer
}

// OpenArchiveWrite returns an ArchiveWriter targeting dst.
func (a *Archive) OpenArchiveWrite(dst io.Writer) (*ArchiveWriter, error) {
	return &ArchiveWriter{a: a, dst: dst}, nil
}

// Add parses one more source into the archive as its next member.
func (w *ArchiveWriter) Add(meta Meta, src Source, language string) (*Unit, error) {
	u := w.a.CreateUnit(meta)
	if err := w.a.ParseUnit(u, src, language); err != nil {
		w.a.FreeUnit(u)
		return nil, err
	}
	return u, nil
}

// Close writes the accumulated archive to the destination.
func (w *ArchiveWriter) Close() error {
	return w.a.WriteArchive(w.dst)
}
