// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmlout

import (
	"fmt"

	"github.com/corelang/srcml/errs"
	"github.com/corelang/srcml/token"
)

// Attr is a single XML attribute, kept as an ordered pair rather than a
// map so the unit's fixed attribute order (language, filename,
// directory, version, timestamp, hash, revision, tabs) is preserved on
// write.
type Attr struct {
	Name  string
	Value string
}

// OpenUnit emits the root or child `<unit ...>` start tag carrying attrs
// in order, plus namespace declarations (subject to Options.Suppressed)
// on the first call. It is distinct from Write(Start) because unit
// attributes are a fixed, caller-supplied set, not a markup-table
// lookup.
func (w *Writer) OpenUnit(attrs []Attr) error {
	if err := w.ensureDecl(); err != nil {
		return err
	}
	local, _ := token.Name(token.ElUnit)
	if _, err := fmt.Fprintf(w.w, "<%s", local); err != nil {
		return errs.Wrap(errs.IO, "write unit open tag", err)
	}
	if !w.wroteNS {
		if err := w.writeNamespaceDecls(); err != nil {
			return err
		}
	}
	for _, a := range attrs {
		if a.Value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w.w, " %s=%q", a.Name, a.Value); err != nil {
			return errs.Wrap(errs.IO, "write unit attribute", err)
		}
	}
	if _, err := w.w.WriteString(">"); err != nil {
		return errs.Wrap(errs.IO, "write unit open tag", err)
	}
	w.depth++
	return nil
}

// CloseUnit emits the matching `</unit>` end tag.
func (w *Writer) CloseUnit() error {
	local, _ := token.Name(token.ElUnit)
	w.depth--
	if _, err := fmt.Fprintf(w.w, "</%s>", local); err != nil {
		return errs.Wrap(errs.IO, "write unit close tag", err)
	}
	return nil
}
