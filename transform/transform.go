// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides minimal post-processing stages over an
// already-written srcML document: an Identity passthrough and an
// element-counting query in the same family as --xpath/--count. Full
// XPath/XSLT evaluation lives outside this module. Both transforms here
// stream rather than buffer a whole document: Identity copies bytes
// through, and XPathCount reads with encoding/xml.Decoder.
package transform

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/corelang/srcml/errs"
)

// Func is one transform: it reads a complete srcML document from src and
// writes its result to dst.
type Func func(src io.Reader, dst io.Writer) error

// Identity copies src to dst unchanged, the baseline Func when no
// transform-spec option is given.
func Identity(src io.Reader, dst io.Writer) error {
	if _, err := io.Copy(dst, src); err != nil {
		return errs.Wrap(errs.Transform, "identity transform", err)
	}
	return nil
}

// XPathCount returns a Func that counts elements matching localName and
// writes one "name\tcount" line. It stands in for a full XPath
// evaluator: a single count-by-name query exercises the transform seam
// without a query-language dependency.
func XPathCount(localName string) Func {
	return func(src io.Reader, dst io.Writer) error {
		dec := xml.NewDecoder(src)
		count := 0
		for {
			tok, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				return errs.Wrap(errs.Transform, "decode srcML for xpath count", err)
			}
			if start, ok := tok.(xml.StartElement); ok && start.Name.Local == localName {
				count++
			}
		}
		if _, err := fmt.Fprintf(dst, "%s\t%d\n", localName, count); err != nil {
			return errs.Wrap(errs.IO, "write xpath count result", err)
		}
		return nil
	}
}
