// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmlout writes the output side of the translation: it consumes
// the token stream that has exited the look-back window and writes
// well-formed srcML XML, resolving element names through the token
// table and namespace prefixes through nsreg. The writer is hand-rolled
// rather than built on encoding/xml because the input is a live token
// stream, not a value to marshal.
package xmlout

import (
	"bufio"
	"fmt"
	"io"

	"github.com/corelang/srcml/errs"
	"github.com/corelang/srcml/logx"
	"github.com/corelang/srcml/nsreg"
	"github.com/corelang/srcml/token"
)

// Options configures a Writer's output shape.
type Options struct {
	// XMLDecl, if true, emits the `<?xml ...?>` declaration once before
	// the first element.
	XMLDecl bool

	// Encoding names the declared output encoding in the XML declaration.
	Encoding string

	// Position, if true, emits a pos:start attribute on every Start or
	// Empty token carrying a recorded line:column; no pos:end attribute
	// is written.
	Position bool

	// Archive marks this Writer as writing one child unit of an archive:
	// the caller handles the outer <unit> framing and namespace
	// declarations itself; this Writer suppresses namespaces already
	// declared by the archive root (passed in via Suppressed).
	Archive bool

	// Suppressed lists namespace URIs the archive root already declared;
	// a child unit does not redeclare them.
	Suppressed map[nsreg.URI]bool
}

// Writer owns a namespace registry and a running "first start element"
// flag (namespace declarations go on exactly one element) and writes to
// an io.Writer. It does not read from a tokenbuffer.Window directly;
// callers hand it tokens one at a time as they exit the window, so a
// token the writer has seen is never revised afterward.
type Writer struct {
	w    *bufio.Writer
	ns   *nsreg.Registry
	opts Options

	wroteDecl bool
	wroteNS   bool
	depth     int
	usedSet   map[nsreg.URI]bool
}

// New builds a Writer over dst using the given NamespaceRegistry (shared
// across an archive's child units so prefixes stay stable) and Options.
func New(dst io.Writer, ns *nsreg.Registry, opts Options) *Writer {
	return &Writer{w: bufio.NewWriter(dst), ns: ns, opts: opts}
}

// UsedNamespaces reports which namespace URIs this Writer has actually
// emitted an element in, for the archive-root union computation.
func (w *Writer) UsedNamespaces() map[nsreg.URI]bool { return w.usedSet }

func (w *Writer) markUsed(uri nsreg.URI) {
	if w.usedSet == nil {
		w.usedSet = make(map[nsreg.URI]bool)
	}
	w.usedSet[uri] = true
}

// Write emits one token. Markup tokens update the writer's open-element
// bookkeeping implicitly via the caller's own mode stack; Write itself is
// stateless per call except for the "first element" namespace/decl flags.
func (w *Writer) Write(t token.Token) error {
	switch t.Category {
	case token.Literal:
		return w.writeLiteral(t)
	case token.Start:
		return w.writeStart(t)
	case token.End:
		return w.writeEnd(t)
	case token.Empty:
		return w.writeEmpty(t)
	default:
		return errs.New(errs.Internal, "unknown token category")
	}
}

func (w *Writer) ensureDecl() error {
	if w.wroteDecl || !w.opts.XMLDecl || w.opts.Archive {
		w.wroteDecl = true
		return nil
	}
	w.wroteDecl = true
	enc := w.opts.Encoding
	if enc == "" {
		enc = "UTF-8"
	}
	_, err := fmt.Fprintf(w.w, "<?xml version=\"1.0\" encoding=\"%s\" standalone=\"yes\"?>\n", enc)
	if err != nil {
		return errs.Wrap(errs.IO, "write XML declaration", err)
	}
	return nil
}

func (w *Writer) writeLiteral(t token.Token) error {
	if err := w.ensureDecl(); err != nil {
		return err
	}
	if token.LiteralKind(t.Type) == token.EscapeChar {
		_, err := fmt.Fprintf(w.w, "<escape char=\"%s\"/>", t.Text)
		if err != nil {
			return errs.Wrap(errs.IO, "write escape", err)
		}
		return nil
	}
	_, err := w.w.WriteString(EscapeText(t.Text))
	if err != nil {
		return errs.Wrap(errs.IO, "write literal", err)
	}
	return nil
}

func (w *Writer) elementName(t token.Token) (local string, uri nsreg.URI, ok bool) {
	local, ok = token.Name(token.ElementType(t.Type))
	if !ok {
		return "", "", false
	}
	uri = token.Namespace(token.ElementType(t.Type))
	return local, uri, true
}

func (w *Writer) writeStart(t token.Token) error {
	if err := w.ensureDecl(); err != nil {
		return err
	}
	local, uri, ok := w.elementName(t)
	if !ok {
		logx.PrintfWarn("xmlout: unknown start element type %d", t.Type)
		return nil
	}
	w.markUsed(uri)
	prefix := w.ns.Prefix(uri)
	if err := w.writeOpenTag(prefix, local, t, false); err != nil {
		return err
	}
	w.depth++
	return nil
}

func (w *Writer) writeEnd(t token.Token) error {
	local, uri, ok := w.elementName(t)
	if !ok {
		return nil
	}
	prefix := w.ns.Prefix(uri)
	w.depth--
	_, err := fmt.Fprintf(w.w, "</%s>", qname(prefix, local))
	if err != nil {
		return errs.Wrap(errs.IO, "write end tag", err)
	}
	return nil
}

func (w *Writer) writeEmpty(t token.Token) error {
	if err := w.ensureDecl(); err != nil {
		return err
	}
	local, uri, ok := w.elementName(t)
	if !ok {
		return nil
	}
	w.markUsed(uri)
	prefix := w.ns.Prefix(uri)
	return w.writeOpenTag(prefix, local, t, true)
}

func (w *Writer) writeOpenTag(prefix, local string, t token.Token, selfClose bool) error {
	if _, err := fmt.Fprintf(w.w, "<%s", qname(prefix, local)); err != nil {
		return errs.Wrap(errs.IO, "write start tag", err)
	}
	if !w.wroteNS {
		if err := w.writeNamespaceDecls(); err != nil {
			return err
		}
	}
	if w.opts.Position && t.Line > 0 {
		if _, err := fmt.Fprintf(w.w, " pos:start=\"%d:%d\"", t.Line, t.Column); err != nil {
			return errs.Wrap(errs.IO, "write pos attr", err)
		}
	}
	var err error
	if selfClose {
		_, err = w.w.WriteString("/>")
	} else {
		_, err = w.w.WriteString(">")
	}
	if err != nil {
		return errs.Wrap(errs.IO, "write tag close", err)
	}
	return nil
}

func (w *Writer) writeNamespaceDecls() error {
	w.wroteNS = true
	for _, uri := range w.ns.Ordered() {
		if w.opts.Suppressed[uri] {
			continue
		}
		prefix := w.ns.Prefix(uri)
		var err error
		if prefix == "" {
			_, err = fmt.Fprintf(w.w, " xmlns=%q", string(uri))
		} else {
			_, err = fmt.Fprintf(w.w, " xmlns:%s=%q", prefix, string(uri))
		}
		if err != nil {
			return errs.Wrap(errs.IO, "write namespace decl", err)
		}
	}
	return nil
}

func qname(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

// Flush flushes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return errs.Wrap(errs.IO, "flush output", err)
	}
	return nil
}

// EscapeText XML-escapes `<`, `>`, and `&` in s. Callers never need to
// escape C0 controls here: the lexer already turned those into
// EscapeChar literal tokens, written as <escape .../> by writeLiteral.
func EscapeText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		case '&':
			out = append(out, "&amp;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
