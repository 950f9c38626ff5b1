// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nsreg maps namespace URIs to preferred prefixes, with the
// eight well-known srcML URIs built in and a generated prefix for
// anything else. A Registry is never mutated concurrently: each
// translation owns its own, or shares one read-only across an archive's
// children after the root is written.
package nsreg

import "sort"

// URI identifies one of the fixed namespace slots a Token's ElementType
// can resolve into.
type URI string

// The well-known srcML namespace URIs, in the table's declared order.
const (
	Src      URI = "http://www.srcML.org/srcML/src"
	CPP      URI = "http://www.srcML.org/srcML/cpp"
	Err      URI = "http://www.srcML.org/srcML/srcerr"
	Literal  URI = "http://www.srcML.org/srcML/literal"
	Operator URI = "http://www.srcML.org/srcML/operator"
	Modifier URI = "http://www.srcML.org/srcML/modifier"
	Position URI = "http://www.srcML.org/srcML/position"
	Diff     URI = "http://www.srcML.org/srcML/diff"
)

// wellKnown holds the built-in URI->prefix assignments, in declaration
// order so Registry.Ordered is deterministic.
var wellKnown = []struct {
	uri    URI
	prefix string
}{
	{Src, ""}, // default namespace: no prefix
	{CPP, "cpp"},
	{Err, "err"},
	{Literal, "lit"},
	{Operator, "op"},
	{Modifier, "type"},
	{Position, "pos"},
	{Diff, "diff"},
}

// Registry maps URIs to their preferred prefix, generating a stable
// prefix (nsa, nsb, ...) for any URI outside the well-known set (e.g. a
// RelaxNG-defined or user extension-function namespace). Knowing a URI's
// prefix (the wellKnown table, available from New onward) is kept separate
// from having it appear in Ordered: the default src namespace is always
// ordered (every unit is in it), but cpp/err/lit/op/type/pos/diff only
// enter Ordered on first actual Prefix lookup, so the writer declares
// exactly the namespaces a unit's tokens use -- required, not merely
// well-known.
type Registry struct {
	prefixes map[URI]string
	declared map[URI]bool
	order    []URI
	next     int
}

// New returns a Registry pre-seeded with the well-known srcML prefixes and
// the default namespace already ordered.
func New() *Registry {
	r := &Registry{
		prefixes: make(map[URI]string, len(wellKnown)),
		declared: map[URI]bool{Src: true},
		order:    []URI{Src},
	}
	for _, wk := range wellKnown {
		r.prefixes[wk.uri] = wk.prefix
	}
	return r
}

// Prefix returns the prefix for uri, registering a generated prefix for an
// unseen URI on first use and marking uri as ordered (declared) if it was
// not already.
func (r *Registry) Prefix(uri URI) string {
	p, ok := r.prefixes[uri]
	if !ok {
		p = genPrefix(r.next)
		r.next++
		r.prefixes[uri] = p
	}
	if !r.declared[uri] {
		r.declared[uri] = true
		r.order = append(r.order, uri)
	}
	return p
}

// Declared reports whether uri has actually been requested via Prefix (and
// so will appear in Ordered), used to decide whether an archive root has
// already declared a namespace a child unit would otherwise redeclare.
func (r *Registry) Declared(uri URI) bool {
	return r.declared[uri]
}

// Ordered returns every URI that has been requested via Prefix, in
// first-use order, with the default src namespace always first.
func (r *Registry) Ordered() []URI {
	out := make([]URI, len(r.order))
	copy(out, r.order)
	return out
}

// Canonical returns the URIs present in set in a stable order: the
// well-known namespaces in declaration order first, then the rest
// sorted lexically. Callers pre-registering a usage set walk this
// instead of the map, so namespace declarations come out in the same
// order on every run.
func Canonical(set map[URI]bool) []URI {
	out := make([]URI, 0, len(set))
	known := make(map[URI]bool, len(wellKnown))
	for _, wk := range wellKnown {
		known[wk.uri] = true
		if set[wk.uri] {
			out = append(out, wk.uri)
		}
	}
	var rest []URI
	for uri := range set {
		if !known[uri] {
			rest = append(rest, uri)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

func genPrefix(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if n < 26 {
		return "ns" + string(letters[n])
	}
	return "ns" + string(letters[n%26]) + itoa(n/26)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
