// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srcml translates source code to and from the srcML XML
// format. It orchestrates the character buffer, the per-language
// lexer/parser pair, and the XML writer into the public Unit/Archive
// API, and owns the process-wide Languages registry each langs/*
// package self-registers into.
package srcml

import "strings"

// Options is the enumerated translation flag set, kept as a bitset
// rather than an option struct.
type Options uint32

const (
	CPP Options = 1 << iota
	CPPNoMacro
	XMLDecl
	NamespaceDecl
	Compressed
	Position
	Tabs
	Hash
	ApplyRoot
	XSLTAll
	XPathTotal
	Terminate
	Quiet
	Verbose
	NullSeparator
	Diff
)

// Has reports whether every flag in want is set.
func (o Options) Has(want Options) bool { return o&want == want }

// optionNames maps an option flag's config-file/CLI name to its bit,
// consulted by OptionsFromNames when loading a config.Defaults.Options
// list.
var optionNames = map[string]Options{
	"cpp": CPP, "cpp_nomacro": CPPNoMacro, "xml_decl": XMLDecl,
	"namespace_decl": NamespaceDecl, "compressed": Compressed,
	"position": Position, "tabs": Tabs, "hash": Hash, "apply_root": ApplyRoot,
	"xslt_all": XSLTAll, "xpath_total": XPathTotal, "terminate": Terminate,
	"quiet": Quiet, "verbose": Verbose, "null_separator": NullSeparator, "diff": Diff,
}

// OptionsFromNames builds an Options bitset from the case-insensitive
// flag names a config.Defaults or CLI flag list names; unrecognized
// names are ignored rather than rejected, since a newer config file
// naming a future flag should not break an older binary.
func OptionsFromNames(names []string) Options {
	var o Options
	for _, n := range names {
		if bit, ok := optionNames[strings.ToLower(n)]; ok {
			o |= bit
		}
	}
	return o
}

// Status is one of the fixed public API status codes.
type Status int

const (
	OK Status = iota
	InvalidArgument
	InvalidIOOperation
	UninitializedUnit
	UnsetLanguage
	IOError
	ErrorStatus
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case InvalidIOOperation:
		return "INVALID_IO_OPERATION"
	case UninitializedUnit:
		return "UNINITIALIZED_UNIT"
	case UnsetLanguage:
		return "UNSET_LANGUAGE"
	case IOError:
		return "IO_ERROR"
	default:
		return "ERROR"
	}
}
