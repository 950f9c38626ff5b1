// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Config is the cli.Run configuration struct for the srcml command: the
// flags this binary implements over the translation engine. Argument
// parsing itself is cli's struct-tag-driven reflection
// (cogentcore.org/core/cli), not a bespoke flag parser.
type Config struct {

	// Language is --language: an explicit source language overriding
	// extension-based resolution.
	Language string `flag:"l,language"`

	// Filename is --filename: the filename attribute recorded on the
	// unit, independent of the actual input path.
	Filename string `flag:"filename"`

	// Directory is --directory: the directory attribute recorded on the
	// unit.
	Directory string `flag:"directory"`

	// UnitVersion is --unit-version: the version attribute recorded on the
	// unit (canonicalized when it parses as a semantic version).
	UnitVersion string `flag:"unit-version"`

	// Encoding is --encoding: the declared output encoding.
	Encoding string `flag:"encoding"`

	// SrcEncoding is --src-encoding: the declared input encoding,
	// skipping BOM/heuristic detection when set.
	SrcEncoding string `flag:"src-encoding"`

	// Output is --output: the destination path; "-" or empty means
	// stdout.
	Output string `flag:"o,output"`

	// XPath is --xpath: a local element name to count via
	// transform.XPathCount, standing in for full XPath evaluation.
	XPath string `flag:"xpath"`

	// Unit is --unit N: selects the Nth archive member (1-based) rather
	// than operating on the whole archive.
	Unit int `flag:"unit"`

	// Position is --position: emits a pos:start attribute on elements;
	// no pos:end attribute is written.
	Position bool `flag:"position"`

	// Hash is --hash: emits the content hash unit attribute.
	Hash bool `flag:"hash"`

	// ConfigFile is --config: an explicit .srcmlrc.yaml path, defaulting
	// to ./.srcmlrc.yaml when empty (config.Load tolerates a missing
	// file).
	ConfigFile string `flag:"config"`

	// Args are the positional source file paths: one for the "parse"
	// command, any number for "archive".
	Args []string `posarg:"all"`
}
