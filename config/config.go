// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads a .srcmlrc.yaml default-options file: open the
// file, hand it to a decoder, decode into a struct. YAML is the only
// format the file is ever written in, so there is no multi-format
// dispatch.
package config

import (
	"bufio"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corelang/srcml/errs"
)

// Defaults is the set of options a .srcmlrc.yaml can pre-seed: the
// default Options bitset (by name), default language, and tab size,
// read once at startup and layered under any command-line overrides the
// caller applies afterward.
type Defaults struct {
	// Options lists enabled option flag names (e.g. "xml_decl",
	// "position", "hash"), case-insensitively.
	Options []string `yaml:"options"`

	// Language is the default language new units resolve to when
	// nothing more specific applies.
	Language string `yaml:"language"`

	// TabSize overrides lexer.DefaultTabSize.
	TabSize int `yaml:"tab_size"`
}

// Decoder is anything that decodes a single value from the io.Reader it
// was built over.
type Decoder interface {
	Decode(v any) error
}

// yamlDecoderFunc adapts yaml.NewDecoder to the Decoder seam: one
// adapter function per supported format, even though this package only
// ever registers the one.
func yamlDecoderFunc(r io.Reader) Decoder { return yaml.NewDecoder(r) }

// Load reads Defaults from filename. A missing file is not an error:
// callers get the zero Defaults and fall back to built-in behavior, so
// an absent .srcmlrc.yaml never blocks a translation.
func Load(filename string) (Defaults, error) {
	var d Defaults
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return d, errs.Wrap(errs.Input, "open "+filename, err)
	}
	defer f.Close()

	if err := yamlDecoderFunc(bufio.NewReader(f)).Decode(&d); err != nil && err != io.EOF {
		return d, errs.Wrap(errs.Input, "decode "+filename, err)
	}
	return d, nil
}
