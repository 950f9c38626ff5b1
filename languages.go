// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"github.com/corelang/srcml/errs"
	"github.com/corelang/srcml/parser"
)

// Languages is the process-wide registry each langs/* package populates
// via init(). Each entry is a factory, not a shared instance, since a
// Grammar carries mutable per-unit statement-buffering state: every
// ParseUnit call needs its own.
var Languages = map[string]func() parser.Grammar{}

// extByLang maps a Grammar's declared extensions back to its name, built
// lazily from Languages so registration order does not matter.
func extByLang() map[string]string {
	m := make(map[string]string)
	for name, newGrammar := range Languages {
		for _, ext := range newGrammar().Extensions() {
			m[strings.ToLower(ext)] = name
		}
	}
	return m
}

// Register adds a Grammar factory to the registry under name. Each
// langs/* package calls this from its own init().
func Register(name string, newGrammar func() parser.Grammar) {
	Languages[name] = newGrammar
}

// ResolveLanguage resolves a unit's language: explicit unit language,
// then archive default, then filename-extension lookup, then a
// content-sniff fallback via github.com/h2non/filetype when the
// filename carries no recognized extension. LanguageUnset if nothing
// resolves.
func ResolveLanguage(explicit, archiveDefault, filename string, content []byte) (string, error) {
	if explicit != "" {
		if _, ok := Languages[explicit]; ok {
			return explicit, nil
		}
		return "", errs.New(errs.LanguageUnset, "unrecognized language "+explicit)
	}
	if archiveDefault != "" {
		if _, ok := Languages[archiveDefault]; ok {
			return archiveDefault, nil
		}
	}
	if filename != "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
		if ext != "" {
			if name, ok := extByLang()[ext]; ok {
				return name, nil
			}
		}
	}
	if len(content) > 0 {
		if kind, err := filetype.Match(content); err == nil && kind != filetype.Unknown {
			if name, ok := extByLang()[kind.Extension]; ok {
				return name, nil
			}
		}
	}
	return "", errs.New(errs.LanguageUnset, "could not resolve language")
}
