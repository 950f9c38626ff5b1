// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command srcml is the command-line driver around the translation
// engine: argument parsing, output file selection, and the "which
// operation" dispatch live here, leaving the engine itself free of any
// flag handling.
package main

import (
	"io"
	"os"

	"cogentcore.org/core/cli"

	"github.com/corelang/srcml"
	_ "github.com/corelang/srcml/langs/all"
	"github.com/corelang/srcml/logx"
	"github.com/corelang/srcml/transform"

	"github.com/corelang/srcml/config"
	"github.com/corelang/srcml/errs"
)

func main() {
	opts := &cli.Options{
		AppName:      "srcml",
		AppTitle:     "srcML",
		AppAbout:     "Translates source code to and from the srcML XML format.",
		Fatal:        true,
		PrintSuccess: false,
	}
	cli.Run(opts, &Config{}, Parse, Archive, Query, Extract)
}

// Parse is the "parse" command: translates exactly one source file to
// srcML on Config.Output (default stdout).
func Parse(c *Config) error {
	if len(c.Args) != 1 {
		return errs.New(errs.Input, "parse requires exactly one source file")
	}
	defaults := loadConfig(c)

	a := newArchive(c, defaults)

	dst, closeDst, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeDst()

	src := srcml.Source{Filename: c.Args[0]}
	_, err = a.TranslateSeparate(src, c.Language, dst)
	return err
}

// Archive is the "archive" command: translates every named source file
// into one archive document on Config.Output.
func Archive(c *Config) error {
	if len(c.Args) == 0 {
		return errs.New(errs.Input, "archive requires at least one source file")
	}
	defaults := loadConfig(c)

	a := newArchive(c, defaults)
	for _, path := range c.Args {
		u := a.CreateUnit(srcml.Meta{})
		if err := a.ParseUnit(u, srcml.Source{Filename: path}, c.Language); err != nil {
			return err
		}
	}

	dst, closeDst, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeDst()
	return a.WriteArchive(dst)
}

// Query is the "query" command: applies transform.XPathCount, the
// element-counting stand-in for full XPath evaluation, to an
// already-produced srcML document named by Config.Args[0].
func Query(c *Config) error {
	if len(c.Args) != 1 || c.XPath == "" {
		return errs.New(errs.Input, "query requires one srcML file and --xpath NAME")
	}
	src, err := os.Open(c.Args[0])
	if err != nil {
		return errs.Wrap(errs.Input, "open "+c.Args[0], err)
	}
	defer src.Close()

	dst, closeDst, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeDst()

	a := srcml.CreateArchive(0)
	return a.ApplyTransform(src, transform.XPathCount(c.XPath), dst)
}

// Extract is the "extract" command: converts an already-produced srcML
// document named by Config.Args[0] back to source text on Config.Output.
// --unit selects one archive member (default 1).
func Extract(c *Config) error {
	if len(c.Args) != 1 {
		return errs.New(errs.Input, "extract requires exactly one srcML file")
	}
	src, err := os.Open(c.Args[0])
	if err != nil {
		return errs.Wrap(errs.Input, "open "+c.Args[0], err)
	}
	defer src.Close()

	r, err := srcml.OpenArchiveRead(src)
	if err != nil {
		return err
	}

	dst, closeDst, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeDst()

	n := c.Unit
	if n == 0 {
		n = 1
	}
	return r.ExtractUnit(n, dst)
}

// newArchive builds the archive every translating command shares,
// applying the config-file defaults and the unit-metadata flags.
func newArchive(c *Config, defaults config.Defaults) *srcml.Archive {
	a := srcml.CreateArchive(buildOptions(c, defaults))
	a.DefaultLanguage = defaults.Language
	a.Encoding = c.Encoding
	a.SrcEncoding = c.SrcEncoding
	a.DefaultMeta = srcml.Meta{
		Filename:  c.Filename,
		Directory: c.Directory,
		Version:   c.UnitVersion,
		Tabs:      defaults.TabSize,
	}
	return a
}

func loadConfig(c *Config) config.Defaults {
	path := c.ConfigFile
	if path == "" {
		path = ".srcmlrc.yaml"
	}
	d, err := config.Load(path)
	if err != nil {
		logx.PrintfWarn("srcml: %v", err)
	}
	if c.Language != "" {
		d.Language = c.Language
	}
	return d
}

func buildOptions(c *Config, d config.Defaults) srcml.Options {
	o := srcml.OptionsFromNames(d.Options) | srcml.XMLDecl
	if c.Position {
		o |= srcml.Position
	}
	if c.Hash {
		o |= srcml.Hash
	}
	return o
}

func openOutput(path string) (w io.Writer, closeFn func() error, err error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, ferr := os.Create(path)
	if ferr != nil {
		return nil, nil, errs.Wrap(errs.IO, "create "+path, ferr)
	}
	return f, f.Close, nil
}
