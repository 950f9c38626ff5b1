// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml"
	"github.com/corelang/srcml/config"
)

func TestBuildOptionsAlwaysSetsXMLDecl(t *testing.T) {
	o := buildOptions(&Config{}, config.Defaults{})
	assert.True(t, o.Has(srcml.XMLDecl))
}

func TestBuildOptionsMergesConfigDefaultsAndFlags(t *testing.T) {
	o := buildOptions(&Config{Position: true}, config.Defaults{Options: []string{"hash"}})
	assert.True(t, o.Has(srcml.Position))
	assert.True(t, o.Has(srcml.Hash))
	assert.True(t, o.Has(srcml.XMLDecl))
}

func TestLoadConfigFlagOverridesFileLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".srcmlrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: Java\n"), 0o644))

	d := loadConfig(&Config{ConfigFile: path, Language: "C++"})
	assert.Equal(t, "C++", d.Language)
}

func TestLoadConfigUsesFileLanguageWhenFlagEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".srcmlrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: Java\n"), 0o644))

	d := loadConfig(&Config{ConfigFile: path})
	assert.Equal(t, "Java", d.Language)
}

func TestOpenOutputStdoutOnEmptyOrDash(t *testing.T) {
	w, closeFn, err := openOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	require.NoError(t, closeFn())

	w, closeFn, err = openOutput("-")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	require.NoError(t, closeFn())
}

func TestOpenOutputCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	w, closeFn, err := openOutput(path)
	require.NoError(t, err)
	defer closeFn()

	_, err = w.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}
