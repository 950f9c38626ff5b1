// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charbuf

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/srcml/errs"
)

func readAll(t *testing.T, b *Buffer) string {
	t.Helper()
	var out []rune
	for {
		r, _, _, ok, err := b.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, r)
	}
	return string(out)
}

func TestPlainASCII(t *testing.T) {
	b, err := FromBytes([]byte("int x;\n"), Options{})
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "int x;\n", readAll(t, b))
}

func TestCRLFNormalization(t *testing.T) {
	b, err := FromBytes([]byte("a\r\nb\rc\n"), Options{})
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "a\nb\nc\n", readAll(t, b))
}

func TestLineColumnTracking(t *testing.T) {
	b, err := FromBytes([]byte("ab\ncd"), Options{})
	require.NoError(t, err)
	defer b.Close()

	r, line, col, ok, err := b.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	b.Next() // 'b'
	r, line, col, ok, err = b.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, '\n', r)
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)

	r, line, col, ok, err = b.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 'c', r)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestUTF8BOMStripped(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	b, err := FromBytes(data, Options{})
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "hi", readAll(t, b))
}

func TestExplicitEncodingOverridesDetection(t *testing.T) {
	b, err := FromBytes([]byte("hello"), Options{Encoding: "UTF-8"})
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, "hello", readAll(t, b))
}

func TestUnknownExplicitEncoding(t *testing.T) {
	_, err := FromBytes([]byte("hello"), Options{Encoding: "bogus-9000"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Encoding))
}

func TestHashMatchesRawBytes(t *testing.T) {
	content := []byte("int main() {}\n")
	var digest string
	b, err := FromBytes(content, Options{Hash: true, HashOut: &digest})
	require.NoError(t, err)

	readAll(t, b)
	require.NoError(t, b.Close())

	want := sha1.Sum(content)
	assert.Equal(t, hex.EncodeToString(want[:]), digest)
}
