// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokenbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendAndLen(t *testing.T) {
	w := NewSize[int](3)
	assert.Equal(t, 3, w.Cap())
	assert.Equal(t, 0, w.Len())

	_, evicted := w.Append(1)
	assert.False(t, evicted)
	w.Append(2)
	w.Append(3)
	assert.Equal(t, 3, w.Len())

	ev, did := w.Append(4)
	assert.True(t, did)
	assert.Equal(t, 1, ev)
	assert.Equal(t, 3, w.Len())
}

func TestPeekBack(t *testing.T) {
	w := NewSize[int](4)
	w.Append(1)
	w.Append(2)
	w.Append(3)

	v, ok := w.PeekBack(0)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = w.PeekBack(2)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = w.PeekBack(5)
	assert.False(t, ok)
}

func TestConsumeOldest(t *testing.T) {
	w := NewSize[int](4)
	w.Append(1)
	w.Append(2)

	v, ok := w.ConsumeOldest()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, w.Len())

	w.ConsumeOldest()
	_, ok = w.ConsumeOldest()
	assert.False(t, ok)
}

func TestReplaceAt(t *testing.T) {
	w := NewSize[int](4)
	w.Append(1)
	w.Append(2)
	w.Append(3)

	ok := w.ReplaceAt(0, 99)
	assert.True(t, ok)
	v, _ := w.PeekBack(0)
	assert.Equal(t, 99, v)

	assert.False(t, w.ReplaceAt(10, 0))
}

func TestInsertAtAndEviction(t *testing.T) {
	w := NewSize[int](3)
	w.Append(1)
	w.Append(2)
	w.Append(3)

	// Window is full; inserting pushes the oldest element out.
	ev, did := w.InsertAt(1, 99)
	assert.True(t, did)
	assert.Equal(t, 1, ev)
	assert.Equal(t, 3, w.Len())

	v, _ := w.PeekBack(1)
	assert.Equal(t, 99, v)
}

func TestDeleteAt(t *testing.T) {
	w := NewSize[int](4)
	w.Append(1)
	w.Append(2)
	w.Append(3)

	v, ok := w.DeleteAt(1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, w.Len())

	_, ok = w.DeleteAt(10)
	assert.False(t, ok)
}

func TestClampMinCapacity(t *testing.T) {
	w := NewSize[int](-5)
	assert.Equal(t, 1, w.Cap())
}

func TestDefaultCapacity(t *testing.T) {
	w := New[int]()
	assert.Equal(t, 64, w.Cap())
}
