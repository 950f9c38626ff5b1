// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csharp

import (
	"github.com/corelang/srcml"
	"github.com/corelang/srcml/parser"
)

func init() {
	srcml.Register("C#", func() parser.Grammar { return New() })
}
