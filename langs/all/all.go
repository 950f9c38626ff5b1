// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package all registers every supported language grammar into
// srcml.Languages via blank import. It exists because each langs/*
// package imports srcml (to call srcml.Register from its own init), so
// srcml itself cannot import them back without a cycle; callers that
// want the full set -- cmd/srcml, and tests exercising language
// resolution -- import this package instead of each langs/* package
// individually.
package all

import (
	_ "github.com/corelang/srcml/langs/c"
	_ "github.com/corelang/srcml/langs/cpp"
	_ "github.com/corelang/srcml/langs/csharp"
	_ "github.com/corelang/srcml/langs/java"
)
