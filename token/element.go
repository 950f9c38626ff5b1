// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import "github.com/corelang/srcml/nsreg"

// ElementType enumerates the markup element identities a Start/End/Empty
// Token can carry. The set is not a full C++/Java grammar (the detailed
// productions belong to the pluggable language grammars); it covers the
// general declaration/statement/expression/preprocessor shapes every
// supported language shares.
type ElementType int32

const (
	ElUnit ElementType = iota + 1
	ElArchive

	// Declarations and definitions
	ElFunction
	ElFunctionDecl
	ElParameterList
	ElParameter
	ElBlock
	ElDecl
	ElDeclStmt
	ElType
	ElName
	ElSpecifier
	ElModifier
	ElInit
	ElArgumentList
	ElArgument
	ElClass
	ElClassDecl
	ElStruct
	ElStructDecl
	ElUnion
	ElUnionDecl
	ElEnum
	ElEnumDecl
	ElTypedef
	ElConstructor
	ElDestructor
	ElTemplate
	ElTemplateArgument
	ElTemplateParameter
	ElNamespace
	ElUsing
	ElImport
	ElPackage

	// Statements
	ElExprStmt
	ElExpr
	ElCondition
	ElIf
	ElThen
	ElElse
	ElWhile
	ElDoWhile
	ElFor
	ElForControl
	ElIncr
	ElSwitch
	ElCase
	ElDefault
	ElBreak
	ElContinue
	ElGoto
	ElLabel
	ElReturn
	ElThrow
	ElTry
	ElCatch
	ElFinally
	ElBlockContent
	ElEmptyStmt

	// Lexical/markup leaves
	ElComment
	ElEscape

	// Preprocessor (cpp namespace)
	ElCppInclude
	ElCppDefine
	ElCppUndef
	ElCppIf
	ElCppIfdef
	ElCppIfndef
	ElCppElif
	ElCppElse
	ElCppEndif
	ElCppPragma
	ElCppError
	ElCppWarning
	ElCppLine
	ElCppLineMacro
	ElCppDirective
	ElCppMacro
)

// names holds the local element name for every ElementType; namespaces
// holds the owning namespace URI. Both are consulted by xmlout for every
// markup token -- a flat table lookup, not a per-element type hierarchy.
var names = map[ElementType]string{
	ElUnit: "unit", ElArchive: "unit",
	ElFunction: "function", ElFunctionDecl: "function_decl",
	ElParameterList: "parameter_list", ElParameter: "parameter",
	ElBlock: "block", ElDecl: "decl", ElDeclStmt: "decl_stmt",
	ElType: "type", ElName: "name", ElSpecifier: "specifier",
	ElModifier: "modifier", ElInit: "init",
	ElArgumentList: "argument_list", ElArgument: "argument",
	ElClass: "class", ElClassDecl: "class_decl",
	ElStruct: "struct", ElStructDecl: "struct_decl",
	ElUnion: "union", ElUnionDecl: "union_decl",
	ElEnum: "enum", ElEnumDecl: "enum_decl",
	ElTypedef: "typedef", ElConstructor: "constructor", ElDestructor: "destructor",
	ElTemplate: "template", ElTemplateArgument: "template_argument",
	ElTemplateParameter: "template_parameter",
	ElNamespace:         "namespace", ElUsing: "using", ElImport: "import", ElPackage: "package",
	ElExprStmt: "expr_stmt", ElExpr: "expr", ElCondition: "condition",
	ElIf: "if", ElThen: "then", ElElse: "else",
	ElWhile: "while", ElDoWhile: "do", ElFor: "for", ElForControl: "control", ElIncr: "incr",
	ElSwitch: "switch", ElCase: "case", ElDefault: "default",
	ElBreak: "break", ElContinue: "continue", ElGoto: "goto", ElLabel: "label",
	ElReturn: "return", ElThrow: "throw", ElTry: "try", ElCatch: "catch", ElFinally: "finally",
	ElBlockContent: "block_content", ElEmptyStmt: "empty_stmt",
	ElComment:    "comment",
	ElEscape:     "escape",
	ElCppInclude: "include", ElCppDefine: "define", ElCppUndef: "undef",
	ElCppIf: "if", ElCppIfdef: "ifdef", ElCppIfndef: "ifndef",
	ElCppElif: "elif", ElCppElse: "else", ElCppEndif: "endif",
	ElCppPragma: "pragma", ElCppError: "error", ElCppWarning: "warning",
	ElCppLine: "line", ElCppLineMacro: "macro", ElCppDirective: "directive", ElCppMacro: "macro",
}

var namespaces map[ElementType]nsreg.URI

func init() {
	namespaces = make(map[ElementType]nsreg.URI, len(names))
	for el := range names {
		namespaces[el] = nsreg.Src
	}
	for _, el := range []ElementType{
		ElCppInclude, ElCppDefine, ElCppUndef, ElCppIf, ElCppIfdef, ElCppIfndef,
		ElCppElif, ElCppElse, ElCppEndif, ElCppPragma, ElCppError, ElCppWarning,
		ElCppLine, ElCppLineMacro, ElCppDirective, ElCppMacro,
	} {
		namespaces[el] = nsreg.CPP
	}
	namespaces[ElEscape] = nsreg.Err
}

// Name returns the local XML element name for el.
func Name(el ElementType) (string, bool) {
	n, ok := names[el]
	return n, ok
}

// Namespace returns the owning namespace URI for el.
func Namespace(el ElementType) nsreg.URI {
	return namespaces[el]
}
