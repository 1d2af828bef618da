// Package wisp is the root convenience package for parsing wisp source:
// a small, pure, statically-typed functional language whose layout is
// significant the way Haskell's is. The real work lives in source, token,
// lexer, ast, and parser; this package just wires them together for the
// common case of "I have a string, give me a Module."
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/wisplang/wisp"
//	)
//
//	func main() {
//		mod, err := wisp.ParseString("module Main where { answer = 6 * 7 }")
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(mod.String())
//	}
package wisp

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/source"
)

// ParseString lexes and parses src, returning the resulting module or the
// first fatal syntax or layout error encountered. Source is NFC-normalized
// before lexing, so identifiers differing only by combining-character
// decomposition compare equal.
func ParseString(src string) (*ast.Module, error) {
	return parser.ParseModule(source.NewNormalizedString(src))
}

// Version identifies this implementation, independent of the language it
// parses.
const Version = "0.1.0"
