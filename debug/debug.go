// Package debug renders AST nodes for inspection during development: a
// compact String()-based form via ToString, and a full structural dump via
// Print, for when the compact form hides the detail you're after.
package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/wisplang/wisp/ast"
)

var cfg = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// ToString renders node through its own String method — the same
// canonical text used for parse/print/reparse round-tripping.
func ToString(node ast.Node) string {
	return node.String()
}

// Print dumps node's full struct shape, bypassing String() so that every
// field (including the ones String() elides, like a Binding's matched
// TypeDeclaration) is visible.
func Print(node ast.Node) {
	cfg.Dump(node)
}

// Sdump is Print, captured as a string instead of written to stdout —
// useful inside a test failure message.
func Sdump(node ast.Node) string {
	return cfg.Sdump(node)
}
