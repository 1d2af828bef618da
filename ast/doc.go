/*
Package ast defines the tree shape produced by a parsed module: expressions,
patterns, types, and the declarations that hold them (bindings, type
declarations, classes, instances, data definitions).

# Construction

Nodes are built through constructor functions (Ident, Num, Apply, Lambda,
Let, Case, NewTypeVar, NewTypeOp, FunctionType, ...) rather than
struct literals. This mirrors an opaque type-checker interface: the parser
calls these functions without depending on the concrete struct layout
behind them, which is where a real type checker would plug in.

# Printing

Every node implements String(), rendering a canonical textual form. It is
not meant to reproduce the original source byte-for-byte — only enough to
support parse/print/reparse round-tripping.
*/
package ast
