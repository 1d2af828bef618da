// Package ast defines the tree the parser builds: expressions, patterns,
// types, and the top-level module shape that hangs off them. Node
// construction goes through the functions in this package rather than
// struct literals, the same way a real type checker would hand the parser
// an opaque constructor library instead of letting it poke at internals.
package ast

import (
	"strconv"

	"github.com/wisplang/wisp/token"
)

// Expr is any parsed expression node.
type Expr interface {
	Node
	exprNode()
}

// Node is anything that can render itself back to source text.
type Node interface {
	String() string
}

// Typed wraps a value (an Expr, in every use in this package) with the
// location of its first token. The type checker is expected to attach
// inferred types alongside this, which is why the wrapper exists
// separately from Expr itself rather than folding Location onto every
// expression struct.
type Typed[T any] struct {
	Value T
	Loc   token.Location
}

// NewTyped wraps e with a zero Location.
func NewTyped(e Expr) Typed[Expr] {
	return Typed[Expr]{Value: e}
}

// NewTypedAt wraps e with loc.
func NewTypedAt(e Expr, loc token.Location) Typed[Expr] {
	return Typed[Expr]{Value: e, Loc: loc}
}

func (t Typed[T]) String() string {
	if n, ok := any(t.Value).(Node); ok && n != nil {
		return n.String()
	}
	return ""
}

// Identifier is a bound or free variable reference, including operator
// names like "+" or desugared names like "[]" and "negate".
type Identifier struct {
	Name string
}

func (*Identifier) exprNode() {}
func (i *Identifier) String() string {
	return i.Name
}

// Ident builds an Identifier expression.
func Ident(name string) Expr {
	return &Identifier{Name: name}
}

// Number is an integer literal.
type Number struct {
	Value int
}

func (*Number) exprNode() {}
func (n *Number) String() string {
	return strconv.Itoa(n.Value)
}

// Num builds a Number expression.
func Num(value int) Expr {
	return &Number{Value: value}
}

// Application is function application: Apply(f, x) is "f x".
type Application struct {
	Func Expr
	Arg  Expr
}

func (*Application) exprNode() {}
func (a *Application) String() string {
	return "(" + a.Func.String() + " " + a.Arg.String() + ")"
}

// Apply builds an Application expression.
func Apply(fn, arg Expr) Expr {
	return &Application{Func: fn, Arg: arg}
}

// Abstraction is a single-parameter anonymous function; multi-parameter
// lambdas are nested Abstractions, matching how the parser desugars them.
type Abstraction struct {
	Param string
	Body  Expr
}

func (*Abstraction) exprNode() {}
func (l *Abstraction) String() string {
	return "(\\" + l.Param + " -> " + l.Body.String() + ")"
}

// Lambda builds an Abstraction expression.
func Lambda(param string, body Expr) Expr {
	return &Abstraction{Param: param, Body: body}
}

// LetBinding is one name = expression pair inside a let expression.
type LetBinding struct {
	Name  string
	Value Expr
}

// LetExpr is a local binding group followed by a body expression.
type LetExpr struct {
	Bindings []LetBinding
	Body     Expr
}

func (*LetExpr) exprNode() {}
func (l *LetExpr) String() string {
	out := "let {"
	for i, b := range l.Bindings {
		if i > 0 {
			out += "; "
		}
		out += b.Name + " = " + b.Value.String()
	}
	out += "} in " + l.Body.String()
	return out
}

// Let builds a LetExpr expression.
func Let(bindings []LetBinding, body Expr) Expr {
	return &LetExpr{Bindings: bindings, Body: body}
}

// Alternative is one pattern -> expression arm of a case expression.
type Alternative struct {
	Pattern Pattern
	Body    Expr
}

// CaseExpr pattern-matches scrutinee against a sequence of alternatives,
// tried in order.
type CaseExpr struct {
	Scrutinee    Expr
	Alternatives []Alternative
}

func (*CaseExpr) exprNode() {}
func (c *CaseExpr) String() string {
	out := "case " + c.Scrutinee.String() + " of {"
	for i, alt := range c.Alternatives {
		if i > 0 {
			out += "; "
		}
		out += alt.Pattern.String() + " -> " + alt.Body.String()
	}
	out += "}"
	return out
}

// Case builds a CaseExpr expression.
func Case(scrutinee Expr, alts []Alternative) Expr {
	return &CaseExpr{Scrutinee: scrutinee, Alternatives: alts}
}
