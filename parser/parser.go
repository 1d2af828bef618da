// Package parser turns a layout-resolved token stream into an ast.Module. It
// is a recursive-descent, operator-precedence parser: most productions are
// one function each, and the parser drives the lexer's offside-rule layout
// engine by handing it a ParseErrorFunc wherever a token fetch might need to
// close an implicit block (see lexer.ParseErrorFunc).
package parser

import (
	"strings"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/source"
	"github.com/wisplang/wisp/token"
)

// InstanceEncoder names a binding inside an "instance C T where { ... }"
// block so it doesn't collide with other instances' bindings of the same
// method name. How that encoding should actually work is a decision for
// whatever consumes the AST next (a type checker with a dictionary-passing
// scheme, say); the parser only needs somewhere to call out to, so this is
// left as an injectable hook rather than a hardcoded scheme.
type InstanceEncoder func(typeName, bindingName string) string

// DefaultInstanceEncoder is the Builder's default InstanceEncoder. It is a
// placeholder good enough to keep names unique and human-readable; anything
// past parsing that cares about instance resolution should supply its own
// via Builder.WithInstanceEncoder.
func DefaultInstanceEncoder(typeName, bindingName string) string {
	return typeName + "$" + bindingName
}

// Parser consumes a lexer.Lexer and produces an ast.Module. It is not safe
// for concurrent use, matching the lexer it wraps.
type Parser struct {
	lexer   *lexer.Lexer
	encode  InstanceEncoder
	nextVar int
}

// New returns a Parser with default settings. Use Builder for anything
// that needs configuring (a custom InstanceEncoder, a wider backtrack ring).
func New(src source.CharSource) *Parser {
	return NewBuilder().Build(src)
}

// ParseModule parses a complete module from src. It is the package's sole
// entry point for turning source text into an ast.Module.
func ParseModule(src source.CharSource) (mod *ast.Module, err error) {
	return New(src).ParseModule()
}

// ParseModule parses a complete module from the parser's lexer, recovering
// any ParseError raised deep in the grammar (see fail/failAt) into a plain
// error return. A layout error detected by the lexer itself takes priority
// over anything the grammar concluded from the tokens it was handed, since
// those tokens may already reflect the inconsistency.
func (p *Parser) ParseModule() (mod *ast.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			mod = nil
			err = pe
			if lexErr := p.lexer.Err(); lexErr != nil {
				err = lexErr
			}
		}
	}()
	mod = p.module()
	if lexErr := p.lexer.Err(); lexErr != nil {
		return nil, lexErr
	}
	return mod, nil
}

// requireNext advances and fails unless the resulting token has kind want.
func (p *Parser) requireNext(want token.Kind) token.Token {
	tok := p.lexer.Next_()
	if tok.Kind != want {
		p.fail("%s, found %s", expected(want), tok.Kind)
	}
	return p.lexer.Current()
}

// freshTypeVar hands out a type variable whose id is unique within this
// Parser. Callers that track a source name for it (typeVarFor, class,
// dataDefinition) record that name in their own mapping.
func (p *Parser) freshTypeVar() ast.Type {
	id := p.nextVar
	p.nextVar++
	return ast.NewTypeVar(id)
}

// precedence gives an operator lexeme its binding power. Anything not
// listed (most user-defined operators) binds tightest, at 9.
func precedence(op string) int {
	switch op {
	case "+", "-", "==", "/=", "<", ">", "<=", ">=":
		return 1
	case "*", "/", "%":
		return 3
	default:
		return 9
	}
}

// tupleName is the constructor name for an n-ary tuple: "(,)" for a pair,
// "(,,)" for a triple, and so on.
func tupleName(n int) string {
	return "(" + strings.Repeat(",", n-1) + ")"
}

// foldApply builds left-associated application: foldApply(f, [a, b]) is
// "(f a) b".
func foldApply(fn ast.Expr, args []ast.Expr) ast.Expr {
	for _, a := range args {
		fn = ast.Apply(fn, a)
	}
	return fn
}

// foldLambda builds curried parameters around body, outermost lambda
// binding the first parameter: foldLambda([x, y], e) is "\x -> \y -> e".
func foldLambda(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = ast.Lambda(params[i], body)
	}
	return body
}

// tupleExpr applies the tuple constructor to its elements.
func tupleExpr(elems []ast.Expr) ast.Expr {
	name := ast.Ident(tupleName(len(elems)))
	return foldApply(name, elems)
}
