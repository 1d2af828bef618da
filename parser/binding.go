package parser

import (
	"strconv"
	"unicode"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
)

// binding parses "name = expr" or "name arg1 arg2 = expr", including the
// parenthesized-operator form "(+) x y = expr" used to give an operator a
// top-level definition.
func (p *Parser) binding() *ast.Binding {
	nameTok := p.lexer.Next(errorIfNotNameOrLParens)
	name := p.lexer.Current().Lexeme
	if nameTok.Kind == token.LPARENS {
		fnTok := p.lexer.Next(errorIfNotNameOrOperator)
		if fnTok.Kind != token.NAME && fnTok.Kind != token.OPERATOR {
			p.fail("expected NAME or OPERATOR on left side of binding, found %s", fnTok.Kind)
		}
		name = p.lexer.Current().Lexeme
		if p.lexer.Next(errorIfNotRParens).Kind != token.RPARENS {
			p.fail("%s", expected(token.RPARENS))
		}
	} else if nameTok.Kind != token.NAME {
		p.fail("%s", expected(token.NAME))
	}

	var args []string
	for {
		tok := p.lexer.Next(errorIfNotNameOrEqual)
		if tok.Kind != token.NAME {
			break
		}
		args = append(args, tok.Lexeme)
	}
	if p.lexer.Current().Kind != token.EQUALSSIGN {
		p.fail("%s", expected(token.EQUALSSIGN))
	}

	body := p.expressionRequired()
	return &ast.Binding{
		Name:       name,
		Params:     args,
		Expression: ast.NewTypedAt(body.expr, body.loc),
	}
}

// patternParameter parses zero or more atomic patterns following a
// constructor or infix-operator pattern head (the arguments of
// "Just x", "x : xs", and so on).
func (p *Parser) patternParameter() []ast.Pattern {
	var params []ast.Pattern
outer:
	for {
		tok := p.lexer.Next_()
		switch tok.Kind {
		case token.NAME:
			params = append(params, ast.IdentPattern(p.lexer.Current().Lexeme))
		case token.NUMBER:
			cur := p.lexer.Current()
			n, err := strconv.Atoi(cur.Lexeme)
			if err != nil {
				p.fail("invalid integer literal %q", cur.Lexeme)
			}
			params = append(params, ast.NumPattern(n))
		case token.LPARENS:
			pat := p.pattern()
			if p.lexer.Next_().Kind == token.COMMA {
				rest := sepBy1(p, p.pattern, token.COMMA)
				if p.lexer.Current().Kind != token.RPARENS {
					p.fail("%s", expected(token.RPARENS))
				}
				all := append([]ast.Pattern{pat}, rest...)
				params = append(params, ast.ConstructorPat(tupleName(len(all)), all))
			}
			// A single parenthesized pattern with no comma falls through
			// with no action, same as the grammar this is grounded on —
			// it is not a valid pattern-parameter position.
		default:
			break outer
		}
	}
	p.lexer.Backtrack()
	return params
}

// pattern parses one complete pattern: a literal, a bound name, a
// constructor applied to sub-patterns, the empty list "[]", or a
// parenthesized tuple pattern.
func (p *Parser) pattern() ast.Pattern {
	tok := p.lexer.Next_()
	name := tok.Lexeme
	switch tok.Kind {
	case token.LBRACKET:
		if p.lexer.Next_().Kind != token.RBRACKET {
			p.fail("%s", expected(token.RBRACKET))
		}
		return ast.ConstructorPat("[]", nil)

	case token.NAME, token.OPERATOR:
		params := p.patternParameter()
		if name == ":" || (len(name) > 0 && unicode.IsUpper([]rune(name)[0])) {
			return ast.ConstructorPat(name, params)
		}
		if len(params) != 0 {
			p.fail("identifier pattern %q cannot take arguments", name)
		}
		return ast.IdentPattern(name)

	case token.NUMBER:
		n, err := strconv.Atoi(name)
		if err != nil {
			p.fail("invalid integer literal %q", name)
		}
		return ast.NumPattern(n)

	case token.LPARENS:
		args := sepBy1(p, p.pattern, token.COMMA)
		if p.lexer.Current().Kind != token.RPARENS {
			p.fail("%s", expected(token.RPARENS))
		}
		return ast.ConstructorPat(tupleName(len(args)), args)

	default:
		p.fail("error parsing pattern, found %s", tok.Kind)
		return nil
	}
}
