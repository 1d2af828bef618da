package parser

import (
	"strconv"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/token"
)

// exprResult is this file's stand-in for the original grammar's
// Option<Typed<Expr>>: ok is false wherever the original would have
// returned None, meaning "no expression starts here, and the lexer has
// already been backtracked past whatever was peeked at." loc is only
// meaningful when ok is true.
type exprResult struct {
	expr ast.Expr
	loc  token.Location
	ok   bool
}

func none() exprResult { return exprResult{} }

func some(e ast.Expr, loc token.Location) exprResult {
	return exprResult{expr: e, loc: loc, ok: true}
}

// expression parses application followed by zero or more binary operators,
// honoring precedence and associativity. ok is false if neither an
// application nor a leading operator (a section or unary minus) was found.
func (p *Parser) expression() exprResult {
	app := p.application()
	return p.parseOperatorExpression(app, 0)
}

// expressionRequired is expression_ in the original: a context that cannot
// sensibly continue without an expression (a binding's right-hand side, a
// let body, a case scrutinee, ...) fails outright instead of propagating
// "not found" further up.
func (p *Parser) expressionRequired() exprResult {
	e := p.expression()
	if !e.ok {
		p.fail("expected an expression")
	}
	return e
}

// application parses a subexpression followed by zero or more further
// subexpressions, left-associating them as function application.
func (p *Parser) application() exprResult {
	lhs := p.subExpression(func(token.Kind) bool { return false })
	if !lhs.ok {
		return none()
	}
	var args []ast.Expr
	for {
		e := p.subExpression(applicationError)
		if !e.ok {
			break
		}
		args = append(args, e.expr)
	}
	if len(args) > 0 {
		lhs = some(foldApply(lhs.expr, args), lhs.loc)
	}
	return lhs
}

// parseOperatorExpression climbs operator precedence starting from lhs
// (which may be "not found", licensing a leading-operator section or a
// unary minus). minPrecedence bounds how loose an operator this call is
// willing to consume before yielding back to its caller.
func (p *Parser) parseOperatorExpression(lhs exprResult, minPrecedence int) exprResult {
	p.lexer.Next_()
	for p.lexer.Valid() && p.lexer.Current().Kind == token.OPERATOR &&
		precedence(p.lexer.Current().Lexeme) >= minPrecedence {
		op := p.lexer.Current()
		rhs := p.application()

		nextOp := p.lexer.Next_()
		for p.lexer.Valid() && nextOp.Kind == token.OPERATOR &&
			precedence(p.lexer.Current().Lexeme) > precedence(op.Lexeme) {
			lookaheadPrecedence := precedence(p.lexer.Current().Lexeme)
			p.lexer.Backtrack()
			rhs = p.parseOperatorExpression(rhs, lookaheadPrecedence)
			nextOp = p.lexer.Next_()
		}

		loc := op.Location
		if lhs.ok {
			loc = lhs.loc
		}
		name := ast.Ident(op.Lexeme)

		switch {
		case lhs.ok && rhs.ok:
			lhs = some(foldApply(name, []ast.Expr{lhs.expr, rhs.expr}), loc)
		case lhs.ok && !rhs.ok:
			// right section: (e op) desugars to \# -> e op #
			apply := foldApply(name, []ast.Expr{lhs.expr, ast.Ident("#")})
			lhs = some(foldLambda([]string{"#"}, apply), loc)
		case !lhs.ok && rhs.ok:
			if op.Lexeme == "-" {
				// Leading unary minus is built directly as negate applied
				// to the operand; no section form exists for it.
				lhs = some(ast.Apply(ast.Ident("negate"), rhs.expr), loc)
			} else {
				// left section: (op e) desugars to \# -> # op e
				apply := foldApply(name, []ast.Expr{ast.Ident("#"), rhs.expr})
				lhs = some(foldLambda([]string{"#"}, apply), loc)
			}
		default:
			return none()
		}
	}
	p.lexer.Backtrack()
	return lhs
}

// subExpression parses one atomic expression: a parenthesized group or
// tuple, a list literal, a let or case block, a name, or a number
// literal. pred is consulted by the layout engine while fetching the
// leading token, the same way every ParseErrorFunc is.
func (p *Parser) subExpression(pred lexer.ParseErrorFunc) exprResult {
	tok := p.lexer.Next(pred)
	switch tok.Kind {
	case token.LPARENS:
		elems := sepBy1(p, p.expressionRequired, token.COMMA)
		if p.lexer.Current().Kind != token.RPARENS {
			p.fail("%s", expected(token.RPARENS))
		}
		if len(elems) == 1 {
			return elems[0]
		}
		plain := make([]ast.Expr, len(elems))
		for i, e := range elems {
			plain[i] = e.expr
		}
		return some(tupleExpr(plain), elems[0].loc)

	case token.LBRACKET:
		return p.parseList()

	case token.LET:
		p.requireNext(token.LBRACE)
		binds := sepBy1(p, p.binding, token.SEMICOLON)
		if p.lexer.Current().Kind != token.RBRACE {
			p.fail("%s", expected(token.RBRACE))
		}
		if p.lexer.Next(letExpressionEndError).Kind != token.IN {
			p.fail("%s", expected(token.IN))
		}
		body := p.expressionRequired()
		letBinds := make([]ast.LetBinding, len(binds))
		for i, b := range binds {
			letBinds[i] = ast.LetBinding{Name: b.Name, Value: b.Expression.Value}
		}
		return some(ast.Let(letBinds, body.expr), body.loc)

	case token.CASE:
		caseLoc := tok.Location
		scrutinee := p.expressionRequired()
		p.requireNext(token.OF)
		p.requireNext(token.LBRACE)
		alts := sepBy1(p, p.alternative, token.SEMICOLON)
		if p.lexer.Current().Kind != token.RBRACE {
			p.fail("%s", expected(token.RBRACE))
		}
		return some(ast.Case(scrutinee.expr, alts), caseLoc)

	case token.NAME:
		cur := p.lexer.Current()
		return some(ast.Ident(cur.Lexeme), cur.Location)

	case token.NUMBER:
		cur := p.lexer.Current()
		n, err := strconv.Atoi(cur.Lexeme)
		if err != nil {
			p.fail("invalid integer literal %q", cur.Lexeme)
		}
		return some(ast.Num(n), cur.Location)

	default:
		p.lexer.Backtrack()
		return none()
	}
}

// parseList parses a bracketed, comma-separated expression list (the
// opening '[' has already been consumed) and desugars it to a right-nested
// chain of ":" applications terminating in "[]".
func (p *Parser) parseList() exprResult {
	openLoc := p.lexer.Current().Location
	var elems []exprResult
	for {
		e := p.expression()
		if !e.ok {
			break
		}
		elems = append(elems, e)
		if p.lexer.Next_().Kind != token.COMMA {
			break
		}
	}
	if len(elems) == 0 {
		if p.lexer.Next_().Kind != token.RBRACKET {
			p.fail("%s", expected(token.RBRACKET))
		}
		return some(ast.Ident("[]"), openLoc)
	}
	if p.lexer.Current().Kind != token.RBRACKET {
		p.fail("%s", expected(token.RBRACKET))
	}
	var result ast.Expr = ast.Ident("[]")
	for i := len(elems) - 1; i >= 0; i-- {
		result = foldApply(ast.Ident(":"), []ast.Expr{elems[i].expr, result})
	}
	return some(result, elems[0].loc)
}

// alternative parses one "pattern -> expression" arm of a case block.
func (p *Parser) alternative() ast.Alternative {
	pat := p.pattern()
	p.requireNext(token.ARROW)
	body := p.expressionRequired()
	return ast.Alternative{Pattern: pat, Body: body.expr}
}
