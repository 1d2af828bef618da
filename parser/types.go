package parser

import (
	"unicode"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
)

// typeDeclaration parses a fresh "name :: context => type" signature with
// its own name-to-type-variable scope.
func (p *Parser) typeDeclaration() *ast.TypeDeclaration {
	return p.typeDeclarationWith(map[string]ast.Type{})
}

// typeDeclarationWith is typeDeclaration_ in the original: it shares
// mapping with the caller, which is how class() gives every method
// signature the same type variable for the class's parameter.
func (p *Parser) typeDeclarationWith(mapping map[string]ast.Type) *ast.TypeDeclaration {
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

	if p.lexer.Next_().Kind != token.TYPEDECL {
		p.fail("%s", expected(token.TYPEDECL))
	}
	typeOrContext := p.parseType_(mapping)
	if tok := p.lexer.Next_(); tok.Kind == token.OPERATOR && tok.Lexeme == "=>" {
		t := p.parseType_(mapping)
		op, ok := typeOrContext.(*ast.TypeOperator)
		if !ok {
			p.fail("expected a type context before '=>'")
		}
		return &ast.TypeDeclaration{Name: name, Typ: t, Context: createTypeConstraints(op)}
	}
	p.lexer.Backtrack()
	return &ast.TypeDeclaration{Name: name, Typ: typeOrContext}
}

// createTypeConstraints splits a parsed context into its individual
// constraints: "(C a, D b)" flattens to [C a, D b], while a single
// constraint "C a" stays a one-element list.
func createTypeConstraints(context *ast.TypeOperator) []*ast.TypeOperator {
	if len(context.Name) > 0 && context.Name[0] == '(' {
		mapping := make([]*ast.TypeOperator, 0, len(context.Types))
		for _, t := range context.Types {
			op, ok := t.(*ast.TypeOperator)
			if !ok {
				panic(&ParseError{Message: "expected a type operator while splitting a type context"})
			}
			mapping = append(mapping, op)
		}
		return mapping
	}
	return []*ast.TypeOperator{context}
}

// class parses "class Name var where { decl; ... }", giving every
// declaration's var the same fresh type variable.
func (p *Parser) class() *ast.Class {
	p.requireNext(token.CLASS)
	className := p.requireNext(token.NAME).Lexeme
	varName := p.requireNext(token.NAME).Lexeme
	typeVar := p.freshTypeVar()

	p.requireNext(token.WHERE)
	p.requireNext(token.LBRACE)
	mapping := map[string]ast.Type{varName: typeVar}
	decls := sepBy1(p, func() *ast.TypeDeclaration { return p.typeDeclarationWith(mapping) }, token.SEMICOLON)
	if p.lexer.Current().Kind != token.RBRACE {
		p.fail("%s", expected(token.RBRACE))
	}

	return &ast.Class{Name: className, Var: varName, Declarations: decls}
}

// instance parses "instance Class Type where { binding; ... }", routing
// every binding's name through the parser's InstanceEncoder so bindings
// from different instances of the same class don't collide.
func (p *Parser) instance() *ast.Instance {
	p.requireNext(token.INSTANCE)
	className := p.requireNext(token.NAME).Lexeme

	typ := p.parseType()
	top, ok := typ.(*ast.TypeOperator)
	if !ok {
		p.fail("expected a type operator after %q", className)
	}

	p.requireNext(token.WHERE)
	p.requireNext(token.LBRACE)
	binds := sepBy1(p, p.binding, token.SEMICOLON)
	for _, b := range binds {
		b.Name = p.encode(top.Name, b.Name)
	}
	if p.lexer.Current().Kind != token.RBRACE {
		p.fail("%s", expected(token.RBRACE))
	}

	return &ast.Instance{ClassName: className, Typ: top, Bindings: binds}
}

// constructorType walks the NAME tokens that precede a data constructor's
// return type, each one an argument, and folds them into an arrow type
// ending in the data type itself. It is grounded directly on the data
// definition's own type-variable scope (dataDef.Parameters) so a
// lower-case argument name must already have been introduced by the
// "data Name a b = ..." header.
func (p *Parser) constructorType(arity *int, dataTyp *ast.TypeOperator, params map[string]ast.Type) ast.Type {
	tok := p.lexer.Next(constructorError)
	if tok.Kind != token.NAME {
		return dataTyp
	}
	*arity++
	name := p.lexer.Current().Lexeme
	if len(name) > 0 && unicode.IsLower([]rune(name)[0]) {
		tv, ok := params[name]
		if !ok {
			p.fail("undefined type parameter %q", name)
		}
		return ast.FunctionType(tv, p.constructorType(arity, dataTyp, params))
	}
	return ast.FunctionType(ast.NewTypeOp(name, nil), p.constructorType(arity, dataTyp, params))
}

// constructor parses one data constructor's name and argument types.
func (p *Parser) constructor(dataTyp *ast.TypeOperator, params map[string]ast.Type) *ast.Constructor {
	p.lexer.Next(errorIfNotIdentifier)
	name := p.lexer.Current().Lexeme
	arity := 0
	typ := p.constructorType(&arity, dataTyp, params)
	p.lexer.Backtrack()
	return &ast.Constructor{Name: name, Typ: typ, Arity: arity}
}

// dataDefinition parses "data Name a b = Ctor1 t1 | Ctor2 | ...", assigning
// each constructor a tag equal to its position in declaration order.
func (p *Parser) dataDefinition() *ast.DataDefinition {
	p.requireNext(token.DATA)
	dataName := p.requireNext(token.NAME).Lexeme

	typ := &ast.TypeOperator{Name: dataName}
	params := map[string]ast.Type{}
	for p.lexer.Next_().Kind == token.NAME {
		tv := p.freshTypeVar()
		typ.Types = append(typ.Types, tv)
		params[p.lexer.Current().Lexeme] = tv
	}
	if p.lexer.Current().Kind != token.EQUALSSIGN {
		p.fail("%s", expected(token.EQUALSSIGN))
	}

	ctors := sepBy1Func(p,
		func() *ast.Constructor { return p.constructor(typ, params) },
		func(t token.Token) bool { return t.Kind == token.OPERATOR && t.Lexeme == "|" },
	)
	for i, c := range ctors {
		c.Tag = i
	}
	p.lexer.Backtrack()

	return &ast.DataDefinition{Typ: typ, Parameters: params, Constructors: ctors}
}

// parseType parses a type with a fresh, throwaway name-to-variable scope —
// used wherever a type stands alone rather than alongside a named
// declaration (an instance head, for one).
func (p *Parser) parseType() ast.Type {
	return p.parseType_(map[string]ast.Type{})
}

// parseType_ parses one type: a list "[t]", a parenthesized type or tuple
// "(t1, t2)", or a named type possibly applied to arguments, followed in
// every case by an optional "-> t" return type. mapping resolves lower-case
// names to the same TypeVariable within one declaration.
func (p *Parser) parseType_(mapping map[string]ast.Type) ast.Type {
	tok := p.lexer.Next_()
	switch tok.Kind {
	case token.LBRACKET:
		t := p.parseType_(mapping)
		p.requireNext(token.RBRACKET)
		return p.parseReturnType(ast.NewTypeOp("[]", []ast.Type{t}), mapping)

	case token.LPARENS:
		t := p.parseType_(mapping)
		switch p.lexer.Next_().Kind {
		case token.COMMA:
			rest := sepBy1(p, func() ast.Type { return p.parseType_(mapping) }, token.COMMA)
			all := append([]ast.Type{t}, rest...)
			if p.lexer.Current().Kind != token.RPARENS {
				p.fail("%s", expected(token.RPARENS))
			}
			return p.parseReturnType(ast.NewTypeOp(tupleName(len(all)), all), mapping)
		case token.RPARENS:
			return p.parseReturnType(t, mapping)
		default:
			p.fail("expected ',' or ')' in type")
			return nil
		}

	case token.NAME:
		var args []ast.Type
		for {
			next := p.lexer.Next_()
			if next.Kind != token.NAME {
				p.lexer.Backtrack()
				break
			}
			args = append(args, p.typeVarFor(mapping, next.Lexeme))
		}
		var this ast.Type
		if unicode.IsUpper([]rune(tok.Lexeme)[0]) {
			this = ast.NewTypeOp(tok.Lexeme, args)
		} else {
			this = p.typeVarFor(mapping, tok.Lexeme)
		}
		return p.parseReturnType(this, mapping)

	default:
		return p.freshTypeVar()
	}
}

// typeVarFor resolves name to its TypeVariable within mapping, minting a
// fresh one on first use.
func (p *Parser) typeVarFor(mapping map[string]ast.Type, name string) ast.Type {
	if v, ok := mapping[name]; ok {
		return v
	}
	v := p.freshTypeVar()
	mapping[name] = v
	return v
}

// parseReturnType consumes a trailing "-> type" if present. The token that
// decides this is fetched under typeParseError, so a layout-closing token
// (the ';' ending a type-declaration list, the '}' ending a where-block,
// and so on) is recognized as legitimately ending the type rather than
// being treated as a stray token to back away from.
func (p *Parser) parseReturnType(typ ast.Type, mapping map[string]ast.Type) ast.Type {
	if p.lexer.Next(typeParseError).Kind == token.ARROW {
		return ast.FunctionType(typ, p.parseType_(mapping))
	}
	p.lexer.Backtrack()
	return typ
}
