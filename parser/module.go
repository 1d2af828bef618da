package parser

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
)

// module parses a complete module: an optional "module Name where"
// header, then "{ decl (; decl)* }" with decl one of a binding, a type
// declaration, a class, an instance, or a data definition. Whether a
// leading NAME/'(' starts a binding or a type declaration is resolved by
// scanning forward to the first "::" or "=" and backtracking by however
// many tokens that took — module() never guesses.
func (p *Parser) module() *ast.Module {
	first := p.lexer.Next_()
	var name string
	switch first.Kind {
	case token.MODULE:
		name = p.requireNext(token.NAME).Lexeme
		p.requireNext(token.WHERE)
		p.requireNext(token.LBRACE)
	case token.LBRACE:
		name = "Main"
	default:
		p.fail("%s", expected(token.LBRACE))
	}

	mod := &ast.Module{Name: name}

top:
	for {
		tok := p.lexer.Next(toplevelError)
		switch {
		case tok.Kind == token.NAME || tok.Kind == token.LPARENS:
			lookahead := p.lexer.Next(bindingError)
			lookaheads := 2
			for lookahead.Kind != token.TYPEDECL && lookahead.Kind != token.EQUALSSIGN {
				lookahead = p.lexer.Next(bindingError)
				lookaheads++
			}
			for i := 0; i < lookaheads; i++ {
				p.lexer.Backtrack()
			}
			if lookahead.Kind == token.TYPEDECL {
				mod.TypeDeclarations = append(mod.TypeDeclarations, p.typeDeclaration())
			} else {
				mod.Bindings = append(mod.Bindings, p.binding())
			}

		case tok.Kind == token.CLASS:
			p.lexer.Backtrack()
			mod.Classes = append(mod.Classes, p.class())

		case tok.Kind == token.INSTANCE:
			p.lexer.Backtrack()
			mod.Instances = append(mod.Instances, p.instance())

		case tok.Kind == token.DATA:
			p.lexer.Backtrack()
			mod.DataDefinitions = append(mod.DataDefinitions, p.dataDefinition())

		default:
			break top
		}

		if p.lexer.Next(toplevelNewBindError).Kind != token.SEMICOLON {
			break top
		}
	}

	if p.lexer.Current().Kind != token.RBRACE {
		p.fail("%s", expected(token.RBRACE))
	}
	if eof := p.lexer.Next_(); eof.Kind != token.EOF {
		p.fail("unexpected token after end of module: %s", eof.Kind)
	}

	for _, decl := range mod.TypeDeclarations {
		for _, b := range mod.Bindings {
			if decl.Name == b.Name {
				b.TypeDecl = decl
			}
		}
	}
	return mod
}
