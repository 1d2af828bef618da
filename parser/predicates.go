package parser

import (
	"github.com/wisplang/wisp/token"
)

// These are the parse-error predicates the layout engine consults (see
// lexer.ParseErrorFunc): each one answers "would this token be a syntax
// error right here?", and a true answer is what licenses the layout engine
// to close an implicit block instead of handing the token to the parser.
// They are grounded one-for-one on the predicate functions at the bottom of
// the original parser — same names, same token sets.

// toplevelError guards the lookahead that decides whether another top-level
// declaration follows. The original's predicate checked RBRACKET ("]")
// here, which cannot be right next to a module's closing brace; this is
// corrected to RBRACE ("}").
func toplevelError(k token.Kind) bool {
	switch k {
	case token.NAME, token.RBRACE, token.SEMICOLON, token.DATA, token.LPARENS, token.CLASS, token.INSTANCE:
		return false
	}
	return true
}

// toplevelNewBindError guards the token fetched right after a top-level
// declaration: either another ';'-separated declaration follows, or the
// module closes. Same RBRACKET/RBRACE correction as toplevelError.
func toplevelNewBindError(k token.Kind) bool {
	return k != token.RBRACE && k != token.SEMICOLON
}

// bindingError guards the lookahead scan module() uses to tell a type
// declaration ("::") apart from a binding ("=").
func bindingError(k token.Kind) bool {
	switch k {
	case token.EQUALSSIGN, token.NAME, token.TYPEDECL, token.OPERATOR, token.RPARENS:
		return false
	}
	return true
}

func constructorError(k token.Kind) bool {
	switch k {
	case token.NAME, token.OPERATOR, token.LPARENS:
		return false
	}
	return true
}

func subExpressionError(k token.Kind) bool {
	switch k {
	case token.LPARENS, token.LET, token.CASE, token.NAME, token.NUMBER, token.FLOAT, token.SEMICOLON, token.LBRACKET:
		return false
	}
	return true
}

func letExpressionEndError(k token.Kind) bool {
	return k != token.IN
}

func applicationError(k token.Kind) bool {
	switch k {
	case token.LPARENS, token.RPARENS, token.LBRACKET, token.RBRACKET, token.LET, token.OF,
		token.NAME, token.NUMBER, token.FLOAT, token.OPERATOR, token.SEMICOLON, token.COMMA:
		return false
	}
	return true
}

func errorIfNotNameOrLParens(k token.Kind) bool {
	return k != token.NAME && k != token.LPARENS
}

func errorIfNotIdentifier(k token.Kind) bool {
	return k != token.NAME
}

func errorIfNotNameOrOperator(k token.Kind) bool {
	return k != token.NAME && k != token.OPERATOR
}

func errorIfNotNameOrEqual(k token.Kind) bool {
	return k != token.NAME && k != token.EQUALSSIGN
}

func errorIfNotRParens(k token.Kind) bool {
	return k != token.RPARENS
}

func typeParseError(k token.Kind) bool {
	switch k {
	case token.ARROW, token.SEMICOLON, token.RBRACE, token.RPARENS, token.RBRACKET:
		return false
	}
	return true
}
