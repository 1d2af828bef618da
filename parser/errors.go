package parser

import (
	"fmt"

	"github.com/wisplang/wisp/token"
)

// ParseError is a fatal syntax error: an unexpected token, an exhausted
// alternative, or an unbalanced construct the layout algorithm itself could
// not repair. There is no recovery beyond what the layout engine already
// does (see lexer.ParseErrorFunc) — once one of these is raised, parsing of
// the enclosing module stops.
type ParseError struct {
	Message string
	Pos     token.Location
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// fail raises a ParseError at the current token's location. It is recovered
// at the ParseModule boundary, which is what lets the grammar below be
// written as straight-line code instead of threading an error return
// through every production.
func (p *Parser) fail(format string, args ...any) {
	loc := p.lexer.Current().Location
	panic(&ParseError{Message: fmt.Sprintf(format, args...), Pos: loc})
}

func (p *Parser) failAt(loc token.Location, format string, args ...any) {
	panic(&ParseError{Message: fmt.Sprintf(format, args...), Pos: loc})
}

func expected(kind token.Kind) string {
	return "expected " + kind.String()
}
