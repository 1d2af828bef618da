package parser

import "github.com/wisplang/wisp/token"

// sepBy1 parses one or more items produced by f, separated by sep. It
// always calls f at least once. The token that ends the run (the one that
// fails the separator test) is left as the lexer's current token for the
// caller to validate — sepBy1 never backtracks on the caller's behalf.
func sepBy1[T any](p *Parser, f func() T, sep token.Kind) []T {
	return sepBy1Func(p, f, func(t token.Token) bool { return t.Kind == sep })
}

// sepBy1Func is sepBy1 with an arbitrary separator test instead of a fixed
// token kind, used where the separator is a specific operator lexeme
// ("|" between data constructors) rather than a punctuation kind.
func sepBy1Func[T any](p *Parser, f func() T, sep func(token.Token) bool) []T {
	var result []T
	for {
		result = append(result, f())
		if !sep(p.lexer.Next_()) {
			break
		}
	}
	return result
}
