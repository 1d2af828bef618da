// Package lexer turns a character source into the token stream the parser
// consumes, applying an offside-rule layout algorithm along the way so the
// parser never has to think about indentation directly.
package lexer

import (
	"fmt"

	"github.com/wisplang/wisp/source"
	"github.com/wisplang/wisp/token"
)

// ringCapacity bounds how far Backtrack can rewind.
const ringCapacity = 20

// LayoutError reports a layout-level inconsistency the engine can detect
// on its own, such as an explicit '}' with nothing open to close. It is
// sticky: once set it's never cleared. The lexer emits an ILLEGAL token at
// the offending position and carries on rather than getting stuck.
type LayoutError struct {
	Location token.Location
	Message  string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Lexer produces a layout-resolved token stream from a CharSource. It is
// not safe for concurrent use.
type Lexer struct {
	chars *cursor

	unprocessed []token.Token
	pendingEmit []token.Token
	indent      []int

	produced *ring
	offset   int

	err error
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithRingCapacity overrides how many produced tokens are retained for
// backtracking. The default, ringCapacity, is generous for this grammar's
// bounded lookahead; callers parsing unusually long operator sections or
// top-level lookahead runs can widen it here instead of the lexer panicking
// mid-parse.
func WithRingCapacity(n int) Option {
	return func(l *Lexer) { l.produced = newRing(n) }
}

// New returns a Lexer reading from src.
func New(src source.CharSource, opts ...Option) *Lexer {
	l := &Lexer{
		chars:    newCursor(src),
		produced: newRing(ringCapacity),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Err returns the first layout error the lexer detected, or nil.
func (l *Lexer) Err() error {
	return l.err
}

// Next returns the next token, consulting p to decide whether the current
// lookahead would be a parse error and should instead close an implicit
// block. A nil p always answers false, which is enough when the caller has
// no pending context to protect (e.g. before the first token).
func (l *Lexer) Next(p ParseErrorFunc) token.Token {
	if p == nil {
		p = alwaysFalse
	}
	if l.offset > 0 {
		l.offset--
		tok, ok := l.produced.fromEnd(l.offset)
		if !ok {
			panic("lexer: backtrack offset exceeds retained token history")
		}
		return tok
	}
	if len(l.pendingEmit) > 0 {
		tok := l.pendingEmit[0]
		l.pendingEmit = l.pendingEmit[1:]
		l.emit(tok)
		return l.produced.last()
	}
	if len(l.unprocessed) > 0 {
		l.layoutStep(p)
		return l.produced.last()
	}
	return l.pullToken(p)
}

// Next_ is Next with no parse-error predicate: it never chooses to close a
// block on the caller's behalf.
func (l *Lexer) Next_() token.Token {
	return l.Next(nil)
}

// Current returns the token last handed to the caller without advancing.
// It panics if no token has been produced yet.
func (l *Lexer) Current() token.Token {
	tok, ok := l.produced.fromEnd(l.offset)
	if !ok {
		panic("lexer: no current token")
	}
	return tok
}

// Valid reports whether Current would succeed.
func (l *Lexer) Valid() bool {
	_, ok := l.produced.fromEnd(l.offset)
	return ok
}

// Backtrack rewinds by one token, making the previously current token
// current again. It panics if that token has fallen out of the retained
// ring — exceeding the ring's capacity is a programming error, not a
// recoverable condition.
func (l *Lexer) Backtrack() {
	next := l.offset + 1
	if _, ok := l.produced.fromEnd(next); !ok {
		panic("lexer: backtrack exceeds retained token history")
	}
	l.offset = next
}

// pullToken scans one raw token and feeds it through the layout engine. At
// true end of input (or on an unrecognized character, which this scanner
// does not distinguish from end of input) it drains the indent stack of
// its implicit (non-zero) entries, one synthesized RBRACE per produced
// token, before finally yielding EOF. A zero entry marks an explicit '{'
// the source never closed; EOF leaves it as-is rather than synthesizing a
// matching '}' for a brace that was never really there, so the parser
// sees the real EOF where it expected one and reports the missing '}'
// itself.
func (l *Lexer) pullToken(p ParseErrorFunc) token.Token {
	raw := l.nextRawToken()
	if raw.token.Kind == token.EOF {
		for len(l.indent) > 0 && l.indent[len(l.indent)-1] != 0 {
			l.indent = l.indent[:len(l.indent)-1]
			l.pendingEmit = append(l.pendingEmit, token.New(token.RBRACE, "}", raw.token.Location))
		}
		l.pendingEmit = append(l.pendingEmit, raw.token)
		tok := l.pendingEmit[0]
		l.pendingEmit = l.pendingEmit[1:]
		l.emit(tok)
		return l.produced.last()
	}
	l.queueRaw(raw)
	l.layoutStep(p)
	return l.produced.last()
}
