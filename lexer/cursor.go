package lexer

import (
	"github.com/wisplang/wisp/source"
	"github.com/wisplang/wisp/token"
)

// cursor is the lexer's peekable character cursor: it buffers up to two
// code points ahead of the last one consumed so the raw tokenizer can
// decide things like "is this '.' followed by another digit" without
// having to push characters back onto the source.
type cursor struct {
	src source.CharSource

	la   [2]rune
	laOk [2]bool

	loc token.Location
}

func newCursor(src source.CharSource) *cursor {
	c := &cursor{src: src}
	c.la[0], c.laOk[0] = src.Next()
	if c.laOk[0] {
		c.la[1], c.laOk[1] = src.Next()
	}
	return c
}

// peek returns the next unread code point without consuming it.
func (c *cursor) peek() (rune, bool) {
	return c.la[0], c.laOk[0]
}

// peek2 returns the code point after the one peek returns.
func (c *cursor) peek2() (rune, bool) {
	return c.la[1], c.laOk[1]
}

// read consumes and returns the next code point along with the location it
// occupies — the position of the character itself, before the cursor
// advances past it. A token's location is always its first character's.
func (c *cursor) read() (rune, token.Location, bool) {
	if !c.laOk[0] {
		return 0, c.loc, false
	}
	ch := c.la[0]
	loc := c.loc
	c.loc = c.loc.Advance(ch)
	c.la[0], c.laOk[0] = c.la[1], c.laOk[1]
	if c.laOk[1] {
		c.la[1], c.laOk[1] = c.src.Next()
	}
	return ch, loc, true
}
