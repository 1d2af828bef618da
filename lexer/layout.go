package lexer

import "github.com/wisplang/wisp/token"

// ParseErrorFunc is the hook the parser hands the lexer so the layout
// engine can decide, at the point it's stuck, whether the token it's
// looking at would be a parse error in the current context. A true answer
// closes an implicit block (emits RBRACE) instead of reporting the error;
// the token itself is left for the caller to re-examine against the new,
// shallower context.
type ParseErrorFunc func(token.Kind) bool

func alwaysFalse(token.Kind) bool { return false }

// layoutStep processes exactly the token on top of the unprocessed stack,
// pushing at most one token into the produced ring before returning. It
// may pop and discard several stack entries first (an INDENT_LEVEL that
// neither opens nor closes a block is simply consumed), but it never
// blocks waiting for more input — queueRaw has already supplied everything
// it needs.
func (l *Lexer) layoutStep(p ParseErrorFunc) {
	for {
		if len(l.unprocessed) == 0 {
			return
		}
		top := l.unprocessed[len(l.unprocessed)-1]

		switch top.Kind {
		case token.INDENTLEVEL:
			if len(l.indent) > 0 {
				m := l.indent[len(l.indent)-1]
				n := top.Location.Column
				if n == m {
					l.popUnprocessed()
					l.emit(token.New(token.SEMICOLON, ";", top.Location))
					return
				}
				if n < m {
					l.indent = l.indent[:len(l.indent)-1]
					l.emit(token.New(token.RBRACE, "}", top.Location))
					return
				}
			}
			l.popUnprocessed()
			continue

		case token.INDENTSTART:
			n := top.Location.Column
			if len(l.indent) == 0 && n > 0 || len(l.indent) > 0 && n > l.indent[len(l.indent)-1] {
				l.popUnprocessed()
				l.indent = append(l.indent, n)
				l.emit(token.New(token.LBRACE, "{", top.Location))
				return
			}
			// n is not past the enclosing indent (or is 0 with nothing
			// open): the implicit block would be empty. Emit it as {}
			// and let the INDENT_LEVEL that follows be re-examined
			// against the indent stack as it stands now.
			l.popUnprocessed()
			l.pendingEmit = append(l.pendingEmit, token.New(token.RBRACE, "}", top.Location))
			l.unprocessed = append(l.unprocessed, token.New(token.INDENTLEVEL, "<n>", top.Location))
			l.emit(token.New(token.LBRACE, "{", top.Location))
			return

		case token.RBRACE:
			if len(l.indent) > 0 && l.indent[len(l.indent)-1] == 0 {
				l.indent = l.indent[:len(l.indent)-1]
				l.popUnprocessed()
				l.emit(top)
				return
			}
			l.popUnprocessed()
			if l.err == nil {
				l.err = &LayoutError{Location: top.Location, Message: "unmatched closing brace"}
			}
			l.emit(token.New(token.ILLEGAL, "}", top.Location))
			return

		case token.LBRACE:
			l.popUnprocessed()
			l.indent = append(l.indent, 0)
			l.emit(top)
			return

		default:
			if len(l.indent) > 0 {
				if m := l.indent[len(l.indent)-1]; m != 0 && p(top.Kind) {
					l.indent = l.indent[:len(l.indent)-1]
					l.emit(token.New(token.RBRACE, "}", top.Location))
					return
				}
			}
			l.popUnprocessed()
			l.emit(top)
			return
		}
	}
}

func (l *Lexer) popUnprocessed() token.Token {
	n := len(l.unprocessed)
	tok := l.unprocessed[n-1]
	l.unprocessed = l.unprocessed[:n-1]
	return tok
}

func (l *Lexer) emit(tok token.Token) {
	l.produced.push(tok)
}

// queueRaw pushes one freshly scanned raw token onto the unprocessed stack,
// preceded by whichever virtual tokens the layout rules call for: an
// INDENT_START when the previous produced token opens an implicit block
// (let/where/of) and this one isn't an explicit '{', and an INDENT_LEVEL
// when the raw token started a new line.
func (l *Lexer) queueRaw(raw rawToken) {
	l.unprocessed = append(l.unprocessed, raw.token)
	if raw.token.Kind != token.LBRACE {
		if last, ok := l.produced.lastOk(); ok &&
			(last.Kind == token.LET || last.Kind == token.WHERE || last.Kind == token.OF) {
			l.unprocessed = append(l.unprocessed, token.New(token.INDENTSTART, "{n}", raw.token.Location))
		}
	}
	if raw.newline {
		l.unprocessed = append(l.unprocessed, token.New(token.INDENTLEVEL, "<n>", raw.token.Location))
	}
}
