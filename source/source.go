// Package source provides the finite, lazy code-point sequence the lexer
// reads from. It is intentionally minimal: a CharSource is any object that
// can hand back its runes one at a time and say when it has run out.
package source

import (
	"bufio"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CharSource is a finite lazy sequence of Unicode code points.
type CharSource interface {
	// Next returns the next code point and true, or (0, false) at the
	// end of the stream. It must not be called again after returning
	// false.
	Next() (rune, bool)
}

// stringSource walks a string's runes without allocating a []rune copy of
// the whole input.
type stringSource struct {
	s   string
	pos int
}

// NewString returns a CharSource over s, exactly as written.
func NewString(s string) CharSource {
	return &stringSource{s: s}
}

func (s *stringSource) Next() (rune, bool) {
	if s.pos >= len(s.s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.s[s.pos:])
	s.pos += size
	return r, true
}

// NewNormalizedString returns a CharSource over s after Unicode NFC
// normalization. This is the only Unicode policy this package applies
// beyond the host's own alphabetic/alphanumeric classification: it keeps
// identifiers that differ only in combining-character decomposition from
// silently lexing as two different NAME tokens. It never folds case or
// otherwise reinterprets what a letter is.
func NewNormalizedString(s string) CharSource {
	return NewString(norm.NFC.String(s))
}

// NewReader adapts any io.Reader of UTF-8 text into a CharSource, reading
// one rune at a time via a buffered reader. Malformed UTF-8 surfaces as the
// replacement character, matching the behavior of bufio.Reader.ReadRune.
func NewReader(r io.Reader) CharSource {
	return &readerSource{br: bufio.NewReader(r)}
}

type readerSource struct {
	br *bufio.Reader
}

func (r *readerSource) Next() (rune, bool) {
	ch, _, err := r.br.ReadRune()
	if err != nil {
		return 0, false
	}
	return ch, true
}
