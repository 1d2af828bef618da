package lexer

import (
	"testing"

	"github.com/wisplang/wisp/source"
	"github.com/wisplang/wisp/token"
)

func collect(t *testing.T, input string, kinds int) []token.Token {
	t.Helper()
	l := New(source.NewString(input))
	var out []token.Token
	for {
		tok := l.Next_()
		out = append(out, tok)
		if tok.Kind == token.EOF || len(out) > kinds+10 {
			break
		}
	}
	return out
}

func assertKinds(t *testing.T, got []token.Token, want []token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got kind %s, want %s (token: %v)", i, got[i].Kind, k, got[i])
		}
	}
}

func TestScenarioApplication(t *testing.T) {
	toks := collect(t, "test 2 + 3", 5)
	toks = toks[:len(toks)-1] // drop trailing EOF
	assertKinds(t, toks, []token.Kind{token.NAME, token.NUMBER, token.OPERATOR, token.NUMBER})
	if toks[0].Lexeme != "test" || toks[1].Lexeme != "2" || toks[2].Lexeme != "+" || toks[3].Lexeme != "3" {
		t.Errorf("unexpected lexemes: %v", toks)
	}
}

func TestScenarioLetLayout(t *testing.T) {
	input := "let\n    test = 2 + 3\nin test"
	toks := collect(t, input, 12)
	toks = toks[:len(toks)-1] // drop trailing EOF
	want := []token.Kind{
		token.LET, token.LBRACE, token.NAME, token.EQUALSSIGN, token.NUMBER,
		token.OPERATOR, token.NUMBER, token.RBRACE, token.IN, token.NAME,
	}
	assertKinds(t, toks, want)
}

func TestExplicitBraces(t *testing.T) {
	toks := collect(t, "{ a; b }", 6)
	toks = toks[:len(toks)-1]
	want := []token.Kind{token.LBRACE, token.NAME, token.SEMICOLON, token.NAME, token.RBRACE}
	assertKinds(t, toks, want)
}

func TestNumberVsFloat(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"42", token.NUMBER},
		{"3.14", token.FLOAT},
		{"3.", token.NUMBER}, // trailing dot with nothing after is not a float
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			l := New(source.NewString(c.input))
			tok := l.Next_()
			if tok.Kind != c.kind {
				t.Errorf("got %s, want %s", tok.Kind, c.kind)
			}
		})
	}
}

func TestKeywordsAndNames(t *testing.T) {
	toks := collect(t, "module where class instance let in case of data foo", 11)
	toks = toks[:len(toks)-1]
	// where, let and of each open an implicit layout block before the
	// token that follows them; the three blocks are closed at EOF.
	want := []token.Kind{
		token.MODULE, token.WHERE, token.LBRACE, token.CLASS, token.INSTANCE, token.LET,
		token.LBRACE, token.IN, token.CASE, token.OF, token.LBRACE, token.DATA, token.NAME,
		token.RBRACE, token.RBRACE, token.RBRACE,
	}
	assertKinds(t, toks, want)
}

func TestOperatorClassification(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"=", token.EQUALSSIGN},
		{"->", token.ARROW},
		{"::", token.TYPEDECL},
		{"<>", token.OPERATOR},
		{"+", token.OPERATOR},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			l := New(source.NewString(c.input))
			tok := l.Next_()
			if tok.Kind != c.kind {
				t.Errorf("got %s, want %s", tok.Kind, c.kind)
			}
		})
	}
}

func TestIndentStackEmptyAtEOF(t *testing.T) {
	input := "let\n    a = 1\n    b = 2\nin a"
	l := New(source.NewString(input))
	for {
		tok := l.Next_()
		if tok.Kind == token.EOF {
			break
		}
	}
	if len(l.indent) != 0 {
		t.Errorf("indent stack not empty at EOF: %v", l.indent)
	}
}

func TestBraceBalance(t *testing.T) {
	input := "let\n    a = 1\n    b = 2\nin a"
	l := New(source.NewString(input))
	open, shut := 0, 0
	for {
		tok := l.Next_()
		if tok.Kind == token.LBRACE {
			open++
		}
		if tok.Kind == token.RBRACE {
			shut++
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	if open != shut {
		t.Errorf("unbalanced braces: %d open, %d close", open, shut)
	}
}

func TestBacktrackThenAdvanceReplaysSameTokens(t *testing.T) {
	l := New(source.NewString("a b c"))
	_ = l.Next_()  // a
	second := l.Next_() // b
	third := l.Next_()  // c

	l.Backtrack() // current: b
	l.Backtrack() // current: a

	replaySecond := l.Next_() // back to b
	replayThird := l.Next_()  // back to c

	if !second.Equal(replaySecond) || !third.Equal(replayThird) {
		t.Errorf("backtrack+advance mismatch: got (%v, %v), want (%v, %v)",
			replaySecond, replayThird, second, third)
	}
}

func TestVirtualTokensNeverVisible(t *testing.T) {
	input := "let\n    a = 1\nin a"
	l := New(source.NewString(input))
	for {
		tok := l.Next_()
		if tok.Kind == token.INDENTSTART || tok.Kind == token.INDENTLEVEL {
			t.Fatalf("virtual token %s leaked to caller", tok.Kind)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
}

func TestParseErrorPredicateClosesImplicitBlock(t *testing.T) {
	// "+ 2" sits at the same column as "foo", so indentation alone treats
	// it as a sibling binding (a SEMICOLON, which is still emitted). A
	// predicate that rejects OPERATOR then forces the block closed before
	// "+" is ever handed out.
	input := "where\n  foo = 1\n  + 2"
	closesOnOperator := func(k token.Kind) bool { return k == token.OPERATOR }
	l := New(source.NewString(input))
	var kinds []token.Kind
	for i := 0; i < 20; i++ {
		tok := l.Next(closesOnOperator)
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	foundClose := false
	for _, k := range kinds {
		if k == token.RBRACE {
			foundClose = true
		}
	}
	if !foundClose {
		t.Errorf("expected predicate-driven block close, got %v", kinds)
	}
}
