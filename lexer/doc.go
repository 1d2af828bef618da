/*
Package lexer implements an offside-rule layout algorithm on top of a plain
tokenizer, in the style of Haskell's layout rule: indentation stands in for
explicit braces and semicolons, and the parser can still write them out by
hand when it wants to.

# Pipeline

A raw token comes from scanning runs of operator characters, digits,
letters, or single-character punctuation off a source.CharSource. Before
it's handed to the parser, the layout engine may wrap it in virtual
INDENT_START / INDENT_LEVEL bookkeeping, comparing the token's column
against an indent stack to decide whether a SEMICOLON or a synthetic RBRACE
belongs in front of it.

# The parse-error predicate

Some of that bookkeeping can't be resolved by indentation alone — most
famously, a let/in binding group that the parser expects to close but whose
next line happens to sit at or past the enclosing indent. Next takes a
ParseErrorFunc: when the layout engine is otherwise stuck on a token, it
asks the predicate whether that token would be a parse error in the
caller's current context, and closes the implicit block instead if so. This
is what lets `case ... of` or `let ... in` blocks end without a line break
dedenting past them.

# Backtracking

Next retains recently produced tokens in a small ring so the parser can
Backtrack and Current without the lexer re-scanning anything, bounded by a
fixed capacity — rewinding further than that is a programming error.
*/
package lexer
