/*
Package parser implements a recursive-descent, operator-precedence parser
over the lexer package's layout-resolved token stream.

# Grammar shape

Most productions are one method each (module, class, instance,
dataDefinition, binding, pattern, parseType_, expression, ...), closely
following the structure of the language they parse: a module is a
semicolon-separated list of top-level declarations, an expression is
application chained with precedence-climbed operators, a type is an
optional list/tuple/name shape followed by an optional arrow.

# Layout coupling

Wherever a token fetch might need the lexer's layout engine to close an
implicit block instead of reporting a token the grammar doesn't expect, the
parser passes a lexer.ParseErrorFunc — see predicates.go for the full set,
each one grounded on a specific grammar position (what can legally follow a
top-level declaration, what ends a binding's left-hand side, and so on).

# Error handling

Fatal syntax errors are raised with fail/failAt, which panic a *ParseError.
ParseModule is the only place that recovers: everything below it is written
as straight-line code, the same way encoding/json's decoder uses an
internal panic/recover pair to avoid threading an error return through
every production.
*/
package parser
