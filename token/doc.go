/*
Package token defines the closed set of token kinds produced by the wisp
lexer, the Token value type, and the Location point-position tracker shared
by the lexer and parser.

# Token kinds

NAME, OPERATOR, NUMBER, FLOAT, the bracket/paren/brace family, the
structural separators COMMA/EQUALSSIGN/SEMICOLON, the keyword set
(module/class/instance/where/let/in/case/of/data), ARROW and TYPEDECL round
out the kinds visible to the parser. INDENTSTART and INDENTLEVEL are
virtual tokens used only inside the layout engine; they never escape to the
parser.

# Equality

Token equality (Equal) compares Kind and Lexeme only — Location is
informational and excluded, so two tokens scanned at different source
positions but with the same kind and text compare equal.
*/
package token
