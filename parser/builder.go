package parser

import (
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/source"
)

// Builder assembles a Parser with non-default settings, following the same
// fluent construction shape the lexer and the wider ecosystem around it
// use for anything with more than one or two options.
type Builder struct {
	lexerOpts []lexer.Option
	encode    InstanceEncoder
}

// NewBuilder returns a Builder with default settings.
func NewBuilder() *Builder {
	return &Builder{encode: DefaultInstanceEncoder}
}

// WithLexerOption passes opt through to the underlying lexer.New call.
func (b *Builder) WithLexerOption(opt lexer.Option) *Builder {
	b.lexerOpts = append(b.lexerOpts, opt)
	return b
}

// WithInstanceEncoder overrides how instance bindings are renamed. See
// InstanceEncoder for why this is pluggable rather than fixed.
func (b *Builder) WithInstanceEncoder(encode InstanceEncoder) *Builder {
	b.encode = encode
	return b
}

// Build returns a Parser reading from src with the accumulated settings.
func (b *Builder) Build(src source.CharSource) *Parser {
	return &Parser{
		lexer:  lexer.New(src, b.lexerOpts...),
		encode: b.encode,
	}
}
