// Package main demonstrates lexing and parsing a small embedded module.
package main

import (
	"fmt"

	"github.com/wisplang/wisp"
	"github.com/wisplang/wisp/debug"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/source"
	"github.com/wisplang/wisp/token"
)

const input = `module Main where {
	compose f g x = f (g x);
	double x = x * 2;
	numbers = [1, 2, 3];
	data Maybe a = Nothing | Just a;
	safeHead xs = case xs of {
		[] -> Nothing;
		: y ys -> Just y
	}
}`

func main() {
	fmt.Println("=== LEXER OUTPUT ===")
	l := lexer.New(source.NewString(input))
	for {
		tok := l.Next_()
		fmt.Println(tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	fmt.Println("\n=== PARSER OUTPUT ===")
	mod, err := wisp.ParseString(input)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	fmt.Println("String():")
	fmt.Println(debug.ToString(mod))

	fmt.Println("\nStructural dump:")
	debug.Print(mod)

	fmt.Printf("\nwisp version: %s\n", wisp.Version)
}
