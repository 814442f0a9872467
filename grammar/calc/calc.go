/*
Package calc carries a generated-style LALR engine for a small arithmetic
grammar, serving as the reference consumer of the parse runtime:

	expr   ➞ expr + term  |  term
	term   ➞ term * factor  |  factor
	factor ➞ ( expr )  |  NUM

with NUM = [0-9]+ and whitespace skipped. The tables in engine.go are what
the table generator emits for this grammar; the reduction actions build the
parse tree through the grammar action handle exactly the way generated
actions do.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Aubrey R. Jones
*/
package calc

import (
	"github.com/aubreyrjones/lemon-go"
	"github.com/aubreyrjones/lemon-go/lexer"
	"github.com/aubreyrjones/lemon-go/parser"
	"github.com/aubreyrjones/lemon-go/parsetree"
)

// Token categories, as the generator numbers them.
const (
	PLUS lemon.TokType = iota + 1
	TIMES
	LPAREN
	RPAREN
	NUM
)

// Lexicon is the scanner configuration for the calc grammar.
var Lexicon = lexer.NewLexicon()

func init() {
	must(Lexicon.AddSkip(`\s+`, lexer.DefaultRegex))
	must(Lexicon.AddLiteral(PLUS, "+"))
	must(Lexicon.AddLiteral(TIMES, "*"))
	must(Lexicon.AddLiteral(LPAREN, "("))
	must(Lexicon.AddLiteral(RPAREN, ")"))
	must(Lexicon.AddValueType(NUM, `[0-9]+`, lexer.DefaultRegex))
	Lexicon.SetTokenName(PLUS, "PLUS")
	Lexicon.SetTokenName(TIMES, "TIMES")
	Lexicon.SetTokenName(LPAREN, "LPAREN")
	Lexicon.SetTokenName(RPAREN, "RPAREN")
	Lexicon.SetTokenName(NUM, "NUM")
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// NewParser creates a fresh driver for the calc grammar.
func NewParser() *parser.Parser {
	return parser.New(Lexicon, newEngine)
}

// Parse parses an arithmetic expression into a parse tree.
func Parse(input string) (parsetree.Node, error) {
	return NewParser().Parse(input)
}
