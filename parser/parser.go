/*
Package parser implements the driver of the parse runtime.

The driver pulls tokens from a scanner and feeds them into a generated
LALR engine one at a time. During a step the engine calls back into the
grammar action handle (the Parser itself) to construct builder-tree
nodes, record the root, and signal acceptance or a syntax error. On a
successful parse the builder tree is lowered into a value tree and
returned to the caller.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Aubrey R. Jones
*/
package parser

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/aubreyrjones/lemon-go/lexer"
	"github.com/aubreyrjones/lemon-go/parsetree"
)

// tracer traces with key 'lemon.parser'.
func tracer() tracing.Trace {
	return tracing.Select("lemon.parser")
}

// Driver phases. A parse run moves Idle → Running and terminates in
// Succeeded or Failed.
type phase int8

const (
	idle phase = iota
	running
	succeeded
	failed
)

// Parser drives a generated LALR engine over scanned input. It doubles as
// the grammar action handle passed to the engine: generated reduction code
// calls MakeNode, TokenNode, PushRoot and DropNode on it.
//
// A Parser is not shareable; it may be reused for sequential parses, and
// concurrent parses require separate Parsers (sharing the read-only
// Lexicon is fine).
type Parser struct {
	lexicon    *lexer.Lexicon
	factory    EngineFactory
	engine     Engine
	arena      *parsetree.Arena
	strings    *lexer.StringTable
	current    lexer.Token
	root       parsetree.Ref
	successful bool
	fatal      error
	phase      phase
}

// New creates a driver for a Lexicon and a generated engine.
func New(lexicon *lexer.Lexicon, factory EngineFactory) *Parser {
	return &Parser{
		lexicon: lexicon,
		factory: factory,
		arena:   parsetree.NewArena(),
		strings: lexer.NewStringTable(),
		root:    parsetree.Nil,
	}
}

// Parse scans and parses input, returning the root of the parse tree. Any
// failure (lexing, syntax error, or the engine never accepting) is
// fatal and returned as a single error distinguished by message.
func (p *Parser) Parse(input string) (parsetree.Node, error) {
	p.reset()
	p.engine = p.factory()
	defer func() {
		p.engine.Release()
		p.engine = nil
	}()
	scan := lexer.NewScanner(input, p.lexicon, p.strings)
	for {
		tok, ok, err := scan.Next()
		if err != nil {
			p.phase = failed
			return parsetree.Node{}, err
		}
		if !ok {
			break
		}
		p.phase = running
		p.current = tok
		tracer().Debugf("offering token %s", tok)
		p.engine.Step(tok, p)
		if p.fatal != nil {
			p.phase = failed
			return parsetree.Node{}, p.fatal
		}
	}
	if !p.successful || p.root == parsetree.Nil {
		p.phase = failed
		return parsetree.Node{}, fmt.Errorf("reached end of input without parser completing")
	}
	p.phase = succeeded
	return parsetree.Lower(p.arena, p.root), nil
}

// reset prepares the driver for a fresh run: arena and interner cleared,
// success flag and root dropped.
func (p *Parser) reset() {
	p.arena.Reset()
	p.strings.Clear()
	p.current = lexer.Token{}
	p.root = parsetree.Nil
	p.successful = false
	p.fatal = nil
	p.phase = idle
}

// Tree exposes the builder arena to generated reduction code for the
// chaining node operations (PushBack, PushFront, AppendAll, SetLine).
func (p *Parser) Tree() *parsetree.Arena {
	return p.arena
}

// --- Grammar action handle -------------------------------------------------

// MakeNode allocates a builder node for a production name, with line
// "unspecified". Reduction actions may set a line via MakeNodeAt or
// Tree().SetLine.
func (p *Parser) MakeNode(production string, children ...parsetree.Ref) parsetree.Ref {
	return p.arena.MakeProduction(production, -1, children...)
}

// MakeNodeAt allocates a builder node for a production name at a line.
func (p *Parser) MakeNodeAt(production string, line int64, children ...parsetree.Ref) parsetree.Ref {
	return p.arena.MakeProduction(production, line, children...)
}

// TokenNode allocates a builder node for a token; the node inherits the
// token's line.
func (p *Parser) TokenNode(tok lexer.Token) parsetree.Ref {
	return p.arena.MakeToken(tok)
}

// PushRoot records n as the final parse tree root. It may be called more
// than once; the last call wins. Returns n.
func (p *Parser) PushRoot(n parsetree.Ref) parsetree.Ref {
	p.root = n
	return n
}

// DropNode releases a builder node early. The node must not be referenced
// by later reductions.
func (p *Parser) DropNode(n parsetree.Ref) {
	p.arena.Drop(n)
}

// Error is invoked by the engine on an unrecoverable syntax error. The
// resulting fatal error carries the diagnostic rendering of the last
// offered token; the driver surfaces it once the current step returns.
func (p *Parser) Error() {
	tracer().Errorf("parse error on token: %s", p.current)
	p.fatal = fmt.Errorf("parse error on token: %s", p.current)
}

// Success is invoked by the engine on the accept transition.
func (p *Parser) Success() {
	tracer().Debugf("parse accepted after %s", p.current)
	p.successful = true
}
