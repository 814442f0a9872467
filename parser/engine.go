package parser

import "github.com/aubreyrjones/lemon-go/lexer"

// Engine is the contract between the driver and a generated LALR automaton.
// The three entry points of the generated code, allocate, parse-step and
// free, map onto an EngineFactory call, Step and Release.
//
// Step feeds one token into the automaton. It may perform any number of
// reductions before returning, calling back into the grammar action handle
// to build parse nodes. The engine must invoke h.Success() on the accept
// transition and h.Error() on an unrecoverable syntax error; after calling
// h.Error() it must consume no further tokens.
type Engine interface {
	Step(tok lexer.Token, h *Parser)
	Release()
}

// EngineFactory allocates a fresh engine state. The driver calls it at the
// start of every parse and releases the engine on every exit path.
type EngineFactory func() Engine
