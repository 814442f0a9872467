/*
Package lexmach adapts lexmachine as an alternative tokenizer backend.

The adapter replays a Lexicon's literals into a lexmachine DFA and lets the
caller add its own patterns. It serves hosts that want DFA scanning and
need none of the scanner's extras: terminator lookahead, string families
and capture-group extraction cannot be expressed here, so terminated
literals are left out of the DFA. The driver path does not use this
package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Aubrey R. Jones
*/
package lexmach

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/aubreyrjones/lemon-go"
	"github.com/aubreyrjones/lemon-go/lexer"
)

// tracer traces with key 'lemon.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lemon.lexer")
}

// Adapter wraps a compiled lexmachine DFA over a Lexicon's literal set.
type Adapter struct {
	Lexer   *lexmachine.Lexer
	lexicon *lexer.Lexicon
}

// NewAdapter creates an adapter for a Lexicon. The init callback, when not
// nil, may add patterns (identifiers, numbers, skips) to the DFA before the
// Lexicon's terminator-free literals are added. NewAdapter returns an error
// if compiling the DFA failed.
func NewAdapter(lx *lexer.Lexicon, init func(*lexmachine.Lexer)) (*Adapter, error) {
	adapter := &Adapter{Lexer: lexmachine.NewLexer(), lexicon: lx}
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range lx.Literals() {
		if lit.Terminated {
			tracer().Infof("literal %q has a terminator, not added to DFA", lit.Text)
			continue
		}
		r := "\\" + strings.Join(strings.Split(lit.Text, ""), "\\")
		adapter.Lexer.Add([]byte(r), Literal(lit.Code))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input, interning value-token text
// in table.
func (a *Adapter) Scanner(input string, table *lexer.StringTable) (*Scanner, error) {
	s, err := a.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, lexicon: a.lexicon, table: table, Error: logError}, nil
}

// Scanner is a pull tokenizer over a lexmachine scanner, producing the same
// Token type as the prefix-tree scanner.
type Scanner struct {
	scanner    *lexmachine.Scanner
	lexicon    *lexer.Lexicon
	table      *lexer.StringTable
	reachedEnd bool
	Error      func(error)
}

// Default error reporting function for lexmachine-based scanners.
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// Next produces the next token. Unmatchable input is reported to the error
// handler and skipped. Next returns ok=false after the synthetic EOF token
// has been emitted.
func (s *Scanner) Next() (lexer.Token, bool, error) {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		if s.reachedEnd {
			return lexer.Token{}, false, nil
		}
		s.reachedEnd = true
		return lexer.MakeLiteralToken(s.lexicon, lemon.EOF, 0), true, nil
	}
	token := tok.(*lexmachine.Token)
	if token.Value == nil {
		return lexer.MakeLiteralToken(s.lexicon, lemon.TokType(token.Type), token.StartLine), true, nil
	}
	return lexer.MakeValueToken(s.lexicon, lemon.TokType(token.Type), s.table, token.Value.(string), token.StartLine), true, nil
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Literal is a pre-defined action which wraps a match into a literal token.
func Literal(code lemon.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(code), nil, m), nil
	}
}

// Value is a pre-defined action which wraps a match into a value token
// carrying the matched text.
func Value(code lemon.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(code), string(m.Bytes), m), nil
	}
}
