/*
Package lexer implements the configurable scanner of the parse runtime.

The scanner recognizes three token families, interleaved with skip
patterns: fixed-string literals held in a prefix tree with optional
terminator lookahead, regex-matched value tokens, and delimited strings
with escape rules. Families are attempted in a fixed order (strings, then
literals, then value patterns), so delimiters cannot be stolen by literals
and keywords outrank identifier patterns. Within each family, registration
order is priority; within literals, the longest match wins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Aubrey R. Jones
*/
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/aubreyrjones/lemon-go"
)

// tracer traces with key 'lemon.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lemon.lexer")
}

// previewLength bounds the remaining-input excerpt carried by lexer errors.
const previewLength = 100

// Scanner is a pull tokenizer over one input string. It is created per
// parse and not shareable; the Lexicon it reads is.
type Scanner struct {
	lexicon    *Lexicon
	table      *StringTable
	input      string
	pos        int
	line       int
	count      int
	reachedEnd bool
	err        error
}

// NewScanner creates a scanner over input. Value-token text is interned in
// table, which the caller typically shares with the driver.
func NewScanner(input string, lexicon *Lexicon, table *StringTable) *Scanner {
	return &Scanner{
		lexicon: lexicon,
		table:   table,
		input:   input,
		line:    1,
	}
}

// Next produces the next token. It returns ok=false after the synthetic EOF
// token has been emitted. A lexing error is fatal: the scanner stays in the
// failed state and re-returns the error.
func (s *Scanner) Next() (Token, bool, error) {
	if s.err != nil {
		return Token{}, false, s.err
	}
	s.skip()
	if s.pos == len(s.input) {
		if s.reachedEnd {
			return Token{}, false, nil
		}
		s.reachedEnd = true
		return MakeLiteralToken(s.lexicon, lemon.EOF, s.line), true, nil
	}
	if tok, ok, err := s.nextString(); err != nil {
		s.err = err
		return Token{}, false, err
	} else if ok {
		s.count++
		return tok, true, nil
	}
	if tok, ok := s.nextLiteral(); ok {
		s.count++
		return tok, true, nil
	}
	if tok, ok := s.nextValue(); ok {
		s.count++
		return tok, true, nil
	}
	s.err = fmt.Errorf("lexer failure on line %d. Around here:\n%s", s.line, s.Remainder(previewLength))
	return Token{}, false, s.err
}

// Line returns the current 1-based line.
func (s *Scanner) Line() int {
	return s.line
}

// Count returns the number of tokens produced so far.
func (s *Scanner) Count() int {
	return s.count
}

// ConsumedInput reports whether the cursor has reached the end of input.
func (s *Scanner) ConsumedInput() bool {
	return s.pos == len(s.input)
}

// Remainder returns up to maxLen bytes of unconsumed input (all of it when
// maxLen is 0).
func (s *Scanner) Remainder(maxLen int) string {
	rest := s.input[s.pos:]
	if maxLen > 0 && len(rest) > maxLen {
		return rest[:maxLen]
	}
	return rest
}

// Every advancement counts newlines in the traversed span.
func (s *Scanner) advanceBy(count int) {
	s.advanceTo(s.pos + count)
}

func (s *Scanner) advanceTo(newPos int) {
	s.line += strings.Count(s.input[s.pos:newPos], "\n")
	s.pos = newPos
}

// skip consumes skip-pattern matches, restarting the pattern list after
// every hit, until no pattern matches at the cursor.
func (s *Scanner) skip() {
	for skipped := true; skipped; {
		skipped = false
		for _, re := range s.lexicon.skips {
			if m := re.FindStringIndex(s.input[s.pos:]); m != nil && m[1] > 0 {
				skipped = true
				s.advanceBy(m[1])
			}
		}
	}
}

// nextString attempts each string definition in registration order.
func (s *Scanner) nextString() (Token, bool, error) {
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	for _, def := range s.lexicon.stringDefs {
		if r != def.Open {
			continue
		}
		tok, err := s.scanString(def)
		if err != nil {
			return Token{}, false, err
		}
		return tok, true, nil
	}
	return Token{}, false, nil
}

// scanString scans one string token at the cursor, which sits on the open
// delimiter. With JoinAdjacent, it keeps scanning bodies of the same
// definition across skip-matchable separation and concatenates them. The
// token value is the body text verbatim, with escapes not expanded, and
// the token line is the first body's starting line.
func (s *Scanner) scanString(def StringDef) (Token, error) {
	startLine := s.line
	var body strings.Builder
	for {
		end, err := s.stringEnd(def)
		if err != nil {
			return Token{}, err
		}
		body.WriteString(s.input[s.pos+utf8.RuneLen(def.Open) : end])
		s.advanceTo(end + utf8.RuneLen(def.Open))
		if def.Flags&JoinAdjacent == 0 {
			break
		}
		s.skip()
		if s.pos == len(s.input) {
			break
		}
		if r, _ := utf8.DecodeRuneInString(s.input[s.pos:]); r != def.Open {
			break
		}
	}
	tracer().Debugf("string token %d = %q", def.Code, body.String())
	return MakeValueToken(s.lexicon, def.Code, s.table, body.String(), startLine), nil
}

// stringEnd walks forward from one past the open delimiter and returns the
// byte position of the closing delimiter. The escape character protects the
// delimiter and itself; anything else after it is left alone.
func (s *Scanner) stringEnd(def StringDef) (int, error) {
	i := s.pos + utf8.RuneLen(def.Open)
	for i < len(s.input) {
		r, sz := utf8.DecodeRuneInString(s.input[i:])
		if r == def.Escape {
			nr, nsz := utf8.DecodeRuneInString(s.input[i+sz:])
			if nsz > 0 && (nr == def.Open || nr == def.Escape) {
				i += sz + nsz
				continue
			}
			if def.Escape != def.Open {
				i += sz
				continue
			}
		}
		if r == '\n' && def.Flags&SpanNewlines == 0 {
			return 0, fmt.Errorf("lexer error: newline in single-line string on line %d", s.line+strings.Count(s.input[s.pos:i], "\n"))
		}
		if r == def.Open {
			return i, nil
		}
		i += sz
	}
	return 0, fmt.Errorf("lexer error: string lexing reached end of input")
}

// nextLiteral queries the prefix tree at the cursor.
func (s *Scanner) nextLiteral() (Token, bool) {
	code, end, ok := s.lexicon.literals.TryMatch(s.input, s.pos)
	if !ok {
		return Token{}, false
	}
	line := s.line
	s.advanceTo(end)
	return MakeLiteralToken(s.lexicon, code, line), true
}

// nextValue attempts each value pattern in registration order. The first
// capture group, when the pattern has one, is the token value; the cursor
// advances by the whole match either way.
func (s *Scanner) nextValue() (Token, bool) {
	for _, vt := range s.lexicon.valueTypes {
		m := vt.re.FindStringSubmatchIndex(s.input[s.pos:])
		if m == nil {
			continue
		}
		value := s.input[s.pos+m[0] : s.pos+m[1]]
		if len(m) > 2 && m[2] >= 0 {
			value = s.input[s.pos+m[2] : s.pos+m[3]]
		}
		line := s.line
		s.advanceBy(m[1])
		tracer().Debugf("value token %d = %q", vt.code, value)
		return MakeValueToken(s.lexicon, vt.code, s.table, value, line), true
	}
	return Token{}, false
}
