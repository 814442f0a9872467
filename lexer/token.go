package lexer

import (
	"fmt"

	"github.com/aubreyrjones/lemon-go"
)

// Token is one lexical token. Tokens are small trivial values; the matched
// text of a value token lives in a StringTable and is referenced by index,
// so tokens pass through the generated engine by copy.
type Token struct {
	Type       lemon.TokType
	valueIndex int
	table      *StringTable
	lexicon    *Lexicon
	Line       int // 1-based line on which the match started
}

// MakeLiteralToken creates a token for a fixed literal (or EOF). Its value
// is the literal's canonical text.
func MakeLiteralToken(lx *Lexicon, code lemon.TokType, line int) Token {
	return Token{Type: code, lexicon: lx, Line: line}
}

// MakeValueToken creates a token carrying matched text, interning the text
// in table.
func MakeValueToken(lx *Lexicon, code lemon.TokType, table *StringTable, value string, line int) Token {
	return Token{Type: code, valueIndex: table.Push(value), table: table, lexicon: lx, Line: line}
}

// IsEOF reports whether this is the synthetic end-of-input token.
func (t Token) IsEOF() bool {
	return t.Type == lemon.EOF
}

// Value returns the interned match for value tokens, and the canonical
// literal text for literal tokens.
func (t Token) Value() string {
	if t.table != nil {
		return t.table.Get(t.valueIndex)
	}
	return t.lexicon.LiteralValue(t.Type)
}

// Name returns the diagnostic name registered for the token's category.
func (t Token) Name() string {
	return t.lexicon.TokenName(t.Type)
}

// String renders the token for diagnostics.
func (t Token) String() string {
	if t.table != nil {
		return fmt.Sprintf("%s <%s> (line %d)", t.Name(), t.Value(), t.Line)
	}
	return fmt.Sprintf("%s (line %d)", t.Name(), t.Line)
}
