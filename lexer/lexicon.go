package lexer

import (
	"fmt"
	"regexp"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/aubreyrjones/lemon-go"
)

// RegexFlags modify how a skip, value or terminator pattern is compiled.
type RegexFlags uint8

// Patterns are case-insensitive unless CaseSensitive is passed.
const (
	DefaultRegex  RegexFlags = 0
	CaseSensitive RegexFlags = 1 << iota
)

// StringFlags modify how a string definition scans.
type StringFlags uint8

const (
	// SpanNewlines permits raw newlines inside a string body.
	SpanNewlines StringFlags = 1 << iota
	// JoinAdjacent concatenates consecutive strings of the same definition,
	// separated only by skip-matchable content, into a single token.
	JoinAdjacent
)

// StringDef configures one delimited-string token family.
type StringDef struct {
	Open   rune
	Escape rune
	Code   lemon.TokType
	Flags  StringFlags
}

// LiteralSpec records one registered literal, for diagnostics and for
// scanner backends that replay the literal set (see package lexmach).
type LiteralSpec struct {
	Code       lemon.TokType
	Text       string
	Terminated bool
}

type valuePattern struct {
	re   *regexp.Regexp
	code lemon.TokType
}

// CompileMatcher compiles a pattern for continuous matching: the match is
// anchored at the start of the remaining input. Patterns are compiled
// case-insensitive unless CaseSensitive is passed.
//
// The regexp syntax is Go's RE2. Grammars written against an ECMAScript
// engine port over directly for the constructs this runtime uses (character
// classes, alternation, repetition, one capture group); backreferences and
// lookaround do not exist in RE2 and are rejected at registration.
func CompileMatcher(pattern string, flags RegexFlags) (*regexp.Regexp, error) {
	p := `\A(?:` + pattern + `)`
	if flags&CaseSensitive == 0 {
		p = `(?i)` + p
	}
	return regexp.Compile(p)
}

// A Lexicon is the complete scanner configuration: the literal prefix tree,
// skip patterns, value patterns, string definitions and the token name
// registry. It is populated once, before the first parse, and only read
// afterward. Population is not thread-safe; concurrent scans over a
// populated Lexicon are.
type Lexicon struct {
	literals      *PTNode[lemon.TokType]
	literalSpecs  []LiteralSpec
	skips         []*regexp.Regexp
	valueTypes    []valuePattern
	stringDefs    []StringDef
	tokenNames    *treemap.Map // token code -> diagnostic name
	literalValues map[lemon.TokType]string
}

// NewLexicon creates an empty Lexicon. The EOF token is pre-named "$", the
// name the table generator itself uses for the end-of-input terminal.
func NewLexicon() *Lexicon {
	lx := &Lexicon{
		literals:      NewPrefixTree[lemon.TokType](),
		tokenNames:    treemap.NewWith(utils.IntComparator),
		literalValues: make(map[lemon.TokType]string),
	}
	lx.SetTokenName(lemon.EOF, "$")
	return lx
}

// AddLiteral registers a fixed-string literal token. The literal's text is
// recorded as the token's canonical value.
func (lx *Lexicon) AddLiteral(code lemon.TokType, literal string) error {
	return lx.addLiteral(code, literal, nil)
}

// AddTerminatedLiteral registers a literal that is only accepted when the
// input following it matches the terminator pattern continuously.
func (lx *Lexicon) AddTerminatedLiteral(code lemon.TokType, literal string, terminator string, flags RegexFlags) error {
	re, err := CompileMatcher(terminator, flags)
	if err != nil {
		return fmt.Errorf("terminator for literal %q: %v", literal, err)
	}
	return lx.addLiteral(code, literal, re)
}

func (lx *Lexicon) addLiteral(code lemon.TokType, literal string, term *regexp.Regexp) error {
	if err := lx.literals.Add(literal, code, term); err != nil {
		return fmt.Errorf("%v: %q", err, literal)
	}
	lx.literalSpecs = append(lx.literalSpecs, LiteralSpec{Code: code, Text: literal, Terminated: term != nil})
	lx.literalValues[code] = literal
	return nil
}

// AddSkip registers a pattern whose matches are silently consumed between
// tokens. Skips are attempted in registration order.
func (lx *Lexicon) AddSkip(pattern string, flags RegexFlags) error {
	re, err := CompileMatcher(pattern, flags)
	if err != nil {
		return fmt.Errorf("skip pattern: %v", err)
	}
	lx.skips = append(lx.skips, re)
	return nil
}

// AddValueType registers a regex-matched value token. If the pattern has a
// capture group, the first group is the token value; otherwise the whole
// match is. Value patterns are attempted in registration order, after
// literals.
func (lx *Lexicon) AddValueType(code lemon.TokType, pattern string, flags RegexFlags) error {
	re, err := CompileMatcher(pattern, flags)
	if err != nil {
		return fmt.Errorf("value pattern for token %d: %v", code, err)
	}
	lx.valueTypes = append(lx.valueTypes, valuePattern{re: re, code: code})
	return nil
}

// AddStringDef registers a delimited-string token family. String
// definitions are attempted in registration order, before literals, so a
// delimiter cannot be stolen by a single-character literal.
func (lx *Lexicon) AddStringDef(open, escape rune, code lemon.TokType, flags StringFlags) error {
	lx.stringDefs = append(lx.stringDefs, StringDef{Open: open, Escape: escape, Code: code, Flags: flags})
	return nil
}

// SetTokenName registers the diagnostic name for a token code.
func (lx *Lexicon) SetTokenName(code lemon.TokType, name string) {
	lx.tokenNames.Put(int(code), name)
}

// TokenName returns the diagnostic name for a token code, or "" if none was
// registered.
func (lx *Lexicon) TokenName(code lemon.TokType) string {
	if name, ok := lx.tokenNames.Get(int(code)); ok {
		return name.(string)
	}
	return ""
}

// LiteralValue returns the canonical text of a literal token, or "LITERAL"
// for codes without one.
func (lx *Lexicon) LiteralValue(code lemon.TokType) string {
	if v, ok := lx.literalValues[code]; ok {
		return v
	}
	return "LITERAL"
}

// Literals lists the registered literals in registration order.
func (lx *Lexicon) Literals() []LiteralSpec {
	return lx.literalSpecs
}

// Dump traces the registered token names in code order.
func (lx *Lexicon) Dump() {
	it := lx.tokenNames.Iterator()
	for it.Next() {
		tracer().Debugf("token %3d = %s", it.Key().(int), it.Value().(string))
	}
	tracer().Debugf("%d literals, %d skips, %d value types, %d string defs",
		len(lx.literalSpecs), len(lx.skips), len(lx.valueTypes), len(lx.stringDefs))
}

// --- Process-wide configuration --------------------------------------------

// Std is the process-wide Lexicon, for hosts with a single generated
// grammar. Generated packages with their own Lexicon ignore it.
var Std = NewLexicon()

// AddLiteral registers a literal with the process-wide Lexicon.
func AddLiteral(code lemon.TokType, literal string) error {
	return Std.AddLiteral(code, literal)
}

// AddTerminatedLiteral registers a terminated literal with the process-wide
// Lexicon.
func AddTerminatedLiteral(code lemon.TokType, literal, terminator string, flags RegexFlags) error {
	return Std.AddTerminatedLiteral(code, literal, terminator, flags)
}

// AddSkip registers a skip pattern with the process-wide Lexicon.
func AddSkip(pattern string, flags RegexFlags) error {
	return Std.AddSkip(pattern, flags)
}

// AddValueType registers a value token with the process-wide Lexicon.
func AddValueType(code lemon.TokType, pattern string, flags RegexFlags) error {
	return Std.AddValueType(code, pattern, flags)
}

// AddStringDef registers a string definition with the process-wide Lexicon.
func AddStringDef(open, escape rune, code lemon.TokType, flags StringFlags) error {
	return Std.AddStringDef(open, escape, code, flags)
}
