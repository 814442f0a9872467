package parser_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/aubreyrjones/lemon-go/lexer"
	"github.com/aubreyrjones/lemon-go/parser"
	"github.com/aubreyrjones/lemon-go/parsetree"
)

func testLexicon(t *testing.T) *lexer.Lexicon {
	t.Helper()
	lx := lexer.NewLexicon()
	if err := lx.AddSkip(`\s+`, lexer.DefaultRegex); err != nil {
		t.Fatal(err)
	}
	if err := lx.AddValueType(1, `[a-z]+`, lexer.DefaultRegex); err != nil {
		t.Fatal(err)
	}
	lx.SetTokenName(1, "WORD")
	return lx
}

// listEngine accepts any non-empty sequence of WORD tokens, collecting them
// under a single "words" production; empty input is a syntax error. It exercises the grammar action handle the way
// generated reductions do.
type listEngine struct {
	root parsetree.Ref
	dead bool
}

func newListEngine() parser.Engine {
	return &listEngine{root: parsetree.Nil}
}

func (e *listEngine) Release() {}

func (e *listEngine) Step(tok lexer.Token, h *parser.Parser) {
	if e.dead {
		return
	}
	if tok.IsEOF() {
		if e.root == parsetree.Nil {
			e.dead = true
			h.Error()
			return
		}
		h.PushRoot(e.root)
		h.Success()
		return
	}
	if e.root == parsetree.Nil {
		e.root = h.MakeNodeAt("words", int64(tok.Line))
	}
	h.Tree().PushBack(e.root, h.TokenNode(tok))
}

// stallEngine consumes everything and never accepts.
type stallEngine struct{}

func (stallEngine) Step(lexer.Token, *parser.Parser) {}
func (stallEngine) Release()                         {}

// rootlessEngine accepts without ever pushing a root.
type rootlessEngine struct{}

func (rootlessEngine) Step(tok lexer.Token, h *parser.Parser) {
	if tok.IsEOF() {
		h.Success()
	}
}
func (rootlessEngine) Release() {}

func TestDriverBuildsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.parser")
	defer teardown()
	//
	p := parser.New(testLexicon(t), newListEngine)
	tree, err := p.Parse("alpha beta\ngamma")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Production != "words" || tree.Len() != 3 {
		t.Fatalf("unexpected tree: %v", tree)
	}
	if tree.Child(2).Value != "gamma" || tree.Child(2).Line != 2 {
		t.Errorf("bad third word: %v", tree.Child(2))
	}
	if tree.ID != 0 || tree.Child(0).ID != 1 {
		t.Errorf("IDs must be assigned pre-order from 0")
	}
}

func TestDriverReuseResets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.parser")
	defer teardown()
	//
	p := parser.New(testLexicon(t), newListEngine)
	first, err := p.Parse("one two")
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Parse("three")
	if err != nil {
		t.Fatal(err)
	}
	if second.Len() != 1 || second.Child(0).Value != "three" {
		t.Errorf("stale state leaked into the second parse: %v", second)
	}
	// the first tree is by-value and survives the reset
	if first.Len() != 2 || first.Child(0).Value != "one" {
		t.Errorf("earlier result must be unaffected by reuse: %v", first)
	}
}

func TestDriverLexerErrorPropagates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.parser")
	defer teardown()
	//
	p := parser.New(testLexicon(t), newListEngine)
	_, err := p.Parse("abc @@@")
	if err == nil || !strings.Contains(err.Error(), "lexer failure") {
		t.Errorf("expected a lexer failure, got %v", err)
	}
}

func TestDriverSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.parser")
	defer teardown()
	//
	p := parser.New(testLexicon(t), newListEngine)
	_, err := p.Parse("")
	if err == nil || !strings.Contains(err.Error(), "parse error on token") {
		t.Errorf("expected a syntax error, got %v", err)
	}
	if !strings.Contains(err.Error(), "$") {
		t.Errorf("diagnostic should reference the synthetic EOF token, got %v", err)
	}
}

func TestDriverIncompleteParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.parser")
	defer teardown()
	//
	p := parser.New(testLexicon(t), func() parser.Engine { return stallEngine{} })
	_, err := p.Parse("abc")
	if err == nil || !strings.Contains(err.Error(), "without parser completing") {
		t.Errorf("expected incomplete-parse diagnostic, got %v", err)
	}
}

func TestDriverSuccessWithoutRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.parser")
	defer teardown()
	//
	p := parser.New(testLexicon(t), func() parser.Engine { return rootlessEngine{} })
	_, err := p.Parse("abc")
	if err == nil || !strings.Contains(err.Error(), "without parser completing") {
		t.Errorf("acceptance without a root must not produce a tree, got %v", err)
	}
}

// dropEngine releases interim nodes the way reductions may, to bound
// memory.
type dropEngine struct {
	kept parsetree.Ref
}

func newDropEngine() parser.Engine {
	return &dropEngine{kept: parsetree.Nil}
}

func (e *dropEngine) Release() {}

func (e *dropEngine) Step(tok lexer.Token, h *parser.Parser) {
	if tok.IsEOF() {
		h.PushRoot(e.kept)
		h.Success()
		return
	}
	scratch := h.MakeNode("scratch", h.TokenNode(tok))
	h.DropNode(scratch)
	if e.kept == parsetree.Nil {
		e.kept = h.MakeNode("kept")
	}
	h.Tree().PushBack(e.kept, h.TokenNode(tok))
}

func TestDriverDropNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.parser")
	defer teardown()
	//
	p := parser.New(testLexicon(t), newDropEngine)
	tree, err := p.Parse("a b c")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Production != "kept" || tree.Len() != 3 {
		t.Errorf("dropping scratch nodes must not disturb the kept tree: %v", tree)
	}
}
