package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"

	"github.com/aubreyrjones/lemon-go/lexer"
)

const (
	tPlus = iota + 1
	tAssign
	tIdent
)

func TestAdapterScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.lexer")
	defer teardown()
	//
	lx := lexer.NewLexicon()
	if err := lx.AddLiteral(tPlus, "+"); err != nil {
		t.Fatal(err)
	}
	if err := lx.AddLiteral(tAssign, ":="); err != nil {
		t.Fatal(err)
	}
	lx.SetTokenName(tPlus, "PLUS")
	lx.SetTokenName(tAssign, "ASSIGN")
	lx.SetTokenName(tIdent, "IDENT")
	//
	adapter, err := NewAdapter(lx, func(l *lexmachine.Lexer) {
		l.Add([]byte(`( |\t|\n)+`), Skip)
		l.Add([]byte(`[a-z]+`), Value(tIdent))
	})
	if err != nil {
		t.Fatal(err)
	}
	table := lexer.NewStringTable()
	sc, err := adapter.Scanner("x := a + b", table)
	if err != nil {
		t.Fatal(err)
	}
	var types []int
	var values []string
	for {
		tok, ok, err := sc.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		t.Logf(" %3d | %-8s | %q", tok.Type, tok.Name(), tok.Value())
		types = append(types, int(tok.Type))
		values = append(values, tok.Value())
	}
	expected := []int{tIdent, tAssign, tIdent, tPlus, tIdent, 0}
	if len(types) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(types))
	}
	for i, typ := range expected {
		if types[i] != typ {
			t.Errorf("token #%d: expected type %d, got %d", i, typ, types[i])
		}
	}
	if values[0] != "x" || values[2] != "a" || values[4] != "b" {
		t.Errorf("wrong identifier values: %v", values)
	}
	if values[3] != "+" {
		t.Errorf("literal token should render its canonical text, got %q", values[3])
	}
}

// Terminated literals cannot be expressed in the DFA and must be left out.
func TestAdapterSkipsTerminatedLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.lexer")
	defer teardown()
	//
	lx := lexer.NewLexicon()
	if err := lx.AddTerminatedLiteral(tPlus, "end", `\s`, lexer.DefaultRegex); err != nil {
		t.Fatal(err)
	}
	if err := lx.AddLiteral(tAssign, ";"); err != nil {
		t.Fatal(err)
	}
	adapter, err := NewAdapter(lx, nil)
	if err != nil {
		t.Fatal(err)
	}
	table := lexer.NewStringTable()
	sc, err := adapter.Scanner(";", table)
	if err != nil {
		t.Fatal(err)
	}
	tok, ok, err := sc.Next()
	if err != nil || !ok || tok.Type != tAssign {
		t.Errorf("expected the plain literal to scan, got (%v, %v, %v)", tok, ok, err)
	}
}
