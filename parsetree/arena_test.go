package parsetree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/aubreyrjones/lemon-go/lexer"
)

func valueToken(t *testing.T, lx *lexer.Lexicon, st *lexer.StringTable, name, value string, line int) lexer.Token {
	t.Helper()
	lx.SetTokenName(9, name)
	return lexer.MakeValueToken(lx, 9, st, value, line)
}

func TestArenaBuildAndLower(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.tree")
	defer teardown()
	//
	lx := lexer.NewLexicon()
	st := lexer.NewStringTable()
	a := NewArena()
	num1 := a.MakeToken(valueToken(t, lx, st, "NUM", "1", 1))
	num2 := a.MakeToken(valueToken(t, lx, st, "NUM", "2", 2))
	left := a.MakeProduction("factor", 1, num1)
	right := a.MakeProduction("factor", 2, num2)
	root := a.MakeProduction("sum", -1)
	a.PushBack(root, right)
	a.PushFront(root, left)
	a.SetLine(root, a.Line(left))
	//
	n := Lower(a, root)
	if n.Production != "sum" || n.Line != 1 {
		t.Errorf("bad root: %v line %d", n, n.Line)
	}
	if n.Len() != 2 {
		t.Fatalf("expected 2 children, got %d", n.Len())
	}
	if n.Child(0).Production != "factor" || n.Child(1).Production != "factor" {
		t.Errorf("PushFront/PushBack ordering wrong: %v", n.Children)
	}
	leaf := n.Child(0).Child(0)
	if !leaf.IsTerminal() || leaf.TokName != "NUM" || leaf.Value != "1" || leaf.Line != 1 {
		t.Errorf("bad token node: %v", leaf)
	}
}

func TestLowerPreorderIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.tree")
	defer teardown()
	//
	a := NewArena()
	//     p0
	//    /  \
	//   p1    p4
	//  /  \     \
	// p2   p3    p5
	p2 := a.MakeProduction("c", -1)
	p3 := a.MakeProduction("d", -1)
	p1 := a.MakeProduction("b", -1, p2, p3)
	p5 := a.MakeProduction("f", -1)
	p4 := a.MakeProduction("e", -1, p5)
	p0 := a.MakeProduction("a", -1, p1, p4)
	n := Lower(a, p0)
	//
	var ids []int
	var names []string
	var walk func(Node)
	walk = func(x Node) {
		ids = append(ids, x.ID)
		names = append(names, x.Production)
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	for i, id := range ids {
		if id != i {
			t.Fatalf("IDs are not a contiguous pre-order numbering: %v", ids)
		}
	}
	expected := []string{"a", "b", "c", "d", "e", "f"}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("pre-order visit wrong: %v", names)
		}
	}
}

func TestArenaAppendAllAndDrop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.tree")
	defer teardown()
	//
	a := NewArena()
	c1 := a.MakeProduction("x", -1)
	c2 := a.MakeProduction("y", -1)
	n := a.AppendAll(a.MakeProduction("list", -1), c1, c2)
	if got := Lower(a, n); got.Len() != 2 {
		t.Errorf("AppendAll attached %d children", got.Len())
	}
	scratch := a.MakeProduction("scratch", -1)
	if a.Len() != 4 {
		t.Fatalf("expected 4 live nodes, have %d", a.Len())
	}
	a.Drop(scratch)
	if a.Len() != 3 {
		t.Errorf("Drop must release the node, %d live", a.Len())
	}
	a.Reset()
	if a.Len() != 0 {
		t.Errorf("Reset must clear the arena, %d live", a.Len())
	}
}

func TestLowerNilRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemon.tree")
	defer teardown()
	//
	n := Lower(NewArena(), Nil)
	if n.IsTerminal() || n.Production != "" || n.Len() != 0 {
		t.Errorf("expected an empty node for a nil root, got %v", n)
	}
}
