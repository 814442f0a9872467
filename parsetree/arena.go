/*
Package parsetree implements the two tree representations of the parse
runtime: the arena-owned builder tree that generated reduction actions
construct during a parse, and the value-semantics tree handed to callers,
together with the lowering pass between them and a GraphViz DOT renderer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Aubrey R. Jones
*/
package parsetree

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/aubreyrjones/lemon-go/lexer"
)

// tracer traces with key 'lemon.tree'.
func tracer() tracing.Trace {
	return tracing.Select("lemon.tree")
}

// Ref is a handle to a builder node inside an Arena. Handles are dense
// integer indices rather than pointers, which keeps ownership explicit and
// defends against accidental cycles.
type Ref int

// Nil is the null node handle.
const Nil Ref = -1

// A builder node holds either a production name or a token, never both.
type builderNode struct {
	prod     string
	tok      lexer.Token
	terminal bool
	line     int64
	children []Ref
	live     bool
}

// Arena owns every builder node created during one parse. It is cleared at
// the start of the next parse; the value tree lowered from it is unaffected
// because it is by-value.
type Arena struct {
	nodes []builderNode
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// MakeProduction allocates a node for a production name. Line -1 means
// "unspecified".
func (a *Arena) MakeProduction(name string, line int64, children ...Ref) Ref {
	a.nodes = append(a.nodes, builderNode{
		prod:     name,
		line:     line,
		children: append([]Ref(nil), children...),
		live:     true,
	})
	return Ref(len(a.nodes) - 1)
}

// MakeToken allocates a node for a token; the node's line is the token's.
func (a *Arena) MakeToken(tok lexer.Token) Ref {
	a.nodes = append(a.nodes, builderNode{
		tok:      tok,
		terminal: true,
		line:     int64(tok.Line),
		live:     true,
	})
	return Ref(len(a.nodes) - 1)
}

// PushBack appends child at the end of n's children and returns n, so
// reduction actions can chain construction calls.
func (a *Arena) PushBack(n, child Ref) Ref {
	node := a.node(n)
	node.children = append(node.children, child)
	return n
}

// PushFront inserts child at the front of n's children and returns n.
func (a *Arena) PushFront(n, child Ref) Ref {
	node := a.node(n)
	node.children = append([]Ref{child}, node.children...)
	return n
}

// AppendAll appends children in order and returns n.
func (a *Arena) AppendAll(n Ref, children ...Ref) Ref {
	node := a.node(n)
	node.children = append(node.children, children...)
	return n
}

// SetLine sets n's line and returns n.
func (a *Arena) SetLine(n Ref, line int64) Ref {
	a.node(n).line = line
	return n
}

// Line returns n's line.
func (a *Arena) Line(n Ref) int64 {
	return a.node(n).line
}

// Drop releases a node early to limit interim memory. The node must not be
// referenced by later reductions.
func (a *Arena) Drop(n Ref) {
	if n < 0 || int(n) >= len(a.nodes) || !a.nodes[n].live {
		return
	}
	a.nodes[n] = builderNode{}
}

// Reset clears the arena. All previously handed out handles become invalid.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	count := 0
	for i := range a.nodes {
		if a.nodes[i].live {
			count++
		}
	}
	return count
}

func (a *Arena) node(n Ref) *builderNode {
	if n < 0 || int(n) >= len(a.nodes) || !a.nodes[n].live {
		panic("parsetree: invalid builder node handle")
	}
	return &a.nodes[n]
}
