package parsetree

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Node is a value-typed parse node, in contrast to the arena-backed tree
// used internally during a parse. Callers own a returned tree outright;
// copying a Node copies the subtree.
//
// Exactly one of Production or TokName∧Value is populated: Production for
// interior nodes, TokName (with Value) for terminals. The empty string
// marks the absent member.
type Node struct {
	Production string
	TokName    string
	Value      string
	Line       int64  // line number for this node, -1 if unknown
	ID         int    // unique within a single tree, pre-order from 0
	Children   []Node // all the children of this parse node
	Attr       map[string]interface{}
}

// IsTerminal reports whether the node holds a token rather than a
// production.
func (n Node) IsTerminal() bool {
	return n.TokName != ""
}

// Len returns the number of children of this node.
func (n Node) Len() int {
	return len(n.Children)
}

// Child returns a particular child node. It panics if index is out of
// range.
func (n Node) Child(index int) Node {
	if index < 0 || index >= len(n.Children) {
		panic("parsetree: child index out of range")
	}
	return n.Children[index]
}

// SetAttr stores a downstream annotation on the node. The attribute map is
// opaque to the runtime.
func (n *Node) SetAttr(key string, value interface{}) {
	if n.Attr == nil {
		n.Attr = make(map[string]interface{})
	}
	n.Attr[key] = value
}

// Equal checks for syntactic equality: productions, token name and value
// must be identical, as well as all children being equal under this same
// definition, in order. Line numbers, IDs and attributes do not
// participate.
func (n Node) Equal(o Node) bool {
	if len(n.Children) != len(o.Children) {
		return false
	}
	if n.TokName != o.TokName {
		return false
	}
	if n.Production != o.Production {
		return false
	}
	if n.Value != o.Value {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural fingerprint of the subtree, stable across
// parses: two trees are Equal iff their hashes were computed from the same
// structure. Lines, IDs and attributes do not participate.
func (n Node) Hash() string {
	return fmt.Sprintf("%x", structhash.Sha1(n.shape(), 1))
}

// nodeShape projects the equality-relevant members for hashing.
type nodeShape struct {
	Production string
	TokName    string
	Value      string
	Children   []nodeShape
}

func (n Node) shape() nodeShape {
	s := nodeShape{Production: n.Production, TokName: n.TokName, Value: n.Value}
	for _, c := range n.Children {
		s.Children = append(s.Children, c.shape())
	}
	return s
}

// String renders the node (but not its children).
func (n Node) String() string {
	if n.IsTerminal() {
		return fmt.Sprintf("%s <%s>", n.TokName, n.Value)
	}
	return fmt.Sprintf("{%s} [%d]", n.Production, len(n.Children))
}
