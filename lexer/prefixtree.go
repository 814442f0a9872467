package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// PTNode is a node of a prefix tree used for longest-match recognition of
// fixed literals. The tree is parameterized over the value attached to each
// accepted literal; the scanner instantiates it with token categories.
//
// A node may carry a terminator pattern. When present, the literal ending at
// this node is accepted only if the input immediately following it matches
// the pattern continuously. This is what keeps a literal "end" from matching
// inside "ending".
type PTNode[V any] struct {
	code       rune
	value      *V
	terminator *regexp.Regexp
	children   []*PTNode[V]
	root       bool
}

// NewPrefixTree creates an empty prefix tree root.
func NewPrefixTree[V any]() *PTNode[V] {
	return &PTNode[V]{root: true}
}

// Add inserts a literal into the tree, character by character, creating
// children on demand. terminator may be nil; if given, it must be compiled
// for continuous matching (see CompileMatcher). Inserting an empty literal
// or a literal already present is an error.
func (n *PTNode[V]) Add(literal string, value V, terminator *regexp.Regexp) error {
	if n.root && literal == "" {
		return fmt.Errorf("cannot add empty literal")
	}
	if literal == "" {
		if n.value != nil {
			return fmt.Errorf("duplicate literal")
		}
		n.value = &value
		n.terminator = terminator
		return nil
	}
	r, sz := utf8.DecodeRuneInString(literal)
	for _, c := range n.children {
		if c.code == r {
			return c.Add(literal[sz:], value, terminator)
		}
	}
	child := &PTNode[V]{code: r}
	n.children = append(n.children, child)
	return child.Add(literal[sz:], value, terminator)
}

// TryMatch attempts to recognize a literal in input starting at byte
// position pos. It descends greedily and backtracks: the longest literal
// whose terminator is satisfied wins; when a longer branch fails its
// terminator, the match falls back to a shorter ancestor.
//
// On success it returns the attached value and the byte position one past
// the matched literal.
func (n *PTNode[V]) TryMatch(input string, pos int) (V, int, bool) {
	if pos < len(input) && len(n.children) > 0 {
		r, sz := utf8.DecodeRuneInString(input[pos:])
		for _, c := range n.children {
			if c.code == r {
				if v, end, ok := c.TryMatch(input, pos+sz); ok {
					return v, end, true
				}
				break // child codes are unique
			}
		}
	}
	if !n.root && n.value != nil && n.terminatorOK(input, pos) {
		return *n.value, pos, true
	}
	var none V
	return none, 0, false
}

// The terminator check succeeds automatically when no terminator is set.
func (n *PTNode[V]) terminatorOK(input string, pos int) bool {
	if n.terminator == nil {
		return true
	}
	return n.terminator.MatchString(input[pos:])
}
