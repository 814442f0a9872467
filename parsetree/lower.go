package parsetree

// Lower copies the arena-owned builder tree rooted at root into a value
// tree. Node IDs are assigned pre-order from a counter starting at 0, so
// they form a contiguous numbering that is stable for a given tree shape;
// the DOT renderer keys on them.
//
// Token nodes record the token's name, value and line; production nodes
// record the production string and the line the reduction action supplied.
func Lower(a *Arena, root Ref) Node {
	if root == Nil {
		return Node{Line: -1, ID: -1}
	}
	counter := 0
	n := lowerNode(a, root, &counter)
	tracer().Debugf("lowered %d nodes", counter)
	return n
}

func lowerNode(a *Arena, ref Ref, counter *int) Node {
	b := a.node(ref)
	n := Node{Line: b.line, ID: *counter}
	*counter++
	if b.terminal {
		n.TokName = b.tok.Name()
		n.Value = b.tok.Value()
	} else {
		n.Production = b.prod
	}
	for _, c := range b.children {
		n.Children = append(n.Children, lowerNode(a, c, counter))
	}
	return n
}
