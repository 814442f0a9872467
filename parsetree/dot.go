package parsetree

import (
	"fmt"
	"strings"
)

// sanitizer escapes label text for dot record shapes.
var sanitizer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// Dotify creates a complete GraphViz dot graph rooted at the given node.
// Every tree node becomes one record-shaped graph node, keyed by its ID;
// edges connect children to their parents.
func Dotify(root Node) string {
	var out strings.Builder
	out.WriteString("digraph \"AST\" { \n")
	out.WriteString("node [shape=record, style=filled];\n\n")
	dotify(&out, root, -1)
	out.WriteString("\n}\n")
	return out.String()
}

func dotify(out *strings.Builder, n Node, parentID int) {
	if n.IsTerminal() {
		fmt.Fprintf(out, "node [shape=record, label=\"{<f0>line:%d | { <f1> %s | <f2> %s}}\"] %d;\n",
			n.Line, sanitizer.Replace(n.TokName), sanitizer.Replace(n.Value), n.ID)
	} else {
		fmt.Fprintf(out, "node [shape=record, label=\"{<f0>line:%d | <f1> %s }\"] %d;\n",
			n.Line, sanitizer.Replace(n.Production), n.ID)
	}
	if parentID >= 0 {
		fmt.Fprintf(out, "%d -> %d;\n", parentID, n.ID)
	}
	for _, c := range n.Children {
		dotify(out, c, n.ID)
	}
}
