/*
Package ptree/main provides an interactive command line tool for the
arithmetic demo grammar of the parse runtime. Each input line is parsed
into a concrete parse tree and printed; the tree may also be rendered as
GraphViz source. It serves as a sandbox for inspecting what reduction
actions build, useful for early stages of grammar development.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Aubrey R. Jones
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lemon.repl'
func tracer() tracing.Trace {
	return tracing.Select("lemon.repl")
}
