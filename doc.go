/*
Package lemon is the hand-written runtime for parsers generated with the
Lemon LALR(1) algorithm.

A generated grammar module contributes shift/reduce tables together with
reduction actions; this module contributes everything those tables are
driven by. Package structure is as follows:

■ lexer: Package lexer implements a configurable scanner recognizing fixed
literals (via a prefix tree with terminator lookahead), regex-matched value
tokens and delimited strings, interleaved with skip patterns.

■ parsetree: Package parsetree implements the arena-owned builder tree that
reduction actions construct, the value-semantics parse tree handed to
callers, the lowering pass between the two, and a GraphViz DOT renderer.

■ parser: Package parser implements the driver feeding tokens into a
generated LALR engine, and the grammar action handle used by reductions.

■ grammar/calc: Package calc carries a generated-style engine for a small
arithmetic grammar, serving as reference consumer of the runtime.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Aubrey R. Jones
*/
package lemon
