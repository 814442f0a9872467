package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/aubreyrjones/lemon-go/grammar/calc"
	"github.com/aubreyrjones/lemon-go/parsetree"
)

// main() starts an interactive CLI where users may enter arithmetic
// expressions against the calc grammar. Each line is parsed and printed as
// an indented parse tree; ":dot <expr>" prints the GraphViz source
// instead. Intended as a sandbox for inspecting what the runtime builds.
func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	switch strings.ToLower(*tlevel) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}
	pterm.Info.Println("Welcome to ptree")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	rl, err := readline.New("ptree> ")
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	defer rl.Close()
	repl(rl)
	pterm.Info.Println("Good bye!")
}

func repl(rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return
		case strings.HasPrefix(line, ":dot "):
			tree, err := calc.Parse(strings.TrimPrefix(line, ":dot "))
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			fmt.Print(parsetree.Dotify(tree))
		default:
			tree, err := calc.Parse(line)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			printTree(tree, 0)
		}
	}
}

func printTree(n parsetree.Node, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("   ", depth), n)
	for _, c := range n.Children {
		printTree(c, depth+1)
	}
}
