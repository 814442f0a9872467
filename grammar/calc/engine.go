// Tables and actions in the style of generated lemon output for the calc
// grammar. Rules are numbered as the generator emits them:
//
//	1: expr ➞ expr PLUS term
//	2: expr ➞ term
//	3: term ➞ term TIMES factor
//	4: term ➞ factor
//	5: factor ➞ LPAREN expr RPAREN
//	6: factor ➞ NUM
package calc

import (
	"github.com/aubreyrjones/lemon-go/lexer"
	"github.com/aubreyrjones/lemon-go/parser"
	"github.com/aubreyrjones/lemon-go/parsetree"
)

// Grammar symbols. Terminal columns are the token codes 0…5 ($, PLUS,
// TIMES, LPAREN, RPAREN, NUM); nonterminals index the goto table.
const (
	ntExpr = iota
	ntTerm
	ntFactor
)

const (
	yyNumStates = 12
	yyNumTokens = 6
	yyAcceptSt  = 1 // accepting on $ in this state
	yyNone      = -1
)

// yyShift[state][token]: next state, or -1.
var yyShift = [yyNumStates][yyNumTokens]int8{
	0:  {yyNone, yyNone, yyNone, 4, yyNone, 5},
	1:  {yyNone, 6, yyNone, yyNone, yyNone, yyNone},
	2:  {yyNone, yyNone, 7, yyNone, yyNone, yyNone},
	3:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	4:  {yyNone, yyNone, yyNone, 4, yyNone, 5},
	5:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	6:  {yyNone, yyNone, yyNone, 4, yyNone, 5},
	7:  {yyNone, yyNone, yyNone, 4, yyNone, 5},
	8:  {yyNone, 6, yyNone, yyNone, 11, yyNone},
	9:  {yyNone, yyNone, 7, yyNone, yyNone, yyNone},
	10: {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	11: {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
}

// yyReduce[state][token]: rule to reduce by, or -1. A shift in the same
// cell wins (there are none for this grammar).
var yyReduce = [yyNumStates][yyNumTokens]int8{
	0:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	1:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	2:  {2, 2, yyNone, yyNone, 2, yyNone},
	3:  {4, 4, 4, yyNone, 4, yyNone},
	4:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	5:  {6, 6, 6, yyNone, 6, yyNone},
	6:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	7:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	8:  {yyNone, yyNone, yyNone, yyNone, yyNone, yyNone},
	9:  {1, 1, yyNone, yyNone, 1, yyNone},
	10: {3, 3, 3, yyNone, 3, yyNone},
	11: {5, 5, 5, yyNone, 5, yyNone},
}

// yyGoto[state][nonterminal]: state after a reduction, or -1.
var yyGoto = [yyNumStates][3]int8{
	0: {1, 2, 3},
	4: {8, 2, 3},
	6: {yyNone, 9, 3},
	7: {yyNone, yyNone, 10},

	1: {yyNone, yyNone, yyNone}, 2: {yyNone, yyNone, yyNone},
	3: {yyNone, yyNone, yyNone}, 5: {yyNone, yyNone, yyNone},
	8: {yyNone, yyNone, yyNone}, 9: {yyNone, yyNone, yyNone},
	10: {yyNone, yyNone, yyNone}, 11: {yyNone, yyNone, yyNone},
}

// yyRuleLen[rule]: RHS length.
var yyRuleLen = [7]int{0, 3, 1, 3, 1, 3, 1}

// yyRuleLHS[rule]: nonterminal produced.
var yyRuleLHS = [7]int8{0, ntExpr, ntExpr, ntTerm, ntTerm, ntFactor, ntFactor}

// A stack frame pairs an automaton state with the symbol that entered it:
// the shifted token for terminals, the built node for nonterminals.
type yyFrame struct {
	state int8
	node  parsetree.Ref
	tok   lexer.Token
}

type engine struct {
	stack []yyFrame
	dead  bool
}

// newEngine allocates a fresh engine state. It is the factory the driver
// calls at the start of every parse.
func newEngine() parser.Engine {
	e := &engine{stack: make([]yyFrame, 0, 64)}
	e.stack = append(e.stack, yyFrame{state: 0, node: parsetree.Nil})
	return e
}

// Release frees the engine state.
func (e *engine) Release() {
	e.stack = nil
}

// Step feeds one token into the automaton, performing any pending
// reductions first, then shifting the token or accepting/failing on it.
func (e *engine) Step(tok lexer.Token, h *parser.Parser) {
	if e.dead {
		return
	}
	col := int(tok.Type)
	for {
		state := e.stack[len(e.stack)-1].state
		if state == yyAcceptSt && tok.IsEOF() {
			h.PushRoot(e.stack[len(e.stack)-1].node)
			h.Success()
			return
		}
		if next := yyShift[state][col]; next != yyNone {
			e.stack = append(e.stack, yyFrame{state: next, node: parsetree.Nil, tok: tok})
			return
		}
		rule := yyReduce[state][col]
		if rule == yyNone {
			e.dead = true
			h.Error()
			return
		}
		e.reduce(int(rule), h)
	}
}

// reduce pops the rule's RHS, runs its action, and pushes the goto state
// with the built node.
func (e *engine) reduce(rule int, h *parser.Parser) {
	n := yyRuleLen[rule]
	rhs := e.stack[len(e.stack)-n:]
	node := yyAction(rule, rhs, h)
	e.stack = e.stack[:len(e.stack)-n]
	state := e.stack[len(e.stack)-1].state
	next := yyGoto[state][yyRuleLHS[rule]]
	e.stack = append(e.stack, yyFrame{state: next, node: node})
}

// yyAction runs the reduction action for a rule, returning the node that
// represents the LHS. Production nodes inherit the line of their leftmost
// constituent.
func yyAction(rule int, rhs []yyFrame, h *parser.Parser) parsetree.Ref {
	t := h.Tree()
	switch rule {
	case 1: // expr ➞ expr PLUS term
		n := h.MakeNode("expr", rhs[0].node, h.TokenNode(rhs[1].tok), rhs[2].node)
		return t.SetLine(n, t.Line(rhs[0].node))
	case 2: // expr ➞ term
		return rhs[0].node
	case 3: // term ➞ term TIMES factor
		n := h.MakeNode("term", rhs[0].node, h.TokenNode(rhs[1].tok), rhs[2].node)
		return t.SetLine(n, t.Line(rhs[0].node))
	case 4: // term ➞ factor
		n := h.MakeNode("term", rhs[0].node)
		return t.SetLine(n, t.Line(rhs[0].node))
	case 5: // factor ➞ LPAREN expr RPAREN
		n := h.MakeNode("factor", rhs[1].node)
		return t.SetLine(n, int64(rhs[0].tok.Line))
	case 6: // factor ➞ NUM
		n := h.MakeNode("factor", h.TokenNode(rhs[0].tok))
		return t.SetLine(n, int64(rhs[0].tok.Line))
	}
	return parsetree.Nil
}
