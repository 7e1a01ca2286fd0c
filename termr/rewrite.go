package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/subst"
)

// SignalKind is the category of a non-local exit from evaluation.
type SignalKind int8

// Kinds of signals.
const (
	ReturnSignal SignalKind = iota + 1 // Return[x] from a user defined function
	AbortSignal                        // evaluation is aborted as a whole
)

// Signal is a non-local exit, travelling outward through evaluation frames
// until some frame handles it.
type Signal struct {
	Kind  SignalKind
	Value expr.Node
}

func (s *Signal) String() string {
	switch s.Kind {
	case ReturnSignal:
		return fmt.Sprintf("<return %s>", s.Value)
	case AbortSignal:
		return "<abort>"
	}
	return "<signal>"
}

// Context is the view of an ongoing evaluation rules get to see.
type Context interface {
	symex.Reporter
	// Evaluate evaluates a node. After a call to Evaluate, clients should
	// check Interrupted() and return immediately if it is true.
	Evaluate(n expr.Node) expr.Node
	// Raise raises a signal. Rules raising a signal should return
	// (nil, false) afterwards.
	Raise(sig *Signal)
	// Interrupted is true if a signal is pending.
	Interrupted() bool
}

// Rule is a rewrite rule. Apply returns a replacement for n and true, if
// n matches the rule's pattern, and (nil, false) otherwise.
type Rule interface {
	Pattern() expr.Node
	Apply(n expr.Node, ctx Context) (expr.Node, bool)
}

// Matcher applies rules to expressions. The rewrite engine consults a Matcher
// for every rule it tries.
type Matcher interface {
	Apply(r Rule, n expr.Node, ctx Context) (expr.Node, bool)
}

// DefaultMatcher is a matcher which delegates to Rule.Apply.
type DefaultMatcher struct{}

// Apply calls r.Apply(n, ctx).
func (DefaultMatcher) Apply(r Rule, n expr.Node, ctx Context) (expr.Node, bool) {
	return r.Apply(n, ctx)
}

// --- Rewrite rules ---------------------------------------------------------

// RewriteRule is a rule lhs :> rhs. For an expression matching lhs, the
// replacement is rhs with all pattern variables substituted.
type RewriteRule struct {
	lhs, rhs expr.Node
}

// NewRule creates a rule lhs :> rhs.
func NewRule(lhs, rhs expr.Node) *RewriteRule {
	return &RewriteRule{lhs: lhs, rhs: rhs}
}

// Pattern returns the left hand side.
func (r *RewriteRule) Pattern() expr.Node { return r.lhs }

// Replacement returns the right hand side.
func (r *RewriteRule) Replacement() expr.Node { return r.rhs }

// Apply matches n against the pattern and instantiates the right hand side.
func (r *RewriteRule) Apply(n expr.Node, ctx Context) (expr.Node, bool) {
	b, ok := Match(r.lhs, n)
	if !ok {
		return nil, false
	}
	tracer().Debugf("rule %s matches %s", r, n)
	return subst.ReplaceVars(r.rhs, b, subst.RespectScoping), true
}

func (r *RewriteRule) String() string {
	return fmt.Sprintf("%s :> %s", r.lhs, r.rhs)
}

// Rewriter is a function
//
//     node × bindings × context ↦ node
//
// i.e., a term rewriting function implemented in Go. Returning nil signals
// that the rewriter does not apply to the node.
type Rewriter func(n expr.Node, b Bindings, ctx Context) expr.Node

// BuiltinRule is a rule with a pattern and a rewriting function. The pattern
// is matched against expressions, and if it matches the rewriter is called on
// the redex.
type BuiltinRule struct {
	lhs     expr.Node
	rewrite Rewriter
}

// NewBuiltinRule creates a rule calling rewrite for matches of lhs.
func NewBuiltinRule(lhs expr.Node, rewrite Rewriter) *BuiltinRule {
	if rewrite == nil {
		panic("nil rewriter for builtin rule")
	}
	return &BuiltinRule{lhs: lhs, rewrite: rewrite}
}

// Pattern returns the left hand side.
func (r *BuiltinRule) Pattern() expr.Node { return r.lhs }

// Apply matches n against the pattern and calls the rewriter.
func (r *BuiltinRule) Apply(n expr.Node, ctx Context) (expr.Node, bool) {
	b, ok := Match(r.lhs, n)
	if !ok {
		return nil, false
	}
	res := r.rewrite(n, b, ctx)
	if res == nil {
		return nil, false
	}
	return res, true
}

func (r *BuiltinRule) String() string {
	return fmt.Sprintf("%s :> <builtin>", r.lhs)
}

// ---------------------------------------------------------------------------

// Anything is a pattern matching any expression.
func Anything() expr.Node {
	return expr.Call("Blank")
}

// AnySymbol is a pattern matching any single symbol.
func AnySymbol() expr.Node {
	return expr.Call("Blank", expr.NewSymbol("Symbol"))
}

// Var is a pattern x_ matching any expression, bound to name.
func Var(name string) expr.Node {
	return expr.Call("Pattern", expr.NewSymbol(name), Anything())
}

// VarOf is a pattern x_h matching any expression with head h, bound to name.
func VarOf(name string, head string) expr.Node {
	return expr.Call("Pattern", expr.NewSymbol(name), expr.Call("Blank", expr.NewSymbol(head)))
}

// SeqVar is a pattern x__ matching a sequence of one or more leaves.
func SeqVar(name string) expr.Node {
	return expr.Call("Pattern", expr.NewSymbol(name), expr.Call("BlankSequence"))
}

// NullSeqVar is a pattern x___ matching a sequence of zero or more leaves.
func NullSeqVar(name string) expr.Node {
	return expr.Call("Pattern", expr.NewSymbol(name), expr.Call("BlankNullSequence"))
}
