package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"

	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/defs"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/termr"
)

// Evaluation is a single evaluation session. It implements termr.Context.
// An Evaluation is not safe for concurrent use.
type Evaluation struct {
	engine  *Engine
	ctx     context.Context
	depth   int
	pending *termr.Signal
	stopped bool
	report  *Report
}

var _ termr.Context = (*Evaluation)(nil)

var abort = &termr.Signal{Kind: termr.AbortSignal}

// Evaluate evaluates a node from within a rule. If evaluation produces a
// signal, it is left pending and Interrupted() becomes true.
func (ev *Evaluation) Evaluate(n expr.Node) expr.Node {
	if ev.pending != nil {
		return n
	}
	r, sig := ev.eval(n)
	if sig != nil {
		ev.pending = sig
	}
	return r
}

// Raise raises a signal. The first pending signal wins.
func (ev *Evaluation) Raise(sig *termr.Signal) {
	if ev.pending == nil && sig != nil {
		ev.pending = sig
	}
}

// Interrupted is true if a signal is pending.
func (ev *Evaluation) Interrupted() bool {
	return ev.pending != nil
}

// Report adds a condition to the session's report.
func (ev *Evaluation) Report(c *symex.Condition) {
	if c == nil {
		return
	}
	tracer().P("session", ev.report.Session.String()).Infof("%s", c.Error())
	conditionsRaised.WithLabelValues(c.Kind.String()).Inc()
	ev.report.add(c)
}

// Context returns the context of the session.
func (ev *Evaluation) Context() context.Context {
	return ev.ctx
}

func (ev *Evaluation) takePending() *termr.Signal {
	sig := ev.pending
	ev.pending = nil
	return sig
}

// stop checks the session's context for cancellation.
func (ev *Evaluation) stop() *termr.Signal {
	if ev.stopped {
		return abort
	}
	if err := ev.ctx.Err(); err != nil {
		ev.stopped = true
		ev.Report(symex.Errorf(symex.EvaluationStopped, "$Aborted", "evaluation stopped: %v", err))
		return abort
	}
	return nil
}

// eval evaluates a node. A non-nil signal must be passed on to the caller,
// the node returned is then meaningless.
func (ev *Evaluation) eval(n expr.Node) (expr.Node, *termr.Signal) {
	if sig := ev.stop(); sig != nil {
		return n, sig
	}
	switch x := n.(type) {
	case expr.Symbol:
		return ev.evalSymbol(x)
	case *expr.Expression:
		return ev.evalExpression(x)
	}
	return n, nil
}

// evalSymbol applies the own-values of a symbol. Re-evaluating a rewritten
// symbol opens a new frame, so cyclic own-values run into the recursion limit.
func (ev *Evaluation) evalSymbol(s expr.Symbol) (expr.Node, *termr.Signal) {
	for _, r := range ev.engine.defs.Values(s.Name(), defs.OwnValues) {
		result, ok := ev.apply(r, s, defs.OwnValues)
		if sig := ev.takePending(); sig != nil {
			return s, sig
		}
		if !ok {
			continue
		}
		if result.Same(s) {
			return s, nil
		}
		sig := ev.enter()
		defer func() { ev.depth-- }()
		if sig != nil {
			return expr.Aborted, sig
		}
		return ev.eval(result)
	}
	return s, nil
}

// enter opens an evaluation frame. The caller has to decrement ev.depth when
// leaving the frame, even if enter signals an abort.
func (ev *Evaluation) enter() *termr.Signal {
	ev.depth++
	if limit := ev.engine.recursionLimit; limit > 0 && ev.depth > limit {
		ev.Report(symex.Errorf(symex.RecursionLimitExceeded, "$RecursionLimit",
			"recursion depth of %d exceeded", limit))
		return abort
	}
	if ev.depth > ev.report.Stats.MaxDepth {
		ev.report.Stats.MaxDepth = ev.depth
	}
	return nil
}

// evalExpression repeats rewrite steps until the expression does not change
// any more.
func (ev *Evaluation) evalExpression(e *expr.Expression) (expr.Node, *termr.Signal) {
	sig := ev.enter()
	defer func() { ev.depth-- }()
	if sig != nil {
		return expr.Aborted, sig
	}
	var node expr.Node = e
	var names []string
	iteration := 1
	for {
		var changed bool
		var sig *termr.Signal
		if x, ok := node.(*expr.Expression); ok {
			if !ev.engine.defs.Changed(x.Token()) {
				ev.report.Stats.TokenHits++
				tokenHits.Inc()
				break
			}
			names = appendName(names, x.LookupName())
			node, changed, sig = ev.step(x)
		} else {
			node, sig = ev.eval(node)
		}
		if sig != nil {
			if sig.Kind == termr.ReturnSignal && ev.engine.defs.AnyUserDefined(names) {
				tracer().Debugf("return caught by %v", names)
				return sig.Value, nil
			}
			return node, sig
		}
		if !changed {
			break
		}
		iteration++
		if limit := ev.engine.iterationLimit; limit > 0 && iteration > limit {
			ev.Report(symex.Errorf(symex.IterationLimitExceeded, "$IterationLimit",
				"iteration limit of %d exceeded", limit))
			return expr.Aborted, abort
		}
	}
	return node, nil
}

func appendName(names []string, name string) []string {
	if name == "" {
		return names
	}
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

func (ev *Evaluation) apply(r termr.Rule, n expr.Node, kind defs.ValueKind) (expr.Node, bool) {
	ev.report.Stats.RuleApplications++
	ruleApplications.WithLabelValues(kind.String()).Inc()
	return ev.engine.matcher.Apply(r, n, ev)
}
