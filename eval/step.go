package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/symex/defs"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/termr"
)

// leaf is an argument during normalization. Arguments of the form
// Unevaluated[x] are unwrapped to x for rule matching and wrapped again if no
// rule applies.
type leaf struct {
	node        expr.Node
	unevaluated bool
}

// step performs a single rewrite step on e. It returns the rewritten
// expression and a flag telling if a rule (or threading) produced a different
// expression. Unchanged results are stamped with a fresh token.
func (ev *Evaluation) step(e *expr.Expression) (expr.Node, bool, *termr.Signal) {
	d := ev.engine.defs
	ev.report.Stats.Steps++
	rewriteSteps.Inc()
	head, sig := ev.eval(e.Head())
	if sig != nil {
		return e, false, sig
	}
	var attrs defs.Attributes
	if s, ok := head.(expr.Symbol); ok {
		attrs = d.Attributes(s.Name())
	}
	//
	leaves, sig := ev.evalLeaves(e, attrs)
	if sig != nil {
		return e, false, sig
	}
	norm := expr.Wrap(head, leaves)
	if !attrs.HasAny(defs.SequenceHold | defs.HoldAllComplete) {
		norm = norm.FlattenSequence(d)
	}
	recs := make([]leaf, norm.Len())
	unevaluated := false
	for i, l := range norm.Leaves() {
		recs[i].node = l
		if !attrs.Has(defs.HoldAllComplete) && expr.HasForm(l, expr.UnevaluatedName, 1) {
			recs[i] = leaf{node: l.(*expr.Expression).Leaf(0), unevaluated: true}
			unevaluated = true
		}
	}
	if attrs.Has(defs.Flat) {
		recs = flattenLeaves(head, recs, false)
	}
	if attrs.Has(defs.Orderless) {
		sort.SliceStable(recs, func(i, j int) bool {
			return expr.Compare(recs[i].node, recs[j].node) < 0
		})
	}
	nodes := make([]expr.Node, len(recs))
	for i, r := range recs {
		nodes[i] = r.node
	}
	norm = expr.Wrap(head, nodes).Stamped(d.Now())
	//
	if attrs.Has(defs.Listable) {
		if threaded, ok := ev.thread(norm); ok {
			if threaded.Same(norm) {
				return norm.Stamped(d.Now()), false, nil
			}
			return threaded, true, nil
		}
	}
	//
	result, fired, sig := ev.applyRules(norm, attrs)
	if sig != nil {
		return e, false, sig
	}
	if fired {
		if result.Same(norm) {
			return norm.Stamped(d.Now()), false, nil
		}
		return result, true, nil
	}
	if unevaluated {
		wrapped := make([]expr.Node, len(recs))
		for i, r := range recs {
			wrapped[i] = r.node
			if r.unevaluated {
				wrapped[i] = expr.New(expr.SymUnevaluated, r.node)
			}
		}
		norm = expr.Wrap(head, wrapped)
	}
	return norm.Stamped(d.Now()), false, nil
}

// evalLeaves evaluates the arguments of e, respecting hold attributes.
// The returned slice is a copy.
func (ev *Evaluation) evalLeaves(e *expr.Expression, attrs defs.Attributes) ([]expr.Node, *termr.Signal) {
	leaves := make([]expr.Node, e.Len())
	copy(leaves, e.Leaves())
	var sig *termr.Signal
	evaluate := func(lo, hi int) {
		for i := lo; i < hi && sig == nil; i++ {
			if expr.HasForm(leaves[i], expr.UnevaluatedName, 1) {
				continue
			}
			leaves[i], sig = ev.eval(leaves[i])
		}
	}
	hold := func(lo, hi int) {
		if attrs.Has(defs.HoldAllComplete) || e.NoSymbol(expr.EvaluateName) {
			return
		}
		for i := lo; i < hi && sig == nil; i++ {
			if expr.HasForm(leaves[i], expr.EvaluateName, 1) {
				leaves[i], sig = ev.eval(leaves[i])
			}
		}
	}
	n := len(leaves)
	switch {
	case attrs.HasAny(defs.HoldAll | defs.HoldAllComplete):
		hold(0, n)
	case attrs.Has(defs.HoldFirst):
		hold(0, min(1, n))
		evaluate(1, n)
	case attrs.Has(defs.HoldRest):
		evaluate(0, min(1, n))
		hold(1, n)
	default:
		evaluate(0, n)
	}
	return leaves, sig
}

// flattenLeaves splices arguments with the same head as head, recursively.
// Arguments spliced out of an unevaluated argument are unevaluated as well.
func flattenLeaves(head expr.Node, recs []leaf, unevaluated bool) []leaf {
	var flat []leaf
	for _, r := range recs {
		r.unevaluated = r.unevaluated || unevaluated
		if x, ok := r.node.(*expr.Expression); ok && x.Head().Same(head) {
			sub := make([]leaf, x.Len())
			for i, l := range x.Leaves() {
				sub[i].node = l
			}
			flat = append(flat, flattenLeaves(head, sub, r.unevaluated)...)
			continue
		}
		flat = append(flat, r)
	}
	return flat
}

// applyRules tries up-values of the arguments, then down-values or sub-values
// of the head. It returns the result of the first rule which fires.
func (ev *Evaluation) applyRules(e *expr.Expression, attrs defs.Attributes) (expr.Node, bool, *termr.Signal) {
	d := ev.engine.defs
	try := func(name string, kind defs.ValueKind) (expr.Node, bool, *termr.Signal) {
		for _, r := range d.Values(name, kind) {
			result, ok := ev.apply(r, e, kind)
			if sig := ev.takePending(); sig != nil {
				return nil, false, sig
			}
			if ok {
				tracer().Debugf("%s: %s → %s", kind, e, result)
				return result, true, nil
			}
		}
		return nil, false, nil
	}
	if !attrs.Has(defs.HoldAllComplete) {
		var seen []string
		for _, l := range e.Leaves() {
			name := l.LookupName()
			if name == "" || contains(seen, name) {
				continue
			}
			seen = append(seen, name)
			if result, ok, sig := try(name, defs.UpValues); ok || sig != nil {
				return result, ok, sig
			}
		}
	}
	kind := defs.DownValues
	if e.LookupName() != e.HeadName() {
		kind = defs.SubValues
	}
	return try(e.LookupName(), kind)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
