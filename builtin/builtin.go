package builtin

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/symex/defs"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/termr"
)

// Load installs the core builtins into a symbol table.
func Load(d *defs.Definitions) {
	attributes := map[string]defs.Attributes{
		expr.ListName:        defs.Locked | defs.Protected,
		expr.SequenceName:    defs.Protected,
		expr.EvaluateName:    defs.Protected,
		expr.UnevaluatedName: defs.HoldAllComplete | defs.Protected,
		"Hold":               defs.HoldAll | defs.Protected,
		"HoldComplete":       defs.HoldAllComplete | defs.Protected,
		"HoldForm":           defs.HoldAll | defs.Protected,
		"Return":             defs.Protected,
		"CompoundExpression": defs.HoldAll | defs.Protected,
		"Function":           defs.HoldAll | defs.Protected,
		"Plus":               arithmetic,
		"Times":              arithmetic,
		"Hash":               defs.Protected,
	}
	for _, r := range rules() {
		d.AddBuiltinRule(r.name, r.kind, r.rule)
	}
	for name, a := range attributes {
		if err := d.SetAttributes(name, a); err != nil {
			tracer().Errorf("cannot set attributes of %s: %v", name, err)
		}
	}
	tracer().Debugf("loaded %d builtin symbols", len(attributes))
}

const arithmetic = defs.Flat | defs.Orderless | defs.OneIdentity | defs.Listable |
	defs.NumericFunction | defs.Protected

type builtinRule struct {
	name string
	kind defs.ValueKind
	rule termr.Rule
}

func rules() []builtinRule {
	return []builtinRule{
		{expr.EvaluateName, defs.DownValues, termr.NewBuiltinRule(
			expr.Call(expr.EvaluateName, termr.NullSeqVar("x")), evaluate)},
		{"Return", defs.DownValues, termr.NewBuiltinRule(
			expr.Call("Return", termr.NullSeqVar("x")), doReturn)},
		{"CompoundExpression", defs.DownValues, termr.NewBuiltinRule(
			expr.Call("CompoundExpression", termr.NullSeqVar("x")), compound)},
		{"Function", defs.SubValues, termr.NewBuiltinRule(
			expr.New(expr.Call("Function", termr.Var("body")), termr.NullSeqVar("args")),
			applySlots)},
		{"Function", defs.SubValues, termr.NewBuiltinRule(
			expr.New(expr.Call("Function", termr.Var("params"), termr.Var("body")), termr.NullSeqVar("args")),
			applyParams)},
		{"Plus", defs.DownValues, termr.NewBuiltinRule(
			expr.Call("Plus", termr.NullSeqVar("x")), plus)},
		{"Times", defs.DownValues, termr.NewBuiltinRule(
			expr.Call("Times", termr.NullSeqVar("x")), times)},
		{"Hash", defs.DownValues, termr.NewBuiltinRule(
			expr.Call("Hash", termr.Var("x")), hash)},
	}
}

// --- Structural builtins ---------------------------------------------------

// Evaluate[x…] ⇒ Sequence[x…]
func evaluate(n expr.Node, _ termr.Bindings, _ termr.Context) expr.Node {
	return expr.Wrap(expr.SymSequence, n.(*expr.Expression).Leaves())
}

// Return[] and Return[x] raise a return signal.
func doReturn(n expr.Node, _ termr.Bindings, ctx termr.Context) expr.Node {
	e := n.(*expr.Expression)
	var v expr.Node = expr.Null
	switch e.Len() {
	case 0:
	case 1:
		v = e.Leaf(0)
	default:
		return nil
	}
	ctx.Raise(&termr.Signal{Kind: termr.ReturnSignal, Value: v})
	return nil
}

// CompoundExpression[a, b, …] evaluates a, b, … in order and results in the
// value of the last one.
func compound(n expr.Node, _ termr.Bindings, ctx termr.Context) expr.Node {
	var result expr.Node = expr.Null
	for _, l := range n.(*expr.Expression).Leaves() {
		result = ctx.Evaluate(l)
		if ctx.Interrupted() {
			return nil
		}
	}
	return result
}
