package subst

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/symex/expr"
)

// Mode controls the treatment of scoping constructs during substitution.
type Mode int8

const (
	// RespectScoping excludes the local variables of Module, Block and With
	// from substitution inside the construct.
	RespectScoping Mode = iota
	// IgnoreScoping substitutes everywhere.
	IgnoreScoping
)

// ReplaceVars replaces every symbol in n which is a key in vars by its value.
//
//     ReplaceVars(f[x, Module[{x}, x + y]], {x→1, y→2})   ⇒   f[1, Module[{x}, x + 2]]
//
// Function literals with named parameters are renamed before substitution:
//
//     ReplaceVars(Function[{y}, x + y], {x→y})   ⇒   Function[{y$1}, y + y$1]
//
// If there is nothing to replace, n is returned.
func ReplaceVars(n expr.Node, vars map[string]expr.Node, mode Mode) expr.Node {
	if len(vars) == 0 {
		return n
	}
	switch x := n.(type) {
	case expr.Symbol:
		if v, ok := vars[x.Name()]; ok {
			return v
		}
		return n
	case *expr.Expression:
		return replaceInExpression(x, vars, mode)
	}
	return n
}

func replaceInExpression(e *expr.Expression, vars map[string]expr.Node, mode Mode) expr.Node {
	if mode == RespectScoping && e.Len() > 0 {
		switch e.HeadName() {
		case "Module", "Block", "With":
			vars = without(vars, ScopingVars(e.Leaf(0)))
			if len(vars) == 0 {
				return e
			}
		}
	}
	if !mentionsAny(e, vars) {
		return e
	}
	leaves := e.Leaves()
	if params := functionParams(e); params != nil {
		leaves = renameParams(e, params, vars)
	}
	head := ReplaceVars(e.Head(), vars, mode)
	changed := !sameNode(head, e.Head())
	replaced := make([]expr.Node, len(leaves))
	for i, l := range leaves {
		replaced[i] = ReplaceVars(l, vars, mode)
		changed = changed || !sameNode(replaced[i], e.Leaf(i))
	}
	if !changed {
		return e
	}
	return expr.Wrap(head, replaced)
}

func mentionsAny(e *expr.Expression, vars map[string]expr.Node) bool {
	syms := e.Symbols()
	for name := range vars {
		if syms.Contains(name) {
			return true
		}
	}
	return false
}

// sameNode checks for pointer identity of expressions and equality of atoms.
func sameNode(a, b expr.Node) bool {
	if x, ok := a.(*expr.Expression); ok {
		y, ok := b.(*expr.Expression)
		return ok && x == y
	}
	return a.Same(b)
}

func without(vars map[string]expr.Node, names []string) map[string]expr.Node {
	if len(names) == 0 {
		return vars
	}
	r := make(map[string]expr.Node, len(vars))
	for k, v := range vars {
		r[k] = v
	}
	for _, n := range names {
		delete(r, n)
	}
	return r
}

// ScopingVars returns the names of the local variables in the first argument
// of a scoping construct, i.e. of a list of symbols or assignments to symbols:
//
//     {x, y = 1, z := f[]}   ⇒   x, y, z
//
func ScopingVars(scope expr.Node) []string {
	list, ok := scope.(*expr.Expression)
	if !ok || !list.HasForm(expr.ListName, -1) {
		return nil
	}
	var names []string
	for _, item := range list.Leaves() {
		if s, ok := item.(expr.Symbol); ok {
			names = append(names, s.Name())
		} else if expr.HasForm(item, "Set", 2) || expr.HasForm(item, "SetDelayed", 2) {
			if s, ok := item.(*expr.Expression).Leaf(0).(expr.Symbol); ok {
				names = append(names, s.Name())
			}
		} else {
			tracer().Debugf("ignoring malformed local variable %s", item)
		}
	}
	return names
}

// --- Function literals -----------------------------------------------------

// functionParams returns the parameter names of Function[params, body, …],
// or nil if e is not a function literal with named parameters.
func functionParams(e *expr.Expression) []string {
	if e.HeadName() != "Function" || e.Len() < 2 {
		return nil
	}
	switch p := e.Leaf(0).(type) {
	case expr.Symbol:
		return []string{p.Name()}
	case *expr.Expression:
		if !p.HasForm(expr.ListName, -1) {
			return nil
		}
		names := make([]string, p.Len())
		for i, l := range p.Leaves() {
			s, ok := l.(expr.Symbol)
			if !ok {
				return nil
			}
			names[i] = s.Name()
		}
		return names
	}
	return nil
}

// renameParams renames the parameters of a function literal to fresh names,
// throughout parameter list and body. It returns the new leaves.
func renameParams(e *expr.Expression, params []string, vars map[string]expr.Node) []expr.Node {
	used := e.Symbols()
	var valueSymbols []*expr.SymbolSet
	for _, v := range vars {
		switch x := v.(type) {
		case expr.Symbol:
			valueSymbols = append(valueSymbols, expr.NewSymbolSet(x.Name()))
		case *expr.Expression:
			valueSymbols = append(valueSymbols, x.Symbols())
		}
	}
	used = used.Union(valueSymbols...)
	renaming := make(map[string]expr.Node, len(params))
	for _, p := range params {
		renaming[p] = expr.NewSymbol(FreshName(p, used.Contains))
	}
	leaves := make([]expr.Node, e.Len())
	copy(leaves, e.Leaves())
	leaves[0] = ReplaceVars(leaves[0], renaming, IgnoreScoping)
	leaves[1] = ReplaceVars(leaves[1], renaming, RespectScoping)
	return leaves
}

var serial atomic.Uint64

// FreshName creates a name of the form base$n, for which inUse is false.
// Numbers are taken from a process-wide counter.
func FreshName(base string, inUse func(string) bool) string {
	for {
		name := fmt.Sprintf("%s$%d", base, serial.Add(1))
		if inUse == nil || !inUse(name) {
			return name
		}
	}
}
