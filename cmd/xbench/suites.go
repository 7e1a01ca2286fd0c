package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"

	"github.com/npillmayer/symex/expr"
)

// depth is the size of the larger benchmark expressions.
const depth = 300

type benchmark struct {
	name  string
	build func() expr.Node
	// normal is set for benchmarks which measure re-evaluation of an
	// expression already in normal form
	normal bool
}

var suites = map[string][]benchmark{
	"Arithmetic": {
		{name: "1 + 2", build: func() expr.Node { return plus(expr.Int(1), expr.Int(2)) }},
		{name: "5 * 3", build: func() expr.Node { return expr.Call("Times", expr.Int(5), expr.Int(3)) }},
	},
	"Flat": {
		{name: fmt.Sprintf("1 + (2 + (3 + … %d))", depth), build: nestedSum},
		{name: fmt.Sprintf("1 + 2 + … + %d", depth), build: flatSum},
	},
	"Orderless": {
		{name: fmt.Sprintf("x%d + … + x1", depth), build: reversedSymbols},
	},
	"Listable": {
		{name: fmt.Sprintf("{1, …, %d} + {1, …, %d}", depth, depth), build: func() expr.Node {
			return plus(rangeList(depth), rangeList(depth))
		}},
		{name: fmt.Sprintf("2 * {1, …, %d}", depth), build: func() expr.Node {
			return expr.Call("Times", expr.Int(2), rangeList(depth))
		}},
	},
	"Compound": {
		{name: fmt.Sprintf("1; 2; …; %d", depth), build: func() expr.Node {
			return expr.Wrap(expr.NewSymbol("CompoundExpression"), rangeList(depth).Leaves())
		}},
	},
	"Function": {
		{name: fmt.Sprintf("(#+1)&[(#+1)&[… 0]] (%d times)", depth/3), build: nestedFunction},
	},
	"Reevaluate": {
		{name: fmt.Sprintf("x%d + … + x1 (normal form)", depth), build: reversedSymbols, normal: true},
		{name: fmt.Sprintf("{f[1], …, f[%d]} (normal form)", depth), build: func() expr.Node {
			calls := make([]expr.Node, depth)
			for i := range calls {
				calls[i] = expr.Call("f", expr.Int(int64(i+1)))
			}
			return expr.Wrap(expr.SymList, calls)
		}, normal: true},
	},
}

// suiteNames returns the names of all suites in alphabetical order.
func suiteNames() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func plus(leaves ...expr.Node) expr.Node {
	return expr.Call("Plus", leaves...)
}

func rangeList(n int) *expr.Expression {
	leaves := make([]expr.Node, n)
	for i := range leaves {
		leaves[i] = expr.Int(int64(i + 1))
	}
	return expr.Wrap(expr.SymList, leaves)
}

func flatSum() expr.Node {
	return expr.Wrap(expr.NewSymbol("Plus"), rangeList(depth).Leaves())
}

func nestedSum() expr.Node {
	var n expr.Node = expr.Int(depth)
	for i := depth - 1; i > 0; i-- {
		n = plus(expr.Int(int64(i)), n)
	}
	return n
}

func reversedSymbols() expr.Node {
	leaves := make([]expr.Node, depth)
	for i := range leaves {
		leaves[i] = expr.NewSymbol(fmt.Sprintf("x%d", depth-i))
	}
	return expr.Wrap(expr.NewSymbol("Plus"), leaves)
}

func nestedFunction() expr.Node {
	inc := expr.Call("Function", plus(expr.Call("Slot", expr.Int(1)), expr.Int(1)))
	var n expr.Node = expr.Int(0)
	for i := 0; i < depth/3; i++ {
		n = expr.New(inc, n)
	}
	return n
}
