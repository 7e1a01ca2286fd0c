package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/symex/num"
)

// Compare is the canonical order of nodes. It returns -1, 0 or +1.
//
// Numbers sort first (by value), then strings (lexicographically), then
// numeric expressions (Pi, Sqrt[2], …), then all other symbolic expressions.
// Symbols and products/powers of symbols are compared as monomials, i.e.
// x < x·y < x^2 < y. Other expressions are compared by head, then by leaves,
// shorter leaf sequences sorting first.
func Compare(a, b Node) int {
	ka, kb := sortKeyOf(a), sortKeyOf(b)
	if c := cmpInt(ka.group, kb.group); c != 0 {
		return c
	}
	if c := cmpInt(ka.class, kb.class); c != 0 {
		return c
	}
	switch ka.class {
	case classNumber:
		return num.Compare(a.(Number).n, b.(Number).n)
	case classString:
		return strings.Compare(a.(String).value, b.(String).value)
	case classMonomial:
		if c := ka.mono.compare(kb.mono); c != 0 {
			return c
		}
		ea, aIsExpr := a.(*Expression)
		eb, bIsExpr := b.(*Expression)
		switch {
		case !aIsExpr && !bIsExpr:
			return strings.Compare(a.(Symbol).name, b.(Symbol).name)
		case !aIsExpr:
			return -1
		case !bIsExpr:
			return 1
		}
		return compareCompound(ea, eb)
	}
	return compareCompound(a.(*Expression), b.(*Expression))
}

// Less reports whether a sorts before b in canonical order.
func Less(a, b Node) bool {
	return Compare(a, b) < 0
}

// SortNodes sorts nodes in canonical order. The sort is stable.
func SortNodes(nodes []Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return Compare(nodes[i], nodes[j]) < 0
	})
}

// Sort returns an expression with the leaves of e sorted in canonical order
// (pattern order, if pattern is set). The set of referenced symbols is kept.
func (e *Expression) Sort(pattern bool) *Expression {
	leaves := make([]Node, len(e.leaves))
	copy(leaves, e.leaves)
	cmp := Compare
	if pattern {
		cmp = PatternCompare
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return cmp(leaves[i], leaves[j]) < 0
	})
	return e.Reordered(leaves)
}

const (
	classNumber = iota
	classString
	classMonomial
	classCompound
)

type sortKey struct {
	group int // 0 = atomic data, 1 = numeric symbolic, 2 = symbolic
	class int
	mono  monomial
}

func sortKeyOf(n Node) sortKey {
	switch x := n.(type) {
	case Number:
		return sortKey{group: 0, class: classNumber}
	case String:
		return sortKey{group: 0, class: classString}
	case Symbol:
		return sortKey{
			group: numericGroup(x),
			class: classMonomial,
			mono:  monomial{{name: x.name, exp: 1}},
		}
	case *Expression:
		if m := monomialOf(x); len(m) > 0 {
			return sortKey{group: numericGroup(x), class: classMonomial, mono: m}
		}
		return sortKey{group: numericGroup(x), class: classCompound}
	}
	panic("unknown node type")
}

func numericGroup(n Node) int {
	if IsNumeric(n) {
		return 1
	}
	return 2
}

func compareCompound(a, b *Expression) int {
	if c := strings.Compare(a.HeadName(), b.HeadName()); c != 0 {
		return c
	}
	if a.HeadName() == "" {
		if c := Compare(a.head, b.head); c != 0 {
			return c
		}
	}
	return compareLeaves(a.leaves, b.leaves)
}

func compareLeaves(a, b []Node) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// --- Monomials -------------------------------------------------------------

type factor struct {
	name string
	exp  float64
}

// monomial is a product of powers of symbols, sorted by symbol name.
type monomial []factor

// monomialOf interprets Times[…] and Power[x, n] as monomials. Factors which
// are not symbols or powers of symbols are ignored.
func monomialOf(e *Expression) monomial {
	exps := map[string]float64{}
	addPower := func(p *Expression) {
		v, ok := p.leaves[0].(Symbol)
		if !ok {
			return
		}
		if x, ok := p.leaves[1].(Number); ok {
			if f, ok := num.Float64(x.n); ok {
				exps[v.name] += f
			}
		}
	}
	switch {
	case e.HeadName() == "Times":
		for _, l := range e.leaves {
			if HasForm(l, "Power", 2) {
				addPower(l.(*Expression))
			} else if s, ok := l.(Symbol); ok {
				exps[s.name]++
			}
		}
	case e.HasForm("Power", 2):
		addPower(e)
	}
	if len(exps) == 0 {
		return nil
	}
	m := make(monomial, 0, len(exps))
	for name, exp := range exps {
		m = append(m, factor{name: name, exp: exp})
	}
	m.sort()
	return m
}

func (m monomial) sort() {
	sort.Slice(m, func(i, j int) bool {
		return m[i].name < m[j].name
	})
}

// compare compares monomials factor by factor, lexicographically: first by
// symbol name, then by exponent, smaller exponents first. A monomial which is
// a proper prefix of the other sorts first. This is a total order:
//
//     x < x·y < x^2 < x^2·y < y
//
func (m monomial) compare(o monomial) int {
	for i := 0; i < len(m) && i < len(o); i++ {
		if c := strings.Compare(m[i].name, o[i].name); c != 0 {
			return c
		}
		switch {
		case m[i].exp < o[i].exp:
			return -1
		case m[i].exp > o[i].exp:
			return 1
		}
	}
	return cmpInt(len(m), len(o))
}

// --- Numeric expressions ---------------------------------------------------

var numericSymbols = map[string]bool{
	"Pi": true, "E": true, "EulerGamma": true, "GoldenRatio": true,
	"MachinePrecision": true, "Catalan": true,
}

var numericHeads = map[string]bool{
	"Sqrt": true, "Times": true, "Plus": true, "Subtract": true, "Minus": true,
	"Power": true, "Abs": true, "Divide": true, "Sin": true,
}

// IsNumeric checks if n denotes a numeric quantity: numbers, numeric constants
// like Pi, and arithmetic expressions over numeric quantities.
func IsNumeric(n Node) bool {
	switch x := n.(type) {
	case Number:
		return true
	case Symbol:
		return numericSymbols[x.name]
	case *Expression:
		if !numericHeads[x.HeadName()] {
			return false
		}
		for _, l := range x.leaves {
			if !IsNumeric(l) {
				return false
			}
		}
		return true
	}
	return false
}
