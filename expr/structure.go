package expr

import (
	"sort"
)

// SafetyCache memoizes answers to "is this head safe?" for the duration of an
// operation during which definitions do not change. A SafetyCache is not safe
// for concurrent use.
type SafetyCache map[string]bool

// SafeHead checks if expressions with head may inherit the memoization
// state of the expressions they have been derived from. This is the case for
// symbols without own-, up-, down- or sub-values, as there is no rule which
// could react on the identity of the arguments.
func SafeHead(head Node, defs Definitions, cache SafetyCache) bool {
	s, ok := head.(Symbol)
	if !ok || defs == nil {
		return false
	}
	if cache != nil {
		if safe, found := cache[s.name]; found {
			return safe
		}
	}
	safe := !defs.HasValues(s.name)
	if cache != nil {
		cache[s.name] = safe
	}
	return safe
}

// Structure builds expressions with a common head, derived from existing
// expressions. If the head is safe (see SafeHead), new expressions inherit
// the memoization token of their origin(s). This way, sub-expressions of an
// expression in normal form are recognized as being in normal form without
// re-evaluation.
type Structure struct {
	head    Node
	time    Timestamp
	stamped bool
	symbols *SymbolSet
}

// NewStructure creates a builder for expressions derived from orig.
func NewStructure(head Node, orig *Expression, defs Definitions, cache SafetyCache) *Structure {
	st := &Structure{head: head}
	if orig != nil && SafeHead(head, defs, cache) {
		st.time, st.stamped = orig.time, orig.stamped
		if syms := orig.symbols.Load(); syms != nil {
			st.symbols = syms.With(head.(Symbol).name)
		}
	}
	return st
}

// StructureFrom creates a builder for expressions derived from several
// origins. Memoization state is inherited only if all origins carry fresh
// tokens.
func StructureFrom(head Node, origins []Node, defs Definitions, cache SafetyCache) *Structure {
	st := &Structure{head: head}
	if !SafeHead(head, defs, cache) {
		return st
	}
	tokens := make([]*Token, len(origins))
	for i, o := range origins {
		if e, ok := o.(*Expression); ok {
			tokens[i] = e.Token()
		}
	}
	if tok := UnionTokens(defs, tokens...); tok != nil {
		st.time, st.stamped = tok.Time, true
		st.symbols = tok.Symbols.With(head.(Symbol).name)
	}
	return st
}

// Build creates head[leaves...]. The builder takes ownership of leaves.
func (st *Structure) Build(leaves []Node) *Expression {
	e := &Expression{head: st.head, leaves: leaves, time: st.time, stamped: st.stamped}
	if st.symbols != nil {
		e.symbols.Store(st.symbols)
	}
	return e
}

// Filter creates head[l...] for all leaves l of e for which keep(l) holds.
func (st *Structure) Filter(e *Expression, keep func(Node) bool) *Expression {
	leaves := make([]Node, 0, len(e.leaves))
	for _, l := range e.leaves {
		if keep(l) {
			leaves = append(leaves, l)
		}
	}
	return st.Build(leaves)
}

// Slice creates head[leaves[lo:hi]...] from the leaves of e. If the splice
// positions of e are already known, they are carried over to the result.
func (st *Structure) Slice(e *Expression, lo, hi int) *Expression {
	x := st.Build(e.leaves[lo:hi:hi])
	if p := e.sequences.Load(); p != nil {
		seq := *p
		from, to := sort.SearchInts(seq, lo), sort.SearchInts(seq, hi)
		shifted := make([]int, 0, to-from)
		for _, i := range seq[from:to] {
			shifted = append(shifted, i-lo)
		}
		x.sequences.Store(&shifted)
	}
	return x
}
