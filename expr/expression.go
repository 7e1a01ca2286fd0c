package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync/atomic"
)

// Expression is a compound node, consisting of a head and leaves.
//
// Expressions are immutable. The caches for referenced symbols and splice
// positions are computed on demand and published atomically.
type Expression struct {
	head    Node
	leaves  []Node
	time    Timestamp
	stamped bool
	// lazily computed
	symbols   atomic.Pointer[SymbolSet]
	sequences atomic.Pointer[[]int]
}

// New creates an expression. The leaves are copied.
func New(head Node, leaves ...Node) *Expression {
	if head == nil {
		panic("nil head for expression")
	}
	l := make([]Node, len(leaves))
	copy(l, leaves)
	return &Expression{head: head, leaves: l}
}

// Wrap creates an expression from a slice of leaves, without copying it.
// Clients must not modify leaves afterwards.
func Wrap(head Node, leaves []Node) *Expression {
	if head == nil {
		panic("nil head for expression")
	}
	return &Expression{head: head, leaves: leaves}
}

// Call creates an expression with a symbol head.
//
//     Call("f", a, b)   ⇒   f[a, b]
//
func Call(name string, leaves ...Node) *Expression {
	return New(NewSymbol(name), leaves...)
}

// Head returns the head of e.
func (e *Expression) Head() Node { return e.head }

// HeadName returns the name of the head, if it is a symbol.
func (e *Expression) HeadName() string {
	if s, ok := e.head.(Symbol); ok {
		return s.name
	}
	return ""
}

// LookupName is the name of the leftmost symbol in the chain of heads.
func (e *Expression) LookupName() string { return e.head.LookupName() }

// IsAtom is false.
func (e *Expression) IsAtom() bool { return false }

// Len returns the number of leaves.
func (e *Expression) Len() int { return len(e.leaves) }

// Leaf returns the i-th leaf (0-based).
func (e *Expression) Leaf(i int) Node { return e.leaves[i] }

// Leaves returns the leaves of e. The slice is shared with e and must not be
// modified.
func (e *Expression) Leaves() []Node { return e.leaves }

// Same is structural identity.
func (e *Expression) Same(other Node) bool {
	o, ok := other.(*Expression)
	if !ok {
		return false
	}
	if o == e {
		return true
	}
	if len(o.leaves) != len(e.leaves) || !e.head.Same(o.head) {
		return false
	}
	for i, l := range e.leaves {
		if !l.Same(o.leaves[i]) {
			return false
		}
	}
	return true
}

// HasForm checks the head name and, if n ≥ 0, the number of leaves.
func (e *Expression) HasForm(name string, n int) bool {
	return e.HeadName() == name && (n < 0 || len(e.leaves) == n)
}

// HasForm checks if a node is an expression with head name and n leaves
// (any number of leaves if n < 0).
func HasForm(node Node, name string, n int) bool {
	e, ok := node.(*Expression)
	return ok && e.HasForm(name, n)
}

func (e *Expression) String() string {
	var b strings.Builder
	b.WriteString(e.head.String())
	b.WriteByte('[')
	for i, l := range e.leaves {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l.String())
	}
	b.WriteByte(']')
	return b.String()
}

// --- Caches ----------------------------------------------------------------

// Token returns the memoization token of e, or nil if e has never been
// stamped. The set of referenced symbols is computed, if necessary.
func (e *Expression) Token() *Token {
	if !e.stamped {
		return nil
	}
	return &Token{Time: e.time, Symbols: e.Symbols()}
}

// Symbols returns the set of names of all symbols in e, including heads.
func (e *Expression) Symbols() *SymbolSet {
	if s := e.symbols.Load(); s != nil {
		return s
	}
	set := NewSymbolSet()
	collect := func(n Node) {
		switch x := n.(type) {
		case Symbol:
			set.set.Add(x.name)
		case *Expression:
			x.Symbols().Each(func(name string) { set.set.Add(name) })
		}
	}
	collect(e.head)
	for _, l := range e.leaves {
		collect(l)
	}
	e.symbols.Store(set)
	return set
}

// HasSymbol checks if a symbol occurs anywhere in e.
func (e *Expression) HasSymbol(name string) bool {
	return e.Symbols().Contains(name)
}

// NoSymbol is true if the set of referenced symbols is already known and it
// does not contain name. It never triggers computing the set.
func (e *Expression) NoSymbol(name string) bool {
	s := e.symbols.Load()
	return s != nil && !s.Contains(name)
}

// Sequences returns the positions of leaves which either have head Sequence
// or recursively contain such an expression.
func (e *Expression) Sequences() []int {
	if p := e.sequences.Load(); p != nil {
		return *p
	}
	var seq []int
	if !e.NoSymbol(SequenceName) {
		for i, l := range e.leaves {
			if x, ok := l.(*Expression); ok {
				if x.HeadName() == SequenceName || len(x.Sequences()) > 0 {
					seq = append(seq, i)
				}
			}
		}
	}
	e.sequences.Store(&seq)
	return seq
}

// --- Derived expressions ---------------------------------------------------

// Stamped returns a copy of e carrying a token with time t. Cached symbols and
// splice positions are kept.
func (e *Expression) Stamped(t Timestamp) *Expression {
	c := &Expression{head: e.head, leaves: e.leaves, time: t, stamped: true}
	c.symbols.Store(e.symbols.Load())
	c.sequences.Store(e.sequences.Load())
	return c
}

// Reordered returns an expression with a permutation of the leaves of e.
// The set of referenced symbols is kept, the timestamp is dropped.
func (e *Expression) Reordered(leaves []Node) *Expression {
	c := &Expression{head: e.head, leaves: leaves}
	c.symbols.Store(e.symbols.Load())
	return c
}

// ShallowCopy copies e, sharing leaves and keeping token and caches.
func (e *Expression) ShallowCopy() *Expression {
	c := &Expression{head: e.head, leaves: e.leaves, time: e.time, stamped: e.stamped}
	c.symbols.Store(e.symbols.Load())
	c.sequences.Store(e.sequences.Load())
	return c
}

// Copy copies e recursively. If reevaluate is set, all tokens and caches are
// dropped, forcing evaluation of the copy. Otherwise tokens are kept.
func (e *Expression) Copy(reevaluate bool) *Expression {
	leaves := make([]Node, len(e.leaves))
	for i, l := range e.leaves {
		if x, ok := l.(*Expression); ok {
			leaves[i] = x.Copy(reevaluate)
		} else {
			leaves[i] = l
		}
	}
	head := e.head
	if x, ok := head.(*Expression); ok {
		head = x.Copy(reevaluate)
	}
	c := &Expression{head: head, leaves: leaves}
	if !reevaluate {
		c.time, c.stamped = e.time, e.stamped
		c.symbols.Store(e.Symbols())
	}
	return c
}

// WithHead returns an expression with the leaves of e and a new head.
// The token is dropped.
func (e *Expression) WithHead(head Node) *Expression {
	c := &Expression{head: head, leaves: e.leaves}
	c.sequences.Store(e.sequences.Load())
	return c
}

// WithLeaf returns an expression with the i-th leaf replaced by v.
// The token and all caches are dropped.
func (e *Expression) WithLeaf(i int, v Node) *Expression {
	leaves := make([]Node, len(e.leaves))
	copy(leaves, e.leaves)
	leaves[i] = v
	return &Expression{head: e.head, leaves: leaves}
}

// Slice returns head[leaves[lo:hi]]. See Structure.Slice.
func (e *Expression) Slice(head Node, lo, hi int, defs Definitions) *Expression {
	return NewStructure(head, e, defs, nil).Slice(e, lo, hi)
}

// Filter returns head[l...] for all leaves l for which keep(l) is true.
// See Structure.Filter.
func (e *Expression) Filter(head Node, keep func(Node) bool, defs Definitions) *Expression {
	return NewStructure(head, e, defs, nil).Filter(e, keep)
}

// Restructure builds head[leaves...]. The leaves are expected to be derived
// from deps (e itself, if no deps are given). If possible, the result takes
// over the memoization state of deps.
func (e *Expression) Restructure(head Node, leaves []Node, defs Definitions,
	cache SafetyCache, deps ...Node) *Expression {
	//
	if len(deps) == 0 {
		return NewStructure(head, e, defs, cache).Build(leaves)
	}
	return StructureFrom(head, deps, defs, cache).Build(leaves)
}

// FilterLeaves returns all leaves with head name.
func (e *Expression) FilterLeaves(name string) []Node {
	var r []Node
	for _, l := range e.leaves {
		if l.HeadName() == name {
			r = append(r, l)
		}
	}
	return r
}

// --- Flattening ------------------------------------------------------------

// Flatten splices leaves with the same head as head into e, recursively.
//
//     f[a, f[b, f[c]], g[d]].Flatten(f)   ⇒   f[a, b, c, g[d]]
//
func (e *Expression) Flatten(head Node) *Expression {
	var flat []Node
	changed := false
	for _, l := range e.leaves {
		if x, ok := l.(*Expression); ok && x.head.Same(head) {
			flat = append(flat, x.Flatten(head).leaves...)
			changed = true
		} else {
			flat = append(flat, l)
		}
	}
	if !changed {
		return e
	}
	return &Expression{head: e.head, leaves: flat}
}

// FlattenSequence splices leaves of the form Sequence[…] into e.
//
//     f[a, Sequence[b, c], d]   ⇒   f[a, b, c, d]
//
func (e *Expression) FlattenSequence(defs Definitions) *Expression {
	seq := e.Sequences()
	if len(seq) == 0 {
		return e
	}
	leaves := make([]Node, 0, len(e.leaves)+len(seq))
	next := 0
	for _, i := range seq {
		leaves = append(leaves, e.leaves[next:i]...)
		if x := e.leaves[i].(*Expression); x.HeadName() == SequenceName {
			leaves = append(leaves, x.leaves...)
		} else {
			leaves = append(leaves, x)
		}
		next = i + 1
	}
	leaves = append(leaves, e.leaves[next:]...)
	return e.Restructure(e.head, leaves, defs, nil)
}

// --- Inspection ------------------------------------------------------------

// Walk traverses n in depth-first pre-order, heads before leaves. If f
// returns false for an expression, its children are skipped.
func Walk(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	if e, ok := n.(*Expression); ok {
		Walk(e.head, f)
		for _, l := range e.leaves {
			Walk(l, f)
		}
	}
}

// Atoms returns all atoms of n, in pre-order.
func Atoms(n Node) []Node {
	var atoms []Node
	Walk(n, func(x Node) bool {
		if x.IsAtom() {
			atoms = append(atoms, x)
		}
		return true
	})
	return atoms
}
