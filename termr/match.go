package termr

import (
	"github.com/npillmayer/symex/expr"
)

// Bindings maps pattern variables to the matched expressions. Bindings are
// never modified once handed out, binding a variable creates a new map.
type Bindings map[string]expr.Node

// bind binds name to v. If name is already bound, v has to be the same as the
// existing binding.
func (b Bindings) bind(name string, v expr.Node) (Bindings, bool) {
	if old, ok := b[name]; ok {
		return b, old.Same(v)
	}
	nb := make(Bindings, len(b)+1)
	for k, x := range b {
		nb[k] = x
	}
	nb[name] = v
	return nb, true
}

// Match matches an expression against a pattern. If it succeeds, it returns
// the bindings of the pattern variables.
func Match(pattern, n expr.Node) (Bindings, bool) {
	return matchNode(pattern, n, Bindings{})
}

// Matches checks if n matches pattern.
func Matches(pattern, n expr.Node) bool {
	_, ok := Match(pattern, n)
	return ok
}

func matchNode(p, n expr.Node, b Bindings) (Bindings, bool) {
	pe, ok := p.(*expr.Expression)
	if !ok {
		return b, p.Same(n)
	}
	switch pe.HeadName() {
	case "Pattern":
		if s, ok := patternName(pe); ok {
			b2, ok := matchNode(pe.Leaf(1), n, b)
			if !ok {
				return b, false
			}
			return b2.bind(s, n)
		}
	case "Blank", "BlankSequence", "BlankNullSequence":
		return b, blankMatches(pe, n)
	case "HoldPattern":
		if pe.Len() == 1 {
			return matchNode(pe.Leaf(0), n, b)
		}
	case "Verbatim":
		if pe.Len() == 1 {
			return b, pe.Leaf(0).Same(n)
		}
	case "Alternatives":
		for _, alt := range pe.Leaves() {
			if b2, ok := matchNode(alt, n, b); ok {
				return b2, true
			}
		}
		return b, false
	}
	ne, ok := n.(*expr.Expression)
	if !ok {
		return b, false
	}
	if b, ok = matchNode(pe.Head(), ne.Head(), b); !ok {
		return b, false
	}
	return matchLeaves(pe.Leaves(), ne.Leaves(), b)
}

func patternName(p *expr.Expression) (string, bool) {
	if p.Len() != 2 {
		return "", false
	}
	s, ok := p.Leaf(0).(expr.Symbol)
	return s.Name(), ok
}

// blankMatches checks the head constraint of a Blank, if any.
func blankMatches(blank *expr.Expression, n expr.Node) bool {
	if blank.Len() == 0 {
		return true
	}
	return n.Head().Same(blank.Leaf(0))
}

// sequencePattern checks if p matches sequences of leaves. It returns the
// variable name (possibly "") and the blank.
func sequencePattern(p expr.Node) (string, *expr.Expression, bool) {
	pe, ok := p.(*expr.Expression)
	if !ok {
		return "", nil, false
	}
	name := ""
	if pe.HeadName() == "Pattern" {
		s, ok := patternName(pe)
		if !ok {
			return "", nil, false
		}
		name = s
		if pe, ok = pe.Leaf(1).(*expr.Expression); !ok {
			return "", nil, false
		}
	}
	switch pe.HeadName() {
	case "BlankSequence", "BlankNullSequence":
		return name, pe, true
	}
	return "", nil, false
}

func matchLeaves(ps, ns []expr.Node, b Bindings) (Bindings, bool) {
	if len(ps) == 0 {
		return b, len(ns) == 0
	}
	name, blank, isSeq := sequencePattern(ps[0])
	if !isSeq {
		if len(ns) == 0 {
			return b, false
		}
		b2, ok := matchNode(ps[0], ns[0], b)
		if !ok {
			return b, false
		}
		return matchLeaves(ps[1:], ns[1:], b2)
	}
	k := 1
	if blank.HeadName() == "BlankNullSequence" {
		k = 0
	}
	for ; k <= len(ns); k++ {
		if k > 0 && !blankMatches(blank, ns[k-1]) {
			break
		}
		b2 := b
		if name != "" {
			var ok bool
			if b2, ok = b.bind(name, expr.New(expr.SymSequence, ns[:k]...)); !ok {
				continue
			}
		}
		if b3, ok := matchLeaves(ps[1:], ns[k:], b2); ok {
			return b3, true
		}
	}
	return b, false
}
