package expr

// Pattern ranks are sequences of up to 9 positions, compared
// lexicographically, a shorter prefix sorting first. Positions are
//
//     0: 0 = atom, 2 = expression, 3 = malformed, 4 = sentinel
//     1: wildcard class (Blank 11/21, BlankSequence 12/22,
//        BlankNullSequence 13/23, OptionsPattern 40, else 0)
//     2: 0 if constrained by a PatternTest
//     3: 0 if named by Pattern
//     4: 1 if Optional
//     5: rank of head
//     6: ranks of leaves
//     7: 0 if constrained by a Condition
//
// Malformed patterns and OptionsPattern compare their raw head and leaves in
// canonical order.

const (
	modeNormal = iota
	modeMalformed
	modeOptions
)

type patternKey struct {
	n      int // number of positions present
	ints   [5]int
	mode   int
	head   *patternKey
	leaves []*patternKey
	raw    *Expression
	last   int
}

var sentinelKey = &patternKey{n: 1, ints: [5]int{4}}

func atomPatternKey() *patternKey {
	return &patternKey{n: 8, ints: [5]int{0, 0, 1, 1, 0}, last: 1}
}

func malformedKey(e *Expression) *patternKey {
	return &patternKey{n: 8, ints: [5]int{3}, mode: modeMalformed, raw: e, last: 1}
}

// PatternCompare ranks patterns by specificity. More specific patterns (i.e.,
// patterns which match fewer expressions) sort first, e.g.
//
//     f[1]  <  f[x_Integer]  <  f[x_]  <  f[x__]  <  f[x___]
//
func PatternCompare(a, b Node) int {
	return comparePatternKeys(patternKeyOf(a), patternKeyOf(b))
}

func patternKeyOf(n Node) *patternKey {
	e, ok := n.(*Expression)
	if !ok {
		return atomPatternKey()
	}
	switch name := e.HeadName(); name {
	case "Blank", "BlankSequence", "BlankNullSequence":
		class := map[string]int{"Blank": 1, "BlankSequence": 2, "BlankNullSequence": 3}[name]
		if len(e.leaves) > 0 {
			class += 10
		} else {
			class += 20
		}
		return &patternKey{
			n:      8,
			ints:   [5]int{2, class, 1, 1, 0},
			head:   patternKeyOf(e.head),
			leaves: leafPatternKeys(e.leaves, false),
			last:   1,
		}
	case "PatternTest":
		if len(e.leaves) != 2 {
			return malformedKey(e)
		}
		return withPosition(patternKeyOf(e.leaves[0]), 2, 0)
	case "Condition":
		if len(e.leaves) != 2 {
			return malformedKey(e)
		}
		return withPosition(patternKeyOf(e.leaves[0]), 7, 0)
	case "Pattern":
		if len(e.leaves) != 2 {
			return malformedKey(e)
		}
		return withPosition(patternKeyOf(e.leaves[1]), 3, 0)
	case "Optional":
		if len(e.leaves) != 1 && len(e.leaves) != 2 {
			return malformedKey(e)
		}
		return withPosition(patternKeyOf(e.leaves[0]), 4, 1)
	case "Alternatives":
		minKey := sentinelKey
		for _, l := range e.leaves {
			if k := patternKeyOf(l); comparePatternKeys(k, minKey) < 0 {
				minKey = k
			}
		}
		if minKey == sentinelKey {
			return &patternKey{n: 2, ints: [5]int{2, 1}}
		}
		return minKey
	case "Verbatim":
		if len(e.leaves) != 1 {
			return malformedKey(e)
		}
		return patternKeyOf(e.leaves[0])
	case "OptionsPattern":
		return &patternKey{n: 9, ints: [5]int{2, 40, 0, 1, 1}, mode: modeOptions, raw: e, last: 1}
	}
	return &patternKey{
		n:      8,
		ints:   [5]int{2, 0, 1, 1, 0},
		head:   patternKeyOf(e.head),
		leaves: leafPatternKeys(e.leaves, true),
		last:   1,
	}
}

// leafPatternKeys ranks leaves. With sentinel set, a sentinel is appended, so
// that expressions with more leaves rank before their prefixes.
func leafPatternKeys(leaves []Node, sentinel bool) []*patternKey {
	keys := make([]*patternKey, 0, len(leaves)+1)
	for _, l := range leaves {
		keys = append(keys, patternKeyOf(l))
	}
	if sentinel {
		keys = append(keys, sentinelKey)
	}
	return keys
}

// withPosition returns a copy of k with position pos set to v. Positions
// not present in k are left alone.
func withPosition(k *patternKey, pos int, v int) *patternKey {
	c := *k
	if pos >= c.n {
		return &c
	}
	if pos == 7 {
		c.last = v
	} else if pos < 5 {
		c.ints[pos] = v
	}
	return &c
}

func comparePatternKeys(a, b *patternKey) int {
	for i := 0; i < 5; i++ {
		if i >= a.n || i >= b.n {
			return cmpInt(a.n, b.n)
		}
		if c := cmpInt(a.ints[i], b.ints[i]); c != 0 {
			return c
		}
	}
	if c := cmpInt(a.mode, b.mode); c != 0 {
		return c
	}
	switch a.mode {
	case modeMalformed, modeOptions:
		if c := Compare(a.raw.head, b.raw.head); c != 0 {
			return c
		}
		if c := compareLeaves(a.raw.leaves, b.raw.leaves); c != 0 {
			return c
		}
	default:
		if a.head != nil && b.head != nil {
			if c := comparePatternKeys(a.head, b.head); c != 0 {
				return c
			}
		}
		for i := 0; i < len(a.leaves) && i < len(b.leaves); i++ {
			if c := comparePatternKeys(a.leaves[i], b.leaves[i]); c != 0 {
				return c
			}
		}
		if c := cmpInt(len(a.leaves), len(b.leaves)); c != 0 {
			return c
		}
	}
	return cmpInt(a.last, b.last)
}
