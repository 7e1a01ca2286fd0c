package expr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// testDefs is a minimal symbol table for testing.
type testDefs struct {
	now      Timestamp
	modified map[string]Timestamp
	values   map[string]bool
}

func newTestDefs() *testDefs {
	return &testDefs{now: 1, modified: map[string]Timestamp{}, values: map[string]bool{}}
}

func (d *testDefs) Now() Timestamp { return d.now }

func (d *testDefs) Changed(tok *Token) bool {
	if tok == nil || tok.Symbols == nil {
		return true
	}
	if d.now <= tok.Time {
		return false
	}
	changed := false
	tok.Symbols.Each(func(name string) {
		if d.modified[name] > tok.Time {
			changed = true
		}
	})
	return changed
}

func (d *testDefs) HasValues(name string) bool { return d.values[name] }

func (d *testDefs) touch(name string) {
	d.now++
	d.modified[name] = d.now
}

func sym(name string) Symbol { return NewSymbol(name) }

func TestExpressionString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	e := Call("f", sym("a"), Call("g", Int(2), NewString("s")))
	if e.String() != `f[a, g[2, "s"]]` {
		t.Errorf("unexpected string form %s", e)
	}
	if e.LookupName() != "f" {
		t.Errorf("lookup name should be f, is %q", e.LookupName())
	}
	curried := New(Call("f", sym("x")), sym("y"))
	if curried.LookupName() != "f" || curried.HeadName() != "" {
		t.Errorf("curried expression: lookup=%q, head=%q", curried.LookupName(), curried.HeadName())
	}
}

func TestSameness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	a := Call("f", sym("x"), Int(1))
	b := Call("f", sym("x"), Int(1))
	c := Call("f", sym("x"), Int(2))
	if !a.Same(b) {
		t.Errorf("expected %s and %s to be the same", a, b)
	}
	if a.Same(c) {
		t.Errorf("expected %s and %s to differ", a, c)
	}
	if a.WithHead(sym("g")).Same(a) {
		t.Errorf("WithHead should produce a different expression")
	}
	if !a.WithLeaf(1, Int(2)).Same(c) {
		t.Errorf("WithLeaf should produce %s", c)
	}
	if a.Leaf(1).(Number).Value().String() != "1" {
		t.Errorf("WithLeaf modified original expression")
	}
}

func TestSymbolsAndSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	tracing.Select("symex.expr").SetTraceLevel(tracing.LevelDebug)
	//
	e := Call("f", sym("a"), Call("Sequence", sym("b"), sym("c")), Call("g", Call("Sequence")))
	if !e.HasSymbol("Sequence") || !e.HasSymbol("g") || e.HasSymbol("h") {
		t.Errorf("unexpected symbol set %s", e.Symbols())
	}
	seq := e.Sequences()
	if len(seq) != 2 || seq[0] != 1 || seq[1] != 2 {
		t.Errorf("splice positions should be [1 2], are %v", seq)
	}
	flat := e.FlattenSequence(newTestDefs())
	if flat.String() != "f[a, b, c, g[Sequence[]]]" {
		t.Errorf("unexpected flattened sequence %s", flat)
	}
	plain := Call("f", sym("a"), sym("b"))
	plain.Symbols()
	if !plain.NoSymbol(SequenceName) || len(plain.Sequences()) != 0 {
		t.Errorf("expected %s to contain no sequences", plain)
	}
	if plain.FlattenSequence(newTestDefs()) != plain {
		t.Errorf("expression without sequences should be returned unchanged")
	}
}

func TestFlatten(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	f := sym("f")
	e := New(f, sym("a"), New(f, sym("b"), New(f, sym("c"))), Call("g", sym("d")))
	flat := e.Flatten(f)
	if flat.String() != "f[a, b, c, g[d]]" {
		t.Errorf("flatten should produce f[a, b, c, g[d]], is %s", flat)
	}
}

func TestTokenLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	defs := newTestDefs()
	e := Call("f", sym("x"))
	if e.Token() != nil {
		t.Errorf("fresh expression must not carry a token")
	}
	stamped := e.Stamped(defs.Now())
	tok := stamped.Token()
	if tok == nil || !tok.Symbols.Contains("x") || !tok.Symbols.Contains("f") {
		t.Fatalf("unexpected token %s", tok)
	}
	if defs.Changed(tok) {
		t.Errorf("token should be fresh")
	}
	defs.touch("y")
	if defs.Changed(stamped.Token()) {
		t.Errorf("change of unrelated symbol should not invalidate token")
	}
	defs.touch("x")
	if !defs.Changed(stamped.Token()) {
		t.Errorf("change of x should invalidate token")
	}
	r := stamped.Reordered(stamped.Leaves())
	if r.Token() != nil || r.symbols.Load() == nil {
		t.Errorf("reordering should drop time but keep symbols")
	}
	c := stamped.Copy(true)
	if c.Token() != nil {
		t.Errorf("copy for re-evaluation must drop token")
	}
	if c = stamped.Copy(false); c.Token() == nil {
		t.Errorf("plain copy must keep token")
	}
}

func TestAtomsAndWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	e := Call("f", sym("a"), Call("g", Int(2)))
	atoms := Atoms(e)
	if len(atoms) != 4 { // f, a, g, 2
		t.Errorf("expected 4 atoms, have %v", atoms)
	}
	if !HasForm(e.Leaf(1), "g", 1) || HasForm(e.Leaf(1), "g", 2) || !HasForm(e, "f", -1) {
		t.Errorf("HasForm gives wrong answers")
	}
}

func TestHash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	h1, err := Hash(Call("f", sym("a"), Int(1)))
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := Hash(Call("f", sym("a"), Int(1)).Stamped(7))
	h3, _ := Hash(Call("f", sym("a"), Int(2)))
	if h1 != h2 {
		t.Errorf("hash must not depend on token")
	}
	if h1 == h3 {
		t.Errorf("different expressions should hash differently")
	}
}

func TestStructureSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	defs := newTestDefs()
	e := Call("f", sym("a"), Call("Sequence", sym("b")), sym("c"),
		Call("g", Call("Sequence")), sym("d"), Call("Sequence", sym("e")))
	if seq := e.Sequences(); len(seq) != 3 || seq[0] != 1 || seq[1] != 3 || seq[2] != 5 {
		t.Fatalf("splice positions should be [1 3 5], are %v", seq)
	}
	st := NewStructure(sym("f"), e, defs, nil)
	for _, c := range []struct {
		lo, hi int
		seq    []int
	}{
		{0, 6, []int{1, 3, 5}},
		{2, 5, []int{1}},
		{1, 4, []int{0, 2}},
		{4, 6, []int{1}},
		{2, 3, []int{}},
		{0, 1, []int{}},
	} {
		x := st.Slice(e, c.lo, c.hi)
		if len(x.Leaves()) != c.hi-c.lo {
			t.Errorf("slice [%d:%d] has %d leaves", c.lo, c.hi, len(x.Leaves()))
		}
		p := x.sequences.Load()
		if p == nil {
			t.Errorf("slice [%d:%d] should carry splice positions", c.lo, c.hi)
			continue
		}
		if len(*p) != len(c.seq) {
			t.Errorf("slice [%d:%d]: splice positions should be %v, are %v", c.lo, c.hi, c.seq, *p)
			continue
		}
		for i := range c.seq {
			if (*p)[i] != c.seq[i] {
				t.Errorf("slice [%d:%d]: splice positions should be %v, are %v", c.lo, c.hi, c.seq, *p)
				break
			}
		}
	}
	fresh := Call("f", sym("a"), Call("Sequence"))
	if x := st.Slice(fresh, 0, 2); x.sequences.Load() != nil {
		t.Errorf("unknown splice positions should not be invented")
	}
}

func TestStructureInheritsTokenUnderSafeHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	defs := newTestDefs()
	defs.values["h"] = true
	cache := SafetyCache{}
	if !SafeHead(sym("g"), defs, cache) || !cache["g"] {
		t.Errorf("g has no values and should be safe")
	}
	if SafeHead(sym("h"), defs, cache) || cache["h"] {
		t.Errorf("h has values and must not be safe")
	}
	if SafeHead(Call("g"), defs, cache) || SafeHead(sym("g"), nil, nil) {
		t.Errorf("compound heads and missing definitions must not be safe")
	}
	orig := Call("f", sym("x"), sym("y")).Stamped(defs.Now())
	origTok := orig.Token()
	keepX := func(n Node) bool { return n.Same(sym("x")) }
	//
	safe := NewStructure(sym("g"), orig, defs, cache)
	built := safe.Build([]Node{sym("y")})
	tok := built.Token()
	if tok == nil || tok.Time != origTok.Time {
		t.Fatalf("expression under safe head should inherit token, has %s", tok)
	}
	if !tok.Symbols.Contains("g") || !tok.Symbols.Contains("x") {
		t.Errorf("inherited symbols should include head and origin, are %s", tok.Symbols)
	}
	if defs.Changed(tok) {
		t.Errorf("inherited token should be fresh")
	}
	filtered := safe.Filter(orig, keepX)
	if filtered.String() != "g[x]" || filtered.Token() == nil {
		t.Errorf("filter under safe head should keep token, have %s with %s", filtered, filtered.Token())
	}
	//
	unsafe := NewStructure(sym("h"), orig, defs, cache)
	if x := unsafe.Build([]Node{sym("y")}); x.Token() != nil {
		t.Errorf("expression under head with values must not inherit token")
	}
	if x := unsafe.Filter(orig, keepX); x.String() != "h[x]" || x.Token() != nil {
		t.Errorf("filter under head with values must drop token, have %s with %s", x, x.Token())
	}
	//
	other := Call("k", sym("z")).Stamped(defs.Now())
	from := StructureFrom(sym("g"), []Node{orig, other}, defs, cache).Build(nil)
	if tok := from.Token(); tok == nil || !tok.Symbols.Contains("z") || !tok.Symbols.Contains("y") {
		t.Errorf("structure from fresh origins should carry the union of symbols, has %s", tok)
	}
	if x := StructureFrom(sym("h"), []Node{orig, other}, defs, cache).Build(nil); x.Token() != nil {
		t.Errorf("structure from origins under head with values must not carry a token")
	}
	if x := StructureFrom(sym("g"), []Node{orig, Call("k")}, defs, cache).Build(nil); x.Token() != nil {
		t.Errorf("unstamped origin must prevent token inheritance")
	}
	defs.touch("z")
	if x := StructureFrom(sym("g"), []Node{orig, other}, defs, cache).Build(nil); x.Token() != nil {
		t.Errorf("stale origin must prevent token inheritance")
	}
}

func TestUnionTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.expr")
	defer teardown()
	//
	defs := newTestDefs()
	a := Call("f", sym("x")).Stamped(defs.Now()).Token()
	b := Call("g", sym("y")).Stamped(defs.Now()).Token()
	defs.touch("unrelated")
	u := UnionTokens(defs, a, b)
	if u == nil {
		t.Fatalf("union of fresh tokens should not be nil")
	}
	if u.Time != defs.Now() {
		t.Errorf("union should be stamped with current time %d, has %d", defs.Now(), u.Time)
	}
	for _, name := range []string{"f", "g", "x", "y"} {
		if !u.Symbols.Contains(name) {
			t.Errorf("union should contain %s, is %s", name, u.Symbols)
		}
	}
	if UnionTokens(defs, a, nil) != nil {
		t.Errorf("union with missing token should be nil")
	}
	defs.touch("y")
	if UnionTokens(defs, a, b) != nil {
		t.Errorf("union with stale token should be nil")
	}
	if UnionTokens(defs, a) == nil {
		t.Errorf("union of remaining fresh token should not be nil")
	}
}
