package defs

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/termr"
)

func sym(name string) expr.Symbol { return expr.NewSymbol(name) }

func TestNewSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.defs")
	defer teardown()
	//
	d := New()
	if d == nil || d.Size() != 0 || d.Now() != 0 {
		t.Error("no empty symbol table created")
	}
	if d.Lookup("f") != nil {
		t.Error("empty table should not resolve symbols")
	}
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.defs")
	defer teardown()
	//
	d := New()
	if err := d.SetAttributes("f", Flat|Orderless); err != nil {
		t.Fatal(err)
	}
	if a := d.Attributes("f"); !a.Has(Flat|Orderless) || a.Has(Listable) {
		t.Errorf("unexpected attributes %s", a)
	}
	if err := d.ClearAttributes("f", Flat); err != nil || d.Attributes("f").Has(Flat) {
		t.Errorf("Flat should have been cleared")
	}
	_ = d.SetAttributes("List", Locked)
	if err := d.SetAttributes("List", Listable); !errors.Is(err, ErrLocked) {
		t.Errorf("locked symbol should reject attribute changes, err = %v", err)
	}
	if AttributeFromString("HoldRest") != HoldRest {
		t.Errorf("attribute name lookup broken")
	}
	if s := (HoldAll | Listable).String(); s != "{HoldAll, Listable}" {
		t.Errorf("unexpected attribute string %s", s)
	}
}

func TestClock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.defs")
	defer teardown()
	//
	d := New()
	_ = d.SetAttributes("g", Flat)
	e := expr.Call("f", sym("x")).Stamped(d.Now())
	if d.Changed(e.Token()) {
		t.Errorf("token should be fresh right after stamping")
	}
	if !d.Changed(nil) {
		t.Errorf("nil token must be stale")
	}
	_ = d.AddRule("g", DownValues, termr.NewRule(expr.Call("g"), expr.Int(1)))
	if d.Changed(e.Token()) {
		t.Errorf("change of g must not invalidate tokens without g")
	}
	_ = d.AddRule("x", OwnValues, termr.NewRule(sym("x"), expr.Int(1)))
	if !d.Changed(e.Token()) {
		t.Errorf("change of x must invalidate token of f[x]")
	}
	before := d.Lookup("x")
	_ = d.Clear("x")
	if d.HasValues("x") || !before.hasValues() {
		t.Errorf("clearing should replace, not modify, the definition")
	}
}

func TestRuleOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.defs")
	defer teardown()
	//
	d := New()
	general := termr.NewRule(expr.Call("f", termr.Var("x")), expr.Int(0))
	special := termr.NewRule(expr.Call("f", expr.Int(1)), expr.Int(1))
	typed := termr.NewRule(expr.Call("f", termr.VarOf("n", "Integer")), expr.Int(2))
	for _, r := range []termr.Rule{general, special, typed} {
		if err := d.AddRule("f", DownValues, r); err != nil {
			t.Fatal(err)
		}
	}
	rules := d.Values("f", DownValues)
	if len(rules) != 3 || rules[0] != special || rules[1] != typed || rules[2] != general {
		t.Errorf("rules not ordered by specificity: %v", rules)
	}
	replacement := termr.NewRule(expr.Call("f", termr.Var("x")), expr.Int(42))
	_ = d.AddRule("f", DownValues, replacement)
	rules = d.Values("f", DownValues)
	if len(rules) != 3 || rules[2] != replacement {
		t.Errorf("rule with same pattern should be replaced: %v", rules)
	}
	if !d.IsUserDefined("f") || !d.AnyUserDefined([]string{"a", "f"}) || d.AnyUserDefined([]string{"a"}) {
		t.Errorf("f should be user defined")
	}
}

func TestProtected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.defs")
	defer teardown()
	//
	d := New()
	d.AddBuiltinRule("Plus", DownValues, termr.NewRule(expr.Call("Plus"), expr.Int(0)))
	_ = d.SetAttributes("Plus", Protected)
	if d.IsUserDefined("Plus") {
		t.Errorf("builtin rules should not count as user defined")
	}
	err := d.AddRule("Plus", DownValues, termr.NewRule(expr.Call("Plus", sym("a")), sym("a")))
	if !errors.Is(err, ErrProtected) {
		t.Errorf("protected symbol should reject user rules, err = %v", err)
	}
	n := 0
	d.Each(func(name string, def *Definition) { n++ })
	if n != 1 || d.Size() != 1 {
		t.Errorf("expected 1 definition, have %d", n)
	}
}
