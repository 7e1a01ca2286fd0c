package subst

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/expr"
	"github.com/stretchr/testify/assert"
)

func sym(name string) expr.Symbol { return expr.NewSymbol(name) }

func TestReplaceVars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.subst")
	defer teardown()
	//
	e := expr.Call("f", sym("x"), expr.Call("g", sym("y"), sym("z")))
	r := ReplaceVars(e, map[string]expr.Node{"x": expr.Int(1), "y": expr.Int(2)}, RespectScoping)
	assert.Equal(t, "f[1, g[2, z]]", r.String())
	untouched := expr.Call("h", sym("a"))
	assert.True(t, ReplaceVars(untouched, map[string]expr.Node{"x": expr.Int(1)}, RespectScoping) == untouched)
	assert.True(t, ReplaceVars(untouched, nil, RespectScoping) == untouched)
}

func TestScopingConstructs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.subst")
	defer teardown()
	//
	module := expr.Call("Module",
		expr.Call("List", sym("x"), expr.Call("Set", sym("w"), expr.Int(0))),
		expr.Call("Plus", sym("x"), sym("y"), sym("w")))
	e := expr.Call("f", sym("x"), module)
	vars := map[string]expr.Node{"x": expr.Int(1), "y": expr.Int(2), "w": expr.Int(3)}
	r := ReplaceVars(e, vars, RespectScoping)
	assert.Equal(t, "f[1, Module[List[x, Set[w, 0]], Plus[x, 2, w]]]", r.String())
	r = ReplaceVars(e, vars, IgnoreScoping)
	assert.Equal(t, "f[1, Module[List[1, Set[3, 0]], Plus[1, 2, 3]]]", r.String())
}

func TestFunctionCaptureAvoidance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.subst")
	defer teardown()
	//
	fn := expr.Call("Function", expr.Call("List", sym("y")), expr.Call("Plus", sym("x"), sym("y")))
	r := ReplaceVars(fn, map[string]expr.Node{"x": sym("y")}, RespectScoping)
	f, ok := r.(*expr.Expression)
	if !ok || !f.HasForm("Function", 2) {
		t.Fatalf("expected function literal, have %s", r)
	}
	param := f.Leaf(0).(*expr.Expression).Leaf(0).(expr.Symbol)
	if param.Name() == "y" || !strings.HasPrefix(param.Name(), "y$") {
		t.Errorf("parameter should have been renamed, is %s", param)
	}
	body := f.Leaf(1).(*expr.Expression)
	assert.Equal(t, "y", body.Leaf(0).String(), "substituted value must stay free")
	assert.Equal(t, param.Name(), body.Leaf(1).String(), "parameter must be renamed in body")
}

func TestFreshNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.subst")
	defer teardown()
	//
	taken := map[string]bool{}
	for i := 0; i < 10; i++ {
		n := FreshName("x", func(s string) bool { return taken[s] })
		if taken[n] {
			t.Errorf("fresh name %s has been handed out before", n)
		}
		taken[n] = true
	}
}

type collector []*symex.Condition

func (c *collector) Report(cond *symex.Condition) { *c = append(*c, cond) }

func slot(n int64) *expr.Expression { return expr.Call("Slot", expr.Int(n)) }

func TestReplaceSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.subst")
	defer teardown()
	//
	fn := sym("fn")
	slots := []expr.Node{fn, sym("a"), sym("b"), sym("c")}
	var conds collector
	body := expr.Call("f", slot(1), slot(3), expr.Call("SlotSequence", expr.Int(2)), slot(0))
	r := ReplaceSlots(body, slots, &conds)
	assert.Equal(t, "f[a, c, Sequence[b, c], fn]", r.String())
	assert.Empty(t, conds)
	nested := expr.Call("g", slot(1), expr.Call("Function", slot(1)))
	r = ReplaceSlots(nested, slots, &conds)
	assert.Equal(t, "g[a, Function[Slot[1]]]", r.String())
}

func TestInvalidSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.subst")
	defer teardown()
	//
	slots := []expr.Node{sym("fn"), sym("a")}
	var conds collector
	for _, bad := range []*expr.Expression{
		slot(5),
		slot(-1),
		expr.Call("Slot", sym("x")),
		expr.Call("Slot", expr.Int(1), expr.Int(2)),
		expr.Call("SlotSequence", expr.Int(0)),
	} {
		conds = nil
		r := ReplaceSlots(bad, slots, &conds)
		if !r.Same(bad) {
			t.Errorf("invalid slot %s should stay unresolved, is %s", bad, r)
		}
		if len(conds) != 1 || conds[0].Kind != symex.SlotArgumentInvalid {
			t.Errorf("expected SlotArgumentInvalid for %s, have %v", bad, conds)
		}
	}
}
