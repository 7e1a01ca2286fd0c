package builtin

import (
	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/subst"
	"github.com/npillmayer/symex/termr"
)

// Function[body][args…] replaces the slots of body.
func applySlots(n expr.Node, b termr.Bindings, ctx termr.Context) expr.Node {
	e := n.(*expr.Expression)
	slots := make([]expr.Node, 0, e.Len()+1)
	slots = append(slots, e.Head())
	slots = append(slots, e.Leaves()...)
	return subst.ReplaceSlots(b["body"], slots, ctx)
}

// Function[{x, y, …}, body][a, b, …] replaces x, y, … in body by a, b, ….
func applyParams(n expr.Node, b termr.Bindings, ctx termr.Context) expr.Node {
	e := n.(*expr.Expression)
	var params []expr.Node
	switch p := b["params"].(type) {
	case expr.Symbol:
		params = []expr.Node{p}
	case *expr.Expression:
		if !p.HasForm(expr.ListName, -1) {
			return nil
		}
		params = p.Leaves()
	default:
		return nil
	}
	if len(params) > e.Len() {
		ctx.Report(symex.Errorf(symex.SlotArgumentInvalid, "Function",
			"parameter count %d of %s exceeds number of arguments %d", len(params), e.Head(), e.Len()))
		return nil
	}
	vars := make(map[string]expr.Node, len(params))
	for i, p := range params {
		s, ok := p.(expr.Symbol)
		if !ok {
			tracer().Debugf("function parameter %s is not a symbol", p)
			return nil
		}
		vars[s.Name()] = e.Leaf(i)
	}
	return subst.ReplaceVars(b["body"], vars, subst.RespectScoping)
}
