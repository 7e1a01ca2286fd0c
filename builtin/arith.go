package builtin

import (
	"errors"

	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/num"
	"github.com/npillmayer/symex/termr"
)

type numOp func(a, b num.Number) (num.Number, error)

func plus(n expr.Node, _ termr.Bindings, ctx termr.Context) expr.Node {
	return fold(n.(*expr.Expression), num.Zero(), num.Add, ctx)
}

func times(n expr.Node, _ termr.Bindings, ctx termr.Context) expr.Node {
	e := n.(*expr.Expression)
	for _, l := range e.Leaves() {
		if x, ok := l.(expr.Number); ok && num.IsExact(x.Value()) && x.Value().IsZero() {
			return x
		}
	}
	return fold(e, num.One(), num.Multiply, ctx)
}

// fold combines the numeric arguments of e with op. Arguments are sorted,
// so numbers are the leading arguments. It returns nil if there is nothing
// to combine.
//
//     Plus[]              ⇒   0
//     Plus[x]             ⇒   x
//     Plus[1, 2, x]       ⇒   Plus[3, x]
//     Plus[0, x, y]       ⇒   Plus[x, y]
//
func fold(e *expr.Expression, unit num.Number, op numOp, ctx termr.Context) expr.Node {
	switch e.Len() {
	case 0:
		return expr.NewNumber(unit)
	case 1:
		return e.Leaf(0)
	}
	var acc num.Number
	var rest []expr.Node
	count := 0
	for _, l := range e.Leaves() {
		x, ok := l.(expr.Number)
		if !ok {
			rest = append(rest, l)
			continue
		}
		count++
		if acc == nil {
			acc = x.Value()
			continue
		}
		r, err := op(acc, x.Value())
		if err != nil {
			reportNumeric(ctx, e.HeadName(), err)
			return expr.Failed
		}
		acc = r
	}
	if acc == nil {
		return nil
	}
	isUnit := num.IsExact(acc) && num.Same(acc, unit)
	if count == 1 && !isUnit {
		return nil
	}
	if len(rest) == 0 {
		return expr.NewNumber(acc)
	}
	if isUnit {
		if len(rest) == 1 {
			return rest[0]
		}
		return expr.Wrap(e.Head(), rest)
	}
	leaves := make([]expr.Node, 0, len(rest)+1)
	leaves = append(leaves, expr.NewNumber(acc))
	leaves = append(leaves, rest...)
	return expr.Wrap(e.Head(), leaves)
}

func reportNumeric(ctx termr.Context, head string, err error) {
	var c *symex.Condition
	if errors.As(err, &c) {
		ctx.Report(c)
		return
	}
	ctx.Report(symex.Errorf(symex.NumericOverflow, head, "%v", err))
}

// Hash[x] ⇒ structural hash of x, as a string.
func hash(n expr.Node, b termr.Bindings, ctx termr.Context) expr.Node {
	h, err := expr.Hash(b["x"])
	if err != nil {
		tracer().Errorf("cannot hash %s: %v", b["x"], err)
		return expr.Failed
	}
	return expr.NewString(h)
}
