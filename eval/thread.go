package eval

import (
	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/expr"
)

// thread threads a call of a Listable function over its list arguments:
//
//     f[{a, b}, {c, d}, x]   ⇒   {f[a, c, x], f[b, d, x]}
//
// It returns false if there is no list argument. If list arguments differ in
// length, a ThreadLengthMismatch condition is reported and e is returned
// unchanged.
func (ev *Evaluation) thread(e *expr.Expression) (expr.Node, bool) {
	var items [][]expr.Node
	var prefix []expr.Node // arguments before the first list
	dim := -1
	for _, l := range e.Leaves() {
		list, ok := l.(*expr.Expression)
		if ok && list.HasForm(expr.ListName, -1) {
			if dim < 0 {
				dim = list.Len()
				items = make([][]expr.Node, dim)
				for i := range items {
					items[i] = make([]expr.Node, len(prefix), e.Len())
					copy(items[i], prefix)
					items[i] = append(items[i], list.Leaf(i))
				}
				continue
			}
			if list.Len() != dim {
				ev.Report(symex.Errorf(symex.ThreadLengthMismatch, "Thread",
					"objects of unequal length in %s cannot be combined", e))
				return e, true
			}
			for i := range items {
				items[i] = append(items[i], list.Leaf(i))
			}
			continue
		}
		if dim < 0 {
			prefix = append(prefix, l)
			continue
		}
		for i := range items {
			items[i] = append(items[i], l)
		}
	}
	if dim < 0 {
		return e, false
	}
	calls := make([]expr.Node, dim)
	for i, item := range items {
		calls[i] = expr.Wrap(e.Head(), item)
	}
	return expr.Wrap(expr.SymList, calls), true
}
