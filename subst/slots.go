package subst

import (
	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/expr"
)

// ReplaceSlots replaces the slots of the body of a pure function by the
// function's arguments. slots[0] is the function itself, slots[1…] are the
// arguments:
//
//     Slot[n]            ⇒   slots[n]
//     SlotSequence[n]    ⇒   Sequence[slots[n], slots[n+1], …]
//
// Nested function literals with slots (Function[body]) are not entered.
// Malformed slot references are reported as SlotArgumentInvalid to r (which
// may be nil) and left unresolved.
func ReplaceSlots(n expr.Node, slots []expr.Node, r symex.Reporter) expr.Node {
	e, ok := n.(*expr.Expression)
	if !ok {
		return n
	}
	switch e.HeadName() {
	case "Slot":
		if e.Len() != 1 {
			report(r, symex.Errorf(symex.SlotArgumentInvalid, "Slot",
				"Slot called with %d arguments; 1 argument is expected", e.Len()))
			return e
		}
		k, ok := expr.IsInteger(e.Leaf(0))
		if !ok || k < 0 {
			report(r, symex.Errorf(symex.SlotArgumentInvalid, "Function",
				"%s should contain a non-negative integer", e))
			return e
		}
		if k >= len(slots) {
			report(r, symex.Errorf(symex.SlotArgumentInvalid, "Function",
				"Slot number %d cannot be filled", k))
			return e
		}
		return slots[k]
	case "SlotSequence":
		if e.Len() != 1 {
			report(r, symex.Errorf(symex.SlotArgumentInvalid, "SlotSequence",
				"SlotSequence called with %d arguments; 1 argument is expected", e.Len()))
			return e
		}
		k, ok := expr.IsInteger(e.Leaf(0))
		if !ok || k < 1 {
			report(r, symex.Errorf(symex.SlotArgumentInvalid, "Function",
				"%s should contain a positive integer", e))
			return e
		}
		if k >= len(slots) {
			return expr.Call(expr.SequenceName)
		}
		return expr.New(expr.SymSequence, slots[k:]...)
	case "Function":
		if e.Len() == 1 {
			return e
		}
	}
	head := ReplaceSlots(e.Head(), slots, r)
	changed := !sameNode(head, e.Head())
	leaves := make([]expr.Node, e.Len())
	for i, l := range e.Leaves() {
		leaves[i] = ReplaceSlots(l, slots, r)
		changed = changed || !sameNode(leaves[i], l)
	}
	if !changed {
		return e
	}
	return expr.Wrap(head, leaves)
}

func report(r symex.Reporter, c *symex.Condition) {
	tracer().Debugf("%v", c)
	if r != nil {
		r.Report(c)
	}
}
