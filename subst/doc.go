/*
Package subst substitutes symbols and slots in expressions.

ReplaceVars replaces symbols by values, as needed for instantiating the
right hand side of a rule with the bindings of a pattern match. It is aware
of scoping constructs: local variables of Module, Block and With shadow the
bindings, and parameters of Function literals are renamed to fresh names
before substituting, so that substituted values can never be captured by a
parameter.

ReplaceSlots replaces the slots #n (Slot[n]) and ##n (SlotSequence[n]) of a
pure function by its arguments.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package subst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.subst'.
func tracer() tracing.Trace {
	return tracing.Select("symex.subst")
}
