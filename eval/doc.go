/*
Package eval implements the rewrite engine of symex.

The engine drives expressions to a fixed point. Every step of evaluating a
compound expression h[a1, …, an] proceeds as follows:

    1. evaluate the head h and look up its attributes
    2. evaluate the arguments, unless held by HoldFirst, HoldRest, HoldAll
       or HoldAllComplete; Evaluate[…] forces evaluation of held arguments,
       Unevaluated[…] suppresses it
    3. splice arguments of the form Sequence[…] (unless SequenceHold)
    4. flatten nested calls of h (Flat) and sort the arguments (Orderless)
    5. thread over lists (Listable)
    6. try up-values of the arguments, then down-values (or sub-values, for
       compound heads) of h; the first rule producing a different expression
       wins

Steps are repeated until an expression does not change any more. Expressions
in normal form are stamped with a memoization token. A stamped expression is
evaluated again only if a symbol it references changes its definition.

Limits

The number of steps for a single expression is bounded by an iteration limit,
the nesting depth of evaluations by a recursion limit. Exceeding a limit, or
cancelling the evaluation's context, aborts the whole evaluation with result
$Aborted.

Conditions and Signals

Problems during evaluation are reported as conditions (see package symex) and
collected in a Report, which is returned together with the result. Non-local
exits (Return[…], aborts) are signals, passed outward as a second return value
through all evaluation frames.

An Engine is safe for concurrent use, every call to Evaluate runs a separate
evaluation session.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.eval'.
func tracer() tracing.Trace {
	return tracing.Select("symex.eval")
}
