/*
Package builtin provides the core builtins of symex: the structural symbols
the rewrite engine relies on, and numeric folding for Plus and Times.

Load installs attributes and rules into a symbol table:

    List                   Locked, Protected
    Sequence               spliced into arguments by the engine
    Evaluate[x…]           ⇒ Sequence[x…], forces evaluation of held arguments
    Unevaluated, Hold,
    HoldComplete, HoldForm prevent evaluation of their arguments
    Return[x]              non-local return from a user defined function
    CompoundExpression     evaluates its arguments in order
    Function               pure functions with slots or named parameters
    Plus, Times            Flat, Orderless, OneIdentity, Listable; folds numbers
    Hash[x]                structural hash of x

Builtins are defined as system rules, i.e. they do not count as user
definitions.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builtin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.builtin'.
func tracer() tracing.Trace {
	return tracing.Select("symex.builtin")
}
