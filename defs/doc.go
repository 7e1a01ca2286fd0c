/*
Package defs provides the symbol table of symex.

For every symbol, the table stores attributes and four kinds of rules:

    own-values    x = 5                 rules for the symbol itself
    down-values   f[x_] := …            rules for expressions with head f
    sub-values    f[x_][y_] := …        rules for expressions with compound head f[…]
    up-values     g[f[x_]] ^:= …        rules attached to f, for expressions containing f[…]

Rules of a kind are kept ordered by specificity of their patterns, so the most
specific rule is tried first (see expr.PatternCompare). A rule with the same
pattern as an existing one replaces it.

The table has a logical clock, which advances with every change of a
definition. Every definition remembers the time of its last change. This lets
the rewrite engine detect whether an expression, which has been in normal form
at some point in time, may have become stale.

Definitions are safe for concurrent use.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package defs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.defs'.
func tracer() tracing.Trace {
	return tracing.Select("symex.defs")
}
