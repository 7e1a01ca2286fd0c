/*
Package termr implements tools for term rewriting: rules, pattern matching and
the interface between rules and the rewrite engine.

A rule consists of a pattern and a way to produce a replacement for an
expression matching the pattern. Patterns are expressions, where sub-patterns
of the following forms have a special meaning:

    Blank[]                 _        matches any expression
    Blank[h]                _h       matches any expression with head h
    BlankSequence[h?]       __       matches a sequence of ≥ 1 leaves
    BlankNullSequence[h?]   ___      matches a sequence of ≥ 0 leaves
    Pattern[x, p]           x_       matches p and binds the match to x
    Alternatives[p1, p2…]   p1|p2    matches any of the alternatives
    HoldPattern[p]                   matches p
    Verbatim[p]                      matches p literally

Sequences are matched shortest first. A symbol bound more than once must match
the same expression at every occurrence.

RewriteRule replaces a match by instantiating a template with the bindings.
BuiltinRule calls a Go function, which receives the bindings and a Context for
evaluating sub-expressions, reporting conditions and raising signals.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.termr'.
func tracer() tracing.Trace {
	return tracing.Select("symex.termr")
}
