/*
Package expr implements the node model of symex.

Expressions are trees of nodes. A node is either an atom (a symbol, a string
or a number) or a compound expression, consisting of a head and a sequence of
leaves:

    f[a, g[b, 2], "s"]      head f, leaves a, g[b, 2] and "s"

Heads may be compound themselves (f[x][y]). The symbol which is found by
following heads to the left is called the lookup name of an expression, and
is used to find rules for rewriting it.

Expressions are immutable once constructed. Operations which "change" an
expression (WithHead, WithLeaf, Slice, Filter, …) return new expressions
sharing leaves with the original. This is safe as leaves are never modified.

Memoization

Every expression may carry a token, consisting of a timestamp and the set of
symbols referenced anywhere in the expression. A token is attached when the
rewrite engine has brought the expression into normal form. Whenever the
expression is evaluated again, the token is compared against the logical clock
of the symbol table: if none of the referenced symbols has changed since the
timestamp, the expression is already in normal form and evaluation is skipped.

The set of referenced symbols and the positions of splice markers (Sequence
sub-expressions) are computed lazily and cached. Caches are published
atomically, so expressions may be shared between goroutines.

Canonical Ordering

Compare implements a total order on nodes, used for normalizing arguments of
commutative operations. PatternCompare ranks patterns by specificity, more
specific patterns sorting first.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.expr'.
func tracer() tracing.Trace {
	return tracing.Select("symex.expr")
}
