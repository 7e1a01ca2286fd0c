/*
Package num implements the numeric tower of symex.

Numbers are either exact or approximate. Exact numbers are integers of
arbitrary size and rationals in lowest terms. Approximate numbers are
machine reals (IEEE 754 doubles) and reals of arbitrary precision, where
precision is always given in bits. Complex numbers are built from two real
components.

Normalization happens at construction time:

    Rational(6, 3)        ⇒  Integer(2)
    Complex(r, Integer 0) ⇒  r
    Complex(1.5, 1/3)     ⇒  Complex(1.5, 0.333…)   exact part rounded to machine precision

Precision never silently increases. Whenever exact and approximate numbers
are combined, the result carries the minimum precision of the operands.
Two approximate numbers compare equal if they agree up to the last 7 bits
of the smaller precision.

Numbers are immutable. All operations return new values.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package num

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.num'.
func tracer() tracing.Trace {
	return tracing.Select("symex.num")
}
