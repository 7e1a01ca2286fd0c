package num

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math/big"
)

// --- Comparison ------------------------------------------------------------

// Compare orders numbers by real component first, then by imaginary component.
// Values are compared exactly, regardless of their kind.
func Compare(a, b Number) int {
	ar, ai := parts(a)
	br, bi := parts(b)
	if c := toRat(ar).Cmp(toRat(br)); c != 0 {
		return c
	}
	return toRat(ai).Cmp(toRat(bi))
}

// Same is structural identity of numbers. Exact numbers are the same if they
// are of the same kind and value. Approximate reals are the same if they are
// equal in value.
func Same(a, b Number) bool {
	switch x := a.(type) {
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.v.Cmp(y.v) == 0
	case *Rational:
		y, ok := b.(*Rational)
		return ok && x.v.Cmp(y.v) == 0
	case MachineReal, *PrecisionReal:
		switch b.(type) {
		case MachineReal, *PrecisionReal:
			return toRat(a).Cmp(toRat(b)) == 0
		}
		return false
	case *Complex:
		y, ok := b.(*Complex)
		return ok && Same(x.re, y.re) && Same(x.im, y.im)
	}
	return false
}

// Equal is numeric equality. Exact numbers compare exactly. Two approximate
// reals are equal if they agree up to the last 7 bits of the smaller of both
// precisions. Comparison of exact and approximate numbers falls back to the
// canonical order.
func Equal(a, b Number) bool {
	ar, ai := parts(a)
	br, bi := parts(b)
	return realEqual(ar, br) && realEqual(ai, bi)
}

func realEqual(a, b Number) bool {
	if IsExact(a) || IsExact(b) {
		return toRat(a).Cmp(toRat(b)) == 0
	}
	p := min(a.Precision(), b.Precision())
	wp := max(a.Precision(), b.Precision()) + 16
	x, y := toFloat(a, wp), toFloat(b, wp)
	diff := new(big.Float).SetPrec(wp).Sub(x, y)
	diff.Abs(diff)
	if diff.Sign() == 0 {
		return true
	}
	x.Abs(x)
	y.Abs(y)
	m := x
	if y.Cmp(x) > 0 {
		m = y
	}
	// tolerance is m · 2^-(p-7)
	var exp int
	if p > 7 {
		exp = -int(p - 7)
	}
	tol := new(big.Float).SetPrec(wp).SetMantExp(m, exp)
	return diff.Cmp(tol) <= 0
}

// --- Arithmetic ------------------------------------------------------------

// Add returns a+b. Adding exact numbers gives exact results. Otherwise the
// result has the minimum precision of the operands.
func Add(a, b Number) (Number, error) {
	if a.Kind() == ComplexKind || b.Kind() == ComplexKind {
		ar, ai := parts(a)
		br, bi := parts(b)
		re, err := Add(ar, br)
		if err != nil {
			return nil, err
		}
		im, err := Add(ai, bi)
		if err != nil {
			return nil, err
		}
		return NewComplex(re, im)
	}
	return realOp(a, b, (*big.Rat).Add, (*big.Float).Add, func(x, y float64) float64 {
		return x + y
	})
}

// Multiply returns a·b, with the same coercion rules as Add.
func Multiply(a, b Number) (Number, error) {
	if a.Kind() == ComplexKind || b.Kind() == ComplexKind {
		ar, ai := parts(a)
		br, bi := parts(b)
		rr, err := Multiply(ar, br)
		if err != nil {
			return nil, err
		}
		ii, err := Multiply(ai, bi)
		if err != nil {
			return nil, err
		}
		ri, err := Multiply(ar, bi)
		if err != nil {
			return nil, err
		}
		ir, err := Multiply(ai, br)
		if err != nil {
			return nil, err
		}
		re, err := Add(rr, Neg(ii))
		if err != nil {
			return nil, err
		}
		im, err := Add(ri, ir)
		if err != nil {
			return nil, err
		}
		return NewComplex(re, im)
	}
	return realOp(a, b, (*big.Rat).Mul, (*big.Float).Mul, func(x, y float64) float64 {
		return x * y
	})
}

// Neg returns -n.
func Neg(n Number) Number {
	switch x := n.(type) {
	case *Integer:
		return &Integer{v: new(big.Int).Neg(x.v)}
	case *Rational:
		return &Rational{v: new(big.Rat).Neg(x.v)}
	case MachineReal:
		return MachineReal{v: -x.v}
	case *PrecisionReal:
		return &PrecisionReal{v: new(big.Float).SetPrec(x.v.Prec()).Neg(x.v)}
	case *Complex:
		return &Complex{re: Neg(x.re), im: Neg(x.im)}
	}
	return n
}

type ratOp func(z, x, y *big.Rat) *big.Rat
type floatOp func(z, x, y *big.Float) *big.Float

func realOp(a, b Number, rop ratOp, fop floatOp, mop func(x, y float64) float64) (Number, error) {
	p := min(a.Precision(), b.Precision())
	switch {
	case p == Exact:
		return RationalFromBig(rop(new(big.Rat), toRat(a), toRat(b))), nil
	case p == MachinePrecision || IsMachine(a) || IsMachine(b):
		x, _ := Float64(a)
		y, _ := Float64(b)
		return NewMachineReal(mop(x, y))
	}
	z := fop(new(big.Float).SetPrec(p), toFloat(a, p), toFloat(b, p))
	return NewPrecisionReal(z)
}
