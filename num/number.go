package num

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"math/big"
)

// Kind is the category of a number.
type Kind int8

// Kinds of numbers in the tower, ordered from exact to approximate.
const (
	IntegerKind Kind = iota
	RationalKind
	MachineRealKind
	PrecisionRealKind
	ComplexKind
)

// MachinePrecision is the precision of machine reals, in bits.
const MachinePrecision uint = 53

// Exact is the precision reported by exact numbers. It compares greater than
// any finite precision, so the minimum of precisions works as expected.
const Exact uint = ^uint(0)

// ErrDivisionByZero is returned when constructing a rational with denominator 0.
var ErrDivisionByZero = errors.New("rational with zero denominator")

// Number is the interface all members of the numeric tower implement.
type Number interface {
	Kind() Kind
	Precision() uint // in bits, Exact for integers and rationals
	IsZero() bool
	HeadName() string // name of the head symbol of an atom holding this number
	String() string
}

// IsExact is true for integers, rationals and complex numbers with exact parts.
func IsExact(n Number) bool {
	return n.Precision() == Exact
}

// IsMachine is true for machine reals and complex numbers with machine parts.
func IsMachine(n Number) bool {
	switch x := n.(type) {
	case MachineReal:
		return true
	case *Complex:
		return IsMachine(x.re)
	}
	return false
}

// --- Integers --------------------------------------------------------------

// Integer is an exact integer of arbitrary size.
type Integer struct {
	v *big.Int
}

var (
	zero = NewInteger(0)
	one  = NewInteger(1)
)

// NewInteger creates an integer from an int64.
func NewInteger(i int64) *Integer {
	return &Integer{v: big.NewInt(i)}
}

// IntegerFromBig creates an integer from a big.Int. The argument is copied.
func IntegerFromBig(b *big.Int) *Integer {
	return &Integer{v: new(big.Int).Set(b)}
}

// Zero returns the exact integer 0.
func Zero() *Integer { return zero }

// One returns the exact integer 1.
func One() *Integer { return one }

// Kind is IntegerKind.
func (i *Integer) Kind() Kind { return IntegerKind }

// Precision is Exact.
func (i *Integer) Precision() uint { return Exact }

// IsZero is true for 0.
func (i *Integer) IsZero() bool { return i.v.Sign() == 0 }

// HeadName is "Integer".
func (i *Integer) HeadName() string { return "Integer" }

func (i *Integer) String() string { return i.v.String() }

// Big returns a copy of the value.
func (i *Integer) Big() *big.Int { return new(big.Int).Set(i.v) }

// Int64 returns the value as an int64, if it is representable.
func (i *Integer) Int64() (int64, bool) {
	if !i.v.IsInt64() {
		return 0, false
	}
	return i.v.Int64(), true
}

// Sign returns -1, 0 or +1.
func (i *Integer) Sign() int { return i.v.Sign() }

// --- Rationals -------------------------------------------------------------

// Rational is an exact fraction in lowest terms. A rational never has
// denominator 1, those are collapsed to integers.
type Rational struct {
	v *big.Rat
}

// NewRational creates n/d. The result is an *Integer if d divides n.
func NewRational(n, d int64) (Number, error) {
	if d == 0 {
		return nil, ErrDivisionByZero
	}
	return RationalFromBig(big.NewRat(n, d)), nil
}

// RationalFromBig creates a rational from a big.Rat, which is copied.
// The result is an *Integer if the denominator is 1.
func RationalFromBig(r *big.Rat) Number {
	if r.IsInt() {
		return IntegerFromBig(r.Num())
	}
	return &Rational{v: new(big.Rat).Set(r)}
}

// Kind is RationalKind.
func (r *Rational) Kind() Kind { return RationalKind }

// Precision is Exact.
func (r *Rational) Precision() uint { return Exact }

// IsZero is always false, as zero is an integer.
func (r *Rational) IsZero() bool { return false }

// HeadName is "Rational".
func (r *Rational) HeadName() string { return "Rational" }

func (r *Rational) String() string { return r.v.String() }

// Big returns a copy of the value.
func (r *Rational) Big() *big.Rat { return new(big.Rat).Set(r.v) }

// Numerator returns the numerator as an integer.
func (r *Rational) Numerator() *Integer { return IntegerFromBig(r.v.Num()) }

// Denominator returns the (positive) denominator as an integer.
func (r *Rational) Denominator() *Integer { return IntegerFromBig(r.v.Denom()) }
