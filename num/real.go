package num

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/npillmayer/symex"
)

// --- Machine reals ---------------------------------------------------------

// MachineReal is an approximate real with machine precision.
type MachineReal struct {
	v float64
}

// NewMachineReal creates a machine real. Non-finite values (±Inf, NaN) are
// rejected with a NumericOverflow condition.
func NewMachineReal(f float64) (MachineReal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return MachineReal{}, symex.Errorf(symex.NumericOverflow, "General",
			"machine number overflow: %v", f)
	}
	return MachineReal{v: f}, nil
}

// Kind is MachineRealKind.
func (m MachineReal) Kind() Kind { return MachineRealKind }

// Precision is MachinePrecision.
func (m MachineReal) Precision() uint { return MachinePrecision }

// IsZero is true for ±0.0.
func (m MachineReal) IsZero() bool { return m.v == 0 }

// HeadName is "Real".
func (m MachineReal) HeadName() string { return "Real" }

// Float64 returns the value.
func (m MachineReal) Float64() float64 { return m.v }

func (m MachineReal) String() string {
	s := strconv.FormatFloat(m.v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += "."
	}
	return s
}

// --- Arbitrary precision reals ---------------------------------------------

// PrecisionReal is an approximate real with an explicit precision in bits.
type PrecisionReal struct {
	v *big.Float
}

// NewPrecisionReal creates a real from a big.Float, which is copied. The
// precision of f is kept. Infinite values are rejected with a NumericOverflow
// condition.
func NewPrecisionReal(f *big.Float) (*PrecisionReal, error) {
	if f.IsInf() {
		return nil, symex.Errorf(symex.NumericOverflow, "General",
			"number overflow: %v", f)
	}
	prec := f.Prec()
	if prec == 0 {
		prec = MachinePrecision
	}
	return &PrecisionReal{v: new(big.Float).SetPrec(prec).Set(f)}, nil
}

// ParsePrecisionReal reads a decimal number with a given precision in bits.
func ParsePrecisionReal(s string, prec uint) (*PrecisionReal, error) {
	if prec == 0 {
		prec = 1
	}
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, err
	}
	return NewPrecisionReal(f)
}

// Kind is PrecisionRealKind.
func (p *PrecisionReal) Kind() Kind { return PrecisionRealKind }

// Precision is the number of mantissa bits.
func (p *PrecisionReal) Precision() uint { return p.v.Prec() }

// IsZero is true for ±0.
func (p *PrecisionReal) IsZero() bool { return p.v.Sign() == 0 }

// HeadName is "Real".
func (p *PrecisionReal) HeadName() string { return "Real" }

// Big returns a copy of the value, with the same precision.
func (p *PrecisionReal) Big() *big.Float {
	return new(big.Float).SetPrec(p.v.Prec()).Set(p.v)
}

func (p *PrecisionReal) String() string {
	return p.v.Text('g', decimalDigits(p.v.Prec()))
}

// decimalDigits is the number of decimal digits bits of mantissa can represent.
func decimalDigits(bits uint) int {
	d := int(float64(bits) * math.Log10(2))
	if d < 1 {
		d = 1
	}
	return d
}

// --- Conversions -----------------------------------------------------------

// toRat converts a real number exactly to a rational.
func toRat(n Number) *big.Rat {
	switch x := n.(type) {
	case *Integer:
		return new(big.Rat).SetInt(x.v)
	case *Rational:
		return x.v
	case MachineReal:
		return new(big.Rat).SetFloat64(x.v)
	case *PrecisionReal:
		r, _ := x.v.Rat(nil)
		return r
	}
	panic("toRat called for non-real number")
}

// toFloat converts a real number to a big.Float of given precision.
func toFloat(n Number, prec uint) *big.Float {
	f := new(big.Float).SetPrec(prec)
	switch x := n.(type) {
	case *Integer:
		return f.SetInt(x.v)
	case *Rational:
		return f.SetRat(x.v)
	case MachineReal:
		return f.SetFloat64(x.v)
	case *PrecisionReal:
		return f.Set(x.v)
	}
	panic("toFloat called for non-real number")
}

// Float64 returns the value of a real number as a float64. It is false for
// complex numbers and for values outside the range of float64.
func Float64(n Number) (float64, bool) {
	switch x := n.(type) {
	case MachineReal:
		return x.v, true
	case *Complex:
		return 0, false
	}
	f, _ := toFloat(n, MachinePrecision).Float64()
	return f, !math.IsInf(f, 0)
}

// Round converts a number to machine precision. Machine reals are returned
// unchanged. Values outside of the range of machine reals fail with a
// NumericOverflow condition.
func Round(n Number) (Number, error) {
	switch x := n.(type) {
	case MachineReal:
		return x, nil
	case *Complex:
		return roundComplex(x, MachinePrecision)
	}
	f, _ := toFloat(n, MachinePrecision).Float64()
	return NewMachineReal(f)
}

// RoundTo converts a number to an approximate number with a precision of
// bits. The precision of approximate numbers is never increased: the result
// carries the minimum of bits and the precision of n. Requesting exactly
// MachinePrecision yields a machine real.
func RoundTo(n Number, bits uint) (Number, error) {
	if bits == 0 {
		bits = 1
	}
	switch x := n.(type) {
	case *Integer, *Rational:
		if bits == MachinePrecision {
			return Round(n)
		}
		return NewPrecisionReal(toFloat(n, bits))
	case MachineReal:
		if bits >= MachinePrecision {
			return x, nil
		}
		return NewPrecisionReal(toFloat(n, bits))
	case *PrecisionReal:
		p := x.v.Prec()
		if bits >= p {
			return x, nil
		}
		if bits == MachinePrecision {
			return Round(n)
		}
		return NewPrecisionReal(toFloat(n, bits))
	case *Complex:
		return roundComplex(x, bits)
	}
	tracer().Errorf("cannot round number of kind %d", n.Kind())
	return n, nil
}
