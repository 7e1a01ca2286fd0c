package num

import (
	"errors"
	"fmt"
)

// Complex is a complex number with two real components. Both components are
// either exact, or approximate with the same precision.
type Complex struct {
	re, im Number
}

// NewComplex creates re + im·i. If im is the exact integer 0, re is returned.
//
// If one component is exact and the other is approximate, the exact one is
// rounded to the precision of the approximate one. Two approximate components
// are rounded to the smaller of their precisions.
func NewComplex(re, im Number) (Number, error) {
	if re.Kind() == ComplexKind || im.Kind() == ComplexKind {
		return nil, errors.New("components of complex numbers must be real")
	}
	if i, ok := im.(*Integer); ok && i.IsZero() {
		return re, nil
	}
	pr, pi := re.Precision(), im.Precision()
	var err error
	if pr < pi {
		if im, err = RoundTo(im, pr); err != nil {
			return nil, err
		}
	} else if pi < pr {
		if re, err = RoundTo(re, pi); err != nil {
			return nil, err
		}
	}
	return &Complex{re: re, im: im}, nil
}

// Kind is ComplexKind.
func (c *Complex) Kind() Kind { return ComplexKind }

// Precision is the precision of the components.
func (c *Complex) Precision() uint {
	return min(c.re.Precision(), c.im.Precision())
}

// IsZero is true if both components are zero.
func (c *Complex) IsZero() bool { return c.re.IsZero() && c.im.IsZero() }

// HeadName is "Complex".
func (c *Complex) HeadName() string { return "Complex" }

// Real returns the real component.
func (c *Complex) Real() Number { return c.re }

// Imag returns the imaginary component.
func (c *Complex) Imag() Number { return c.im }

func (c *Complex) String() string {
	return fmt.Sprintf("Complex[%s, %s]", c.re, c.im)
}

func roundComplex(c *Complex, bits uint) (Number, error) {
	re, err := RoundTo(c.re, bits)
	if err != nil {
		return nil, err
	}
	im, err := RoundTo(c.im, bits)
	if err != nil {
		return nil, err
	}
	return NewComplex(re, im)
}

// parts splits a number into real and imaginary components.
func parts(n Number) (Number, Number) {
	if c, ok := n.(*Complex); ok {
		return c.re, c.im
	}
	return n, zero
}
