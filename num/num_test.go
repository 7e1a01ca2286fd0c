package num

import (
	"math"
	"math/big"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	n, err := NewRational(6, 3)
	require.NoError(t, err)
	assert.Equal(t, IntegerKind, n.Kind())
	assert.Equal(t, "2", n.String())
	n, err = NewRational(2, -4)
	require.NoError(t, err)
	assert.Equal(t, RationalKind, n.Kind())
	assert.Equal(t, "-1/2", n.String())
	_, err = NewRational(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestComplexCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	c, err := NewComplex(NewInteger(3), NewInteger(0))
	require.NoError(t, err)
	assert.True(t, Same(c, NewInteger(3)))
	m, _ := NewMachineReal(0)
	c, err = NewComplex(NewInteger(3), m)
	require.NoError(t, err)
	if c.Kind() != ComplexKind {
		t.Errorf("inexact zero imaginary part must not collapse, have %s", c)
	}
}

func TestComplexPromotion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	third, _ := NewRational(1, 3)
	m, _ := NewMachineReal(1.5)
	c, err := NewComplex(m, third)
	require.NoError(t, err)
	cc := c.(*Complex)
	assert.Equal(t, MachineRealKind, cc.Imag().Kind())
	assert.Equal(t, MachinePrecision, c.Precision())
	p, _ := ParsePrecisionReal("2.5", 100)
	c, err = NewComplex(p, NewInteger(1))
	require.NoError(t, err)
	assert.Equal(t, uint(100), c.Precision())
}

func TestMachineOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	_, err := NewMachineReal(math.Inf(1))
	assert.Equal(t, symex.NumericOverflow, symex.KindOf(err))
	_, err = NewMachineReal(math.NaN())
	assert.Equal(t, symex.NumericOverflow, symex.KindOf(err))
	huge := IntegerFromBig(new(big.Int).Lsh(big.NewInt(1), 2000))
	_, err = Round(huge)
	assert.Equal(t, symex.NumericOverflow, symex.KindOf(err))
	big1, _ := NewMachineReal(math.MaxFloat64)
	_, err = Multiply(big1, big1)
	assert.Equal(t, symex.NumericOverflow, symex.KindOf(err))
}

func TestRoundPrecision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	third, _ := NewRational(1, 3)
	r, err := RoundTo(third, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), r.Precision())
	r, err = RoundTo(r, 100) // must not increase
	require.NoError(t, err)
	assert.Equal(t, uint(10), r.Precision())
	r, err = Round(third)
	require.NoError(t, err)
	assert.Equal(t, MachineRealKind, r.Kind())
	m, _ := NewMachineReal(0.25)
	r, _ = RoundTo(m, 200)
	assert.Equal(t, MachinePrecision, r.Precision())
	assert.Equal(t, Exact, third.Precision())
}

func TestArithmeticCoercion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	half, _ := NewRational(1, 2)
	s, err := Add(half, half)
	require.NoError(t, err)
	assert.True(t, Same(s, NewInteger(1)))
	p, _ := ParsePrecisionReal("1.25", 80)
	s, err = Add(p, half)
	require.NoError(t, err)
	assert.Equal(t, uint(80), s.Precision())
	m, _ := NewMachineReal(2)
	s, err = Multiply(p, m)
	require.NoError(t, err)
	assert.Equal(t, MachineRealKind, s.Kind())
	assert.InDelta(t, 2.5, s.(MachineReal).Float64(), 1e-15)
	i, _ := NewComplex(NewInteger(0), NewInteger(1))
	s, err = Multiply(i, i)
	require.NoError(t, err)
	assert.True(t, Same(s, NewInteger(-1)), "i·i should be -1, is %s", s)
}

func TestEqualTolerance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	a, _ := NewMachineReal(1.0)
	b, _ := NewMachineReal(1.0 + 1e-15)
	assert.True(t, Equal(a, b))
	assert.False(t, Same(a, b))
	c, _ := NewMachineReal(1.001)
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(a, NewInteger(1)))
	p, _ := ParsePrecisionReal("1.0001", 10) // ~3 digits
	assert.True(t, Equal(p, a))
}

func TestCompareOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.num")
	defer teardown()
	//
	half, _ := NewRational(1, 2)
	m, _ := NewMachineReal(0.75)
	c, _ := NewComplex(NewInteger(1), NewInteger(-1))
	ns := []Number{NewInteger(-3), half, m, c, NewInteger(1), NewInteger(2)}
	for i := 0; i < len(ns)-1; i++ {
		if Compare(ns[i], ns[i+1]) >= 0 {
			t.Errorf("expected %s < %s", ns[i], ns[i+1])
		}
		if Compare(ns[i+1], ns[i]) <= 0 {
			t.Errorf("expected %s > %s", ns[i+1], ns[i])
		}
	}
}
