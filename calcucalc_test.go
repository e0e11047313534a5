package calcucalc_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/calcucalc"
)

var (
	M = calcucalc.M
	P = calcucalc.P
)

// requirePolyEqual fails with a term-level diff when got is not structurally equal to want.
func requirePolyEqual(t *testing.T, want, got calcucalc.Polynomial) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("polynomial mismatch (-want +got):\n%s",
			cmp.Diff(want.Terms(), got.Terms(), cmpopts.EquateEmpty()))
	}
}

// ============================================================
// Monomial tests
// ============================================================

func TestMonomial_Identity(t *testing.T) {
	assert.True(t, M(1, 1).Equal(M(1, 1)))
	assert.False(t, M(1, 1).Equal(M(0, 1)))
	assert.False(t, M(1, 1).Equal(M(1, 0)))
	assert.Equal(t, M(1, 1), calcucalc.Monomial{C: 1, E: 1})
}

func TestMonomial_ZeroValueIsConstantZero(t *testing.T) {
	var m calcucalc.Monomial
	assert.Equal(t, M(0, 0), m)
	assert.Equal(t, 0.0, m.Value(17))
}

func TestMonomial_Fields(t *testing.T) {
	m := M(-34.2, 389651.6516)
	assert.Equal(t, -34.2, m.C)
	assert.Equal(t, 389651.6516, m.E)
}

func TestMonomial_Value(t *testing.T) {
	cases := []struct {
		m    calcucalc.Monomial
		x    float64
		want float64
	}{
		{M(1, 1), 2, 2},
		{M(1, 1), 5, 5},
		{M(2, 2), 2, 8},
		{M(2, 2), 3, 18},
		{M(2, 2), 4, 32},
		{M(2, 2), 5, 50},
		{M(0.5, -1), 2, 0.25},
		{M(0.5, -1), 3, 0.16666666666666666},
		{M(0.5, -1), 4, 0.125},
		{M(0.5, -1), 5, 0.1},
		{M(0.5, -1), 0.5, 1},
		{M(0.5, -1), 0.25, 2},
		{M(0.5, -1), 0.03125, 16},
		{M(0.5, -1), 0.015625, 32},
		{M(0.5, -1), -1, -0.5},
		{M(0.5, -1), -2, -0.25},
		{M(0.5, -1), -3, -0.16666666666666666},
		{M(0.5, -1), -4, -0.125},
		{M(math.Pi, 0), 123, math.Pi},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.m.Value(tc.x), "%v at x=%v", tc.m, tc.x)
	}
}

func TestMonomial_Value_DomainErrorIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(M(1, 0.5).Value(-4)))
}

func TestMonomial_AddMonomialOfSamePower(t *testing.T) {
	cases := []struct{ a, b, want calcucalc.Monomial }{
		{M(1, 1), M(2, 1), M(3, 1)},
		{M(45, 250), M(57, 250), M(102, 250)},
		{M(1, -11), M(2, -11), M(3, -11)},
		{M(1, 0), M(2, 0), M(3, 0)},
		{M(2, 0.5), M(-2, 0.5), M(0, 0.5)},
	}
	for _, tc := range cases {
		got, err := tc.a.AddMonomialOfSamePower(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestMonomial_AddMonomialOfSamePower_Mismatch(t *testing.T) {
	pairs := [][2]calcucalc.Monomial{
		{M(1, 1), M(2, 2)},
		{M(1, 0), M(2, 1)},
		{M(1, -1), M(2, 0)},
		{M(1, -1), M(2, 1)},
		{M(45, 250), M(45, 251)},
		{M(241346513.3452231, -3954398000.8481), M(1, -3954398000.8482)},
	}
	for _, pair := range pairs {
		_, err := pair[0].AddMonomialOfSamePower(pair[1])
		require.ErrorIs(t, err, calcucalc.ErrExponentMismatch)
		assert.EqualError(t, err, "Cannot add monomials with different powers of x.")
	}
}

func TestMonomial_MustAddMonomialOfSamePower_Panics(t *testing.T) {
	assert.PanicsWithError(t, "Cannot add monomials with different powers of x.", func() {
		M(1, 1).MustAddMonomialOfSamePower(M(2, 2))
	})
	assert.NotPanics(t, func() {
		assert.Equal(t, M(3, 4), M(1, 4).MustAddMonomialOfSamePower(M(2, 4)))
	})
}

func TestMonomial_MultiplyMonomial(t *testing.T) {
	cases := []struct{ a, b, want calcucalc.Monomial }{
		{M(2, 1), M(3, 2), M(6, 3)},
		{M(45, 250), M(57, 250), M(2565, 500)},
		{M(1, -11), M(2, -11), M(2, -22)},
		{M(1, 0), M(2, 0), M(2, 0)},
		{M(1, 0), M(0, 500), M(0, 500)},
		{M(0, 0), M(0, 0), M(0, 0)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.a.MultiplyMonomial(tc.b))
	}
}

func TestMonomial_Derivative(t *testing.T) {
	assert.Equal(t, M(6, 2), M(2, 3).Derivative())
	assert.Equal(t, M(-6, -2.5), M(4, -1.5).Derivative())
	// A constant keeps a zero-coefficient term rather than vanishing.
	assert.Equal(t, M(0, -1), M(3, 0).Derivative())
}

func TestMonomial_NthDerivative(t *testing.T) {
	assert.Equal(t, M(1, 4), M(1, 4).NthDerivative(0))
	assert.Equal(t, M(1, 4), M(1, 4).NthDerivative(-3))
	assert.Equal(t, M(12, 2), M(1, 4).NthDerivative(2))
	assert.Equal(t, M(24, 0), M(1, 4).NthDerivative(4))
	assert.Equal(t, M(0, -1), M(1, 4).NthDerivative(5))
}

// ============================================================
// Tolerance helper tests
// ============================================================

func TestEqualWithinTolerance(t *testing.T) {
	a, b := 0.1, 0.2
	assert.True(t, calcucalc.EqualWithinTolerance(a+b, 0.3))
	assert.True(t, calcucalc.EqualWithinTolerance(1.0, 1.00000000001))
	assert.False(t, calcucalc.EqualWithinTolerance(1.0, 1.000000001))
	assert.True(t, calcucalc.EqualWithinTolerance(float32(2), float32(2)))
	assert.False(t, calcucalc.EqualWithinTolerance(math.NaN(), math.NaN()))
}
