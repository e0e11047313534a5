// Package calcucalc provides lightweight single-variable polynomial algebra for Go.
//
// Design goals:
//   - Small, dependency-light kernel with value semantics
//   - Real-valued coefficients and exponents (negative, fractional, irrational)
//   - Deterministic canonical form: like terms combined, zero terms dropped,
//     exponents sorted in descending order
//   - AI/LLM friendly: JSON, LaTeX, and MCP-ready APIs
//
// A Polynomial is a plain list of Monomials. Construction never normalizes;
// only Simplify and the operations built on it (Add, Multiply, Derivative)
// return canonical polynomials. Equal compares term lists exactly, while
// EqualWithinTolerance canonicalizes both sides first.
package calcucalc

import (
	"errors"
	"math"
)

// ============================================================
// Monomial — c·x^e
// ============================================================

// ErrExponentMismatch is returned when two monomials with different powers
// of x are added as like terms.
var ErrExponentMismatch = errors.New("Cannot add monomials with different powers of x.")

// Monomial is the term C·x^E. The zero value is the constant 0.
type Monomial struct {
	C float64 `json:"c"`
	E float64 `json:"e"`
}

// M returns the monomial c·x^e.
func M(c, e float64) Monomial { return Monomial{C: c, E: e} }

// Value evaluates the monomial at x. Domain errors of math.Pow, such as a
// negative base raised to a fractional power, surface as NaN.
func (m Monomial) Value(x float64) float64 { return m.C * math.Pow(x, m.E) }

// Equal reports exact field-wise equality.
func (m Monomial) Equal(other Monomial) bool { return m.C == other.C && m.E == other.E }

// AddMonomialOfSamePower returns the sum of two like terms. The exponents
// must be exactly equal; otherwise ErrExponentMismatch is returned.
func (m Monomial) AddMonomialOfSamePower(other Monomial) (Monomial, error) {
	if m.E != other.E {
		return Monomial{}, ErrExponentMismatch
	}
	return Monomial{C: m.C + other.C, E: m.E}, nil
}

// MustAddMonomialOfSamePower is like AddMonomialOfSamePower but panics with
// ErrExponentMismatch when the exponents differ.
func (m Monomial) MustAddMonomialOfSamePower(other Monomial) Monomial {
	sum, err := m.AddMonomialOfSamePower(other)
	if err != nil {
		panic(err)
	}
	return sum
}

// MultiplyMonomial returns the product of two monomials.
func (m Monomial) MultiplyMonomial(other Monomial) Monomial {
	return Monomial{C: m.C * other.C, E: m.E + other.E}
}

// Derivative applies the power rule. A constant term becomes 0·x^-1, which
// Polynomial canonicalization later drops.
func (m Monomial) Derivative() Monomial {
	return Monomial{C: m.C * m.E, E: m.E - 1}
}

// NthDerivative applies Derivative n times. n <= 0 returns m unchanged.
func (m Monomial) NthDerivative(n int) Monomial {
	result := m
	for i := 0; i < n; i++ {
		result = result.Derivative()
	}
	return result
}
