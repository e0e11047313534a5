package calcucalc

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ============================================================
// Polynomial — sum of monomials
// ============================================================

// Polynomial is an ordered list of monomials read as their sum. No invariant
// is enforced at construction: duplicate exponents, zero coefficients and
// arbitrary order are all allowed until Simplify is applied.
type Polynomial struct{ terms []Monomial }

// NewPolynomial returns the empty polynomial, which represents 0.
func NewPolynomial() Polynomial { return Polynomial{} }

// P returns a polynomial holding a copy of terms in the given order.
func P(terms ...Monomial) Polynomial {
	if len(terms) == 0 {
		return Polynomial{}
	}
	return Polynomial{terms: append([]Monomial(nil), terms...)}
}

// Terms returns a copy of the term list.
func (p Polynomial) Terms() []Monomial { return append([]Monomial(nil), p.terms...) }

// Len returns the number of stored terms.
func (p Polynomial) Len() int { return len(p.terms) }

// Equal reports structural equality: same length, same terms in the same
// order, compared exactly. Callers wanting mathematical equality should
// simplify both sides first or use EqualWithinTolerance.
func (p Polynomial) Equal(other Polynomial) bool {
	return cmp.Equal(p.terms, other.terms, cmpopts.EquateEmpty())
}

// EqualWithinTolerance simplifies both polynomials and compares them term by
// term, allowing coefficients and exponents to differ by at most Tolerance.
func (p Polynomial) EqualWithinTolerance(other Polynomial) bool {
	a, b := p.Simplify(), other.Simplify()
	if len(a.terms) != len(b.terms) {
		return false
	}
	for i := range a.terms {
		if !EqualWithinTolerance(a.terms[i].C, b.terms[i].C) ||
			!EqualWithinTolerance(a.terms[i].E, b.terms[i].E) {
			return false
		}
	}
	return true
}

// Value evaluates the polynomial at x. Works on any term list, canonical or not.
func (p Polynomial) Value(x float64) float64 {
	sum := 0.0
	for _, m := range p.terms {
		sum += m.Value(x)
	}
	return sum
}

// Add returns the simplified sum of p and other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	terms := make([]Monomial, 0, len(p.terms)+len(other.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, other.terms...)
	return Polynomial{terms: terms}.Simplify()
}

// Multiply returns the simplified product of p and other.
func (p Polynomial) Multiply(other Polynomial) Polynomial {
	terms := make([]Monomial, 0, len(p.terms)*len(other.terms))
	for _, a := range p.terms {
		for _, b := range other.terms {
			terms = append(terms, a.MultiplyMonomial(b))
		}
	}
	return Polynomial{terms: terms}.Simplify()
}

// Derivative differentiates every term and simplifies the result.
func (p Polynomial) Derivative() Polynomial {
	terms := make([]Monomial, len(p.terms))
	for i, m := range p.terms {
		terms[i] = m.Derivative()
	}
	return Polynomial{terms: terms}.Simplify()
}

// NthDerivative applies Derivative n times. n <= 0 returns an unchanged copy.
func (p Polynomial) NthDerivative(n int) Polynomial {
	result := P(p.terms...)
	for i := 0; i < n; i++ {
		result = result.Derivative()
	}
	return result
}
