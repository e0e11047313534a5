package calcucalc

import "sort"

// ============================================================
// Canonicalization
// ============================================================

// Simplify returns the canonical form of p: like terms combined, zero
// coefficients removed, exponents in descending order. Simplify is
// idempotent. The empty polynomial is the canonical form of 0.
func (p Polynomial) Simplify() Polynomial {
	return p.CombineLikeTerms().EliminateZeroCoefficients().SortByExponent()
}

// CombineLikeTerms merges terms whose exponents are exactly equal. The
// result keeps the order in which each exponent first appears. Exponents
// that differ only by rounding error (0.1+0.2 versus 0.3) stay separate.
func (p Polynomial) CombineLikeTerms() Polynomial {
	if len(p.terms) == 0 {
		return Polynomial{}
	}
	combined := make([]Monomial, 0, len(p.terms))
	combined = append(combined, p.terms[0])
	for _, m := range p.terms[1:] {
		found := false
		for i := range combined {
			if combined[i].E == m.E {
				combined[i] = combined[i].MustAddMonomialOfSamePower(m)
				found = true
				break
			}
		}
		if !found {
			combined = append(combined, m)
		}
	}
	return Polynomial{terms: combined}
}

// EliminateZeroCoefficients drops terms whose coefficient is exactly 0.
func (p Polynomial) EliminateZeroCoefficients() Polynomial {
	kept := make([]Monomial, 0, len(p.terms))
	for _, m := range p.terms {
		if m.C != 0 {
			kept = append(kept, m)
		}
	}
	return Polynomial{terms: kept}
}

// SortByExponent orders terms by descending exponent. The sort is stable.
func (p Polynomial) SortByExponent() Polynomial {
	sorted := P(p.terms...)
	sort.SliceStable(sorted.terms, func(i, j int) bool {
		return sorted.terms[i].E > sorted.terms[j].E
	})
	return sorted
}
