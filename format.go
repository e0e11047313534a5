package calcucalc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ============================================================
// String and LaTeX rendering
// ============================================================

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func (m Monomial) String() string {
	if m.E == 0 {
		return formatFloat(m.C)
	}
	x := "x"
	if m.E != 1 {
		x = "x^" + formatFloat(m.E)
	}
	switch m.C {
	case 1:
		return x
	case -1:
		return "-" + x
	}
	return formatFloat(m.C) + "*" + x
}

func (m Monomial) LaTeX() string {
	if m.E == 0 {
		return formatFloat(m.C)
	}
	x := "x"
	if m.E != 1 {
		x = "x^{" + formatFloat(m.E) + "}"
	}
	switch m.C {
	case 1:
		return x
	case -1:
		return "-" + x
	}
	return formatFloat(m.C) + x
}

// String renders the terms in stored order, joined with " + ".
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, m := range p.terms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " + ")
}

// LaTeX renders the terms in stored order, folding negative coefficients
// into a minus sign.
func (p Polynomial) LaTeX() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, m := range p.terms {
		if i == 0 {
			sb.WriteString(m.LaTeX())
			continue
		}
		if m.C < 0 {
			sb.WriteString(" - ")
			sb.WriteString(Monomial{C: -m.C, E: m.E}.LaTeX())
		} else {
			sb.WriteString(" + ")
			sb.WriteString(m.LaTeX())
		}
	}
	return sb.String()
}

// ============================================================
// JSON Serialization
// ============================================================

// MarshalJSON encodes the polynomial as an array of {"c","e"} objects.
func (p Polynomial) MarshalJSON() ([]byte, error) {
	if p.terms == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.terms)
}

// UnmarshalJSON decodes an array of {"c","e"} objects. null decodes to the
// empty polynomial.
func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var terms []Monomial
	if err := json.Unmarshal(data, &terms); err != nil {
		return fmt.Errorf("polynomial: %w", err)
	}
	*p = P(terms...)
	return nil
}

func ToJSON(p Polynomial) (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

func FromJSON(data []byte) (Polynomial, error) {
	var p Polynomial
	if err := json.Unmarshal(data, &p); err != nil {
		return Polynomial{}, err
	}
	return p, nil
}
