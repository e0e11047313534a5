package calcucalc

import (
	"encoding/json"
	"fmt"
	"math"
)

// maxToolDerivativeOrder bounds nth_derivative requests arriving over the tool interface.
const maxToolDerivativeOrder = 1024

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// monomialFromParam decodes a {"c": number, "e": number} object. A missing
// field defaults to 0, matching the zero Monomial.
func monomialFromParam(v interface{}) (Monomial, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return Monomial{}, fmt.Errorf("monomial must be an object")
	}
	var m Monomial
	for key, dst := range map[string]*float64{"c": &m.C, "e": &m.E} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		f, ok := raw.(float64)
		if !ok {
			return Monomial{}, fmt.Errorf("monomial field %q must be a number", key)
		}
		*dst = f
	}
	return m, nil
}

func polynomialFromParam(v interface{}) (Polynomial, error) {
	if v == nil {
		return NewPolynomial(), nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return Polynomial{}, fmt.Errorf("polynomial must be an array of monomials")
	}
	terms := make([]Monomial, len(raw))
	for i, r := range raw {
		m, err := monomialFromParam(r)
		if err != nil {
			return Polynomial{}, fmt.Errorf("term %d: %w", i, err)
		}
		terms[i] = m
	}
	return P(terms...), nil
}

func HandleToolCall(req ToolRequest) ToolResponse {
	getPoly := func(key string) (Polynomial, error) {
		v, ok := req.Params[key]
		if !ok {
			return Polynomial{}, fmt.Errorf("missing param: %s", key)
		}
		p, err := polynomialFromParam(v)
		if err != nil {
			return Polynomial{}, fmt.Errorf("param %s: %w", key, err)
		}
		return p, nil
	}
	getMonomial := func(key string) (Monomial, error) {
		v, ok := req.Params[key]
		if !ok {
			return Monomial{}, fmt.Errorf("missing param: %s", key)
		}
		m, err := monomialFromParam(v)
		if err != nil {
			return Monomial{}, fmt.Errorf("param %s: %w", key, err)
		}
		return m, nil
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return f, nil
	}
	getInt := func(key string, limit int) (int, error) {
		f, err := getNumber(key)
		if err != nil {
			return 0, err
		}
		if f < 0 || f != math.Trunc(f) {
			return 0, fmt.Errorf("param %s must be a non-negative integer", key)
		}
		if f > float64(limit) {
			return 0, fmt.Errorf("param %s must be at most %d", key, limit)
		}
		return int(f), nil
	}
	getPair := func() (Polynomial, Polynomial, error) {
		a, err := getPoly("a")
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		b, err := getPoly("b")
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		return a, b, nil
	}
	getInterval := func() (float64, float64, error) {
		start, err := getNumber("start")
		if err != nil {
			return 0, 0, err
		}
		end, err := getNumber("end")
		if err != nil {
			return 0, 0, err
		}
		return start, end, nil
	}
	respond := func(p Polynomial) ToolResponse {
		return ToolResponse{Result: p.Terms(), LaTeX: p.LaTeX(), String: p.String()}
	}
	unary := func(op func(Polynomial) Polynomial) ToolResponse {
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(op(p))
	}

	switch req.Tool {
	case "simplify":
		return unary(Polynomial.Simplify)

	case "combine_like_terms":
		return unary(Polynomial.CombineLikeTerms)

	case "eliminate_zero_coefficients":
		return unary(Polynomial.EliminateZeroCoefficients)

	case "sort_by_exponent":
		return unary(Polynomial.SortByExponent)

	case "derivative":
		return unary(Polynomial.Derivative)

	case "nth_derivative":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		n, err := getInt("n", maxToolDerivativeOrder)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(p.NthDerivative(n))

	case "add":
		a, b, err := getPair()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(a.Add(b))

	case "multiply":
		a, b, err := getPair()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(a.Multiply(b))

	case "value":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		x, err := getNumber("x")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v := p.Value(x)
		resp := ToolResponse{String: formatFloat(v)}
		// NaN and ±Inf have no JSON encoding; they are reported through String only.
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			resp.Result = v
		}
		return resp

	case "trend":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		start, end, err := getInterval()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		t := p.TrendOverInterval(start, end)
		return ToolResponse{Result: string(t), String: string(t)}

	case "concavity":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		start, end, err := getInterval()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		c := p.ConcavityOverInterval(start, end)
		return ToolResponse{Result: string(c), String: string(c)}

	case "equal":
		a, b, err := getPair()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		eq := a.Equal(b)
		return ToolResponse{Result: eq, String: fmt.Sprint(eq)}

	case "equal_within_tolerance":
		a, b, err := getPair()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		eq := a.EqualWithinTolerance(b)
		return ToolResponse{Result: eq, String: fmt.Sprint(eq)}

	case "add_same_power":
		m1, err := getMonomial("m1")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		m2, err := getMonomial("m2")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		sum, err := m1.AddMonomialOfSamePower(m2)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: sum, LaTeX: sum.LaTeX(), String: sum.String()}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	poly := map[string]string{"poly": "array"}
	pair := map[string]string{"a": "array", "b": "array"}
	interval := map[string]string{"poly": "array", "start": "number", "end": "number"}
	tools := []map[string]interface{}{
		ts("simplify", "Combine like terms, drop zero coefficients, sort by descending exponent", []string{"poly"}, poly),
		ts("combine_like_terms", "Merge terms with exactly equal exponents, keeping first-occurrence order", []string{"poly"}, poly),
		ts("eliminate_zero_coefficients", "Drop terms whose coefficient is exactly 0", []string{"poly"}, poly),
		ts("sort_by_exponent", "Stable sort of terms by descending exponent", []string{"poly"}, poly),
		ts("add", "Sum of two polynomials (simplified)", []string{"a", "b"}, pair),
		ts("multiply", "Product of two polynomials (simplified)", []string{"a", "b"}, pair),
		ts("derivative", "First derivative d/dx (simplified)", []string{"poly"}, poly),
		ts("nth_derivative", "nth derivative. Requires n (non-negative integer)", []string{"poly", "n"}, map[string]string{"poly": "array", "n": "integer"}),
		ts("value", "Evaluate the polynomial at x", []string{"poly", "x"}, map[string]string{"poly": "array", "x": "number"}),
		ts("trend", "increasing, decreasing, constant or undefined between start and end", []string{"poly", "start", "end"}, interval),
		ts("concavity", "concave up, concave down or undefined over [start, end]", []string{"poly", "start", "end"}, interval),
		ts("equal", "Exact structural equality of two term lists", []string{"a", "b"}, pair),
		ts("equal_within_tolerance", "Equality after simplification within 1e-10", []string{"a", "b"}, pair),
		ts("add_same_power", "Add two monomials with equal exponents", []string{"m1", "m2"}, map[string]string{"m1": "object", "m2": "object"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
