package calcucalc

import (
	"math"

	"github.com/montanaflynn/stats"
)

// ============================================================
// Interval analysis
// ============================================================

// Trend classifies how a polynomial's value moves between two points.
type Trend string

const (
	Increasing     Trend = "increasing"
	Decreasing     Trend = "decreasing"
	Constant       Trend = "constant"
	TrendUndefined Trend = "undefined"
)

// Concavity classifies the sign of a polynomial's second derivative over an interval.
type Concavity string

const (
	ConcaveUp          Concavity = "concave up"
	ConcaveDown        Concavity = "concave down"
	ConcavityUndefined Concavity = "undefined"
)

// ConcavitySamples is the number of subintervals ConcavityOverInterval
// splits [start, end] into when sampling the second derivative.
const ConcavitySamples = 64

// TrendOverInterval compares the values at the two endpoints. Argument order
// does not matter. TrendUndefined is only returned when an endpoint value is
// NaN.
func (p Polynomial) TrendOverInterval(start, end float64) Trend {
	if start > end {
		start, end = end, start
	}
	a, b := p.Value(start), p.Value(end)
	switch {
	case a < b:
		return Increasing
	case a > b:
		return Decreasing
	case a == b:
		return Constant
	}
	return TrendUndefined
}

// ConcavityOverInterval samples the second derivative over [start, end].
// A strictly positive second derivative at every sample is concave up and a
// strictly negative one concave down. A sign change, a zero sample or a NaN
// sample yields ConcavityUndefined.
func (p Polynomial) ConcavityOverInterval(start, end float64) Concavity {
	if start > end {
		start, end = end, start
	}
	samples := secondDerivativeSamples(p.NthDerivative(2), start, end)

	lo, err := stats.Min(samples)
	if err != nil {
		return ConcavityUndefined
	}
	hi, err := stats.Max(samples)
	if err != nil {
		return ConcavityUndefined
	}
	switch {
	case lo > 0:
		return ConcaveUp
	case hi < 0:
		return ConcaveDown
	}
	return ConcavityUndefined
}

// secondDerivativeSamples evaluates d2 at ConcavitySamples+1 evenly spaced
// points including both endpoints. It returns nil if any sample is NaN.
func secondDerivativeSamples(d2 Polynomial, start, end float64) []float64 {
	n := ConcavitySamples
	if start == end {
		n = 0
	}
	step := (end - start) / float64(ConcavitySamples)
	samples := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		x := start + float64(i)*step
		if i == n {
			x = end
		}
		v := d2.Value(x)
		if math.IsNaN(v) {
			return nil
		}
		samples = append(samples, v)
	}
	return samples
}
