package calcucalc

import "golang.org/x/exp/constraints"

// Tolerance is the absolute tolerance used by EqualWithinTolerance.
const Tolerance = 1e-10

// EqualWithinTolerance reports whether |a-b| <= Tolerance.
func EqualWithinTolerance[T constraints.Float](a, b T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= T(Tolerance)
}
