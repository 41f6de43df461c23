package testutil

import "math"

// AlmostEqual reports whether a and b agree to within tol. For
// magnitudes above 1 the comparison is relative, otherwise absolute.
func AlmostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	mag := math.Max(math.Abs(a), math.Abs(b))
	if mag > 1 {
		return diff/mag < tol
	}

	return diff < tol
}

// ULPDistance returns the number of representable float64 values
// between a and b. Returns math.MaxUint64 if either argument is NaN or
// the two differ in sign.
func ULPDistance(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	if a == b {
		return 0
	}
	if math.Signbit(a) != math.Signbit(b) {
		return math.MaxUint64
	}

	ia := math.Float64bits(a)
	ib := math.Float64bits(b)
	if ia > ib {
		return ia - ib
	}

	return ib - ia
}
