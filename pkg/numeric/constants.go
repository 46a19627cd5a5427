// Package numeric holds the tolerance context shared by the geometry kernel
// and the scalar primitives built on it: NaN-aware interval arithmetic,
// scale-robust norms, zero/unit length tests and compensated summation.
//
// Every value in this package is immutable. Nothing here allocates shared
// mutable state, so all functions are safe for concurrent use.
package numeric

import "math"

const (
	// Tau is the number of radians in one turn.
	Tau = 2.0 * math.Pi

	// MinTolerance is the minimum supported tolerance.
	MinTolerance = 0.0

	// DefaultTolerance is used when a tolerance parameter is omitted.
	DefaultTolerance = 1e-9

	// Epsilon is the smallest positive float64 greater than zero (DBL_TRUE_MIN).
	Epsilon = math.SmallestNonzeroFloat64

	// Upsilon is the smallest positive normal float64 (DBL_MIN).
	Upsilon = 4.0 / math.MaxFloat64

	// Delta is the smallest number such that 1.0 + Delta != 1.0 (DBL_EPSILON).
	Delta = math.MaxFloat64 * math.SmallestNonzeroFloat64 / 4.0
)
