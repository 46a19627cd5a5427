package numeric

import "math"

// Tolerance is a maximum absolute error used to compare scalars.
// The zero value compares exactly.
type Tolerance float64

// Default is the Tolerance used when none is supplied.
const Default Tolerance = DefaultTolerance

// Equals reports whether x and y are equal up to t.
func (t Tolerance) Equals(x, y float64) bool {
	return math.Abs(x-y) <= float64(t)
}

// Hash buckets value into a grid of pitch 10·t. Values that compare equal
// share a bucket only when neither lies within t of a bucket edge; 9.4 and
// 9.6 are Equals at t = 1 yet hash to 0 and 1.
func (t Tolerance) Hash(value float64) int32 {
	hash := 0.1 * math.Round(value/float64(t))
	if math.Abs(hash) < math.MaxInt32 {
		return int32(hash)
	}
	if math.IsNaN(hash) {
		return math.MinInt32
	}
	if hash < 0 {
		return -math.MaxInt32
	}
	return math.MaxInt32
}

// AlmostEquals reports whether |x - y| is within tolerance.
func AlmostEquals(x, y, tolerance float64) bool {
	return math.Abs(x-y) <= tolerance
}

// Clamped returns tolerance raised to at least Upsilon. The kernel treats
// denormals as zero, so a tolerance below Upsilon is meaningless.
func Clamped(tolerance float64) float64 {
	return math.Max(Upsilon, tolerance)
}
