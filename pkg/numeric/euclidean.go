package numeric

import "math"

// The functions below avoid the naive sqrt(x²+y²+z²). They pick the largest
// magnitude w, scale the remaining components by it and evaluate
// sqrt(1+u²+v²)·w, which neither overflows nor underflows for inputs many
// orders of magnitude away from 1.

// sort3 returns the absolute values of x, y, z with the largest one last.
func sort3(x, y, z float64) (u, v, w float64) {
	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)
	u, v, w = x, y, z
	if x > w {
		u, v, w = y, z, x
	}
	if y > w {
		u, v, w = z, x, y
	}
	return u, v, w
}

// Norm1 is |x|, with denormals returned as zero.
func Norm1(x float64) float64 {
	x = math.Abs(x)
	if x < Upsilon {
		return 0.0
	}
	return x
}

// Norm2 is the Euclidean length of {x, y}, with denormals returned as zero.
func Norm2(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	u, v := x, y
	if x > v {
		u, v = y, x
	}
	if v < Upsilon {
		return 0.0
	}
	u /= v
	return math.Sqrt(1.0+u*u) * v
}

// Norm3 is the Euclidean length of {x, y, z}, with denormals returned as zero.
func Norm3(x, y, z float64) float64 {
	u, v, w := sort3(x, y, z)
	if w < Upsilon {
		return 0.0
	}
	u /= w
	v /= w
	return math.Sqrt(1.0+(u*u+v*v)) * w
}

// DefaultZeroTolerance is the tolerance IsZero* callers pass when they have
// no better one.
const DefaultZeroTolerance = 0.5 * Upsilon

// DefaultUnitTolerance is the tolerance IsUnit* callers pass when they have
// no better one.
const DefaultUnitTolerance = 0.5 * Delta

func IsZero1(x, tolerance float64) bool {
	return math.Abs(x) <= tolerance
}

func IsZero2(x, y, tolerance float64) bool {
	x, y = math.Abs(x), math.Abs(y)
	u, v := x, y
	if x > v {
		u, v = y, x
	}
	if v < tolerance/2.0 {
		return true
	}
	if v > tolerance {
		return false
	}
	if v == 0 {
		return true
	}
	u /= v
	return math.Sqrt(1.0+u*u)*v <= tolerance
}

func IsZero3(x, y, z, tolerance float64) bool {
	u, v, w := sort3(x, y, z)
	if w < tolerance/3.0 {
		return true
	}
	if w > tolerance {
		return false
	}
	if w == 0 {
		return true
	}
	u /= w
	v /= w
	return math.Sqrt(1.0+(u*u+v*v))*w <= tolerance
}

func IsZero4(x, y, z, w, tolerance float64) bool {
	x, y, z, w = math.Abs(x), math.Abs(y), math.Abs(z), math.Abs(w)
	a, b, c, d := x, y, z, w
	if x > d {
		a, b, c, d = y, z, w, x
	}
	if y > d {
		a, b, c, d = z, w, x, y
	}
	if z > d {
		a, b, c, d = w, x, y, z
	}
	if d < tolerance/4.0 {
		return true
	}
	if d > tolerance {
		return false
	}
	if d == 0 {
		return true
	}
	a /= d
	b /= d
	c /= d
	return math.Sqrt(1.0+(a*a+b*b+c*c))*d <= tolerance
}

func IsUnit1(x, tolerance float64) bool {
	return math.Abs(1.0-math.Abs(x)) <= tolerance
}

func IsUnit2(x, y, tolerance float64) bool {
	x, y = math.Abs(x), math.Abs(y)
	u, v := x, y
	if x > v {
		u, v = y, x
	}
	if v < (1.0-tolerance)/2.0 {
		return false
	}
	if v > 1.0+tolerance {
		return false
	}
	u /= v
	return math.Abs(1.0-math.Sqrt(1.0+u*u)*v) <= tolerance
}

func IsUnit3(x, y, z, tolerance float64) bool {
	u, v, w := sort3(x, y, z)
	if w < (1.0-tolerance)/3.0 {
		return false
	}
	if w > 1.0+tolerance {
		return false
	}
	u /= w
	v /= w
	return math.Abs(1.0-math.Sqrt(1.0+(u*u+v*v))*w) <= tolerance
}

// Normalize1 maps x to its sign. It returns false for ±0 and NaN, which are
// left untouched.
func Normalize1(x float64) (float64, bool) {
	if x < 0.0 {
		return -1.0, true
	}
	if x > 0.0 {
		return +1.0, true
	}
	return x, false
}

// Normalize2 scales {x, y} to unit length. Denormal inputs are rescaled
// before dividing. Zero and NaN inputs are returned unchanged with false.
func Normalize2(x, y float64) (float64, float64, bool) {
	ax, ay := math.Abs(x), math.Abs(y)
	u, v := ax, ay
	if !(ax < v) {
		u, v = ay, ax
	}
	if !(v >= Upsilon) {
		if !(v != 0.0) {
			return x, y, false
		}
		u *= math.MaxFloat64
		v *= math.MaxFloat64
		x *= math.MaxFloat64
		y *= math.MaxFloat64
	}
	u /= v
	length := math.Sqrt(1.0+u*u) * v
	return x / length, y / length, true
}

// Normalize3 scales {x, y, z} to unit length. See Normalize2.
func Normalize3(x, y, z float64) (float64, float64, float64, bool) {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	u, v, w := ax, ay, az
	if !(ax < w) {
		u, v, w = ay, az, ax
	}
	if !(ay < w) {
		u, v, w = az, ax, ay
	}
	if !(w >= Upsilon) {
		if !(w != 0.0) {
			return x, y, z, false
		}
		u *= math.MaxFloat64
		v *= math.MaxFloat64
		w *= math.MaxFloat64
		x *= math.MaxFloat64
		y *= math.MaxFloat64
		z *= math.MaxFloat64
	}
	u /= w
	v /= w
	length := math.Sqrt(1.0+(u*u+v*v)) * w
	return x / length, y / length, z / length, true
}
