package numeric

import "math"

const (
	signMask     = 0x8000_0000_0000_0000
	exponentMask = 0x7FF0_0000_0000_0000
)

// IsFinite reports whether value is neither infinite nor NaN.
func IsFinite(value float64) bool {
	return math.Float64bits(value)&^signMask < exponentMask
}

// IsNegative reports whether the sign bit of value is set. NaN is neither
// negative nor positive.
func IsNegative(value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	return math.Float64bits(value)&signMask != 0
}

// IsPositive reports whether the sign bit of value is clear.
func IsPositive(value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	return math.Float64bits(value)&signMask == 0
}

func IsNegativeZero(value float64) bool { return math.Float64bits(value) == signMask }
func IsPositiveZero(value float64) bool { return math.Float64bits(value) == 0 }

// IsNormal reports whether |value| is at least Upsilon.
func IsNormal(value float64) bool {
	return math.Abs(value) >= Upsilon
}

// Direction returns -1 or +1 following the sign bit of value, so -0.0 maps
// to -1. NaN is returned unchanged.
func Direction(value float64) float64 {
	if math.IsNaN(value) {
		return value
	}
	if math.Float64bits(value)&signMask == 0 {
		return +1.0
	}
	return -1.0
}

// Min returns the lesser of x and y. A NaN operand is ignored in favour of
// the other one and -0.0 is treated as less than +0.0.
func Min(x, y float64) float64 {
	switch {
	case x < y:
		return x
	case x == y:
		if IsNegativeZero(x) {
			return math.Copysign(0, -1)
		}
		return y
	case math.IsNaN(y):
		return x
	}
	return y
}

// Max returns the greater of x and y. A NaN operand is ignored in favour of
// the other one and +0.0 is treated as greater than -0.0.
func Max(x, y float64) float64 {
	switch {
	case x > y:
		return x
	case x == y:
		if IsPositiveZero(x) {
			return 0
		}
		return y
	case math.IsNaN(y):
		return x
	}
	return y
}

// Mean returns (x + y) / 2 without overflowing for operands near MaxFloat64.
func Mean(x, y float64) float64 {
	if x == y {
		return x
	}
	if math.Abs(x) < Upsilon {
		return x + y*0.5
	}
	if math.Abs(y) < Upsilon {
		return x*0.5 + y
	}
	return x*0.5 + y*0.5
}

// Deviation returns the signed radius (x - y) / 2 of [x, y].
func Deviation(x, y float64) float64 { return Mean(x, -y) }

// Lerp interpolates linearly on [x, y] at t.
func Lerp(x, y, t float64) float64 {
	if x == y {
		return x
	}
	if math.Abs(x) < Upsilon {
		return x + y*t
	}
	if math.Abs(y) < Upsilon {
		return x*(1.0-t) + y
	}
	return x*(1.0-t) + y*t
}

// Clamp limits value to [min, max]. NaN stays NaN.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if max < value {
		return max
	}
	return value
}
