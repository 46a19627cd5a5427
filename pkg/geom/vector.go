// Package geom provides tolerant operations over sdfx vectors, unit vectors,
// affine frames and plane equations.
//
// All lengths are computed with the scale-and-normalize pattern from package
// numeric and follow a denormals-are-zero policy: a tolerance below
// numeric.Upsilon is raised to it.
package geom

import (
	"math"

	"github.com/chazu/geokernel/pkg/numeric"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var (
	Zero   = v3.Vec{}
	BasisX = v3.Vec{X: 1}
	BasisY = v3.Vec{Y: 1}
	BasisZ = v3.Vec{Z: 1}
)

// NaN is the vector returned when a point cannot be evaluated.
func NaN() v3.Vec {
	nan := math.NaN()
	return v3.Vec{X: nan, Y: nan, Z: nan}
}

// MinValue and MaxValue are the most negative and most positive finite
// points.
var (
	MinValue = v3.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
	MaxValue = v3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
)

// Length returns the length of v, or zero when it is below tolerance.
func Length(v v3.Vec, tolerance float64) float64 {
	tolerance = numeric.Clamped(tolerance)
	length := numeric.Norm3(v.X, v.Y, v.Z)
	if length < tolerance {
		return 0.0
	}
	return length
}

// IsZeroLength reports whether |v| < tolerance.
func IsZeroLength(v v3.Vec, tolerance float64) bool {
	u, w, m := absSorted(v)
	if m < tolerance/3.0 {
		return true
	}
	if m > tolerance {
		return false
	}
	if m == 0 {
		return true
	}
	u /= m
	w /= m
	return math.Sqrt(1.0+(u*u+w*w))*m < tolerance
}

// IsUnitLength reports whether ||v| - 1| < tolerance.
func IsUnitLength(v v3.Vec, tolerance float64) bool {
	u, w, m := absSorted(v)
	if m < (1.0-tolerance)/3.0 {
		return false
	}
	if m > 1.0+tolerance {
		return false
	}
	u /= m
	w /= m
	return math.Abs(math.Sqrt(1.0+(u*u+w*w))*m-1.0) < tolerance
}

func absSorted(v v3.Vec) (u, w, m float64) {
	x, y, z := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	u, w, m = x, y, z
	if x > m {
		u, w, m = y, z, x
	}
	if y > m {
		u, w, m = z, x, y
	}
	return u, w, m
}

// AlmostEquals reports whether a and b are closer than tolerance.
func AlmostEquals(a, b v3.Vec, tolerance float64) bool {
	tolerance = numeric.Clamped(tolerance)
	return numeric.Norm3(a.X-b.X, a.Y-b.Y, a.Z-b.Z) < tolerance
}

// Normalize returns v scaled to unit length, or Zero when v is shorter than
// tolerance.
func Normalize(v v3.Vec, tolerance float64) v3.Vec {
	tolerance = numeric.Clamped(tolerance)
	length := numeric.Norm3(v.X, v.Y, v.Z)
	if length < tolerance {
		return Zero
	}
	return v3.Vec{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// CrossProduct returns a × b. Operands are normalized before multiplying and
// the result is scaled back by |a|·|b|, which keeps precision for vectors far
// from unit length. Zero is returned when either operand is below tolerance.
func CrossProduct(a, b v3.Vec, tolerance float64) v3.Vec {
	tolerance = numeric.Clamped(tolerance)

	lengthA := Length(a, tolerance)
	lengthB := Length(b, tolerance)
	if lengthA < tolerance || lengthB < tolerance {
		return Zero
	}

	ua := a.MulScalar(1 / lengthA)
	ub := b.MulScalar(1 / lengthB)
	return ua.Cross(ub).MulScalar(lengthA * lengthB)
}

// IsParallelTo reports whether a and b are parallel or anti-parallel.
func IsParallelTo(a, b v3.Vec, tolerance float64) bool {
	tolerance = numeric.Clamped(tolerance)
	ua := Normalize(a, tolerance)
	ub := Normalize(b, tolerance)
	if ua.Dot(ub) < 0.0 {
		ub = ub.MulScalar(-1)
	}
	return AlmostEquals(ua, ub, tolerance)
}

// IsCodirectionalTo reports whether a and b point the same way.
func IsCodirectionalTo(a, b v3.Vec, tolerance float64) bool {
	tolerance = numeric.Clamped(tolerance)
	return AlmostEquals(Normalize(a, tolerance), Normalize(b, tolerance), tolerance)
}

// IsPerpendicularTo reports whether a and b are perpendicular.
func IsPerpendicularTo(a, b v3.Vec, tolerance float64) bool {
	tolerance = numeric.Clamped(tolerance)
	return math.Abs(Normalize(a, tolerance).Dot(Normalize(b, tolerance))) < tolerance
}

// PerpVector returns an X axis for a coordinate system whose Z axis is v,
// following the Arbitrary Axis Algorithm. The result is not normalized.
func PerpVector(v v3.Vec, tolerance float64) v3.Vec {
	tolerance = numeric.Clamped(tolerance)
	length := Length(v, tolerance)
	if length < tolerance {
		return Zero
	}
	if numeric.Norm2(v.X/length, v.Y/length) < tolerance {
		return v3.Vec{X: v.Z, Y: 0.0, Z: -v.X}
	}
	return v3.Vec{X: -v.Y, Y: v.X, Z: 0.0}
}

// Length2 is the planar counterpart of Length.
func Length2(v v2.Vec, tolerance float64) float64 {
	tolerance = numeric.Clamped(tolerance)
	length := numeric.Norm2(v.X, v.Y)
	if length < tolerance {
		return 0.0
	}
	return length
}

// AlmostEquals2 is the planar counterpart of AlmostEquals.
func AlmostEquals2(a, b v2.Vec, tolerance float64) bool {
	tolerance = numeric.Clamped(tolerance)
	return numeric.Norm2(a.X-b.X, a.Y-b.Y) < tolerance
}

// Component returns the axis-th coordinate of v.
func Component(v v3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// WithComponent returns v with its axis-th coordinate replaced.
func WithComponent(v v3.Vec, axis int, value float64) v3.Vec {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}
