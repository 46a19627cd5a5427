package geom

import (
	"math"

	"github.com/chazu/geokernel/pkg/numeric"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// UnitXYZ is a unit length direction. The zero value is not a valid
// direction; check it with IsValid.
type UnitXYZ struct {
	dir   v3.Vec
	valid bool
}

var (
	UnitX = UnitXYZ{dir: BasisX, valid: true}
	UnitY = UnitXYZ{dir: BasisY, valid: true}
	UnitZ = UnitXYZ{dir: BasisZ, valid: true}
)

// ToUnit normalizes v. The result is invalid when v is zero or NaN.
func ToUnit(v v3.Vec) UnitXYZ {
	x, y, z, ok := numeric.Normalize3(v.X, v.Y, v.Z)
	if !ok {
		return UnitXYZ{}
	}
	return UnitXYZ{dir: v3.Vec{X: x, Y: y, Z: z}, valid: true}
}

// AsUnit wraps v without normalizing it. v must already be unit length.
func AsUnit(v v3.Vec) UnitXYZ {
	return UnitXYZ{dir: v, valid: true}
}

func (u UnitXYZ) IsValid() bool     { return u.valid }
func (u UnitXYZ) Direction() v3.Vec { return u.dir }

// Neg returns the opposite direction.
func (u UnitXYZ) Neg() UnitXYZ {
	return UnitXYZ{dir: u.dir.MulScalar(-1), valid: u.valid}
}

// Scale returns the direction scaled by magnitude.
func (u UnitXYZ) Scale(magnitude float64) v3.Vec {
	return u.dir.MulScalar(magnitude)
}

func (u UnitXYZ) Dot(v v3.Vec) float64 {
	return u.dir.Dot(v)
}

// Cross returns u × other. The result is unit length only when the operands
// are perpendicular.
func (u UnitXYZ) Cross(other UnitXYZ) v3.Vec {
	return u.dir.Cross(other.dir)
}

func (u UnitXYZ) AlmostEquals(other UnitXYZ, tolerance float64) bool {
	return numeric.IsZero3(u.dir.X-other.dir.X, u.dir.Y-other.dir.Y, u.dir.Z-other.dir.Z, tolerance)
}

// TripleProduct returns (a × b) · u.
func (u UnitXYZ) TripleProduct(a, b UnitXYZ) float64 {
	return a.dir.Cross(b.dir).Dot(u.dir)
}

// AngleTo returns the angle between u and other in [0, π]. It stays accurate
// for nearly parallel and nearly opposite directions.
func (u UnitXYZ) AngleTo(other UnitXYZ) float64 {
	d := u.dir.Sub(other.dir)
	s := u.dir.Add(other.dir)
	return 2.0 * math.Atan2(numeric.Norm3(d.X, d.Y, d.Z), numeric.Norm3(s.X, s.Y, s.Z))
}

// AngleOnPlaneTo returns the counter-clockwise angle in [0, 2π) from u to
// other, measured around normal.
func (u UnitXYZ) AngleOnPlaneTo(other, normal UnitXYZ) float64 {
	dotThisOther := u.dir.Dot(other.dir)
	dotThisNormal := u.dir.Dot(normal.dir)
	dotOtherNormal := other.dir.Dot(normal.dir)

	x := dotThisOther - dotOtherNormal*dotThisNormal
	y := normal.TripleProduct(u, other)

	angle := math.Atan2(y, x)
	if angle < 0.0 {
		return angle + numeric.Tau
	}
	return angle
}

func (u UnitXYZ) IsParallelTo(other UnitXYZ, tolerance float64) bool {
	a, b := u.dir, other.dir
	return numeric.IsZero3(a.X-b.X, a.Y-b.Y, a.Z-b.Z, tolerance) ||
		numeric.IsZero3(a.X+b.X, a.Y+b.Y, a.Z+b.Z, tolerance)
}

func (u UnitXYZ) IsCodirectionalTo(other UnitXYZ, tolerance float64) bool {
	return u.AlmostEquals(other, tolerance)
}

func (u UnitXYZ) IsPerpendicularTo(other UnitXYZ, tolerance float64) bool {
	return math.Abs(u.dir.Dot(other.dir)) < tolerance
}

// Right returns the X axis of the coordinate system whose Z axis is u, per
// the Arbitrary Axis Algorithm.
func (u UnitXYZ) Right(tolerance float64) UnitXYZ {
	x, y, z := u.dir.X, u.dir.Y, u.dir.Z
	normXY := numeric.Norm2(x, y)
	if normXY < tolerance {
		z, x, _ = numeric.Normalize2(z, x)
		return AsUnit(v3.Vec{X: z, Y: 0.0, Z: -x})
	}
	return AsUnit(v3.Vec{X: -y / normXY, Y: x / normXY, Z: 0.0})
}

// Up returns the Y axis of the coordinate system whose Z axis is u.
func (u UnitXYZ) Up(tolerance float64) UnitXYZ {
	right := u.Right(tolerance)
	return AsUnit(u.dir.Cross(right.dir))
}

// Orthonormal returns x × y when x and y are perpendicular.
func Orthonormal(x, y UnitXYZ, tolerance float64) (UnitXYZ, bool) {
	if !x.IsPerpendicularTo(y, tolerance) {
		return UnitXYZ{}, false
	}
	return AsUnit(x.Cross(y)), true
}

// Orthonormalize builds a right-handed orthonormal basis whose X axis follows
// u and whose XY plane contains v. It fails when u and v are parallel or
// either is zero.
func Orthonormalize(u, v v3.Vec) (x, y, z UnitXYZ, ok bool) {
	x = ToUnit(u)
	y = ToUnit(v)
	if !x.valid || !y.valid {
		return x, y, UnitXYZ{}, false
	}
	z = ToUnit(x.Cross(y))
	if !z.valid {
		return x, y, z, false
	}
	y = AsUnit(z.Cross(x))
	return x, y, z, true
}
