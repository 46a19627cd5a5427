package geom

import (
	"math"

	"github.com/chazu/geokernel/pkg/numeric"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

// Transform is an affine frame: an origin plus three basis vectors that map
// local X, Y and Z. The basis may be scaled, sheared or mirrored.
type Transform struct {
	Origin v3.Vec
	BasisX v3.Vec
	BasisY v3.Vec
	BasisZ v3.Vec
}

// Identity returns the world frame.
func Identity() Transform {
	return Transform{BasisX: BasisX, BasisY: BasisY, BasisZ: BasisZ}
}

// Translation returns the world frame moved to origin.
func Translation(origin v3.Vec) Transform {
	t := Identity()
	t.Origin = origin
	return t
}

// Scaling returns a frame that scales every axis by s about the world origin.
func Scaling(s float64) Transform {
	return Transform{
		BasisX: BasisX.MulScalar(s),
		BasisY: BasisY.MulScalar(s),
		BasisZ: BasisZ.MulScalar(s),
	}
}

// Basis returns the axis-th basis vector.
func (t Transform) Basis(axis int) v3.Vec {
	switch axis {
	case 0:
		return t.BasisX
	case 1:
		return t.BasisY
	}
	return t.BasisZ
}

// OfPoint maps a local point to world coordinates.
func (t Transform) OfPoint(p v3.Vec) v3.Vec {
	return t.Origin.Add(t.OfVector(p))
}

// OfVector maps a local vector to world coordinates, ignoring the origin.
func (t Transform) OfVector(v v3.Vec) v3.Vec {
	return v3.Vec{
		X: t.BasisX.X*v.X + t.BasisY.X*v.Y + t.BasisZ.X*v.Z,
		Y: t.BasisX.Y*v.X + t.BasisY.Y*v.Y + t.BasisZ.Y*v.Z,
		Z: t.BasisX.Z*v.X + t.BasisY.Z*v.Y + t.BasisZ.Z*v.Z,
	}
}

// Determinant of the linear part.
func (t Transform) Determinant() float64 {
	return t.BasisX.Dot(t.BasisY.Cross(t.BasisZ))
}

// Scale returns the volume scale factor of the frame, |det|.
func (t Transform) Scale() float64 {
	return math.Abs(t.Determinant())
}

// TryGetInverse returns the inverse frame. It returns false, together with
// the identity, when |det| is not above tolerance.
func (t Transform) TryGetInverse(tolerance float64) (Transform, bool) {
	det := t.Determinant()
	if !(math.Abs(det) > numeric.Clamped(tolerance)) {
		return Identity(), false
	}

	// Rows of the inverse linear part are the cofactor vectors over det.
	rx := t.BasisY.Cross(t.BasisZ).MulScalar(1 / det)
	ry := t.BasisZ.Cross(t.BasisX).MulScalar(1 / det)
	rz := t.BasisX.Cross(t.BasisY).MulScalar(1 / det)

	inv := Transform{
		BasisX: v3.Vec{X: rx.X, Y: ry.X, Z: rz.X},
		BasisY: v3.Vec{X: rx.Y, Y: ry.Y, Z: rz.Y},
		BasisZ: v3.Vec{X: rx.Z, Y: ry.Z, Z: rz.Z},
	}
	inv.Origin = inv.OfVector(t.Origin).MulScalar(-1)
	return inv, true
}

// Inverse is TryGetInverse reporting failure as ErrDegenerateFrame.
func (t Transform) Inverse(tolerance float64) (Transform, error) {
	inv, ok := t.TryGetInverse(tolerance)
	if !ok {
		return inv, errors.Wrapf(ErrDegenerateFrame, "determinant %g", t.Determinant())
	}
	return inv, nil
}

// IsConformal reports whether the basis vectors are mutually perpendicular
// and share the same non-zero length, i.e. the frame preserves angles.
func (t Transform) IsConformal(tolerance float64) bool {
	tolerance = numeric.Clamped(tolerance)

	lx := Length(t.BasisX, tolerance)
	ly := Length(t.BasisY, tolerance)
	lz := Length(t.BasisZ, tolerance)
	if lx == 0 || ly == 0 || lz == 0 {
		return false
	}

	scale := math.Max(lx, math.Max(ly, lz))
	if math.Abs(lx-ly) > tolerance*scale || math.Abs(lx-lz) > tolerance*scale {
		return false
	}

	ux := Normalize(t.BasisX, tolerance)
	uy := Normalize(t.BasisY, tolerance)
	uz := Normalize(t.BasisZ, tolerance)
	return math.Abs(ux.Dot(uy)) < tolerance &&
		math.Abs(uy.Dot(uz)) < tolerance &&
		math.Abs(uz.Dot(ux)) < tolerance
}

// AlmostEquals compares origin and basis vectors component-wise.
func (t Transform) AlmostEquals(other Transform, tolerance float64) bool {
	return AlmostEquals(t.Origin, other.Origin, tolerance) &&
		AlmostEquals(t.BasisX, other.BasisX, tolerance) &&
		AlmostEquals(t.BasisY, other.BasisY, tolerance) &&
		AlmostEquals(t.BasisZ, other.BasisZ, tolerance)
}

// Compose returns the frame that applies inner first, then t.
func (t Transform) Compose(inner Transform) Transform {
	return Transform{
		Origin: t.OfPoint(inner.Origin),
		BasisX: t.OfVector(inner.BasisX),
		BasisY: t.OfVector(inner.BasisY),
		BasisZ: t.OfVector(inner.BasisZ),
	}
}

// Transform2 is the planar counterpart of Transform, mapping local U and V.
type Transform2 struct {
	Origin v2.Vec
	BasisU v2.Vec
	BasisV v2.Vec
}

func Identity2() Transform2 {
	return Transform2{BasisU: v2.Vec{X: 1}, BasisV: v2.Vec{Y: 1}}
}

func (t Transform2) Basis(axis int) v2.Vec {
	if axis == 0 {
		return t.BasisU
	}
	return t.BasisV
}

func (t Transform2) OfPoint(p v2.Vec) v2.Vec {
	return t.Origin.Add(t.OfVector(p))
}

func (t Transform2) OfVector(v v2.Vec) v2.Vec {
	return v2.Vec{
		X: t.BasisU.X*v.X + t.BasisV.X*v.Y,
		Y: t.BasisU.Y*v.X + t.BasisV.Y*v.Y,
	}
}

func (t Transform2) Determinant() float64 {
	return t.BasisU.X*t.BasisV.Y - t.BasisU.Y*t.BasisV.X
}

func (t Transform2) Scale() float64 {
	return math.Abs(t.Determinant())
}

func (t Transform2) TryGetInverse(tolerance float64) (Transform2, bool) {
	det := t.Determinant()
	if !(math.Abs(det) > numeric.Clamped(tolerance)) {
		return Identity2(), false
	}
	inv := Transform2{
		BasisU: v2.Vec{X: t.BasisV.Y / det, Y: -t.BasisU.Y / det},
		BasisV: v2.Vec{X: -t.BasisV.X / det, Y: t.BasisU.X / det},
	}
	inv.Origin = inv.OfVector(t.Origin).MulScalar(-1)
	return inv, true
}

func (t Transform2) Inverse(tolerance float64) (Transform2, error) {
	inv, ok := t.TryGetInverse(tolerance)
	if !ok {
		return inv, errors.Wrapf(ErrDegenerateFrame, "determinant %g", t.Determinant())
	}
	return inv, nil
}

func (t Transform2) IsConformal(tolerance float64) bool {
	tolerance = numeric.Clamped(tolerance)
	lu := Length2(t.BasisU, tolerance)
	lv := Length2(t.BasisV, tolerance)
	if lu == 0 || lv == 0 {
		return false
	}
	if math.Abs(lu-lv) > tolerance*math.Max(lu, lv) {
		return false
	}
	return math.Abs(t.BasisU.Dot(t.BasisV))/(lu*lv) < tolerance
}

func (t Transform2) AlmostEquals(other Transform2, tolerance float64) bool {
	return AlmostEquals2(t.Origin, other.Origin, tolerance) &&
		AlmostEquals2(t.BasisU, other.BasisU, tolerance) &&
		AlmostEquals2(t.BasisV, other.BasisV, tolerance)
}

// Lift embeds the planar frame in the world XY plane.
func (t Transform2) Lift() Transform {
	return Transform{
		Origin: v3.Vec{X: t.Origin.X, Y: t.Origin.Y},
		BasisX: v3.Vec{X: t.BasisU.X, Y: t.BasisU.Y},
		BasisY: v3.Vec{X: t.BasisV.X, Y: t.BasisV.Y},
		BasisZ: BasisZ,
	}
}
