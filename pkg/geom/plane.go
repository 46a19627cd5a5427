package geom

import (
	"math"

	"github.com/chazu/geokernel/pkg/numeric"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// PlaneEquation is the general form plane A·x + B·y + C·z + D = 0 with
// (A, B, C) a unit normal. Points on the side the normal points to have a
// positive signed distance.
type PlaneEquation struct {
	Normal UnitXYZ
	Offset float64
}

// NewPlaneEquation returns the plane through point with the given normal.
func NewPlaneEquation(point v3.Vec, normal UnitXYZ) PlaneEquation {
	return PlaneEquation{Normal: normal, Offset: -normal.Dot(point)}
}

func (p PlaneEquation) A() float64 { return p.Normal.dir.X }
func (p PlaneEquation) B() float64 { return p.Normal.dir.Y }
func (p PlaneEquation) C() float64 { return p.Normal.dir.Z }
func (p PlaneEquation) D() float64 { return p.Offset }

// Elevation is the signed distance of the plane from the world origin.
func (p PlaneEquation) Elevation() float64 { return -p.Offset }

// Point is the point on the plane closest to the world origin.
func (p PlaneEquation) Point() v3.Vec {
	return p.Normal.Scale(-p.Offset)
}

// Neg returns the same plane with the opposite orientation.
func (p PlaneEquation) Neg() PlaneEquation {
	return PlaneEquation{Normal: p.Normal.Neg(), Offset: -p.Offset}
}

func (p PlaneEquation) AlmostEquals(other PlaneEquation, tolerance float64) bool {
	return numeric.IsZero4(
		p.A()-other.A(),
		p.B()-other.B(),
		p.C()-other.C(),
		p.D()-other.D(),
		tolerance,
	)
}

func (p PlaneEquation) SignedDistanceTo(point v3.Vec) float64 {
	return p.A()*point.X + p.B()*point.Y + p.C()*point.Z + p.D()
}

func (p PlaneEquation) AbsoluteDistanceTo(point v3.Vec) float64 {
	return math.Abs(p.SignedDistanceTo(point))
}

// Project returns the orthogonal projection of point on the plane.
func (p PlaneEquation) Project(point v3.Vec) v3.Vec {
	return point.Sub(p.Normal.Scale(p.SignedDistanceTo(point)))
}

// MinOutlineCorner returns the corner of the axis aligned box [min, max] with
// the lowest signed distance to the plane.
func (p PlaneEquation) MinOutlineCorner(min, max v3.Vec) v3.Vec {
	return v3.Vec{
		X: pick(p.A() <= 0.0, max.X, min.X),
		Y: pick(p.B() <= 0.0, max.Y, min.Y),
		Z: pick(p.C() <= 0.0, max.Z, min.Z),
	}
}

// MaxOutlineCorner returns the corner of the axis aligned box [min, max] with
// the highest signed distance to the plane.
func (p PlaneEquation) MaxOutlineCorner(min, max v3.Vec) v3.Vec {
	return v3.Vec{
		X: pick(p.A() >= 0.0, max.X, min.X),
		Y: pick(p.B() >= 0.0, max.Y, min.Y),
		Z: pick(p.C() >= 0.0, max.Z, min.Z),
	}
}

// IsAboveOutline reports whether even the corner of [min, max] farthest
// along the normal lies strictly behind the plane.
func (p PlaneEquation) IsAboveOutline(min, max v3.Vec) bool {
	c := p.MaxOutlineCorner(min, max)
	return p.A()*c.X+p.B()*c.Y+p.C()*c.Z < -p.D()
}

// IsBelowOutline reports whether even the corner of [min, max] nearest
// against the normal lies strictly in front of the plane.
func (p PlaneEquation) IsBelowOutline(min, max v3.Vec) bool {
	c := p.MinOutlineCorner(min, max)
	return p.A()*c.X+p.B()*c.Y+p.C()*c.Z > -p.D()
}

func (p PlaneEquation) IsAboveBox(box sdf.Box3) bool {
	return p.IsAboveOutline(box.Min, box.Max)
}

func (p PlaneEquation) IsBelowBox(box sdf.Box3) bool {
	return p.IsBelowOutline(box.Min, box.Max)
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
