package curve

import (
	"math"

	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point is a location in space.
type Point struct {
	Coord v3.Vec
}

func (Point) Kind() Kind { return KindPoint }

// Vector is a free direction with magnitude.
type Vector struct {
	Direction v3.Vec
}

func (Vector) Kind() Kind { return KindVector }

// Line is the bound segment from Start to End, parametrized on [0, 1].
type Line struct {
	Start v3.Vec
	End   v3.Vec
}

func (Line) Kind() Kind                 { return KindLine }
func (Line) IsBound() bool              { return true }
func (Line) Domain() (float64, float64) { return 0.0, 1.0 }

func (l Line) Evaluate(t float64) v3.Vec {
	return v3.Vec{
		X: numeric.Lerp(l.Start.X, l.End.X, t),
		Y: numeric.Lerp(l.Start.Y, l.End.Y, t),
		Z: numeric.Lerp(l.Start.Z, l.End.Z, t),
	}
}

// Direction is the unit vector from Start to End.
func (l Line) Direction() geom.UnitXYZ {
	return geom.ToUnit(l.End.Sub(l.Start))
}

func (l Line) Length() float64 {
	d := l.End.Sub(l.Start)
	return numeric.Norm3(d.X, d.Y, d.Z)
}

// Arc is a circular arc of Radius around Center in the plane spanned by
// XAxis and YAxis, parametrized by angle. An arc spanning a full turn or
// more is an unbound circle.
type Arc struct {
	Center     v3.Vec
	XAxis      geom.UnitXYZ
	YAxis      geom.UnitXYZ
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// NewCircle returns the full circle around center in the plane normal to
// normal, seamed on the Arbitrary Axis Algorithm X axis.
func NewCircle(center v3.Vec, normal geom.UnitXYZ, radius float64) Arc {
	return Arc{
		Center:   center,
		XAxis:    normal.Right(numeric.DefaultTolerance),
		YAxis:    normal.Up(numeric.DefaultTolerance),
		Radius:   radius,
		EndAngle: numeric.Tau,
	}
}

func (Arc) Kind() Kind { return KindArc }

func (a Arc) IsBound() bool {
	return a.EndAngle-a.StartAngle < numeric.Tau-numeric.DefaultTolerance
}

func (a Arc) Domain() (float64, float64) {
	if !a.IsBound() {
		return a.StartAngle, a.StartAngle + numeric.Tau
	}
	return a.StartAngle, a.EndAngle
}

func (a Arc) Evaluate(angle float64) v3.Vec {
	return a.Center.
		Add(a.XAxis.Scale(a.Radius * math.Cos(angle))).
		Add(a.YAxis.Scale(a.Radius * math.Sin(angle)))
}

// Normal is XAxis × YAxis.
func (a Arc) Normal() geom.UnitXYZ {
	return geom.ToUnit(a.XAxis.Cross(a.YAxis))
}

// Canonical rebases a full circle on a seam derived from its plane only, so
// circles traced from different start points sample alike.
func (a Arc) Canonical() Curve {
	if a.IsBound() {
		return a
	}
	return NewCircle(a.Center, canonicalDirection(a.Normal()), a.Radius)
}

// Ellipse is an elliptical arc around Center with semi axes RadiusX along
// XAxis and RadiusY along YAxis.
type Ellipse struct {
	Center     v3.Vec
	XAxis      geom.UnitXYZ
	YAxis      geom.UnitXYZ
	RadiusX    float64
	RadiusY    float64
	StartAngle float64
	EndAngle   float64
}

func (Ellipse) Kind() Kind { return KindEllipse }

func (e Ellipse) IsBound() bool {
	return e.EndAngle-e.StartAngle < numeric.Tau-numeric.DefaultTolerance
}

func (e Ellipse) Domain() (float64, float64) {
	if !e.IsBound() {
		return e.StartAngle, e.StartAngle + numeric.Tau
	}
	return e.StartAngle, e.EndAngle
}

func (e Ellipse) Evaluate(angle float64) v3.Vec {
	return e.Center.
		Add(e.XAxis.Scale(e.RadiusX * math.Cos(angle))).
		Add(e.YAxis.Scale(e.RadiusY * math.Sin(angle)))
}

func (e Ellipse) Normal() geom.UnitXYZ {
	return geom.ToUnit(e.XAxis.Cross(e.YAxis))
}

// Canonical seams a closed ellipse on the end of its major axis that lies in
// the canonical half space. Closed ellipses with equal radii are circles.
func (e Ellipse) Canonical() Curve {
	if e.IsBound() {
		return e
	}
	normal := canonicalDirection(e.Normal())
	if numeric.AlmostEquals(e.RadiusX, e.RadiusY, numeric.DefaultTolerance) {
		return NewCircle(e.Center, normal, e.RadiusX)
	}

	major, rx, ry := e.XAxis, e.RadiusX, e.RadiusY
	if ry > rx {
		major, rx, ry = e.YAxis, ry, rx
	}
	major = canonicalDirection(major)
	return Ellipse{
		Center:   e.Center,
		XAxis:    major,
		YAxis:    geom.AsUnit(normal.Cross(major)),
		RadiusX:  rx,
		RadiusY:  ry,
		EndAngle: numeric.Tau,
	}
}

// canonicalDirection picks, between u and -u, the one whose last non-zero
// component is positive.
func canonicalDirection(u geom.UnitXYZ) geom.UnitXYZ {
	d := u.Direction()
	switch {
	case d.Z != 0:
		if d.Z < 0 {
			return u.Neg()
		}
	case d.Y != 0:
		if d.Y < 0 {
			return u.Neg()
		}
	case d.X < 0:
		return u.Neg()
	}
	return u
}

// CylindricalHelix winds around the axis through Base along ZAxis. Pitch is
// the rise per turn. The parameter is the winding angle.
type CylindricalHelix struct {
	Base        v3.Vec
	XAxis       geom.UnitXYZ
	YAxis       geom.UnitXYZ
	ZAxis       geom.UnitXYZ
	Radius      float64
	Pitch       float64
	StartAngle  float64
	EndAngle    float64
	RightHanded bool
}

func (CylindricalHelix) Kind() Kind    { return KindCylindricalHelix }
func (CylindricalHelix) IsBound() bool { return true }

func (h CylindricalHelix) Domain() (float64, float64) {
	return h.StartAngle, h.EndAngle
}

func (h CylindricalHelix) Evaluate(angle float64) v3.Vec {
	sin := math.Sin(angle)
	if !h.RightHanded {
		sin = -sin
	}
	return h.Base.
		Add(h.XAxis.Scale(h.Radius * math.Cos(angle))).
		Add(h.YAxis.Scale(h.Radius * sin)).
		Add(h.ZAxis.Scale(h.Pitch * angle / numeric.Tau))
}

// Height is the rise between the start and end of the helix.
func (h CylindricalHelix) Height() float64 {
	return math.Abs(h.Pitch * (h.EndAngle - h.StartAngle) / numeric.Tau)
}

// Polyline is an open or closed chain of points.
type Polyline struct {
	Points []v3.Vec
}

func (Polyline) Kind() Kind { return KindPolyline }

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][3]int
}

func (Mesh) Kind() Kind { return KindMesh }
