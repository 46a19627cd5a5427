package fit

import (
	"github.com/chazu/geokernel/pkg/curve"
	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Location returns a right-handed orthonormal frame placed on g: its origin
// and X axis follow the geometry, and its Z axis is the geometry's normal
// where one is defined.
//
// Geometries that cannot be placed fail with geom.ErrDegenerateFrame (for
// example an empty polyline or a closed bound arc) and vectors or periodic
// splines with geom.ErrUnsupportedGeometryKind.
func Location(g curve.Geometry) (geom.Transform, error) {
	switch g := g.(type) {
	case curve.Point:
		return geom.Translation(g.Coord), nil
	case curve.Line:
		return lineLocation(g)
	case curve.Arc:
		return conicLocation(g, g.Center, g.XAxis, g.YAxis, g.Normal())
	case curve.Ellipse:
		return conicLocation(g, g.Center, g.XAxis, g.YAxis, g.Normal())
	case curve.CylindricalHelix:
		return frame(g.Base, g.XAxis.Direction(), g.YAxis.Direction()), nil
	case curve.NurbSpline:
		if !g.IsBound() {
			return geom.Transform{}, errors.Wrap(geom.ErrUnsupportedGeometryKind, "periodic nurb-spline")
		}
		return splineLocation(g, g.ControlPoints)
	case curve.HermiteSpline:
		if !g.IsBound() {
			return geom.Transform{}, errors.Wrap(geom.ErrUnsupportedGeometryKind, "periodic hermite-spline")
		}
		return splineLocation(g, g.Points)
	case curve.Polyline:
		return polylineLocation(g)
	case curve.Mesh:
		return meshLocation(g)
	case nil:
		return geom.Transform{}, errors.Wrap(geom.ErrUnsupportedGeometryKind, "nil geometry")
	default:
		return geom.Transform{}, errors.Wrapf(geom.ErrUnsupportedGeometryKind, "no location for %s", g.Kind())
	}
}

// frame builds the transform from an origin and two unit axes.
func frame(origin, x, y v3.Vec) geom.Transform {
	return geom.Transform{Origin: origin, BasisX: x, BasisY: y, BasisZ: x.Cross(y)}
}

func lineLocation(l curve.Line) (geom.Transform, error) {
	d := l.End.Sub(l.Start)
	if geom.IsZeroLength(d, numeric.DefaultTolerance) {
		return geom.Transform{}, errors.Wrap(geom.ErrDegenerateFrame, "zero length line")
	}
	x := geom.Normalize(d, 0)
	y := geom.Normalize(geom.PerpVector(x, 0), 0)
	return frame(l.Evaluate(0.5), x, y), nil
}

// conicLocation places bound arcs and ellipses on the midpoint of their
// chord and closed ones on their center.
func conicLocation(c curve.Curve, center v3.Vec, xAxis, yAxis, normal geom.UnitXYZ) (geom.Transform, error) {
	if !c.IsBound() {
		return frame(center, xAxis.Direction(), yAxis.Direction()), nil
	}

	t0, t1 := c.Domain()
	start, end := c.Evaluate(t0), c.Evaluate(t1)
	chord := end.Sub(start)
	if geom.IsZeroLength(chord, numeric.DefaultTolerance) {
		return geom.Transform{}, errors.Wrapf(geom.ErrDegenerateFrame, "closed bound %s", c.Kind())
	}

	x := geom.Normalize(chord, 0)
	y := geom.Normalize(normal.Direction().Cross(x), 0)
	return frame(start.Add(chord.MulScalar(0.5)), x, y), nil
}

// splineLocation places a bound spline on the midpoint of its chord with the
// normal estimated from the covariance of its defining points.
func splineLocation(c curve.Curve, points []v3.Vec) (geom.Transform, error) {
	t0, t1 := c.Domain()
	start, end := c.Evaluate(t0), c.Evaluate(t1)
	chord := end.Sub(start)
	if geom.IsZeroLength(chord, numeric.DefaultTolerance) {
		return geom.Transform{}, errors.Wrapf(geom.ErrDegenerateFrame, "closed %s", c.Kind())
	}
	x := geom.Normalize(chord, 0)

	cov, _ := ComputeCovariance(points)
	var normal v3.Vec
	if IsPlanar(cov, numeric.DefaultTolerance) {
		// The dominant axis lies in the plane; crossing it with the chord
		// gives the normal unless the two are parallel.
		normal = geom.Normalize(x.Cross(PrincipalComponent(cov, 0)), 0)
	}
	if geom.IsZeroLength(normal, numeric.DefaultTolerance) {
		normal = Normal(cov, numeric.DefaultTolerance).Direction()
	}

	y := geom.Normalize(normal.Cross(x), 0)
	if geom.IsZeroLength(y, numeric.DefaultTolerance) {
		y = geom.Normalize(geom.PerpVector(x, 0), 0)
	}
	return frame(start.Add(chord.MulScalar(0.5)), x, y), nil
}

func polylineLocation(p curve.Polyline) (geom.Transform, error) {
	switch len(p.Points) {
	case 0:
		return geom.Transform{}, errors.Wrap(geom.ErrDegenerateFrame, "empty polyline")
	case 1:
		return geom.Translation(p.Points[0]), nil
	}

	start, end := p.Points[0], p.Points[len(p.Points)-1]
	var origin, axis v3.Vec
	if geom.AlmostEquals(start, end, numeric.DefaultTolerance) {
		origin = ComputeMeanPoint(p.Points)
		axis = start.Sub(origin)
	} else {
		axis = end.Sub(start)
		origin = start.Add(axis.MulScalar(0.5))
	}

	x := geom.Normalize(axis, 0)
	if geom.IsZeroLength(x, numeric.DefaultTolerance) {
		return geom.Transform{}, errors.Wrap(geom.ErrDegenerateFrame, "polyline collapses to a point")
	}
	y := geom.Normalize(geom.PerpVector(x, 0), 0)
	return frame(origin, x, y), nil
}

// meshLocation places a mesh on the centroid of its referenced vertices with
// Z along the best-fit normal and X along the dominant in-plane axis.
func meshLocation(m curve.Mesh) (geom.Transform, error) {
	indices := lo.Uniq(lo.FlatMap(m.Faces, func(f [3]int, _ int) []int { return f[:] }))
	points := lo.FilterMap(indices, func(i int, _ int) (v3.Vec, bool) {
		if i < 0 || i >= len(m.Vertices) {
			return v3.Vec{}, false
		}
		return m.Vertices[i], true
	})
	if len(points) == 0 {
		points = m.Vertices
	}
	if len(points) == 0 {
		return geom.Transform{}, errors.Wrap(geom.ErrDegenerateFrame, "empty mesh")
	}

	cov, origin := ComputeCovariance(points)
	normal := Normal(cov, numeric.DefaultTolerance)

	principal := PrincipalComponent(cov, 0)
	inPlane := principal.Sub(normal.Scale(normal.Dot(principal)))
	x := geom.Normalize(inPlane, numeric.DefaultTolerance)
	if geom.IsZeroLength(x, numeric.DefaultTolerance) {
		x = normal.Right(numeric.DefaultTolerance).Direction()
	}
	y := normal.Direction().Cross(x)
	return frame(origin, x, y), nil
}
