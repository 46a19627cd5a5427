// Package curve defines the closed set of geometry primitives the kernel
// compares and fits: points, vectors, lines, arcs, ellipses, Hermite and
// NURBS splines and cylindrical helices, plus polylines and meshes which are
// only used for frame fitting.
//
// Every curve evaluates to world points over a parameter domain. Curves that
// are not bound are periodic and their domain spans exactly one period.
package curve

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Kind identifies a primitive type.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPoint
	KindVector
	KindLine
	KindArc
	KindEllipse
	KindHermiteSpline
	KindNurbSpline
	KindCylindricalHelix
	KindPolyline
	KindMesh
)

var kindNames = map[Kind]string{
	KindUnknown:          "unknown",
	KindPoint:            "point",
	KindVector:           "vector",
	KindLine:             "line",
	KindArc:              "arc",
	KindEllipse:          "ellipse",
	KindHermiteSpline:    "hermite-spline",
	KindNurbSpline:       "nurb-spline",
	KindCylindricalHelix: "cylindrical-helix",
	KindPolyline:         "polyline",
	KindMesh:             "mesh",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Geometry is any primitive.
type Geometry interface {
	Kind() Kind
}

// Curve is a primitive that can be evaluated over a parameter domain.
type Curve interface {
	Geometry
	// Domain returns the parameter range. For periodic curves it spans one
	// period.
	Domain() (t0, t1 float64)
	// IsBound is false for periodic curves.
	IsBound() bool
	Evaluate(t float64) v3.Vec
}

// canonical is implemented by curves with more than one parametrization of
// the same shape. Canonical returns the representative used for sampling.
type canonical interface {
	Canonical() Curve
}

// Samples evaluates c at canonical normalized parameters: {0, 1/2, 1} of the
// domain for bound curves and {0, 1/4, 2/4, 3/4} of the period otherwise.
func Samples(c Curve) []v3.Vec {
	if cc, ok := c.(canonical); ok {
		c = cc.Canonical()
	}
	t0, t1 := c.Domain()
	span := t1 - t0

	fractions := []float64{0.0, 0.5, 1.0}
	if !c.IsBound() {
		fractions = []float64{0.0, 0.25, 0.5, 0.75}
	}

	samples := make([]v3.Vec, len(fractions))
	for i, f := range fractions {
		samples[i] = c.Evaluate(t0 + span*f)
	}
	return samples
}
