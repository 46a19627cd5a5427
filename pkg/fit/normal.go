package fit

import (
	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/mat"
)

// EstimateNormal returns the normal of the plane that best fits points.
// It is always a valid direction: collinear points get an arbitrary
// perpendicular to their line and coincident points get UnitZ.
func EstimateNormal(points []v3.Vec, tolerance float64) geom.UnitXYZ {
	cov, _ := ComputeCovariance(points)
	return Normal(cov, tolerance)
}

// Normal returns the eigenvector of the smallest eigenvalue of the
// covariance matrix cov.
//
// When cov is invertible that is the principal component of its inverse.
// When it is singular the normal spans its null space and is found by cross
// products instead.
func Normal(cov mat.Symmetric, tolerance float64) geom.UnitXYZ {
	if !IsPlanar(cov, tolerance) {
		var inverse mat.Dense
		if err := inverse.Inverse(cov); err == nil {
			if n := geom.ToUnit(PrincipalComponent(&inverse, tolerance)); n.IsValid() {
				return n
			}
		}
	}
	return nullDirection(cov, tolerance)
}

func row(m mat.Matrix, i int) v3.Vec {
	return v3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
}

// nullDirection handles singular covariance matrices. For rank 2 the null
// space is the cross product of two independent rows. For rank 1 any
// perpendicular to the principal axis will do.
func nullDirection(cov mat.Matrix, tolerance float64) geom.UnitXYZ {
	r0, r1, r2 := row(cov, 0), row(cov, 1), row(cov, 2)

	best := geom.Zero
	bestLength := 0.0
	for _, c := range []v3.Vec{r0.Cross(r1), r0.Cross(r2), r1.Cross(r2)} {
		if l := numeric.Norm3(c.X, c.Y, c.Z); l > bestLength {
			best, bestLength = c, l
		}
	}

	trace := mat.Trace(cov)
	if trace > 0 && bestLength > numeric.Clamped(tolerance)*trace*trace {
		return geom.ToUnit(best)
	}

	axis := PrincipalComponent(cov, tolerance)
	if n := geom.ToUnit(geom.PerpVector(axis, tolerance)); n.IsValid() {
		return n
	}
	return geom.UnitZ
}
