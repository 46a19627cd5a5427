// Package fit estimates frames for unoriented point sets: mean point,
// covariance matrix, principal axis by power iteration and best-fit normal.
// Location builds an origin and basis for each geometry primitive from these.
package fit

import (
	"math"

	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/mat"
)

// MaxIterations caps PrincipalComponent.
const MaxIterations = 50

// ComputeMeanPoint returns the centroid of points. It is NaN for no points.
func ComputeMeanPoint(points []v3.Vec) v3.Vec {
	if len(points) == 0 {
		return geom.NaN()
	}

	var x, y, z numeric.Sum
	for _, p := range points {
		x.Add(p.X)
		y.Add(p.Y)
		z.Add(p.Z)
	}
	n := float64(len(points))
	return v3.Vec{X: x.Value() / n, Y: y.Value() / n, Z: z.Value() / n}
}

// ComputeCovariance returns the scatter matrix Σ(pᵢ−mean)(pᵢ−mean)ᵗ of points
// and their mean. Entries are accumulated with compensated sums.
func ComputeCovariance(points []v3.Vec) (*mat.SymDense, v3.Vec) {
	mean := ComputeMeanPoint(points)
	return ComputeCovarianceAbout(points, mean), mean
}

// ComputeCovarianceAbout is ComputeCovariance around a caller supplied mean.
func ComputeCovarianceAbout(points []v3.Vec, mean v3.Vec) *mat.SymDense {
	var xx, xy, xz, yy, yz, zz numeric.Sum
	for _, p := range points {
		dx, dy, dz := p.X-mean.X, p.Y-mean.Y, p.Z-mean.Z
		xx.Add(dx * dx)
		xy.Add(dx * dy)
		xz.Add(dx * dz)
		yy.Add(dy * dy)
		yz.Add(dy * dz)
		zz.Add(dz * dz)
	}

	return mat.NewSymDense(3, []float64{
		xx.Value(), xy.Value(), xz.Value(),
		xy.Value(), yy.Value(), yz.Value(),
		xz.Value(), yz.Value(), zz.Value(),
	})
}

func mulVec(m mat.Matrix, v v3.Vec) v3.Vec {
	var r mat.VecDense
	r.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return v3.Vec{X: r.AtVec(0), Y: r.AtVec(1), Z: r.AtVec(2)}
}

// PrincipalComponent returns the unit eigenvector of the dominant eigenvalue
// of the 3×3 matrix m by power iteration from (1, 1, 1). Iteration stops once
// successive estimates are closer than tolerance, or after MaxIterations;
// running out of iterations is not an error and the last estimate is
// returned.
//
// When m maps (1, 1, 1) to zero, as it does for points spread along
// (1, -1, 0), iteration restarts from the largest column of m, which lies in
// its range. If m maps that column to zero as well the column is itself an
// eigenvector and is returned normalized. The result is Zero only when every
// column of m is zero.
func PrincipalComponent(m mat.Matrix, tolerance float64) v3.Vec {
	tolerance = math.Max(numeric.Delta, tolerance)

	if principal := powerIterate(m, v3.Vec{X: 1, Y: 1, Z: 1}, tolerance); principal != geom.Zero {
		return principal
	}

	column, length := geom.Zero, 0.0
	for axis := 0; axis < 3; axis++ {
		c := mulVec(m, geom.WithComponent(geom.Zero, axis, 1))
		if l := numeric.Norm3(c.X, c.Y, c.Z); l > length {
			column, length = c, l
		}
	}
	if length < numeric.Upsilon {
		return geom.Zero
	}

	if principal := powerIterate(m, column, tolerance); principal != geom.Zero {
		return principal
	}
	return geom.Normalize(column, numeric.Upsilon)
}

func powerIterate(m mat.Matrix, seed v3.Vec, tolerance float64) v3.Vec {
	previous := seed
	principal := geom.Normalize(mulVec(m, previous), numeric.Upsilon)
	for i := 1; i < MaxIterations && principal != geom.Zero && !geom.AlmostEquals(previous, principal, tolerance); i++ {
		previous = principal
		principal = geom.Normalize(mulVec(m, previous), numeric.Upsilon)
	}
	return principal
}

// IsPlanar reports whether the covariance matrix cov is singular relative to
// its own scale, which is the case for coplanar, collinear or coincident
// points.
func IsPlanar(cov mat.Matrix, tolerance float64) bool {
	trace := mat.Trace(cov)
	if trace <= 0 {
		return true
	}
	return mat.Det(cov) <= numeric.Clamped(tolerance)*trace*trace*trace
}
