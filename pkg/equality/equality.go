// Package equality compares and hashes geometry primitives up to a
// tolerance.
//
// Two primitives are equal when they have the same kind, the same
// boundedness and their canonical samples (see curve.Samples) agree within
// the tolerance. Internal representation does not matter: arcs traced from
// different frames, or closed curves seamed at different points, compare
// equal when they cover the same points.
//
// Hashes bucket each sample coordinate on a grid of pitch 10·tolerance, so
// equal primitives hash alike unless a coordinate lies within tolerance of a
// bucket edge.
package equality

import (
	"math"

	"github.com/chazu/geokernel/pkg/curve"
	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Comparer holds the tolerance used by Equals and Hash. The zero value
// compares with a tolerance of zero, which NewComparer raises to Upsilon.
type Comparer struct {
	Tolerance float64
}

// NewComparer returns a Comparer for tolerance, clamped to Upsilon.
func NewComparer(tolerance float64) Comparer {
	return Comparer{Tolerance: numeric.Clamped(tolerance)}
}

// Default compares with numeric.DefaultTolerance.
func Default() Comparer {
	return NewComparer(numeric.DefaultTolerance)
}

func (c Comparer) tolerance() float64 {
	return numeric.Clamped(c.Tolerance)
}

// samples returns the points that stand for g.
func samples(g curve.Geometry) ([]v3.Vec, error) {
	switch g := g.(type) {
	case curve.Point:
		return []v3.Vec{g.Coord}, nil
	case curve.Vector:
		return []v3.Vec{g.Direction}, nil
	case curve.Line, curve.Arc, curve.Ellipse, curve.HermiteSpline, curve.NurbSpline, curve.CylindricalHelix:
		return curve.Samples(g.(curve.Curve)), nil
	case nil:
		return nil, errors.Wrap(geom.ErrUnsupportedGeometryKind, "nil geometry")
	default:
		return nil, errors.Wrapf(geom.ErrUnsupportedGeometryKind, "%s", g.Kind())
	}
}

func isBound(g curve.Geometry) bool {
	if c, ok := g.(curve.Curve); ok {
		return c.IsBound()
	}
	return true
}

// Equals reports whether a and b are the same primitive up to the tolerance.
// It fails with ErrUnsupportedGeometryKind if either operand is not one of
// the comparable kinds. Comparable primitives of different kinds are never
// equal.
func (c Comparer) Equals(a, b curve.Geometry) (bool, error) {
	sa, err := samples(a)
	if err != nil {
		return false, err
	}
	sb, err := samples(b)
	if err != nil {
		return false, err
	}

	if a.Kind() != b.Kind() || isBound(a) != isBound(b) || len(sa) != len(sb) {
		return false, nil
	}

	tol := c.tolerance()
	for i := range sa {
		if !closeTo(sa[i], sb[i], tol) {
			return false, nil
		}
	}

	if la, ok := a.(curve.Line); ok {
		lb := b.(curve.Line)
		if !la.Direction().AlmostEquals(lb.Direction(), tol) {
			return false, nil
		}
	}
	return true, nil
}

// closeTo compares the L1 distance between a and b against tolerance.
func closeTo(a, b v3.Vec, tolerance float64) bool {
	return math.Abs(a.X-b.X)+math.Abs(a.Y-b.Y)+math.Abs(a.Z-b.Z) <= tolerance
}

// Hash buckets each sample coordinate with numeric.Tolerance.Hash and
// combines the buckets. Equal hashes are only guaranteed for Equals
// geometries whose samples sit away from bucket edges: two geometries within
// tolerance of each other whose samples straddle an edge hash differently
// even though Equals reports true.
func (c Comparer) Hash(g curve.Geometry) (int32, error) {
	s, err := samples(g)
	if err != nil {
		return 0, err
	}

	t := numeric.Tolerance(c.tolerance())
	hashes := make([]int32, 0, 2+len(s))
	hashes = append(hashes, int32(g.Kind()), numeric.BoolHash(isBound(g)))
	for _, p := range s {
		hashes = append(hashes, numeric.CombineHash(t.Hash(p.X), t.Hash(p.Y), t.Hash(p.Z)))
	}
	return numeric.CombineHash(hashes...), nil
}

// Unique returns geometries with duplicates removed, keeping the first of
// each group of equal primitives. Order is preserved. Candidates are only
// compared within a Hash bucket, so near duplicates that straddle a bucket
// edge are both kept.
func (c Comparer) Unique(geometries []curve.Geometry) ([]curve.Geometry, error) {
	buckets := make(map[int32][]curve.Geometry, len(geometries))
	unique := make([]curve.Geometry, 0, len(geometries))
	for _, g := range geometries {
		h, err := c.Hash(g)
		if err != nil {
			return nil, err
		}

		var dup bool
		for _, other := range buckets[h] {
			if dup, err = c.Equals(g, other); err != nil {
				return nil, err
			} else if dup {
				break
			}
		}
		if dup {
			continue
		}
		buckets[h] = append(buckets[h], g)
		unique = append(unique, g)
	}
	return unique, nil
}

// Kinds returns the kinds of geometries that Equals and Hash accept.
func Kinds() []curve.Kind {
	all := lo.Map(lo.Range(int(curve.KindMesh)+1), func(k int, _ int) curve.Kind {
		return curve.Kind(k)
	})
	return lo.Without(all, curve.KindUnknown, curve.KindPolyline, curve.KindMesh)
}
