package equality

import (
	"math"
	"testing"

	"github.com/chazu/geokernel/pkg/curve"
	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterArc() curve.Arc {
	return curve.Arc{XAxis: geom.UnitX, YAxis: geom.UnitY, Radius: 1, EndAngle: math.Pi / 2}
}

// The same quarter arc, with its frame rotated by -90° and its angles
// shifted to compensate.
func reframedQuarterArc() curve.Arc {
	return curve.Arc{XAxis: geom.UnitY, YAxis: geom.UnitX.Neg(), Radius: 1, StartAngle: -math.Pi / 2}
}

func TestNewComparerClampsTolerance(t *testing.T) {
	assert.Equal(t, numeric.Upsilon, NewComparer(0).Tolerance)
	assert.Equal(t, numeric.DefaultTolerance, Default().Tolerance)
}

func TestEquals(t *testing.T) {
	c := Default()
	circle := curve.NewCircle(v3.Vec{X: 1}, geom.UnitZ, 2)
	shifted := circle
	shifted.StartAngle, shifted.EndAngle = 1.5, 1.5+numeric.Tau
	helix := curve.CylindricalHelix{
		XAxis: geom.UnitX, YAxis: geom.UnitY, ZAxis: geom.UnitZ,
		Radius: 1, Pitch: 1, EndAngle: 1.5 * math.Pi, RightHanded: true,
	}
	leftHelix := helix
	leftHelix.RightHanded = false

	tests := []struct {
		name string
		a, b curve.Geometry
		want bool
	}{
		{"same point", curve.Point{Coord: v3.Vec{X: 1, Y: 2, Z: 3}}, curve.Point{Coord: v3.Vec{X: 1, Y: 2, Z: 3}}, true},
		{"point within tolerance", curve.Point{Coord: v3.Vec{X: 1}}, curve.Point{Coord: v3.Vec{X: 1 + 2e-10, Y: 2e-10, Z: 2e-10}}, true},
		{"point L1 beyond tolerance", curve.Point{Coord: v3.Vec{X: 1}}, curve.Point{Coord: v3.Vec{X: 1 + 4e-10, Y: 4e-10, Z: 4e-10}}, false},
		{"point and vector", curve.Point{Coord: v3.Vec{X: 1}}, curve.Vector{Direction: v3.Vec{X: 1}}, false},
		{"vectors", curve.Vector{Direction: v3.Vec{Y: 5}}, curve.Vector{Direction: v3.Vec{Y: 5}}, true},
		{"lines", curve.Line{End: v3.Vec{X: 1}}, curve.Line{End: v3.Vec{X: 1}}, true},
		{"reversed line", curve.Line{End: v3.Vec{X: 1}}, curve.Line{Start: v3.Vec{X: 1}}, false},
		{"reframed arc", quarterArc(), reframedQuarterArc(), true},
		{"arc and its circle", quarterArc(), curve.NewCircle(v3.Vec{}, geom.UnitZ, 1), false},
		{"seam shifted circle", circle, shifted, true},
		{"circles of different radius", circle, curve.NewCircle(v3.Vec{X: 1}, geom.UnitZ, 2.5), false},
		{"round ellipse is not an arc", curve.Ellipse{XAxis: geom.UnitX, YAxis: geom.UnitY, RadiusX: 1, RadiusY: 1, EndAngle: numeric.Tau}, curve.NewCircle(v3.Vec{}, geom.UnitZ, 1), false},
		{"helix handedness", helix, leftHelix, false},
		{"helices", helix, helix, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Equals(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := c.Equals(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, back, "symmetry")

			if got {
				ha, err := c.Hash(tt.a)
				require.NoError(t, err)
				hb, err := c.Hash(tt.b)
				require.NoError(t, err)
				assert.Equal(t, ha, hb, "hash contract")
			}
		})
	}
}

func TestSplineEquality(t *testing.T) {
	c := Default()
	pts := []v3.Vec{{}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 4}}
	nurbs := curve.NurbSpline{Degree: 3, ControlPoints: pts, Knots: curve.ClampedKnots(4, 3)}
	scaled := nurbs
	scaled.Knots = []float64{0, 0, 0, 0, 10, 10, 10, 10}
	weighted := nurbs
	weighted.Weights = []float64{1, 3, 1, 1}

	eq, err := c.Equals(nurbs, scaled)
	require.NoError(t, err)
	assert.True(t, eq, "knot rescaling keeps the shape")

	eq, err = c.Equals(nurbs, weighted)
	require.NoError(t, err)
	assert.False(t, eq)

	hermite := curve.HermiteSpline{
		Points:   []v3.Vec{{}, {X: 2}},
		Tangents: []v3.Vec{{X: 2}, {X: 2}},
	}
	same := hermite
	same.Parameters = []float64{3, 4}
	eq, err = c.Equals(hermite, same)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestUnsupportedKinds(t *testing.T) {
	c := Default()
	point := curve.Point{}
	for _, g := range []curve.Geometry{curve.Polyline{}, curve.Mesh{}, nil} {
		_, err := c.Equals(point, g)
		assert.True(t, errors.Is(err, geom.ErrUnsupportedGeometryKind))

		_, err = c.Equals(g, point)
		assert.True(t, errors.Is(err, geom.ErrUnsupportedGeometryKind))

		_, err = c.Hash(g)
		assert.True(t, errors.Is(err, geom.ErrUnsupportedGeometryKind))
	}
}

func TestHashSeparatesKinds(t *testing.T) {
	c := Default()
	hp, err := c.Hash(curve.Point{Coord: v3.Vec{X: 1}})
	require.NoError(t, err)
	hv, err := c.Hash(curve.Vector{Direction: v3.Vec{X: 1}})
	require.NoError(t, err)
	assert.NotEqual(t, hp, hv)
}

func TestUnique(t *testing.T) {
	c := Default()
	in := []curve.Geometry{
		quarterArc(),
		curve.Point{Coord: v3.Vec{Z: 1}},
		reframedQuarterArc(),
		curve.Point{Coord: v3.Vec{Z: 1}},
		curve.Line{End: v3.Vec{Y: 1}},
	}
	out, err := c.Unique(in)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, curve.KindArc, out[0].Kind())
	assert.Equal(t, curve.KindPoint, out[1].Kind())
	assert.Equal(t, curve.KindLine, out[2].Kind())

	_, err = c.Unique([]curve.Geometry{curve.Mesh{}})
	assert.True(t, errors.Is(err, geom.ErrUnsupportedGeometryKind))
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 8)
	assert.NotContains(t, kinds, curve.KindMesh)
	assert.Contains(t, kinds, curve.KindCylindricalHelix)
}
