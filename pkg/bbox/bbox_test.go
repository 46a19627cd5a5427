package bbox

import (
	"math"
	"testing"

	"github.com/chazu/geokernel/pkg/bounds"
	"github.com/chazu/geokernel/pkg/geom"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func cube(min, max float64) *Box3 {
	return New3(v3.Vec{X: min, Y: min, Z: min}, v3.Vec{X: max, Y: max, Z: max}, geom.Identity())
}

func rotatedZ(angle float64, origin v3.Vec) geom.Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return geom.Transform{
		Origin: origin,
		BasisX: v3.Vec{X: c, Y: s},
		BasisY: v3.Vec{X: -s, Y: c},
		BasisZ: geom.BasisZ,
	}
}

func assertSameIntervals(t *testing.T, want, got *Box3) {
	t.Helper()
	for axis := range want.Intervals {
		assert.True(t, want.Intervals[axis].Equal(got.Intervals[axis]), "axis %d: want %v got %v", axis, want.Intervals[axis], got.Intervals[axis])
	}
}

func TestSentinels(t *testing.T) {
	empty := Empty3()
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsUniverse())
	assert.Equal(t, 0.0, empty.Volume())

	universe := Universe3()
	assert.True(t, universe.IsUniverse())
	assert.False(t, universe.IsEmpty())
	assert.True(t, math.IsInf(universe.Volume(), 1))

	// Each call returns a fresh instance.
	empty.Intervals[0] = bounds.New(0, 1)
	assert.True(t, Empty3().IsEmpty())
}

func TestEmptyUV(t *testing.T) {
	empty := Empty2()
	inf := math.Inf(1)
	assert.Equal(t, v2.Vec{X: inf, Y: inf}, empty.Min())
	assert.Equal(t, v2.Vec{X: -inf, Y: -inf}, empty.Max())
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsUniverse())
	assert.True(t, Universe2().IsUniverse())
}

func TestDisjointBoxesSameFrame(t *testing.T) {
	a, b := cube(0, 1), cube(2, 3)

	union, err := Union(a, b)
	require.NoError(t, err)
	assertSameIntervals(t, cube(0, 3), union)

	intersection, err := Intersection(a, b)
	require.NoError(t, err)
	assert.True(t, intersection.IsEmpty())
	for axis := range intersection.Intervals {
		assert.True(t, intersection.Intervals[axis].IsInverted())
	}

	// The package functions leave their inputs alone.
	assertSameIntervals(t, cube(0, 1), a)
	assertSameIntervals(t, cube(2, 3), b)
}

func TestIdempotence(t *testing.T) {
	boxes := map[string]*Box3{
		"aligned": cube(-1, 2),
		"rotated": New3(v3.Vec{X: -1, Y: 0, Z: 2}, v3.Vec{X: 4, Y: 1, Z: 3}, rotatedZ(0.7, v3.Vec{X: 3})),
		"half open": func() *Box3 {
			b := cube(0, 1)
			b.SetBoundEnabled(1, AxisY, false)
			return b
		}(),
	}
	for name, box := range boxes {
		t.Run(name, func(t *testing.T) {
			u := box.Clone()
			require.NoError(t, u.Union(box))
			assertSameIntervals(t, box, u)

			i := box.Clone()
			require.NoError(t, i.Intersection(box))
			assertSameIntervals(t, box, i)
		})
	}
}

func TestIdentityAndAbsorption(t *testing.T) {
	boxes := []*Box3{
		cube(0, 1),
		New3(v3.Vec{}, v3.Vec{X: 1, Y: 2, Z: 3}, rotatedZ(1.1, v3.Vec{Y: -4})),
		Empty3(),
		Universe3(),
	}
	for _, box := range boxes {
		if !box.IsEmpty() {
			u := box.Clone()
			require.NoError(t, u.Union(Empty3()))
			assertSameIntervals(t, box, u)
			assert.True(t, u.Frame.AlmostEquals(box.Frame, tol))

			i := box.Clone()
			require.NoError(t, i.Intersection(Universe3()))
			assertSameIntervals(t, box, i)
		}

		u := box.Clone()
		require.NoError(t, u.Union(Universe3()))
		assert.True(t, u.IsUniverse())

		i := box.Clone()
		require.NoError(t, i.Intersection(Empty3()))
		assert.True(t, i.IsEmpty())
	}

	e := Empty3()
	require.NoError(t, e.Union(cube(1, 2)))
	assertSameIntervals(t, cube(1, 2), e)

	all := Universe3()
	require.NoError(t, all.Intersection(cube(1, 2)))
	assertSameIntervals(t, cube(1, 2), all)
}

func TestUnionPicksSmallerCandidate(t *testing.T) {
	big := cube(0, 10)
	small := New3(v3.Vec{X: -1, Y: -1, Z: -1}, v3.Vec{X: 1, Y: 1, Z: 1}, rotatedZ(math.Pi/4, v3.Vec{X: 5, Y: 5, Z: 5}))

	got, err := Union(big, small)
	require.NoError(t, err)
	assert.True(t, got.Frame.AlmostEquals(geom.Identity(), tol))
	assert.InDelta(t, 1000.0, got.Volume(), 1e-9)

	got, err = Union(small, big)
	require.NoError(t, err)
	assert.True(t, got.Frame.AlmostEquals(geom.Identity(), tol), "the frame of the smaller candidate wins")
	assert.InDelta(t, 1000.0, got.Volume(), 1e-9)
}

func TestUnionCoversBothOperands(t *testing.T) {
	a := New3(v3.Vec{}, v3.Vec{X: 2, Y: 1, Z: 1}, rotatedZ(0.3, v3.Vec{}))
	b := New3(v3.Vec{}, v3.Vec{X: 1, Y: 3, Z: 1}, rotatedZ(-0.9, v3.Vec{X: 4, Y: 1}))

	got, err := Union(a, b)
	require.NoError(t, err)
	for _, box := range []*Box3{a, b} {
		for _, uvw := range []v3.Vec{{X: 0.01, Y: 0.01, Z: 0.01}, {X: 0.99, Y: 0.99, Z: 0.99}, {X: 0.99, Y: 0.01, Z: 0.5}, {X: 0.01, Y: 0.99, Z: 0.5}} {
			inside, err := got.IsInside(box.Evaluate(uvw))
			require.NoError(t, err)
			assert.True(t, inside)
		}
	}
	assert.GreaterOrEqual(t, got.Volume(), math.Max(a.Volume(), b.Volume()))
}

func TestIntersectionPicksSmallerCandidate(t *testing.T) {
	big := cube(0, 10)
	small := New3(v3.Vec{X: -1, Y: -1, Z: -1}, v3.Vec{X: 1, Y: 1, Z: 1}, rotatedZ(math.Pi/4, v3.Vec{X: 5, Y: 5, Z: 5}))

	got, err := Intersection(big, small)
	require.NoError(t, err)
	assert.True(t, got.Frame.AlmostEquals(small.Frame, tol))
	assert.InDelta(t, 8.0, got.Volume(), 1e-9)
}

func TestDisjointRotatedIntersectionIsEmpty(t *testing.T) {
	a := cube(0, 1)
	b := New3(v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1}, rotatedZ(0.5, v3.Vec{X: 10}))
	got, err := Intersection(a, b)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestUnboundedOperandsWithDifferentFrames(t *testing.T) {
	a := cube(0, 1)
	a.SetBoundEnabled(1, AxisX, false)
	b := New3(v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1}, rotatedZ(0.5, v3.Vec{}))
	b.SetBoundEnabled(0, AxisZ, false)

	u, err := Union(a, b)
	require.NoError(t, err)
	assert.True(t, u.IsUniverse())

	i, err := Intersection(a, b)
	require.NoError(t, err)
	assertSameIntervals(t, a, i)
}

func TestUnionCoversHalfOpenOperand(t *testing.T) {
	a := cube(0, 1)
	a.SetBoundEnabled(1, AxisX, false)
	b := New3(v3.Vec{X: 2}, v3.Vec{X: 3, Y: 1, Z: 1}, geom.Identity())

	u, err := Union(a, b)
	require.NoError(t, err)

	far := v3.Vec{X: 10, Y: 0.5, Z: 0.5}
	inA, err := a.IsInside(far)
	require.NoError(t, err)
	require.True(t, inA)
	inU, err := u.IsInside(far)
	require.NoError(t, err)
	assert.True(t, inU, "union must contain every point of its operands")

	assert.True(t, math.IsInf(u.Volume(), 1))
	axes, err := u.PlaneEquations(0)
	require.NoError(t, err)
	assert.Nil(t, axes[AxisX].Max, "no plane at infinity")
	assert.Len(t, Planes(axes[:]), 5)

	flipped, err := Union(b, a)
	require.NoError(t, err)
	inU, err = flipped.IsInside(far)
	require.NoError(t, err)
	assert.True(t, inU)
}

func TestBox2UnionCoversHalfOpenOperand(t *testing.T) {
	a := square(0, 1, geom.Identity2())
	a.SetBoundEnabled(0, AxisV, false)
	b := square(2, 3, geom.Identity2())

	require.NoError(t, b.Union(a))
	inside, err := b.IsInside(v2.Vec{X: 0.5, Y: -50})
	require.NoError(t, err)
	assert.True(t, inside)
	assert.True(t, math.IsInf(b.Area(), 1))
}

func TestDegenerateFramesCannotBeCombined(t *testing.T) {
	flat := func(origin v3.Vec) *Box3 {
		return New3(v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1}, geom.Transform{Origin: origin, BasisX: geom.BasisX, BasisY: geom.BasisY})
	}
	_, err := Union(flat(v3.Vec{}), flat(v3.Vec{X: 5}))
	assert.True(t, errors.Is(err, geom.ErrDegenerateFrame))

	_, err = flat(v3.Vec{}).IsInside(v3.Vec{})
	assert.True(t, errors.Is(err, geom.ErrDegenerateFrame))

	err = flat(v3.Vec{}).Include(v3.Vec{})
	assert.True(t, errors.Is(err, geom.ErrDegenerateFrame))
}

func TestIsInside(t *testing.T) {
	box := New3(v3.Vec{}, v3.Vec{X: 2, Y: 1, Z: 1}, rotatedZ(math.Pi/2, v3.Vec{X: 1}))

	tests := []struct {
		name  string
		point v3.Vec
		want  bool
	}{
		{"center", v3.Vec{X: 0.5, Y: 1, Z: 0.5}, true},
		{"origin corner", v3.Vec{X: 1}, true},
		{"beyond local x", v3.Vec{X: 0.5, Y: 2.5, Z: 0.5}, false},
		{"behind local y", v3.Vec{X: 1.5, Y: 1, Z: 0.5}, false},
		{"above", v3.Vec{X: 0.5, Y: 1, Z: 1.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := box.IsInside(tt.point)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	box.SetBoundEnabled(1, AxisZ, false)
	got, err := box.IsInside(v3.Vec{X: 0.5, Y: 1, Z: 1e6})
	require.NoError(t, err)
	assert.True(t, got, "a disabled bound never rejects")
	assert.False(t, box.BoundEnabled(1, AxisZ))

	got, err = Empty3().IsInside(v3.Vec{})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestInclude(t *testing.T) {
	box := Empty3()
	require.NoError(t, box.Include(v3.Vec{X: 1, Y: 2, Z: 3}, v3.Vec{X: -1, Y: 5, Z: 0}))
	assertSameIntervals(t, New3(v3.Vec{X: -1, Y: 2, Z: 0}, v3.Vec{X: 1, Y: 5, Z: 3}, geom.Identity()), box)
	require.NoError(t, box.Include())
}

func TestEvaluateCornersOutline(t *testing.T) {
	box := New3(v3.Vec{}, v3.Vec{X: 2, Y: 2, Z: 2}, geom.Translation(v3.Vec{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, v3.Vec{X: 2, Y: 2, Z: 2}, box.Evaluate(v3.Vec{X: 0.5, Y: 0.5, Z: 0.5}))
	assert.True(t, math.IsNaN(Empty3().Evaluate(v3.Vec{}).X))

	corners := box.Corners()
	assert.Equal(t, v3.Vec{X: 1, Y: 1, Z: 1}, corners[0])
	assert.Equal(t, v3.Vec{X: 3, Y: 3, Z: 3}, corners[6])

	rotated := New3(v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1}, rotatedZ(math.Pi/4, v3.Vec{}))
	outline := rotated.Outline()
	assert.InDelta(t, -math.Sqrt2/2, outline.Min.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, outline.Max.X, 1e-12)
	assert.InDelta(t, 0.0, outline.Min.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2, outline.Max.Y, 1e-12)

	assert.True(t, FromOutline(outline).Frame.AlmostEquals(geom.Identity(), 0))
}

func TestVolumeFollowsFrameScale(t *testing.T) {
	box := New3(v3.Vec{}, v3.Vec{X: 1, Y: 2, Z: 3}, geom.Scaling(2))
	assert.InDelta(t, 48.0, box.Volume(), 1e-12)
}

func TestPlaneEquationsOffset(t *testing.T) {
	box := cube(-1, 1)
	planes, err := box.PlaneEquations(0.5)
	require.NoError(t, err)

	maxX := planes[AxisX].Max
	require.NotNil(t, maxX)
	assert.InDelta(t, -1.0, maxX.Normal.Direction().X, 1e-15)
	assert.InDelta(t, 0.0, maxX.Normal.Direction().Y, 1e-15)
	assert.InDelta(t, 0.0, maxX.Normal.Direction().Z, 1e-15)
	assert.InDelta(t, -0.5, maxX.SignedDistanceTo(v3.Vec{X: 1}), 1e-12)
}

func TestPlaneRoundTrip(t *testing.T) {
	frames := map[string]geom.Transform{
		"identity": geom.Identity(),
		"rotated":  rotatedZ(0.4, v3.Vec{X: 2, Y: -1, Z: 3}),
		"scaled":   geom.Scaling(2),
	}
	for name, frame := range frames {
		t.Run(name, func(t *testing.T) {
			box := New3(v3.Vec{X: -1, Y: 0, Z: 1}, v3.Vec{X: 2, Y: 1, Z: 4}, frame)
			axes, err := box.PlaneEquations(0.1)
			require.NoError(t, err)

			planes := Planes(axes[:])
			require.Len(t, planes, 6)

			corners := box.Corners()
			center := box.Evaluate(v3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
			for _, plane := range planes {
				lo := plane.SignedDistanceTo(corners[0])
				hi := plane.SignedDistanceTo(corners[6])
				assert.Less(t, lo*hi, 0.0, "opposite corners straddle %v", plane)
				assert.Greater(t, plane.SignedDistanceTo(center), 0.0)
			}
		})
	}
}

func TestPlaneEquationsSkipDisabledBounds(t *testing.T) {
	box := cube(0, 1)
	box.SetBoundEnabled(0, AxisY, false)
	axes, err := box.PlaneEquations(0)
	require.NoError(t, err)
	assert.Nil(t, axes[AxisY].Min)
	assert.NotNil(t, axes[AxisY].Max)
	assert.Len(t, Planes(axes[:]), 5)
}

func TestPlaneEquationsRequireConformalFrame(t *testing.T) {
	frame := geom.Identity()
	frame.BasisY = v3.Vec{X: 0.5, Y: 1}
	box := New3(v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1}, frame)
	_, err := box.PlaneEquations(0)
	assert.True(t, errors.Is(err, geom.ErrNonConformalFrame))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, cube(0, 1).Validate())
	assert.NoError(t, Empty3().Validate())
	box := cube(0, 1)
	box.Intervals[AxisZ] = bounds.Empty()
	assert.True(t, errors.Is(box.Validate(), geom.ErrInvalidInterval))
}

func TestCloneIsIndependent(t *testing.T) {
	a := cube(0, 1)
	b := a.Clone()
	require.NoError(t, b.Union(cube(5, 6)))
	assertSameIntervals(t, cube(0, 1), a)

	a.CopyFrom(b)
	assertSameIntervals(t, cube(0, 6), a)
}

func square(min, max float64, frame geom.Transform2) *Box2 {
	return New2(v2.Vec{X: min, Y: min}, v2.Vec{X: max, Y: max}, frame)
}

func TestBox2SetOperations(t *testing.T) {
	a, b := square(0, 1, geom.Identity2()), square(2, 3, geom.Identity2())

	u := a.Clone()
	require.NoError(t, u.Union(b))
	assert.Equal(t, v2.Vec{X: 0, Y: 0}, u.Min())
	assert.Equal(t, v2.Vec{X: 3, Y: 3}, u.Max())

	i := a.Clone()
	require.NoError(t, i.Intersection(b))
	assert.True(t, i.IsEmpty())

	e := Empty2()
	require.NoError(t, e.Union(a))
	assert.Equal(t, a.Intervals, e.Intervals)

	all := Universe2()
	require.NoError(t, all.Intersection(a))
	assert.Equal(t, a.Intervals, all.Intervals)

	require.NoError(t, a.Union(Universe2()))
	assert.True(t, a.IsUniverse())
}

func TestBox2RotatedUnion(t *testing.T) {
	big := square(0, 10, geom.Identity2())
	c, s := math.Cos(math.Pi/4), math.Sin(math.Pi/4)
	small := square(-1, 1, geom.Transform2{Origin: v2.Vec{X: 5, Y: 5}, BasisU: v2.Vec{X: c, Y: s}, BasisV: v2.Vec{X: -s, Y: c}})

	u := small.Clone()
	require.NoError(t, u.Union(big))
	assert.InDelta(t, 100.0, u.Area(), 1e-9)

	i := big.Clone()
	require.NoError(t, i.Intersection(small))
	assert.InDelta(t, 4.0, i.Area(), 1e-9)
}

func TestBox2Queries(t *testing.T) {
	box := square(0, 2, geom.Transform2{Origin: v2.Vec{X: 1}, BasisU: v2.Vec{Y: 1}, BasisV: v2.Vec{X: -1}})

	inside, err := box.IsInside(v2.Vec{X: 0, Y: 1})
	require.NoError(t, err)
	assert.True(t, inside)
	inside, err = box.IsInside(v2.Vec{X: 2, Y: 1})
	require.NoError(t, err)
	assert.False(t, inside)

	assert.Len(t, box.Corners(), 4)
	outline := box.Outline()
	assert.InDelta(t, -1.0, outline.Min.X, 1e-12)
	assert.InDelta(t, 2.0, outline.Max.Y, 1e-12)
	assert.InDelta(t, 4.0, box.Area(), 1e-12)

	center := box.Evaluate(v2.Vec{X: 0.5, Y: 0.5})
	assert.InDelta(t, 0.0, center.X, 1e-12)
	assert.InDelta(t, 1.0, center.Y, 1e-12)

	e := Empty2()
	require.NoError(t, e.Include(v2.Vec{X: 1, Y: 1}, v2.Vec{X: -1, Y: 3}))
	assert.Equal(t, v2.Vec{X: -1, Y: 1}, e.Min())
	assert.Equal(t, v2.Vec{X: 1, Y: 3}, e.Max())
}

func TestBox2PlaneEquations(t *testing.T) {
	box := square(-1, 1, geom.Identity2())
	axes, err := box.PlaneEquations(0)
	require.NoError(t, err)
	planes := Planes(axes[:])
	require.Len(t, planes, 4)
	for _, plane := range planes {
		assert.Equal(t, 0.0, plane.C())
		assert.InDelta(t, 1.0, plane.SignedDistanceTo(v3.Vec{}), 1e-12)
	}

	skewed := square(0, 1, geom.Transform2{BasisU: v2.Vec{X: 1}, BasisV: v2.Vec{X: 1, Y: 1}})
	_, err = skewed.PlaneEquations(0)
	assert.True(t, errors.Is(err, geom.ErrNonConformalFrame))
}
