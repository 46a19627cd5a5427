// Package bbox implements oriented bounding boxes: per-axis bounding
// intervals expressed in an arbitrary affine frame.
//
// Boxes are mutated in place by Union, Intersection, Include and CopyFrom.
// A *Box3 must not be mutated from more than one goroutine at a time;
// distinct boxes share no state. The package level Union and Intersection
// functions clone their first operand and leave both inputs untouched.
//
// When the two operands of Union or Intersection carry different frames the
// result is not the minimal oriented box. Both operands are tried as the
// result frame and the candidate with the smaller world volume wins, ties
// going to the receiver's frame.
package bbox

import (
	"fmt"
	"math"

	"github.com/chazu/geokernel/pkg/bounds"
	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// Box3 is an oriented box in space. Intervals are given in the local
// coordinates of Frame.
type Box3 struct {
	Intervals [3]bounds.Interval
	Frame     geom.Transform
}

// New3 returns the box [min, max] in frame with every bound enabled.
func New3(min, max v3.Vec, frame geom.Transform) *Box3 {
	return &Box3{
		Intervals: [3]bounds.Interval{
			bounds.New(min.X, max.X),
			bounds.New(min.Y, max.Y),
			bounds.New(min.Z, max.Z),
		},
		Frame: frame,
	}
}

// FromOutline returns the world aligned box covering outline.
func FromOutline(outline sdf.Box3) *Box3 {
	return New3(outline.Min, outline.Max, geom.Identity())
}

// Empty3 returns a new empty box: every interval is inverted from +Inf to
// -Inf and the frame is the identity.
func Empty3() *Box3 {
	inf := math.Inf(1)
	return New3(
		v3.Vec{X: inf, Y: inf, Z: inf},
		v3.Vec{X: -inf, Y: -inf, Z: -inf},
		geom.Identity(),
	)
}

// Universe3 returns a new box with every bound disabled.
func Universe3() *Box3 {
	return &Box3{
		Intervals: [3]bounds.Interval{bounds.Universe(), bounds.Universe(), bounds.Universe()},
		Frame:     geom.Identity(),
	}
}

func (b *Box3) Clone() *Box3 {
	c := *b
	return &c
}

func (b *Box3) CopyFrom(other *Box3) {
	*b = *other
}

// Min returns the local Left values of the intervals.
func (b *Box3) Min() v3.Vec {
	return v3.Vec{X: b.Intervals[0].Left.Value, Y: b.Intervals[1].Left.Value, Z: b.Intervals[2].Left.Value}
}

// Max returns the local Right values of the intervals.
func (b *Box3) Max() v3.Vec {
	return v3.Vec{X: b.Intervals[0].Right.Value, Y: b.Intervals[1].Right.Value, Z: b.Intervals[2].Right.Value}
}

// SetBoundEnabled switches one bound on or off. bound is 0 for the min side
// and 1 for the max side.
func (b *Box3) SetBoundEnabled(bound, axis int, enabled bool) {
	setBoundEnabled(&b.Intervals[axis], bound, enabled)
}

func (b *Box3) BoundEnabled(bound, axis int) bool {
	if bound == 0 {
		return b.Intervals[axis].Left.IsEnabled()
	}
	return b.Intervals[axis].Right.IsEnabled()
}

// IsEmpty reports whether an axis with both bounds enabled is inverted.
func (b *Box3) IsEmpty() bool {
	return isEmpty(b.Intervals[:])
}

// IsUniverse reports whether every axis is unbounded on both sides.
func (b *Box3) IsUniverse() bool {
	return isUniverse(b.Intervals[:])
}

// IsFinite reports whether every bound is enabled at a finite value.
func (b *Box3) IsFinite() bool {
	return isFinite(b.Intervals[:])
}

// Validate rejects boxes with an interval that cannot be ordered.
func (b *Box3) Validate() error {
	for axis, interval := range b.Intervals {
		if err := interval.Validate(); err != nil {
			return errors.Wrapf(err, "axis %d", axis)
		}
	}
	return nil
}

// Evaluate maps a normalized coordinate, {0,0,0} at Min and {1,1,1} at Max,
// to world space. It returns NaN for an empty box.
func (b *Box3) Evaluate(uvw v3.Vec) v3.Vec {
	if b.IsEmpty() {
		return geom.NaN()
	}
	min, max := b.Min(), b.Max()
	local := v3.Vec{
		X: numeric.Lerp(min.X, max.X, uvw.X),
		Y: numeric.Lerp(min.Y, max.Y, uvw.Y),
		Z: numeric.Lerp(min.Z, max.Z, uvw.Z),
	}
	return b.Frame.OfPoint(local)
}

// LocalCorners returns the eight corners in frame coordinates, bottom face
// first, counter-clockwise from Min.
func (b *Box3) LocalCorners() [8]v3.Vec {
	min, max := b.Min(), b.Max()
	return [8]v3.Vec{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
}

// Corners returns the eight corners in world coordinates, in LocalCorners
// order.
func (b *Box3) Corners() [8]v3.Vec {
	corners := b.LocalCorners()
	for i := range corners {
		corners[i] = b.Frame.OfPoint(corners[i])
	}
	return corners
}

// Outline returns the world axis aligned box that contains every corner.
func (b *Box3) Outline() sdf.Box3 {
	inf := math.Inf(1)
	outline := sdf.Box3{
		Min: v3.Vec{X: inf, Y: inf, Z: inf},
		Max: v3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
	if b.IsEmpty() {
		return outline
	}
	for _, c := range b.Corners() {
		outline.Min = v3.Vec{X: numeric.Min(outline.Min.X, c.X), Y: numeric.Min(outline.Min.Y, c.Y), Z: numeric.Min(outline.Min.Z, c.Z)}
		outline.Max = v3.Vec{X: numeric.Max(outline.Max.X, c.X), Y: numeric.Max(outline.Max.Y, c.Y), Z: numeric.Max(outline.Max.Z, c.Z)}
	}
	return outline
}

// Volume returns the world volume: zero when empty, +Inf when unbounded.
func (b *Box3) Volume() float64 {
	return volume(b.Intervals[:], b.Frame.Scale())
}

// IsInside reports whether point, in world coordinates, passes every enabled
// bound. It fails with geom.ErrDegenerateFrame when the frame has no inverse.
func (b *Box3) IsInside(point v3.Vec) (bool, error) {
	if b.IsEmpty() {
		return false, nil
	}
	inverse, err := b.Frame.Inverse(numeric.DefaultTolerance)
	if err != nil {
		return false, errors.Wrap(err, "box inside test")
	}
	local := inverse.OfPoint(point)
	for axis := range b.Intervals {
		if b.Intervals[axis].Clips(geom.Component(local, axis)) {
			return false, nil
		}
	}
	return true, nil
}

// Include grows the box, in its own frame, until it contains every point.
// An empty box collapses onto the first point.
func (b *Box3) Include(points ...v3.Vec) error {
	if len(points) == 0 {
		return nil
	}
	inverse, err := b.Frame.Inverse(numeric.DefaultTolerance)
	if err != nil {
		return errors.Wrap(err, "box include")
	}
	if b.IsEmpty() {
		p := inverse.OfPoint(points[0])
		for axis := range b.Intervals {
			b.Intervals[axis] = bounds.New(geom.Component(p, axis), geom.Component(p, axis))
		}
		points = points[1:]
	}
	for _, point := range points {
		b.includeLocal(inverse.OfPoint(point))
	}
	return nil
}

func (b *Box3) includeLocal(p v3.Vec) {
	for axis := range b.Intervals {
		b.Intervals[axis] = b.Intervals[axis].Include(geom.Component(p, axis))
	}
}

func (b *Box3) intervals() []bounds.Interval { return b.Intervals[:] }
func (b *Box3) measure() float64 { return b.Volume() }
func (b *Box3) clone() orientedBox { return b.Clone() }
func (b *Box3) copyFrom(other orientedBox) { b.CopyFrom(other.(*Box3)) }
func (b *Box3) emptyBox() orientedBox { return Empty3() }
func (b *Box3) universeBox() orientedBox { return Universe3() }

func (b *Box3) sameFrame(other orientedBox) bool {
	return b.Frame.AlmostEquals(other.(*Box3).Frame, numeric.DefaultTolerance)
}

func (b *Box3) localOutline(other orientedBox) ([]bounds.Interval, bool) {
	inverse, ok := b.Frame.TryGetInverse(numeric.DefaultTolerance)
	if !ok {
		return nil, false
	}
	inf := math.Inf(1)
	outline := []bounds.Interval{bounds.New(inf, -inf), bounds.New(inf, -inf), bounds.New(inf, -inf)}
	for _, corner := range other.(*Box3).Corners() {
		local := inverse.OfPoint(corner)
		for axis := range outline {
			outline[axis] = outline[axis].Include(geom.Component(local, axis))
		}
	}
	return outline, true
}

// Union grows b to also cover other. Empty is the identity and Universe
// absorbs.
func (b *Box3) Union(other *Box3) error {
	return union(b, other)
}

// Intersection shrinks b to the part it shares with other. Universe is the
// identity and Empty absorbs. Disjoint boxes leave inverted intervals, which
// IsEmpty reports.
func (b *Box3) Intersection(other *Box3) error {
	return intersection(b, other)
}

// AxisPlanes holds the clipping planes of one axis. A nil plane means the
// bound is disabled or sits at infinity.
type AxisPlanes struct {
	Min *geom.PlaneEquation
	Max *geom.PlaneEquation
}

// PlaneEquations returns a plane for every enabled bound. Normals point into
// the box, so interior points have a positive signed distance. A positive
// offset moves every plane inwards by offset, a negative one outwards.
func (b *Box3) PlaneEquations(offset float64) ([3]AxisPlanes, error) {
	var planes [3]AxisPlanes
	if !b.Frame.IsConformal(numeric.DefaultTolerance) {
		return planes, errors.Wrap(geom.ErrNonConformalFrame, "box plane equations")
	}
	for axis := range b.Intervals {
		planes[axis] = axisPlanes(
			b.Intervals[axis],
			b.Frame.Origin,
			b.Frame.Basis(axis),
			offset,
		)
	}
	return planes, nil
}

func axisPlanes(interval bounds.Interval, origin, basis v3.Vec, offset float64) AxisPlanes {
	var planes AxisPlanes
	normal := geom.ToUnit(basis)
	if interval.Left.IsEnabled() && numeric.IsFinite(interval.Left.Value) {
		plane := geom.NewPlaneEquation(origin.Add(basis.MulScalar(interval.Left.Value)), normal)
		plane.Offset -= offset
		planes.Min = &plane
	}
	if interval.Right.IsEnabled() && numeric.IsFinite(interval.Right.Value) {
		plane := geom.NewPlaneEquation(origin.Add(basis.MulScalar(interval.Right.Value)), normal.Neg())
		plane.Offset -= offset
		planes.Max = &plane
	}
	return planes
}

// Planes flattens the enabled planes, axis by axis, min side first.
func Planes(axes []AxisPlanes) []geom.PlaneEquation {
	var planes []geom.PlaneEquation
	for _, axis := range axes {
		if axis.Min != nil {
			planes = append(planes, *axis.Min)
		}
		if axis.Max != nil {
			planes = append(planes, *axis.Max)
		}
	}
	return planes
}

func (b *Box3) String() string {
	return fmt.Sprintf("Box3{X: %v, Y: %v, Z: %v}", b.Intervals[0], b.Intervals[1], b.Intervals[2])
}

// Union returns a new box covering a and b.
func Union(a, b *Box3) (*Box3, error) {
	result := a.Clone()
	if err := result.Union(b); err != nil {
		return nil, err
	}
	return result, nil
}

// Intersection returns a new box bounding the overlap of a and b.
func Intersection(a, b *Box3) (*Box3, error) {
	result := a.Clone()
	if err := result.Intersection(b); err != nil {
		return nil, err
	}
	return result, nil
}
