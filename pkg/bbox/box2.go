package bbox

import (
	"fmt"
	"math"

	"github.com/chazu/geokernel/pkg/bounds"
	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/pkg/errors"
)

const (
	AxisU = 0
	AxisV = 1
)

// Box2 is an oriented box on a plane, the UV counterpart of Box3.
type Box2 struct {
	Intervals [2]bounds.Interval
	Frame     geom.Transform2
}

func New2(min, max v2.Vec, frame geom.Transform2) *Box2 {
	return &Box2{
		Intervals: [2]bounds.Interval{
			bounds.New(min.X, max.X),
			bounds.New(min.Y, max.Y),
		},
		Frame: frame,
	}
}

// Empty2 returns a new empty box with Min at +Inf and Max at -Inf.
func Empty2() *Box2 {
	inf := math.Inf(1)
	return New2(v2.Vec{X: inf, Y: inf}, v2.Vec{X: -inf, Y: -inf}, geom.Identity2())
}

// Universe2 returns a new box with every bound disabled.
func Universe2() *Box2 {
	return &Box2{
		Intervals: [2]bounds.Interval{bounds.Universe(), bounds.Universe()},
		Frame:     geom.Identity2(),
	}
}

func (b *Box2) Clone() *Box2 {
	c := *b
	return &c
}

func (b *Box2) CopyFrom(other *Box2) {
	*b = *other
}

func (b *Box2) Min() v2.Vec {
	return v2.Vec{X: b.Intervals[0].Left.Value, Y: b.Intervals[1].Left.Value}
}

func (b *Box2) Max() v2.Vec {
	return v2.Vec{X: b.Intervals[0].Right.Value, Y: b.Intervals[1].Right.Value}
}

func (b *Box2) SetBoundEnabled(bound, axis int, enabled bool) {
	setBoundEnabled(&b.Intervals[axis], bound, enabled)
}

func (b *Box2) IsEmpty() bool { return isEmpty(b.Intervals[:]) }
func (b *Box2) IsUniverse() bool { return isUniverse(b.Intervals[:]) }
func (b *Box2) IsFinite() bool { return isFinite(b.Intervals[:]) }

func (b *Box2) Evaluate(uv v2.Vec) v2.Vec {
	if b.IsEmpty() {
		nan := math.NaN()
		return v2.Vec{X: nan, Y: nan}
	}
	min, max := b.Min(), b.Max()
	return b.Frame.OfPoint(v2.Vec{
		X: numeric.Lerp(min.X, max.X, uv.X),
		Y: numeric.Lerp(min.Y, max.Y, uv.Y),
	})
}

func (b *Box2) LocalCorners() [4]v2.Vec {
	min, max := b.Min(), b.Max()
	return [4]v2.Vec{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}
}

func (b *Box2) Corners() [4]v2.Vec {
	corners := b.LocalCorners()
	for i := range corners {
		corners[i] = b.Frame.OfPoint(corners[i])
	}
	return corners
}

func (b *Box2) Outline() sdf.Box2 {
	inf := math.Inf(1)
	outline := sdf.Box2{Min: v2.Vec{X: inf, Y: inf}, Max: v2.Vec{X: -inf, Y: -inf}}
	if b.IsEmpty() {
		return outline
	}
	for _, c := range b.Corners() {
		outline.Min = v2.Vec{X: numeric.Min(outline.Min.X, c.X), Y: numeric.Min(outline.Min.Y, c.Y)}
		outline.Max = v2.Vec{X: numeric.Max(outline.Max.X, c.X), Y: numeric.Max(outline.Max.Y, c.Y)}
	}
	return outline
}

// Area returns the world area: zero when empty, +Inf when unbounded.
func (b *Box2) Area() float64 {
	return volume(b.Intervals[:], b.Frame.Scale())
}

func (b *Box2) IsInside(point v2.Vec) (bool, error) {
	if b.IsEmpty() {
		return false, nil
	}
	inverse, err := b.Frame.Inverse(numeric.DefaultTolerance)
	if err != nil {
		return false, errors.Wrap(err, "box inside test")
	}
	local := inverse.OfPoint(point)
	return !b.Intervals[0].Clips(local.X) && !b.Intervals[1].Clips(local.Y), nil
}

func (b *Box2) Include(points ...v2.Vec) error {
	if len(points) == 0 {
		return nil
	}
	inverse, err := b.Frame.Inverse(numeric.DefaultTolerance)
	if err != nil {
		return errors.Wrap(err, "box include")
	}
	if b.IsEmpty() {
		p := inverse.OfPoint(points[0])
		b.Intervals = [2]bounds.Interval{bounds.New(p.X, p.X), bounds.New(p.Y, p.Y)}
		points = points[1:]
	}
	for _, point := range points {
		p := inverse.OfPoint(point)
		b.Intervals[0] = b.Intervals[0].Include(p.X)
		b.Intervals[1] = b.Intervals[1].Include(p.Y)
	}
	return nil
}

func (b *Box2) intervals() []bounds.Interval { return b.Intervals[:] }
func (b *Box2) measure() float64 { return b.Area() }
func (b *Box2) clone() orientedBox { return b.Clone() }
func (b *Box2) copyFrom(other orientedBox) { b.CopyFrom(other.(*Box2)) }
func (b *Box2) emptyBox() orientedBox { return Empty2() }
func (b *Box2) universeBox() orientedBox { return Universe2() }

func (b *Box2) sameFrame(other orientedBox) bool {
	return b.Frame.AlmostEquals(other.(*Box2).Frame, numeric.DefaultTolerance)
}

func (b *Box2) localOutline(other orientedBox) ([]bounds.Interval, bool) {
	inverse, ok := b.Frame.TryGetInverse(numeric.DefaultTolerance)
	if !ok {
		return nil, false
	}
	inf := math.Inf(1)
	outline := []bounds.Interval{bounds.New(inf, -inf), bounds.New(inf, -inf)}
	for _, corner := range other.(*Box2).Corners() {
		local := inverse.OfPoint(corner)
		outline[0] = outline[0].Include(local.X)
		outline[1] = outline[1].Include(local.Y)
	}
	return outline, true
}

func (b *Box2) Union(other *Box2) error {
	return union(b, other)
}

func (b *Box2) Intersection(other *Box2) error {
	return intersection(b, other)
}

// PlaneEquations returns the clipping planes of the box lifted to the world
// XY plane. Every normal has a zero Z component.
func (b *Box2) PlaneEquations(offset float64) ([2]AxisPlanes, error) {
	var planes [2]AxisPlanes
	if !b.Frame.IsConformal(numeric.DefaultTolerance) {
		return planes, errors.Wrap(geom.ErrNonConformalFrame, "box plane equations")
	}
	frame := b.Frame.Lift()
	for axis := range b.Intervals {
		planes[axis] = axisPlanes(b.Intervals[axis], frame.Origin, frame.Basis(axis), offset)
	}
	return planes, nil
}

func (b *Box2) String() string {
	return fmt.Sprintf("Box2{U: %v, V: %v}", b.Intervals[0], b.Intervals[1])
}
