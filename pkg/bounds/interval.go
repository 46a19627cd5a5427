package bounds

import (
	"fmt"
	"math"

	"github.com/chazu/geokernel/pkg/geom"
	"github.com/chazu/geokernel/pkg/numeric"
	"github.com/pkg/errors"
)

const intervalHashSeed int32 = -1051820395

// Interval is a pair of bounds. Left and Right keep the order they were
// given in, so an interval may be increasing or decreasing.
type Interval struct {
	Left  Bound
	Right Bound
}

// New returns the enabled interval [left, right].
func New(left, right float64) Interval {
	return Interval{Left: At(left), Right: At(right)}
}

// Universe returns the interval covering every real number.
func Universe() Interval {
	return Interval{Left: NoMin(), Right: NoMax()}
}

// Empty returns the unordered interval. It is neither increasing, decreasing
// nor degenerate.
func Empty() Interval {
	nan := math.NaN()
	return New(nan, nan)
}

// Min returns the bound with the lower Key, ignoring NaN.
func (i Interval) Min() Bound { return lowest(i.Left, i.Right) }

// Max returns the bound with the greater Key, ignoring NaN.
func (i Interval) Max() Bound { return highest(i.Right, i.Left) }

func (i Interval) Mean() float64      { return numeric.Mean(i.Left.Value, i.Right.Value) }
func (i Interval) Deviation() float64 { return numeric.Deviation(i.Left.Value, i.Right.Value) }

// Length is |Right - Left| for finite intervals and +Inf otherwise.
func (i Interval) Length() float64 {
	if !i.IsFinite() {
		return math.Inf(+1)
	}
	return math.Abs(i.Right.Value - i.Left.Value)
}

func (i Interval) IsIncreasing() bool { return i.Left.Key() < i.Right.Key() }
func (i Interval) IsDecreasing() bool { return i.Left.Key() > i.Right.Key() }
func (i Interval) IsDegenerate() bool { return i.Left.Key() == i.Right.Key() }
func (i Interval) IsProper() bool     { return i.IsIncreasing() || i.IsDecreasing() }

// IsEmpty reports whether the ends cannot be ordered, which happens when one
// of them is NaN.
func (i Interval) IsEmpty() bool { return !i.IsDegenerate() && !i.IsProper() }

// IsFinite reports whether both ends clip at finite values.
func (i Interval) IsFinite() bool {
	return i.Left.IsEnabled() && i.Right.IsEnabled() &&
		numeric.IsFinite(i.Left.Value) && numeric.IsFinite(i.Right.Value)
}

// IsUnbounded reports whether the interval reaches from -Inf to +Inf, either
// through disabled bounds or infinite values.
func (i Interval) IsUnbounded() bool {
	return i.Left.Key() == math.Inf(-1) && i.Right.Key() == math.Inf(+1)
}

// IsInverted reports whether both ends clip and Left > Right.
func (i Interval) IsInverted() bool {
	return i.Left.IsEnabled() && i.Right.IsEnabled() && i.Left.Value > i.Right.Value
}

func (i Interval) Equal(other Interval) bool {
	return i.Left.Equal(other.Left) && i.Right.Equal(other.Right)
}

// Reverse swaps the ends.
func (i Interval) Reverse() Interval {
	return Interval{Left: i.Right, Right: i.Left}
}

// Negate mirrors the interval around zero, keeping its orientation.
func (i Interval) Negate() Interval {
	return Interval{Left: i.Right.Neg(), Right: i.Left.Neg()}
}

// Intersect returns the overlap of i and other, side by side: Left takes the
// greater Left and Right the lesser Right. A side clips only when both
// operands clip on it. Non-overlapping inputs yield an inverted interval.
func (i Interval) Intersect(other Interval) Interval {
	return Interval{
		Left:  meet(i.Left, other.Left, highest),
		Right: meet(i.Right, other.Right, lowest),
	}
}

// Union returns the interval covering i and other. A side stays enabled when
// either operand clips on it, moved to infinity if the other operand is open
// there.
func (i Interval) Union(other Interval) Interval {
	return Interval{
		Left:  join(i.Left, other.Left, lowest),
		Right: join(i.Right, other.Right, highest),
	}
}

// Include extends an increasing interval to contain value. Disabled ends
// already contain it.
func (i Interval) Include(value float64) Interval {
	if math.IsNaN(value) {
		return i
	}
	if i.Left.IsEnabled() && !(i.Left.Value <= value) {
		i.Left.Value = value
	}
	if i.Right.IsEnabled() && !(value <= i.Right.Value) {
		i.Right.Value = value
	}
	return i
}

// Contains reports whether value lies in the interval. A decreasing interval
// wraps around infinity: it contains the values outside (Right, Left).
func (i Interval) Contains(value float64, closed bool) bool {
	left, right := i.Left.Key(), i.Right.Key()
	if closed {
		switch {
		case i.IsIncreasing():
			return left <= value && value <= right
		case i.IsDecreasing():
			return left <= value || value <= right
		}
		return i.IsDegenerate() && value == left
	}
	switch {
	case i.IsIncreasing():
		return left < value && value < right
	case i.IsDecreasing():
		return left < value || value < right
	}
	return false
}

// Clips reports whether value is rejected by one of the enabled ends of an
// increasing interval. Disabled ends never reject.
func (i Interval) Clips(value float64) bool {
	if i.Left.IsEnabled() && value < i.Left.Value {
		return true
	}
	if i.Right.IsEnabled() && value > i.Right.Value {
		return true
	}
	return false
}

// Validate rejects intervals whose ends cannot be ordered.
func (i Interval) Validate() error {
	if i.IsEmpty() {
		return errors.Wrapf(geom.ErrInvalidInterval, "unordered ends %v", i)
	}
	return nil
}

func (i Interval) Hash() int32 {
	return numeric.SeededHash(intervalHashSeed, i.Left.Hash(), i.Right.Hash())
}

func (i Interval) String() string {
	return fmt.Sprintf("%v .. %v", i.Left, i.Right)
}
