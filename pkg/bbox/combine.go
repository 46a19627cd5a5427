package bbox

import (
	"github.com/chazu/geokernel/pkg/bounds"
	"github.com/chazu/geokernel/pkg/geom"
	"github.com/pkg/errors"
)

type intervalOp func(a, b bounds.Interval) bounds.Interval

// orientedBox is what Union and Intersection need from Box2 and Box3. The
// other operand always has the receiver's concrete type.
type orientedBox interface {
	intervals() []bounds.Interval
	measure() float64
	sameFrame(other orientedBox) bool
	// localOutline returns the intervals, in the receiver's frame, that cover
	// the corners of other. It reports false when the frame has no inverse.
	localOutline(other orientedBox) ([]bounds.Interval, bool)
	clone() orientedBox
	copyFrom(other orientedBox)
	emptyBox() orientedBox
	universeBox() orientedBox
}

// candidate builds the result of combining b with other in b's frame. It
// reports false when b's frame cannot be inverted or other's corners are not
// finite.
func candidate(b, other orientedBox, op intervalOp) (orientedBox, bool) {
	if !isFinite(other.intervals()) {
		return nil, false
	}
	outline, ok := b.localOutline(other)
	if !ok {
		return nil, false
	}
	result := b.clone()
	ri := result.intervals()
	for axis := range ri {
		ri[axis] = op(ri[axis], outline[axis])
	}
	return result, true
}

// combine resolves a Union or Intersection between boxes with different
// frames. fallback is used when neither frame can host the result.
func combine(b, other orientedBox, op intervalOp, fallback func() (orientedBox, bool)) error {
	a, okA := candidate(b, other, op)
	c, okB := candidate(other, b, op)
	switch {
	case okA && okB:
		if a.measure() <= c.measure() {
			b.copyFrom(a)
		} else {
			b.copyFrom(c)
		}
	case okA:
		b.copyFrom(a)
	case okB:
		b.copyFrom(c)
	default:
		result, ok := fallback()
		if !ok {
			return errors.Wrap(geom.ErrDegenerateFrame, "no frame can hold the combined box")
		}
		b.copyFrom(result)
	}
	return nil
}

func sideBySide(b, other orientedBox, op intervalOp) {
	bi, oi := b.intervals(), other.intervals()
	for axis := range bi {
		bi[axis] = op(bi[axis], oi[axis])
	}
}

func union(b, other orientedBox) error {
	bi, oi := b.intervals(), other.intervals()
	switch {
	case isEmpty(oi):
		return nil
	case isEmpty(bi):
		b.copyFrom(other)
		return nil
	case isUniverse(bi):
		return nil
	case isUniverse(oi):
		b.copyFrom(b.universeBox())
		return nil
	}

	if b.sameFrame(other) {
		sideBySide(b, other, bounds.Interval.Union)
		return nil
	}

	return combine(b, other, bounds.Interval.Union, func() (orientedBox, bool) {
		if !isFinite(bi) || !isFinite(oi) {
			return b.universeBox(), true
		}
		return nil, false
	})
}

func intersection(b, other orientedBox) error {
	bi, oi := b.intervals(), other.intervals()
	switch {
	case isUniverse(oi):
		return nil
	case isEmpty(bi):
		return nil
	case isEmpty(oi):
		b.copyFrom(b.emptyBox())
		return nil
	case isUniverse(bi):
		b.copyFrom(other)
		return nil
	}

	if b.sameFrame(other) {
		sideBySide(b, other, bounds.Interval.Intersect)
		return nil
	}

	return combine(b, other, bounds.Interval.Intersect, func() (orientedBox, bool) {
		switch {
		case !isFinite(oi):
			return b.clone(), true
		case !isFinite(bi):
			return other.clone(), true
		}
		return nil, false
	})
}
