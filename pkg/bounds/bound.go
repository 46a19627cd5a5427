// Package bounds implements one dimensional bounding intervals whose ends
// can be switched off independently.
//
// A Bound is one end of an interval. When it is Enabled it clips; when it is
// DisabledMin or DisabledMax it does not clip and only keeps the sign it
// would have as an infinite value, which matters for intervals given in
// decreasing order.
package bounds

import (
	"fmt"
	"math"

	"github.com/chazu/geokernel/pkg/numeric"
)

// Bounding is the state of a Bound.
type Bounding int8

const (
	DisabledMin Bounding = -1
	Enabled     Bounding = 0
	DisabledMax Bounding = +1
)

func (b Bounding) String() string {
	switch b {
	case DisabledMin:
		return "disabled-min"
	case DisabledMax:
		return "disabled-max"
	}
	return "enabled"
}

// Bound is an interval end. The zero value is an enabled bound at 0.
type Bound struct {
	Value float64
	State Bounding
}

// At returns an enabled bound at value.
func At(value float64) Bound {
	return Bound{Value: value, State: Enabled}
}

// NoMin returns a disabled bound that orders before every enabled value.
func NoMin() Bound {
	return Bound{Value: math.Inf(-1), State: DisabledMin}
}

// NoMax returns a disabled bound that orders after every enabled value.
func NoMax() Bound {
	return Bound{Value: math.Inf(+1), State: DisabledMax}
}

func (b Bound) IsEnabled() bool  { return b.State == Enabled }
func (b Bound) IsDisabled() bool { return b.State != Enabled }

// Key is the value used to order bounds: the value itself when enabled,
// -Inf for DisabledMin and +Inf for DisabledMax.
func (b Bound) Key() float64 {
	switch b.State {
	case DisabledMin:
		return math.Inf(-1)
	case DisabledMax:
		return math.Inf(+1)
	}
	return b.Value
}

// Neg mirrors the bound around zero.
func (b Bound) Neg() Bound {
	return Bound{Value: -b.Value, State: -b.State}
}

// Equal compares bounds by Key.
func (b Bound) Equal(other Bound) bool {
	return b.Key() == other.Key()
}

func (b Bound) Less(other Bound) bool {
	return b.Key() < other.Key()
}

// Hash hashes the bound Key.
func (b Bound) Hash() int32 {
	return numeric.Float64Hash(b.Key())
}

func (b Bound) String() string {
	if b.IsEnabled() {
		return fmt.Sprintf("%g", b.Value)
	}
	return fmt.Sprintf("(%g %s)", b.Value, b.State)
}

// lowest returns the bound with the smaller Key, ignoring a NaN operand.
func lowest(a, b Bound) Bound {
	switch ka, kb := a.Key(), b.Key(); {
	case ka < kb:
		return a
	case math.IsNaN(kb):
		return a
	}
	return b
}

// highest returns the bound with the greater Key, ignoring a NaN operand.
func highest(a, b Bound) Bound {
	switch ka, kb := a.Key(), b.Key(); {
	case ka > kb:
		return a
	case math.IsNaN(kb):
		return a
	}
	return b
}

// meet merges one side of an intersection. The result clips only when both
// operands clip; otherwise the disabled operand is kept.
func meet(a, b Bound, pick func(a, b Bound) Bound) Bound {
	switch {
	case a.IsEnabled() && b.IsEnabled():
		return pick(a, b)
	case a.IsEnabled():
		return b
	case b.IsEnabled():
		return a
	}
	return pick(a, b)
}

// join merges one side of a union. The result is enabled when either operand
// is. When only one is, the result sits at the disabled operand's infinite
// Key so the union still covers the half-open side.
func join(a, b Bound, pick func(a, b Bound) Bound) Bound {
	switch {
	case a.IsEnabled() && b.IsEnabled():
		return pick(a, b)
	case a.IsEnabled(), b.IsEnabled():
		return At(pick(a, b).Key())
	}
	return pick(a, b)
}
