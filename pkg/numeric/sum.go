package numeric

import "math"

// Sum is a running Neumaier (improved Kahan) summation. The zero value is an
// empty sum ready to use.
type Sum struct {
	sum float64
	c   float64 // compensation for lost low-order bits
}

// NewSum starts a sum at value.
func NewSum(value float64) Sum {
	return Sum{sum: value}
}

// Value returns the compensated total.
func (s Sum) Value() float64 { return s.sum + s.c }

// Add accumulates values into the sum.
func (s *Sum) Add(values ...float64) {
	for _, value := range values {
		t := s.sum + value
		if math.Abs(s.sum) < math.Abs(value) {
			s.c += (value - t) + s.sum
		} else {
			s.c += (s.sum - t) + value
		}
		s.sum = t
	}
}
