package curve

import (
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// HermiteSpline interpolates Points with the given Tangents. Parameters
// holds one increasing parameter per point; when nil the points are spaced
// one unit apart. A periodic spline is closed and its domain spans one
// period.
type HermiteSpline struct {
	Points     []v3.Vec
	Tangents   []v3.Vec
	Parameters []float64
	Periodic   bool
}

func (HermiteSpline) Kind() Kind      { return KindHermiteSpline }
func (h HermiteSpline) IsBound() bool { return !h.Periodic }

func (h HermiteSpline) parameter(i int) float64 {
	if h.Parameters == nil {
		return float64(i)
	}
	return h.Parameters[i]
}

func (h HermiteSpline) Domain() (float64, float64) {
	if len(h.Points) == 0 {
		return 0, 0
	}
	return h.parameter(0), h.parameter(len(h.Points) - 1)
}

// Evaluate returns the cubic Hermite interpolation at t. Parameters outside
// the domain are clamped.
func (h HermiteSpline) Evaluate(t float64) v3.Vec {
	n := len(h.Points)
	switch n {
	case 0:
		return v3.Vec{}
	case 1:
		return h.Points[0]
	}

	t0, t1 := h.Domain()
	if t <= t0 {
		t = t0
	}
	if t >= t1 {
		t = t1
	}

	// Segment i spans [parameter(i), parameter(i+1)].
	i := sort.Search(n-1, func(k int) bool { return h.parameter(k+1) >= t })
	if i >= n-1 {
		i = n - 2
	}

	a, b := h.parameter(i), h.parameter(i+1)
	span := b - a
	if span == 0 {
		return h.Points[i]
	}
	s := (t - a) / span
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h.Points[i].MulScalar(h00).
		Add(h.Tangents[i].MulScalar(h10 * span)).
		Add(h.Points[i+1].MulScalar(h01)).
		Add(h.Tangents[i+1].MulScalar(h11 * span))
}

// NurbSpline is a non-uniform rational B-spline. Weights may be nil for a
// non-rational spline. len(Knots) must be len(ControlPoints) + Degree + 1.
type NurbSpline struct {
	Degree        int
	ControlPoints []v3.Vec
	Weights       []float64
	Knots         []float64
	Periodic      bool
}

func (NurbSpline) Kind() Kind      { return KindNurbSpline }
func (s NurbSpline) IsBound() bool { return !s.Periodic }

func (s NurbSpline) weight(i int) float64 {
	if s.Weights == nil {
		return 1.0
	}
	return s.Weights[i]
}

// Domain is [Knots[Degree], Knots[len(Knots)-Degree-1]].
func (s NurbSpline) Domain() (float64, float64) {
	if len(s.Knots) < 2*s.Degree+2 {
		return 0, 0
	}
	return s.Knots[s.Degree], s.Knots[len(s.Knots)-s.Degree-1]
}

// span returns the knot span index k with Knots[k] <= t < Knots[k+1],
// clamped to the valid range [Degree, n-1].
func (s NurbSpline) span(t float64) int {
	n := len(s.ControlPoints)
	lo, hi := s.Degree, n-1
	if t >= s.Knots[hi+1] {
		return hi
	}
	if t <= s.Knots[lo] {
		return lo
	}
	k := sort.Search(len(s.Knots), func(i int) bool { return s.Knots[i] > t }) - 1
	if k < lo {
		return lo
	}
	if k > hi {
		return hi
	}
	return k
}

// Evaluate computes the point at t with de Boor's algorithm in homogeneous
// coordinates.
func (s NurbSpline) Evaluate(t float64) v3.Vec {
	n := len(s.ControlPoints)
	p := s.Degree
	if n == 0 || p < 0 || len(s.Knots) != n+p+1 {
		return v3.Vec{}
	}

	t0, t1 := s.Domain()
	if t < t0 {
		t = t0
	}
	if t > t1 {
		t = t1
	}

	k := s.span(t)
	type homogeneous struct {
		p v3.Vec
		w float64
	}
	d := make([]homogeneous, p+1)
	for j := 0; j <= p; j++ {
		w := s.weight(j + k - p)
		d[j] = homogeneous{p: s.ControlPoints[j+k-p].MulScalar(w), w: w}
	}

	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			left := s.Knots[j+k-p]
			right := s.Knots[j+1+k-r]
			alpha := 0.0
			if right != left {
				alpha = (t - left) / (right - left)
			}
			d[j] = homogeneous{
				p: d[j-1].p.MulScalar(1 - alpha).Add(d[j].p.MulScalar(alpha)),
				w: (1-alpha)*d[j-1].w + alpha*d[j].w,
			}
		}
	}

	if d[p].w == 0 {
		return d[p].p
	}
	return d[p].p.MulScalar(1 / d[p].w)
}

// ClampedKnots returns the open uniform knot vector on [0, 1] for count
// control points, with Degree+1 repeated knots at each end.
func ClampedKnots(count, degree int) []float64 {
	knots := make([]float64, count+degree+1)
	inner := count - degree
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= count:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(inner)
		}
	}
	return knots
}
