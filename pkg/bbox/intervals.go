package bbox

import (
	"math"

	"github.com/chazu/geokernel/pkg/bounds"
)

func setBoundEnabled(interval *bounds.Interval, bound int, enabled bool) {
	if bound == 0 {
		interval.Left.State = bounds.Enabled
		if !enabled {
			interval.Left.State = bounds.DisabledMin
		}
		return
	}
	interval.Right.State = bounds.Enabled
	if !enabled {
		interval.Right.State = bounds.DisabledMax
	}
}

func isEmpty(intervals []bounds.Interval) bool {
	for _, interval := range intervals {
		if interval.IsInverted() {
			return true
		}
	}
	return false
}

func isUniverse(intervals []bounds.Interval) bool {
	for _, interval := range intervals {
		if !interval.IsUnbounded() {
			return false
		}
	}
	return true
}

func isFinite(intervals []bounds.Interval) bool {
	for _, interval := range intervals {
		if !interval.IsFinite() {
			return false
		}
	}
	return true
}

// volume is the product of the interval lengths times the frame scale.
func volume(intervals []bounds.Interval, scale float64) float64 {
	if isEmpty(intervals) {
		return 0.0
	}
	v := scale
	for _, interval := range intervals {
		length := interval.Length()
		if math.IsInf(length, 1) {
			return length
		}
		v *= length
	}
	return v
}
