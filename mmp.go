// Package mmp processes raw moored-profiler records (CTD, engineering and
// acoustic current meter streams) into time-synchronized, motion-corrected,
// pressure-binned profile products.
package mmp

import "math"

const (
	minSyncPoints = 10  // fewer usable points than this cannot support interpolation
	tiltLimit     = 10. // degrees; combined pitch/roll beyond this invalidates the ENU solution
)

var nan = math.NaN()

func nanSlice(n int) []float64 {
	o := make([]float64, n)
	for i := range o {
		o[i] = nan
	}
	return o
}

func allNaN(s []float64) bool {
	for _, v := range s {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// nanRange returns max-min over the non-NaN values of s; 0 if none remain.
func nanRange(s []float64) float64 {
	mn, mx, n := math.Inf(1), math.Inf(-1), 0
	for _, v := range s {
		if math.IsNaN(v) {
			continue
		}
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
		n++
	}
	if n == 0 {
		return 0.
	}
	return mx - mn
}

func nanCount(s []float64) (n int) {
	for _, v := range s {
		if !math.IsNaN(v) {
			n++
		}
	}
	return
}

func d2r(d float64) float64 { return d * math.Pi / 180. }
