package mmp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// centeredDiff differentiates p in time using the instrument's empirical
// acquisition rate (dt = 1/rate) rather than raw timestamp spacing, which
// may have been decimated or truncated upstream. Interior points use a
// centered difference, the two boundaries a one-sided first difference.
func centeredDiff(p []float64, rate float64) []float64 {
	n := len(p)
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{nan}
	}
	o := make([]float64, n)
	o[0] = (p[1] - p[0]) * rate
	o[n-1] = (p[n-1] - p[n-2]) * rate
	for i := 1; i < n-1; i++ {
		o[i] = (p[i+1] - p[i-1]) * rate / 2.
	}
	return o
}

// cleanReference extracts the strictly-increasing, finite (time, pressure)
// pairs of the reference record together with its mask cast to numeric
// (no mask is taken as all-valid).
func cleanReference(ref *Record) (t, p, m []float64) {
	hasmask := len(ref.Mask) == len(ref.T)
	last := math.Inf(-1)
	for i, tt := range ref.T {
		if math.IsNaN(tt) || math.IsNaN(ref.P[i]) || tt <= last {
			continue
		}
		t = append(t, tt)
		p = append(p, ref.P[i])
		if !hasmask || ref.Mask[i] {
			m = append(m, 1.)
		} else {
			m = append(m, 0.)
		}
		last = tt
	}
	return
}

func span(s []float64) (mn, mx float64) {
	mn, mx = math.Inf(1), math.Inf(-1)
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
	}
	return
}

// predictExtrap evaluates a fitted shape-preserving cubic at x, extending
// linearly beyond the fitted span using the end-point slopes.
func predictExtrap(fb *interp.FritschButland, x0, x1, x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x < x0:
		return fb.Predict(x0) + fb.PredictDerivative(x0)*(x-x0)
	case x > x1:
		return fb.Predict(x1) + fb.PredictDerivative(x1)*(x-x1)
	default:
		return fb.Predict(x)
	}
}

// Synchronize interpolates the reference (CTD) pressure series onto the
// secondary instrument's own timestamps, derives dP/dt at the secondary
// acquisition rate, applies the secondary's fixed depth offset, and narrows
// the secondary mask by the reference mask. Direction, date and backtrack
// state carry over from the reference unconditionally whenever the
// secondary holds any timestamps.
func Synchronize(sec, ref *Record, rate, offset float64) {
	if sec.Nprof != ref.Nprof {
		panic(fmt.Sprintf("Synchronize: paired profile numbers differ (%d vs %d)", sec.Nprof, ref.Nprof))
	}
	if len(sec.T) == 0 {
		sec.P, sec.Dpdt = nil, nil
		sec.Log("sync", "no pressure record added")
		return
	}

	sec.Dir, sec.Date, sec.Backtrack = ref.Dir, ref.Date, ref.Backtrack

	nt := len(sec.T)
	if len(ref.T) == 0 || allNaN(ref.T) || len(ref.P) != len(ref.T) {
		sec.P, sec.Dpdt = nanSlice(nt), nanSlice(nt)
		sec.Log("sync", "NaN pressure record added")
		return
	}

	rt, rp, rm := cleanReference(ref)
	s0, s1 := span(sec.T)
	if len(rt) < minSyncPoints || nanCount(sec.T) < minSyncPoints ||
		s1 < rt[0] || s0 > rt[len(rt)-1] {
		// deliberately empty, not NaN: distinguishes a degenerate overlap
		// from a missing reference record
		sec.P, sec.Dpdt = []float64{}, []float64{}
		sec.Log("sync", "not enough points to interpolate")
		fmt.Printf("   > profile %d (sync): not enough points to interpolate\n", sec.Nprof)
		return
	}

	var fb interp.FritschButland
	if err := fb.Fit(rt, rp); err != nil {
		sec.P, sec.Dpdt = nanSlice(nt), nanSlice(nt)
		sec.Log("sync", "NaN pressure record added")
		fmt.Printf("   > profile %d (sync): interpolant fit failed: %v\n", sec.Nprof, err)
		return
	}
	t0, t1 := rt[0], rt[len(rt)-1]
	p := make([]float64, nt)
	for i, t := range sec.T {
		p[i] = predictExtrap(&fb, t0, t1, t) + offset
	}
	sec.P = p
	sec.Dpdt = centeredDiff(p, rate)

	// reference mask transferred by linear interpolation of its numeric
	// cast; only points landing exactly on 1.0 survive, so transition
	// edges are excluded. ANDed with the secondary's own mask.
	var pl interp.PiecewiseLinear
	if err := pl.Fit(rt, rm); err == nil {
		sec.initMask()
		for i, t := range sec.T {
			ok := !math.IsNaN(t) && t >= t0 && t <= t1 && pl.Predict(t) == 1.
			sec.Mask[i] = sec.Mask[i] && ok
		}
	}

	sec.Log("sync", "pressure record added")
}
