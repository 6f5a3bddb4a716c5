package mmp

import (
	"fmt"
	"math"

	"github.com/maseology/mmaths/slice"
	"gonum.org/v1/gonum/stat"
)

// Binned is the level-2 product of one profile: one row per pressure bin,
// aligned identically across channels and across profiles so deployments
// stack directly into pressure-time matrices.
type Binned struct {
	Nprof           int
	P               []float64 // bin-center pressures
	N               []int     // samples retained per bin
	Data            map[Channel][]float64
	History, Status []string // provenance carried forward from the record
}

// BinProfile resamples a mask-applied, full-resolution record onto the
// fixed pressure grid of bd. Per bin and channel the representative value
// is the median of the retained samples (vector mean for circular
// channels); bins holding fewer than bd.Nmin samples emit NaN. A profile
// with no usable pressure yields the full all-NaN grid so deployment-wide
// stacking never sees ragged output.
func BinProfile(r *Record, chs []Channel, bd BinDef) *Binned {
	ctr := bd.Centers()
	nb := len(ctr)
	b := Binned{Nprof: r.Nprof, P: ctr, N: make([]int, nb), Data: make(map[Channel][]float64, len(chs))}
	for _, c := range chs {
		b.Data[c] = nanSlice(nb)
	}

	if len(r.P) == 0 {
		r.Log("bin", "no usable pressure: NaN bins")
		b.History, b.Status = append([]string{}, r.History...), append([]string{}, r.Status...)
		return &b
	}

	// partition sample indices by bin
	ix := make([][]int, nb)
	for i, p := range r.P {
		if math.IsNaN(p) {
			continue
		}
		j := int(math.Round((p - bd.P0) / bd.W))
		if j < 0 || j >= nb || math.Abs(p-ctr[j]) > bd.W/2. {
			continue
		}
		ix[j] = append(ix[j], i)
	}

	nmin := bd.Nmin
	if nmin < 1 {
		nmin = 1
	}
	scratch := make([]float64, 0, len(r.P))
	for j, jx := range ix {
		b.N[j] = len(jx)
		for _, c := range chs {
			s := *r.Chan(c)
			scratch = scratch[:0]
			for _, i := range jx {
				if i < len(s) && !math.IsNaN(s[i]) {
					scratch = append(scratch, s[i])
				}
			}
			if len(scratch) < nmin {
				continue
			}
			if c.Circular() {
				b.Data[c][j] = circularMeanDeg(scratch)
			} else {
				b.Data[c][j] = slice.Median(append([]float64{}, scratch...))
			}
		}
	}

	r.Log("bin", fmt.Sprintf("binned to %d bins of %g dbar", nb, bd.W))
	b.History, b.Status = append([]string{}, r.History...), append([]string{}, r.Status...)
	return &b
}

// circularMeanDeg averages angles in degrees as unit vectors, avoiding
// wraparound error at the 0/360 crossing.
func circularMeanDeg(a []float64) float64 {
	rad := make([]float64, len(a))
	for i, v := range a {
		rad[i] = d2r(v)
	}
	m := stat.CircularMean(rad, nil) * 180. / math.Pi
	return math.Mod(m+360., 360.)
}
