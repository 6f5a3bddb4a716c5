package mmp

import (
	"fmt"
	"math"
)

// global family: four-beam Janus arrangement slanted 25 degrees from
// vertical, beams ab/cd opposed in the X plane and ef/gh in the Y plane.
// The vertical solution uses the beam pair facing into undisturbed flow.
// Samples tilted beyond tiltLimit invalidate the small-angle assumptions
// behind the slant geometry and are rejected after rotation.
var (
	sinSlant = math.Sin(d2r(25.))
	cosSlant = math.Cos(d2r(25.))
)

func transformGlobal(r *Record, cfg *Config) {
	if cfg.PhaseAmb {
		ambiguityUnwrap(r.Vab, cfg.Vamb)
		ambiguityUnwrap(r.Vcd, cfg.Vamb)
		ambiguityUnwrap(r.Vef, cfg.Vamb)
		ambiguityUnwrap(r.Vgh, cfg.Vamb)
		r.Log("xfrm:amb", "beam velocities unwrapped for phase ambiguity")
	}

	nt := len(r.Hdg)
	r.VelX, r.VelY, r.VelZ = make([]float64, nt), make([]float64, nt), make([]float64, nt)
	for i := 0; i < nt; i++ {
		r.VelX[i] = (r.Vab[i] - r.Vcd[i]) / (2. * sinSlant)
		r.VelY[i] = (r.Vef[i] - r.Vgh[i]) / (2. * sinSlant)
		switch r.Dir {
		case DirAscending:
			r.VelZ[i] = (r.Vef[i] + r.Vgh[i]) / (2. * cosSlant)
		case DirDescending:
			r.VelZ[i] = (r.Vab[i] + r.Vcd[i]) / (2. * cosSlant)
		default:
			r.VelZ[i] = math.NaN()
		}
	}
	if r.Dir != DirAscending && r.Dir != DirDescending {
		fmt.Printf("   > profile %d (xfrm): unrecognized profile direction, velZ set NaN\n", r.Nprof)
		r.Log("xfrm:beam", "unrecognized direction: velZ NaN")
	} else {
		r.Log("xfrm:beam", "beam velocities combined to instrument frame")
	}

	r.Wag = wagSignal(r.Hdg, cfg.RateACM, cfg.WagR)
	if cfg.WagY {
		for i := range r.VelY {
			r.VelY[i] -= r.Wag[i]
		}
		r.Log("xfrm:wag", "velY corrected for wag")
	} else {
		r.Log("xfrm:wag", "wag computed, correction switch off")
	}

	applyENU(r, cfg, 0.)
	r.Log("xfrm:enu", "instrument frame rotated to ENU")
	correctVertical(r, cfg)

	// extreme-tilt rejection
	nrej := 0
	for i := 0; i < nt; i++ {
		p, rl := 0., 0.
		if i < len(r.Pitch) {
			p = r.Pitch[i]
		}
		if i < len(r.Roll) {
			rl = r.Roll[i]
		}
		if math.Sqrt(p*p+rl*rl) > tiltLimit {
			r.VelE[i], r.VelN[i], r.VelU[i] = nan, nan, nan
			nrej++
		}
	}
	if nrej > 0 {
		fmt.Printf("   > profile %d (xfrm): %d samples rejected for tilt > %g deg\n", r.Nprof, nrej, tiltLimit)
		r.Log("xfrm:tilt", fmt.Sprintf("%d samples rejected for extreme tilt", nrej))
	}
}
