package mmp

import (
	"fmt"
	"math"
)

// coastal family: four acoustic paths inclined 45 degrees from horizontal
// in two orthogonal vertical planes (ab/cd in the X plane, ef/gh in the Y
// plane). The vertical solution uses the path pair facing into undisturbed
// flow, which flips with travel direction. Heading carries a fixed +90
// degree convention offset for this family.
const (
	coastalHdgOffset = 90.
	sqrt2            = 1.4142135623730951
)

func transformCoastal(r *Record, cfg *Config) {
	if cfg.PhaseAmb {
		ambiguityUnwrap(r.Vab, cfg.Vamb)
		ambiguityUnwrap(r.Vcd, cfg.Vamb)
		ambiguityUnwrap(r.Vef, cfg.Vamb)
		ambiguityUnwrap(r.Vgh, cfg.Vamb)
		r.Log("xfrm:amb", "path velocities unwrapped for phase ambiguity")
	}

	nt := len(r.Hdg)
	r.VelX, r.VelY, r.VelZ = make([]float64, nt), make([]float64, nt), make([]float64, nt)
	for i := 0; i < nt; i++ {
		r.VelX[i] = -(r.Vab[i] + r.Vcd[i]) / sqrt2
		r.VelY[i] = -(r.Vef[i] + r.Vgh[i]) / sqrt2
		switch r.Dir {
		case DirAscending:
			r.VelZ[i] = (r.Vef[i] - r.Vgh[i]) / sqrt2
		case DirDescending:
			r.VelZ[i] = (r.Vab[i] - r.Vcd[i]) / sqrt2
		default:
			r.VelZ[i] = math.NaN()
		}
	}
	if r.Dir != DirAscending && r.Dir != DirDescending {
		fmt.Printf("   > profile %d (xfrm): unrecognized profile direction, velZ set NaN\n", r.Nprof)
		r.Log("xfrm:beam", "unrecognized direction: velZ NaN")
	} else {
		r.Log("xfrm:beam", "path velocities combined to instrument frame")
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

	applyENU(r, cfg, coastalHdgOffset)
	r.Log("xfrm:enu", "instrument frame rotated to ENU")
	correctVertical(r, cfg)
}
