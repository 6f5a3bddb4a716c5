package mmp

import (
	"fmt"
	"math"
)

// wagRatio scales heading rate to lateral wag velocity per unit moment-arm
// radius; the 5 and 25 degree angles are fixed by the transducer mounting
// geometry.
var wagRatio = math.Sin(d2r(5.)) / math.Sin(d2r(25.))

// TransformACM converts the current meter's raw path velocities to
// geographic (ENU) velocity: beam to instrument frame, wag computation,
// instrument frame to ENU with magnetic declination, then vertical-motion
// correction. The profiler family tag selects the geometry variant. An
// empty heading record marks an already-unusable profile and the transform
// takes no action.
func TransformACM(r *Record, cfg *Config) {
	if len(r.Hdg) == 0 {
		r.Log("xfrm", "no action taken")
		return
	}
	switch cfg.Profiler {
	case "coastal":
		transformCoastal(r, cfg)
	case "global":
		transformGlobal(r, cfg)
	default:
		panic(fmt.Sprintf("TransformACM: unrecognized profiler type %q", cfg.Profiler))
	}
}

// unwrapDeg removes 0/360 discontinuities from an angular series.
func unwrapDeg(a []float64) []float64 {
	o := make([]float64, len(a))
	if len(a) == 0 {
		return o
	}
	o[0] = a[0]
	off := 0.
	for i := 1; i < len(a); i++ {
		d := a[i] - a[i-1]
		if d > 180. {
			off -= 360.
		} else if d < -180. {
			off += 360.
		}
		o[i] = a[i] + off
	}
	return o
}

// wagSignal is the lateral velocity of the off-axis transducer mounting
// point as the platform rotates: R times the heading rate (rad/s), scaled
// by the mounting-geometry ratio.
func wagSignal(hdg []float64, rate, radius float64) []float64 {
	w := centeredDiff(unwrapDeg(hdg), rate)
	for i, v := range w {
		w[i] = radius * d2r(v) * wagRatio
	}
	return w
}

// ambiguityUnwrap folds raw path velocities exceeding the phase ambiguity
// velocity back into (-vamb, vamb].
func ambiguityUnwrap(v []float64, vamb float64) {
	for i, x := range v {
		if math.IsNaN(x) {
			continue
		}
		for x > vamb {
			x -= 2. * vamb
		}
		for x <= -vamb {
			x += 2. * vamb
		}
		v[i] = x
	}
}

// enuClosed rotates an instrument-frame velocity into the geographic frame
// through heading h, pitch p and roll r (degrees). The expressions are the
// symbolically pre-multiplied product Rh*Rp*Rr; transform_test.go holds the
// matrix form they must match.
func enuClosed(x, y, z, h, p, r float64) (e, n, u float64) {
	ch, sh := math.Cos(d2r(h)), math.Sin(d2r(h))
	cp, sp := math.Cos(d2r(p)), math.Sin(d2r(p))
	cr, sr := math.Cos(d2r(r)), math.Sin(d2r(r))
	e = ch*cp*x + (ch*sp*sr+sh*cr)*y + (-ch*sp*cr+sh*sr)*z
	n = -sh*cp*x + (-sh*sp*sr+ch*cr)*y + (sh*sp*cr+ch*sr)*z
	u = sp*x - cp*sr*y + cp*cr*z
	return
}

// applyENU rotates the instrument-frame channels into VelE/N/U. hdgOffset
// carries the family heading convention; declination is folded into the
// total rotation. Disabled tilt correction zeroes the angles rather than
// skipping the rotation, so one code path serves both settings.
func applyENU(r *Record, cfg *Config, hdgOffset float64) {
	nt := len(r.Hdg)
	r.VelE, r.VelN, r.VelU = make([]float64, nt), make([]float64, nt), make([]float64, nt)
	tilt := 0.
	if cfg.PitchRoll {
		tilt = 1.
	}
	for i := 0; i < nt; i++ {
		p, rl := 0., 0.
		if i < len(r.Pitch) {
			p = r.Pitch[i]
		}
		if i < len(r.Roll) {
			rl = r.Roll[i]
		}
		r.VelE[i], r.VelN[i], r.VelU[i] = enuClosed(
			r.VelX[i], r.VelY[i], r.VelZ[i],
			r.Hdg[i]+hdgOffset+cfg.MagDecl, tilt*p, tilt*rl)
	}
}

// correctVertical subtracts the platform's vertical motion (dP/dt) from the
// measured vertical velocity. The decision and its provenance land in the
// status log; a missing dP/dt leaves the velocity uncorrected with a
// warning rather than degrading the whole profile.
func correctVertical(r *Record, cfg *Config) {
	switch {
	case len(r.Dpdt) == 0 || allNaN(r.Dpdt):
		fmt.Printf("   > profile %d (xfrm): no dP/dt available, velU left uncorrected\n", r.Nprof)
		r.Log("xfrm:dpdt", "velU uncorrected: no dP/dt record")
	case !cfg.DpdtU:
		r.Log("xfrm:dpdt", "velU uncorrected: switch off")
	default:
		for i := range r.VelU {
			if i < len(r.Dpdt) {
				r.VelU[i] -= r.Dpdt[i]
			}
		}
		r.Log("xfrm:dpdt", "velU corrected for dP/dt")
	}
}
