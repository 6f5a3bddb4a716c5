package mmp

import "fmt"

// BinDef defines a fixed pressure grid: centers from P0 to P1 (inclusive)
// every W dbar; a bin emits a value only where at least Nmin retained
// samples fall within W/2 of its center.
type BinDef struct {
	W, P0, P1 float64
	Nmin      int
}

// Centers returns the grid of bin-center pressures.
func (bd BinDef) Centers() []float64 {
	n := int((bd.P1-bd.P0)/bd.W) + 1
	if n < 1 {
		return nil
	}
	o := make([]float64, n)
	for i := range o {
		o[i] = bd.P0 + float64(i)*bd.W
	}
	return o
}

// Config is the deployment-level processing configuration. Read-only once
// built; freely shared across concurrent profile workers.
type Config struct {
	Profiler string // "coastal" or "global" current-meter family

	RateCTD, RateENG, RateACM float64 // empirical acquisition rates (Hz)
	OffsetENG, OffsetACM      float64 // fixed depth (pressure) offsets (dbar)

	BinCTD, BinENG, BinACM BinDef

	MinPtsPres, MinPtsHdg     int     // minimum point counts (-1 disables)
	MinRangePres, MinRangeHdg float64 // minimum dynamic ranges (-1 disables)

	WagY      bool // correct_velY_for_wag
	DpdtU     bool // correct_velU_for_dpdt
	PitchRoll bool // correct_velXYZ_for_pitch_and_roll
	PhaseAmb  bool // correct_velBeam_for_phase_ambiguity

	WagR    float64 // wag moment-arm radius (m)
	MagDecl float64 // magnetic declination (deg, E positive)
	Vamb    float64 // phase ambiguity velocity (m/s)
}

func (cfg *Config) check() error {
	switch cfg.Profiler {
	case "coastal", "global":
	default:
		return fmt.Errorf("unrecognized profiler type %q", cfg.Profiler)
	}
	for s, r := range map[string]float64{"ctd": cfg.RateCTD, "eng": cfg.RateENG, "acm": cfg.RateACM} {
		if r <= 0. {
			return fmt.Errorf("%s acquisition rate must be positive, got %f", s, r)
		}
	}
	for s, bd := range map[string]BinDef{"ctd": cfg.BinCTD, "eng": cfg.BinENG, "acm": cfg.BinACM} {
		if bd.W <= 0. || bd.P1 < bd.P0 {
			return fmt.Errorf("%s bin definition invalid: %+v", s, bd)
		}
	}
	if cfg.PhaseAmb && cfg.Vamb <= 0. {
		return fmt.Errorf("phase ambiguity correction enabled with ambiguity velocity %f", cfg.Vamb)
	}
	return nil
}
