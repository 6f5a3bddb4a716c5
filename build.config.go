package mmp

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// LoadConfig reads a deployment control file (key-value instruction file,
// one parameter per line) into a validated Config. Fatal on any missing or
// malformed parameter: the control file selects the field layout the rest
// of the pipeline assumes.
func LoadConfig(controlFP string) (*Config, error) {
	ins := mmio.NewInstruct(controlFP)

	var perr error
	get := func(k string) string {
		if v, ok := ins.Param[k]; ok && len(v) > 0 {
			return v[0]
		}
		if perr == nil {
			perr = fmt.Errorf("control file missing parameter %q", k)
		}
		return ""
	}
	getf := func(k string) float64 {
		f, err := strconv.ParseFloat(get(k), 64)
		if err != nil && perr == nil {
			perr = fmt.Errorf("parameter %q: %v", k, err)
		}
		return f
	}
	geti := func(k string) int {
		i, err := strconv.Atoi(get(k))
		if err != nil && perr == nil {
			perr = fmt.Errorf("parameter %q: %v", k, err)
		}
		return i
	}
	getb := func(k string) bool { return geti(k) != 0 }
	getbin := func(prfx string) BinDef {
		return BinDef{
			W:    getf(prfx + "binw"),
			P0:   getf(prfx + "binp0"),
			P1:   getf(prfx + "binp1"),
			Nmin: geti(prfx + "binnmin"),
		}
	}

	cfg := Config{
		Profiler:     get("profiler"),
		RateCTD:      getf("ratectd"),
		RateENG:      getf("rateeng"),
		RateACM:      getf("rateacm"),
		OffsetENG:    getf("offseteng"),
		OffsetACM:    getf("offsetacm"),
		BinCTD:       getbin("ctd"),
		BinENG:       getbin("eng"),
		BinACM:       getbin("acm"),
		MinPtsPres:   geti("minptspres"),
		MinPtsHdg:    geti("minptshdg"),
		MinRangePres: getf("minrangepres"),
		MinRangeHdg:  getf("minrangehdg"),
		WagY:         getb("wagy"),
		DpdtU:        getb("dpdtu"),
		PitchRoll:    getb("pitchroll"),
		PhaseAmb:     getb("phaseamb"),
		WagR:         getf("wagr"),
		MagDecl:      getf("magdecl"),
		Vamb:         getf("vamb"),
	}
	if perr != nil {
		return nil, perr
	}
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("LoadConfig %s: %v", controlFP, err)
	}
	return &cfg, nil
}
