package mmp

import "fmt"

// ApplyMask nulls every sample at mask-false positions across the selected
// channels in a single pass; the final quality gate before binning, run
// only after every contributing instrument's mask has been combined into
// the record's mask. No-op when the profile holds no pressure record.
// Idempotent: NaN-ing an already-NaN value changes nothing.
func ApplyMask(r *Record, chs []Channel) {
	if len(r.P) == 0 {
		r.Log("mask", "no action taken")
		return
	}
	nulled := 0
	for i, ok := range r.Mask {
		if ok {
			continue
		}
		for _, c := range chs {
			if s := *r.Chan(c); i < len(s) {
				s[i] = nan
			}
		}
		nulled++
	}
	r.Log("mask", fmt.Sprintf("mask applied: %d samples nulled", nulled))
}
