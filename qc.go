package mmp

import "fmt"

// NullShortRecord empties channel c of r when its non-NaN point count falls
// below nptsMin or its dynamic range below rangeMin. Either threshold is
// disabled by the sentinel -1 (no real count or range fails it). Returns
// whether the field was nulled. Rejection is local: it narrows this
// profile's usable data, never aborts the deployment.
func NullShortRecord(r *Record, c Channel, nptsMin int, rangeMin float64) bool {
	s := r.Chan(c)
	npts, rng := nanCount(*s), nanRange(*s)
	short := nptsMin >= 0 && npts < nptsMin
	flat := rangeMin >= 0. && rng < rangeMin
	if !short && !flat {
		r.Log("qc:"+c.String(), "passed")
		return false
	}
	*s = nil
	switch {
	case short && flat:
		r.Log("qc:"+c.String(), fmt.Sprintf("nulled: %d points < %d and range %g < %g", npts, nptsMin, rng, rangeMin))
	case short:
		r.Log("qc:"+c.String(), fmt.Sprintf("nulled: %d points < %d", npts, nptsMin))
	default:
		r.Log("qc:"+c.String(), fmt.Sprintf("nulled: range %g < %g", rng, rangeMin))
	}
	return true
}

// GateDeployment applies NullShortRecord across all profiles of a stream
// and prints which profile numbers were nulled.
func GateDeployment(recs []*Record, c Channel, nptsMin int, rangeMin float64) []int {
	var nulled []int
	for _, r := range recs {
		if len(*r.Chan(c)) == 0 {
			continue
		}
		if NullShortRecord(r, c, nptsMin, rangeMin) {
			nulled = append(nulled, r.Nprof)
		}
	}
	if len(nulled) > 0 {
		fmt.Printf("   > %s records nulled (short or flat): profiles %v\n", c, nulled)
	}
	return nulled
}
