package mmp

// StackL2 concatenates a channel's binned profiles into one deployment
// pressure-time matrix, flattened with a profile stride: value at (bin i,
// profile k) sits at o[k*nb+i]. Every Binned of a stream shares the same
// grid, so nb is taken from the first.
func StackL2(bs []*Binned, c Channel) (nb int, o []float64) {
	if len(bs) == 0 {
		return 0, nil
	}
	nb = len(bs[0].P)
	o = nanSlice(nb * len(bs))
	for k, b := range bs {
		d, ok := b.Data[c]
		if !ok {
			continue
		}
		for i := 0; i < nb && i < len(d); i++ {
			o[k*nb+i] = d[i]
		}
	}
	return
}

// PadL1 concatenates a channel's unbinned (level-1) series across profiles
// into a fixed-length matrix, NaN-padding short and empty profiles to the
// deployment maximum so positional alignment with time is preserved.
// Degenerate synchronization outputs (deliberately left empty upstream)
// surface here as full-length NaN columns.
func PadL1(recs []*Record, c Channel) (nmax int, o []float64) {
	for _, r := range recs {
		if n := len(r.T); n > nmax {
			nmax = n
		}
	}
	o = nanSlice(nmax * len(recs))
	for k, r := range recs {
		s := *r.Chan(c)
		for i := 0; i < len(s) && i < nmax; i++ {
			o[k*nmax+i] = s[i]
		}
	}
	return
}
