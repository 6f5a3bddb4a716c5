package mmp

import (
	"fmt"
	"math"

	"github.com/maseology/mmio"
)

// Checkandprint summarizes one stream's processing outcome: a console
// roll-up of usable/degraded/empty profiles and a per-profile CSV of
// coverage diagnostics alongside the binned product.
func (d *Deployment) Checkandprint(prd []*Binned, chkdirprfx string) {
	mmio.MakeDir(chkdirprfx)

	nuse, nempty := 0, 0
	csvw := mmio.NewCSVwriter(fmt.Sprintf("%s%s.summary.csv", chkdirprfx, d.Stream))
	defer csvw.Close()
	if err := csvw.WriteHead("profile,direction,npts,pmin,pmax,nbinspopulated"); err != nil {
		fmt.Printf("   > %s summary write failed: %v\n", d.Stream, err)
		return
	}
	for k, r := range d.Recs {
		pmn, pmx := span(r.P)
		if math.IsInf(pmn, 1) {
			pmn, pmx = nan, nan
		}
		nb := 0
		if prd != nil && k < len(prd) && prd[k] != nil {
			for _, n := range prd[k].N {
				if n > 0 {
					nb++
				}
			}
		}
		csvw.WriteLine(r.Nprof, r.Dir.String(), nanCount(r.P), pmn, pmx, nb)
		switch {
		case len(r.T) == 0:
			nempty++
		case len(r.P) == 0 || allNaN(r.P):
		default:
			nuse++
		}
	}
	fmt.Printf("  %s: %s profiles, %d usable, %d never imported\n",
		d.Stream, mmio.Thousands(int64(len(d.Recs))), nuse, nempty)
}

// WriteBinnedCSV writes one profile's level-2 product as a bin-per-row
// table for quick inspection outside the binary stack.
func WriteBinnedCSV(fp string, b *Binned, chs []Channel) error {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	head := "p,n"
	for _, c := range chs {
		head += "," + c.String()
	}
	if err := csvw.WriteHead(head); err != nil {
		return fmt.Errorf("WriteBinnedCSV %s: %v", fp, err)
	}
	for j, p := range b.P {
		row := make([]interface{}, 0, len(chs)+2)
		row = append(row, p, b.N[j])
		for _, c := range chs {
			row = append(row, b.Data[c][j])
		}
		csvw.WriteLine(row...)
	}
	return nil
}
