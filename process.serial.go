package mmp

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// ProcessSerial is the single-threaded equivalent of Process with a
// per-profile progress bar; useful when chasing a diagnostic through the
// interleaved warning output.
func ProcessSerial(cfg *Config, ctd, eng, acm *Deployment) *Products {
	checkStreams(ctd, eng, acm)

	GateDeployment(ctd.Recs, ChPres, cfg.MinPtsPres, cfg.MinRangePres)
	GateDeployment(acm.Recs, ChHdg, cfg.MinPtsHdg, cfg.MinRangeHdg)

	nprof := len(ctd.Recs)
	prd := newProducts(nprof)

	uiprogress.Start()
	bar := uiprogress.AddBar(nprof).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("profile %d", b.Current())
	})
	for k := 0; k < nprof; k++ {
		prd.CTD[k], prd.ENG[k], prd.ACM[k] = processProfile(cfg, ctd.Recs[k], eng.Recs[k], acm.Recs[k])
		bar.Incr()
	}
	uiprogress.Stop()
	return prd
}
