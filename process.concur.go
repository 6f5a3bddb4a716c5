package mmp

import "sync"

// Process runs every profile of the deployment through the pipeline,
// fanned out across goroutines. Profiles are independent once the gates
// have run: workers share only the read-only configuration and write the
// deployment and product arrays at disjoint indices.
func Process(cfg *Config, ctd, eng, acm *Deployment) *Products {
	checkStreams(ctd, eng, acm)

	GateDeployment(ctd.Recs, ChPres, cfg.MinPtsPres, cfg.MinRangePres)
	GateDeployment(acm.Recs, ChHdg, cfg.MinPtsHdg, cfg.MinRangeHdg)

	nprof := len(ctd.Recs)
	prd := newProducts(nprof)
	var wg sync.WaitGroup
	wg.Add(nprof)
	for k := 0; k < nprof; k++ {
		go func(k int) {
			prd.CTD[k], prd.ENG[k], prd.ACM[k] = processProfile(cfg, ctd.Recs[k], eng.Recs[k], acm.Recs[k])
			wg.Done()
		}(k)
	}
	wg.Wait()
	return prd
}
