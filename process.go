package mmp

import "fmt"

// Products holds the level-2 (pressure-binned) output per stream, indexed
// like the deployment arrays. Level-0/1 products remain on the (mutated)
// deployment records themselves.
type Products struct {
	CTD, ENG, ACM []*Binned
}

func newProducts(nprof int) *Products {
	return &Products{
		CTD: make([]*Binned, nprof),
		ENG: make([]*Binned, nprof),
		ACM: make([]*Binned, nprof),
	}
}

// prepReference derives dP/dt on the primary (CTD) record from its own
// pressure at the CTD acquisition rate.
func prepReference(r *Record, cfg *Config) {
	r.initMask()
	if len(r.P) == 0 {
		r.Log("ref", "no usable pressure record")
		return
	}
	r.Dpdt = centeredDiff(r.P, cfg.RateCTD)
	r.Log("ref", "dP/dt derived from pressure")
}

// processProfile runs one profile through the full pipeline: reference
// prep, cross-instrument synchronization, current-meter transform, mask
// application and pressure binning. Mismatched profile identities between
// paired records indicate upstream import corruption and abort the run.
func processProfile(cfg *Config, ctd, eng, acm *Record) (bc, be, ba *Binned) {
	if ctd.Nprof != eng.Nprof || ctd.Nprof != acm.Nprof {
		panic(fmt.Sprintf("processProfile: paired profile numbers differ (ctd %d, eng %d, acm %d)",
			ctd.Nprof, eng.Nprof, acm.Nprof))
	}

	prepReference(ctd, cfg)
	Synchronize(eng, ctd, cfg.RateENG, cfg.OffsetENG)
	Synchronize(acm, ctd, cfg.RateACM, cfg.OffsetACM)
	TransformACM(acm, cfg)

	if len(eng.P) > 0 {
		NullShortRecord(eng, ChPres, cfg.MinPtsPres, cfg.MinRangePres)
	}

	ApplyMask(ctd, SensorChannels(CTD, 1))
	ApplyMask(eng, SensorChannels(ENG, 1))
	ApplyMask(acm, SensorChannels(ACM, 1))

	bc = BinProfile(ctd, SensorChannels(CTD, 2), cfg.BinCTD)
	be = BinProfile(eng, SensorChannels(ENG, 2), cfg.BinENG)
	ba = BinProfile(acm, SensorChannels(ACM, 2), cfg.BinACM)
	return
}

// checkStreams verifies the three deployment arrays pair up.
func checkStreams(ctd, eng, acm *Deployment) {
	if ctd.Stream != CTD || eng.Stream != ENG || acm.Stream != ACM {
		panic(fmt.Sprintf("checkStreams: stream tags misordered (%s, %s, %s)", ctd.Stream, eng.Stream, acm.Stream))
	}
	if len(eng.Recs) != len(ctd.Recs) || len(acm.Recs) != len(ctd.Recs) {
		panic(fmt.Sprintf("checkStreams: deployment lengths differ (ctd %d, eng %d, acm %d)",
			len(ctd.Recs), len(eng.Recs), len(acm.Recs)))
	}
}
