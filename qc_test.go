package mmp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullShortRecordPointBoundary(t *testing.T) {
	// exactly nptsMin points survives; one fewer is nulled
	keep := &Record{Nprof: 1, P: []float64{1., 2., 3., 4., 5.}}
	assert.False(t, NullShortRecord(keep, ChPres, 5, -1.))
	assert.Len(t, keep.P, 5)

	null := &Record{Nprof: 2, P: []float64{1., 2., 3., 4.}}
	assert.True(t, NullShortRecord(null, ChPres, 5, -1.))
	assert.Empty(t, null.P)
}

func TestNullShortRecordRange(t *testing.T) {
	flat := &Record{Nprof: 1, Hdg: []float64{10., 10.2, 10.1, 10.05}}
	assert.True(t, NullShortRecord(flat, ChHdg, -1, 1.))
	assert.Empty(t, flat.Hdg)

	ok := &Record{Nprof: 2, Hdg: []float64{10., 25., 40.}}
	assert.False(t, NullShortRecord(ok, ChHdg, -1, 1.))
	assert.Len(t, ok.Hdg, 3)
}

func TestNullShortRecordNaNRange(t *testing.T) {
	// range computed over non-NaN values; all-NaN is range 0
	r := &Record{Nprof: 1, P: []float64{math.NaN(), math.NaN()}}
	assert.True(t, NullShortRecord(r, ChPres, -1, 0.5))

	mixed := &Record{Nprof: 2, P: []float64{math.NaN(), 3., 9., math.NaN()}}
	assert.False(t, NullShortRecord(mixed, ChPres, -1, 0.5))
}

func TestNullShortRecordSentinelsDisable(t *testing.T) {
	r := &Record{Nprof: 1, P: []float64{5.}}
	assert.False(t, NullShortRecord(r, ChPres, -1, -1.))
	assert.Len(t, r.P, 1)
}

func TestNullShortRecordAuditTrail(t *testing.T) {
	r := &Record{Nprof: 1, P: []float64{1., 2.}}
	NullShortRecord(r, ChPres, 10, -1.)
	assert.Len(t, r.History, 1)
	assert.Len(t, r.Status, 1)
	assert.Equal(t, "qc:pres", r.History[0])
	assert.Contains(t, r.Status[0], "nulled")
}

func TestGateDeployment(t *testing.T) {
	recs := []*Record{
		{Nprof: 1, P: []float64{1., 2., 3.}},
		{Nprof: 2}, // never imported: skipped, not listed
		{Nprof: 3, P: []float64{1., 2., 3., 4., 5., 6.}},
	}
	nulled := GateDeployment(recs, ChPres, 5, -1.)
	assert.Equal(t, []int{1}, nulled)
	assert.Empty(t, recs[0].P)
	assert.Len(t, recs[2].P, 6)
}
