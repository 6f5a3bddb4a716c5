package mmp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinDefCenters(t *testing.T) {
	bd := BinDef{W: 5., P0: 20., P1: 500.}
	ctr := bd.Centers()
	require.Len(t, ctr, 97)
	assert.Equal(t, 20., ctr[0])
	assert.Equal(t, 500., ctr[96])
}

func TestBinProfileMedian(t *testing.T) {
	r := &Record{
		Nprof: 1,
		T:     []float64{0., 1., 2., 3., 4., 5.},
		P:     []float64{9., 10., 11., 19., 20., 21.},
		Temp:  []float64{1., 2., 9., 4., 8., 5.},
	}
	bd := BinDef{W: 10., P0: 10., P1: 30., Nmin: 1}
	b := BinProfile(r, []Channel{ChPres, ChTemp}, bd)

	require.Len(t, b.P, 3)
	// bin at 10: samples 9,10,11 -> median temp 2
	assert.Equal(t, 2., b.Data[ChTemp][0])
	// bin at 20: samples 19,20,21 -> median temp 5
	assert.Equal(t, 5., b.Data[ChTemp][1])
	// bin at 30: no samples
	assert.True(t, math.IsNaN(b.Data[ChTemp][2]))
	assert.Equal(t, []int{3, 3, 0}, b.N)
}

func TestBinProfileMinimumCount(t *testing.T) {
	r := &Record{
		Nprof: 1,
		T:     []float64{0., 1., 2., 3.},
		P:     []float64{10., 10.5, 11., 20.},
		Temp:  []float64{1., 2., 3., 9.},
	}
	bd := BinDef{W: 10., P0: 10., P1: 20., Nmin: 2}
	b := BinProfile(r, []Channel{ChTemp}, bd)
	assert.Equal(t, 2., b.Data[ChTemp][0])
	assert.True(t, math.IsNaN(b.Data[ChTemp][1])) // one sample < Nmin
}

func TestBinProfileCircularHeading(t *testing.T) {
	r := &Record{
		Nprof: 1,
		T:     []float64{0., 1.},
		P:     []float64{10., 10.1},
		Hdg:   []float64{350., 10.},
	}
	bd := BinDef{W: 10., P0: 10., P1: 10., Nmin: 1}
	b := BinProfile(r, []Channel{ChHdg}, bd)
	m := b.Data[ChHdg][0]
	// arithmetic mean would give 180; the vector mean wraps to 0/360
	if m > 180. {
		m -= 360.
	}
	assert.InDelta(t, 0., m, 1e-9)
}

func TestBinProfileNoPressureYieldsNaNGrid(t *testing.T) {
	r := &Record{Nprof: 1, T: []float64{0., 1.}}
	bd := BinDef{W: 5., P0: 0., P1: 20., Nmin: 1}
	b := BinProfile(r, []Channel{ChTemp}, bd)
	require.Len(t, b.Data[ChTemp], 5)
	assert.True(t, allNaN(b.Data[ChTemp]))
	assert.Contains(t, b.Status, "no usable pressure: NaN bins")
}

func TestBinProfileNaNPressureExcluded(t *testing.T) {
	r := &Record{
		Nprof: 1,
		T:     []float64{0., 1., 2., 3.},
		P:     []float64{10., math.NaN(), 10.2, 10.4},
		Temp:  []float64{1., 100., 3., 5.},
	}
	bd := BinDef{W: 10., P0: 10., P1: 10., Nmin: 1}
	b := BinProfile(r, []Channel{ChTemp}, bd)
	assert.Equal(t, 3., b.Data[ChTemp][0])
	assert.Equal(t, []int{3}, b.N)
}

func TestStackL2(t *testing.T) {
	bd := BinDef{W: 1., P0: 0., P1: 2., Nmin: 1}
	mk := func(nprof int, v float64) *Binned {
		return &Binned{Nprof: nprof, P: bd.Centers(), Data: map[Channel][]float64{ChTemp: {v, v + 1., v + 2.}}}
	}
	nb, o := StackL2([]*Binned{mk(1, 10.), mk(2, 20.)}, ChTemp)
	assert.Equal(t, 3, nb)
	require.Len(t, o, 6)
	assert.Equal(t, 10., o[0])
	assert.Equal(t, 12., o[2])
	assert.Equal(t, 21., o[1*3+1])
}

func TestPadL1(t *testing.T) {
	recs := []*Record{
		{Nprof: 1, T: []float64{0., 1., 2.}, Temp: []float64{5., 6., 7.}},
		{Nprof: 2, T: []float64{0.}, Temp: []float64{9.}},
		{Nprof: 3}, // unprocessable: full NaN column
	}
	nmax, o := PadL1(recs, ChTemp)
	assert.Equal(t, 3, nmax)
	require.Len(t, o, 9)
	assert.Equal(t, 7., o[2])
	assert.Equal(t, 9., o[3])
	assert.True(t, math.IsNaN(o[4])) // padding
	assert.True(t, math.IsNaN(o[6]))
}
