package mmp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matENU is the direct rotation-matrix-product form of enuClosed:
// M = Rh*Rp*Rr applied to the instrument-frame vector.
func matENU(x, y, z, h, p, r float64) (float64, float64, float64) {
	ch, sh := math.Cos(d2r(h)), math.Sin(d2r(h))
	cp, sp := math.Cos(d2r(p)), math.Sin(d2r(p))
	cr, sr := math.Cos(d2r(r)), math.Sin(d2r(r))
	rh := [3][3]float64{{ch, sh, 0}, {-sh, ch, 0}, {0, 0, 1}}
	rp := [3][3]float64{{cp, 0, -sp}, {0, 1, 0}, {sp, 0, cp}}
	rr := [3][3]float64{{1, 0, 0}, {0, cr, sr}, {0, -sr, cr}}
	mul := func(a, b [3][3]float64) (m [3][3]float64) {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					m[i][j] += a[i][k] * b[k][j]
				}
			}
		}
		return
	}
	m := mul(rh, mul(rp, rr))
	v := [3]float64{x, y, z}
	var o [3]float64
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			o[i] += m[i][k] * v[k]
		}
	}
	return o[0], o[1], o[2]
}

func TestENUClosedFormMatchesMatrixProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		h, p, r := rng.Float64()*720.-360., rng.Float64()*60.-30., rng.Float64()*60.-30.
		e1, n1, u1 := enuClosed(x, y, z, h, p, r)
		e2, n2, u2 := matENU(x, y, z, h, p, r)
		assert.InDelta(t, e2, e1, 1e-9)
		assert.InDelta(t, n2, n1, 1e-9)
		assert.InDelta(t, u2, u1, 1e-9)
	}
}

func TestWagSignalScale(t *testing.T) {
	// constant heading ramp of omega deg/s sampled at rate Hz
	const (
		omega  = 12.  // deg/s
		radius = 0.35 // m
		rate   = 2.   // Hz
	)
	hdg := make([]float64, 50)
	for i := range hdg {
		hdg[i] = math.Mod(omega*float64(i)/rate, 360.) // wraps at 360
	}
	w := wagSignal(hdg, rate, radius)
	want := radius * d2r(omega) * math.Sin(d2r(5.)) / math.Sin(d2r(25.))
	for _, v := range w {
		assert.InDelta(t, want, v, 1e-12)
	}
}

func TestUnwrapDeg(t *testing.T) {
	in := []float64{350., 355., 2., 8., 354., 350.}
	want := []float64{350., 355., 362., 368., 354., 350.}
	assert.Equal(t, want, unwrapDeg(in))
}

func TestAmbiguityUnwrap(t *testing.T) {
	v := []float64{0.1, 1.2, -1.3, math.NaN()}
	ambiguityUnwrap(v, 1.)
	assert.InDelta(t, 0.1, v[0], 1e-12)
	assert.InDelta(t, -0.8, v[1], 1e-12)
	assert.InDelta(t, 0.7, v[2], 1e-12)
	assert.True(t, math.IsNaN(v[3]))
}

func acmRecord(n int, dir Direction) *Record {
	r := &Record{Nprof: 1, Dir: dir}
	r.T = make([]float64, n)
	r.Hdg = make([]float64, n)
	r.Pitch = make([]float64, n)
	r.Roll = make([]float64, n)
	r.Vab = make([]float64, n)
	r.Vcd = make([]float64, n)
	r.Vef = make([]float64, n)
	r.Vgh = make([]float64, n)
	r.Dpdt = make([]float64, n)
	for i := 0; i < n; i++ {
		r.T[i] = float64(i)
		r.Hdg[i] = 30.
		r.Vab[i] = 0.2
		r.Vcd[i] = -0.1
		r.Vef[i] = 0.05
		r.Vgh[i] = 0.15
		r.Dpdt[i] = 0.25
	}
	r.initMask()
	return r
}

func defaultConfig() *Config {
	return &Config{
		Profiler: "coastal",
		RateCTD:  1., RateENG: 1., RateACM: 1.,
		BinCTD: BinDef{W: 5., P0: 20., P1: 500., Nmin: 1},
		BinENG: BinDef{W: 5., P0: 20., P1: 500., Nmin: 1},
		BinACM: BinDef{W: 5., P0: 20., P1: 500., Nmin: 1},
		MinPtsPres: -1, MinPtsHdg: -1, MinRangePres: -1., MinRangeHdg: -1.,
		WagY: true, DpdtU: true, PitchRoll: true,
		WagR: 0.3,
	}
}

func TestTransformNoHeadingNoAction(t *testing.T) {
	cfg := defaultConfig()
	r := &Record{Nprof: 3}
	TransformACM(r, cfg)
	require.Len(t, r.Status, 1)
	assert.Equal(t, "no action taken", r.Status[0])
	assert.Empty(t, r.VelE)
}

func TestTransformUnknownDirectionNaNZ(t *testing.T) {
	cfg := defaultConfig()
	r := acmRecord(20, DirUnknown)
	TransformACM(r, cfg)
	for _, v := range r.VelZ {
		assert.True(t, math.IsNaN(v))
	}
	// lateral components remain defined
	assert.False(t, math.IsNaN(r.VelX[0]))
	assert.False(t, math.IsNaN(r.VelY[0]))
}

func TestTransformDirectionSelectsBeamPair(t *testing.T) {
	cfg := defaultConfig()
	up := acmRecord(20, DirAscending)
	dn := acmRecord(20, DirDescending)
	TransformACM(up, cfg)
	TransformACM(dn, cfg)
	assert.InDelta(t, (up.Vef[0]-up.Vgh[0])/sqrt2, up.VelZ[0], 1e-12)
	assert.InDelta(t, (dn.Vab[0]-dn.Vcd[0])/sqrt2, dn.VelZ[0], 1e-12)
}

func TestTransformVerticalCorrection(t *testing.T) {
	cfg := defaultConfig()
	cfg.DpdtU = false
	a := acmRecord(20, DirDescending)
	TransformACM(a, cfg)

	cfg2 := defaultConfig()
	b := acmRecord(20, DirDescending)
	TransformACM(b, cfg2)

	for i := range a.VelU {
		assert.InDelta(t, a.VelU[i]-0.25, b.VelU[i], 1e-12)
	}
	assert.Contains(t, a.Status, "velU uncorrected: switch off")
	assert.Contains(t, b.Status, "velU corrected for dP/dt")
}

func TestTransformNoDpdtWarns(t *testing.T) {
	cfg := defaultConfig()
	r := acmRecord(20, DirDescending)
	r.Dpdt = nil
	TransformACM(r, cfg)
	assert.Contains(t, r.Status, "velU uncorrected: no dP/dt record")
}

func TestTransformTiltSwitchZeroesAngles(t *testing.T) {
	cfg := defaultConfig()
	cfg.PitchRoll = false
	r := acmRecord(20, DirDescending)
	for i := range r.Pitch {
		r.Pitch[i], r.Roll[i] = 8., -6.
	}
	TransformACM(r, cfg)

	// must match the same record rotated with zero tilt
	z := acmRecord(20, DirDescending)
	cfg2 := defaultConfig()
	cfg2.PitchRoll = false
	TransformACM(z, cfg2)
	for i := range r.VelE {
		assert.InDelta(t, z.VelE[i], r.VelE[i], 1e-12)
		assert.InDelta(t, z.VelN[i], r.VelN[i], 1e-12)
	}
}

func TestGlobalTiltRejection(t *testing.T) {
	cfg := defaultConfig()
	cfg.Profiler = "global"
	r := acmRecord(20, DirDescending)
	r.Pitch[4], r.Roll[4] = 9., 9. // sqrt(162) > 10
	r.Pitch[5], r.Roll[5] = 6., 6. // sqrt(72) < 10
	TransformACM(r, cfg)
	assert.True(t, math.IsNaN(r.VelE[4]))
	assert.True(t, math.IsNaN(r.VelN[4]))
	assert.True(t, math.IsNaN(r.VelU[4]))
	assert.False(t, math.IsNaN(r.VelE[5]))
}

func TestWagCorrectionAppliedToVelY(t *testing.T) {
	cfg := defaultConfig()
	cfg.WagY = false
	a := acmRecord(30, DirDescending)
	for i := range a.Hdg {
		a.Hdg[i] = 10. * float64(i) // steady rotation
	}
	TransformACM(a, cfg)

	cfg2 := defaultConfig()
	b := acmRecord(30, DirDescending)
	for i := range b.Hdg {
		b.Hdg[i] = 10. * float64(i)
	}
	TransformACM(b, cfg2)

	// wag signal retained either way; VelY differs by it in the
	// instrument frame before rotation
	require.Len(t, a.Wag, 30)
	require.Len(t, b.Wag, 30)
	for i := range a.Wag {
		assert.InDelta(t, a.Wag[i], b.Wag[i], 1e-12)
		assert.False(t, math.IsNaN(b.Wag[i]))
	}
}
