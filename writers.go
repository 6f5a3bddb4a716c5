package mmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/mmio"
)

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}

// WriteProducts saves the stacked level-2 matrices (one .bin per stream and
// channel, plus the shared bin-pressure grids) and the level-1 padded
// velocity matrices for the current meter.
func (prd *Products) WriteProducts(outdirprfx string, acmRecs []*Record) error {
	ws := func(tag string, bs []*Binned, chs []Channel) error {
		if len(bs) == 0 {
			return nil
		}
		if err := writeFloats(fmt.Sprintf("%s%s.p.bin", outdirprfx, tag), bs[0].P); err != nil {
			return err
		}
		for _, c := range chs {
			_, o := StackL2(bs, c)
			if err := writeFloats(fmt.Sprintf("%s%s.%s.bin", outdirprfx, tag, c), o); err != nil {
				return err
			}
		}
		return nil
	}
	if err := ws("ctd", prd.CTD, SensorChannels(CTD, 2)); err != nil {
		return err
	}
	if err := ws("eng", prd.ENG, SensorChannels(ENG, 2)); err != nil {
		return err
	}
	if err := ws("acm", prd.ACM, SensorChannels(ACM, 2)); err != nil {
		return err
	}
	for _, c := range []Channel{ChVelE, ChVelN, ChVelU, ChWag} {
		_, o := PadL1(acmRecs, c)
		if err := writeFloats(fmt.Sprintf("%sacm.l1.%s.bin", outdirprfx, c), o); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes the per-profile audit trail: every processing step and
// its outcome tag, so degraded profiles can be traced without rerunning.
func WriteReport(fp string, ds ...*Deployment) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("WriteReport %s: %v", fp, err)
	}
	defer tw.Close()
	for _, d := range ds {
		tw.WriteLine(fmt.Sprintf("==== stream %s (%s profiles)", d.Stream, mmio.Thousands(int64(len(d.Recs)))))
		for _, r := range d.Recs {
			tw.WriteLine(fmt.Sprintf(" profile %d (%s)", r.Nprof, r.Dir))
			for i, h := range r.History {
				tw.WriteLine(fmt.Sprintf("   %-12s %s", h, r.Status[i]))
			}
		}
	}
	return nil
}
