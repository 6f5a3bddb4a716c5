package mmp

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Deployment carries every profile record of one instrument stream,
// indexed by profile number (1..N contiguous; profiles never selected for
// processing hold a placeholder status and empty data).
type Deployment struct {
	Stream Stream
	Recs   []*Record // Recs[k] is profile number k+1
}

// NewDeployment allocates nprof empty placeholder records.
func NewDeployment(s Stream, nprof int) *Deployment {
	d := Deployment{Stream: s, Recs: make([]*Record, nprof)}
	for k := range d.Recs {
		r := &Record{Nprof: k + 1}
		r.Log("alloc", "profile not selected for processing")
		d.Recs[k] = r
	}
	return &d
}

// Rec returns the record for profile number n.
func (d *Deployment) Rec(n int) *Record {
	if n < 1 || n > len(d.Recs) {
		panic(fmt.Sprintf("deployment %s: profile number %d out of range 1..%d", d.Stream, n, len(d.Recs)))
	}
	return d.Recs[n-1]
}

func (d *Deployment) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" deployment.Save %v", err)
	}
	if err := gob.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf(" deployment.Save %v", err)
	}
	f.Close()
	return nil
}

func LoadGobDeployment(fp string) (*Deployment, error) {
	var d Deployment
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&d); err != nil {
		return nil, err
	}
	f.Close()
	return &d, nil
}
