package mmp

import (
	"fmt"
	"time"
)

// Direction of profiler travel along the mooring wire.
type Direction int

const (
	DirUnknown Direction = iota
	DirAscending
	DirDescending
)

func (d Direction) String() string {
	switch d {
	case DirAscending:
		return "ascending"
	case DirDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// Stream identifies an instrument data stream aboard the profiler.
type Stream int

const (
	CTD Stream = iota // primary/reference stream
	ENG               // engineering/auxiliary sensors
	ACM               // acoustic current meter
)

func (s Stream) String() string {
	switch s {
	case CTD:
		return "ctd"
	case ENG:
		return "eng"
	case ACM:
		return "acm"
	default:
		return "??"
	}
}

// Channel tags a named per-sample series of a Record so that generic
// operations (masking, binning, gating) can run uniformly across
// instrument types without hardcoding field names.
type Channel int

const (
	ChPres Channel = iota
	ChDpdt
	ChTemp
	ChCond
	ChSal
	ChCcur // motor current
	ChVbat // battery voltage
	ChObs  // optical backscatter
	ChHdg
	ChPitch
	ChRoll
	ChVab // raw acoustic-path/beam velocities
	ChVcd
	ChVef
	ChVgh
	ChVelX // instrument-frame velocity
	ChVelY
	ChVelZ
	ChWag  // computed wag signal (auxiliary output)
	ChVelE // geographic (ENU) velocity
	ChVelN
	ChVelU
)

func (c Channel) String() string {
	return [...]string{"pres", "dpdt", "temp", "cond", "sal", "ccur", "vbat", "obs",
		"hdg", "pitch", "roll", "vab", "vcd", "vef", "vgh",
		"velX", "velY", "velZ", "wag", "velE", "velN", "velU"}[c]
}

// Circular reports whether the channel holds angular data that must be
// averaged with circular statistics.
func (c Channel) Circular() bool { return c == ChHdg }

// SensorChannels returns the channel set generic operations act over for a
// given stream and product level (0 raw, 1 synchronized/transformed, 2 binned).
func SensorChannels(s Stream, level int) []Channel {
	switch s {
	case CTD:
		if level == 0 {
			return []Channel{ChPres, ChTemp, ChCond, ChSal}
		}
		return []Channel{ChPres, ChDpdt, ChTemp, ChCond, ChSal}
	case ENG:
		if level == 0 {
			return []Channel{ChCcur, ChVbat, ChObs}
		}
		return []Channel{ChPres, ChDpdt, ChCcur, ChVbat, ChObs}
	case ACM:
		switch level {
		case 0:
			return []Channel{ChHdg, ChPitch, ChRoll, ChVab, ChVcd, ChVef, ChVgh}
		case 1:
			return []Channel{ChPres, ChDpdt, ChHdg, ChPitch, ChRoll,
				ChVab, ChVcd, ChVef, ChVgh, ChVelX, ChVelY, ChVelZ, ChWag, ChVelE, ChVelN, ChVelU}
		default:
			return []Channel{ChPres, ChDpdt, ChHdg, ChPitch, ChRoll, ChVelE, ChVelN, ChVelU}
		}
	default:
		panic(fmt.Sprintf("SensorChannels: unknown stream %d", s))
	}
}

// Record holds one profile's samples for one instrument stream. Created
// empty at deployment allocation, populated by the import collaborator and
// mutated in place through the synchronize/transform/mask/bin stages.
type Record struct {
	Nprof     int // profile number, stable identity within a deployment
	Date      time.Time
	Dir       Direction
	Backtrack bool // engineering-detected reversal/stall within the profile

	T, P, Dpdt []float64 // unix seconds; dbar; dbar/s

	Temp, Cond, Sal  []float64 // ctd
	Ccur, Vbat, Obs  []float64 // eng
	Hdg, Pitch, Roll []float64 // acm attitude (deg)
	Vab, Vcd, Vef,
	Vgh []float64 // acm raw path velocities (m/s)
	VelX, VelY, VelZ []float64 // instrument frame
	Wag              []float64
	VelE, VelN, VelU []float64 // geographic frame

	Mask []bool // true = sample retained as scientifically valid

	History, Status []string // parallel append-only processing logs
}

// Chan returns the slice backing channel c, addressable for in-place update.
func (r *Record) Chan(c Channel) *[]float64 {
	switch c {
	case ChPres:
		return &r.P
	case ChDpdt:
		return &r.Dpdt
	case ChTemp:
		return &r.Temp
	case ChCond:
		return &r.Cond
	case ChSal:
		return &r.Sal
	case ChCcur:
		return &r.Ccur
	case ChVbat:
		return &r.Vbat
	case ChObs:
		return &r.Obs
	case ChHdg:
		return &r.Hdg
	case ChPitch:
		return &r.Pitch
	case ChRoll:
		return &r.Roll
	case ChVab:
		return &r.Vab
	case ChVcd:
		return &r.Vcd
	case ChVef:
		return &r.Vef
	case ChVgh:
		return &r.Vgh
	case ChVelX:
		return &r.VelX
	case ChVelY:
		return &r.VelY
	case ChVelZ:
		return &r.VelZ
	case ChWag:
		return &r.Wag
	case ChVelE:
		return &r.VelE
	case ChVelN:
		return &r.VelN
	case ChVelU:
		return &r.VelU
	default:
		panic(fmt.Sprintf("Record.Chan: unknown channel %d", c))
	}
}

// Log appends a processing-step identifier and its outcome tag together,
// keeping the two audit trails index-aligned.
func (r *Record) Log(code, status string) {
	r.History = append(r.History, code)
	r.Status = append(r.Status, status)
}

// CheckLengths verifies that every listed channel with data has length equal
// to len(T). Empty channels are permitted (never-populated or nulled fields).
func (r *Record) CheckLengths(chs []Channel) error {
	nt := len(r.T)
	for _, c := range chs {
		if n := len(*r.Chan(c)); n != 0 && n != nt {
			return fmt.Errorf("profile %d: channel %s length %d != %d", r.Nprof, c, n, nt)
		}
	}
	if n := len(r.Mask); n != 0 && n != nt {
		return fmt.Errorf("profile %d: mask length %d != %d", r.Nprof, n, nt)
	}
	return nil
}

// initMask allocates an all-true mask if none has been set by import.
func (r *Record) initMask() {
	if r.Mask == nil {
		r.Mask = make([]bool, len(r.T))
		for i := range r.Mask {
			r.Mask[i] = true
		}
	}
}
