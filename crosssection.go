package xraydb

import (
	"fmt"
	"sort"

	"github.com/RoanBrand/xraydb/interp"
	"github.com/RoanBrand/xraydb/xraydata"
)

// Kind selects a cross-section.
type Kind int

const (
	Photoabsorption Kind = iota + 1
	Coherent
	Incoherent
	// Total is the sum of the three above.
	Total
)

func (k Kind) String() string {
	switch k {
	case Photoabsorption:
		return "photo"
	case Coherent:
		return "coh"
	case Incoherent:
		return "incoh"
	case Total:
		return "total"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the short names returned by Kind.String as well as
// "photoabsorption", "coherent" and "incoherent".
func ParseKind(s string) (Kind, error) {
	switch normalize(s) {
	case "photo", "photoabsorption":
		return Photoabsorption, nil
	case "coh", "coherent":
		return Coherent, nil
	case "incoh", "incoherent":
		return Incoherent, nil
	case "total":
		return Total, nil
	}
	return 0, lookupErr(ErrUnsupportedCrossSection, s)
}

// edgeTable is a photoabsorption table split at the absorption edges.
// Each segment is interpolated on its own so no value is ever mixed
// across an edge.
type edgeTable struct {
	starts []float64 // log energy at which segs[i+1] begins
	segs   []*interp.Table
}

func newEdgeTable(rec *xraydata.PhotoabsorptionRecord) (edgeTable, error) {
	t := edgeTable{segs: make([]*interp.Table, len(rec.Segments))}
	for i, s := range rec.Segments {
		seg, err := interp.NewTable(s.Energy, s.Value)
		if err != nil {
			return edgeTable{}, fmt.Errorf("segment %q: %w", s.Edge, err)
		}
		t.segs[i] = seg
		if i > 0 {
			t.starts = append(t.starts, interp.Log(s.Energy[0]))
		}
	}
	return t, nil
}

// atLog evaluates the segment that contains lx. An energy exactly on an
// edge belongs to the segment above it.
func (t edgeTable) atLog(lx float64) float64 {
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > lx })
	return t.segs[i].AtLog(lx)
}

type scatterTable struct {
	coherent, incoherent *interp.Table
}

func newScatterTable(rec *xraydata.ScatteringRecord) (scatterTable, error) {
	coh, err := interp.NewTable(rec.Energy, rec.Coherent)
	if err != nil {
		return scatterTable{}, fmt.Errorf("coherent: %w", err)
	}
	incoh, err := interp.NewTable(rec.Energy, rec.Incoherent)
	if err != nil {
		return scatterTable{}, fmt.Errorf("incoherent: %w", err)
	}
	return scatterTable{coherent: coh, incoherent: incoh}, nil
}

func (db *DB) photoTable(el *xraydata.ElementRecord) (*edgeTable, error) {
	i, ok := db.photoIdx[normalize(el.Symbol)]
	if !ok {
		return nil, lookupErr(ErrUnsupportedCrossSection, el.Symbol)
	}
	return &db.photo[i], nil
}

func (db *DB) scatterTable(el *xraydata.ElementRecord) (*scatterTable, error) {
	i, ok := db.scatterIdx[normalize(el.Symbol)]
	if !ok {
		return nil, lookupErr(ErrUnsupportedCrossSection, el.Symbol)
	}
	return &db.scatter[i], nil
}

// CrossSection returns the mass attenuation cross-section (cm^2/g) of an
// element at each energy (eV).
func (db *DB) CrossSection(element string, energies []float64, kind Kind) ([]float64, error) {
	el, err := db.lookup(element)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(energies))
	if err = db.addCrossSection(el, kind, 1, interp.LogSpace(energies), out); err != nil {
		return nil, err
	}
	return out, nil
}

// addCrossSection adds weight times the cross-section of el at the log
// energies logE to out.
func (db *DB) addCrossSection(el *xraydata.ElementRecord, kind Kind, weight float64, logE, out []float64) error {
	switch kind {
	case Photoabsorption:
		p, err := db.photoTable(el)
		if err != nil {
			return err
		}
		for i, lx := range logE {
			out[i] += weight * p.atLog(lx)
		}
	case Coherent:
		s, err := db.scatterTable(el)
		if err != nil {
			return err
		}
		for i, lx := range logE {
			out[i] += weight * s.coherent.AtLog(lx)
		}
	case Incoherent:
		s, err := db.scatterTable(el)
		if err != nil {
			return err
		}
		for i, lx := range logE {
			out[i] += weight * s.incoherent.AtLog(lx)
		}
	case Total:
		p, err := db.photoTable(el)
		if err != nil {
			return err
		}
		s, err := db.scatterTable(el)
		if err != nil {
			return err
		}
		for i, lx := range logE {
			out[i] += weight * (p.atLog(lx) + s.coherent.AtLog(lx) + s.incoherent.AtLog(lx))
		}
	default:
		return lookupErr(ErrUnsupportedCrossSection, kind.String())
	}
	return nil
}
