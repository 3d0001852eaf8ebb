package xraydb

import (
	"fmt"
	"math"

	"github.com/RoanBrand/xraydb/interp"
	"github.com/RoanBrand/xraydb/xraydata"
)

// ChantlerKind selects one of the Chantler attenuation tables.
type ChantlerKind int

const (
	ChantlerTotal ChantlerKind = iota + 1
	ChantlerPhoto
	ChantlerIncoherent
)

func (k ChantlerKind) String() string {
	switch k {
	case ChantlerTotal:
		return "total"
	case ChantlerPhoto:
		return "photo"
	case ChantlerIncoherent:
		return "incoh"
	}
	return fmt.Sprintf("ChantlerKind(%d)", int(k))
}

// chantlerMax caps the Chantler energy range at 1 MeV.
const chantlerMax = 1e6

type chantlerTable struct {
	f2, muPhoto, muIncoh, muTotal *interp.Table
}

func newChantlerTable(rec *xraydata.ChantlerRecord) (chantlerTable, error) {
	var t chantlerTable
	var err error
	if t.f2, err = interp.NewTable(rec.Energy, rec.F2); err != nil {
		return t, err
	}
	if t.muPhoto, err = interp.NewTable(rec.Energy, rec.MuPhoto); err != nil {
		return t, err
	}
	if t.muIncoh, err = interp.NewTable(rec.Energy, rec.MuIncoh); err != nil {
		return t, err
	}
	t.muTotal, err = interp.NewTable(rec.Energy, rec.MuTotal)
	return t, err
}

// chantlerIndex resolves element and returns the position of its
// Chantler record.
func (db *DB) chantlerIndex(element string) (int, error) {
	el, err := db.lookup(element)
	if err != nil {
		return 0, err
	}
	i, ok := db.chantlerIdx[normalize(el.Symbol)]
	if !ok {
		return 0, lookupErr(ErrUnsupportedCrossSection, element)
	}
	return i, nil
}

// clamp limits energies to the tabulated Chantler range of record i.
func (db *DB) clamp(i int, energies []float64) []float64 {
	grid := db.ds.Chantler[i].Energy
	lo, hi := grid[0], math.Min(grid[len(grid)-1], chantlerMax)
	out := make([]float64, len(energies))
	for k, e := range energies {
		out[k] = math.Max(lo, math.Min(e, hi))
	}
	return out
}

// F1Chantler returns the real anomalous scattering factor f' at each
// energy. f' changes sign near edges, so it is interpolated linearly.
func (db *DB) F1Chantler(element string, energies []float64) ([]float64, error) {
	i, err := db.chantlerIndex(element)
	if err != nil {
		return nil, err
	}
	rec := &db.ds.Chantler[i]
	return interp.Linear(db.clamp(i, energies), rec.Energy, rec.F1), nil
}

// F2Chantler returns the imaginary anomalous scattering factor f''.
func (db *DB) F2Chantler(element string, energies []float64) ([]float64, error) {
	i, err := db.chantlerIndex(element)
	if err != nil {
		return nil, err
	}
	return db.chantler[i].f2.Eval(db.clamp(i, energies)), nil
}

// AnomalousFactors returns f' and f'' together.
func (db *DB) AnomalousFactors(element string, energies []float64) (f1, f2 []float64, err error) {
	i, err := db.chantlerIndex(element)
	if err != nil {
		return nil, nil, err
	}
	rec := &db.ds.Chantler[i]
	e := db.clamp(i, energies)
	return interp.Linear(e, rec.Energy, rec.F1), db.chantler[i].f2.Eval(e), nil
}

// MuChantler returns a Chantler mass attenuation coefficient in cm^2/g.
func (db *DB) MuChantler(element string, energies []float64, kind ChantlerKind) ([]float64, error) {
	i, err := db.chantlerIndex(element)
	if err != nil {
		return nil, err
	}
	t := &db.chantler[i]
	var tab *interp.Table
	switch kind {
	case ChantlerTotal:
		tab = t.muTotal
	case ChantlerPhoto:
		tab = t.muPhoto
	case ChantlerIncoherent:
		tab = t.muIncoh
	default:
		return nil, lookupErr(ErrUnsupportedCrossSection, kind.String())
	}
	return tab.Eval(db.clamp(i, energies)), nil
}

// ChantlerEnergies returns the tabulated energies of element within
// [emin, emax]. emax <= 0 means no upper bound.
func (db *DB) ChantlerEnergies(element string, emin, emax float64) ([]float64, error) {
	i, err := db.chantlerIndex(element)
	if err != nil {
		return nil, err
	}
	if emax <= 0 {
		emax = math.Inf(1)
	}
	var out []float64
	for _, e := range db.ds.Chantler[i].Energy {
		if e >= emin && e <= emax {
			out = append(out, e)
		}
	}
	return out, nil
}
