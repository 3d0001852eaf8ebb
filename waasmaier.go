package xraydb

import (
	"math"
	"slices"
)

// F0 returns the elastic form factor f0 of an atom or ion at each
// q = sin(theta)/lambda (1/Angstrom), from the Waasmaier-Kirfel
// coefficients.
func (db *DB) F0(ion string, q []float64) ([]float64, error) {
	i, err := db.waasmaierIndex(ion)
	if err != nil {
		return nil, err
	}
	w := &db.ds.Waasmaier[i]
	out := make([]float64, len(q))
	for k, qk := range q {
		q2 := qk * qk
		v := w.Offset
		for j := range w.Scale {
			v += w.Scale[j] * math.Exp(-w.Exponents[j]*q2)
		}
		out[k] = v
	}
	return out, nil
}

// F0Ions lists the atoms and ions with form factor coefficients, for one
// element or for all elements when element is "".
func (db *DB) F0Ions(element string) ([]string, error) {
	if element == "" {
		out := make([]string, len(db.ds.Waasmaier))
		for i, w := range db.ds.Waasmaier {
			out[i] = w.Ion
		}
		return out, nil
	}
	el, err := db.lookup(element)
	if err != nil {
		return nil, err
	}
	return slices.Clone(db.ions[normalize(el.Symbol)]), nil
}
