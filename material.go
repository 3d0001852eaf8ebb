package xraydb

import (
	"errors"
	"math"
	"strconv"

	"github.com/RoanBrand/xraydb/chemformula"
	"github.com/RoanBrand/xraydb/interp"
	"github.com/RoanBrand/xraydb/xraydata"
)

// Fraction is one element of a parsed compound.
type Fraction struct {
	Symbol       string  `json:"element"`
	Z            int     `json:"z"`
	Count        float64 `json:"count"`
	MolarMass    float64 `json:"molar_mass"`
	MassFraction float64 `json:"mass_fraction"`
}

var errWeightOverflow = errors.New("formula weight is not finite")

type composition struct {
	fractions []Fraction
	elements  []*xraydata.ElementRecord
	weight    float64 // g/mol of one formula unit
}

// compose parses formula and resolves every element in it. Any element
// that does not resolve fails the whole formula.
func (db *DB) compose(formula string) (*composition, error) {
	comps, err := chemformula.Parse(formula)
	if err != nil {
		if errors.Is(err, chemformula.ErrEmpty) {
			return nil, lookupErr(ErrEmptyFormula, formula)
		}
		return nil, &LookupError{Err: ErrInvalidFormula, Value: formula, Cause: err}
	}

	c := &composition{
		fractions: make([]Fraction, len(comps)),
		elements:  make([]*xraydata.ElementRecord, len(comps)),
	}
	for i, comp := range comps {
		el, err := db.lookup(comp.Symbol)
		if err != nil {
			return nil, lookupErr(ErrUnknownElement, comp.Symbol)
		}
		c.elements[i] = el
		c.fractions[i] = Fraction{Symbol: el.Symbol, Z: el.Z, Count: comp.Count, MolarMass: el.MolarMass}
		c.weight += comp.Count * el.MolarMass
	}
	if c.weight <= 0 {
		return nil, lookupErr(ErrZeroWeightFormula, formula)
	}
	if math.IsInf(c.weight, 0) || math.IsNaN(c.weight) {
		return nil, &LookupError{Err: ErrInvalidFormula, Value: formula, Cause: errWeightOverflow}
	}
	for i := range c.fractions {
		f := &c.fractions[i]
		f.MassFraction = f.Count * f.MolarMass / c.weight
	}
	return c, nil
}

// MassFractions returns the elements of formula with their mass
// fractions, in order of first appearance.
func (db *DB) MassFractions(formula string) ([]Fraction, error) {
	c, err := db.compose(formula)
	if err != nil {
		return nil, err
	}
	return c.fractions, nil
}

// FormulaWeight returns the molar mass (g/mol) of one formula unit.
func (db *DB) FormulaWeight(formula string) (float64, error) {
	c, err := db.compose(formula)
	if err != nil {
		return 0, err
	}
	return c.weight, nil
}

// MaterialCrossSection returns the linear attenuation coefficient (1/cm)
// of a compound with the given density (g/cm^3) at each energy (eV):
// density times the mass fraction weighted sum of the element
// cross-sections.
func (db *DB) MaterialCrossSection(formula string, energies []float64, density float64, kind Kind) ([]float64, error) {
	c, err := db.compose(formula)
	if err != nil {
		return nil, err
	}

	logE := interp.LogSpace(energies)
	out := make([]float64, len(energies))
	for i, el := range c.elements {
		if err = db.addCrossSection(el, kind, c.fractions[i].MassFraction, logE, out); err != nil {
			return nil, err
		}
	}
	for i := range out {
		out[i] *= density
	}
	return out, nil
}

// Refraction holds the refractive index decrement delta, the absorption
// index beta (n = 1 - delta - i beta) and the attenuation length in cm.
type Refraction struct {
	Delta             float64 `json:"delta"`
	Beta              float64 `json:"beta"`
	AttenuationLength float64 `json:"attenuation_length"`
}

// DeltaBeta computes the complex index of refraction of a compound from
// the Chantler f' and f'' of its elements.
func (db *DB) DeltaBeta(formula string, density, energy float64) (Refraction, error) {
	if !(energy > 0) || math.IsInf(energy, 1) {
		return Refraction{}, lookupErr(ErrInvalidEnergy, strconv.FormatFloat(energy, 'g', -1, 64))
	}
	c, err := db.compose(formula)
	if err != nil {
		return Refraction{}, err
	}

	var sumF1, sumF2 float64
	e := []float64{energy}
	for _, f := range c.fractions {
		f1, f2, err := db.AnomalousFactors(f.Symbol, e)
		if err != nil {
			return Refraction{}, err
		}
		sumF1 += f.Count * (float64(f.Z) + f1[0])
		sumF2 += f.Count * f2[0]
	}

	wavelength := 1e-7 * PlanckHC / energy // cm
	pre := ElectronRadius * wavelength * wavelength * density * Avogadro / (2 * math.Pi * c.weight)
	r := Refraction{Delta: pre * sumF1, Beta: pre * sumF2, AttenuationLength: math.Inf(1)}
	if r.Beta > 0 {
		r.AttenuationLength = wavelength / (4 * math.Pi * r.Beta)
	}
	return r, nil
}
