package sample

import (
	"math"

	"github.com/RoanBrand/xraydb"
)

// Record is the attenuation of one sample (an element, a formula or a
// named material) over a set of energies.
type Record struct {
	Query    string          `json:"query"`
	Formula  string          `json:"formula"`
	Density  float64         `json:"density,omitempty"` // g/cm^3, 0 for mass coefficients
	Kind     string          `json:"kind"`
	Energies []float64       `json:"energies"`
	Mu       []float64       `json:"mu"` // cm^2/g, or 1/cm when Density is set
	Results  []ElementResult `json:"results,omitempty"`
}

// ElementResult is the mass fraction of one element in the sample.
type ElementResult struct {
	Element string  `json:"element"`
	Value   float64 `json:"value"`
}

// Results lists the mass fractions of a parsed formula in formula order.
func Results(fractions []xraydb.Fraction) []ElementResult {
	res := make([]ElementResult, len(fractions))
	for i, f := range fractions {
		res[i].Element = f.Symbol
		res[i].Value = f.MassFraction
	}
	return res
}

// Transmission returns exp(-mu*thickness) at each energy. Only
// meaningful when Density is set, thickness is in cm.
func (r *Record) Transmission(thickness float64) []float64 {
	out := make([]float64, len(r.Mu))
	for i, mu := range r.Mu {
		out[i] = math.Exp(-mu * thickness)
	}
	return out
}
