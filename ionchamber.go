package xraydb

import (
	"context"
	"errors"
	"math"

	"github.com/RoanBrand/xraydb/interp"
)

var gasAliases = map[string]string{
	"h2":  "hydrogen",
	"he":  "helium",
	"n2":  "nitrogen",
	"o2":  "oxygen",
	"ne":  "neon",
	"ar":  "argon",
	"kr":  "krypton",
	"xe":  "xenon",
	"ch4": "methane",
	"co2": "carbon dioxide",
}

func normalizeGas(gas string) string {
	k := normalize(gas)
	if alias, ok := gasAliases[k]; ok {
		return alias
	}
	return k
}

// IonizationPotential returns the mean energy (eV) needed to create one
// ion pair in a gas, given by name ("nitrogen") or formula ("N2").
func (db *DB) IonizationPotential(gas string) (float64, error) {
	i, ok := db.gasIdx[normalizeGas(gas)]
	if !ok {
		return 0, lookupErr(ErrUnknownGas, gas)
	}
	return db.ds.IonizationPotentials[i].Potential, nil
}

// GasFraction is one gas of an ion chamber fill.
type GasFraction struct {
	Gas      string  `json:"gas"`
	Fraction float64 `json:"fraction"`
}

// IonChamber describes a gas ionization chamber.
type IonChamber struct {
	Gases        []GasFraction
	Length       float64 // active length, cm
	Sensitivity  float64 // amplifier gain, A/V
	WithCompton  bool    // count the energy of Compton recoil electrons
	BothCarriers bool    // collect electrons and ions
}

// IonChamberFluxes are photon fluxes (photons/s) through an ion chamber.
type IonChamberFluxes struct {
	Incident    float64 `json:"incident"`
	Transmitted float64 `json:"transmitted"`
	Photo       float64 `json:"photo"`
	Incoherent  float64 `json:"incoherent"`
	Coherent    float64 `json:"coherent"`
}

var errNoGas = errors.New("ion chamber gas fractions must sum to more than zero")

// IonChamberFluxes converts the voltage measured on an ion chamber at
// photon energy (eV) into the incident and transmitted fluxes.
func (db *DB) IonChamberFluxes(ch IonChamber, volts, energy float64) (IonChamberFluxes, error) {
	var total float64
	for _, g := range ch.Gases {
		total += g.Fraction
	}
	if total <= 0 {
		return IonChamberFluxes{}, errNoGas
	}

	logE := []float64{interp.Log(energy)}
	var muPhoto, muIncoh, muCoh, muTotal, ionPot float64
	for _, g := range ch.Gases {
		w := g.Fraction / total
		name := normalizeGas(g.Gas)

		pot, err := db.IonizationPotential(name)
		if err != nil {
			return IonChamberFluxes{}, err
		}
		m, err := FindMaterial(context.Background(), nil, name, 0)
		if err != nil {
			return IonChamberFluxes{}, err
		}
		c, err := db.compose(m.Formula)
		if err != nil {
			return IonChamberFluxes{}, err
		}

		mu := func(kind Kind) (float64, error) {
			out := make([]float64, 1)
			for i, el := range c.elements {
				if err := db.addCrossSection(el, kind, c.fractions[i].MassFraction, logE, out); err != nil {
					return 0, err
				}
			}
			return out[0] * m.Density, nil
		}
		var photo, incoh, coh float64
		if photo, err = mu(Photoabsorption); err != nil {
			return IonChamberFluxes{}, err
		}
		if incoh, err = mu(Incoherent); err != nil {
			return IonChamberFluxes{}, err
		}
		if coh, err = mu(Coherent); err != nil {
			return IonChamberFluxes{}, err
		}

		muPhoto += w * photo
		muIncoh += w * incoh
		muCoh += w * coh
		muTotal += w * (photo + incoh + coh)
		ionPot += w * pot
	}

	attTotal := 1 - math.Exp(-ch.Length*muTotal)
	var attPhoto, attIncoh, attCoh float64
	if muTotal > 0 {
		attPhoto = attTotal * muPhoto / muTotal
		attIncoh = attTotal * muIncoh / muTotal
		attCoh = attTotal * muCoh / muTotal
	}

	var comptonE float64
	if ch.WithCompton {
		comptonE = db.ComptonEnergies(energy).ElectronMean
	}
	carriers := 1.0
	if ch.BothCarriers {
		carriers = 2
	}

	absorbed := carriers * (energy*attPhoto + comptonE*attIncoh)
	var in float64
	if absorbed > 0 {
		in = volts * ch.Sensitivity * ionPot / (ElementaryCharge * absorbed)
	}
	return IonChamberFluxes{
		Incident:    in,
		Transmitted: in * (1 - attTotal),
		Photo:       in * attPhoto,
		Incoherent:  in * attIncoh,
		Coherent:    in * attCoh,
	}, nil
}
