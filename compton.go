package xraydb

import "github.com/RoanBrand/xraydb/interp"

// Compton holds the mean energies (eV) after Compton scattering of
// an incident photon.
type Compton struct {
	Incident     float64 `json:"incident"`
	XRay90Deg    float64 `json:"xray_90deg"`    // photon scattered at 90 degrees
	XRayMean     float64 `json:"xray_mean"`     // scattered photon, averaged over angle
	ElectronMean float64 `json:"electron_mean"` // recoil electron, averaged over angle
}

// ComptonEnergies returns the Compton scattering energies for an incident
// photon energy in eV. Energies outside the table are clamped to its ends.
func (db *DB) ComptonEnergies(incident float64) Compton {
	c := &db.ds.Compton
	e := []float64{incident}
	return Compton{
		Incident:     incident,
		XRay90Deg:    interp.Linear(e, c.Incident, c.XRay90Deg)[0],
		XRayMean:     interp.Linear(e, c.Incident, c.XRayMean)[0],
		ElectronMean: interp.Linear(e, c.Incident, c.ElectronMean)[0],
	}
}
