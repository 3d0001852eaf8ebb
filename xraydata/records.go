package xraydata

// Dataset is the decoded content of the embedded blob. Nothing in it is
// modified after Decode returns.
type Dataset struct {
	Version              Version                     `cbor:"version"`
	Elements             []ElementRecord             `cbor:"elements"`
	Photoabsorption      []PhotoabsorptionRecord     `cbor:"photoabsorption"`
	Scattering           []ScatteringRecord          `cbor:"scattering"`
	Chantler             []ChantlerRecord            `cbor:"chantler"`
	Waasmaier            []WaasmaierRecord           `cbor:"waasmaier"`
	Transitions          []TransitionRecord          `cbor:"transitions"`
	Compton              ComptonRecord               `cbor:"compton"`
	IonizationPotentials []IonizationPotentialRecord `cbor:"ionization_potentials"`
}

type Version struct {
	Tag   string `cbor:"tag" json:"tag"`
	Date  string `cbor:"date" json:"date"`
	Notes string `cbor:"notes" json:"notes"`
}

// ElementRecord holds the basic constants of one element.
// Density is in g/cm^3, 0 when the element has no reference density.
type ElementRecord struct {
	Z         int     `cbor:"z" json:"z"`
	Symbol    string  `cbor:"symbol" json:"symbol"`
	Name      string  `cbor:"name" json:"name"`
	MolarMass float64 `cbor:"molar_mass" json:"molar_mass"`
	Density   float64 `cbor:"density" json:"density"`
}

type EdgeRecord struct {
	Label             string  `cbor:"label"`
	Energy            float64 `cbor:"energy"`
	FluorescenceYield float64 `cbor:"fluorescence_yield"`
	JumpRatio         float64 `cbor:"jump_ratio"`
}

// Segment is one edge-free stretch of a photoabsorption table. Edge
// names the absorption edge the segment starts at, "" for the first one.
type Segment struct {
	Edge   string    `cbor:"edge"`
	Energy []float64 `cbor:"energy"`
	Value  []float64 `cbor:"value"`
}

// PhotoabsorptionRecord is the photoabsorption cross-section (cm^2/g) of
// one element. Segments are ordered by energy.
type PhotoabsorptionRecord struct {
	Element  string       `cbor:"element"`
	Edges    []EdgeRecord `cbor:"edges"`
	Segments []Segment    `cbor:"segments"`
}

type ScatteringRecord struct {
	Element    string    `cbor:"element"`
	Energy     []float64 `cbor:"energy"`
	Coherent   []float64 `cbor:"coherent"`
	Incoherent []float64 `cbor:"incoherent"`
}

// ChantlerRecord holds the anomalous scattering factors f', f'' and the
// mass attenuation coefficients on a common energy grid.
type ChantlerRecord struct {
	Element string    `cbor:"element"`
	Energy  []float64 `cbor:"energy"`
	F1      []float64 `cbor:"f1"`
	F2      []float64 `cbor:"f2"`
	MuPhoto []float64 `cbor:"mu_photo"`
	MuIncoh []float64 `cbor:"mu_incoh"`
	MuTotal []float64 `cbor:"mu_total"`
}

// WaasmaierRecord holds the Waasmaier-Kirfel coefficients of one atom or
// ion: f0(q) = Offset + sum Scale[i]*exp(-Exponents[i]*q^2).
type WaasmaierRecord struct {
	Z         int        `cbor:"z"`
	Element   string     `cbor:"element"`
	Ion       string     `cbor:"ion"`
	Offset    float64    `cbor:"offset"`
	Scale     [5]float64 `cbor:"scale"`
	Exponents [5]float64 `cbor:"exponents"`
}

type LineRecord struct {
	Siegbahn  string  `cbor:"siegbahn"`
	IUPAC     string  `cbor:"iupac"`
	Initial   string  `cbor:"initial"`
	Final     string  `cbor:"final"`
	Energy    float64 `cbor:"energy"`
	Intensity float64 `cbor:"intensity"`
}

type TransitionRecord struct {
	Element string       `cbor:"element"`
	Lines   []LineRecord `cbor:"lines"`
}

// ComptonRecord tabulates Compton scattering energies against the
// incident photon energy (all eV).
type ComptonRecord struct {
	Incident     []float64 `cbor:"incident"`
	XRay90Deg    []float64 `cbor:"xray_90deg"`
	XRayMean     []float64 `cbor:"xray_mean"`
	ElectronMean []float64 `cbor:"electron_mean"`
}

// IonizationPotentialRecord is the mean energy (eV) to create one ion
// pair in a gas.
type IonizationPotentialRecord struct {
	Gas       string  `cbor:"gas"`
	Potential float64 `cbor:"potential"`
}
