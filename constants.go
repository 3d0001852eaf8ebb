package xraydb

// CODATA 2018 values.
const (
	Avogadro         = 6.02214076e23    // 1/mol
	PlanckHC         = 1239.84193       // eV nm
	ElectronRadius   = 2.8179403262e-13 // classical electron radius, cm
	ElementaryCharge = 1.602176634e-19  // C
)
