package xraydb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChantlerIron(t *testing.T) {
	db := openDB(t)
	f1, err := db.F1Chantler("Fe", []float64{10000})
	require.NoError(t, err)
	assert.InDelta(t, 0.12282, f1[0], 1e-4)

	f2, err := db.F2Chantler("Fe", []float64{10000})
	require.NoError(t, err)
	assert.InDelta(t, 2.25608, f2[0], 1e-4)

	a1, a2, err := db.AnomalousFactors("iron", []float64{10000})
	require.NoError(t, err)
	assert.Equal(t, f1, a1)
	assert.Equal(t, f2, a2)
}

func TestChantlerClamp(t *testing.T) {
	db := openDB(t)
	lo, err := db.F2Chantler("Fe", []float64{1, 100})
	require.NoError(t, err)
	assert.Equal(t, lo[1], lo[0])

	hi, err := db.MuChantler("Fe", []float64{5e5, 1e7}, ChantlerTotal)
	require.NoError(t, err)
	assert.Equal(t, hi[0], hi[1])

	f1, err := db.F1Chantler("Fe", []float64{5e5, 2e6})
	require.NoError(t, err)
	assert.Equal(t, f1[0], f1[1])
}

func TestChantlerEnergies(t *testing.T) {
	db := openDB(t)
	e, err := db.ChantlerEnergies("Fe", 7000, 7200)
	require.NoError(t, err)
	assert.Equal(t, []float64{7111.289, 7112.711}, e)

	all, err := db.ChantlerEnergies("Fe", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, all[0])
	assert.Equal(t, 500000.0, all[len(all)-1])

	none, err := db.ChantlerEnergies("Fe", 1e7, 2e7)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestChantlerErrors(t *testing.T) {
	db := openDB(t)
	_, err := db.F1Chantler("Xx", []float64{1000})
	assert.ErrorIs(t, err, ErrUnknownElement)
	_, err = db.F1Chantler("Tc", []float64{1000})
	assert.ErrorIs(t, err, ErrUnsupportedCrossSection)
	_, err = db.MuChantler("Fe", []float64{1000}, ChantlerKind(9))
	assert.ErrorIs(t, err, ErrUnsupportedCrossSection)

	for _, k := range []ChantlerKind{ChantlerTotal, ChantlerPhoto, ChantlerIncoherent} {
		v, err := db.MuChantler("Cu", []float64{9000}, k)
		require.NoError(t, err, k.String())
		assert.Greater(t, v[0], 0.0)
	}
}

func TestF0(t *testing.T) {
	db := openDB(t)
	for ion, want := range map[string]float64{
		"Fe":   26,
		"Fe3+": 23,
		"fe2+": 24,
		"O2-":  10,
		"Na+":  10,
		"26":   26,
		"iron": 26,
	} {
		v, err := db.F0(ion, []float64{0})
		require.NoError(t, err, ion)
		assert.InDelta(t, want, v[0], 1e-3, ion)
	}

	v, err := db.F0("Cu", []float64{0, 0.2, 0.5, 1.0})
	require.NoError(t, err)
	for i := 1; i < len(v); i++ {
		assert.Less(t, v[i], v[i-1])
	}

	_, err = db.F0("Fe7+", []float64{0})
	assert.ErrorIs(t, err, ErrUnknownIon)
	_, err = db.F0("Xx", []float64{0})
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestF0Ions(t *testing.T) {
	db := openDB(t)
	all, err := db.F0Ions("")
	require.NoError(t, err)
	assert.Len(t, all, 155)

	fe, err := db.F0Ions("Fe")
	require.NoError(t, err)
	assert.Contains(t, fe, "Fe")
	assert.Contains(t, fe, "Fe2+")
	assert.Contains(t, fe, "Fe3+")

	fe[0] = "changed"
	again, err := db.F0Ions("Fe")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again[0])

	_, err = db.F0Ions("Xx")
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestEdges(t *testing.T) {
	db := openDB(t)
	edges, err := db.Edges("Fe")
	require.NoError(t, err)
	assert.Len(t, edges, 4)
	assert.Equal(t, 7112.0, edges["K"].Energy)
	assert.Equal(t, 706.8, edges["L3"].Energy)

	k, err := db.Edge("copper", "k")
	require.NoError(t, err)
	assert.Equal(t, 8979.0, k.Energy)
	assert.Greater(t, k.JumpRatio, 1.0)
	assert.Greater(t, k.FluorescenceYield, 0.0)

	_, err = db.Edge("Fe", "M5")
	assert.ErrorIs(t, err, ErrUnknownEdge)

	none, err := db.Edges("Tc")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = db.Edges("Xx")
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestLines(t *testing.T) {
	db := openDB(t)
	lines, err := db.Lines("Fe", "", 0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 6405.2, lines["Ka1"].Energy)
	assert.Equal(t, 0.58, lines["Ka1"].Intensity)
	assert.Equal(t, 6392.1, lines["Ka2"].Energy)
	assert.Equal(t, "K", lines["Ka2"].Initial)
	assert.Equal(t, "L2", lines["Ka2"].Final)

	below, err := db.Lines("Fe", "", 7000)
	require.NoError(t, err)
	assert.Empty(t, below)

	above, err := db.Lines("Fe", "k", 8000)
	require.NoError(t, err)
	assert.Len(t, above, 2)

	other, err := db.Lines("Fe", "L3", 0)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGuessEdge(t *testing.T) {
	db := openDB(t)
	sym, label, ok := db.GuessEdge(7110)
	require.True(t, ok)
	assert.Equal(t, "Fe", sym)
	assert.Equal(t, "K", label)

	sym, label, ok = db.GuessEdge(8990, "k")
	require.True(t, ok)
	assert.Equal(t, "Cu", sym)
	assert.Equal(t, "K", label)

	_, _, ok = db.GuessEdge(7110, "N7")
	assert.False(t, ok)
}

func TestComptonEnergies(t *testing.T) {
	db := openDB(t)
	c := db.ComptonEnergies(10000)
	assert.Equal(t, 10000.0, c.Incident)
	assert.InDelta(t, 10000, c.XRayMean+c.ElectronMean, 0.01)
	assert.Less(t, c.XRay90Deg, c.Incident)

	c2 := db.ComptonEnergies(20000)
	assert.Greater(t, c2.ElectronMean, c.ElectronMean)

	low := db.ComptonEnergies(100)
	assert.Equal(t, 100.0, low.Incident)
	assert.Equal(t, db.ComptonEnergies(1000).XRayMean, low.XRayMean)
}

func TestIonizationPotential(t *testing.T) {
	db := openDB(t)
	for gas, want := range map[string]float64{
		"N2":             34.8,
		"nitrogen":       34.8,
		"He":             41.3,
		"Air":            33.8,
		"carbon dioxide": 32.8,
		"CH4":            27.3,
	} {
		v, err := db.IonizationPotential(gas)
		require.NoError(t, err, gas)
		assert.Equal(t, want, v, gas)
	}
	_, err := db.IonizationPotential("radon")
	assert.ErrorIs(t, err, ErrUnknownGas)
}

func TestIonChamberFluxes(t *testing.T) {
	db := openDB(t)
	ch := IonChamber{
		Gases:       []GasFraction{{Gas: "N2", Fraction: 1}},
		Length:      10,
		Sensitivity: 1e-6,
	}
	f, err := db.IonChamberFluxes(ch, 1, 10000)
	require.NoError(t, err)
	assert.Greater(t, f.Incident, 0.0)
	assert.Less(t, f.Transmitted, f.Incident)
	assert.InEpsilon(t, f.Incident, f.Transmitted+f.Photo+f.Incoherent+f.Coherent, 1e-9)

	ch.BothCarriers = true
	both, err := db.IonChamberFluxes(ch, 1, 10000)
	require.NoError(t, err)
	assert.InEpsilon(t, f.Incident/2, both.Incident, 1e-12)

	ch.BothCarriers = false
	ch.WithCompton = true
	compton, err := db.IonChamberFluxes(ch, 1, 10000)
	require.NoError(t, err)
	assert.Less(t, compton.Incident, f.Incident)

	mixed := IonChamber{
		Gases:       []GasFraction{{Gas: "He", Fraction: 2}, {Gas: "N2", Fraction: 2}},
		Length:      10,
		Sensitivity: 1e-6,
	}
	m, err := db.IonChamberFluxes(mixed, 1, 10000)
	require.NoError(t, err)
	assert.Greater(t, m.Incident, f.Incident)

	_, err = db.IonChamberFluxes(IonChamber{Length: 10}, 1, 10000)
	assert.ErrorIs(t, err, errNoGas)

	_, err = db.IonChamberFluxes(IonChamber{Gases: []GasFraction{{Gas: "radon", Fraction: 1}}}, 1, 10000)
	assert.ErrorIs(t, err, ErrUnknownGas)
}
