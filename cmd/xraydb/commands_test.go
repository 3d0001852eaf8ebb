package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/RoanBrand/xraydb"
	"github.com/RoanBrand/xraydb/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMuCommand(t *testing.T) {
	out, err := run(t, "mu", "Fe", "-e", "10000", "--json")
	require.NoError(t, err)
	var rec sample.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "Fe", rec.Formula)
	assert.InEpsilon(t, 173.255, rec.Mu[0], 1e-4)

	out, err = run(t, "mu", "iron", "--energy", "7111.9,7112", "--kind", "photo")
	require.NoError(t, err)
	assert.Contains(t, out, "mu photo (cm^2/g)")
	assert.Contains(t, out, "7112")

	_, err = run(t, "mu", "Xx")
	assert.ErrorIs(t, err, xraydb.ErrUnknownElement)
	_, err = run(t, "mu", "Fe", "--kind", "compton")
	assert.ErrorIs(t, err, xraydb.ErrUnsupportedCrossSection)
}

func TestMaterialCommand(t *testing.T) {
	out, err := run(t, "material", "water", "--json")
	require.NoError(t, err)
	var rec sample.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "H2O", rec.Formula)
	assert.InEpsilon(t, 5.234288521514447, rec.Mu[0], 1e-9)
	assert.Len(t, rec.Results, 2)

	out, err = run(t, "material", "SiO2", "-d", "2.2", "-t", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "transmission")

	_, err = run(t, "material", "unobtainium")
	assert.ErrorIs(t, err, xraydb.ErrUnknownMaterial)
}

func TestMaterialsCommandWithConfig(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "lab.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("materials:\n  - name: brine\n    formula: H2ONaCl0.01\n    density: 1.03\n"), 0o644))
	conf := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(conf, []byte(`{
	// lab catalog
	"catalog": [{"type": "yaml", "path": "`+filepath.ToSlash(yml)+`"}],
}`), 0o644))

	out, err := run(t, "materials", "--config", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "brine")
	assert.Contains(t, out, "kapton")

	out, err = run(t, "material", "brine", "--config", conf, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"formula": "H2ONaCl0.01"`)
}

func TestLookupCommands(t *testing.T) {
	out, err := run(t, "element", "26")
	require.NoError(t, err)
	assert.Contains(t, out, "iron")

	out, err = run(t, "edges", "Fe")
	require.NoError(t, err)
	assert.Contains(t, out, "7112")

	out, err = run(t, "lines", "Fe", "--initial", "K")
	require.NoError(t, err)
	assert.Contains(t, out, "Ka1")
	assert.Contains(t, out, "6405.2")

	out, err = run(t, "guess", "7110")
	require.NoError(t, err)
	assert.Equal(t, "Fe K\n", out)

	out, err = run(t, "f1f2", "Fe", "-e", "10000", "--json")
	require.NoError(t, err)
	var ff struct{ F1, F2 []float64 }
	require.NoError(t, json.Unmarshal([]byte(out), &ff))
	assert.InDelta(t, 2.25608, ff.F2[0], 1e-4)

	out, err = run(t, "f0", "Fe3+", "--json")
	require.NoError(t, err)
	var f0 struct{ F0 []float64 }
	require.NoError(t, json.Unmarshal([]byte(out), &f0))
	assert.InDelta(t, 23, f0.F0[0], 1e-3)

	out, err = run(t, "compton", "10000")
	require.NoError(t, err)
	assert.Contains(t, out, "electron mean")

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "digest")

	_, err = run(t, "guess", "abc")
	assert.Error(t, err)
}

func TestIonChamberCommand(t *testing.T) {
	out, err := run(t, "ionchamber", "--gas", "N2=0.5,He=0.5", "--volts", "2", "--json")
	require.NoError(t, err)
	var f xraydb.IonChamberFluxes
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.Greater(t, f.Incident, f.Transmitted)

	_, err = run(t, "ionchamber", "--gas", "radon")
	assert.ErrorIs(t, err, xraydb.ErrUnknownGas)
	_, err = run(t, "ionchamber", "--gas", "N2=x")
	assert.Error(t, err)
}

func TestParseGases(t *testing.T) {
	g, err := parseGases([]string{"N2=0.8", " He = 0.2", "argon"})
	require.NoError(t, err)
	assert.Equal(t, []xraydb.GasFraction{{Gas: "N2", Fraction: 0.8}, {Gas: "He", Fraction: 0.2}, {Gas: "argon", Fraction: 1}}, g)
}
