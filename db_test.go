package xraydb

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t testing.TB) *DB {
	t.Helper()
	db, err := Open()
	require.NoError(t, err)
	return db
}

func TestOpenOnce(t *testing.T) {
	const numOpens = 32
	dbs := make([]*DB, numOpens)

	var wg sync.WaitGroup
	wg.Add(numOpens)
	for i := 0; i < numOpens; i++ {
		go func(i int) {
			defer wg.Done()
			db, err := Open()
			assert.NoError(t, err)
			dbs[i] = db
		}(i)
	}
	wg.Wait()

	for _, db := range dbs {
		assert.Same(t, dbs[0], db)
	}
	assert.Same(t, dbs[0], MustOpen())
	assert.Len(t, dbs[0].Digest(), 64)
	assert.NotEmpty(t, dbs[0].Version().Tag)
}

func TestResolve(t *testing.T) {
	db := openDB(t)
	for _, id := range []string{"26", "Fe", "fe", "FE", "iron", "Iron", " Fe ", "026"} {
		z, err := db.Resolve(id)
		require.NoError(t, err, id)
		assert.Equal(t, 26, z, id)
	}

	for _, id := range []string{"Xx", "", "0", "119", "-1", "unobtainium", "2.5"} {
		_, err := db.Resolve(id)
		assert.ErrorIs(t, err, ErrUnknownElement, id)

		var le *LookupError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, id, le.Value)
	}
}

func TestResolveEveryElement(t *testing.T) {
	db := openDB(t)
	for _, el := range db.Elements() {
		for _, id := range []string{fmt.Sprint(el.Z), el.Symbol, el.Name} {
			z, err := db.Resolve(id)
			require.NoError(t, err, id)
			assert.Equal(t, el.Z, z, id)
		}
	}
}

func TestElementQueries(t *testing.T) {
	db := openDB(t)
	assert.Len(t, db.Elements(), 118)

	sym, err := db.Symbol("iron")
	require.NoError(t, err)
	assert.Equal(t, "Fe", sym)

	name, err := db.Name("26")
	require.NoError(t, err)
	assert.Equal(t, "iron", name)

	m, err := db.MolarMass("Fe")
	require.NoError(t, err)
	assert.InDelta(t, 55.845, m, 1e-9)

	d, err := db.Density("Fe")
	require.NoError(t, err)
	assert.InDelta(t, 7.86, d, 1e-9)

	_, err = db.Density("Og")
	assert.ErrorIs(t, err, ErrNoDensity)

	el, err := db.ElementByZ(8)
	require.NoError(t, err)
	assert.Equal(t, "O", el.Symbol)
	_, err = db.ElementByZ(0)
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestAccessorsReturnCopies(t *testing.T) {
	db := openDB(t)
	e := []float64{10000}
	before, err := db.CrossSection("Fe", e, Total)
	require.NoError(t, err)

	photo, err := db.PhotoBySymbol("fe")
	require.NoError(t, err)
	for _, s := range photo.Segments {
		for i := range s.Value {
			s.Value[i] = -1
		}
	}
	scat, err := db.ScatterBySymbol("Fe")
	require.NoError(t, err)
	scat.Coherent[0] = -1

	after, err := db.CrossSection("Fe", e, Total)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	again, err := db.PhotoBySymbol("Fe")
	require.NoError(t, err)
	assert.Positive(t, again.Segments[0].Value[0])
}

func TestAccessorsMissing(t *testing.T) {
	db := openDB(t)

	_, err := db.PhotoBySymbol("Tc")
	assert.ErrorIs(t, err, ErrUnknownElement)
	_, err = db.ScatterBySymbol("Xx")
	assert.ErrorIs(t, err, ErrUnknownElement)
	_, err = db.ChantlerBySymbol("Tc")
	assert.ErrorIs(t, err, ErrUnknownElement)

	tr, err := db.TransitionsBySymbol("Fe")
	require.NoError(t, err)
	assert.NotEmpty(t, tr.Lines)

	ch, err := db.ChantlerBySymbol("Fe")
	require.NoError(t, err)
	assert.Len(t, ch.F1, len(ch.Energy))
}

func TestWaasmaierByIon(t *testing.T) {
	db := openDB(t)
	for _, ion := range []string{"Fe3+", "fe+3", "FE3+", "Fe 3+", "fe3+"} {
		w, err := db.WaasmaierByIon(ion)
		require.NoError(t, err, ion)
		assert.Equal(t, "Fe3+", w.Ion, ion)
	}

	w, err := db.WaasmaierByIon("Na+")
	require.NoError(t, err)
	assert.Equal(t, "Na1+", w.Ion)

	w, err = db.WaasmaierByIon("iron")
	require.NoError(t, err)
	assert.Equal(t, "Fe", w.Ion)

	_, err = db.WaasmaierByIon("Fe7+")
	assert.ErrorIs(t, err, ErrUnknownIon)
	_, err = db.WaasmaierByIon("Tc")
	assert.ErrorIs(t, err, ErrUnknownIon)
	_, err = db.WaasmaierByIon("Xx2+")
	assert.ErrorIs(t, err, ErrUnknownElement)
	_, err = db.WaasmaierByIon("3+")
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestNormalizeIon(t *testing.T) {
	for in, want := range map[string]string{
		"Fe3+":  "Fe3+",
		"fe+3":  "Fe3+",
		"Na+":   "Na1+",
		"o2-":   "O2-",
		"O-":    "O1-",
		"Cu":    "Cu",
		" cu ":  "Cu",
		"Fe3+-": "Fe3+-",
		"Fe+3+": "Fe+3+",
	} {
		assert.Equal(t, want, normalizeIon(in), in)
	}
}

func TestLookupErrorMessage(t *testing.T) {
	err := lookupErr(ErrUnknownElement, "Xx")
	assert.Equal(t, `unknown element "Xx"`, err.Error())
	assert.False(t, errors.Is(err, ErrUnknownIon))
}
