package xraydb

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossSectionIron(t *testing.T) {
	db := openDB(t)
	e := []float64{10000}

	total, err := db.CrossSection("Fe", e, Total)
	require.NoError(t, err)
	assert.InEpsilon(t, 173.255, total[0], 1e-4)

	photo, err := db.CrossSection("iron", e, Photoabsorption)
	require.NoError(t, err)
	assert.InEpsilon(t, 170.0, photo[0], 1e-4)

	coh, err := db.CrossSection("26", e, Coherent)
	require.NoError(t, err)
	incoh, err := db.CrossSection("fe", e, Incoherent)
	require.NoError(t, err)
	assert.InEpsilon(t, photo[0]+coh[0]+incoh[0], total[0], 1e-12)
}

func TestTotalIsSumOfParts(t *testing.T) {
	db := openDB(t)
	energies := []float64{150, 999.5, 7112, 7111.9, 20000, 123456, 2e6}
	for _, el := range []string{"H", "O", "Si", "Fe", "Cu", "Pb", "U"} {
		total, err := db.CrossSection(el, energies, Total)
		require.NoError(t, err)
		var sum [7]float64
		for _, k := range []Kind{Photoabsorption, Coherent, Incoherent} {
			v, err := db.CrossSection(el, energies, k)
			require.NoError(t, err)
			for i := range v {
				sum[i] += v[i]
			}
		}
		for i := range total {
			assert.InEpsilon(t, sum[i], total[i], 1e-12, "%s at %g", el, energies[i])
		}
	}
}

func TestEdgeBelongsToUpperSegment(t *testing.T) {
	db := openDB(t)
	rec, err := db.PhotoBySymbol("Fe")
	require.NoError(t, err)

	k := rec.Segments[len(rec.Segments)-1]
	require.Equal(t, "K", k.Edge)
	below := rec.Segments[len(rec.Segments)-2]

	v, err := db.CrossSection("Fe", []float64{k.Energy[0], k.Energy[0] - 0.1}, Photoabsorption)
	require.NoError(t, err)
	assert.Equal(t, k.Value[0], v[0])
	assert.InEpsilon(t, below.Value[len(below.Value)-1], v[1], 1e-3)
	assert.Greater(t, v[0]/v[1], 5.0)
}

func TestExactTableEnergies(t *testing.T) {
	db := openDB(t)
	rec, err := db.ScatterBySymbol("Cu")
	require.NoError(t, err)

	coh, err := db.CrossSection("Cu", rec.Energy, Coherent)
	require.NoError(t, err)
	assert.Equal(t, rec.Coherent, coh)

	photo, err := db.PhotoBySymbol("Cu")
	require.NoError(t, err)
	for _, s := range photo.Segments {
		// last point of a segment below an edge belongs to the next one
		v, err := db.CrossSection("Cu", s.Energy[:len(s.Energy)-1], Photoabsorption)
		require.NoError(t, err)
		assert.Equal(t, s.Value[:len(s.Value)-1], v, s.Edge)
	}
}

func TestCrossSectionOutsideTables(t *testing.T) {
	db := openDB(t)
	v, err := db.CrossSection("Pb", []float64{10, 5e6}, Total)
	require.NoError(t, err)
	for _, x := range v {
		assert.False(t, math.IsNaN(x))
		assert.False(t, math.IsInf(x, 0))
		assert.GreaterOrEqual(t, x, 0.0)
	}
}

func TestCrossSectionErrors(t *testing.T) {
	db := openDB(t)

	_, err := db.CrossSection("Xx", []float64{1000}, Total)
	assert.ErrorIs(t, err, ErrUnknownElement)

	_, err = db.CrossSection("Tc", []float64{1000}, Photoabsorption)
	assert.ErrorIs(t, err, ErrUnsupportedCrossSection)

	_, err = db.CrossSection("Fe", []float64{1000}, Kind(99))
	assert.ErrorIs(t, err, ErrUnsupportedCrossSection)
	_, err = db.CrossSection("Fe", []float64{1000}, Kind(0))
	assert.ErrorIs(t, err, ErrUnsupportedCrossSection)

	v, err := db.CrossSection("Fe", nil, Total)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestParseKind(t *testing.T) {
	for s, want := range map[string]Kind{
		"photo":      Photoabsorption,
		"Coherent":   Coherent,
		"incoh":      Incoherent,
		" total ":    Total,
		"coh":        Coherent,
		"incoherent": Incoherent,
	} {
		k, err := ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, k, s)
		back, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
	_, err := ParseKind("compton")
	assert.ErrorIs(t, err, ErrUnsupportedCrossSection)
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestCrossSectionConcurrent(t *testing.T) {
	db := openDB(t)
	want, err := db.CrossSection("Cu", []float64{8979, 9000, 12000}, Total)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := db.CrossSection("Cu", []float64{8979, 9000, 12000}, Total)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func BenchmarkCrossSectionTotal(b *testing.B) {
	db := openDB(b)
	energies := make([]float64, 1000)
	for i := range energies {
		energies[i] = 1000 + float64(i)*20
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := db.CrossSection("Fe", energies, Total); err != nil {
			b.Fatal(err)
		}
	}
}
