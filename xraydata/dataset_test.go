package xraydata

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, ds *Dataset) []byte {
	t.Helper()
	raw, err := cbor.Marshal(ds)
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func minimal() *Dataset {
	return &Dataset{
		Version:  Version{Tag: "test"},
		Elements: []ElementRecord{{Z: 1, Symbol: "H", Name: "hydrogen", MolarMass: 1.008}},
		Photoabsorption: []PhotoabsorptionRecord{{
			Element: "H",
			Segments: []Segment{
				{Energy: []float64{100, 1000}, Value: []float64{10, 1}},
			},
		}},
		Compton: ComptonRecord{
			Incident:     []float64{1000},
			XRay90Deg:    []float64{998},
			XRayMean:     []float64{999},
			ElectronMean: []float64{1},
		},
	}
}

func TestLoadEmbedded(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Len(t, ds.Elements, 118)
	assert.NotEmpty(t, ds.Version.Tag)

	fe := ds.Elements[25]
	assert.Equal(t, 26, fe.Z)
	assert.Equal(t, "Fe", fe.Symbol)
	assert.Equal(t, "iron", fe.Name)
	assert.InDelta(t, 55.845, fe.MolarMass, 0.01)

	var found bool
	for _, p := range ds.Photoabsorption {
		if p.Element != "Fe" {
			continue
		}
		found = true
		last := p.Segments[len(p.Segments)-1]
		assert.Equal(t, "K", last.Edge)
		assert.InDelta(t, 7112, last.Energy[0], 1)
	}
	assert.True(t, found, "Fe photoabsorption table missing")
}

func TestDigest(t *testing.T) {
	d := Digest()
	assert.Len(t, d, 64)
	assert.Equal(t, d, Digest())
}

func TestDecodeRoundTrip(t *testing.T) {
	ds, err := Decode(encode(t, minimal()))
	require.NoError(t, err)
	assert.Equal(t, "hydrogen", ds.Elements[0].Name)
	assert.Equal(t, []float64{10, 1}, ds.Photoabsorption[0].Segments[0].Value)
}

func TestDecodeSegmentAtEdge(t *testing.T) {
	ds := minimal()
	ds.Photoabsorption[0].Edges = []EdgeRecord{{Label: "K", Energy: 1000}}
	ds.Photoabsorption[0].Segments = append(ds.Photoabsorption[0].Segments,
		Segment{Edge: "K", Energy: []float64{1000, 2000}, Value: []float64{5, 2}})
	_, err := Decode(encode(t, ds))
	assert.NoError(t, err)
}

func TestEmbeddedSegmentsStartAtEdges(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)
	for _, p := range ds.Photoabsorption {
		edges := make(map[string]float64)
		for _, e := range p.Edges {
			edges[e.Label] = e.Energy
		}
		for _, s := range p.Segments[1:] {
			assert.Equal(t, edges[s.Edge], s.Energy[0], "%s %s", p.Element, s.Edge)
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode([]byte("not gzip"))
	assert.Error(t, err)

	ds := minimal()
	ds.Photoabsorption[0].Segments[0].Energy = []float64{1000, 100}
	_, err = Decode(encode(t, ds))
	assert.ErrorContains(t, err, "not strictly increasing")

	ds = minimal()
	ds.Photoabsorption[0].Segments = append(ds.Photoabsorption[0].Segments,
		Segment{Edge: "K", Energy: []float64{1000, 2000}, Value: []float64{5, 2}})
	_, err = Decode(encode(t, ds))
	assert.ErrorContains(t, err, "unknown edge")

	ds = minimal()
	ds.Photoabsorption[0].Edges = []EdgeRecord{{Label: "K", Energy: 13.6}}
	ds.Photoabsorption[0].Segments = append(ds.Photoabsorption[0].Segments,
		Segment{Edge: "K", Energy: []float64{1000, 2000}, Value: []float64{5, 2}})
	_, err = Decode(encode(t, ds))
	assert.ErrorContains(t, err, "segment starts at 1000, edge is at 13.6")

	ds = minimal()
	ds.Compton.XRayMean = nil
	_, err = Decode(encode(t, ds))
	assert.ErrorContains(t, err, "0 values for 1 energies")

	ds = minimal()
	ds.Elements = append(ds.Elements, ElementRecord{Z: 1, Symbol: "D", Name: "deuterium", MolarMass: 2})
	_, err = Decode(encode(t, ds))
	assert.ErrorContains(t, err, "duplicate atomic number")
}
