// Package xraydata holds the tabulated X-ray constants shipped with the
// module and decodes them from the embedded blob.
package xraydata

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"
)

// gzip-compressed CBOR, produced by the offline dataset generator.
//
//go:embed xraydb.cbor.gz
var blob []byte

// maxDecoded bounds the decompressed size so a corrupt blob fails
// instead of exhausting memory.
const maxDecoded = 64 << 20

var decMode cbor.DecMode

func init() {
	var err error
	decMode, err = cbor.DecOptions{
		MaxArrayElements: 1 << 20,
		MaxMapPairs:      1 << 16,
	}.DecMode()
	if err != nil {
		panic("xraydata: CBOR decoder initialization failed: " + err.Error())
	}
}

// Blob returns the embedded compressed dataset.
func Blob() []byte {
	return blob
}

// Digest returns the hex BLAKE3 digest of the embedded blob.
func Digest() string {
	sum := blake3.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

// Load decodes the embedded dataset.
func Load() (*Dataset, error) {
	return Decode(blob)
}

// Decode decompresses, decodes and validates a dataset blob.
func Decode(compressed []byte) (*Dataset, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("error opening dataset stream: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, maxDecoded+1))
	if err != nil {
		return nil, fmt.Errorf("error decompressing dataset: %w", err)
	}
	if len(raw) > maxDecoded {
		return nil, fmt.Errorf("dataset exceeds %d bytes decompressed", maxDecoded)
	}

	ds := new(Dataset)
	if err = decMode.Unmarshal(raw, ds); err != nil {
		return nil, fmt.Errorf("error decoding dataset: %w", err)
	}
	if err = ds.validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (ds *Dataset) validate() error {
	if len(ds.Elements) == 0 {
		return fmt.Errorf("dataset has no elements")
	}
	zs := make(map[int]bool, len(ds.Elements))
	for _, el := range ds.Elements {
		if el.Z <= 0 || el.Symbol == "" || el.Name == "" || el.MolarMass <= 0 {
			return fmt.Errorf("invalid element record %+v", el)
		}
		if zs[el.Z] {
			return fmt.Errorf("duplicate atomic number %d", el.Z)
		}
		zs[el.Z] = true
	}

	for i := range ds.Photoabsorption {
		if err := ds.Photoabsorption[i].validate(); err != nil {
			return err
		}
	}
	for _, s := range ds.Scattering {
		if err := checkGrid(s.Element+" scattering", s.Energy, s.Coherent, s.Incoherent); err != nil {
			return err
		}
	}
	for _, c := range ds.Chantler {
		if err := checkGrid(c.Element+" chantler", c.Energy, c.F1, c.F2, c.MuPhoto, c.MuIncoh, c.MuTotal); err != nil {
			return err
		}
	}
	c := ds.Compton
	return checkGrid("compton", c.Incident, c.XRay90Deg, c.XRayMean, c.ElectronMean)
}

func (p *PhotoabsorptionRecord) validate() error {
	if len(p.Segments) == 0 {
		return fmt.Errorf("%s photoabsorption: no segments", p.Element)
	}
	edges := make(map[string]float64, len(p.Edges))
	for _, e := range p.Edges {
		edges[e.Label] = e.Energy
	}

	prevEnd := 0.0
	for i, seg := range p.Segments {
		name := p.Element + " photoabsorption " + seg.Edge
		if err := checkGrid(name, seg.Energy, seg.Value); err != nil {
			return err
		}
		if i > 0 {
			edge, ok := edges[seg.Edge]
			if !ok {
				return fmt.Errorf("%s: segment starts at unknown edge", name)
			}
			// lookups pick the segment by its first energy
			if seg.Energy[0] != edge {
				return fmt.Errorf("%s: segment starts at %g, edge is at %g", name, seg.Energy[0], edge)
			}
		}
		if seg.Energy[0] < prevEnd {
			return fmt.Errorf("%s: segment overlaps the one below", name)
		}
		prevEnd = seg.Energy[len(seg.Energy)-1]
	}
	return nil
}

// checkGrid verifies a strictly increasing positive energy grid with
// parallel value columns.
func checkGrid(name string, energy []float64, columns ...[]float64) error {
	if len(energy) == 0 {
		return fmt.Errorf("%s: empty energy grid", name)
	}
	for i, e := range energy {
		if e <= 0 || (i > 0 && e <= energy[i-1]) {
			return fmt.Errorf("%s: energy grid not strictly increasing at %d", name, i)
		}
	}
	for _, col := range columns {
		if len(col) != len(energy) {
			return fmt.Errorf("%s: %d values for %d energies", name, len(col), len(energy))
		}
	}
	return nil
}
