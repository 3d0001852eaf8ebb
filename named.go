package xraydb

import (
	"context"

	"github.com/RoanBrand/xraydb/materials"
)

// MaterialFinder looks up named materials. *materials.Catalog is the
// usual implementation.
type MaterialFinder interface {
	Find(ctx context.Context, name string) (materials.Material, bool)
}

// MaterialCrossSectionNamed is MaterialCrossSection for a material given
// by name, such as "water" or "kapton". density > 0 overrides the
// catalog density. A name the catalog does not know is taken as a
// formula, which then needs a density. A nil finder uses the built-in
// catalog.
func (db *DB) MaterialCrossSectionNamed(ctx context.Context, finder MaterialFinder, name string, energies []float64, kind Kind, density float64) ([]float64, error) {
	m, err := FindMaterial(ctx, finder, name, density)
	if err != nil {
		return nil, err
	}
	return db.MaterialCrossSection(m.Formula, energies, m.Density, kind)
}

// FindMaterial resolves name to a formula and density the way
// MaterialCrossSectionNamed does.
func FindMaterial(ctx context.Context, finder MaterialFinder, name string, density float64) (materials.Material, error) {
	if finder == nil {
		finder = materials.Default()
	}
	m, ok := finder.Find(ctx, name)
	if !ok {
		if density <= 0 {
			return materials.Material{}, lookupErr(ErrUnknownMaterial, name)
		}
		return materials.Material{Name: name, Formula: name, Density: density}, nil
	}
	if density > 0 {
		m.Density = density
	}
	return m, nil
}
