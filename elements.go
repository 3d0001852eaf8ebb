package xraydb

import "github.com/RoanBrand/xraydb/xraydata"

// Elements returns all elements ordered by atomic number.
func (db *DB) Elements() []xraydata.ElementRecord {
	out := make([]xraydata.ElementRecord, len(db.ds.Elements))
	copy(out, db.ds.Elements)
	return out
}

// Element resolves id and returns its record.
func (db *DB) Element(id string) (xraydata.ElementRecord, error) {
	el, err := db.lookup(id)
	if err != nil {
		return xraydata.ElementRecord{}, err
	}
	return *el, nil
}

func (db *DB) Symbol(id string) (string, error) {
	el, err := db.lookup(id)
	if err != nil {
		return "", err
	}
	return el.Symbol, nil
}

func (db *DB) Name(id string) (string, error) {
	el, err := db.lookup(id)
	if err != nil {
		return "", err
	}
	return el.Name, nil
}

// MolarMass returns the atomic mass in g/mol.
func (db *DB) MolarMass(id string) (float64, error) {
	el, err := db.lookup(id)
	if err != nil {
		return 0, err
	}
	return el.MolarMass, nil
}

// Density returns the reference density in g/cm^3.
func (db *DB) Density(id string) (float64, error) {
	el, err := db.lookup(id)
	if err != nil {
		return 0, err
	}
	if el.Density <= 0 {
		return 0, lookupErr(ErrNoDensity, id)
	}
	return el.Density, nil
}
