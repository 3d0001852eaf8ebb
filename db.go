// Package xraydb looks up and interpolates tabulated X-ray constants of
// the elements: photoabsorption and scattering cross-sections, anomalous
// scattering factors, atomic form factors, absorption edges and emission
// lines, and the attenuation of compounds built from them.
//
// All data comes from the dataset embedded in package xraydata. It is
// decoded once, on first use, and never modified afterwards, so a *DB is
// safe for concurrent use without locking.
package xraydb

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/RoanBrand/xraydb/xraydata"
)

// DB is a read-only handle on the decoded dataset and its indices.
type DB struct {
	ds     *xraydata.Dataset
	digest string

	// indices into ds, keyed by normalized identifiers
	byZ         map[int]int
	bySymbol    map[string]int
	byName      map[string]int
	photoIdx    map[string]int
	scatterIdx  map[string]int
	chantlerIdx map[string]int
	transIdx    map[string]int
	waasIdx     map[string]int
	gasIdx      map[string]int
	ions        map[string][]string

	// prepared tables, parallel to the dataset slices
	photo    []edgeTable
	scatter  []scatterTable
	chantler []chantlerTable
	edges    []edgeEntry
}

var (
	openOnce sync.Once
	shared   *DB
	openErr  error
)

// Open returns the process wide database, decoding the embedded dataset
// on the first call. Concurrent first callers wait for the same decode.
func Open() (*DB, error) {
	openOnce.Do(func() {
		ds, err := xraydata.Load()
		if err != nil {
			openErr = fmt.Errorf("error loading embedded dataset: %w", err)
			return
		}
		shared, openErr = New(ds)
		if openErr == nil {
			shared.digest = xraydata.Digest()
		}
	})
	return shared, openErr
}

// MustOpen is like Open but panics if the embedded dataset is corrupt.
func MustOpen() *DB {
	db, err := Open()
	if err != nil {
		panic("xraydb: " + err.Error())
	}
	return db
}

// New builds a database over ds. ds must not be modified afterwards.
func New(ds *xraydata.Dataset) (*DB, error) {
	db := &DB{
		ds:          ds,
		byZ:         make(map[int]int, len(ds.Elements)),
		bySymbol:    make(map[string]int, len(ds.Elements)),
		byName:      make(map[string]int, len(ds.Elements)),
		photoIdx:    make(map[string]int, len(ds.Photoabsorption)),
		scatterIdx:  make(map[string]int, len(ds.Scattering)),
		chantlerIdx: make(map[string]int, len(ds.Chantler)),
		transIdx:    make(map[string]int, len(ds.Transitions)),
		waasIdx:     make(map[string]int, len(ds.Waasmaier)),
		gasIdx:      make(map[string]int, len(ds.IonizationPotentials)),
		ions:        make(map[string][]string),
	}

	for i, el := range ds.Elements {
		db.byZ[el.Z] = i
		db.bySymbol[normalize(el.Symbol)] = i
		db.byName[normalize(el.Name)] = i
	}

	db.photo = make([]edgeTable, len(ds.Photoabsorption))
	for i := range ds.Photoabsorption {
		rec := &ds.Photoabsorption[i]
		t, err := newEdgeTable(rec)
		if err != nil {
			return nil, fmt.Errorf("%s photoabsorption table: %w", rec.Element, err)
		}
		db.photo[i] = t
		db.photoIdx[normalize(rec.Element)] = i
		for _, e := range rec.Edges {
			if e.Energy > 0 {
				db.edges = append(db.edges, edgeEntry{Symbol: rec.Element, Label: e.Label, Energy: e.Energy})
			}
		}
	}
	sort.Slice(db.edges, func(i, j int) bool { return db.edges[i].Energy < db.edges[j].Energy })

	db.scatter = make([]scatterTable, len(ds.Scattering))
	for i := range ds.Scattering {
		rec := &ds.Scattering[i]
		t, err := newScatterTable(rec)
		if err != nil {
			return nil, fmt.Errorf("%s scattering table: %w", rec.Element, err)
		}
		db.scatter[i] = t
		db.scatterIdx[normalize(rec.Element)] = i
	}

	db.chantler = make([]chantlerTable, len(ds.Chantler))
	for i := range ds.Chantler {
		rec := &ds.Chantler[i]
		t, err := newChantlerTable(rec)
		if err != nil {
			return nil, fmt.Errorf("%s chantler table: %w", rec.Element, err)
		}
		db.chantler[i] = t
		db.chantlerIdx[normalize(rec.Element)] = i
	}

	for i, t := range ds.Transitions {
		db.transIdx[normalize(t.Element)] = i
	}
	for i, w := range ds.Waasmaier {
		db.waasIdx[normalizeIon(w.Ion)] = i
		key := normalize(w.Element)
		db.ions[key] = append(db.ions[key], w.Ion)
	}
	for i, g := range ds.IonizationPotentials {
		db.gasIdx[normalizeGas(g.Gas)] = i
	}
	return db, nil
}

// Version describes the embedded dataset.
func (db *DB) Version() xraydata.Version {
	return db.ds.Version
}

// Digest is the BLAKE3 digest of the dataset blob, empty for databases
// built with New.
func (db *DB) Digest() string {
	return db.digest
}

// normalize is the one key normalization used for symbols, names and
// gases, both when building indices and when looking them up.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeIon returns ions in the "Fe3+" form: capitalized symbol, then
// charge digits, then sign. "fe+3", "Fe3+" and "FE 3+" all map to
// "Fe3+" and a bare sign counts as one: "Na+" becomes "Na1+". Malformed
// charges are returned as is and so never match.
func normalizeIon(s string) string {
	s = strings.Join(strings.Fields(s), "")
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == 0 {
		return s
	}
	sym := strings.ToUpper(s[:1]) + strings.ToLower(s[1:i])
	charge := s[i:]
	if charge == "" {
		return sym
	}

	digits := strings.Trim(charge, "+-")
	sign := strings.Trim(charge, "0123456789")
	if len(sign) != 1 || (charge != digits+sign && charge != sign+digits) {
		return sym + charge
	}
	if digits == "" {
		digits = "1"
	}
	return sym + digits + sign
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// lookup resolves an atomic number, symbol or name to its element record.
func (db *DB) lookup(id string) (*xraydata.ElementRecord, error) {
	key := normalize(id)
	if isDigits(key) {
		z, err := strconv.Atoi(key)
		if err == nil {
			if i, ok := db.byZ[z]; ok {
				return &db.ds.Elements[i], nil
			}
		}
		return nil, lookupErr(ErrUnknownElement, id)
	}
	if i, ok := db.bySymbol[key]; ok {
		return &db.ds.Elements[i], nil
	}
	if i, ok := db.byName[key]; ok {
		return &db.ds.Elements[i], nil
	}
	return nil, lookupErr(ErrUnknownElement, id)
}

// Resolve returns the atomic number of an element given as atomic number
// ("26"), symbol ("Fe", "fe") or name ("iron", "Iron").
func (db *DB) Resolve(id string) (int, error) {
	el, err := db.lookup(id)
	if err != nil {
		return 0, err
	}
	return el.Z, nil
}

// ElementByZ returns the element with atomic number z.
func (db *DB) ElementByZ(z int) (xraydata.ElementRecord, error) {
	i, ok := db.byZ[z]
	if !ok {
		return xraydata.ElementRecord{}, lookupErr(ErrUnknownElement, strconv.Itoa(z))
	}
	return db.ds.Elements[i], nil
}

// PhotoBySymbol returns a copy of the photoabsorption record of symbol.
func (db *DB) PhotoBySymbol(symbol string) (xraydata.PhotoabsorptionRecord, error) {
	i, ok := db.photoIdx[normalize(symbol)]
	if !ok {
		return xraydata.PhotoabsorptionRecord{}, lookupErr(ErrUnknownElement, symbol)
	}
	return db.ds.Photoabsorption[i].Clone(), nil
}

// ScatterBySymbol returns a copy of the scattering record of symbol.
func (db *DB) ScatterBySymbol(symbol string) (xraydata.ScatteringRecord, error) {
	i, ok := db.scatterIdx[normalize(symbol)]
	if !ok {
		return xraydata.ScatteringRecord{}, lookupErr(ErrUnknownElement, symbol)
	}
	return db.ds.Scattering[i].Clone(), nil
}

// ChantlerBySymbol returns a copy of the Chantler record of symbol.
func (db *DB) ChantlerBySymbol(symbol string) (xraydata.ChantlerRecord, error) {
	i, ok := db.chantlerIdx[normalize(symbol)]
	if !ok {
		return xraydata.ChantlerRecord{}, lookupErr(ErrUnknownElement, symbol)
	}
	return db.ds.Chantler[i].Clone(), nil
}

// TransitionsBySymbol returns a copy of the emission lines of symbol.
func (db *DB) TransitionsBySymbol(symbol string) (xraydata.TransitionRecord, error) {
	i, ok := db.transIdx[normalize(symbol)]
	if !ok {
		return xraydata.TransitionRecord{}, lookupErr(ErrUnknownElement, symbol)
	}
	return db.ds.Transitions[i].Clone(), nil
}

// WaasmaierByIon returns the form factor coefficients of an atom or ion.
// If the ion is not tabulated the error is ErrUnknownIon when its element
// exists and ErrUnknownElement otherwise.
func (db *DB) WaasmaierByIon(ion string) (xraydata.WaasmaierRecord, error) {
	i, err := db.waasmaierIndex(ion)
	if err != nil {
		return xraydata.WaasmaierRecord{}, err
	}
	return db.ds.Waasmaier[i], nil
}

func (db *DB) waasmaierIndex(ion string) (int, error) {
	key := normalizeIon(ion)
	if i, ok := db.waasIdx[key]; ok {
		return i, nil
	}
	// a plain element identifier ("26", "iron") means the neutral atom
	if el, err := db.lookup(ion); err == nil {
		if i, ok := db.waasIdx[el.Symbol]; ok {
			return i, nil
		}
		return 0, lookupErr(ErrUnknownIon, ion)
	}

	n := 0
	for n < len(key) && isLetter(key[n]) {
		n++
	}
	if _, err := db.lookup(key[:n]); err != nil {
		return 0, lookupErr(ErrUnknownElement, ion)
	}
	return 0, lookupErr(ErrUnknownIon, ion)
}
