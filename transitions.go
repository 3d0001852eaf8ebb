package xraydb

import (
	"math"
	"strings"
)

// Edge is an X-ray absorption edge. Energy is in eV.
type Edge struct {
	Energy            float64 `json:"energy"`
	FluorescenceYield float64 `json:"fluorescence_yield"`
	JumpRatio         float64 `json:"jump_ratio"`
}

// Line is an X-ray emission line between two core levels.
type Line struct {
	Energy    float64 `json:"energy"`
	Intensity float64 `json:"intensity"`
	Initial   string  `json:"initial_level"`
	Final     string  `json:"final_level"`
}

// edgeEntry is one absorption edge in the energy sorted list searched by
// GuessEdge.
type edgeEntry struct {
	Symbol string
	Label  string
	Energy float64
}

var defaultGuessEdges = []string{"K", "L3", "L2", "L1", "M5"}

// Edges returns the absorption edges of an element keyed by IUPAC label
// (K, L1, L2, ...). Elements without tabulated edges give an empty map.
func (db *DB) Edges(element string) (map[string]Edge, error) {
	el, err := db.lookup(element)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Edge)
	i, ok := db.photoIdx[normalize(el.Symbol)]
	if !ok {
		return out, nil
	}
	for _, e := range db.ds.Photoabsorption[i].Edges {
		out[e.Label] = Edge{Energy: e.Energy, FluorescenceYield: e.FluorescenceYield, JumpRatio: e.JumpRatio}
	}
	return out, nil
}

// Edge returns one absorption edge; label is case-insensitive.
func (db *DB) Edge(element, label string) (Edge, error) {
	edges, err := db.Edges(element)
	if err != nil {
		return Edge{}, err
	}
	e, ok := edges[strings.ToUpper(strings.TrimSpace(label))]
	if !ok {
		return Edge{}, lookupErr(ErrUnknownEdge, element+" "+label)
	}
	return e, nil
}

// Lines returns the emission lines of an element keyed by Siegbahn
// label. initial restricts the lines to one initial level when not
// empty. excitation > 0 drops lines whose initial level cannot be ionized
// at that energy.
func (db *DB) Lines(element, initial string, excitation float64) (map[string]Line, error) {
	el, err := db.lookup(element)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Line)
	i, ok := db.transIdx[normalize(el.Symbol)]
	if !ok {
		return out, nil
	}

	var edges map[string]Edge
	if excitation > 0 {
		if edges, err = db.Edges(el.Symbol); err != nil {
			return nil, err
		}
	}
	initial = strings.ToUpper(strings.TrimSpace(initial))

	for _, l := range db.ds.Transitions[i].Lines {
		if initial != "" && l.Initial != initial {
			continue
		}
		if e, ok := edges[l.Initial]; ok && e.Energy > excitation {
			continue
		}
		out[l.Siegbahn] = Line{Energy: l.Energy, Intensity: l.Intensity, Initial: l.Initial, Final: l.Final}
	}
	return out, nil
}

// GuessEdge returns the element and edge whose energy is closest to
// energy, considering only the given edge labels (K, L3, L2, L1 and M5
// when none are given). ok is false when no edge qualifies.
func (db *DB) GuessEdge(energy float64, labels ...string) (symbol, label string, ok bool) {
	if len(labels) == 0 {
		labels = defaultGuessEdges
	}
	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[strings.ToUpper(l)] = true
	}

	best := math.Inf(1)
	for _, e := range db.edges {
		if !want[e.Label] {
			continue
		}
		if d := math.Abs(e.Energy - energy); d < best {
			best, symbol, label, ok = d, e.Symbol, e.Label, true
		}
	}
	return symbol, label, ok
}
