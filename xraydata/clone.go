package xraydata

import "slices"

// Clone methods return deep copies so callers can keep or modify records
// without touching the shared dataset.

func (p PhotoabsorptionRecord) Clone() PhotoabsorptionRecord {
	p.Edges = slices.Clone(p.Edges)
	segs := make([]Segment, len(p.Segments))
	for i, s := range p.Segments {
		segs[i] = Segment{Edge: s.Edge, Energy: slices.Clone(s.Energy), Value: slices.Clone(s.Value)}
	}
	p.Segments = segs
	return p
}

func (s ScatteringRecord) Clone() ScatteringRecord {
	s.Energy = slices.Clone(s.Energy)
	s.Coherent = slices.Clone(s.Coherent)
	s.Incoherent = slices.Clone(s.Incoherent)
	return s
}

func (c ChantlerRecord) Clone() ChantlerRecord {
	c.Energy = slices.Clone(c.Energy)
	c.F1 = slices.Clone(c.F1)
	c.F2 = slices.Clone(c.F2)
	c.MuPhoto = slices.Clone(c.MuPhoto)
	c.MuIncoh = slices.Clone(c.MuIncoh)
	c.MuTotal = slices.Clone(c.MuTotal)
	return c
}

func (t TransitionRecord) Clone() TransitionRecord {
	t.Lines = slices.Clone(t.Lines)
	return t
}
