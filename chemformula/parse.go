// Package chemformula parses chemical formulas such as "H2O",
// "Ca5(PO4)3OH" or "(SiO2)0.7(B2O3).3" into element counts.
//
// Parsing is purely syntactic: any capital letter followed by lower case
// letters is accepted as a symbol, so "Xx2O" parses and is rejected later
// by whoever resolves the symbols.
package chemformula

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEmpty is returned for formulas that name no element.
var ErrEmpty = errors.New("chemformula: formula has no elements")

// Component is one element of a parsed formula with its total count.
type Component struct {
	Symbol string
	Count  float64
}

// SyntaxError describes malformed formula text.
type SyntaxError struct {
	Formula string
	Offset  int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("chemformula: %s at offset %d in %q", e.Msg, e.Offset, e.Formula)
}

// aliases maps isotope symbols to their element.
var aliases = map[string]string{
	"D": "H",
}

var closer = map[string]string{"(": ")", "[": "]", "{": "}"}

type parser struct {
	formula string
	lx      *lexer
	peeked  *item
}

// Parse returns the element counts of formula in order of first
// appearance, with repeated elements merged.
func Parse(formula string) ([]Component, error) {
	p := &parser{formula: formula, lx: lex(formula)}
	comps, err := p.sequence("")
	if err != nil {
		return nil, err
	}
	if len(comps) == 0 {
		return nil, ErrEmpty
	}
	return comps, nil
}

func (p *parser) next() item {
	if p.peeked != nil {
		it := *p.peeked
		p.peeked = nil
		return it
	}
	return p.lx.nextItem()
}

func (p *parser) peek() item {
	if p.peeked == nil {
		it := p.lx.nextItem()
		p.peeked = &it
	}
	return *p.peeked
}

func (p *parser) errorf(it item, format string, values ...interface{}) error {
	return &SyntaxError{Formula: p.formula, Offset: it.pos, Msg: fmt.Sprintf(format, values...)}
}

// sequence parses symbols and groups up to the closing bracket want, or
// to the end of input when want is empty.
func (p *parser) sequence(want string) ([]Component, error) {
	var comps []Component
	for {
		it := p.next()
		switch it.typ {
		case itemError:
			return nil, p.errorf(it, "%s", it.val)
		case itemEOF:
			if want != "" {
				return nil, p.errorf(it, "missing %q", want)
			}
			return comps, nil
		case itemClose:
			if it.val != want {
				return nil, p.errorf(it, "unexpected %q", it.val)
			}
			return comps, nil
		case itemNumber:
			return nil, p.errorf(it, "count %q without element", it.val)
		case itemSymbol:
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			sym := it.val
			if alias, ok := aliases[sym]; ok {
				sym = alias
			}
			comps = merge(comps, Component{Symbol: sym, Count: n})
		case itemOpen:
			inner, err := p.sequence(closer[it.val])
			if err != nil {
				return nil, err
			}
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			for _, c := range inner {
				c.Count *= n
				comps = merge(comps, c)
			}
		}
	}
}

// count consumes an optional number following a symbol or group.
func (p *parser) count() (float64, error) {
	if p.peek().typ != itemNumber {
		return 1, nil
	}
	it := p.next()
	n, err := strconv.ParseFloat(it.val, 64)
	if err != nil {
		return 0, p.errorf(it, "bad count %q", it.val)
	}
	return n, nil
}

func merge(comps []Component, c Component) []Component {
	for i := range comps {
		if comps[i].Symbol == c.Symbol {
			comps[i].Count += c.Count
			return comps
		}
	}
	return append(comps, c)
}
