package xraydb

import (
	"errors"
	"strconv"
)

var (
	ErrUnknownElement          = errors.New("unknown element")
	ErrUnknownIon              = errors.New("unknown ion")
	ErrUnsupportedCrossSection = errors.New("unsupported cross-section")
	ErrInvalidFormula          = errors.New("invalid chemical formula")
	ErrEmptyFormula            = errors.New("empty chemical formula")
	ErrZeroWeightFormula       = errors.New("chemical formula has zero weight")
	ErrUnknownMaterial         = errors.New("unknown material")
	ErrUnknownEdge             = errors.New("unknown absorption edge")
	ErrUnknownGas              = errors.New("unknown gas")
	ErrNoDensity               = errors.New("no reference density")
	ErrInvalidEnergy           = errors.New("invalid photon energy")
)

// LookupError reports the identifier, formula or name a query failed
// on. Err is one of the sentinel errors above; Cause optionally holds a
// lower level error such as a formula syntax error.
type LookupError struct {
	Err   error
	Value string
	Cause error
}

func (e *LookupError) Error() string {
	s := e.Err.Error() + " " + strconv.Quote(e.Value)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *LookupError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func lookupErr(sentinel error, value string) error {
	return &LookupError{Err: sentinel, Value: value}
}
